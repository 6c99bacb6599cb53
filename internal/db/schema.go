package db

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/tasktrack/tracker-backend/internal/apperr"
)

// Order matters: tasks.project_id references projects(id).
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS projects (
  id SERIAL PRIMARY KEY,
  name VARCHAR(255) NOT NULL,
  description TEXT
);`,
	`CREATE TABLE IF NOT EXISTS tasks (
  id SERIAL PRIMARY KEY,
  project_id INTEGER REFERENCES projects(id),
  title VARCHAR(255) NOT NULL,
  description TEXT,
  due_date DATE,
  status VARCHAR(50) NOT NULL DEFAULT 'not started',
  user_name VARCHAR(255) NOT NULL
);`,
}

// EnsureSchema creates the projects and tasks tables if they are missing.
// It holds a single connection for both statements and always returns it to
// the pool. Any failure wraps apperr.ErrDatabaseUnavailable.
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	conn, err := db.Conn(ctx)
	if err != nil {
		return fmt.Errorf("%w: acquire connection: %v", apperr.ErrDatabaseUnavailable, err)
	}
	defer conn.Close()

	for i, stmt := range schemaStatements {
		if _, err := conn.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("%w: schema statement %d: %v", apperr.ErrDatabaseUnavailable, i+1, err)
		}
	}
	return nil
}
