package repository

import (
	"context"
	"database/sql"

	"github.com/tasktrack/tracker-backend/internal/apperr"
	"github.com/tasktrack/tracker-backend/internal/projects/domain"
)

// Repository is the persistence capability the project service needs.
type Repository interface {
	Create(ctx context.Context, name string, description *string) (*domain.Project, error)
	List(ctx context.Context) ([]domain.Project, error)
}

// ProjectRepository provides persistence operations for projects
type ProjectRepository struct {
	db *sql.DB
}

// NewProjectRepository creates a new project repository
func NewProjectRepository(db *sql.DB) *ProjectRepository {
	return &ProjectRepository{db: db}
}

// Create inserts a project and returns the stored row.
func (r *ProjectRepository) Create(ctx context.Context, name string, description *string) (*domain.Project, error) {
	const q = `
INSERT INTO projects (name, description)
VALUES ($1, $2)
RETURNING id, name, description;
`
	var desc any
	if description != nil {
		desc = *description
	}

	p, err := scanProject(r.db.QueryRowContext(ctx, q, name, desc))
	if err != nil {
		return nil, apperr.Store("insert project", err)
	}
	return p, nil
}

// List returns every project, newest first.
func (r *ProjectRepository) List(ctx context.Context) ([]domain.Project, error) {
	const q = `
SELECT id, name, description
FROM projects
ORDER BY id DESC;
`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, apperr.Store("list projects", err)
	}
	defer rows.Close()

	out := make([]domain.Project, 0, 16)
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, apperr.Store("list projects", err)
		}
		out = append(out, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, apperr.Store("list projects", err)
	}
	return out, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProject(row rowScanner) (*domain.Project, error) {
	var (
		p    domain.Project
		desc sql.NullString
	)
	if err := row.Scan(&p.ID, &p.Name, &desc); err != nil {
		return nil, err
	}
	if desc.Valid {
		p.Description = &desc.String
	}
	return &p, nil
}
