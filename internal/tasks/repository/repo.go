package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/tasktrack/tracker-backend/internal/apperr"
	"github.com/tasktrack/tracker-backend/internal/tasks/domain"
)

// Repository is the persistence capability the task service needs.
type Repository interface {
	Create(ctx context.Context, w domain.TaskWrite) (*domain.Task, error)
	List(ctx context.Context, f domain.Filter) ([]domain.Task, error)
	Update(ctx context.Context, id int64, w domain.TaskWrite) (*domain.Task, error)
}

// TaskRepository provides persistence operations for tasks
type TaskRepository struct {
	db *sql.DB
}

// NewTaskRepository creates a new task repository
func NewTaskRepository(db *sql.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

func (r *TaskRepository) Create(ctx context.Context, w domain.TaskWrite) (*domain.Task, error) {
	const q = `
INSERT INTO tasks (project_id, title, description, due_date, status, user_name)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING id, project_id, title, description, due_date, status, user_name;
`
	t, err := scanTask(r.db.QueryRowContext(ctx, q, writeArgs(w)...))
	if err != nil {
		return nil, apperr.Store("insert task", err)
	}
	return t, nil
}

func (r *TaskRepository) List(ctx context.Context, f domain.Filter) ([]domain.Task, error) {
	q, args := BuildListQuery(f)

	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, apperr.Store("list tasks", err)
	}
	defer rows.Close()

	out := make([]domain.Task, 0, 16)
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, apperr.Store("list tasks", err)
		}
		out = append(out, *t)
	}
	if err := rows.Err(); err != nil {
		return nil, apperr.Store("list tasks", err)
	}
	return out, nil
}

// Update overwrites every mutable column of task id. It returns
// apperr.ErrNotFound when no row has that id.
func (r *TaskRepository) Update(ctx context.Context, id int64, w domain.TaskWrite) (*domain.Task, error) {
	const q = `
UPDATE tasks
SET project_id = $1,
    title = $2,
    description = $3,
    due_date = $4,
    status = $5,
    user_name = $6
WHERE id = $7
RETURNING id, project_id, title, description, due_date, status, user_name;
`
	args := append(writeArgs(w), id)

	t, err := scanTask(r.db.QueryRowContext(ctx, q, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperr.ErrNotFound
		}
		return nil, apperr.Store("update task", err)
	}
	return t, nil
}

// writeArgs binds the six mutable columns in statement order. Nil pointers
// become untyped nil so the driver sends NULL.
func writeArgs(w domain.TaskWrite) []any {
	args := []any{nil, nil, nil, nil, nil, nil}
	if w.ProjectID != nil {
		args[0] = *w.ProjectID
	}
	if w.Title != nil {
		args[1] = *w.Title
	}
	if w.Description != nil {
		args[2] = *w.Description
	}
	if w.DueDate != nil {
		args[3] = w.DueDate.Time
	}
	if w.Status != nil {
		args[4] = *w.Status
	}
	if w.UserName != nil {
		args[5] = *w.UserName
	}
	return args
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTask(row rowScanner) (*domain.Task, error) {
	var (
		t         domain.Task
		projectID sql.NullInt64
		desc      sql.NullString
		due       sql.NullTime
	)
	if err := row.Scan(&t.ID, &projectID, &t.Title, &desc, &due, &t.Status, &t.UserName); err != nil {
		return nil, err
	}
	if projectID.Valid {
		t.ProjectID = &projectID.Int64
	}
	if desc.Valid {
		t.Description = &desc.String
	}
	if due.Valid {
		t.DueDate = &domain.Date{Time: due.Time}
	}
	return &t, nil
}
