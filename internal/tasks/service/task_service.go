package service

import (
	"context"

	"github.com/tasktrack/tracker-backend/internal/apperr"
	"github.com/tasktrack/tracker-backend/internal/tasks/domain"
	"github.com/tasktrack/tracker-backend/internal/tasks/repository"
)

// TaskService handles task-related business logic
type TaskService struct {
	repo repository.Repository
}

// NewTaskService creates a new task service
func NewTaskService(repo repository.Repository) *TaskService {
	return &TaskService{
		repo: repo,
	}
}

// Create requires title and user_name, then stores the task with
// project_id, description and due_date nulled when empty and status
// defaulted to "not started".
func (s *TaskService) Create(ctx context.Context, in domain.TaskInput) (*domain.Task, error) {
	if isEmpty(in.Title) || isEmpty(in.UserName) {
		return nil, apperr.Validation("Title and user name are required")
	}

	w, err := normalize(in)
	if err != nil {
		return nil, err
	}
	if isEmpty(w.Status) {
		status := domain.DefaultStatus
		w.Status = &status
	}
	return s.repo.Create(ctx, w)
}

// List returns tasks matching f, newest first
func (s *TaskService) List(ctx context.Context, f domain.Filter) ([]domain.Task, error) {
	return s.repo.List(ctx, f)
}

// Update replaces every mutable field of task id. Nothing is required and
// status is written exactly as supplied.
func (s *TaskService) Update(ctx context.Context, id int64, in domain.TaskInput) (*domain.Task, error) {
	w, err := normalize(in)
	if err != nil {
		return nil, err
	}
	return s.repo.Update(ctx, id, w)
}

// normalize applies the null policy shared by create and update.
func normalize(in domain.TaskInput) (domain.TaskWrite, error) {
	w := domain.TaskWrite{
		ProjectID: in.ProjectID.Ptr(),
		Title:     in.Title,
		Status:    in.Status,
		UserName:  in.UserName,
	}
	if !isEmpty(in.Description) {
		w.Description = in.Description
	}
	if !isEmpty(in.DueDate) {
		d, err := domain.ParseDate(*in.DueDate)
		if err != nil {
			return domain.TaskWrite{}, apperr.Validation("Invalid due_date")
		}
		w.DueDate = &d
	}
	return w, nil
}

func isEmpty(s *string) bool {
	return s == nil || *s == ""
}
