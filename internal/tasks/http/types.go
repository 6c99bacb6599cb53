package http

import (
	"context"

	"github.com/tasktrack/tracker-backend/internal/tasks/domain"
)

// Service is the task behavior the HTTP layer depends on.
type Service interface {
	Create(ctx context.Context, in domain.TaskInput) (*domain.Task, error)
	List(ctx context.Context, f domain.Filter) ([]domain.Task, error)
	Update(ctx context.Context, id int64, in domain.TaskInput) (*domain.Task, error)
}

// Handler bundles the dependencies for tasks HTTP endpoints.
type Handler struct {
	svc Service
}

func New(svc Service) *Handler {
	return &Handler{svc: svc}
}
