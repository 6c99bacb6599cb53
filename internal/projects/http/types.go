package http

import (
	"context"

	"github.com/tasktrack/tracker-backend/internal/projects/domain"
)

// Service is the project behavior the HTTP layer depends on.
type Service interface {
	Create(ctx context.Context, in domain.CreateProjectInput) (*domain.Project, error)
	List(ctx context.Context) ([]domain.Project, error)
}

// Handler bundles the dependencies for projects HTTP endpoints.
type Handler struct {
	svc Service
}

func New(svc Service) *Handler {
	return &Handler{svc: svc}
}
