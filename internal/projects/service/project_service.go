package service

import (
	"context"

	"github.com/tasktrack/tracker-backend/internal/apperr"
	"github.com/tasktrack/tracker-backend/internal/projects/domain"
	"github.com/tasktrack/tracker-backend/internal/projects/repository"
)

// ProjectService handles project-related business logic
type ProjectService struct {
	repo repository.Repository
}

// NewProjectService creates a new project service
func NewProjectService(repo repository.Repository) *ProjectService {
	return &ProjectService{
		repo: repo,
	}
}

// Create validates the input and stores a new project. An empty description
// is stored as NULL.
func (s *ProjectService) Create(ctx context.Context, in domain.CreateProjectInput) (*domain.Project, error) {
	if in.Name == "" {
		return nil, apperr.Validation("Name is required")
	}

	desc := in.Description
	if desc != nil && *desc == "" {
		desc = nil
	}
	return s.repo.Create(ctx, in.Name, desc)
}

// List returns all projects, newest first
func (s *ProjectService) List(ctx context.Context) ([]domain.Project, error) {
	return s.repo.List(ctx)
}
