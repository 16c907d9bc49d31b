package service

import (
	"context"

	"github.com/vormwerk/backend/internal/model"
	"github.com/vormwerk/backend/internal/repository"
	"github.com/vormwerk/backend/internal/schema"
)

// projectServiceImpl is the production implementation of ProjectService.
type projectServiceImpl struct {
	repo repository.ProjectRepository
}

// NewProjectService creates a ProjectService backed by the given repository.
func NewProjectService(repo repository.ProjectRepository) ProjectService {
	return &projectServiceImpl{repo: repo}
}

func (s *projectServiceImpl) List(ctx context.Context) ([]*model.Project, error) {
	return s.repo.List(ctx)
}

func (s *projectServiceImpl) GetByID(ctx context.Context, id string) (*model.Project, error) {
	return s.repo.GetByID(ctx, id)
}

// Create stores a new project, defaulting the status to "concept".
func (s *projectServiceImpl) Create(ctx context.Context, in *schema.ProjectCreate, imageURL string) (*model.Project, error) {
	status := in.Status
	if status == "" {
		status = model.ProjectStatusConcept
	}
	p := &model.Project{
		Title:       in.Title,
		Description: in.Description,
		Category:    in.Category,
		Status:      status,
		ImageURL:    imageURL,
	}
	if err := s.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *projectServiceImpl) Update(ctx context.Context, id string, in *schema.ProjectUpdate, imageURL *string) (*model.Project, error) {
	return s.repo.Update(ctx, id, in, imageURL)
}

func (s *projectServiceImpl) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
