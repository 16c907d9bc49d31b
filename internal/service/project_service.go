package service

import (
	"context"

	"github.com/vormwerk/backend/internal/model"
	"github.com/vormwerk/backend/internal/schema"
)

// ProjectService defines the business logic for portfolio projects.
type ProjectService interface {
	List(ctx context.Context) ([]*model.Project, error)
	GetByID(ctx context.Context, id string) (*model.Project, error)

	// Create stores a new project. imageURL is the public URL of an uploaded
	// image, or empty. The project's ID and CreatedAt are populated by the
	// implementation.
	Create(ctx context.Context, in *schema.ProjectCreate, imageURL string) (*model.Project, error)

	// Update applies only the supplied fields. imageURL is non-nil when a new
	// image was uploaded with this update.
	Update(ctx context.Context, id string, in *schema.ProjectUpdate, imageURL *string) (*model.Project, error)

	Delete(ctx context.Context, id string) error
}
