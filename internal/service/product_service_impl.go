package service

import (
	"context"

	"github.com/vormwerk/backend/internal/model"
	"github.com/vormwerk/backend/internal/repository"
	"github.com/vormwerk/backend/internal/schema"
)

// productServiceImpl is the production implementation of ProductService.
type productServiceImpl struct {
	repo repository.ProductRepository
}

// NewProductService creates a ProductService backed by the given repository.
func NewProductService(repo repository.ProductRepository) ProductService {
	return &productServiceImpl{repo: repo}
}

func (s *productServiceImpl) List(ctx context.Context) ([]*model.Product, error) {
	return s.repo.List(ctx)
}

func (s *productServiceImpl) GetByID(ctx context.Context, id string) (*model.Product, error) {
	return s.repo.GetByID(ctx, id)
}

// Create stores a new product, defaulting the status to "active".
func (s *productServiceImpl) Create(ctx context.Context, in *schema.ProductCreate, imageURL string) (*model.Product, error) {
	status := in.Status
	if status == "" {
		status = model.ProductStatusActive
	}
	p := &model.Product{
		Title:       in.Title,
		Description: in.Description,
		Price:       in.Price,
		Status:      status,
		ImageURL:    imageURL,
	}
	if err := s.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *productServiceImpl) Update(ctx context.Context, id string, in *schema.ProductUpdate, imageURL *string) (*model.Product, error) {
	return s.repo.Update(ctx, id, in, imageURL)
}

func (s *productServiceImpl) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
