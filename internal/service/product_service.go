package service

import (
	"context"

	"github.com/vormwerk/backend/internal/model"
	"github.com/vormwerk/backend/internal/schema"
)

// ProductService defines the business logic for catalog products.
type ProductService interface {
	List(ctx context.Context) ([]*model.Product, error)
	GetByID(ctx context.Context, id string) (*model.Product, error)
	Create(ctx context.Context, in *schema.ProductCreate, imageURL string) (*model.Product, error)
	Update(ctx context.Context, id string, in *schema.ProductUpdate, imageURL *string) (*model.Product, error)
	Delete(ctx context.Context, id string) error
}
