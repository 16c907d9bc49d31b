package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/vormwerk/backend/internal/model"
	"github.com/vormwerk/backend/internal/schema"
)

// ProductRepository defines the persistence interface for catalog products.
type ProductRepository interface {
	List(ctx context.Context) ([]*model.Product, error)
	GetByID(ctx context.Context, id string) (*model.Product, error)
	Create(ctx context.Context, product *model.Product) error
	Update(ctx context.Context, id string, in *schema.ProductUpdate, imageURL *string) (*model.Product, error)
	Delete(ctx context.Context, id string) error
}

// PgProductRepository is the PostgreSQL implementation of ProductRepository.
type PgProductRepository struct {
	pool *pgxpool.Pool
}

// NewPgProductRepository creates a PgProductRepository backed by the given pool.
func NewPgProductRepository(pool *pgxpool.Pool) *PgProductRepository {
	return &PgProductRepository{pool: pool}
}

var _ ProductRepository = (*PgProductRepository)(nil)

const productColumns = `id, title, description, price, status, image_url, created_at`

func scanProduct(row pgx.Row) (*model.Product, error) {
	var p model.Product
	err := row.Scan(&p.ID, &p.Title, &p.Description, &p.Price, &p.Status, &p.ImageURL, &p.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

// List returns all products, oldest first.
func (r *PgProductRepository) List(ctx context.Context) ([]*model.Product, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+productColumns+` FROM products ORDER BY created_at ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var products []*model.Product
	for rows.Next() {
		var p model.Product
		if err := rows.Scan(&p.ID, &p.Title, &p.Description, &p.Price, &p.Status, &p.ImageURL, &p.CreatedAt); err != nil {
			return nil, err
		}
		products = append(products, &p)
	}
	return products, rows.Err()
}

// GetByID returns a single product or ErrNotFound.
func (r *PgProductRepository) GetByID(ctx context.Context, id string) (*model.Product, error) {
	return scanProduct(r.pool.QueryRow(ctx,
		`SELECT `+productColumns+` FROM products WHERE id = $1`, id))
}

// Create inserts a new product and populates product.ID and CreatedAt from
// the database RETURNING clause.
func (r *PgProductRepository) Create(ctx context.Context, product *model.Product) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO products (title, description, price, status, image_url)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id, created_at`,
		product.Title, product.Description, product.Price, product.Status, product.ImageURL,
	).Scan(&product.ID, &product.CreatedAt)
}

// Update applies only the supplied fields and returns the updated row.
func (r *PgProductRepository) Update(ctx context.Context, id string, in *schema.ProductUpdate, imageURL *string) (*model.Product, error) {
	var sets []string
	var args []any
	set := func(col string, v any) {
		args = append(args, v)
		sets = append(sets, fmt.Sprintf("%s = $%d", col, len(args)))
	}

	if in.Title != nil {
		set("title", *in.Title)
	}
	if in.Description != nil {
		set("description", *in.Description)
	}
	if in.Price != nil {
		set("price", *in.Price)
	}
	if in.Status != nil {
		set("status", *in.Status)
	}
	if imageURL != nil {
		set("image_url", *imageURL)
	}

	if len(sets) == 0 {
		return r.GetByID(ctx, id)
	}

	args = append(args, id)
	query := `UPDATE products SET ` + strings.Join(sets, ", ") +
		fmt.Sprintf(` WHERE id = $%d RETURNING `, len(args)) + productColumns

	return scanProduct(r.pool.QueryRow(ctx, query, args...))
}

// Delete removes a product. Returns ErrNotFound when no row matched.
func (r *PgProductRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
