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

// ProjectRepository defines the persistence interface for portfolio projects.
type ProjectRepository interface {
	List(ctx context.Context) ([]*model.Project, error)
	GetByID(ctx context.Context, id string) (*model.Project, error)
	Create(ctx context.Context, project *model.Project) error
	Update(ctx context.Context, id string, in *schema.ProjectUpdate, imageURL *string) (*model.Project, error)
	Delete(ctx context.Context, id string) error
}

// PgProjectRepository is the PostgreSQL implementation of ProjectRepository.
type PgProjectRepository struct {
	pool *pgxpool.Pool
}

// NewPgProjectRepository creates a PgProjectRepository backed by the given pool.
func NewPgProjectRepository(pool *pgxpool.Pool) *PgProjectRepository {
	return &PgProjectRepository{pool: pool}
}

var _ ProjectRepository = (*PgProjectRepository)(nil)

const projectColumns = `id, title, description, category, status, image_url, created_at`

func scanProject(row pgx.Row) (*model.Project, error) {
	var p model.Project
	err := row.Scan(&p.ID, &p.Title, &p.Description, &p.Category, &p.Status, &p.ImageURL, &p.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

// List returns all projects, oldest first. The site renders the portfolio in
// creation order.
func (r *PgProjectRepository) List(ctx context.Context) ([]*model.Project, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+projectColumns+` FROM projects ORDER BY created_at ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var projects []*model.Project
	for rows.Next() {
		var p model.Project
		if err := rows.Scan(&p.ID, &p.Title, &p.Description, &p.Category, &p.Status, &p.ImageURL, &p.CreatedAt); err != nil {
			return nil, err
		}
		projects = append(projects, &p)
	}
	return projects, rows.Err()
}

// GetByID returns a single project or ErrNotFound.
func (r *PgProjectRepository) GetByID(ctx context.Context, id string) (*model.Project, error) {
	return scanProject(r.pool.QueryRow(ctx,
		`SELECT `+projectColumns+` FROM projects WHERE id = $1`, id))
}

// Create inserts a new project and populates project.ID and CreatedAt from
// the database RETURNING clause.
func (r *PgProjectRepository) Create(ctx context.Context, project *model.Project) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO projects (title, description, category, status, image_url)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id, created_at`,
		project.Title, project.Description, project.Category, project.Status, project.ImageURL,
	).Scan(&project.ID, &project.CreatedAt)
}

// Update applies only the supplied fields and returns the updated row.
// imageURL is non-nil when a new image was stored for this update.
// With nothing to change it degrades to a plain read.
func (r *PgProjectRepository) Update(ctx context.Context, id string, in *schema.ProjectUpdate, imageURL *string) (*model.Project, error) {
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
	if in.Category != nil {
		set("category", *in.Category)
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
	query := `UPDATE projects SET ` + strings.Join(sets, ", ") +
		fmt.Sprintf(` WHERE id = $%d RETURNING `, len(args)) + projectColumns

	return scanProject(r.pool.QueryRow(ctx, query, args...))
}

// Delete removes a project. Returns ErrNotFound when no row matched.
func (r *PgProjectRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM projects WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
