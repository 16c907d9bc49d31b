package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/vormwerk/backend/internal/model"
	"github.com/vormwerk/backend/internal/schema"
)

// SiteConfigRepository defines persistence for the singleton site
// configuration row. The table's CHECK (id = 1) guarantees at most one row.
type SiteConfigRepository interface {
	Get(ctx context.Context) (*model.SiteConfig, error)
	Upsert(ctx context.Context, in *schema.SiteConfigUpdate) (*model.SiteConfig, error)
}

// PgSiteConfigRepository is the PostgreSQL implementation of SiteConfigRepository.
type PgSiteConfigRepository struct {
	pool *pgxpool.Pool
}

// NewPgSiteConfigRepository creates a PgSiteConfigRepository backed by the given pool.
func NewPgSiteConfigRepository(pool *pgxpool.Pool) *PgSiteConfigRepository {
	return &PgSiteConfigRepository{pool: pool}
}

var _ SiteConfigRepository = (*PgSiteConfigRepository)(nil)

const siteConfigColumns = `company_name, tagline, logo_url, favicon_url,
	primary_color, secondary_color, accent_color, font_family,
	email, phone, address, city, postal_code, country,
	kvk_number, btw_number,
	instagram_url, facebook_url, linkedin_url, twitter_url, youtube_url,
	meta_title, meta_description, meta_keywords, og_image_url,
	footer_text, opening_hours, updated_at`

func scanSiteConfig(row pgx.Row) (*model.SiteConfig, error) {
	var c model.SiteConfig
	err := row.Scan(
		&c.CompanyName, &c.Tagline, &c.LogoURL, &c.FaviconURL,
		&c.PrimaryColor, &c.SecondaryColor, &c.AccentColor, &c.FontFamily,
		&c.Email, &c.Phone, &c.Address, &c.City, &c.PostalCode, &c.Country,
		&c.KvkNumber, &c.BtwNumber,
		&c.InstagramURL, &c.FacebookURL, &c.LinkedinURL, &c.TwitterURL, &c.YoutubeURL,
		&c.MetaTitle, &c.MetaDescription, &c.MetaKeywords, &c.OgImageURL,
		&c.FooterText, &c.OpeningHours, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &c, nil
}

// Get returns the configuration row or ErrNotFound when it has never been
// written.
func (r *PgSiteConfigRepository) Get(ctx context.Context) (*model.SiteConfig, error) {
	return scanSiteConfig(r.pool.QueryRow(ctx,
		`SELECT `+siteConfigColumns+` FROM site_config WHERE id = 1`))
}

// Upsert writes the supplied fields in a single statement: insert when the
// row is absent (nil fields fall back to empty defaults), otherwise update
// only the non-nil fields, leaving the rest untouched.
func (r *PgSiteConfigRepository) Upsert(ctx context.Context, in *schema.SiteConfigUpdate) (*model.SiteConfig, error) {
	return scanSiteConfig(r.pool.QueryRow(ctx, `
		INSERT INTO site_config (
			id, company_name, tagline, logo_url, favicon_url,
			primary_color, secondary_color, accent_color, font_family,
			email, phone, address, city, postal_code, country,
			kvk_number, btw_number,
			instagram_url, facebook_url, linkedin_url, twitter_url, youtube_url,
			meta_title, meta_description, meta_keywords, og_image_url,
			footer_text, opening_hours
		) VALUES (
			1, COALESCE($1, ''), COALESCE($2, ''), COALESCE($3, ''), COALESCE($4, ''),
			COALESCE($5, ''), COALESCE($6, ''), COALESCE($7, ''), COALESCE($8, ''),
			COALESCE($9, ''), COALESCE($10, ''), COALESCE($11, ''), COALESCE($12, ''), COALESCE($13, ''), COALESCE($14, ''),
			COALESCE($15, ''), COALESCE($16, ''),
			COALESCE($17, ''), COALESCE($18, ''), COALESCE($19, ''), COALESCE($20, ''), COALESCE($21, ''),
			COALESCE($22, ''), COALESCE($23, ''), COALESCE($24, ''), COALESCE($25, ''),
			COALESCE($26, ''), COALESCE($27, '')
		)
		ON CONFLICT (id) DO UPDATE SET
			company_name     = COALESCE($1, site_config.company_name),
			tagline          = COALESCE($2, site_config.tagline),
			logo_url         = COALESCE($3, site_config.logo_url),
			favicon_url      = COALESCE($4, site_config.favicon_url),
			primary_color    = COALESCE($5, site_config.primary_color),
			secondary_color  = COALESCE($6, site_config.secondary_color),
			accent_color     = COALESCE($7, site_config.accent_color),
			font_family      = COALESCE($8, site_config.font_family),
			email            = COALESCE($9, site_config.email),
			phone            = COALESCE($10, site_config.phone),
			address          = COALESCE($11, site_config.address),
			city             = COALESCE($12, site_config.city),
			postal_code      = COALESCE($13, site_config.postal_code),
			country          = COALESCE($14, site_config.country),
			kvk_number       = COALESCE($15, site_config.kvk_number),
			btw_number       = COALESCE($16, site_config.btw_number),
			instagram_url    = COALESCE($17, site_config.instagram_url),
			facebook_url     = COALESCE($18, site_config.facebook_url),
			linkedin_url     = COALESCE($19, site_config.linkedin_url),
			twitter_url      = COALESCE($20, site_config.twitter_url),
			youtube_url      = COALESCE($21, site_config.youtube_url),
			meta_title       = COALESCE($22, site_config.meta_title),
			meta_description = COALESCE($23, site_config.meta_description),
			meta_keywords    = COALESCE($24, site_config.meta_keywords),
			og_image_url     = COALESCE($25, site_config.og_image_url),
			footer_text      = COALESCE($26, site_config.footer_text),
			opening_hours    = COALESCE($27, site_config.opening_hours),
			updated_at       = NOW()
		RETURNING `+siteConfigColumns,
		in.CompanyName, in.Tagline, in.LogoURL, in.FaviconURL,
		in.PrimaryColor, in.SecondaryColor, in.AccentColor, in.FontFamily,
		in.Email, in.Phone, in.Address, in.City, in.PostalCode, in.Country,
		in.KvkNumber, in.BtwNumber,
		in.InstagramURL, in.FacebookURL, in.LinkedinURL, in.TwitterURL, in.YoutubeURL,
		in.MetaTitle, in.MetaDescription, in.MetaKeywords, in.OgImageURL,
		in.FooterText, in.OpeningHours,
	))
}
