package service

import (
	"context"
	"errors"

	"github.com/vormwerk/backend/internal/model"
	"github.com/vormwerk/backend/internal/repository"
	"github.com/vormwerk/backend/internal/schema"
)

// defaultCompanyName is used when the configuration row is created lazily on
// a first read, before anyone has configured anything.
const defaultCompanyName = "Vormwerk Studio"

// siteConfigServiceImpl is the production implementation of SiteConfigService.
type siteConfigServiceImpl struct {
	repo repository.SiteConfigRepository
}

// NewSiteConfigService creates a SiteConfigService backed by the given repository.
func NewSiteConfigService(repo repository.SiteConfigRepository) SiteConfigService {
	return &siteConfigServiceImpl{repo: repo}
}

// Get returns the configuration row, creating it with defaults when the
// table has never been written.
func (s *siteConfigServiceImpl) Get(ctx context.Context) (*model.SiteConfig, error) {
	cfg, err := s.repo.Get(ctx)
	if errors.Is(err, repository.ErrNotFound) {
		name := defaultCompanyName
		return s.repo.Upsert(ctx, &schema.SiteConfigUpdate{CompanyName: &name})
	}
	return cfg, err
}

// Update merges the supplied fields. When no row exists yet the company name
// must be part of the payload.
func (s *siteConfigServiceImpl) Update(ctx context.Context, in *schema.SiteConfigUpdate) (*model.SiteConfig, error) {
	if _, err := s.repo.Get(ctx); errors.Is(err, repository.ErrNotFound) {
		if in.CompanyName == nil || *in.CompanyName == "" {
			return nil, ErrCompanyNameRequired
		}
	} else if err != nil {
		return nil, err
	}
	return s.repo.Upsert(ctx, in)
}
