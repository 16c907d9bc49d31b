package service

import (
	"context"
	"errors"

	"github.com/vormwerk/backend/internal/model"
	"github.com/vormwerk/backend/internal/schema"
)

// ErrCompanyNameRequired is returned when the very first configuration write
// omits the company name. Once a row exists the field is optional.
var ErrCompanyNameRequired = errors.New("company name required")

// SiteConfigService defines the business logic for the site configuration
// singleton.
type SiteConfigService interface {
	// Get returns the configuration, creating the default row on first read.
	Get(ctx context.Context) (*model.SiteConfig, error)

	// Update merges the supplied fields into the configuration, creating the
	// row when absent. Returns ErrCompanyNameRequired when the row has to be
	// created and no company name was supplied.
	Update(ctx context.Context, in *schema.SiteConfigUpdate) (*model.SiteConfig, error)
}
