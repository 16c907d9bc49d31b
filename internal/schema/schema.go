// Package schema defines the create/update payload shapes for every entity
// and validates them before they reach storage. Update payloads are
// all-pointer: a nil field was not supplied and must leave the stored value
// unchanged. Identifiers and creation timestamps are never part of a payload.
package schema

import (
	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks a payload against its struct tags. Any returned error is a
// client error (missing required field, bad enum value, malformed email).
func Validate(payload any) error {
	return validate.Struct(payload)
}

// SiteConfigUpdate is the payload for PUT /api/config. Every field is
// optional; the repository merges only the supplied ones. CompanyName is
// enforced separately when the upsert has to create the first row.
type SiteConfigUpdate struct {
	CompanyName     *string `json:"companyName"`
	Tagline         *string `json:"tagline"`
	LogoURL         *string `json:"logoUrl"`
	FaviconURL      *string `json:"faviconUrl"`
	PrimaryColor    *string `json:"primaryColor"`
	SecondaryColor  *string `json:"secondaryColor"`
	AccentColor     *string `json:"accentColor"`
	FontFamily      *string `json:"fontFamily"`
	Email           *string `json:"email"`
	Phone           *string `json:"phone"`
	Address         *string `json:"address"`
	City            *string `json:"city"`
	PostalCode      *string `json:"postalCode"`
	Country         *string `json:"country"`
	KvkNumber       *string `json:"kvkNumber"`
	BtwNumber       *string `json:"btwNumber"`
	InstagramURL    *string `json:"instagramUrl"`
	FacebookURL     *string `json:"facebookUrl"`
	LinkedinURL     *string `json:"linkedinUrl"`
	TwitterURL      *string `json:"twitterUrl"`
	YoutubeURL      *string `json:"youtubeUrl"`
	MetaTitle       *string `json:"metaTitle"`
	MetaDescription *string `json:"metaDescription"`
	MetaKeywords    *string `json:"metaKeywords"`
	OgImageURL      *string `json:"ogImageUrl"`
	FooterText      *string `json:"footerText"`
	OpeningHours    *string `json:"openingHours"`
}

// ProjectCreate is the payload for POST /api/projects.
type ProjectCreate struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Status      string `json:"status" validate:"omitempty,oneof=concept progress completed"`
}

// ProjectUpdate is the partial payload for PUT /api/projects/{id}.
type ProjectUpdate struct {
	Title       *string `json:"title" validate:"omitempty,min=1"`
	Description *string `json:"description"`
	Category    *string `json:"category"`
	Status      *string `json:"status" validate:"omitempty,oneof=concept progress completed"`
}

// ProductCreate is the payload for POST /api/products.
type ProductCreate struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description"`
	Price       string `json:"price"`
	Status      string `json:"status" validate:"omitempty,oneof=active inactive"`
}

// ProductUpdate is the partial payload for PUT /api/products/{id}.
type ProductUpdate struct {
	Title       *string `json:"title" validate:"omitempty,min=1"`
	Description *string `json:"description"`
	Price       *string `json:"price"`
	Status      *string `json:"status" validate:"omitempty,oneof=active inactive"`
}

// MessageCreate is the payload for POST /api/messages.
type MessageCreate struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
	Subject string `json:"subject" validate:"required"`
	Message string `json:"message" validate:"required"`
}

// ReplyCreate is the payload for POST /api/messages/{id}/replies.
type ReplyCreate struct {
	Reply string `json:"reply" validate:"required"`
}
