package model

import "time"

// SiteConfig is the singleton row holding site-wide branding, contact and
// SEO settings. CompanyName is the only required field; everything else
// defaults to the empty string.
//
// JSON keys are camelCase: the frontend consumes these fields directly.
type SiteConfig struct {
	CompanyName     string    `json:"companyName"`
	Tagline         string    `json:"tagline"`
	LogoURL         string    `json:"logoUrl"`
	FaviconURL      string    `json:"faviconUrl"`
	PrimaryColor    string    `json:"primaryColor"`
	SecondaryColor  string    `json:"secondaryColor"`
	AccentColor     string    `json:"accentColor"`
	FontFamily      string    `json:"fontFamily"`
	Email           string    `json:"email"`
	Phone           string    `json:"phone"`
	Address         string    `json:"address"`
	City            string    `json:"city"`
	PostalCode      string    `json:"postalCode"`
	Country         string    `json:"country"`
	KvkNumber       string    `json:"kvkNumber"`
	BtwNumber       string    `json:"btwNumber"`
	InstagramURL    string    `json:"instagramUrl"`
	FacebookURL     string    `json:"facebookUrl"`
	LinkedinURL     string    `json:"linkedinUrl"`
	TwitterURL      string    `json:"twitterUrl"`
	YoutubeURL      string    `json:"youtubeUrl"`
	MetaTitle       string    `json:"metaTitle"`
	MetaDescription string    `json:"metaDescription"`
	MetaKeywords    string    `json:"metaKeywords"`
	OgImageURL      string    `json:"ogImageUrl"`
	FooterText      string    `json:"footerText"`
	OpeningHours    string    `json:"openingHours"`
	UpdatedAt       time.Time `json:"updatedAt"`
}
