package seo

import (
	"path"
	"strings"

	"github.com/occlusa/dental-web/internal/content"
)

// OpenGraph holds og: tags.
type OpenGraph struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Image       string `json:"image"`
	Type        string `json:"type"`
	URL         string `json:"url"`
	SiteName    string `json:"siteName"`
}

// Twitter holds twitter: card tags.
type Twitter struct {
	Card  string `json:"card"`
	Image string `json:"image"`
}

// Meta is the head metadata for one page.
type Meta struct {
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Canonical   string    `json:"canonical"`
	OG          OpenGraph `json:"og"`
	Twitter     Twitter   `json:"twitter"`
}

// PageMeta overrides site-wide values for a page. Empty fields use the site settings.
type PageMeta struct {
	Title       string
	Description string
	Image       string
}

// MetaFor builds page metadata from site settings, the site base URL and the page path.
// Page titles are suffixed with the clinic name unless they already contain it.
func MetaFor(settings content.SiteSettings, baseURL, pagePath string, page PageMeta) Meta {
	title := settings.SEOTitle
	if page.Title != "" {
		title = page.Title
		if settings.ClinicName != "" && !strings.Contains(title, settings.ClinicName) {
			title += " | " + settings.ClinicName
		}
	}
	description := firstNonEmpty(page.Description, settings.SEODescription)
	image := firstNonEmpty(page.Image, settings.OGImageURL)
	canonical := Canonical(baseURL, pagePath)

	return Meta{
		Title:       title,
		Description: description,
		Canonical:   canonical,
		OG: OpenGraph{
			Title:       title,
			Description: description,
			Image:       image,
			Type:        "website",
			URL:         canonical,
			SiteName:    settings.ClinicName,
		},
		Twitter: Twitter{
			Card:  "summary_large_image",
			Image: image,
		},
	}
}

// PillarMeta builds metadata for a service pillar page.
func PillarMeta(settings content.SiteSettings, baseURL string, p content.ServicePillar) Meta {
	return MetaFor(settings, baseURL, "/services/"+p.Slug, PageMeta{
		Title:       p.SEO.Title,
		Description: p.SEO.Description,
	})
}

// Canonical joins baseURL and a cleaned path without a trailing slash.
func Canonical(baseURL, pagePath string) string {
	baseURL = strings.TrimRight(baseURL, "/")
	cleaned := path.Clean("/" + strings.TrimSpace(pagePath))
	if cleaned == "/" {
		return baseURL + "/"
	}
	return baseURL + cleaned
}
