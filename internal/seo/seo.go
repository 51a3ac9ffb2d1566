package seo

import "strings"

type OpenGraph struct {
	Title       string
	Description string
	Type        string
	URL         string
}

type Meta struct {
	Title       string
	Description string
	Canonical   string
	OG          OpenGraph
}

// NewMeta fills the Open Graph fields from the page title and description.
func NewMeta(title, description, canonical, ogType string) Meta {
	return Meta{
		Title:       title,
		Description: description,
		Canonical:   canonical,
		OG: OpenGraph{
			Title:       title,
			Description: description,
			Type:        ogType,
			URL:         canonical,
		},
	}
}

// Absolute joins a site base URL and a path. An empty base yields the path unchanged.
func Absolute(baseURL, p string) string {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if p == "" || p[0] != '/' {
		p = "/" + p
	}
	if baseURL == "" {
		return p
	}
	return baseURL + p
}
