package testutil

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/teozhengyang/programming-helper/internal/catalog"
	"github.com/teozhengyang/programming-helper/internal/content"
	"github.com/teozhengyang/programming-helper/internal/httpserver"
	"github.com/teozhengyang/programming-helper/internal/pages"
	"github.com/teozhengyang/programming-helper/internal/render"
	"github.com/teozhengyang/programming-helper/templates"
)

// ServerOption customises the HTTP server configuration for tests.
type ServerOption func(*httpserver.Config)

// WithSite replaces the site served by the test server.
func WithSite(site *pages.Site) ServerOption {
	return func(cfg *httpserver.Config) {
		cfg.Site = site
	}
}

// WithPageCacheTTL sets the page cache lifetime. Zero disables storage.
func WithPageCacheTTL(ttl time.Duration) ServerOption {
	return func(cfg *httpserver.Config) {
		cfg.PageCacheTTL = ttl
	}
}

// WithTracing mounts the trace middleware.
func WithTracing() ServerOption {
	return func(cfg *httpserver.Config) {
		cfg.TracingEnabled = true
	}
}

// NewSite builds a site over reg with the embedded articles and templates. A nil registry uses
// the built-in one.
func NewSite(t testing.TB, reg *catalog.Registry, baseURL string) *pages.Site {
	t.Helper()

	if reg == nil {
		reg = catalog.MustDefault()
	}
	site, err := pages.New(pages.Config{
		Name:      "CodeCompass",
		BaseURL:   baseURL,
		Registry:  reg,
		Renderer:  render.New(render.WithLibrary(content.MustDefault())),
		Templates: templates.MustParse(),
	})
	if err != nil {
		t.Fatalf("build site: %v", err)
	}
	return site
}

// NewHandler returns the site router with sensible defaults for in-process requests.
func NewHandler(t testing.TB, opts ...ServerOption) http.Handler {
	t.Helper()

	cfg := httpserver.Config{
		Address:      ":0",
		PageCacheTTL: time.Minute,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.Site == nil {
		cfg.Site = NewSite(t, nil, "")
	}

	h, err := httpserver.NewHandler(cfg)
	if err != nil {
		t.Fatalf("build handler: %v", err)
	}
	return h
}

// NewServer constructs an httptest server running the site HTTP stack with sensible defaults.
func NewServer(t testing.TB, opts ...ServerOption) *httptest.Server {
	t.Helper()

	ts := httptest.NewServer(NewHandler(t, opts...))
	t.Cleanup(ts.Close)
	return ts
}
