package httpserver

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/teozhengyang/programming-helper/internal/pages"
	"github.com/teozhengyang/programming-helper/internal/platform/observability"
	"github.com/teozhengyang/programming-helper/public"
)

// Config holds runtime options for the site HTTP server.
type Config struct {
	Address        string
	Site           *pages.Site
	Logger         *zap.Logger
	ReadTimeout    time.Duration
	WriteTimeout   time.Duration
	IdleTimeout    time.Duration
	RequestTimeout time.Duration
	TracingEnabled bool

	// PageCacheTTL of zero renders every request.
	PageCacheTTL time.Duration

	// Registry receives the HTTP collectors. A private registry is created when nil.
	Registry *prometheus.Registry
}

// New constructs the HTTP server with the middleware stack, page routes and embedded assets.
func New(cfg Config) (*http.Server, error) {
	handler, err := NewHandler(cfg)
	if err != nil {
		return nil, err
	}
	return &http.Server{
		Addr:              firstNonEmpty(cfg.Address, ":8080"),
		Handler:           handler,
		ReadTimeout:       positiveOr(cfg.ReadTimeout, 15*time.Second),
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      positiveOr(cfg.WriteTimeout, 30*time.Second),
		IdleTimeout:       positiveOr(cfg.IdleTimeout, 120*time.Second),
	}, nil
}

// NewHandler builds the router without binding a listener.
func NewHandler(cfg Config) (http.Handler, error) {
	if cfg.Site == nil {
		return nil, errors.New("httpserver: site is required")
	}
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	assets, err := public.Assets()
	if err != nil {
		return nil, fmt.Errorf("httpserver: embed assets: %w", err)
	}
	m := newMetrics(cfg.Registry)
	h := &handlers{
		site:    cfg.Site,
		cache:   newPageCache(cfg.PageCacheTTL),
		metrics: m,
	}

	router := chi.NewRouter()
	router.Use(observability.RequestIDMiddleware)
	router.Use(chimw.RealIP)
	router.Use(observability.InjectLoggerMiddleware(logger))
	if cfg.TracingEnabled {
		router.Use(observability.TraceMiddleware)
	}
	router.Use(observability.RequestLoggerMiddleware)
	router.Use(observability.RecoveryMiddleware(logger))
	router.Use(m.middleware)
	router.Use(chimw.Compress(5))
	router.Use(chimw.Timeout(positiveOr(cfg.RequestTimeout, 30*time.Second)))
	router.Use(chimw.GetHead)

	router.Get("/", h.home)
	router.Get("/healthz", h.healthz)
	router.Method(http.MethodGet, "/metrics", m.handler())
	router.Get("/sitemap.xml", h.sitemap)
	router.Method(http.MethodGet, "/assets/*", assetsHandler(assets))
	router.Get("/{section}", h.section)
	router.Get("/{section}/{topic}", h.topic)
	router.NotFound(h.notFound)

	return router, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}

func positiveOr(d, fallback time.Duration) time.Duration {
	if d > 0 {
		return d
	}
	return fallback
}
