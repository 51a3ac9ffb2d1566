// Package export writes the whole site as static files: one index.html per page, meta-refresh
// stubs for section roots, 404.html, sitemap.xml and the embedded assets.
package export

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/teozhengyang/programming-helper/internal/pages"
	"github.com/teozhengyang/programming-helper/public"
)

const defaultConcurrency = 8

// Options configures an export run.
type Options struct {
	OutDir      string
	Site        *pages.Site
	Concurrency int
	Logger      *zap.Logger
}

// Result summarises what was written.
type Result struct {
	Topics    int
	Redirects int
	Files     int
}

// Run renders every route of the site into opts.OutDir. Pages render concurrently; the first
// failure cancels the remaining work.
func Run(ctx context.Context, opts Options) (Result, error) {
	if strings.TrimSpace(opts.OutDir) == "" {
		return Result{}, errors.New("export: output directory is required")
	}
	if opts.Site == nil {
		return Result{}, errors.New("export: site is required")
	}
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	limit := opts.Concurrency
	if limit <= 0 {
		limit = defaultConcurrency
	}
	if err := os.MkdirAll(opts.OutDir, 0o755); err != nil {
		return Result{}, fmt.Errorf("export: create %s: %w", opts.OutDir, err)
	}

	w := &writer{root: opts.OutDir}
	var topics, redirects atomic.Int64

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)
	for _, route := range opts.Site.Routes() {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			body, err := renderRoute(gctx, opts.Site, route)
			if err != nil {
				return fmt.Errorf("export: %s: %w", route.Path, err)
			}
			if err := w.page(route.Path, body); err != nil {
				return err
			}
			switch route.Kind {
			case pages.RouteTopic:
				topics.Add(1)
			case pages.RouteRedirect:
				redirects.Add(1)
			}
			logger.Debug("exported page", zap.String("path", route.Path), zap.String("kind", route.Kind))
			return nil
		})
	}
	g.Go(func() error {
		body, err := opts.Site.RenderBytes(opts.Site.NotFound("/404.html"))
		if err != nil {
			return fmt.Errorf("export: 404: %w", err)
		}
		return w.file("404.html", body)
	})
	g.Go(func() error {
		body, err := opts.Site.Sitemap()
		if err != nil {
			return err
		}
		return w.file("sitemap.xml", body)
	})
	g.Go(func() error {
		assets, err := public.Assets()
		if err != nil {
			return fmt.Errorf("export: assets: %w", err)
		}
		for _, a := range assets {
			if err := w.file(filepath.Join("assets", filepath.FromSlash(a.Name)), a.Data); err != nil {
				return err
			}
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return Result{}, err
	}
	res := Result{
		Topics:    int(topics.Load()),
		Redirects: int(redirects.Load()),
		Files:     int(w.count.Load()),
	}
	logger.Info("export complete",
		zap.String("out", opts.OutDir),
		zap.Int("topics", res.Topics),
		zap.Int("redirects", res.Redirects),
		zap.Int("files", res.Files),
	)
	return res, nil
}

func renderRoute(ctx context.Context, site *pages.Site, route pages.Route) ([]byte, error) {
	switch route.Kind {
	case pages.RouteHome:
		return site.RenderBytes(site.Home())
	case pages.RouteRedirect:
		return site.RenderBytes(site.Redirect(route.Path, route.Target))
	case pages.RouteTopic:
		parts := strings.Split(strings.TrimPrefix(route.Path, "/"), "/")
		if len(parts) != 2 {
			return nil, fmt.Errorf("unexpected topic path %q", route.Path)
		}
		data, err := site.Topic(ctx, parts[0], parts[1])
		if err != nil {
			return nil, err
		}
		return site.RenderBytes(data)
	}
	return nil, fmt.Errorf("unknown route kind %q", route.Kind)
}

type writer struct {
	root  string
	count atomic.Int64
}

// page writes body as the index.html of the directory matching urlPath.
func (w *writer) page(urlPath string, body []byte) error {
	rel := filepath.FromSlash(strings.Trim(urlPath, "/"))
	return w.file(filepath.Join(rel, "index.html"), body)
}

func (w *writer) file(rel string, body []byte) error {
	dst := filepath.Join(w.root, rel)
	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return fmt.Errorf("export: create dir for %s: %w", rel, err)
	}
	if err := os.WriteFile(dst, body, 0o644); err != nil {
		return fmt.Errorf("export: write %s: %w", rel, err)
	}
	w.count.Add(1)
	return nil
}
