package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"github.com/teozhengyang/programming-helper/internal/catalog"
	"github.com/teozhengyang/programming-helper/internal/content"
	"github.com/teozhengyang/programming-helper/internal/export"
	"github.com/teozhengyang/programming-helper/internal/httpserver"
	"github.com/teozhengyang/programming-helper/internal/pages"
	"github.com/teozhengyang/programming-helper/internal/platform/config"
	"github.com/teozhengyang/programming-helper/internal/platform/observability"
	"github.com/teozhengyang/programming-helper/internal/render"
	"github.com/teozhengyang/programming-helper/templates"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newApp().Run(ctx, os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		stop()
		os.Exit(1)
	}
}

func newApp() *cli.Command {
	return &cli.Command{
		Name:  "web",
		Usage: "Programming reference site",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "env-file", Value: ".env", Usage: "dotenv file read before the environment"},
		},
		Commands: []*cli.Command{
			serveCmd(),
			exportCmd(),
			routesCmd(),
		},
	}
}

func serveCmd() *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "Serve the site over HTTP",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "addr", Usage: "listen address (overrides HELPER_HTTP_ADDR)"},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			overrides := map[string]string{}
			if addr := cmd.String("addr"); addr != "" {
				overrides["HELPER_HTTP_ADDR"] = addr
			}
			env, err := setup(cmd, overrides)
			if err != nil {
				return err
			}
			defer func() { _ = env.logger.Sync() }()

			cacheTTL := env.cfg.Site.PageCacheTTL
			if env.cfg.Site.Dev {
				cacheTTL = 0
			}
			srv, err := httpserver.New(httpserver.Config{
				Address:        env.cfg.Server.Addr,
				Site:           env.site,
				Logger:         env.logger,
				ReadTimeout:    env.cfg.Server.ReadTimeout,
				WriteTimeout:   env.cfg.Server.WriteTimeout,
				IdleTimeout:    env.cfg.Server.IdleTimeout,
				RequestTimeout: env.cfg.Server.RequestTimeout,
				TracingEnabled: env.cfg.Observability.TracingEnabled,
				PageCacheTTL:   cacheTTL,
			})
			if err != nil {
				return err
			}
			return serve(ctx, srv, env)
		},
	}
}

func serve(ctx context.Context, srv *http.Server, env *environment) error {
	errCh := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	env.logger.Info("web listening",
		zap.String("addr", srv.Addr),
		zap.Bool("dev", env.cfg.Site.Dev),
		zap.Duration("page_cache_ttl", env.cfg.Site.PageCacheTTL),
	)

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("http server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), env.cfg.Server.ShutdownTimeout)
	defer cancel()
	env.logger.Info("shutting down", zap.Duration("timeout", env.cfg.Server.ShutdownTimeout))
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}
	return nil
}

func exportCmd() *cli.Command {
	return &cli.Command{
		Name:  "export",
		Usage: "Write the site as static files",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "out", Required: true, Usage: "output directory"},
			&cli.StringFlag{Name: "base-url", Usage: "absolute site URL for canonical links and the sitemap (overrides HELPER_BASE_URL)"},
			&cli.IntFlag{Name: "concurrency", Usage: "pages rendered in parallel (overrides HELPER_EXPORT_CONCURRENCY)"},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			overrides := map[string]string{}
			if base := cmd.String("base-url"); base != "" {
				overrides["HELPER_BASE_URL"] = base
			}
			if n := cmd.Int("concurrency"); n != 0 {
				overrides["HELPER_EXPORT_CONCURRENCY"] = fmt.Sprint(n)
			}
			env, err := setup(cmd, overrides)
			if err != nil {
				return err
			}
			defer func() { _ = env.logger.Sync() }()

			res, err := export.Run(ctx, export.Options{
				OutDir:      cmd.String("out"),
				Site:        env.site,
				Concurrency: env.cfg.Export.Concurrency,
				Logger:      env.logger,
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(writer(cmd), "exported %d topics, %d redirects (%d files) to %s\n",
				res.Topics, res.Redirects, res.Files, cmd.String("out"))
			return nil
		},
	}
}

func routesCmd() *cli.Command {
	return &cli.Command{
		Name:  "routes",
		Usage: "List every page path of the site",
		Action: func(_ context.Context, cmd *cli.Command) error {
			env, err := setup(cmd, nil)
			if err != nil {
				return err
			}
			w := writer(cmd)
			for _, r := range env.site.Routes() {
				if r.Target != "" {
					fmt.Fprintf(w, "%-9s %s -> %s\n", r.Kind, r.Path, r.Target)
					continue
				}
				fmt.Fprintf(w, "%-9s %s\n", r.Kind, r.Path)
			}
			return nil
		},
	}
}

type environment struct {
	cfg    config.Config
	logger *zap.Logger
	site   *pages.Site
}

// setup loads configuration, the logger and the site shared by every command.
func setup(cmd *cli.Command, overrides map[string]string) (*environment, error) {
	cfg, err := config.Load(
		config.WithEnvFile(cmd.String("env-file")),
		config.WithEnvMap(overrides),
	)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	logger, err := observability.NewLogger(cfg.Observability.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}
	logger = logger.Named("web")

	reg, err := catalog.Default()
	if err != nil {
		return nil, fmt.Errorf("load registry: %w", err)
	}
	lib, err := content.Default()
	if err != nil {
		return nil, fmt.Errorf("load articles: %w", err)
	}
	tmpl, err := templates.Parse(templates.FS())
	if err != nil {
		return nil, err
	}
	site, err := pages.New(pages.Config{
		Name:      cfg.Site.Name,
		BaseURL:   cfg.Site.BaseURL,
		Registry:  reg,
		Renderer:  render.New(render.WithLibrary(lib), render.WithLogger(logger)),
		Templates: tmpl,
	})
	if err != nil {
		return nil, err
	}
	logger.Debug("site ready",
		zap.Int("topics", len(reg.Topics())),
		zap.Int("articles", lib.Len()),
	)
	return &environment{cfg: cfg, logger: logger, site: site}, nil
}

func writer(cmd *cli.Command) io.Writer {
	if root := cmd.Root(); root != nil && root.Writer != nil {
		return root.Writer
	}
	return os.Stdout
}
