package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	defaultEnvFile         = ".env"
	defaultAddr            = ":8080"
	defaultReadTimeout     = 15 * time.Second
	defaultWriteTimeout    = 30 * time.Second
	defaultIdleTimeout     = 120 * time.Second
	defaultShutdownTimeout = 10 * time.Second
	defaultRequestTimeout  = 30 * time.Second
	defaultSiteName        = "CodeCompass"
	defaultPageCacheTTL    = 5 * time.Minute
	defaultLogLevel        = "info"
	defaultExportWorkers   = 8
)

// Config captures all runtime configuration organised by concern.
type Config struct {
	Server        ServerConfig
	Site          SiteConfig
	Observability ObservabilityConfig
	Export        ExportConfig
}

// ServerConfig configures HTTP server parameters.
type ServerConfig struct {
	Addr            string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	IdleTimeout     time.Duration
	ShutdownTimeout time.Duration
	RequestTimeout  time.Duration
}

// SiteConfig controls how pages are rendered and cached.
type SiteConfig struct {
	Name         string
	BaseURL      string
	PageCacheTTL time.Duration
	// Dev disables the page cache so template and content edits show up on reload.
	Dev bool
}

// ObservabilityConfig toggles logging verbosity and tracing.
type ObservabilityConfig struct {
	LogLevel       string
	TracingEnabled bool
}

// ExportConfig controls static site generation.
type ExportConfig struct {
	Concurrency int
}

// ValidationError is returned when configuration fields are missing or invalid.
type ValidationError struct {
	fields []string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("config validation failed: missing or invalid fields [%s]", strings.Join(e.fields, ", "))
}

// Fields returns a copy of the missing/invalid field list.
func (e *ValidationError) Fields() []string {
	out := make([]string, len(e.fields))
	copy(out, e.fields)
	return out
}

// Option customises Load behaviour.
type Option func(*loaderOptions)

type loaderOptions struct {
	envFile      string
	envMap       map[string]string
	useSystemEnv bool
}

// WithEnvFile overrides the .env file path used for local overrides. An empty path disables it.
func WithEnvFile(path string) Option {
	return func(o *loaderOptions) {
		o.envFile = path
	}
}

// WithEnvMap injects an explicit key/value map for environment lookups. Values in the map
// take precedence over system environment variables.
func WithEnvMap(values map[string]string) Option {
	return func(o *loaderOptions) {
		o.envMap = values
	}
}

// WithoutSystemEnv ignores the process environment.
func WithoutSystemEnv() Option {
	return func(o *loaderOptions) {
		o.useSystemEnv = false
	}
}

// Load resolves configuration with precedence defaults < .env < OS environment < explicit map.
func Load(opts ...Option) (Config, error) {
	options := loaderOptions{
		envFile:      defaultEnvFile,
		useSystemEnv: true,
	}
	for _, opt := range opts {
		opt(&options)
	}

	dotEnvValues, err := loadDotEnv(options.envFile)
	if err != nil {
		return Config{}, err
	}

	src := &source{lookup: func(key string) (string, bool) {
		if options.envMap != nil {
			if value, ok := options.envMap[key]; ok {
				return value, true
			}
		}
		if options.useSystemEnv {
			if value, ok := os.LookupEnv(key); ok {
				return value, true
			}
		}
		if dotEnvValues != nil {
			if value, ok := dotEnvValues[key]; ok {
				return value, true
			}
		}
		return "", false
	}}

	addr := src.stringWithDefault("HELPER_HTTP_ADDR", "")
	if addr == "" {
		if port := src.stringWithDefault("PORT", ""); port != "" {
			addr = ":" + port
		} else {
			addr = defaultAddr
		}
	}

	cfg := Config{
		Server: ServerConfig{
			Addr:            addr,
			ReadTimeout:     src.durationWithDefault("HELPER_READ_TIMEOUT", defaultReadTimeout),
			WriteTimeout:    src.durationWithDefault("HELPER_WRITE_TIMEOUT", defaultWriteTimeout),
			IdleTimeout:     src.durationWithDefault("HELPER_IDLE_TIMEOUT", defaultIdleTimeout),
			ShutdownTimeout: src.durationWithDefault("HELPER_SHUTDOWN_TIMEOUT", defaultShutdownTimeout),
			RequestTimeout:  src.durationWithDefault("HELPER_REQUEST_TIMEOUT", defaultRequestTimeout),
		},
		Site: SiteConfig{
			Name:         strings.TrimSpace(src.stringWithDefault("HELPER_SITE_NAME", defaultSiteName)),
			BaseURL:      strings.TrimRight(strings.TrimSpace(src.stringWithDefault("HELPER_BASE_URL", "")), "/"),
			PageCacheTTL: src.durationWithDefault("HELPER_PAGE_CACHE_TTL", defaultPageCacheTTL),
			Dev:          src.boolWithDefault("HELPER_DEV", false),
		},
		Observability: ObservabilityConfig{
			LogLevel:       strings.ToLower(strings.TrimSpace(src.stringWithDefault("LOG_LEVEL", defaultLogLevel))),
			TracingEnabled: src.boolWithDefault("HELPER_TRACING_ENABLED", false),
		},
		Export: ExportConfig{
			Concurrency: src.intWithDefault("HELPER_EXPORT_CONCURRENCY", defaultExportWorkers),
		},
	}

	if err := validateConfig(cfg, src.invalid); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func validateConfig(cfg Config, invalid []string) error {
	fields := append([]string(nil), invalid...)

	for _, d := range []struct {
		name  string
		value time.Duration
	}{
		{"Server.ReadTimeout", cfg.Server.ReadTimeout},
		{"Server.WriteTimeout", cfg.Server.WriteTimeout},
		{"Server.IdleTimeout", cfg.Server.IdleTimeout},
		{"Server.ShutdownTimeout", cfg.Server.ShutdownTimeout},
		{"Server.RequestTimeout", cfg.Server.RequestTimeout},
	} {
		if d.value <= 0 {
			fields = append(fields, d.name)
		}
	}
	if cfg.Site.Name == "" {
		fields = append(fields, "Site.Name")
	}
	if cfg.Site.PageCacheTTL < 0 {
		fields = append(fields, "Site.PageCacheTTL")
	}
	if cfg.Site.BaseURL != "" {
		u, err := url.Parse(cfg.Site.BaseURL)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			fields = append(fields, "Site.BaseURL")
		}
	}
	if cfg.Export.Concurrency <= 0 {
		fields = append(fields, "Export.Concurrency")
	}
	switch cfg.Observability.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		fields = append(fields, "Observability.LogLevel")
	}

	if len(fields) > 0 {
		return &ValidationError{fields: fields}
	}
	return nil
}

func loadDotEnv(path string) (map[string]string, error) {
	if path == "" {
		return nil, nil
	}
	values, err := godotenv.Read(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("config: unable to read %s: %w", path, err)
	}
	return values, nil
}

// source wraps the lookup chain and records keys whose values fail to parse.
type source struct {
	lookup  func(string) (string, bool)
	invalid []string
}

func (s *source) stringWithDefault(key, fallback string) string {
	if value, ok := s.lookup(key); ok && value != "" {
		return value
	}
	return fallback
}

func (s *source) durationWithDefault(key string, fallback time.Duration) time.Duration {
	if value, ok := s.lookup(key); ok && value != "" {
		d, err := time.ParseDuration(value)
		if err == nil {
			return d
		}
		s.invalid = append(s.invalid, key)
	}
	return fallback
}

func (s *source) intWithDefault(key string, fallback int) int {
	if value, ok := s.lookup(key); ok && value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
		s.invalid = append(s.invalid, key)
	}
	return fallback
}

func (s *source) boolWithDefault(key string, fallback bool) bool {
	if value, ok := s.lookup(key); ok && value != "" {
		switch strings.ToLower(value) {
		case "true", "1", "yes", "on":
			return true
		case "false", "0", "no", "off":
			return false
		}
		s.invalid = append(s.invalid, key)
	}
	return fallback
}
