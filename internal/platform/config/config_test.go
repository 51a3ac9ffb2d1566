package config

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"
)

func TestLoadWithDefaults(t *testing.T) {
	cfg, err := Load(WithEnvMap(map[string]string{}), WithoutSystemEnv(), WithEnvFile(""))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	if cfg.Server.Addr != ":8080" {
		t.Errorf("expected default addr :8080, got %s", cfg.Server.Addr)
	}
	if cfg.Server.ReadTimeout != 15*time.Second {
		t.Errorf("unexpected read timeout: %s", cfg.Server.ReadTimeout)
	}
	if cfg.Server.ShutdownTimeout != defaultShutdownTimeout {
		t.Errorf("unexpected shutdown timeout: %s", cfg.Server.ShutdownTimeout)
	}
	if cfg.Site.Name != "CodeCompass" {
		t.Errorf("expected default site name, got %s", cfg.Site.Name)
	}
	if cfg.Site.BaseURL != "" {
		t.Errorf("expected empty base url, got %s", cfg.Site.BaseURL)
	}
	if cfg.Site.PageCacheTTL != defaultPageCacheTTL {
		t.Errorf("unexpected cache ttl: %s", cfg.Site.PageCacheTTL)
	}
	if cfg.Site.Dev {
		t.Errorf("dev mode should default to off")
	}
	if cfg.Observability.LogLevel != "info" {
		t.Errorf("expected info log level, got %s", cfg.Observability.LogLevel)
	}
	if cfg.Export.Concurrency != defaultExportWorkers {
		t.Errorf("unexpected export concurrency: %d", cfg.Export.Concurrency)
	}
}

func TestLoadOverrides(t *testing.T) {
	env := map[string]string{
		"HELPER_HTTP_ADDR":          "127.0.0.1:9000",
		"HELPER_READ_TIMEOUT":       "5s",
		"HELPER_SITE_NAME":          "  Compass  ",
		"HELPER_BASE_URL":           "https://example.com/",
		"HELPER_PAGE_CACHE_TTL":     "0s",
		"HELPER_DEV":                "yes",
		"HELPER_TRACING_ENABLED":    "1",
		"HELPER_EXPORT_CONCURRENCY": "2",
		"LOG_LEVEL":                 "DEBUG",
	}

	cfg, err := Load(WithEnvMap(env), WithoutSystemEnv(), WithEnvFile(""))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Server.Addr != "127.0.0.1:9000" {
		t.Errorf("unexpected addr: %s", cfg.Server.Addr)
	}
	if cfg.Server.ReadTimeout != 5*time.Second {
		t.Errorf("unexpected read timeout: %s", cfg.Server.ReadTimeout)
	}
	if cfg.Site.Name != "Compass" {
		t.Errorf("expected trimmed site name, got %q", cfg.Site.Name)
	}
	if cfg.Site.BaseURL != "https://example.com" {
		t.Errorf("expected trailing slash trimmed, got %s", cfg.Site.BaseURL)
	}
	if cfg.Site.PageCacheTTL != 0 || !cfg.Site.Dev {
		t.Errorf("unexpected site config: %+v", cfg.Site)
	}
	if !cfg.Observability.TracingEnabled || cfg.Observability.LogLevel != "debug" {
		t.Errorf("unexpected observability config: %+v", cfg.Observability)
	}
	if cfg.Export.Concurrency != 2 {
		t.Errorf("unexpected export concurrency: %d", cfg.Export.Concurrency)
	}
}

func TestLoadHonoursPort(t *testing.T) {
	cfg, err := Load(WithEnvMap(map[string]string{"PORT": "3000"}), WithoutSystemEnv(), WithEnvFile(""))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Server.Addr != ":3000" {
		t.Errorf("expected :3000 from PORT, got %s", cfg.Server.Addr)
	}

	cfg, err = Load(WithEnvMap(map[string]string{"PORT": "3000", "HELPER_HTTP_ADDR": ":4000"}), WithoutSystemEnv(), WithEnvFile(""))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Server.Addr != ":4000" {
		t.Errorf("explicit addr should win over PORT, got %s", cfg.Server.Addr)
	}
}

func TestLoadValidationError(t *testing.T) {
	env := map[string]string{
		"HELPER_READ_TIMEOUT":       "soon",
		"HELPER_WRITE_TIMEOUT":      "-1s",
		"HELPER_BASE_URL":           "example.com",
		"HELPER_DEV":                "maybe",
		"HELPER_EXPORT_CONCURRENCY": "0",
		"LOG_LEVEL":                 "verbose",
	}

	_, err := Load(WithEnvMap(env), WithoutSystemEnv(), WithEnvFile(""))
	if err == nil {
		t.Fatal("expected validation error")
	}
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %T", err)
	}
	want := []string{
		"HELPER_READ_TIMEOUT",
		"HELPER_DEV",
		"Server.WriteTimeout",
		"Site.BaseURL",
		"Export.Concurrency",
		"Observability.LogLevel",
	}
	if !reflect.DeepEqual(verr.Fields(), want) {
		t.Errorf("unexpected fields:\n got %v\nwant %v", verr.Fields(), want)
	}
}

func TestLoadDotEnvPrecedence(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	content := "HELPER_SITE_NAME=FromFile\nHELPER_BASE_URL=\"https://file.example\"\n# comment\nexport LOG_LEVEL=warn\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write env file: %v", err)
	}

	cfg, err := Load(WithEnvFile(path), WithoutSystemEnv(), WithEnvMap(map[string]string{"HELPER_SITE_NAME": "FromMap"}))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Site.Name != "FromMap" {
		t.Errorf("env map should win over .env, got %s", cfg.Site.Name)
	}
	if cfg.Site.BaseURL != "https://file.example" {
		t.Errorf("expected base url from .env, got %s", cfg.Site.BaseURL)
	}
	if cfg.Observability.LogLevel != "warn" {
		t.Errorf("expected log level from .env, got %s", cfg.Observability.LogLevel)
	}
}

func TestLoadMissingDotEnvIsIgnored(t *testing.T) {
	_, err := Load(WithEnvFile(filepath.Join(t.TempDir(), "absent.env")), WithoutSystemEnv())
	if err != nil {
		t.Fatalf("missing .env should be ignored, got %v", err)
	}
}
