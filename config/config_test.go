package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/mempirate/scrapetool/scrape"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv(ENV_API_URL, "")
	t.Setenv(ENV_TIMEOUT, "")
	t.Setenv(ENV_LOG_LEVEL, "")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	if err != nil {
		t.Fatal(err)
	}

	if cfg.APIURL != scrape.FIRECRAWL_API {
		t.Errorf("unexpected api url: %s", cfg.APIURL)
	}

	if cfg.Timeout != 0 {
		t.Errorf("unexpected timeout: %s", cfg.Timeout)
	}

	if cfg.LogLevel != "warn" {
		t.Errorf("unexpected log level: %s", cfg.LogLevel)
	}
}

func TestLoadEnv(t *testing.T) {
	t.Setenv(ENV_API_URL, "http://scraper:3002/v1/scrape")
	t.Setenv(ENV_TIMEOUT, "30s")
	t.Setenv(ENV_LOG_LEVEL, "debug")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	if err != nil {
		t.Fatal(err)
	}

	if cfg.APIURL != "http://scraper:3002/v1/scrape" {
		t.Errorf("unexpected api url: %s", cfg.APIURL)
	}

	if cfg.Timeout != 30*time.Second {
		t.Errorf("unexpected timeout: %s", cfg.Timeout)
	}

	if cfg.LogLevel != "debug" {
		t.Errorf("unexpected log level: %s", cfg.LogLevel)
	}
}

func TestLoadEnvFile(t *testing.T) {
	// Empty values don't count as set, so the file is allowed to fill them in.
	t.Setenv(ENV_API_URL, "")
	t.Setenv(ENV_TIMEOUT, "5s")
	t.Setenv(ENV_LOG_LEVEL, "")
	os.Unsetenv(ENV_API_URL)
	os.Unsetenv(ENV_LOG_LEVEL)

	path := filepath.Join(t.TempDir(), ".env")
	content := "SCRAPE_API_URL=http://file:3002/v1/scrape\nSCRAPE_TIMEOUT=1m\nLOG_LEVEL=info\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}

	if cfg.APIURL != "http://file:3002/v1/scrape" {
		t.Errorf("unexpected api url: %s", cfg.APIURL)
	}

	// Already set in the environment, so the file doesn't override it.
	if cfg.Timeout != 5*time.Second {
		t.Errorf("unexpected timeout: %s", cfg.Timeout)
	}

	if cfg.LogLevel != "info" {
		t.Errorf("unexpected log level: %s", cfg.LogLevel)
	}
}

func TestLoadInvalidTimeout(t *testing.T) {
	t.Setenv(ENV_TIMEOUT, "soon")

	if _, err := Load(filepath.Join(t.TempDir(), "missing.env")); err == nil {
		t.Error("expected error for invalid timeout")
	}
}
