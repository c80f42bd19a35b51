package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ElSguidge/policygen/internal/dateutil"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "policygen.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	return path
}

func TestDefaultConfig(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("DefaultConfig().Validate() error = %v", err)
	}
	if cfg.Output.Format != "" || cfg.HTML.Style != "" || cfg.Batch.Workers != 0 {
		t.Errorf("DefaultConfig() = %+v, want zero values", cfg)
	}
}

func TestConfig_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr error
	}{
		{"valid full", func(c *Config) {
			c.Output.Format = "PDF"
			c.Document.Date = "auto"
			c.PDF.PageSize = "a4"
			c.PDF.Orientation = "landscape"
			c.PDF.Margin = 0.5
			c.Batch.Workers = 4
			c.Batch.Timeout = "45s"
		}, nil},
		{"iso date", func(c *Config) { c.Document.Date = "2025-01-15" }, nil},
		{"auto preset", func(c *Config) { c.Document.Date = "auto:long" }, nil},
		{"format alias", func(c *Config) { c.Output.Format = "markdown" }, nil},
		{"unknown format", func(c *Config) { c.Output.Format = "docx" }, ErrInvalidField},
		{"bad date", func(c *Config) { c.Document.Date = "15/01/2025" }, dateutil.ErrInvalidDateFormat},
		{"bad auto syntax", func(c *Config) { c.Document.Date = "automatic" }, dateutil.ErrInvalidDateFormat},
		{"unknown page size", func(c *Config) { c.PDF.PageSize = "a3" }, ErrInvalidField},
		{"unknown orientation", func(c *Config) { c.PDF.Orientation = "diagonal" }, ErrInvalidField},
		{"negative margin", func(c *Config) { c.PDF.Margin = -1 }, ErrInvalidField},
		{"negative workers", func(c *Config) { c.Batch.Workers = -2 }, ErrInvalidField},
		{"bad timeout", func(c *Config) { c.Batch.Timeout = "soon" }, ErrInvalidField},
		{"zero timeout", func(c *Config) { c.Batch.Timeout = "0s" }, ErrInvalidField},
		{"footer text too long", func(c *Config) { c.PDF.Footer.Text = strings.Repeat("x", MaxFooterTextLength+1) }, ErrFieldTooLong},
		{"lang too long", func(c *Config) { c.HTML.Lang = strings.Repeat("x", MaxLangLength+1) }, ErrFieldTooLong},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("Validate() error = %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestLoadConfig(t *testing.T) {
	t.Parallel()

	t.Run("full file", func(t *testing.T) {
		t.Parallel()

		path := writeConfig(t, `
output:
  defaultDir: out
  format: html
document:
  date: auto
html:
  style: legal
  lang: en-AU
assets:
  basePath: ./theme
pdf:
  pageSize: letter
  orientation: portrait
  margin: 1
  footer:
    enabled: true
    showPageNumber: true
batch:
  workers: 2
  timeout: 1m
`)
		cfg, err := LoadConfig(path)
		if err != nil {
			t.Fatalf("LoadConfig() error = %v", err)
		}
		if cfg.Output.DefaultDir != "out" || cfg.Output.Format != "html" {
			t.Errorf("Output = %+v", cfg.Output)
		}
		if cfg.HTML.Style != "legal" || cfg.HTML.Lang != "en-AU" {
			t.Errorf("HTML = %+v", cfg.HTML)
		}
		if !cfg.PDF.Footer.Enabled || !cfg.PDF.Footer.ShowPageNumber || cfg.PDF.Margin != 1 {
			t.Errorf("PDF = %+v", cfg.PDF)
		}
		if cfg.Batch.Workers != 2 || cfg.Batch.Timeout != "1m" {
			t.Errorf("Batch = %+v", cfg.Batch)
		}
	})

	t.Run("unknown key rejected", func(t *testing.T) {
		t.Parallel()

		path := writeConfig(t, "output:\n  dir: out\n")
		if _, err := LoadConfig(path); !errors.Is(err, ErrConfigParse) {
			t.Errorf("LoadConfig() error = %v, want ErrConfigParse", err)
		}
	})

	t.Run("invalid value rejected", func(t *testing.T) {
		t.Parallel()

		path := writeConfig(t, "output:\n  format: docx\n")
		if _, err := LoadConfig(path); !errors.Is(err, ErrInvalidField) {
			t.Errorf("LoadConfig() error = %v, want ErrInvalidField", err)
		}
	})

	t.Run("missing path", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "nope.yaml")
		if _, err := LoadConfig(path); !errors.Is(err, ErrConfigNotFound) {
			t.Errorf("LoadConfig() error = %v, want ErrConfigNotFound", err)
		}
	})

	t.Run("missing name lists search paths", func(t *testing.T) {
		t.Parallel()

		_, err := LoadConfig("policygen-test-config-that-does-not-exist")
		if !errors.Is(err, ErrConfigNotFound) {
			t.Fatalf("LoadConfig() error = %v, want ErrConfigNotFound", err)
		}
		if !strings.Contains(err.Error(), "policygen-test-config-that-does-not-exist.yml") {
			t.Errorf("error %q does not list tried paths", err)
		}
	})

	t.Run("empty name", func(t *testing.T) {
		t.Parallel()

		if _, err := LoadConfig(""); !errors.Is(err, ErrEmptyConfigName) {
			t.Errorf("LoadConfig(\"\") error = %v, want ErrEmptyConfigName", err)
		}
	})
}

func TestSearchPaths(t *testing.T) {
	t.Parallel()

	paths := SearchPaths("team")
	if len(paths) < 2 || paths[0] != "team.yaml" || paths[1] != "team.yml" {
		t.Fatalf("SearchPaths() = %v, want cwd entries first", paths)
	}
	for _, p := range paths[2:] {
		if filepath.Base(filepath.Dir(p)) != appDir {
			t.Errorf("user path %q not under %s", p, appDir)
		}
	}
}
