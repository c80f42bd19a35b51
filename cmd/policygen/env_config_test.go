package main

// Notes:
// - loadEnvConfig: parsing and the silent drop of invalid numbers/durations.
// - applyEnvConfig: env fills only what the config file left empty.
// - loadDotEnv: touches the process environment, so its test is serial and
//   uses a variable outside the POLICYGEN_ prefix.

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/ElSguidge/policygen/internal/config"
)

func getenvFrom(vars map[string]string) func(string) string {
	return func(k string) string { return vars[k] }
}

func TestLoadEnvConfig(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		vars map[string]string
		want envConfig
	}{
		{
			name: "empty",
			vars: nil,
			want: envConfig{},
		},
		{
			name: "all set",
			vars: map[string]string{
				"POLICYGEN_CONFIG":     "team",
				"POLICYGEN_OUTPUT_DIR": "dist",
				"POLICYGEN_FORMAT":     "pdf",
				"POLICYGEN_STYLE":      "legal",
				"POLICYGEN_DATE":       "auto",
				"POLICYGEN_WORKERS":    "3",
				"POLICYGEN_TIMEOUT":    "1m",
			},
			want: envConfig{
				ConfigPath: "team",
				OutputDir:  "dist",
				Format:     "pdf",
				Style:      "legal",
				Date:       "auto",
				Workers:    3,
				Timeout:    time.Minute,
			},
		},
		{
			name: "invalid numbers ignored",
			vars: map[string]string{
				"POLICYGEN_WORKERS": "many",
				"POLICYGEN_TIMEOUT": "-5s",
			},
			want: envConfig{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := loadEnvConfig(getenvFrom(tt.vars))
			if *got != tt.want {
				t.Errorf("loadEnvConfig() = %+v, want %+v", *got, tt.want)
			}
		})
	}
}

func TestApplyEnvConfig(t *testing.T) {
	t.Parallel()

	env := &envConfig{
		OutputDir: "env-dir",
		Format:    "pdf",
		Style:     "safety",
		Date:      "auto",
		Workers:   2,
		Timeout:   45 * time.Second,
	}

	t.Run("fills empty values", func(t *testing.T) {
		t.Parallel()

		cfg := config.DefaultConfig()
		applyEnvConfig(env, cfg)

		if cfg.Output.DefaultDir != "env-dir" || cfg.Output.Format != "pdf" {
			t.Errorf("Output = %+v", cfg.Output)
		}
		if cfg.HTML.Style != "safety" || cfg.Document.Date != "auto" {
			t.Errorf("style/date = %q/%q", cfg.HTML.Style, cfg.Document.Date)
		}
		if cfg.Batch.Workers != 2 || cfg.Batch.Timeout != "45s" {
			t.Errorf("Batch = %+v", cfg.Batch)
		}
	})

	t.Run("config file values kept", func(t *testing.T) {
		t.Parallel()

		cfg := config.DefaultConfig()
		cfg.Output.Format = "html"
		cfg.Batch.Workers = 6
		applyEnvConfig(env, cfg)

		if cfg.Output.Format != "html" || cfg.Batch.Workers != 6 {
			t.Errorf("config values overwritten: %+v", cfg)
		}
	})
}

func TestWarnUnknownEnvVars(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	warnUnknownEnvVars(&buf, []string{
		"POLICYGEN_FORMAT=pdf",
		"POLICYGEN_WORKRES=4",
		"POLICYGEN_AUTHOR=me",
		"PATH=/usr/bin",
		"MD2PDF_STYLE=x",
	})

	got := buf.String()
	if strings.Count(got, "warning:") != 2 {
		t.Fatalf("warnings = %q, want two", got)
	}
	if strings.Index(got, "POLICYGEN_AUTHOR") > strings.Index(got, "POLICYGEN_WORKRES") {
		t.Errorf("warnings not sorted: %q", got)
	}
	if strings.Contains(got, "POLICYGEN_FORMAT") {
		t.Errorf("known variable reported: %q", got)
	}
}

func TestLoadDotEnv(t *testing.T) {
	const key = "PGTEST_DOTENV_VALUE"

	if err := loadDotEnv(filepath.Join(t.TempDir(), ".env")); err != nil {
		t.Errorf("missing file: error = %v, want nil", err)
	}

	path := filepath.Join(t.TempDir(), ".env")
	if err := os.WriteFile(path, []byte(key+"=from-file\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = os.Unsetenv(key) })

	if err := loadDotEnv(path); err != nil {
		t.Fatalf("loadDotEnv() error = %v", err)
	}
	if got := os.Getenv(key); got != "from-file" {
		t.Errorf("%s = %q, want from-file", key, got)
	}

	// Variables already set win over the file.
	t.Setenv(key, "from-shell")
	if err := loadDotEnv(path); err != nil {
		t.Fatalf("loadDotEnv() error = %v", err)
	}
	if got := os.Getenv(key); got != "from-shell" {
		t.Errorf("%s = %q, want from-shell", key, got)
	}
}
