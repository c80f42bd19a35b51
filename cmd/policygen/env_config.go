package main

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/ElSguidge/policygen/internal/config"
)

// dotEnvFile is loaded from the working directory when present.
const dotEnvFile = ".env"

// envConfig holds configuration from POLICYGEN_* environment variables.
type envConfig struct {
	ConfigPath string        // POLICYGEN_CONFIG
	OutputDir  string        // POLICYGEN_OUTPUT_DIR
	Format     string        // POLICYGEN_FORMAT
	Style      string        // POLICYGEN_STYLE
	Date       string        // POLICYGEN_DATE
	Workers    int           // POLICYGEN_WORKERS
	Timeout    time.Duration // POLICYGEN_TIMEOUT
}

// knownEnvVars lists valid POLICYGEN_* variables. Anything else with the
// prefix is reported as a likely typo.
var knownEnvVars = map[string]bool{
	"POLICYGEN_CONFIG":     true,
	"POLICYGEN_OUTPUT_DIR": true,
	"POLICYGEN_FORMAT":     true,
	"POLICYGEN_STYLE":      true,
	"POLICYGEN_DATE":       true,
	"POLICYGEN_WORKERS":    true,
	"POLICYGEN_TIMEOUT":    true,
}

// loadDotEnv reads KEY=VALUE pairs from path into the process environment.
// Variables already set win. A missing file is not an error.
func loadDotEnv(path string) error {
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("loading %s: %w", path, err)
	}
	return nil
}

// loadEnvConfig reads POLICYGEN_* variables. Unparsable numbers and
// durations are ignored.
func loadEnvConfig(getenv func(string) string) *envConfig {
	cfg := &envConfig{
		ConfigPath: getenv("POLICYGEN_CONFIG"),
		OutputDir:  getenv("POLICYGEN_OUTPUT_DIR"),
		Format:     getenv("POLICYGEN_FORMAT"),
		Style:      getenv("POLICYGEN_STYLE"),
		Date:       getenv("POLICYGEN_DATE"),
	}

	if timeout := getenv("POLICYGEN_TIMEOUT"); timeout != "" {
		if d, err := time.ParseDuration(timeout); err == nil && d > 0 {
			cfg.Timeout = d
		}
	}
	if workers := getenv("POLICYGEN_WORKERS"); workers != "" {
		if w, err := strconv.Atoi(workers); err == nil && w > 0 {
			cfg.Workers = w
		}
	}
	return cfg
}

// warnUnknownEnvVars writes a warning for each unrecognized POLICYGEN_* name.
func warnUnknownEnvVars(w io.Writer, environ []string) {
	var unknown []string
	for _, kv := range environ {
		name, _, _ := strings.Cut(kv, "=")
		if strings.HasPrefix(name, "POLICYGEN_") && !knownEnvVars[name] {
			unknown = append(unknown, name)
		}
	}
	sort.Strings(unknown)
	for _, name := range unknown {
		fmt.Fprintf(w, "warning: unknown environment variable %s (typo?)\n", name)
	}
}

// applyEnvConfig fills empty config values from the environment.
// Flags are merged afterwards, giving flags > env > config file > defaults.
func applyEnvConfig(env *envConfig, cfg *config.Config) {
	if env.OutputDir != "" && cfg.Output.DefaultDir == "" {
		cfg.Output.DefaultDir = env.OutputDir
	}
	if env.Format != "" && cfg.Output.Format == "" {
		cfg.Output.Format = env.Format
	}
	if env.Style != "" && cfg.HTML.Style == "" {
		cfg.HTML.Style = env.Style
	}
	if env.Date != "" && cfg.Document.Date == "" {
		cfg.Document.Date = env.Date
	}
	if env.Workers > 0 && cfg.Batch.Workers == 0 {
		cfg.Batch.Workers = env.Workers
	}
	if env.Timeout > 0 && cfg.Batch.Timeout == "" {
		cfg.Batch.Timeout = env.Timeout.String()
	}
}
