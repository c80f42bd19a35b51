// Package config loads the CLI configuration file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/ElSguidge/policygen/internal/dateutil"
	"github.com/ElSguidge/policygen/internal/fileutil"
	"github.com/ElSguidge/policygen/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
	ErrInvalidField    = errors.New("invalid config value")
)

// appDir is the directory under the user config dir searched by name.
const appDir = "policygen"

// Field length limits.
const (
	MaxPathLength        = 4096
	MaxFormatLength      = 10
	MaxDateLength        = 60
	MaxStyleLength       = 4096
	MaxLangLength        = 35
	MaxPageSizeLength    = 10
	MaxOrientationLength = 10
	MaxFooterTextLength  = 200
	MaxTimeoutLength     = 20
)

// formatNames are the accepted output.format values.
var formatNames = []string{"md", "markdown", "html", "htm", "txt", "text", "plain", "pdf"}

// Config holds CLI defaults. Flags and POLICYGEN_* variables override it.
type Config struct {
	Output   OutputConfig   `yaml:"output"`
	Document DocumentConfig `yaml:"document"`
	HTML     HTMLConfig     `yaml:"html"`
	Assets   AssetsConfig   `yaml:"assets"`
	PDF      PDFConfig      `yaml:"pdf"`
	Batch    BatchConfig    `yaml:"batch"`
}

// OutputConfig sets where and how documents are written.
type OutputConfig struct {
	DefaultDir string `yaml:"defaultDir"` // empty = next to the request file
	Format     string `yaml:"format"`     // md, html, txt or pdf (default md)
}

// DocumentConfig sets values applied to every request.
type DocumentConfig struct {
	Date string `yaml:"date"` // "auto", "auto:FORMAT" or YYYY-MM-DD; empty keeps the request's date
}

// HTMLConfig styles HTML and PDF output.
type HTMLConfig struct {
	Style string `yaml:"style"` // style name, CSS file path, or inline CSS
	Lang  string `yaml:"lang"`
}

// AssetsConfig points at a directory of custom styles.
type AssetsConfig struct {
	BasePath string `yaml:"basePath"` // {basePath}/styles/{name}.css; empty = embedded only
}

// PDFConfig sets page layout for PDF output.
type PDFConfig struct {
	PageSize    string       `yaml:"pageSize"`
	Orientation string       `yaml:"orientation"`
	Margin      float64      `yaml:"margin"` // inches; 0 = default
	Footer      FooterConfig `yaml:"footer"`
}

// FooterConfig prints a footer line on every PDF page.
type FooterConfig struct {
	Enabled        bool   `yaml:"enabled"`
	Text           string `yaml:"text"` // empty = document title
	ShowPageNumber bool   `yaml:"showPageNumber"`
}

// BatchConfig tunes the generate worker pool.
type BatchConfig struct {
	Workers int    `yaml:"workers"` // 0 = derive from GOMAXPROCS
	Timeout string `yaml:"timeout"` // Go duration per document, e.g. "45s"
}

// DefaultConfig returns a configuration with every value left to the CLI defaults.
func DefaultConfig() *Config {
	return &Config{}
}

// Validate checks field lengths and enumerated values.
func (c *Config) Validate() error {
	fields := []struct {
		name  string
		value string
		max   int
	}{
		{"output.defaultDir", c.Output.DefaultDir, MaxPathLength},
		{"output.format", c.Output.Format, MaxFormatLength},
		{"document.date", c.Document.Date, MaxDateLength},
		{"html.style", c.HTML.Style, MaxStyleLength},
		{"html.lang", c.HTML.Lang, MaxLangLength},
		{"assets.basePath", c.Assets.BasePath, MaxPathLength},
		{"pdf.pageSize", c.PDF.PageSize, MaxPageSizeLength},
		{"pdf.orientation", c.PDF.Orientation, MaxOrientationLength},
		{"pdf.footer.text", c.PDF.Footer.Text, MaxFooterTextLength},
		{"batch.timeout", c.Batch.Timeout, MaxTimeoutLength},
	}
	for _, f := range fields {
		if err := validateFieldLength(f.name, f.value, f.max); err != nil {
			return err
		}
	}

	if c.Output.Format != "" && !contains(formatNames, c.Output.Format) {
		return fmt.Errorf("%w: output.format %q (must be md, html, txt or pdf)", ErrInvalidField, c.Output.Format)
	}
	if err := validateDate(c.Document.Date); err != nil {
		return fmt.Errorf("document.date: %w", err)
	}
	if c.PDF.PageSize != "" && !contains([]string{"a4", "letter", "legal"}, c.PDF.PageSize) {
		return fmt.Errorf("%w: pdf.pageSize %q (must be a4, letter or legal)", ErrInvalidField, c.PDF.PageSize)
	}
	if c.PDF.Orientation != "" && !contains([]string{"portrait", "landscape"}, c.PDF.Orientation) {
		return fmt.Errorf("%w: pdf.orientation %q (must be portrait or landscape)", ErrInvalidField, c.PDF.Orientation)
	}
	if c.PDF.Margin < 0 {
		return fmt.Errorf("%w: pdf.margin must not be negative, got %.2f", ErrInvalidField, c.PDF.Margin)
	}
	if c.Batch.Workers < 0 {
		return fmt.Errorf("%w: batch.workers must be >= 0, got %d", ErrInvalidField, c.Batch.Workers)
	}
	if c.Batch.Timeout != "" {
		d, err := time.ParseDuration(c.Batch.Timeout)
		if err != nil || d <= 0 {
			return fmt.Errorf("%w: batch.timeout %q (want a positive duration such as 45s)", ErrInvalidField, c.Batch.Timeout)
		}
	}
	return nil
}

// validateDate accepts empty, auto forms and ISO dates.
func validateDate(value string) error {
	if value == "" {
		return nil
	}
	if strings.HasPrefix(strings.ToLower(value), "auto") {
		_, err := dateutil.ResolveDate(value, time.Time{})
		return err
	}
	if _, err := time.Parse(dateutil.ISOLayout, value); err != nil {
		return fmt.Errorf("%w: %q is not auto or YYYY-MM-DD", dateutil.ErrInvalidDateFormat, value)
	}
	return nil
}

func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

func contains(values []string, v string) bool {
	for _, s := range values {
		if strings.EqualFold(s, v) {
			return true
		}
	}
	return false
}

// LoadConfig reads a config by path, or by name from the search locations.
// A missing file is an error; there is no silent fallback.
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	path := nameOrPath
	if !fileutil.IsFilePath(nameOrPath) {
		var err error
		if path, err = resolveConfigPath(nameOrPath); err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(path) // #nosec G304 -- user-provided config path
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, path)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yamlutil.UnmarshalStrict(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// SearchPaths lists where a config name is looked up, in order: the
// working directory, then {UserConfigDir}/policygen, each as .yaml then .yml.
func SearchPaths(name string) []string {
	exts := []string{".yaml", ".yml"}
	paths := make([]string, 0, 2*len(exts))
	for _, ext := range exts {
		paths = append(paths, name+ext)
	}
	if dir, err := os.UserConfigDir(); err == nil {
		for _, ext := range exts {
			paths = append(paths, filepath.Join(dir, appDir, name+ext))
		}
	}
	return paths
}

func resolveConfigPath(name string) (string, error) {
	paths := SearchPaths(name)
	for _, p := range paths {
		if fileutil.FileExists(p) {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(paths, ", "))
}
