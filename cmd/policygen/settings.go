package main

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/ElSguidge/policygen"
	"github.com/ElSguidge/policygen/internal/assets"
	"github.com/ElSguidge/policygen/internal/config"
	"github.com/ElSguidge/policygen/internal/dateutil"
	"github.com/ElSguidge/policygen/internal/fileutil"
	"github.com/ElSguidge/policygen/internal/hints"
)

// Built-in styles picked when no style is configured.
const (
	legalStyle  = "legal"
	safetyStyle = "safety"
)

// settings are the resolved output options shared by generate and convert.
type settings struct {
	format  policygen.Format
	outDir  string
	date    string // resolved; empty keeps each request's own date
	lang    string
	page    policygen.PageSettings
	pageSet bool // orientation given explicitly
	footer  *policygen.PDFFooter
	timeout time.Duration
	workers int
	styles  styleSheets
}

// styleSheets holds the CSS for HTML and PDF output.
type styleSheets struct {
	fixed   bool   // one stylesheet for every document
	css     string // used when fixed
	legal   string
	safety  string
	generic string
}

// cssFor returns the stylesheet for a document type. An empty type is an
// arbitrary Markdown file.
func (s styleSheets) cssFor(t policygen.DocumentType) string {
	switch {
	case s.fixed:
		return s.css
	case t == policygen.TypeSWMS:
		return s.safety
	case t == "":
		return s.generic
	default:
		return s.legal
	}
}

// pageFor returns the page layout for a document type. SWMS tables are wide,
// so they print landscape unless an orientation was set.
func (s *settings) pageFor(t policygen.DocumentType) policygen.PageSettings {
	page := s.page
	if t == policygen.TypeSWMS && !s.pageSet {
		page.Orientation = policygen.OrientationLandscape
	}
	return page
}

// footerFor returns the footer for a document titled title, or nil.
func (s *settings) footerFor(title string) *policygen.PDFFooter {
	if s.footer == nil {
		return nil
	}
	f := *s.footer
	if f.Text == "" {
		f.Text = title
	}
	return &f
}

// htmlOptions returns the ToHTML options for a document type.
func (s *settings) htmlOptions(t policygen.DocumentType) []policygen.HTMLOption {
	opts := []policygen.HTMLOption{policygen.WithCSS(s.styles.cssFor(t))}
	if s.lang != "" {
		opts = append(opts, policygen.WithLang(s.lang))
	}
	return opts
}

// loadConfig loads the config named by the flag, then POLICYGEN_CONFIG.
// With neither set, it returns the defaults.
func loadConfig(flagValue string, env *envConfig) (*config.Config, error) {
	name := flagValue
	if name == "" {
		name = env.ConfigPath
	}
	if name == "" {
		return config.DefaultConfig(), nil
	}
	cfg, err := config.LoadConfig(name)
	if err != nil {
		if errors.Is(err, config.ErrConfigNotFound) && !fileutil.IsFilePath(name) {
			return nil, fmt.Errorf("loading config: %w%s", err, hints.ForConfigNotFound(config.SearchPaths(name)))
		}
		return nil, fmt.Errorf("loading config: %w", err)
	}
	return cfg, nil
}

// mergeStyleFlags merges stylesheet flags into cfg. Flags win.
func mergeStyleFlags(f *styleFlags, cfg *config.Config) {
	if f.style != "" {
		cfg.HTML.Style = f.style
	}
	if f.assetPath != "" {
		cfg.Assets.BasePath = f.assetPath
	}
	if f.lang != "" {
		cfg.HTML.Lang = f.lang
	}
}

// mergePageFlags merges PDF page flags into cfg. Flags win.
func mergePageFlags(f *pageFlags, cfg *config.Config) {
	if f.size != "" {
		cfg.PDF.PageSize = f.size
	}
	if f.orientation != "" {
		cfg.PDF.Orientation = f.orientation
	}
	if f.margin != 0 {
		cfg.PDF.Margin = f.margin
	}
	if f.footerText != "" {
		cfg.PDF.Footer.Enabled = true
		cfg.PDF.Footer.Text = f.footerText
		cfg.PDF.Footer.ShowPageNumber = true
	}
	if f.noFooter {
		cfg.PDF.Footer.Enabled = false
	}
}

// buildSettings validates cfg and resolves it into output settings.
// fallback is the format used when none is configured.
func buildSettings(cfg *config.Config, noStyle bool, fallback policygen.Format, now func() time.Time) (*settings, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	s := &settings{
		format:  fallback,
		outDir:  cfg.Output.DefaultDir,
		lang:    cfg.HTML.Lang,
		workers: cfg.Batch.Workers,
		timeout: policygen.DefaultPDFTimeout,
	}

	if cfg.Output.Format != "" {
		format, err := policygen.ParseFormat(cfg.Output.Format)
		if err != nil {
			return nil, err
		}
		s.format = format
	}

	if cfg.Document.Date != "" {
		date, err := dateutil.ResolveDate(cfg.Document.Date, now())
		if err != nil {
			return nil, err
		}
		s.date = date
	}

	if cfg.Batch.Timeout != "" {
		d, err := time.ParseDuration(cfg.Batch.Timeout)
		if err != nil {
			return nil, fmt.Errorf("%w: timeout %q", config.ErrInvalidField, cfg.Batch.Timeout)
		}
		s.timeout = d
	}

	s.page = policygen.DefaultPageSettings()
	if cfg.PDF.PageSize != "" {
		s.page.Size = strings.ToLower(cfg.PDF.PageSize)
	}
	if cfg.PDF.Orientation != "" {
		s.page.Orientation = strings.ToLower(cfg.PDF.Orientation)
		s.pageSet = true
	}
	if cfg.PDF.Margin != 0 {
		s.page.Margin = cfg.PDF.Margin
	}
	if s.format == policygen.FormatPDF {
		if err := s.page.Validate(); err != nil {
			return nil, err
		}
	}

	if cfg.PDF.Footer.Enabled {
		s.footer = &policygen.PDFFooter{
			Text:           cfg.PDF.Footer.Text,
			ShowPageNumber: cfg.PDF.Footer.ShowPageNumber,
		}
	}

	if s.format == policygen.FormatHTML || s.format == policygen.FormatPDF {
		styles, err := resolveStyles(cfg.HTML.Style, cfg.Assets.BasePath, noStyle)
		if err != nil {
			return nil, err
		}
		s.styles = styles
	}
	return s, nil
}

// resolveStyles loads the stylesheets. An explicit style applies to every
// document; otherwise legal documents get "legal", SWMS "safety" and plain
// Markdown files the default style.
func resolveStyles(style, basePath string, noStyle bool) (styleSheets, error) {
	if noStyle {
		return styleSheets{fixed: true}, nil
	}

	resolver, err := assets.NewAssetResolver(basePath)
	if err != nil {
		return styleSheets{}, fmt.Errorf("loading assets: %w", err)
	}

	if style != "" {
		css, err := loadStyle(style, resolver)
		if err != nil {
			return styleSheets{}, err
		}
		return styleSheets{fixed: true, css: css}, nil
	}

	var s styleSheets
	for _, pick := range []struct {
		name string
		dst  *string
	}{
		{legalStyle, &s.legal},
		{safetyStyle, &s.safety},
		{assets.DefaultStyleName, &s.generic},
	} {
		css, err := resolver.LoadStyle(pick.name)
		if err != nil {
			return styleSheets{}, fmt.Errorf("loading style %q: %w", pick.name, err)
		}
		*pick.dst = css
	}
	return s, nil
}

// loadStyle accepts inline CSS, a CSS file path, or a style name.
func loadStyle(style string, loader assets.AssetLoader) (string, error) {
	if fileutil.IsCSS(style) {
		return style, nil
	}
	if fileutil.IsFilePath(style) {
		data, err := os.ReadFile(style) // #nosec G304 -- user-provided CSS path
		if err != nil {
			return "", fmt.Errorf("%w: %w", ErrReadInput, err)
		}
		return string(data), nil
	}
	css, err := loader.LoadStyle(style)
	if err != nil {
		return "", fmt.Errorf("loading style %q: %w", style, err)
	}
	return css, nil
}
