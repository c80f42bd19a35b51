package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ElSguidge/policygen"
)

// renderDocument converts Markdown to the configured format. t selects the
// stylesheet and page layout; it is empty for arbitrary Markdown files.
func renderDocument(ctx context.Context, markdown string, t policygen.DocumentType, s *settings, pdf func() Renderer) ([]byte, error) {
	switch s.format {
	case policygen.FormatMarkdown:
		return []byte(markdown), nil
	case policygen.FormatText:
		return []byte(policygen.ToPlainText(markdown)), nil
	}

	html, err := policygen.ToHTML(ctx, markdown, s.htmlOptions(t)...)
	if err != nil {
		return nil, err
	}
	if s.format == policygen.FormatHTML {
		return []byte(html), nil
	}

	return pdf().Render(ctx, html, policygen.PDFOptions{
		Page:   s.pageFor(t),
		Footer: s.footerFor(t.Title()),
	})
}

// writeOutput writes data to path, creating parent directories.
func writeOutput(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), dirPermissions); err != nil {
		return fmt.Errorf("%w: creating output directory: %w", ErrWriteOutput, err)
	}
	// #nosec G306 -- generated documents are meant to be readable
	if err := os.WriteFile(path, data, filePermissions); err != nil {
		return fmt.Errorf("%w: %w", ErrWriteOutput, err)
	}
	return nil
}
