package main

import (
	"context"
	"io"
	"os"
	"time"

	"github.com/ElSguidge/policygen"
)

// Renderer prints an HTML document to PDF.
type Renderer interface {
	Render(ctx context.Context, html string, opts policygen.PDFOptions) ([]byte, error)
	Close() error
}

// Environment holds injectable dependencies for testability.
type Environment struct {
	Now         func() time.Time
	Stdout      io.Writer
	Stderr      io.Writer
	Getenv      func(string) string
	Environ     func() []string
	NewRenderer func(timeout time.Duration) Renderer
}

// DefaultEnv returns the production environment.
func DefaultEnv() *Environment {
	return &Environment{
		Now:     time.Now,
		Stdout:  os.Stdout,
		Stderr:  os.Stderr,
		Getenv:  os.Getenv,
		Environ: os.Environ,
		NewRenderer: func(timeout time.Duration) Renderer {
			return policygen.NewPDFRenderer(timeout)
		},
	}
}
