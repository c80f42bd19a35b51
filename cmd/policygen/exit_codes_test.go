package main

// Notes:
// - exitCodeFor: sentinel errors from every package the CLI calls, plus
//   wrapped and joined errors to verify the errors.Is chain.

import (
	"errors"
	"fmt"
	"os"
	"testing"

	"github.com/ElSguidge/policygen"
	"github.com/ElSguidge/policygen/internal/assets"
	"github.com/ElSguidge/policygen/internal/config"
	"github.com/ElSguidge/policygen/internal/dateutil"
)

func TestExitCodeFor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil error", nil, ExitSuccess},

		// Browser errors (exit 4)
		{"browser connect", policygen.ErrBrowserConnect, ExitBrowser},
		{"page create", policygen.ErrPageCreate, ExitBrowser},
		{"page load", policygen.ErrPageLoad, ExitBrowser},
		{"pdf generation", policygen.ErrPDFGeneration, ExitBrowser},
		{"wrapped browser connect", fmt.Errorf("rendering: %w", policygen.ErrBrowserConnect), ExitBrowser},

		// I/O errors (exit 3)
		{"file not exist", os.ErrNotExist, ExitIO},
		{"permission denied", os.ErrPermission, ExitIO},
		{"read input", ErrReadInput, ExitIO},
		{"write output", ErrWriteOutput, ExitIO},
		{"no input", ErrNoInput, ExitIO},
		{"output exists", ErrOutputExists, ExitIO},

		// Usage/config/validation errors (exit 2)
		{"usage", ErrUsage, ExitUsage},
		{"config not found", config.ErrConfigNotFound, ExitUsage},
		{"config parse", config.ErrConfigParse, ExitUsage},
		{"config field", config.ErrInvalidField, ExitUsage},
		{"field too long", config.ErrFieldTooLong, ExitUsage},
		{"date format", dateutil.ErrInvalidDateFormat, ExitUsage},
		{"unknown type", policygen.ErrUnknownDocumentType, ExitUsage},
		{"request parse", policygen.ErrRequestParse, ExitUsage},
		{"format", policygen.ErrInvalidFormat, ExitUsage},
		{"empty markdown", policygen.ErrEmptyMarkdown, ExitUsage},
		{"missing field", policygen.ErrMissingField, ExitUsage},
		{"invalid email", policygen.ErrInvalidEmail, ExitUsage},
		{"invalid value", policygen.ErrInvalidValue, ExitUsage},
		{"incomplete step", policygen.ErrIncompleteWorkStep, ExitUsage},
		{"page size", policygen.ErrInvalidPageSize, ExitUsage},
		{"orientation", policygen.ErrInvalidOrientation, ExitUsage},
		{"margin", policygen.ErrInvalidMargin, ExitUsage},
		{"style not found", assets.ErrStyleNotFound, ExitUsage},
		{"asset name", assets.ErrInvalidAssetName, ExitUsage},
		{"unsupported shell", ErrUnsupportedShell, ExitUsage},
		{"joined validation", errors.Join(policygen.ErrMissingField, policygen.ErrInvalidEmail), ExitUsage},
		{"batch unwraps first", &batchError{failed: 1, total: 2, first: policygen.ErrRequestParse}, ExitUsage},

		// General
		{"unknown error", errors.New("boom"), ExitGeneral},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := exitCodeFor(tt.err); got != tt.want {
				t.Errorf("exitCodeFor(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}

func TestExitCodeConstants(t *testing.T) {
	t.Parallel()

	codes := []int{ExitSuccess, ExitGeneral, ExitUsage, ExitIO, ExitBrowser}
	seen := make(map[int]bool)
	for _, c := range codes {
		if c < 0 || c >= 126 {
			t.Errorf("exit code %d outside 0-125", c)
		}
		if seen[c] {
			t.Errorf("duplicate exit code %d", c)
		}
		seen[c] = true
	}
	if ExitSuccess != 0 || ExitGeneral != 1 || ExitUsage != 2 {
		t.Error("exit codes 0-2 must follow Unix conventions")
	}
}
