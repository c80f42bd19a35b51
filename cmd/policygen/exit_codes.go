package main

import (
	"errors"
	"os"

	"github.com/ElSguidge/policygen"
	"github.com/ElSguidge/policygen/internal/assets"
	"github.com/ElSguidge/policygen/internal/config"
	"github.com/ElSguidge/policygen/internal/dateutil"
)

// Exit codes for the policygen CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess = 0 // All documents written
	ExitGeneral = 1 // General/unexpected error
	ExitUsage   = 2 // Invalid flags, config, request or validation
	ExitIO      = 3 // File not found, permission denied
	ExitBrowser = 4 // Browser/Chrome errors
)

// exitCodeFor returns the exit code for err, matching wrapped sentinels
// with errors.Is.
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	if errors.Is(err, policygen.ErrBrowserConnect) ||
		errors.Is(err, policygen.ErrPageCreate) ||
		errors.Is(err, policygen.ErrPageLoad) ||
		errors.Is(err, policygen.ErrPDFGeneration) {
		return ExitBrowser
	}

	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, ErrReadInput) ||
		errors.Is(err, ErrWriteOutput) ||
		errors.Is(err, ErrNoInput) ||
		errors.Is(err, ErrOutputExists) {
		return ExitIO
	}

	if errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrFieldTooLong) ||
		errors.Is(err, config.ErrInvalidField) ||
		errors.Is(err, config.ErrEmptyConfigName) ||
		errors.Is(err, dateutil.ErrInvalidDateFormat) ||
		errors.Is(err, policygen.ErrUnknownDocumentType) ||
		errors.Is(err, policygen.ErrRequestParse) ||
		errors.Is(err, policygen.ErrInvalidFormat) ||
		errors.Is(err, policygen.ErrEmptyMarkdown) ||
		errors.Is(err, policygen.ErrMissingField) ||
		errors.Is(err, policygen.ErrInvalidEmail) ||
		errors.Is(err, policygen.ErrInvalidValue) ||
		errors.Is(err, policygen.ErrIncompleteWorkStep) ||
		errors.Is(err, policygen.ErrInvalidPageSize) ||
		errors.Is(err, policygen.ErrInvalidOrientation) ||
		errors.Is(err, policygen.ErrInvalidMargin) ||
		errors.Is(err, assets.ErrStyleNotFound) ||
		errors.Is(err, assets.ErrInvalidAssetName) ||
		errors.Is(err, assets.ErrInvalidBasePath) ||
		errors.Is(err, assets.ErrPathTraversal) ||
		errors.Is(err, ErrUsage) ||
		errors.Is(err, ErrUnsupportedShell) {
		return ExitUsage
	}

	return ExitGeneral
}
