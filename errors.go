package policygen

import "errors"

// Sentinel errors for library operations.
var (
	ErrUnknownDocumentType = errors.New("unknown document type")
	ErrRequestParse        = errors.New("failed to parse request")
	ErrEmptyMarkdown       = errors.New("markdown content cannot be empty")
	ErrHTMLConversion      = errors.New("HTML conversion failed")
	ErrInvalidFormat       = errors.New("unknown output format")

	// Configuration validation errors.
	ErrMissingField       = errors.New("required field is empty")
	ErrInvalidEmail       = errors.New("invalid email address")
	ErrInvalidValue       = errors.New("value out of range")
	ErrIncompleteWorkStep = errors.New("work step needs a description, a hazard and a control")

	// PDF rendering errors.
	ErrPDFGeneration  = errors.New("PDF generation failed")
	ErrBrowserConnect = errors.New("failed to connect to browser")
	ErrPageCreate     = errors.New("failed to create browser page")
	ErrPageLoad       = errors.New("failed to load page")

	// Page settings validation errors.
	ErrInvalidPageSize    = errors.New("invalid page size")
	ErrInvalidOrientation = errors.New("invalid orientation")
	ErrInvalidMargin      = errors.New("invalid margin")
)
