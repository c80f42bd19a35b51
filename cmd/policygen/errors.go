package main

import (
	"errors"
	"fmt"
)

// Sentinel errors for CLI operations.
var (
	ErrUsage        = errors.New("invalid usage")
	ErrNoInput      = errors.New("no input specified")
	ErrReadInput    = errors.New("failed to read input file")
	ErrWriteOutput  = errors.New("failed to write output file")
	ErrOutputExists = errors.New("output file already exists")
)

// batchError reports failed documents. It unwraps to the first failure so
// the exit code reflects what went wrong.
type batchError struct {
	failed int
	total  int
	first  error
}

func (e *batchError) Error() string {
	return fmt.Sprintf("%d of %d document(s) failed", e.failed, e.total)
}

func (e *batchError) Unwrap() error {
	return e.first
}
