package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/ElSguidge/policygen"
)

// runOutline prints the headings a request would produce.
func runOutline(args []string, env *Environment) error {
	if len(args) != 1 || strings.HasPrefix(args[0], "-") {
		printOutlineUsage(env.Stderr)
		return fmt.Errorf("%w: outline takes exactly one request file", ErrUsage)
	}

	data, err := os.ReadFile(args[0]) // #nosec G304 -- user-provided request path
	if err != nil {
		return fmt.Errorf("%w: %w", ErrReadInput, err)
	}
	cfg, err := policygen.DecodeRequest(data)
	if err != nil {
		return err
	}

	fmt.Fprintln(env.Stdout, cfg.Type().Title())
	for _, e := range policygen.Outline(cfg) {
		fmt.Fprintln(env.Stdout, formatOutlineEntry(e))
	}
	return nil
}

// formatOutlineEntry indents an entry by level and prefixes its number.
func formatOutlineEntry(e policygen.OutlineEntry) string {
	indent := strings.Repeat("  ", max(e.Level, 1))
	if e.Number == "" {
		return indent + e.Title
	}
	return indent + e.Number + " " + e.Title
}
