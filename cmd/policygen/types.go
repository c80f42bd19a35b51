package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/ElSguidge/policygen"
	"github.com/ElSguidge/policygen/internal/assets"
)

// runTypes lists the document types and built-in styles.
func runTypes(env *Environment) error {
	tw := tabwriter.NewWriter(env.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "TYPE\tTITLE\tALIASES")
	for _, t := range policygen.DocumentTypes {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", t, t.Title(), joinOrDash(aliasesFor(t)))
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	fmt.Fprintln(env.Stdout)
	fmt.Fprintf(env.Stdout, "Styles: %s\n", joinOrDash(assets.Styles()))
	return nil
}

// aliasesFor returns the shorthand names ParseDocumentType accepts for t.
func aliasesFor(t policygen.DocumentType) []string {
	var out []string
	for _, name := range policygen.DocumentTypeAliases() {
		if resolved, err := policygen.ParseDocumentType(name); err == nil && resolved == t {
			out = append(out, name)
		}
	}
	return out
}

func joinOrDash(items []string) string {
	if len(items) == 0 {
		return "-"
	}
	return strings.Join(items, ", ")
}
