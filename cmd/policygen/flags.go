package main

import (
	"io"

	flag "github.com/spf13/pflag"
)

// commonFlags holds flags shared across commands.
type commonFlags struct {
	config  string
	quiet   bool
	verbose bool
}

// styleFlags selects the stylesheet for HTML and PDF output.
type styleFlags struct {
	style     string // name, CSS file path, or inline CSS
	assetPath string // directory searched before the embedded styles
	noStyle   bool
	lang      string
}

// pageFlags holds PDF page layout flags.
type pageFlags struct {
	size        string
	orientation string
	margin      float64
	noFooter    bool
	footerText  string
}

// generateFlags holds all flags for the generate command.
type generateFlags struct {
	common  commonFlags
	output  string
	format  string
	date    string
	force   bool
	workers int
	timeout string
	style   styleFlags
	page    pageFlags
}

// convertFlags holds all flags for the convert command.
type convertFlags struct {
	common  commonFlags
	output  string
	format  string
	timeout string
	style   styleFlags
	page    pageFlags
}

// initFlags holds flags for the init command.
type initFlags struct {
	output string
	force  bool
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show detailed timing")
}

// addStyleFlags adds stylesheet flags to a FlagSet.
func addStyleFlags(fs *flag.FlagSet, f *styleFlags) {
	fs.StringVar(&f.style, "style", "", "CSS style name or file path")
	fs.StringVar(&f.assetPath, "asset-path", "", "custom style directory")
	fs.BoolVar(&f.noStyle, "no-style", false, "disable CSS styling")
	fs.StringVar(&f.lang, "lang", "", "HTML lang attribute (default: en)")
}

// addPageFlags adds PDF page flags to a FlagSet.
func addPageFlags(fs *flag.FlagSet, f *pageFlags) {
	fs.StringVarP(&f.size, "page-size", "p", "", "page size: a4, letter, legal")
	fs.StringVar(&f.orientation, "orientation", "", "page orientation: portrait, landscape")
	fs.Float64Var(&f.margin, "margin", 0, "page margin in inches (0.25-3.0)")
	fs.StringVar(&f.footerText, "footer-text", "", "text printed before the page number")
	fs.BoolVar(&f.noFooter, "no-footer", false, "disable the PDF footer")
}

// newFlagSet creates a FlagSet that reports errors instead of exiting.
func newFlagSet(name string, usage func(io.Writer), stderr io.Writer) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() { usage(stderr) }
	return fs
}

func generateFlagSet(f *generateFlags, stderr io.Writer) *flag.FlagSet {
	fs := newFlagSet("generate", printGenerateUsage, stderr)
	fs.StringVarP(&f.output, "output", "o", "", "output file or directory")
	fs.StringVarP(&f.format, "format", "f", "", "output format: md, html, txt, pdf")
	fs.StringVarP(&f.date, "date", "d", "", "effective date (\"auto\" = today)")
	fs.BoolVar(&f.force, "force", false, "write documents with missing required fields")
	fs.IntVarP(&f.workers, "workers", "w", 0, "parallel workers (0 = auto)")
	fs.StringVarP(&f.timeout, "timeout", "t", "", "PDF generation timeout (e.g., 30s, 2m)")
	addCommonFlags(fs, &f.common)
	addStyleFlags(fs, &f.style)
	addPageFlags(fs, &f.page)
	return fs
}

func convertFlagSet(f *convertFlags, stderr io.Writer) *flag.FlagSet {
	fs := newFlagSet("convert", printConvertUsage, stderr)
	fs.StringVarP(&f.output, "output", "o", "", "output file")
	fs.StringVarP(&f.format, "format", "f", "", "output format: html, txt, pdf")
	fs.StringVarP(&f.timeout, "timeout", "t", "", "PDF generation timeout (e.g., 30s, 2m)")
	addCommonFlags(fs, &f.common)
	addStyleFlags(fs, &f.style)
	addPageFlags(fs, &f.page)
	return fs
}

func initFlagSet(f *initFlags, stderr io.Writer) *flag.FlagSet {
	fs := newFlagSet("init", printInitUsage, stderr)
	fs.StringVarP(&f.output, "output", "o", "", "request file to write (default: stdout)")
	fs.BoolVar(&f.force, "force", false, "overwrite an existing file")
	return fs
}

// parseGenerateFlags parses generate command flags and returns positional args.
func parseGenerateFlags(args []string, stderr io.Writer) (*generateFlags, []string, error) {
	f := &generateFlags{}
	fs := generateFlagSet(f, stderr)
	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}
	return f, fs.Args(), nil
}

// parseConvertFlags parses convert command flags and returns positional args.
func parseConvertFlags(args []string, stderr io.Writer) (*convertFlags, []string, error) {
	f := &convertFlags{}
	fs := convertFlagSet(f, stderr)
	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}
	return f, fs.Args(), nil
}

// parseInitFlags parses init command flags and returns positional args.
func parseInitFlags(args []string, stderr io.Writer) (*initFlags, []string, error) {
	f := &initFlags{}
	fs := initFlagSet(f, stderr)
	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}
	return f, fs.Args(), nil
}
