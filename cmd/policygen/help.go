package main

import (
	"fmt"
	"io"
)

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: policygen <command> [flags] [args]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  generate    Generate documents from request files")
	fmt.Fprintln(w, "  init        Write a request file with default values")
	fmt.Fprintln(w, "  outline     Print the numbered section outline of a request")
	fmt.Fprintln(w, "  convert     Convert a Markdown file to HTML, text or PDF")
	fmt.Fprintln(w, "  types       List document types and styles")
	fmt.Fprintln(w, "  completion  Generate shell completion script")
	fmt.Fprintln(w, "  version     Show version information")
	fmt.Fprintln(w, "  help        Show help for a command")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'policygen help <command>' for details on a specific command.")
}

// printGenerateUsage prints usage for the generate command.
func printGenerateUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: policygen generate <request.yaml>... [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Generate documents from request files.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Arguments:")
	fmt.Fprintln(w, "  request    YAML file with \"type\" and \"config\" keys, or a directory of them")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Input/Output:")
	fmt.Fprintln(w, "  -o, --output <path>       Output file (single request) or directory")
	fmt.Fprintln(w, "  -f, --format <s>          Format: md, html, txt, pdf (default: md)")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
	fmt.Fprintln(w, "  -w, --workers <n>         Parallel workers (0 = auto)")
	fmt.Fprintln(w, "  -t, --timeout <d>         PDF generation timeout (default: 30s)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Document:")
	fmt.Fprintln(w, "  -d, --date <s>            Effective date: \"auto\", \"auto:FORMAT\", or YYYY-MM-DD")
	fmt.Fprintln(w, "                            Presets (case-insensitive): iso, european, us, long")
	fmt.Fprintln(w, "      --force               Write even when required fields are missing")
	fmt.Fprintln(w)
	printStyleUsage(w)
	printPageUsage(w)
	printOutputControlUsage(w)
}

// printConvertUsage prints usage for the convert command.
func printConvertUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: policygen convert <file.md> [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Convert a Markdown file to HTML, plain text or PDF.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Input/Output:")
	fmt.Fprintln(w, "  -o, --output <path>       Output file (default: input with new extension)")
	fmt.Fprintln(w, "  -f, --format <s>          Format: html, txt, pdf (default: html)")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
	fmt.Fprintln(w, "  -t, --timeout <d>         PDF generation timeout (default: 30s)")
	fmt.Fprintln(w)
	printStyleUsage(w)
	printPageUsage(w)
	printOutputControlUsage(w)
}

// printInitUsage prints usage for the init command.
func printInitUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: policygen init <type> [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Write a request file populated with the defaults of a document type.")
	fmt.Fprintln(w, "Run 'policygen types' for the list of types.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "  -o, --output <path>       Request file to write (default: stdout)")
	fmt.Fprintln(w, "      --force               Overwrite an existing file")
}

// printOutlineUsage prints usage for the outline command.
func printOutlineUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: policygen outline <request.yaml>")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Print the headings the request would produce, with their numbers.")
}

func printStyleUsage(w io.Writer) {
	fmt.Fprintln(w, "Styling (html, pdf):")
	fmt.Fprintln(w, "      --style <s>           Style name (default, legal, safety) or CSS file")
	fmt.Fprintln(w, "      --asset-path <dir>    Directory with styles/<name>.css")
	fmt.Fprintln(w, "      --no-style            Disable CSS styling")
	fmt.Fprintln(w, "      --lang <s>            HTML lang attribute (default: en)")
	fmt.Fprintln(w)
}

func printPageUsage(w io.Writer) {
	fmt.Fprintln(w, "Page (pdf):")
	fmt.Fprintln(w, "  -p, --page-size <s>       Page size: a4, letter, legal (default: a4)")
	fmt.Fprintln(w, "      --orientation <s>     Orientation: portrait, landscape")
	fmt.Fprintln(w, "      --margin <f>          Margin in inches (0.25-3.0)")
	fmt.Fprintln(w, "      --footer-text <s>     Text printed before the page number")
	fmt.Fprintln(w, "      --no-footer           Disable the footer")
	fmt.Fprintln(w)
}

func printOutputControlUsage(w io.Writer) {
	fmt.Fprintln(w, "Output Control:")
	fmt.Fprintln(w, "  -q, --quiet               Only show errors")
	fmt.Fprintln(w, "  -v, --verbose             Show detailed timing")
}

// runHelp prints help for a specific command.
func runHelp(args []string, env *Environment) error {
	if len(args) == 0 {
		printUsage(env.Stdout)
		return nil
	}

	switch args[0] {
	case "generate":
		printGenerateUsage(env.Stdout)
	case "convert":
		printConvertUsage(env.Stdout)
	case "init":
		printInitUsage(env.Stdout)
	case "outline":
		printOutlineUsage(env.Stdout)
	case "types":
		fmt.Fprintln(env.Stdout, "Usage: policygen types")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "List document types, their aliases and the built-in styles.")
	case "completion":
		printCompletionUsage(env.Stdout)
	case "version":
		fmt.Fprintln(env.Stdout, "Usage: policygen version")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show version information.")
	case "help":
		fmt.Fprintln(env.Stdout, "Usage: policygen help [command]")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show help for a command.")
	default:
		printUsage(env.Stderr)
		return fmt.Errorf("%w: unknown command: %s", ErrUsage, args[0])
	}
	return nil
}
