// Package hints builds the "hint:" suffixes appended to CLI error messages.
package hints

import (
	"os"
	"strings"

	"github.com/ElSguidge/policygen/internal/fileutil"
)

// IsInContainer reports whether the process runs inside Docker.
var IsInContainer = func() bool {
	return fileutil.FileExists("/.dockerenv")
}

// ForBrowserConnect suggests browser settings after Chrome fails to start.
func ForBrowserConnect() string {
	var hints []string

	inCI := os.Getenv("CI") != "" ||
		os.Getenv("GITHUB_ACTIONS") != "" ||
		os.Getenv("GITLAB_CI") != ""

	if (inCI || IsInContainer()) && os.Getenv("ROD_NO_SANDBOX") != "1" {
		hints = append(hints, "set ROD_NO_SANDBOX=1 for Docker/CI")
	}
	if os.Getenv("ROD_BROWSER_BIN") == "" {
		hints = append(hints, "set ROD_BROWSER_BIN to use an installed Chrome")
	}
	hints = append(hints, "or export with --format html and print from a browser")

	return formatHints(hints)
}

// ForTimeout suggests a longer timeout.
func ForTimeout() string {
	return format("raise the limit with --timeout or POLICYGEN_TIMEOUT")
}

// ForConfigNotFound suggests --config, or creating the user config file
// when it was among the searched paths.
func ForConfigNotFound(searchedPaths []string) string {
	hint := "use --config /path/to/file.yaml"
	for _, p := range searchedPaths {
		if strings.Contains(filepathSlash(p), "/policygen/") {
			hint += " or create " + p
			break
		}
	}
	return format(hint)
}

// ForOutputDirectory suggests checking the output location.
func ForOutputDirectory() string {
	return format("check the parent directory exists and is writable")
}

// ForStyleNotFound lists the built-in styles.
func ForStyleNotFound(available []string) string {
	if len(available) == 0 {
		return ""
	}
	return format("available: " + strings.Join(available, ", "))
}

// ForUnknownType lists the accepted document type names.
func ForUnknownType(types []string) string {
	if len(types) == 0 {
		return ""
	}
	return format("valid types: " + strings.Join(types, ", "))
}

// ForRequestParse points at the request file generator.
func ForRequestParse() string {
	return format("run `policygen init <type>` for a request file with every key")
}

// ForValidation explains how to render despite missing fields.
func ForValidation() string {
	return format("fill in the fields, or pass --force to print __________ placeholders")
}

func filepathSlash(p string) string {
	return strings.ReplaceAll(p, `\`, "/")
}

func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}

func formatHints(hints []string) string {
	if len(hints) == 0 {
		return ""
	}
	return format(strings.Join(hints, "; "))
}
