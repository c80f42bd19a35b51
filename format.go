package policygen

import (
	"fmt"
	"strings"
)

// Format is an export format for a generated document.
type Format string

// Export formats.
const (
	FormatMarkdown Format = "md"
	FormatHTML     Format = "html"
	FormatText     Format = "txt"
	FormatPDF      Format = "pdf"
)

// Formats lists the export formats.
var Formats = []Format{FormatMarkdown, FormatHTML, FormatText, FormatPDF}

var formatAliases = map[string]Format{
	"markdown": FormatMarkdown,
	"htm":      FormatHTML,
	"text":     FormatText,
	"plain":    FormatText,
}

// ParseFormat resolves a format name or alias, ignoring case and a leading dot.
func ParseFormat(s string) (Format, error) {
	name := strings.TrimPrefix(strings.ToLower(strings.TrimSpace(s)), ".")
	for _, f := range Formats {
		if name == string(f) {
			return f, nil
		}
	}
	if f, ok := formatAliases[name]; ok {
		return f, nil
	}
	return "", fmt.Errorf("%w: %q (want md, html, txt or pdf)", ErrInvalidFormat, s)
}

// Ext returns the file extension for f, including the dot.
func (f Format) Ext() string {
	return "." + string(f)
}

// NeedsBrowser reports whether producing f requires headless Chrome.
func (f Format) NeedsBrowser() bool {
	return f == FormatPDF
}
