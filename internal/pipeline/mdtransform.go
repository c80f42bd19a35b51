package pipeline

import (
	"context"
	"regexp"
	"strings"
)

// Highlight placeholders are Private Use Area runes. Goldmark passes them
// through untouched, so ==text== survives without enabling raw HTML.
const (
	MarkStartPlaceholder = "\uE000"
	MarkEndPlaceholder   = "\uE001"
)

var (
	crlfOrCR           = regexp.MustCompile(`\r\n?`)
	multipleBlankLines = regexp.MustCompile(`\n{3,}`)
	trailingSpace      = regexp.MustCompile(`[ \t]+\n`)
	highlightPattern   = regexp.MustCompile(`==([^=\n]+?)==`)
)

// MarkdownPreprocessor prepares Markdown before conversion.
type MarkdownPreprocessor interface {
	PreprocessMarkdown(ctx context.Context, content string) string
}

// CommonMarkPreprocessor normalizes Markdown for goldmark.
type CommonMarkPreprocessor struct{}

// PreprocessMarkdown normalizes content and swaps ==text== for placeholders.
// A cancelled context returns content unchanged.
func (p *CommonMarkPreprocessor) PreprocessMarkdown(ctx context.Context, content string) string {
	if ctx.Err() != nil {
		return content
	}
	return convertHighlights(Normalize(content))
}

// Normalize converts line endings to \n, strips trailing whitespace and
// collapses runs of blank lines to one.
func Normalize(content string) string {
	content = crlfOrCR.ReplaceAllString(content, "\n")
	content = trailingSpace.ReplaceAllString(content, "\n")
	return multipleBlankLines.ReplaceAllString(content, "\n\n")
}

func convertHighlights(content string) string {
	return highlightPattern.ReplaceAllString(content, MarkStartPlaceholder+"$1"+MarkEndPlaceholder)
}

// ConvertMarkPlaceholders turns highlight placeholders into <mark> tags.
// Run it on goldmark output.
func ConvertMarkPlaceholders(content string) string {
	return strings.NewReplacer(
		MarkStartPlaceholder, "<mark>",
		MarkEndPlaceholder, "</mark>",
	).Replace(content)
}
