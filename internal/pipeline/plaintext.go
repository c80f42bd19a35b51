package pipeline

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// ruleWidth is the width of the dash line that replaces horizontal rules.
const ruleWidth = 40

var (
	headingLine   = regexp.MustCompile(`^(#{1,6})\s+(.*?)\s*#*\s*$`)
	ruleLine      = regexp.MustCompile(`^(?:-\s*){3,}$|^(?:\*\s*){3,}$`)
	separatorRow  = regexp.MustCompile(`^\|?\s*:?-{3,}:?\s*(\|\s*:?-{3,}:?\s*)*\|?$`)
	bulletLine    = regexp.MustCompile(`^(\s*)[-*+]\s+(.*)$`)
	quoteLine     = regexp.MustCompile(`^\s*>\s?(.*)$`)
	fenceLine     = regexp.MustCompile("^\\s*(```|~~~)")
	imagePattern  = regexp.MustCompile(`!\[([^\]]*)\]\([^)]*\)`)
	linkPattern   = regexp.MustCompile(`\[([^\]]+)\]\(([^)\s]+)(?:\s+"[^"]*")?\)`)
	boldStars     = regexp.MustCompile(`\*\*([^*\s](?:[^*]*[^*\s])?)\*\*`)
	boldUnders    = regexp.MustCompile(`__([^_\s](?:[^_]*[^_\s])?)__`)
	italicStars   = regexp.MustCompile(`\*([^*\s](?:[^*]*[^*\s])?)\*`)
	strikePattern = regexp.MustCompile(`~~([^~]+)~~`)
	codePattern   = regexp.MustCompile("`([^`]+)`")
)

// underlines maps heading depth to the character drawn under it.
var underlines = map[int]string{1: "=", 2: "-"}

// ToPlainText renders Markdown as plain text.
//
// Headings are underlined (= for level 1, - for level 2, ~ below that),
// "- " bullets become "• ", emphasis markers are dropped, links become
// "text (url)" and table rows lose their pipes. Separator rows are removed.
// Any input is accepted.
func ToPlainText(markdown string) string {
	lines := strings.Split(Normalize(markdown), "\n")
	out := make([]string, 0, len(lines))
	inFence := false

	for _, line := range lines {
		if fenceLine.MatchString(line) {
			inFence = !inFence
			continue
		}
		if inFence {
			out = append(out, line)
			continue
		}

		trimmed := strings.TrimSpace(line)
		switch {
		case headingLine.MatchString(trimmed):
			m := headingLine.FindStringSubmatch(trimmed)
			text := stripInline(m[2])
			if text == "" {
				continue
			}
			char, ok := underlines[len(m[1])]
			if !ok {
				char = "~"
			}
			out = append(out, text, strings.Repeat(char, utf8.RuneCountInString(text)))

		case ruleLine.MatchString(trimmed):
			out = append(out, strings.Repeat("-", ruleWidth))

		case strings.HasPrefix(trimmed, "|") && separatorRow.MatchString(trimmed):
			continue

		case strings.HasPrefix(trimmed, "|"):
			out = append(out, strings.Join(tableCells(trimmed), "  "))

		case bulletLine.MatchString(line):
			m := bulletLine.FindStringSubmatch(line)
			out = append(out, m[1]+"• "+stripInline(m[2]))

		case quoteLine.MatchString(line):
			out = append(out, stripInline(quoteLine.FindStringSubmatch(line)[1]))

		default:
			out = append(out, stripInline(line))
		}
	}

	text := strings.TrimSpace(multipleBlankLines.ReplaceAllString(strings.Join(out, "\n"), "\n\n"))
	if text == "" {
		return ""
	}
	return text + "\n"
}

// tableCells splits a pipe table row on unescaped pipes and strips each cell.
func tableCells(row string) []string {
	row = strings.TrimSpace(row)
	row = strings.TrimPrefix(row, "|")
	if strings.HasSuffix(row, "|") && !strings.HasSuffix(row, `\|`) {
		row = row[:len(row)-1]
	}

	var cells []string
	var cell strings.Builder
	escaped := false
	for _, r := range row {
		switch {
		case escaped:
			if r != '|' {
				cell.WriteRune('\\')
			}
			cell.WriteRune(r)
			escaped = false
		case r == '\\':
			escaped = true
		case r == '|':
			cells = append(cells, stripInline(strings.TrimSpace(cell.String())))
			cell.Reset()
		default:
			cell.WriteRune(r)
		}
	}
	if escaped {
		cell.WriteRune('\\')
	}
	cells = append(cells, stripInline(strings.TrimSpace(cell.String())))

	kept := cells[:0]
	for _, c := range cells {
		if c != "" {
			kept = append(kept, c)
		}
	}
	return kept
}

// stripInline removes inline Markdown syntax, keeping the text.
func stripInline(s string) string {
	s = imagePattern.ReplaceAllString(s, "$1")
	s = linkPattern.ReplaceAllStringFunc(s, func(m string) string {
		sub := linkPattern.FindStringSubmatch(m)
		if sub[1] == sub[2] {
			return sub[1]
		}
		return sub[1] + " (" + sub[2] + ")"
	})
	s = codePattern.ReplaceAllString(s, "$1")
	s = boldStars.ReplaceAllString(s, "$1")
	s = boldUnders.ReplaceAllString(s, "$1")
	s = italicStars.ReplaceAllString(s, "$1")
	s = strikePattern.ReplaceAllString(s, "$1")
	return s
}
