package section

import (
	"strconv"
	"strings"
)

// Placeholder is printed where a required value was left empty.
const Placeholder = "__________"

// NotApplicable fills empty table cells.
const NotApplicable = "N/A"

// Fallback returns value with surrounding space trimmed, or placeholder when
// value is blank.
func Fallback(value, placeholder string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return placeholder
	}
	return value
}

// Paragraph returns text when on is true.
func Paragraph(on bool, text string) string {
	if !on {
		return ""
	}
	return strings.TrimSpace(text)
}

// Join concatenates non-empty blocks with a blank line between them.
func Join(blocks ...string) string {
	kept := make([]string, 0, len(blocks))
	for _, b := range blocks {
		b = strings.Trim(b, "\n")
		if strings.TrimSpace(b) == "" {
			continue
		}
		kept = append(kept, b)
	}
	return strings.Join(kept, "\n\n")
}

// List renders items as a "- " bullet list. Blank items are skipped;
// order is preserved and duplicates are kept.
func List(on bool, items []string) string {
	if !on {
		return ""
	}
	var b strings.Builder
	for _, item := range items {
		item = flatten(item)
		if item == "" {
			continue
		}
		if b.Len() > 0 {
			b.WriteByte('\n')
		}
		b.WriteString("- ")
		b.WriteString(item)
	}
	return b.String()
}

// OrderedList renders items as a "1. " numbered list.
func OrderedList(on bool, items []string) string {
	if !on {
		return ""
	}
	var b strings.Builder
	n := 0
	for _, item := range items {
		item = flatten(item)
		if item == "" {
			continue
		}
		n++
		if n > 1 {
			b.WriteByte('\n')
		}
		b.WriteString(strconv.Itoa(n))
		b.WriteString(". ")
		b.WriteString(item)
	}
	return b.String()
}

// Table renders a pipe-delimited Markdown table. Rows shorter than the header
// are padded with empty cells; longer rows are printed in full.
// An empty header yields no table.
func Table(on bool, header []string, rows [][]string) string {
	if !on || len(header) == 0 {
		return ""
	}

	var b strings.Builder
	writeRow(&b, header, len(header))
	b.WriteByte('\n')

	b.WriteByte('|')
	for range header {
		b.WriteString("---|")
	}

	for _, row := range rows {
		b.WriteByte('\n')
		writeRow(&b, row, len(header))
	}
	return b.String()
}

// writeRow writes one table row padded to width cells.
func writeRow(b *strings.Builder, cells []string, width int) {
	n := len(cells)
	if n < width {
		n = width
	}
	b.WriteByte('|')
	for i := 0; i < n; i++ {
		cell := ""
		if i < len(cells) {
			cell = escapeCell(cells[i])
		}
		b.WriteByte(' ')
		b.WriteString(cell)
		b.WriteString(" |")
	}
}

// escapeCell keeps a value on one line and stops it from splitting the row.
func escapeCell(s string) string {
	return strings.ReplaceAll(flatten(s), "|", `\|`)
}

// flatten collapses line breaks so a value stays inside its list item or cell.
func flatten(s string) string {
	s = strings.ReplaceAll(s, "\r\n", " ")
	s = strings.ReplaceAll(s, "\n", " ")
	s = strings.ReplaceAll(s, "\r", " ")
	return strings.TrimSpace(s)
}

// Bold wraps s in strong emphasis.
func Bold(s string) string {
	return "**" + s + "**"
}

// Italic wraps s in emphasis.
func Italic(s string) string {
	return "*" + s + "*"
}

// Field renders a "**Label:** value" line.
func Field(label, value string) string {
	return Bold(label+":") + " " + value
}

// Lines joins lines with Markdown hard breaks so they render as one block.
func Lines(lines ...string) string {
	kept := make([]string, 0, len(lines))
	for _, l := range lines {
		if strings.TrimSpace(l) != "" {
			kept = append(kept, l)
		}
	}
	return strings.Join(kept, "  \n")
}
