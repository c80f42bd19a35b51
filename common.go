package policygen

import (
	"strconv"
	"strings"

	"github.com/ElSguidge/policygen/internal/dateutil"
	"github.com/ElSguidge/policygen/internal/section"
)

// templateNotice closes every legal document.
const templateNotice = "*This document was generated from a template and is not a substitute for " +
	"professional legal advice. Have it reviewed by a qualified lawyer before relying on it.*"

// displayDate renders an ISO date long-form. Anything else is printed as
// given, and an empty value becomes the placeholder.
func displayDate(value string) string {
	if long, ok := dateutil.FormatLong(value); ok {
		return long
	}
	return section.Fallback(value, section.Placeholder)
}

// documentHeader renders the title block shared by the legal documents.
func documentHeader(title, dateLabel, date string, intro ...string) string {
	blocks := []string{"# " + title, section.Field(dateLabel, displayDate(date))}
	return section.Join(append(blocks, intro...)...)
}

// documentFooter renders the closing notice, preceded by extra blocks.
func documentFooter(extra ...string) string {
	return section.Join(append(extra, templateNotice)...)
}

// contact holds the identity fields every configuration carries.
type contact struct {
	Name    string
	Email   string
	Website string
	Address string
	Phone   string
}

// block renders the contact details as consecutive lines.
// A missing website and address still prints one placeholder line.
func (c contact) block() string {
	lines := []string{
		section.Bold(section.Fallback(c.Name, section.Placeholder)),
		"Email: " + section.Fallback(c.Email, section.Placeholder),
	}
	website := strings.TrimSpace(c.Website)
	address := strings.TrimSpace(c.Address)
	if website != "" || address == "" {
		lines = append(lines, "Website: "+section.Fallback(website, section.Placeholder))
	}
	if address != "" {
		lines = append(lines, "Address: "+address)
	}
	if phone := strings.TrimSpace(c.Phone); phone != "" {
		lines = append(lines, "Phone: "+phone)
	}
	return section.Lines(lines...)
}

// name returns the entity name or the placeholder.
func (c contact) name() string {
	return section.Fallback(c.Name, section.Placeholder)
}

// site returns the website URL, or a generic phrase when none is set.
func (c contact) site() string {
	return section.Fallback(c.Website, "our website")
}

// email returns the contact email or the placeholder.
func (c contact) email() string {
	return section.Fallback(c.Email, section.Placeholder)
}

// joinWords joins items as "a", "a and b" or "a, b, and c".
func joinWords(items []string) string {
	switch len(items) {
	case 0:
		return ""
	case 1:
		return items[0]
	case 2:
		return items[0] + " and " + items[1]
	}
	return strings.Join(items[:len(items)-1], ", ") + ", and " + items[len(items)-1]
}

// plural returns "1 day" or "N days".
func plural(n int, unit string) string {
	if n == 1 {
		return "1 " + unit
	}
	return strconv.Itoa(n) + " " + unit + "s"
}

// sentence upper-cases the first letter of s for use at the start of a sentence.
func sentence(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// article prefixes noun with "a" or "an".
func article(noun string) string {
	if noun != "" && strings.ContainsRune("aeiouAEIOU", rune(noun[0])) {
		return "an " + noun
	}
	return "a " + noun
}
