package pipeline

import (
	"fmt"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// cellClasses maps the exact text of a table cell to the classes its <td>
// receives. Matching is case-sensitive: "High" in prose is not a risk label.
var cellClasses = map[string]string{
	"LOW":     "risk risk-low",
	"MEDIUM":  "risk risk-medium",
	"HIGH":    "risk risk-high",
	"EXTREME": "risk risk-extreme",
	"[X]":     "checkbox checkbox-checked",
	"[ ]":     "checkbox checkbox-unchecked",
}

// CellClass returns the classes for a cell whose whole text is a risk label
// or checkbox marker.
func CellClass(text string) (string, bool) {
	class, ok := cellClasses[strings.TrimSpace(text)]
	return class, ok
}

// AnnotateCells adds severity and checkbox classes to matching <td> elements.
// Content without table cells is returned unchanged.
func AnnotateCells(content string) (string, error) {
	if !strings.Contains(content, "<td") {
		return content, nil
	}

	doc, isFragment, err := parseHTML(content)
	if err != nil {
		return "", fmt.Errorf("%w: parsing HTML: %v", ErrHTMLConversion, err)
	}

	walk(doc, func(n *html.Node) {
		if n.Type != html.ElementNode || n.DataAtom != atom.Td {
			return
		}
		if class, ok := CellClass(textContent(n)); ok {
			addClass(n, class)
		}
	})

	out, err := renderHTML(doc, isFragment)
	if err != nil {
		return "", fmt.Errorf("%w: rendering HTML: %v", ErrHTMLConversion, err)
	}
	return out, nil
}
