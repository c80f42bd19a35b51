package section

import "strings"

// Node is one candidate section of a document. IDs must be unique within a
// document for cross-references to resolve.
type Node struct {
	ID         string
	Title      string
	Include    bool
	Unnumbered bool
	// Body renders the section content. It receives the document's
	// Numbering so references to other sections match their headings.
	Body     func(Numbering) string
	Children []Node
}

// Document is an ordered Section Plan framed by a header and a footer.
type Document struct {
	Header string
	Nodes  []Node
	Footer string
}

// maxHeadingLevel is the deepest Markdown heading Print emits.
const maxHeadingLevel = 6

// Print renders doc as Markdown. Numbering is resolved once up front.
func Print(doc Document) string {
	num := Numbering{entries: make(map[string]Entry)}
	var entries []Entry
	num.assign(doc.Nodes, "", 1, true, &entries)

	var blocks []string
	if h := strings.TrimSpace(doc.Header); h != "" {
		blocks = append(blocks, h, "---")
	}
	p := printer{num: num, entries: entries}
	blocks = p.appendNodes(blocks, doc.Nodes)
	if f := strings.TrimSpace(doc.Footer); f != "" {
		blocks = append(blocks, "---", f)
	}

	return Join(blocks...) + "\n"
}

// printer walks the plan in the same order assign produced entries.
type printer struct {
	num     Numbering
	entries []Entry
	next    int
}

func (p *printer) appendNodes(blocks []string, nodes []Node) []string {
	for _, node := range nodes {
		if !node.Include {
			continue
		}
		e := p.entries[p.next]
		p.next++
		blocks = append(blocks, heading(e.Level, e.Label, e.Title))
		if node.Body != nil {
			blocks = append(blocks, node.Body(p.num))
		}
		blocks = p.appendNodes(blocks, node.Children)
	}
	return blocks
}

// heading renders "## 3. Title" at level 1 and "### 3.2 Title" below it.
func heading(level int, label, title string) string {
	depth := level + 1
	if depth > maxHeadingLevel {
		depth = maxHeadingLevel
	}
	prefix := strings.Repeat("#", depth) + " "
	switch {
	case label == "":
		return prefix + title
	case level == 1:
		return prefix + label + ". " + title
	default:
		return prefix + label + " " + title
	}
}

// Outline lists the included nodes of doc in print order.
func Outline(doc Document) []Entry {
	num := Numbering{entries: make(map[string]Entry)}
	var out []Entry
	num.assign(doc.Nodes, "", 1, true, &out)
	return out
}
