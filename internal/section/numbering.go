package section

import "strconv"

// Resolve returns, for each flag, the count of true flags up to and including
// it. False entries get 0 and leave the count unchanged.
func Resolve(included []bool) []int {
	numbers := make([]int, len(included))
	n := 0
	for i, in := range included {
		if !in {
			continue
		}
		n++
		numbers[i] = n
	}
	return numbers
}

// Numbering is the resolved label of every included node in a plan.
// Headings and cross-references both read from it.
type Numbering struct {
	entries map[string]Entry
}

// Entry describes one included node after numbering.
type Entry struct {
	ID    string
	Label string // "3", "3.2"; empty for unnumbered nodes
	Title string
	Level int // 1 for top-level nodes
}

// Number resolves labels for nodes. Each level has its own counter that
// restarts under every parent. Children of an excluded node are excluded,
// and children of an unnumbered node are unnumbered.
func Number(nodes []Node) Numbering {
	n := Numbering{entries: make(map[string]Entry)}
	n.assign(nodes, "", 1, true, nil)
	return n
}

func (n Numbering) assign(nodes []Node, prefix string, level int, numbered bool, out *[]Entry) {
	flags := make([]bool, len(nodes))
	for i, node := range nodes {
		flags[i] = numbered && node.Include && !node.Unnumbered
	}
	numbers := Resolve(flags)

	for i, node := range nodes {
		if !node.Include {
			continue
		}
		label := ""
		if numbers[i] > 0 {
			label = prefix + strconv.Itoa(numbers[i])
		}
		e := Entry{ID: node.ID, Label: label, Title: node.Title, Level: level}
		if _, dup := n.entries[node.ID]; !dup && node.ID != "" {
			n.entries[node.ID] = e
		}
		if out != nil {
			*out = append(*out, e)
		}

		n.assign(node.Children, label+".", level+1, label != "", out)
	}
}

// Has reports whether the node with id is part of the document.
func (n Numbering) Has(id string) bool {
	_, ok := n.entries[id]
	return ok
}

// Label returns the number printed on the node's heading, or "".
func (n Numbering) Label(id string) string {
	return n.entries[id].Label
}

// Section returns "Section 3" for a numbered node, or "".
func (n Numbering) Section(id string) string {
	e, ok := n.entries[id]
	if !ok {
		return ""
	}
	if e.Label == "" {
		return "the " + e.Title + " section"
	}
	return "Section " + e.Label
}

// Ref returns "Section 3 (Title)" for a numbered node, the bare section
// name for an unnumbered one, and "" for a node that is not in the document.
func (n Numbering) Ref(id string) string {
	e, ok := n.entries[id]
	if !ok {
		return ""
	}
	if e.Label == "" {
		return "the \"" + e.Title + "\" section"
	}
	return "Section " + e.Label + " (" + e.Title + ")"
}

// RefOr returns Ref(id), or fallback when the node is absent.
func (n Numbering) RefOr(id, fallback string) string {
	if ref := n.Ref(id); ref != "" {
		return ref
	}
	return fallback
}
