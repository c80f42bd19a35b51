package section

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFallback(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Acme", Fallback("  Acme ", Placeholder))
	assert.Equal(t, Placeholder, Fallback("", Placeholder))
	assert.Equal(t, NotApplicable, Fallback(" \t", NotApplicable))
}

func TestParagraph(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "hello", Paragraph(true, "hello\n"))
	assert.Empty(t, Paragraph(false, "hello"))
}

func TestJoin(t *testing.T) {
	t.Parallel()

	got := Join("a", "", "  ", "\nb\n", "c")
	assert.Equal(t, "a\n\nb\n\nc", got)
	assert.Empty(t, Join())
}

func TestList(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		on    bool
		items []string
		want  string
	}{
		{name: "gated off", on: false, items: []string{"a"}, want: ""},
		{name: "keeps order", on: true, items: []string{"b", "a"}, want: "- b\n- a"},
		{name: "keeps duplicates", on: true, items: []string{"a", "a"}, want: "- a\n- a"},
		{name: "skips blanks", on: true, items: []string{"a", " ", "b"}, want: "- a\n- b"},
		{name: "flattens newlines", on: true, items: []string{"a\nb"}, want: "- a b"},
		{name: "empty list", on: true, items: nil, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, List(tt.on, tt.items))
		})
	}
}

func TestOrderedList(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "1. a\n2. c", OrderedList(true, []string{"a", "", "c"}))
	assert.Empty(t, OrderedList(false, []string{"a"}))
}

func TestTable(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		on     bool
		header []string
		rows   [][]string
		want   string
	}{
		{
			name:   "gated off",
			on:     false,
			header: []string{"A"},
			want:   "",
		},
		{
			name:   "empty header",
			on:     true,
			header: nil,
			rows:   [][]string{{"x"}},
			want:   "",
		},
		{
			name:   "header only",
			on:     true,
			header: []string{"A", "B"},
			want:   "| A | B |\n|---|---|",
		},
		{
			name:   "rows",
			on:     true,
			header: []string{"A", "B"},
			rows:   [][]string{{"1", "2"}, {"3", "4"}},
			want:   "| A | B |\n|---|---|\n| 1 | 2 |\n| 3 | 4 |",
		},
		{
			name:   "short row is padded",
			on:     true,
			header: []string{"A", "B", "C"},
			rows:   [][]string{{"1"}},
			want:   "| A | B | C |\n|---|---|---|\n| 1 |  |  |",
		},
		{
			name:   "long row is kept",
			on:     true,
			header: []string{"A"},
			rows:   [][]string{{"1", "2"}},
			want:   "| A |\n|---|\n| 1 | 2 |",
		},
		{
			name:   "pipes and newlines are escaped",
			on:     true,
			header: []string{"A"},
			rows:   [][]string{{"x|y\nz"}},
			want:   "| A |\n|---|\n| x\\|y z |",
		},
		{
			name:   "markers pass through",
			on:     true,
			header: []string{"Risk", "Done"},
			rows:   [][]string{{"EXTREME", "[X]"}, {"LOW", "[ ]"}},
			want:   "| Risk | Done |\n|---|---|\n| EXTREME | [X] |\n| LOW | [ ] |",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, Table(tt.on, tt.header, tt.rows))
		})
	}
}

func TestInlineHelpers(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "**x**", Bold("x"))
	assert.Equal(t, "*x*", Italic("x"))
	assert.Equal(t, "**Email:** a@b.c", Field("Email", "a@b.c"))
	assert.Equal(t, "a  \nc", Lines("a", "", "c"))
}
