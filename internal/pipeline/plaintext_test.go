package pipeline

import (
	"strings"
	"testing"
)

func TestToPlainText(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		md   string
		want string
	}{
		{
			name: "h1 underlined with equals",
			md:   "# Privacy Policy",
			want: "Privacy Policy\n==============\n",
		},
		{
			name: "h2 underlined with dashes",
			md:   "## 2. Information We Collect",
			want: "2. Information We Collect\n-------------------------\n",
		},
		{
			name: "h3 underlined with tildes",
			md:   "### 2.1 Personal Information",
			want: "2.1 Personal Information\n~~~~~~~~~~~~~~~~~~~~~~~~\n",
		},
		{
			name: "bullets",
			md:   "- Name\n- Email\n  - Work email",
			want: "• Name\n• Email\n  • Work email\n",
		},
		{
			name: "emphasis stripped",
			md:   "**Last Updated:** January 15, 2025 and *italic* text",
			want: "Last Updated: January 15, 2025 and italic text\n",
		},
		{
			name: "placeholder survives",
			md:   "**Email:** __________",
			want: "Email: __________\n",
		},
		{
			name: "links keep url",
			md:   "See [our cookie policy](https://acme.example/cookies).",
			want: "See our cookie policy (https://acme.example/cookies).\n",
		},
		{
			name: "bare link collapsed",
			md:   "[https://acme.example](https://acme.example)",
			want: "https://acme.example\n",
		},
		{
			name: "table pipes removed",
			md:   "| Cookie | Duration |\n|---|---|\n| _ga | 2 years |",
			want: "Cookie  Duration\n_ga  2 years\n",
		},
		{
			name: "escaped pipe in cell",
			md:   "| Step | Hazards |\n|---|---|\n| Cut a\\|b | Dust |",
			want: "Step  Hazards\nCut a|b  Dust\n",
		},
		{
			name: "checkbox cells kept",
			md:   "| Selected | Category |\n|---|---|\n| [X] | Diving work |",
			want: "Selected  Category\n[X]  Diving work\n",
		},
		{
			name: "horizontal rule",
			md:   "above\n\n---\n\nbelow",
			want: "above\n\n" + strings.Repeat("-", ruleWidth) + "\n\nbelow\n",
		},
		{
			name: "hard break spaces dropped",
			md:   "Acme  \nSydney",
			want: "Acme\nSydney\n",
		},
		{
			name: "code fence content kept verbatim",
			md:   "```\n**not bold**\n```",
			want: "**not bold**\n",
		},
		{
			name: "empty",
			md:   "   \n\n",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := ToPlainText(tt.md); got != tt.want {
				t.Errorf("ToPlainText() =\n%q\nwant\n%q", got, tt.want)
			}
		})
	}
}

func TestToPlainText_NoMarkupLeft(t *testing.T) {
	t.Parallel()

	md := strings.Join([]string{
		"# Terms of Service",
		"",
		"**Effective Date:** January 15, 2025",
		"",
		"---",
		"",
		"## 1. Acceptance of Terms",
		"",
		"By using **Acme** you agree. See Section 18 (Changes to These Terms).",
		"",
		"| Field | Details |",
		"|---|---|",
		"| Company | Acme |",
	}, "\n")

	got := ToPlainText(md)
	for _, marker := range []string{"**", "## ", "|"} {
		if strings.Contains(got, marker) {
			t.Errorf("ToPlainText() left %q in:\n%s", marker, got)
		}
	}
	if !strings.Contains(got, "See Section 18 (Changes to These Terms).") {
		t.Errorf("ToPlainText() changed cross-reference text:\n%s", got)
	}
}
