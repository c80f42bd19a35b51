package hints

// Notes:
// - ForBrowserConnect tests do not run in parallel: they use t.Setenv and
//   swap the package-level IsInContainer.

import (
	"strings"
	"testing"
)

func withContainer(t *testing.T, in bool) {
	t.Helper()
	orig := IsInContainer
	t.Cleanup(func() { IsInContainer = orig })
	IsInContainer = func() bool { return in }
}

func TestForBrowserConnect(t *testing.T) {
	tests := []struct {
		name         string
		container    bool
		env          map[string]string
		wantContains []string
		wantExcludes []string
	}{
		{
			name:         "ci without sandbox setting",
			env:          map[string]string{"CI": "true", "ROD_NO_SANDBOX": "", "ROD_BROWSER_BIN": ""},
			wantContains: []string{"ROD_NO_SANDBOX=1", "ROD_BROWSER_BIN", "--format html"},
		},
		{
			name:         "docker",
			container:    true,
			env:          map[string]string{"CI": "", "GITHUB_ACTIONS": "", "GITLAB_CI": "", "ROD_NO_SANDBOX": "", "ROD_BROWSER_BIN": ""},
			wantContains: []string{"ROD_NO_SANDBOX=1"},
		},
		{
			name:         "already configured",
			container:    true,
			env:          map[string]string{"CI": "true", "ROD_NO_SANDBOX": "1", "ROD_BROWSER_BIN": "/usr/bin/chromium"},
			wantContains: []string{"--format html"},
			wantExcludes: []string{"ROD_NO_SANDBOX", "ROD_BROWSER_BIN"},
		},
		{
			name:         "desktop",
			env:          map[string]string{"CI": "", "GITHUB_ACTIONS": "", "GITLAB_CI": "", "ROD_NO_SANDBOX": "", "ROD_BROWSER_BIN": ""},
			wantExcludes: []string{"ROD_NO_SANDBOX"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			withContainer(t, tt.container)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			hint := ForBrowserConnect()
			if !strings.HasPrefix(hint, "\n  hint: ") {
				t.Errorf("hint %q lacks prefix", hint)
			}
			for _, want := range tt.wantContains {
				if !strings.Contains(hint, want) {
					t.Errorf("hint %q missing %q", hint, want)
				}
			}
			for _, bad := range tt.wantExcludes {
				if strings.Contains(hint, bad) {
					t.Errorf("hint %q should not mention %q", hint, bad)
				}
			}
		})
	}
}

func TestForConfigNotFound(t *testing.T) {
	t.Parallel()

	got := ForConfigNotFound([]string{"team.yaml", "/home/u/.config/policygen/team.yaml"})
	if !strings.Contains(got, "or create /home/u/.config/policygen/team.yaml") {
		t.Errorf("ForConfigNotFound() = %q", got)
	}

	got = ForConfigNotFound([]string{"team.yaml"})
	if strings.Contains(got, "or create") {
		t.Errorf("ForConfigNotFound() = %q, want no create suggestion", got)
	}
}

func TestListHints(t *testing.T) {
	t.Parallel()

	if got := ForStyleNotFound(nil); got != "" {
		t.Errorf("ForStyleNotFound(nil) = %q, want empty", got)
	}
	if got := ForStyleNotFound([]string{"default", "legal"}); got != "\n  hint: available: default, legal" {
		t.Errorf("ForStyleNotFound() = %q", got)
	}
	if got := ForUnknownType([]string{"eula", "swms"}); got != "\n  hint: valid types: eula, swms" {
		t.Errorf("ForUnknownType() = %q", got)
	}
	if got := ForUnknownType(nil); got != "" {
		t.Errorf("ForUnknownType(nil) = %q, want empty", got)
	}
}

func TestFixedHints(t *testing.T) {
	t.Parallel()

	for name, hint := range map[string]string{
		"timeout":    ForTimeout(),
		"output":     ForOutputDirectory(),
		"request":    ForRequestParse(),
		"validation": ForValidation(),
	} {
		if !strings.HasPrefix(hint, "\n  hint: ") || strings.Count(hint, "\n") != 1 {
			t.Errorf("%s hint %q not formatted as a single hint line", name, hint)
		}
	}
}
