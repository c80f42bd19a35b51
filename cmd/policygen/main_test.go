package main

// Notes:
// - runMain: exit codes and the stream each command writes to. Document
//   generation itself is covered in generate_test.go.
// - hasVerboseFlag and isCommand: argument scanning.
// - errorWithHint: hints attach to the errors they explain.

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/ElSguidge/policygen"
	"github.com/ElSguidge/policygen/internal/assets"
)

// ---------------------------------------------------------------------------
// TestRunMain - Command dispatch and exit codes
// ---------------------------------------------------------------------------

func TestRunMain(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		args         []string
		wantCode     int
		wantInStdout []string
		wantInStderr []string
	}{
		{
			name:         "no args shows usage",
			args:         []string{"policygen"},
			wantCode:     ExitUsage,
			wantInStderr: []string{"Usage: policygen"},
		},
		{
			name:         "version",
			args:         []string{"policygen", "version"},
			wantCode:     ExitSuccess,
			wantInStdout: []string{"policygen " + Version},
		},
		{
			name:         "help",
			args:         []string{"policygen", "help"},
			wantCode:     ExitSuccess,
			wantInStdout: []string{"Usage: policygen", "Commands:", "generate"},
		},
		{
			name:         "help generate",
			args:         []string{"policygen", "help", "generate"},
			wantCode:     ExitSuccess,
			wantInStdout: []string{"Usage: policygen generate", "--force"},
		},
		{
			name:         "help unknown command",
			args:         []string{"policygen", "help", "publish"},
			wantCode:     ExitUsage,
			wantInStderr: []string{"unknown command: publish"},
		},
		{
			name:         "generate --help",
			args:         []string{"policygen", "generate", "--help"},
			wantCode:     ExitSuccess,
			wantInStderr: []string{"Usage: policygen generate"},
		},
		{
			name:         "unknown command",
			args:         []string{"policygen", "publish"},
			wantCode:     ExitUsage,
			wantInStderr: []string{"unknown command: publish"},
		},
		{
			name:         "unknown flag",
			args:         []string{"policygen", "generate", "--colour"},
			wantCode:     ExitUsage,
			wantInStderr: []string{"colour"},
		},
		{
			name:         "generate without input",
			args:         []string{"policygen", "generate"},
			wantCode:     ExitIO,
			wantInStderr: []string{"no input specified"},
		},
		{
			name:         "generate missing file",
			args:         []string{"policygen", "generate", "nonexistent.yaml"},
			wantCode:     ExitIO,
		},
		{
			name:         "bad format",
			args:         []string{"policygen", "generate", "x.yaml", "-f", "docx"},
			wantCode:     ExitUsage,
			wantInStderr: []string{"docx"},
		},
		{
			name:         "types",
			args:         []string{"policygen", "types"},
			wantCode:     ExitSuccess,
			wantInStdout: []string{"privacy-policy", "Safe Work Method Statement", "Styles:"},
		},
		{
			name:     "unsupported shell",
			args:     []string{"policygen", "completion", "tcsh"},
			wantCode: ExitUsage,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			te := newTestEnv(t)
			code := runMain(tt.args, te.Environment)

			if code != tt.wantCode {
				t.Errorf("runMain(%v) = %d, want %d\nstderr: %s", tt.args, code, tt.wantCode, te.stderr.String())
			}
			for _, want := range tt.wantInStdout {
				if !strings.Contains(te.stdout.String(), want) {
					t.Errorf("stdout should contain %q, got %q", want, te.stdout.String())
				}
			}
			for _, want := range tt.wantInStderr {
				if !strings.Contains(te.stderr.String(), want) {
					t.Errorf("stderr should contain %q, got %q", want, te.stderr.String())
				}
			}
		})
	}
}

func TestRunMain_WarnsUnknownEnv(t *testing.T) {
	t.Parallel()

	te := newTestEnv(t)
	te.vars["POLICYGEN_FROMAT"] = "pdf"

	if code := runMain([]string{"policygen", "version"}, te.Environment); code != ExitSuccess {
		t.Fatalf("exit = %d", code)
	}
	if !strings.Contains(te.stderr.String(), "POLICYGEN_FROMAT") {
		t.Errorf("stderr = %q, want typo warning", te.stderr.String())
	}
}

// ---------------------------------------------------------------------------
// TestIsCommand / TestHasVerboseFlag - Argument scanning
// ---------------------------------------------------------------------------

func TestIsCommand(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  bool
	}{
		{"generate", true},
		{"init", true},
		{"outline", true},
		{"convert", true},
		{"types", true},
		{"version", true},
		{"help", true},
		{"", false},
		{"policy.yaml", false},
		{"Generate", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()

			if got := isCommand(tt.input); got != tt.want {
				t.Errorf("isCommand(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestHasVerboseFlag(t *testing.T) {
	t.Parallel()

	tests := []struct {
		args []string
		want bool
	}{
		{[]string{"policygen", "generate", "-v"}, true},
		{[]string{"policygen", "generate", "--verbose", "a.yaml"}, true},
		{[]string{"policygen", "generate", "--", "-v"}, false},
		{[]string{"policygen", "generate", "-q"}, false},
		{[]string{"policygen"}, false},
	}

	for _, tt := range tests {
		if got := hasVerboseFlag(tt.args); got != tt.want {
			t.Errorf("hasVerboseFlag(%v) = %v, want %v", tt.args, got, tt.want)
		}
	}
}

// ---------------------------------------------------------------------------
// TestErrorWithHint - Actionable hints
// ---------------------------------------------------------------------------

func TestErrorWithHint(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		err      error
		wantHint string
	}{
		{"unknown type", fmt.Errorf("%w: \"contract\"", policygen.ErrUnknownDocumentType), "privacy-policy"},
		{"request parse", policygen.ErrRequestParse, "policygen init"},
		{"missing field", errors.Join(fmt.Errorf("%w: email", policygen.ErrMissingField)), "--force"},
		{"style", assets.ErrStyleNotFound, "legal"},
		{"output", ErrWriteOutput, "writable"},
		{"no hint", ErrNoInput, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := errorWithHint(tt.err)
			if !strings.HasPrefix(got, "error: "+tt.err.Error()) {
				t.Errorf("errorWithHint() = %q, want error first", got)
			}
			if tt.wantHint == "" {
				if strings.Contains(got, "hint:") {
					t.Errorf("errorWithHint() = %q, want no hint", got)
				}
				return
			}
			if !strings.Contains(got, "hint:") || !strings.Contains(got, tt.wantHint) {
				t.Errorf("errorWithHint() = %q, want hint mentioning %q", got, tt.wantHint)
			}
		})
	}
}
