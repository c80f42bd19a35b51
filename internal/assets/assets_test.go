package assets

import (
	"errors"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"
)

// writeStyle creates {dir}/styles/{name}.css.
func writeStyle(t *testing.T, dir, name, css string) {
	t.Helper()
	stylesDir := filepath.Join(dir, "styles")
	if err := os.MkdirAll(stylesDir, 0o755); err != nil {
		t.Fatalf("failed to create styles dir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(stylesDir, name+".css"), []byte(css), 0o644); err != nil {
		t.Fatalf("failed to write CSS file: %v", err)
	}
}

func TestStyles(t *testing.T) {
	t.Parallel()

	got := Styles()
	for _, want := range []string{"default", "legal", "safety"} {
		if !slices.Contains(got, want) {
			t.Errorf("Styles() = %v, missing %q", got, want)
		}
	}
	if !slices.IsSorted(got) {
		t.Errorf("Styles() = %v, want sorted", got)
	}
}

func TestLoadStyle_Embedded(t *testing.T) {
	t.Parallel()

	for _, name := range Styles() {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			css, err := LoadStyle(name)
			if err != nil {
				t.Fatalf("LoadStyle(%q) error = %v", name, err)
			}
			for _, class := range []string{"td.risk", "td.checkbox"} {
				if !strings.Contains(css, class) {
					t.Errorf("style %q has no %s rule", name, class)
				}
			}
		})
	}
}

func TestLoadStyle_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		wantErr error
	}{
		{"missing", "nonexistent", ErrStyleNotFound},
		{"empty", "", ErrInvalidAssetName},
		{"traversal", "../secret", ErrInvalidAssetName},
		{"extension", "default.css", ErrInvalidAssetName},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if _, err := LoadStyle(tt.input); !errors.Is(err, tt.wantErr) {
				t.Errorf("LoadStyle(%q) error = %v, want %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestValidateAssetName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input   string
		wantErr bool
	}{
		{"default", false},
		{"my-style", false},
		{"my_style2", false},
		{"", true},
		{"a/b", true},
		{`a\b`, true},
		{"..", true},
		{"a.b", true},
		{"a\x00b", true},
	}
	for _, tt := range tests {
		err := ValidateAssetName(tt.input)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidateAssetName(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
		}
		if err != nil && !errors.Is(err, ErrInvalidAssetName) {
			t.Errorf("ValidateAssetName(%q) error = %v, want ErrInvalidAssetName", tt.input, err)
		}
	}
}

func TestNewFilesystemLoader(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	file := filepath.Join(tmpDir, "file.txt")
	if err := os.WriteFile(file, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name    string
		path    string
		wantErr bool
	}{
		{"valid directory", tmpDir, false},
		{"empty path", "", true},
		{"nonexistent", filepath.Join(tmpDir, "missing"), true},
		{"file not directory", file, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := NewFilesystemLoader(tt.path)
			if (err != nil) != tt.wantErr {
				t.Fatalf("NewFilesystemLoader() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrInvalidBasePath) {
				t.Errorf("error = %v, want ErrInvalidBasePath", err)
			}
		})
	}
}

func TestFilesystemLoader_LoadStyle(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	writeStyle(t, tmpDir, "custom", "body { color: red; }")

	loader, err := NewFilesystemLoader(tmpDir)
	if err != nil {
		t.Fatalf("NewFilesystemLoader() error = %v", err)
	}

	got, err := loader.LoadStyle("custom")
	if err != nil {
		t.Fatalf("LoadStyle() error = %v", err)
	}
	if got != "body { color: red; }" {
		t.Errorf("LoadStyle() = %q", got)
	}

	if _, err := loader.LoadStyle("missing"); !errors.Is(err, ErrStyleNotFound) {
		t.Errorf("LoadStyle(missing) error = %v, want ErrStyleNotFound", err)
	}
}

func TestFilesystemLoader_SymlinkEscape(t *testing.T) {
	t.Parallel()

	outside := t.TempDir()
	secret := filepath.Join(outside, "secret.css")
	if err := os.WriteFile(secret, []byte("secret"), 0o644); err != nil {
		t.Fatal(err)
	}

	base := t.TempDir()
	if err := os.MkdirAll(filepath.Join(base, "styles"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.Symlink(secret, filepath.Join(base, "styles", "evil.css")); err != nil {
		t.Skipf("symlinks not supported: %v", err)
	}

	loader, err := NewFilesystemLoader(base)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := loader.LoadStyle("evil"); !errors.Is(err, ErrPathTraversal) {
		t.Errorf("LoadStyle(evil) error = %v, want ErrPathTraversal", err)
	}
}

func TestAssetResolver(t *testing.T) {
	t.Parallel()

	t.Run("embedded only", func(t *testing.T) {
		t.Parallel()

		r, err := NewAssetResolver("")
		if err != nil {
			t.Fatal(err)
		}
		if r.HasCustomLoader() {
			t.Error("expected no custom loader")
		}
		if _, err := r.LoadStyle(DefaultStyleName); err != nil {
			t.Errorf("LoadStyle(default) error = %v", err)
		}
	})

	t.Run("custom overrides embedded", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		writeStyle(t, dir, DefaultStyleName, "/* mine */")
		r, err := NewAssetResolver(dir)
		if err != nil {
			t.Fatal(err)
		}
		got, err := r.LoadStyle(DefaultStyleName)
		if err != nil || got != "/* mine */" {
			t.Errorf("LoadStyle() = %q, %v; want custom CSS", got, err)
		}
	})

	t.Run("falls back when custom lacks style", func(t *testing.T) {
		t.Parallel()

		r, err := NewAssetResolver(t.TempDir())
		if err != nil {
			t.Fatal(err)
		}
		got, err := r.LoadStyle("safety")
		if err != nil || !strings.Contains(got, "td.risk-extreme") {
			t.Errorf("LoadStyle(safety) = %.40q, %v; want embedded CSS", got, err)
		}
	})

	t.Run("validation error not masked", func(t *testing.T) {
		t.Parallel()

		r, err := NewAssetResolver(t.TempDir())
		if err != nil {
			t.Fatal(err)
		}
		if _, err := r.LoadStyle("../x"); !errors.Is(err, ErrInvalidAssetName) {
			t.Errorf("LoadStyle() error = %v, want ErrInvalidAssetName", err)
		}
	})

	t.Run("invalid base path", func(t *testing.T) {
		t.Parallel()

		if _, err := NewAssetResolver(filepath.Join(t.TempDir(), "nope")); !errors.Is(err, ErrInvalidBasePath) {
			t.Errorf("NewAssetResolver() error = %v, want ErrInvalidBasePath", err)
		}
	})
}
