package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/ElSguidge/policygen"
)

// fakePDF is returned by fakeRenderer in place of a real PDF.
const fakePDF = "%PDF-1.4 fake"

// fakeRenderer records render calls without starting a browser.
type fakeRenderer struct {
	mu     sync.Mutex
	calls  []policygen.PDFOptions
	htmls  []string
	closed bool
	err    error
}

func (f *fakeRenderer) Render(_ context.Context, html string, opts policygen.PDFOptions) ([]byte, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, opts)
	f.htmls = append(f.htmls, html)
	if f.err != nil {
		return nil, f.err
	}
	return []byte(fakePDF), nil
}

func (f *fakeRenderer) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.closed = true
	return nil
}

func (f *fakeRenderer) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.calls)
}

// testEnv is an Environment with captured output, a fixed clock and an
// isolated environment map.
type testEnv struct {
	*Environment
	stdout    *bytes.Buffer
	stderr    *bytes.Buffer
	vars      map[string]string
	mu        sync.Mutex
	renderers []*fakeRenderer
	renderErr error
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	te := &testEnv{
		stdout: &bytes.Buffer{},
		stderr: &bytes.Buffer{},
		vars:   map[string]string{},
	}
	te.Environment = &Environment{
		Now:    func() time.Time { return time.Date(2025, 1, 15, 9, 0, 0, 0, time.UTC) },
		Stdout: te.stdout,
		Stderr: te.stderr,
		Getenv: func(k string) string { return te.vars[k] },
		Environ: func() []string {
			out := make([]string, 0, len(te.vars))
			for k, v := range te.vars {
				out = append(out, k+"="+v)
			}
			return out
		},
		NewRenderer: func(time.Duration) Renderer {
			te.mu.Lock()
			defer te.mu.Unlock()
			r := &fakeRenderer{err: te.renderErr}
			te.renderers = append(te.renderers, r)
			return r
		},
	}
	return te
}

func (te *testEnv) rendererCount() int {
	te.mu.Lock()
	defer te.mu.Unlock()
	return len(te.renderers)
}

// writeFile writes content under dir and returns the path.
func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read %s: %v", path, err)
	}
	return string(data)
}

const privacyRequest = `type: privacy-policy
config:
  companyName: Acme Pty Ltd
  websiteUrl: https://acme.example
  email: privacy@acme.example
  gdprCompliant: true
`

const incompleteRequest = `type: privacy-policy
config:
  websiteUrl: https://acme.example
`

const swmsRequest = `type: swms
config:
  companyName: Acme Builders
  email: safety@acme.example
  siteAddress: 1 Site Rd
  workSteps:
    - step: Set up scaffold
      hazards: [Falls]
      controls: [Edge protection]
      initialRisk: HIGH
      residualRisk: LOW
`
