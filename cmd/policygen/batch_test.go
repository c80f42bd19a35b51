package main

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/ElSguidge/policygen"
)

// countingPool is a Pool that records acquisitions.
type countingPool struct {
	size     int
	acquired atomic.Int32
	released atomic.Int32
}

func (p *countingPool) Acquire() Renderer {
	p.acquired.Add(1)
	return &fakeRenderer{}
}

func (p *countingPool) Release(Renderer) { p.released.Add(1) }

func (p *countingPool) Size() int { return p.size }

func makeJobs(n int) []job {
	jobs := make([]job, n)
	for i := range jobs {
		jobs[i] = job{InputPath: fmt.Sprintf("in-%d.yaml", i), OutputPath: fmt.Sprintf("out-%d.md", i)}
	}
	return jobs
}

func TestRunBatch_KeepsOrder(t *testing.T) {
	t.Parallel()

	pool := &countingPool{size: 4}
	jobs := makeJobs(10)

	results := runBatch(context.Background(), pool, jobs, func(_ context.Context, j job, _ func() Renderer) jobResult {
		return jobResult{OutputPath: j.OutputPath}
	})

	if len(results) != len(jobs) {
		t.Fatalf("results = %d, want %d", len(results), len(jobs))
	}
	for i, r := range results {
		if r.InputPath != jobs[i].InputPath || r.OutputPath != jobs[i].OutputPath {
			t.Errorf("result[%d] = %+v, want job %+v", i, r, jobs[i])
		}
	}
	if pool.acquired.Load() != 0 {
		t.Errorf("renderers acquired = %d, want 0 for non-PDF jobs", pool.acquired.Load())
	}
}

func TestRunBatch_AcquiresOncePerWorker(t *testing.T) {
	t.Parallel()

	pool := &countingPool{size: 2}

	runBatch(context.Background(), pool, makeJobs(6), func(ctx context.Context, j job, pdf func() Renderer) jobResult {
		if _, err := pdf().Render(ctx, "<html></html>", policygen.PDFOptions{}); err != nil {
			return jobResult{Err: err}
		}
		return jobResult{OutputPath: j.OutputPath}
	})

	if got := pool.acquired.Load(); got < 1 || got > 2 {
		t.Errorf("acquired = %d, want 1..2", got)
	}
	if pool.acquired.Load() != pool.released.Load() {
		t.Errorf("acquired %d, released %d", pool.acquired.Load(), pool.released.Load())
	}
}

func TestRunBatch_Cancelled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var ran atomic.Int32
	results := runBatch(ctx, &countingPool{size: 2}, makeJobs(3), func(context.Context, job, func() Renderer) jobResult {
		ran.Add(1)
		return jobResult{}
	})

	if ran.Load() != 0 {
		t.Errorf("jobs ran after cancellation: %d", ran.Load())
	}
	for i, r := range results {
		if !errors.Is(r.Err, context.Canceled) {
			t.Errorf("result[%d].Err = %v, want context.Canceled", i, r.Err)
		}
	}
}

func TestRunBatch_Empty(t *testing.T) {
	t.Parallel()

	if got := runBatch(context.Background(), &countingPool{size: 1}, nil, nil); got != nil {
		t.Errorf("runBatch(nil) = %v, want nil", got)
	}
}

func TestPrintResults(t *testing.T) {
	t.Parallel()

	results := []jobResult{
		{InputPath: "a.yaml", OutputPath: "a.md", Duration: 12 * time.Millisecond},
		{InputPath: "b.yaml", Err: policygen.ErrRequestParse},
		{InputPath: "c.yaml", OutputPath: "c.md", Warning: policygen.ErrMissingField},
	}

	tests := []struct {
		name       string
		quiet      bool
		verbose    bool
		wantStdout []string
		noStdout   []string
	}{
		{"default", false, false, []string{"Created a.md", "Created c.md", "2 succeeded, 1 failed"}, []string{"->"}},
		{"verbose", false, true, []string{"a.yaml -> a.md (12ms)"}, []string{"Created"}},
		{"quiet", true, false, nil, []string{"Created", "succeeded"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			te := newTestEnv(t)
			err := printResults(results, tt.quiet, tt.verbose, te.Environment)

			var be *batchError
			if !errors.As(err, &be) || be.failed != 1 || be.total != 3 {
				t.Fatalf("printResults() error = %v, want 1 of 3 failed", err)
			}
			if !errors.Is(err, policygen.ErrRequestParse) {
				t.Error("batch error does not unwrap to the first failure")
			}

			stdout, stderr := te.stdout.String(), te.stderr.String()
			for _, want := range tt.wantStdout {
				if !strings.Contains(stdout, want) {
					t.Errorf("stdout missing %q: %q", want, stdout)
				}
			}
			for _, unwanted := range tt.noStdout {
				if strings.Contains(stdout, unwanted) {
					t.Errorf("stdout has %q: %q", unwanted, stdout)
				}
			}
			if !strings.Contains(stderr, "FAILED b.yaml: ") || !strings.Contains(stderr, "warning: c.yaml: ") {
				t.Errorf("stderr = %q", stderr)
			}
		})
	}
}

func TestPrintResults_AllSucceeded(t *testing.T) {
	t.Parallel()

	te := newTestEnv(t)
	err := printResults([]jobResult{{InputPath: "a.yaml", OutputPath: "a.md"}}, false, false, te.Environment)
	if err != nil {
		t.Errorf("printResults() error = %v", err)
	}
	if strings.Contains(te.stdout.String(), "succeeded") {
		t.Error("summary printed for a single document")
	}
}
