package main

import (
	"context"
	"fmt"
	"sync"
	"time"
)

// File permission constants.
const (
	dirPermissions  = 0o750 // rwxr-x---: owner full, group read+execute
	filePermissions = 0o644 // rw-r--r--: owner read+write, others read
)

// Pool abstracts renderer pool operations for testability.
type Pool interface {
	Acquire() Renderer
	Release(Renderer)
	Size() int
}

// Compile-time check that RendererPool implements Pool.
var _ Pool = (*RendererPool)(nil)

// job is one document to produce.
type job struct {
	InputPath  string
	OutputPath string
}

// jobResult holds the outcome of a single job.
type jobResult struct {
	InputPath  string
	OutputPath string
	Warning    error // set when a document was forced past validation
	Err        error
	Duration   time.Duration
}

// jobFunc runs one job. pdf returns the worker's renderer, acquiring it
// from the pool on first call.
type jobFunc func(ctx context.Context, j job, pdf func() Renderer) jobResult

// runBatch processes jobs concurrently, at most pool.Size() at a time.
// Results keep the order of jobs.
func runBatch(ctx context.Context, pool Pool, jobs []job, fn jobFunc) []jobResult {
	if len(jobs) == 0 {
		return nil
	}

	concurrency := pool.Size()
	if concurrency > len(jobs) {
		concurrency = len(jobs)
	}

	results := make([]jobResult, len(jobs))
	queue := make(chan int, len(jobs))
	for i := range jobs {
		queue <- i
	}
	close(queue)

	var wg sync.WaitGroup
	for w := 0; w < concurrency; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			var renderer Renderer
			pdf := func() Renderer {
				if renderer == nil {
					renderer = pool.Acquire()
				}
				return renderer
			}
			defer func() {
				if renderer != nil {
					pool.Release(renderer)
				}
			}()

			for idx := range queue {
				if err := ctx.Err(); err != nil {
					results[idx] = jobResult{InputPath: jobs[idx].InputPath, Err: err}
					continue
				}
				start := time.Now()
				r := fn(ctx, jobs[idx], pdf)
				r.InputPath = jobs[idx].InputPath
				r.Duration = time.Since(start)
				results[idx] = r
			}
		}()
	}

	wg.Wait()
	return results
}

// printResults reports each result and, for batches, a summary line.
// It returns the batch error, or nil when every job succeeded.
func printResults(results []jobResult, quiet, verbose bool, env *Environment) error {
	var failed int
	var first error

	for _, r := range results {
		if r.Err != nil {
			failed++
			if first == nil {
				first = r.Err
			}
			fmt.Fprintf(env.Stderr, "FAILED %s: %v\n", r.InputPath, r.Err)
			continue
		}
		if r.Warning != nil {
			fmt.Fprintf(env.Stderr, "warning: %s: %v\n", r.InputPath, r.Warning)
		}

		if quiet {
			continue
		}
		if verbose {
			fmt.Fprintf(env.Stdout, "%s -> %s (%v)\n", r.InputPath, r.OutputPath, r.Duration.Round(time.Millisecond))
		} else {
			fmt.Fprintf(env.Stdout, "Created %s\n", r.OutputPath)
		}
	}

	if !quiet && len(results) > 1 {
		fmt.Fprintf(env.Stdout, "\n%d succeeded, %d failed\n", len(results)-failed, failed)
	}

	if failed == 0 {
		return nil
	}
	return &batchError{failed: failed, total: len(results), first: first}
}
