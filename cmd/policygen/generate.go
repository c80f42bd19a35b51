package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/ElSguidge/policygen"
	"github.com/ElSguidge/policygen/internal/config"
	"github.com/ElSguidge/policygen/internal/fileutil"
)

// requestExts are the extensions picked up when a directory is given.
var requestExts = []string{".yaml", ".yml"}

// runGenerate generates documents from request files.
func runGenerate(ctx context.Context, args []string, env *Environment) error {
	flags, positional, err := parseGenerateFlags(args, env.Stderr)
	if err != nil {
		return flagError(err)
	}

	envCfg := loadEnvConfig(env.Getenv)
	cfg, err := loadConfig(flags.common.config, envCfg)
	if err != nil {
		return err
	}
	applyEnvConfig(envCfg, cfg)
	mergeGenerateFlags(flags, cfg)

	s, err := buildSettings(cfg, flags.style.noStyle, policygen.FormatMarkdown, env.Now)
	if err != nil {
		return err
	}

	jobs, err := planJobs(positional, flags.output, s)
	if err != nil {
		return err
	}

	pool := NewRendererPool(resolvePoolSize(s.workers), s.timeout, env.NewRenderer)
	defer func() { _ = pool.Close() }()

	if flags.common.verbose {
		fmt.Fprintf(env.Stderr, "Generating %d document(s) as %s with %d worker(s)\n", len(jobs), s.format, pool.Size())
	}

	results := runBatch(ctx, pool, jobs, func(ctx context.Context, j job, pdf func() Renderer) jobResult {
		return generateOne(ctx, j, s, flags.force, pdf)
	})
	return printResults(results, flags.common.quiet, flags.common.verbose, env)
}

// mergeGenerateFlags merges generate flags into cfg. Flags win.
func mergeGenerateFlags(f *generateFlags, cfg *config.Config) {
	if f.format != "" {
		cfg.Output.Format = f.format
	}
	if f.date != "" {
		cfg.Document.Date = f.date
	}
	if f.workers != 0 {
		cfg.Batch.Workers = f.workers
	}
	if f.timeout != "" {
		cfg.Batch.Timeout = f.timeout
	}
	mergeStyleFlags(&f.style, cfg)
	mergePageFlags(&f.page, cfg)
}

// generateOne turns one request file into one output file.
func generateOne(ctx context.Context, j job, s *settings, force bool, pdf func() Renderer) jobResult {
	result := jobResult{OutputPath: j.OutputPath}

	data, err := os.ReadFile(j.InputPath) // #nosec G304 -- user-provided request path
	if err != nil {
		result.Err = fmt.Errorf("%w: %w", ErrReadInput, err)
		return result
	}

	cfg, err := policygen.DecodeRequest(data)
	if err != nil {
		result.Err = err
		return result
	}
	if s.date != "" {
		cfg = policygen.WithEffectiveDate(cfg, s.date)
	}

	if err := cfg.Validate(); err != nil {
		if !force {
			result.Err = err
			return result
		}
		result.Warning = err
	}

	out, err := renderDocument(ctx, policygen.Generate(cfg), cfg.Type(), s, pdf)
	if err != nil {
		result.Err = err
		return result
	}
	if err := writeOutput(j.OutputPath, out); err != nil {
		result.Err = err
	}
	return result
}

// planJobs expands inputs into jobs. Directories contribute their request
// files (not recursive). output names a file when there is exactly one
// request and it carries an extension; otherwise it is a directory.
// Without output, files go to the configured directory, or next to their
// request.
func planJobs(inputs []string, output string, s *settings) ([]job, error) {
	if len(inputs) == 0 {
		return nil, fmt.Errorf("%w: pass one or more request files", ErrNoInput)
	}

	var requests []string
	for _, in := range inputs {
		info, err := os.Stat(in)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrReadInput, err)
		}
		if !info.IsDir() {
			requests = append(requests, in)
			continue
		}
		found, err := findRequests(in)
		if err != nil {
			return nil, err
		}
		requests = append(requests, found...)
	}
	if len(requests) == 0 {
		return nil, fmt.Errorf("%w: no request files in %s", ErrNoInput, strings.Join(inputs, ", "))
	}

	if len(requests) == 1 && output != "" && filepath.Ext(output) != "" {
		return []job{{InputPath: requests[0], OutputPath: output}}, nil
	}

	dir := output
	if dir == "" {
		dir = s.outDir
	}
	jobs := make([]job, 0, len(requests))
	seen := make(map[string]string, len(requests))
	for _, req := range requests {
		outDir := dir
		if outDir == "" {
			outDir = filepath.Dir(req)
		}
		out := filepath.Join(outDir, fileutil.ReplaceExt(filepath.Base(req), s.format.Ext()))
		if prev, ok := seen[out]; ok {
			return nil, fmt.Errorf("%w: %s and %s both write %s", ErrUsage, prev, req, out)
		}
		seen[out] = req
		jobs = append(jobs, job{InputPath: req, OutputPath: out})
	}
	return jobs, nil
}

// findRequests lists the request files directly inside dir, sorted.
func findRequests(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrReadInput, err)
	}
	var found []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(e.Name()))
		for _, want := range requestExts {
			if ext == want {
				found = append(found, filepath.Join(dir, e.Name()))
				break
			}
		}
	}
	sort.Strings(found)
	return found, nil
}
