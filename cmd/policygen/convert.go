package main

import (
	"context"
	"fmt"
	"os"

	"github.com/ElSguidge/policygen"
	"github.com/ElSguidge/policygen/internal/config"
	"github.com/ElSguidge/policygen/internal/fileutil"
)

// runConvert converts an arbitrary Markdown file.
func runConvert(ctx context.Context, args []string, env *Environment) error {
	flags, positional, err := parseConvertFlags(args, env.Stderr)
	if err != nil {
		return flagError(err)
	}
	if len(positional) != 1 {
		printConvertUsage(env.Stderr)
		return fmt.Errorf("%w: convert takes exactly one Markdown file", ErrUsage)
	}
	input := positional[0]

	envCfg := loadEnvConfig(env.Getenv)
	cfg, err := loadConfig(flags.common.config, envCfg)
	if err != nil {
		return err
	}
	applyEnvConfig(envCfg, cfg)
	mergeConvertFlags(flags, cfg)

	s, err := buildSettings(cfg, flags.style.noStyle, policygen.FormatHTML, env.Now)
	if err != nil {
		return err
	}
	if s.format == policygen.FormatMarkdown {
		return fmt.Errorf("%w: convert writes html, txt or pdf", policygen.ErrInvalidFormat)
	}

	data, err := os.ReadFile(input) // #nosec G304 -- user-provided Markdown path
	if err != nil {
		return fmt.Errorf("%w: %w", ErrReadInput, err)
	}

	output := flags.output
	if output == "" {
		output = fileutil.ReplaceExt(input, s.format.Ext())
	}
	if output == input {
		return fmt.Errorf("%w: output would overwrite %s", ErrUsage, input)
	}

	var renderer Renderer
	defer func() {
		if renderer != nil {
			_ = renderer.Close()
		}
	}()
	pdf := func() Renderer {
		if renderer == nil {
			renderer = env.NewRenderer(s.timeout)
		}
		return renderer
	}

	out, err := renderDocument(ctx, string(data), "", s, pdf)
	if err != nil {
		return err
	}
	if err := writeOutput(output, out); err != nil {
		return err
	}
	if !flags.common.quiet {
		fmt.Fprintf(env.Stdout, "Created %s\n", output)
	}
	return nil
}

// mergeConvertFlags merges convert flags into cfg. Flags win.
func mergeConvertFlags(f *convertFlags, cfg *config.Config) {
	if f.format != "" {
		cfg.Output.Format = f.format
	}
	if f.timeout != "" {
		cfg.Batch.Timeout = f.timeout
	}
	mergeStyleFlags(&f.style, cfg)
	mergePageFlags(&f.page, cfg)
}
