package main

import (
	"fmt"

	"github.com/ElSguidge/policygen"
	"github.com/ElSguidge/policygen/internal/fileutil"
)

// runInit writes a request file holding the defaults of a document type.
func runInit(args []string, env *Environment) error {
	flags, positional, err := parseInitFlags(args, env.Stderr)
	if err != nil {
		return flagError(err)
	}
	if len(positional) != 1 {
		printInitUsage(env.Stderr)
		return fmt.Errorf("%w: init takes exactly one document type", ErrUsage)
	}

	t, err := policygen.ParseDocumentType(positional[0])
	if err != nil {
		return err
	}
	cfg, err := policygen.DefaultConfig(t)
	if err != nil {
		return err
	}
	data, err := policygen.EncodeRequest(cfg)
	if err != nil {
		return err
	}

	if flags.output == "" {
		_, err := env.Stdout.Write(data)
		return err
	}
	if fileutil.FileExists(flags.output) && !flags.force {
		return fmt.Errorf("%w: %s (pass --force to overwrite)", ErrOutputExists, flags.output)
	}
	if err := writeOutput(flags.output, data); err != nil {
		return err
	}
	fmt.Fprintf(env.Stdout, "Created %s\n", flags.output)
	return nil
}
