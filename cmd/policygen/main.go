package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	flag "github.com/spf13/pflag"
	"go.uber.org/automaxprocs/maxprocs"

	"github.com/ElSguidge/policygen"
	"github.com/ElSguidge/policygen/internal/assets"
	"github.com/ElSguidge/policygen/internal/hints"
)

// Version is set at build time via ldflags.
var Version = "dev"

func main() {
	env := DefaultEnv()

	if err := loadDotEnv(dotEnvFile); err != nil {
		fmt.Fprintf(env.Stderr, "warning: %v\n", err)
	}

	// maxprocs.Set only fails on an invalid GOMAXPROCS value, in which case
	// the runtime default applies.
	if hasVerboseFlag(os.Args) {
		_, _ = maxprocs.Set(maxprocs.Logger(func(format string, args ...interface{}) {
			fmt.Fprintf(os.Stderr, format+"\n", args...)
		}))
	} else {
		_, _ = maxprocs.Set(maxprocs.Logger(func(string, ...interface{}) {}))
	}

	os.Exit(runMain(os.Args, env))
}

// hasVerboseFlag reports whether -v or --verbose appears before "--".
func hasVerboseFlag(args []string) bool {
	for _, a := range args[1:] {
		switch a {
		case "--":
			return false
		case "-v", "--verbose":
			return true
		}
	}
	return false
}

// isCommand reports whether name is a known command.
func isCommand(name string) bool {
	switch name {
	case "generate", "init", "outline", "convert", "types", "completion", "version", "help":
		return true
	}
	return false
}

// runMain dispatches the command and returns the process exit code.
func runMain(args []string, env *Environment) int {
	if len(args) < 2 {
		printUsage(env.Stderr)
		return ExitUsage
	}

	ctx, stop := notifyContext(context.Background())
	defer stop()

	warnUnknownEnvVars(env.Stderr, env.Environ())

	cmd, rest := args[1], args[2:]
	var err error
	switch cmd {
	case "generate":
		err = runGenerate(ctx, rest, env)
	case "init":
		err = runInit(rest, env)
	case "outline":
		err = runOutline(rest, env)
	case "convert":
		err = runConvert(ctx, rest, env)
	case "types":
		err = runTypes(env)
	case "completion":
		err = runCompletion(rest, env)
	case "version":
		fmt.Fprintf(env.Stdout, "policygen %s\n", Version)
	case "help", "-h", "--help":
		err = runHelp(rest, env)
	default:
		printUsage(env.Stderr)
		err = fmt.Errorf("%w: unknown command: %s", ErrUsage, cmd)
	}

	if errors.Is(err, flag.ErrHelp) {
		return ExitSuccess
	}
	if err != nil {
		fmt.Fprintln(env.Stderr, errorWithHint(err))
		return exitCodeFor(err)
	}
	return ExitSuccess
}

// flagError marks a flag parsing error as a usage error. --help passes
// through so the caller can exit cleanly.
func flagError(err error) error {
	if errors.Is(err, flag.ErrHelp) {
		return err
	}
	return fmt.Errorf("%w: %w", ErrUsage, err)
}

// errorWithHint formats err followed by an actionable hint when one applies.
func errorWithHint(err error) string {
	msg := "error: " + err.Error()
	switch {
	case errors.Is(err, policygen.ErrBrowserConnect):
		msg += hints.ForBrowserConnect()
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, policygen.ErrPageLoad):
		msg += hints.ForTimeout()
	case errors.Is(err, ErrWriteOutput):
		msg += hints.ForOutputDirectory()
	case errors.Is(err, assets.ErrStyleNotFound):
		msg += hints.ForStyleNotFound(assets.Styles())
	case errors.Is(err, policygen.ErrUnknownDocumentType):
		msg += hints.ForUnknownType(typeNames())
	case errors.Is(err, policygen.ErrRequestParse):
		msg += hints.ForRequestParse()
	case errors.Is(err, policygen.ErrMissingField),
		errors.Is(err, policygen.ErrInvalidEmail),
		errors.Is(err, policygen.ErrIncompleteWorkStep):
		msg += hints.ForValidation()
	}
	return msg
}

func typeNames() []string {
	names := make([]string, len(policygen.DocumentTypes))
	for i, t := range policygen.DocumentTypes {
		names[i] = string(t)
	}
	return names
}
