package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	flag "github.com/spf13/pflag"

	"github.com/ElSguidge/policygen"
	"github.com/ElSguidge/policygen/internal/assets"
)

// Shell represents a supported shell for completion generation.
type Shell string

// Supported shells for completion.
const (
	ShellBash Shell = "bash"
	ShellZsh  Shell = "zsh"
	ShellFish Shell = "fish"
)

// ErrUnsupportedShell is returned when an unknown shell is requested.
var ErrUnsupportedShell = errors.New("unsupported shell")

// flagValues maps enum flags to their completions.
func flagValues(name string) []string {
	switch name {
	case "format":
		names := make([]string, len(policygen.Formats))
		for i, f := range policygen.Formats {
			names[i] = string(f)
		}
		return names
	case "page-size":
		return []string{policygen.PageSizeA4, policygen.PageSizeLetter, policygen.PageSizeLegal}
	case "orientation":
		return []string{policygen.OrientationPortrait, policygen.OrientationLandscape}
	case "style":
		return assets.Styles()
	case "date":
		return []string{"auto", "auto:long", "auto:iso", "auto:european", "auto:us"}
	}
	return nil
}

// commandDef describes a command for completion.
type commandDef struct {
	Name  string
	Desc  string
	Flags *flag.FlagSet // nil when the command takes no flags
	Args  []string      // fixed argument values, e.g. document types
}

// getCommands returns the command registry. Flags come from the same
// FlagSets the commands parse with.
func getCommands() []commandDef {
	types := make([]string, len(policygen.DocumentTypes))
	for i, t := range policygen.DocumentTypes {
		types[i] = string(t)
	}

	return []commandDef{
		{Name: "generate", Desc: "Generate documents from request files", Flags: generateFlagSet(&generateFlags{}, io.Discard)},
		{Name: "init", Desc: "Write a request file with default values", Flags: initFlagSet(&initFlags{}, io.Discard), Args: types},
		{Name: "outline", Desc: "Print the section outline of a request"},
		{Name: "convert", Desc: "Convert a Markdown file", Flags: convertFlagSet(&convertFlags{}, io.Discard)},
		{Name: "types", Desc: "List document types and styles"},
		{Name: "completion", Desc: "Generate shell completion script", Args: []string{string(ShellBash), string(ShellZsh), string(ShellFish)}},
		{Name: "version", Desc: "Show version information"},
		{Name: "help", Desc: "Show help for a command"},
	}
}

// longFlags returns "--name" for every flag in fs, plus "-x" shorthands.
func longFlags(fs *flag.FlagSet) []string {
	if fs == nil {
		return nil
	}
	var out []string
	fs.VisitAll(func(f *flag.Flag) {
		out = append(out, "--"+f.Name)
		if f.Shorthand != "" {
			out = append(out, "-"+f.Shorthand)
		}
	})
	return out
}

// GenerateCompletion writes the completion script for shell to w.
func GenerateCompletion(w io.Writer, shell Shell) error {
	switch shell {
	case ShellBash:
		return generateBash(w)
	case ShellZsh:
		return generateZsh(w)
	case ShellFish:
		return generateFish(w)
	default:
		return fmt.Errorf("%w: %q (supported: bash, zsh, fish)", ErrUnsupportedShell, shell)
	}
}

func commandNames(cmds []commandDef) string {
	names := make([]string, len(cmds))
	for i, c := range cmds {
		names[i] = c.Name
	}
	return strings.Join(names, " ")
}

func generateBash(w io.Writer) error {
	cmds := getCommands()
	var b strings.Builder
	b.WriteString("# bash completion for policygen\n")
	b.WriteString("_policygen() {\n")
	b.WriteString("    local cur prev cmd\n")
	b.WriteString("    cur=\"${COMP_WORDS[COMP_CWORD]}\"\n")
	b.WriteString("    prev=\"${COMP_WORDS[COMP_CWORD-1]}\"\n")
	b.WriteString("    cmd=\"${COMP_WORDS[1]}\"\n")
	b.WriteString("    if [[ ${COMP_CWORD} -eq 1 ]]; then\n")
	fmt.Fprintf(&b, "        COMPREPLY=($(compgen -W %q -- \"$cur\"))\n", commandNames(cmds))
	b.WriteString("        return\n")
	b.WriteString("    fi\n")
	b.WriteString("    case \"$prev\" in\n")
	for _, name := range []string{"format", "page-size", "orientation", "style", "date"} {
		fmt.Fprintf(&b, "        --%s) COMPREPLY=($(compgen -W %q -- \"$cur\")); return ;;\n", name, strings.Join(flagValues(name), " "))
	}
	b.WriteString("    esac\n")
	b.WriteString("    case \"$cmd\" in\n")
	for _, c := range cmds {
		words := append(longFlags(c.Flags), c.Args...)
		if len(words) == 0 {
			continue
		}
		fmt.Fprintf(&b, "        %s) COMPREPLY=($(compgen -W %q -- \"$cur\") $(compgen -f -- \"$cur\")) ;;\n", c.Name, strings.Join(words, " "))
	}
	b.WriteString("        *) COMPREPLY=($(compgen -f -- \"$cur\")) ;;\n")
	b.WriteString("    esac\n")
	b.WriteString("}\n")
	b.WriteString("complete -F _policygen policygen\n")
	_, err := io.WriteString(w, b.String())
	return err
}

func generateZsh(w io.Writer) error {
	cmds := getCommands()
	var b strings.Builder
	b.WriteString("#compdef policygen\n")
	b.WriteString("_policygen() {\n")
	b.WriteString("    local -a commands\n")
	b.WriteString("    commands=(\n")
	for _, c := range cmds {
		fmt.Fprintf(&b, "        '%s:%s'\n", c.Name, c.Desc)
	}
	b.WriteString("    )\n")
	b.WriteString("    if (( CURRENT == 2 )); then\n")
	b.WriteString("        _describe 'command' commands\n")
	b.WriteString("        return\n")
	b.WriteString("    fi\n")
	b.WriteString("    case \"${words[2]}\" in\n")
	for _, c := range cmds {
		if c.Flags == nil && len(c.Args) == 0 {
			continue
		}
		fmt.Fprintf(&b, "        %s)\n", c.Name)
		b.WriteString("            _arguments \\\n")
		if c.Flags != nil {
			c.Flags.VisitAll(func(f *flag.Flag) {
				action := ""
				if values := flagValues(f.Name); len(values) > 0 {
					action = ":" + f.Name + ":(" + strings.Join(values, " ") + ")"
				} else if f.Value.Type() != "bool" {
					action = ":" + f.Name + ":_files"
				}
				fmt.Fprintf(&b, "                '--%s[%s]%s' \\\n", f.Name, zshEscape(f.Usage), action)
			})
		}
		if len(c.Args) > 0 {
			fmt.Fprintf(&b, "                '1:argument:(%s)' \\\n", strings.Join(c.Args, " "))
		}
		b.WriteString("                '*:file:_files'\n")
		b.WriteString("            ;;\n")
	}
	b.WriteString("        *) _files ;;\n")
	b.WriteString("    esac\n")
	b.WriteString("}\n")
	b.WriteString("compdef _policygen policygen\n")
	_, err := io.WriteString(w, b.String())
	return err
}

func zshEscape(s string) string {
	return strings.NewReplacer("'", "'\\''", "[", "\\[", "]", "\\]", ":", "\\:").Replace(s)
}

func generateFish(w io.Writer) error {
	cmds := getCommands()
	var b strings.Builder
	b.WriteString("# fish completion for policygen\n")
	b.WriteString("complete -c policygen -f\n")
	for _, c := range cmds {
		fmt.Fprintf(&b, "complete -c policygen -n '__fish_use_subcommand' -a %s -d '%s'\n", c.Name, c.Desc)
	}
	for _, c := range cmds {
		cond := "__fish_seen_subcommand_from " + c.Name
		if c.Flags != nil {
			c.Flags.VisitAll(func(f *flag.Flag) {
				line := fmt.Sprintf("complete -c policygen -n '%s' -l %s", cond, f.Name)
				if f.Shorthand != "" {
					line += " -s " + f.Shorthand
				}
				if values := flagValues(f.Name); len(values) > 0 {
					line += " -x -a '" + strings.Join(values, " ") + "'"
				} else if f.Value.Type() != "bool" {
					line += " -r -F"
				}
				line += " -d '" + strings.ReplaceAll(f.Usage, "'", `\'`) + "'"
				b.WriteString(line + "\n")
			})
		}
		if len(c.Args) > 0 {
			fmt.Fprintf(&b, "complete -c policygen -n '%s' -a '%s'\n", cond, strings.Join(c.Args, " "))
		}
		if c.Name == "generate" || c.Name == "outline" || c.Name == "convert" {
			fmt.Fprintf(&b, "complete -c policygen -n '%s' -F\n", cond)
		}
	}
	_, err := io.WriteString(w, b.String())
	return err
}

// runCompletion handles the completion command.
func runCompletion(args []string, env *Environment) error {
	if len(args) == 0 {
		printCompletionUsage(env.Stdout)
		return nil
	}
	return GenerateCompletion(env.Stdout, Shell(args[0]))
}

// printCompletionUsage prints help for the completion command.
func printCompletionUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: policygen completion <shell>")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Generate shell completion script for the specified shell.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Supported shells:")
	fmt.Fprintln(w, "  bash        Bash completion script")
	fmt.Fprintln(w, "  zsh         Zsh completion script")
	fmt.Fprintln(w, "  fish        Fish completion script")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Installation:")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  Bash:")
	fmt.Fprintln(w, "    # Add to ~/.bashrc:")
	fmt.Fprintln(w, "    eval \"$(policygen completion bash)\"")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  Zsh:")
	fmt.Fprintln(w, "    # Add to ~/.zshrc (before compinit):")
	fmt.Fprintln(w, "    eval \"$(policygen completion zsh)\"")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  Fish:")
	fmt.Fprintln(w, "    policygen completion fish > ~/.config/fish/completions/policygen.fish")
}
