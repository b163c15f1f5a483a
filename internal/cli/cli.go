package cli

import (
	"flag"
	"fmt"
	"io"
	"strings"
)

const (
	ExitOK    = 0
	ExitError = 1
	ExitUsage = 2
)

type Command struct {
	Name    string
	Summary string
	Usage   []string
	Run     func(args []string, stdout, stderr io.Writer) int
}

// Run dispatches args to a command. Anything that is not a command name is
// treated as the positional form of run: edleval <language> <config>.
func Run(args []string, stdout, stderr io.Writer) int {
	if len(args) == 0 {
		printUsage(stdout)
		return ExitUsage
	}
	if isHelpArg(args[0]) {
		printUsage(stdout)
		return ExitOK
	}

	if cmd := findCommand(args[0]); cmd != nil {
		return cmd.Run(args[1:], stdout, stderr)
	}
	if strings.HasPrefix(args[0], "-") {
		fmt.Fprintf(stderr, "Unknown flag: %s\n\n", args[0])
		printUsage(stderr)
		return ExitUsage
	}
	return findCommand("run").Run(args, stdout, stderr)
}

func findCommand(name string) *Command {
	for _, cmd := range commands {
		if cmd.Name == name {
			return cmd
		}
	}
	return nil
}

func isHelpArg(arg string) bool {
	switch arg {
	case "-h", "--help", "help":
		return true
	default:
		return false
	}
}

func wantsHelp(args []string) bool {
	for _, arg := range args {
		switch arg {
		case "-h", "--help":
			return true
		}
	}
	return false
}

// parseInterspersed parses flags that may appear before, between or after
// positional arguments.
func parseInterspersed(fs *flag.FlagSet, args []string) ([]string, error) {
	var positional []string
	for {
		if err := fs.Parse(args); err != nil {
			return nil, err
		}
		rest := fs.Args()
		if len(rest) == 0 {
			return positional, nil
		}
		if len(args) > 0 && len(rest) < len(args) && args[len(args)-len(rest)-1] == "--" {
			return append(positional, rest...), nil
		}
		positional = append(positional, rest[0])
		args = rest[1:]
	}
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintln(w, "  edleval <language> <config> [options]")
	fmt.Fprintln(w, "  edleval <command> [options]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	for _, cmd := range commands {
		fmt.Fprintf(w, "  %-9s %s\n", cmd.Name, cmd.Summary)
	}
	fmt.Fprintln(w, "\nUse \"edleval <command> --help\" for more information.")
}

func printCommandUsage(cmd *Command, w io.Writer) {
	fmt.Fprintln(w, "Usage:")
	for _, line := range cmd.Usage {
		fmt.Fprintf(w, "  %s\n", line)
	}
	if cmd.Summary != "" {
		fmt.Fprintf(w, "\n%s\n", cmd.Summary)
	}
}

func command(name, summary string, usage []string, runner func(cmd *Command) func(args []string, stdout, stderr io.Writer) int) *Command {
	cmd := &Command{
		Name:    name,
		Summary: summary,
		Usage:   usage,
	}
	cmd.Run = runner(cmd)
	return cmd
}

var commands = []*Command{
	command("run", "Annotate a corpus, write tac.<language>.results and score it", []string{
		"edleval [run] <zh|es> <config> [--output-dir dir] [--workers n] [--verbose] [--log file] [--no-color] [--ui auto|live|plain] [--db path]",
	}, runRun),
	command("score", "Score an existing results file against TAC gold", []string{
		"edleval score --gold <gold.tab> --results <tac.<language>.results> [--lang zh|es] [--kinds NAM,NOM]",
	}, runScore),
	command("validate", "Validate a config file", []string{
		"edleval validate <config>",
	}, runValidate),
	command("init", "Write a starter config", []string{
		"edleval init [path]",
	}, runInit),
	command("report", "Write an HTML index of recorded runs", []string{
		"edleval report --dir <output-dir> [--output index.html]",
	}, runReport),
	command("compare", "Compare the scores of two runs", []string{
		"edleval compare --dir <output-dir> --base <language|run-id> --head <language|run-id>",
	}, runCompare),
	command("serve", "Serve recorded runs over HTTP", []string{
		"edleval serve --dir <output-dir> [--addr 127.0.0.1:8080] [--db results.duckdb]",
	}, runServe),
}
