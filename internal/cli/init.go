package cli

import (
	"flag"
	"fmt"
	"io"
	"strings"

	"edleval/internal/config"
)

const defaultConfigPath = "edleval.yml"

// runInit builds the handler for the init command.
func runInit(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}

		flags := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		flags.SetOutput(stderr)
		if err := flags.Parse(args); err != nil {
			fmt.Fprintf(stderr, "invalid arguments: %v\n", err)
			printCommandUsage(cmd, stderr)
			return ExitUsage
		}
		if flags.NArg() > 1 {
			fmt.Fprintf(stderr, "unexpected arguments: %s\n", strings.Join(flags.Args()[1:], " "))
			printCommandUsage(cmd, stderr)
			return ExitUsage
		}
		path := flags.Arg(0)
		if path == "" {
			path = defaultConfigPath
		}

		if err := config.Scaffold(path); err != nil {
			fmt.Fprintf(stderr, "Init failed: %v\n", err)
			return ExitError
		}
		fmt.Fprintf(stdout, "Wrote %s\n", path)
		fmt.Fprintln(stdout, "Point the languages entries at your corpus, gold and NER files, then run:")
		fmt.Fprintf(stdout, "  edleval validate %s\n", path)
		return ExitOK
	}
}
