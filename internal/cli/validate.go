package cli

import (
	"flag"
	"fmt"
	"io"
	"sort"
	"strings"

	"edleval/internal/config"
)

// runValidate builds the handler for the validate command.
func runValidate(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
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
		if flags.NArg() == 0 {
			fmt.Fprintln(stderr, "Missing <config>")
			printCommandUsage(cmd, stderr)
			return ExitUsage
		}
		if flags.NArg() > 1 {
			fmt.Fprintf(stderr, "unexpected arguments: %s\n", strings.Join(flags.Args()[1:], " "))
			printCommandUsage(cmd, stderr)
			return ExitUsage
		}

		cfg, err := config.Load(flags.Arg(0))
		if err != nil {
			fmt.Fprintf(stderr, "Validation failed:\n%s\n", err.Error())
			return ExitError
		}

		languages := make([]string, 0, len(cfg.Languages))
		for key := range cfg.Languages {
			languages = append(languages, key)
		}
		sort.Strings(languages)
		fmt.Fprintf(stdout, "Config OK (languages: %s)\n", strings.Join(languages, ", "))
		return ExitOK
	}
}
