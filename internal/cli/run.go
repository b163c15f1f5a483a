package cli

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"edleval/internal/config"
	"edleval/internal/runner"
	"edleval/internal/ui/live"
)

// runAndWrite is a test seam for executing a run.
var runAndWrite = runner.RunAndWrite

// startLiveUI is a test seam for the live UI controller.
var startLiveUI = func(stdout io.Writer, noColor bool) liveUI {
	return live.Start(stdout, live.Options{NoColor: noColor})
}

// liveUI is the subset of live.Controller the run command drives.
type liveUI interface {
	runner.RunObserver
	Close()
	Wait()
	Interrupted() <-chan struct{}
}

// runRun builds the handler for the run command.
func runRun(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}
		fs := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		fs.SetOutput(stderr)
		outputDir := fs.String("output-dir", "", "Override output directory")
		workers := fs.Int("workers", 0, "Concurrent documents (default: config workers)")
		verbose := fs.Bool("verbose", false, "Print per-document progress")
		logPath := fs.String("log", "", "Also write verbose output to this file")
		noColor := fs.Bool("no-color", false, "Disable ANSI colors")
		uiMode := fs.String("ui", "auto", "Progress display: auto|live|plain")
		dbPath := fs.String("db", "", "DuckDB file to record the run in (default: config results_db)")
		positional, err := parseInterspersed(fs, args)
		if err != nil {
			return ExitUsage
		}
		if len(positional) < 2 {
			fmt.Fprintln(stderr, "Missing <language> <config>")
			printCommandUsage(cmd, stderr)
			return ExitUsage
		}
		if len(positional) > 2 {
			fmt.Fprintf(stderr, "unexpected arguments: %s\n", strings.Join(positional[2:], " "))
			return ExitUsage
		}
		if *workers < 0 {
			fmt.Fprintln(stderr, "--workers must be >= 0")
			return ExitUsage
		}

		lang, err := config.ParseLanguage(positional[0])
		if err != nil {
			fmt.Fprintf(stderr, "Invalid language: %v\n", err)
			return ExitUsage
		}
		cfg, err := config.Load(positional[1])
		if err != nil {
			fmt.Fprintf(stderr, "Failed to load config:\n%v\n", err)
			return ExitError
		}
		if _, ok := cfg.Source(lang); !ok {
			fmt.Fprintf(stderr, "Language %s is not configured in %s\n", lang, positional[1])
			return ExitUsage
		}

		decision, err := resolveUIMode(*uiMode, *verbose, stdout)
		if err != nil {
			fmt.Fprintf(stderr, "Invalid --ui: %v\n", err)
			return ExitUsage
		}
		if decision.warning != "" {
			fmt.Fprintln(stderr, decision.warning)
		}

		params := runner.RunParams{
			Language:      lang,
			OutputDir:     *outputDir,
			Workers:       *workers,
			Verbose:       *verbose,
			VerboseWriter: stdout,
			NoColor:       *noColor,
		}
		if *logPath != "" {
			logFile, err := os.Create(*logPath)
			if err != nil {
				fmt.Fprintf(stderr, "Failed to open log file: %v\n", err)
				return ExitError
			}
			defer logFile.Close()
			params.VerboseLogWriter = logFile
		}

		var ui liveUI
		if decision.useLive {
			ui = startLiveUI(stdout, *noColor)
			params.Observer = ui
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		if ui != nil {
			go cancelOnInterrupt(ctx, ui.Interrupted(), stop)
		}

		results, paths, err := runAndWrite(ctx, cfg, params)
		if ui != nil {
			ui.Close()
			ui.Wait()
		}
		if err != nil {
			fmt.Fprintf(stderr, "Run failed: %v\n", err)
			if errors.Is(err, config.ErrUnknownLanguage) {
				return ExitUsage
			}
			return ExitError
		}

		db := *dbPath
		if db == "" {
			db = cfg.ResultsDB
		}
		if db != "" {
			if err := ingestRun(ctx, db, results); err != nil {
				fmt.Fprintf(stderr, "Failed to record run in %s: %v\n", db, err)
				return ExitError
			}
		}

		printScores(stdout, results)
		fmt.Fprintf(stdout, "Run %s completed\n", results.RunID)
		fmt.Fprintf(stdout, "Predictions: %s\n", paths.PredictionsPath())
		fmt.Fprintf(stdout, "Results: %s\n", paths.ResultsPath())
		fmt.Fprintf(stdout, "Report: %s\n", paths.ReportPath())
		return ExitOK
	}
}

// cancelOnInterrupt stops the run when the live UI reports ctrl+c.
func cancelOnInterrupt(ctx context.Context, interrupted <-chan struct{}, stop context.CancelFunc) {
	select {
	case <-interrupted:
		stop()
	case <-ctx.Done():
	}
}
