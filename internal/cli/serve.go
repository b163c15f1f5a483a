package cli

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"

	"edleval/internal/reportserver"
)

// serveReport is a test seam for running the report server.
var serveReport = reportserver.Serve

// runServe builds the handler for the serve command.
func runServe(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}

		fs := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		fs.SetOutput(stderr)
		addr := fs.String("addr", "127.0.0.1:8080", "Address to listen on")
		dir := fs.String("dir", "", "Output directory containing runs")
		dbPath := fs.String("db", "", "DuckDB file to expose at /data/db.duckdb")
		if err := fs.Parse(args); err != nil {
			return ExitUsage
		}
		if fs.NArg() > 0 {
			fmt.Fprintln(stderr, "Too many arguments")
			return ExitUsage
		}
		if *dir == "" {
			fmt.Fprintln(stderr, "Missing --dir")
			return ExitUsage
		}
		if *addr == "" {
			fmt.Fprintln(stderr, "Missing --addr")
			return ExitUsage
		}
		if info, err := os.Stat(*dir); err != nil || !info.IsDir() {
			fmt.Fprintf(stderr, "Output directory not found: %s\n", *dir)
			return ExitError
		}
		if *dbPath != "" {
			if _, err := os.Stat(*dbPath); err != nil {
				fmt.Fprintf(stderr, "Database not found: %v\n", err)
				return ExitError
			}
		}

		cfg := reportserver.Config{
			Addr:   *addr,
			Dir:    *dir,
			DBPath: *dbPath,
		}
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		fmt.Fprintf(stdout, "Serving runs from %s at http://%s\n", cfg.Dir, cfg.Addr)
		if err := serveReport(ctx, cfg); err != nil {
			fmt.Fprintf(stderr, "Server error: %v\n", err)
			return ExitError
		}
		return ExitOK
	}
}
