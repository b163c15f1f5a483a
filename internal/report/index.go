package report

import (
	"context"
	"fmt"
	"io"
	"os"

	"edleval/internal/runner"
)

// WriteIndex renders the run index page to w.
func WriteIndex(ctx context.Context, w io.Writer, runs []runner.Results) error {
	if err := ReportPage(runs).Render(ctx, w); err != nil {
		return fmt.Errorf("render index: %w", err)
	}
	return nil
}

// WriteIndexFile renders the run index page into path, replacing any
// previous file.
func WriteIndexFile(ctx context.Context, path string, runs []runner.Results) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create index: %w", err)
	}
	if err := WriteIndex(ctx, file, runs); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}
