package runner

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// WriteRunOutputs writes results.json and report.html into the run directory.
func WriteRunOutputs(results Results, paths OutputPaths) error {
	if err := os.MkdirAll(paths.RunDir(), 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	if err := writeJSON(paths.ResultsPath(), results); err != nil {
		return err
	}
	return writeReport(paths.ReportPath(), results)
}

// writeJSON writes a Results payload as pretty JSON.
func writeJSON(path string, results Results) error {
	payload, err := json.MarshalIndent(results, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal json: %w", err)
	}
	if err := os.WriteFile(path, payload, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", filepath.Base(path), err)
	}
	return nil
}

// writeReport renders the single-run HTML report straight into path.
func writeReport(path string, results Results) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	if err := RunReport(results).Render(context.Background(), file); err != nil {
		file.Close()
		return fmt.Errorf("render report: %w", err)
	}
	return file.Close()
}
