package runner

import (
	"fmt"
	"path/filepath"
	"strings"

	"edleval/internal/config"
	"edleval/internal/results"
)

// resolveOutputDir prefers the explicit override over the configured root.
func resolveOutputDir(cfg config.Config, override string) string {
	if strings.TrimSpace(override) != "" {
		return override
	}
	return cfg.OutputDir
}

// resolveWorkers prefers the explicit override, then the config, then 1.
func resolveWorkers(cfg config.Config, override int) int {
	if override > 0 {
		return override
	}
	if cfg.Workers > 0 {
		return cfg.Workers
	}
	return 1
}

// resolveNILClusterMinSize falls back to the default minimum cluster size.
func resolveNILClusterMinSize(cfg config.Config) int {
	if cfg.NILClusterMinSize > 0 {
		return cfg.NILClusterMinSize
	}
	return config.DefaultNILClusterMinSize
}

// ensureRunID uses the provided generator or falls back to NewRunID.
func ensureRunID(generator func() (string, error)) (string, error) {
	if generator != nil {
		return generator()
	}
	return NewRunID()
}

// OutputPaths describes filesystem locations for run outputs.
type OutputPaths struct {
	Root     string
	Language string
	RunID    string
}

// NewOutputPaths rejects empty components.
func NewOutputPaths(root, language, runID string) (OutputPaths, error) {
	if strings.TrimSpace(root) == "" {
		return OutputPaths{}, fmt.Errorf("output root is empty")
	}
	if strings.TrimSpace(language) == "" {
		return OutputPaths{}, fmt.Errorf("language is empty")
	}
	if strings.TrimSpace(runID) == "" {
		return OutputPaths{}, fmt.Errorf("run ID is empty")
	}
	return OutputPaths{
		Root:     root,
		Language: language,
		RunID:    runID,
	}, nil
}

// RunDir returns the directory for a specific run.
func (o OutputPaths) RunDir() string {
	return filepath.Join(o.Root, o.Language, o.RunID)
}

// PredictionsPath returns the path to the tac.<language>.results file.
func (o OutputPaths) PredictionsPath() string {
	return filepath.Join(o.RunDir(), results.FileName(o.Language))
}

// ResultsPath returns the path to results.json.
func (o OutputPaths) ResultsPath() string {
	return filepath.Join(o.RunDir(), "results.json")
}

// ReportPath returns the path to the HTML report.
func (o OutputPaths) ReportPath() string {
	return filepath.Join(o.RunDir(), "report.html")
}
