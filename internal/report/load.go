package report

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"edleval/internal/runner"
)

// ErrRunNotFound is returned when a run reference matches nothing on disk.
var ErrRunNotFound = errors.New("run not found")

// LoadResults reads a results.json file.
func LoadResults(path string) (runner.Results, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return runner.Results{}, err
	}
	var results runner.Results
	if err := json.Unmarshal(data, &results); err != nil {
		return runner.Results{}, fmt.Errorf("decode %s: %w", path, err)
	}
	return results, nil
}

// RunRef locates one run directory below the output root.
type RunRef struct {
	Language string
	RunID    string
	Dir      string
}

// ListRuns finds every <language>/<run>/results.json under outputDir, sorted
// by language and then run id. Run ids sort chronologically.
func ListRuns(outputDir string) ([]RunRef, error) {
	languages, err := os.ReadDir(outputDir)
	if err != nil {
		return nil, err
	}
	refs := make([]RunRef, 0)
	for _, language := range languages {
		if !language.IsDir() {
			continue
		}
		langDir := filepath.Join(outputDir, language.Name())
		runs, err := os.ReadDir(langDir)
		if err != nil {
			return nil, err
		}
		for _, run := range runs {
			if !run.IsDir() {
				continue
			}
			runDir := filepath.Join(langDir, run.Name())
			if _, err := os.Stat(filepath.Join(runDir, "results.json")); err != nil {
				continue
			}
			refs = append(refs, RunRef{Language: language.Name(), RunID: run.Name(), Dir: runDir})
		}
	}
	sort.Slice(refs, func(i, j int) bool {
		if refs[i].Language != refs[j].Language {
			return refs[i].Language < refs[j].Language
		}
		return refs[i].RunID < refs[j].RunID
	})
	return refs, nil
}

// LoadRuns loads the results of every run under outputDir.
func LoadRuns(outputDir string) ([]runner.Results, error) {
	refs, err := ListRuns(outputDir)
	if err != nil {
		return nil, err
	}
	runs := make([]runner.Results, 0, len(refs))
	for _, ref := range refs {
		results, err := LoadResults(filepath.Join(ref.Dir, "results.json"))
		if err != nil {
			return nil, err
		}
		runs = append(runs, results)
	}
	return runs, nil
}

// ResolveRun resolves ref as a language code (its latest run) or a run id.
func ResolveRun(outputDir, ref string) (runner.Results, string, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return runner.Results{}, "", fmt.Errorf("run ref is required")
	}
	refs, err := ListRuns(outputDir)
	if err != nil {
		return runner.Results{}, "", err
	}
	var match *RunRef
	for i := range refs {
		candidate := refs[i]
		if candidate.Language == ref || candidate.RunID == ref {
			match = &refs[i]
		}
	}
	if match == nil {
		return runner.Results{}, "", fmt.Errorf("%w: %s", ErrRunNotFound, ref)
	}
	results, err := LoadResults(filepath.Join(match.Dir, "results.json"))
	return results, match.Dir, err
}
