package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"edleval/internal/runner"
	"edleval/internal/score"
)

func writeRunOutputs(t *testing.T, root, language, runID string, f1 float64) {
	t.Helper()
	paths, err := runner.NewOutputPaths(root, language, runID)
	if err != nil {
		t.Fatalf("output paths: %v", err)
	}
	results := runner.Results{
		RunID:    runID,
		Language: language,
		Report: score.Report{
			Span:         score.Metric{Precision: f1, Recall: f1, F1: f1},
			SpanType:     score.Metric{Precision: f1, Recall: f1, F1: f1},
			SpanTypeLink: score.Metric{Precision: f1, Recall: f1, F1: f1},
		},
	}
	if err := runner.WriteRunOutputs(results, paths); err != nil {
		t.Fatalf("write outputs: %v", err)
	}
}

func TestReportCommandWritesIndex(t *testing.T) {
	root := t.TempDir()
	writeRunOutputs(t, root, "es", "run-1", 0.5)
	writeRunOutputs(t, root, "zh", "run-2", 0.25)

	var stdout, stderr bytes.Buffer
	if code := Run([]string{"report", "--dir", root}, &stdout, &stderr); code != ExitOK {
		t.Fatalf("unexpected exit %d: %s", code, stderr.String())
	}
	data, err := os.ReadFile(filepath.Join(root, "index.html"))
	if err != nil {
		t.Fatalf("read index: %v", err)
	}
	for _, token := range []string{"run-1", "run-2", "50.00", "25.00"} {
		if !strings.Contains(string(data), token) {
			t.Fatalf("expected %s in index", token)
		}
	}
}

func TestReportCommandWithoutRuns(t *testing.T) {
	var stdout, stderr bytes.Buffer
	if code := Run([]string{"report", "--dir", t.TempDir()}, &stdout, &stderr); code != ExitError {
		t.Fatalf("expected error exit, got %d", code)
	}
	if code := Run([]string{"report"}, &stdout, &stderr); code != ExitUsage {
		t.Fatalf("expected usage exit, got %d", code)
	}
}

func TestCompareCommand(t *testing.T) {
	root := t.TempDir()
	writeRunOutputs(t, root, "es", "run-1", 0.5)
	writeRunOutputs(t, root, "es", "run-2", 0.75)

	var stdout, stderr bytes.Buffer
	if code := Run([]string{"compare", "--dir", root, "--base", "run-1", "--head", "es"}, &stdout, &stderr); code != ExitOK {
		t.Fatalf("unexpected exit %d: %s", code, stderr.String())
	}
	output := stdout.String()
	for _, line := range []string{
		"Base: run-1 (es)",
		"Head: run-2 (es)",
		"Mention Span: F1 0.5000 -> 0.7500 (+0.2500)",
	} {
		if !strings.Contains(output, line) {
			t.Fatalf("expected %q in output:\n%s", line, output)
		}
	}
}

func TestCompareCommandUnknownRun(t *testing.T) {
	root := t.TempDir()
	writeRunOutputs(t, root, "es", "run-1", 0.5)

	var stdout, stderr bytes.Buffer
	if code := Run([]string{"compare", "--dir", root, "--base", "run-1", "--head", "run-9"}, &stdout, &stderr); code != ExitError {
		t.Fatalf("expected error exit, got %d", code)
	}
	if !strings.Contains(stderr.String(), "run not found") {
		t.Fatalf("unexpected stderr %q", stderr.String())
	}
}
