package runner

import (
	"encoding/json"
	"math"
	"os"
	"strings"
	"testing"

	"edleval/internal/score"
)

// TestWriteRunOutputsCreatesFiles verifies JSON and HTML outputs.
func TestWriteRunOutputsCreatesFiles(t *testing.T) {
	paths, err := NewOutputPaths(t.TempDir(), "zh", "run-1")
	if err != nil {
		t.Fatalf("paths: %v", err)
	}
	counts := score.Counts{Span: 3, Type: 2, Link: 1, Predicted: 4, Gold: 5}
	results := Results{
		RunID:      "run-1",
		Language:   "zh",
		Counts:     counts,
		Report:     counts.Report(),
		Duplicates: []score.DuplicateSpan{{DocID: "CMN_NW_1", Start: 1, End: 3, Count: 2}},
		Documents:  []DocumentResult{{DocID: "CMN_NW_1", Counts: counts}},
	}
	if err := WriteRunOutputs(results, paths); err != nil {
		t.Fatalf("write outputs: %v", err)
	}

	data, err := os.ReadFile(paths.ResultsPath())
	if err != nil {
		t.Fatalf("read results.json: %v", err)
	}
	var decoded Results
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("decode results.json: %v", err)
	}
	if decoded.Counts != counts || decoded.Report.Span.Precision != 0.75 {
		t.Fatalf("unexpected decoded results: %+v", decoded)
	}

	html, err := os.ReadFile(paths.ReportPath())
	if err != nil {
		t.Fatalf("read report: %v", err)
	}
	for _, token := range []string{"run-1", "CMN_NW_1", "Mention Span + Entity Type + Link", "0.7500", "<table"} {
		if !strings.Contains(string(html), token) {
			t.Fatalf("expected report to include %s", token)
		}
	}
}

// TestWriteRunOutputsUndefinedMetrics verifies NaN metrics survive as null.
func TestWriteRunOutputsUndefinedMetrics(t *testing.T) {
	paths, err := NewOutputPaths(t.TempDir(), "es", "run-empty")
	if err != nil {
		t.Fatalf("paths: %v", err)
	}
	results := Results{RunID: "run-empty", Language: "es", Report: score.Counts{}.Report()}
	if err := WriteRunOutputs(results, paths); err != nil {
		t.Fatalf("write outputs: %v", err)
	}
	data, err := os.ReadFile(paths.ResultsPath())
	if err != nil {
		t.Fatalf("read results.json: %v", err)
	}
	if !strings.Contains(string(data), `"precision": null`) {
		t.Fatalf("expected null precision in:\n%s", data)
	}
	var decoded Results
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !math.IsNaN(decoded.Report.Span.Precision) {
		t.Fatalf("expected NaN after decode, got %v", decoded.Report.Span.Precision)
	}
	html, err := os.ReadFile(paths.ReportPath())
	if err != nil {
		t.Fatalf("read report: %v", err)
	}
	if !strings.Contains(string(html), "NaN") {
		t.Fatalf("expected NaN in report")
	}
}
