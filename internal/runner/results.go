package runner

import (
	"time"

	"edleval/internal/score"
)

// Results is the results.json payload of one run.
type Results struct {
	RunID       string                `json:"run_id"`
	Language    string                `json:"language"`
	StartedAt   time.Time             `json:"started_at"`
	FinishedAt  time.Time             `json:"finished_at"`
	ResultsFile string                `json:"results_file"`
	Counts      score.Counts          `json:"counts"`
	Report      score.Report          `json:"report"`
	Duplicates  []score.DuplicateSpan `json:"duplicate_gold_spans,omitempty"`
	Documents   []DocumentResult      `json:"documents"`
	Summary     RunSummary            `json:"summary"`
}

// DocumentResult holds the per-document counts and mention verdicts.
type DocumentResult struct {
	DocID    string          `json:"doc_id"`
	Counts   score.Counts    `json:"counts"`
	Verdicts []score.Verdict `json:"verdicts"`
}

type RunSummary struct {
	Documents      int `json:"documents"`
	GoldDocuments  int `json:"gold_documents"`
	Predicted      int `json:"predicted"`
	Gold           int `json:"gold"`
	NILMentions    int `json:"nil_mentions"`
	NILClusters    int `json:"nil_clusters"`
	DuplicateSpans int `json:"duplicate_spans"`
}
