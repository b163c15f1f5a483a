package live

import (
	"time"

	"edleval/internal/runner"
	"edleval/internal/score"
)

// recentLimit caps how many finished documents stay visible in the table.
const recentLimit = 10

// DocumentRow holds UI state for a single document.
type DocumentRow struct {
	Index      int
	DocID      string
	Status     runner.DocumentEventType
	Stage      string
	Mentions   int
	StartedAt  time.Time
	FinishedAt time.Time
	Error      string
}

// StatusCounts aggregates counts by status bucket.
type StatusCounts struct {
	Queued  int
	Running int
	Done    int
	Failed  int
}

// State captures the live UI state for a run.
type State struct {
	RunID     string
	Language  string
	Documents int
	StartedAt time.Time
	Phase     runner.Phase
	LastEvent string
	Rows      []DocumentRow
	Recent    []int
	Counts    StatusCounts
	Report    *score.Report
}
