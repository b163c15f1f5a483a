package duckdb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"math"

	"github.com/google/uuid"

	"edleval/internal/runner"
	"edleval/internal/score"
)

// ErrRunExists is returned when a run id has already been ingested.
var ErrRunExists = errors.New("duckdb: run already ingested")

// UpsertCorpus inserts the corpus by its fingerprint key and returns its id.
func UpsertCorpus(ctx context.Context, db *sql.DB, language string, docIDs []string) (string, string, error) {
	if ctx == nil {
		return "", "", errors.New("duckdb: context is nil")
	}
	if db == nil {
		return "", "", errors.New("duckdb: db is nil")
	}
	key, err := CorpusKey(language, docIDs)
	if err != nil {
		return "", "", err
	}
	canonical, err := sortedDocIDs(docIDs)
	if err != nil {
		return "", "", err
	}
	id := uuid.NewString()
	if _, err := db.ExecContext(
		ctx,
		`INSERT INTO corpora (corpus_id, corpus_key, language, documents, doc_ids, created_at)
		 VALUES (?, ?, ?, ?, ?, now())
		 ON CONFLICT (corpus_key) DO NOTHING`,
		id,
		key,
		language,
		len(docIDs),
		string(canonical),
	); err != nil {
		return "", "", fmt.Errorf("upsert corpus: %w", err)
	}
	outID, err := lookupID(ctx, db, "corpora", "corpus_id", "corpus_key", key)
	if err != nil {
		return "", "", fmt.Errorf("lookup corpus id: %w", err)
	}
	return outID, key, nil
}

// IngestRun stores a run with its metrics, verdicts and duplicate gold spans
// in one transaction.
func IngestRun(ctx context.Context, db *sql.DB, results runner.Results) error {
	if db == nil {
		return errors.New("duckdb: db is nil")
	}
	if results.RunID == "" {
		return errors.New("duckdb: run id is required")
	}
	var existing int
	if err := db.QueryRowContext(ctx, "SELECT COUNT(*) FROM runs WHERE run_id = ?", results.RunID).Scan(&existing); err != nil {
		return fmt.Errorf("check run: %w", err)
	}
	if existing > 0 {
		return fmt.Errorf("%w: %s", ErrRunExists, results.RunID)
	}

	docIDs := make([]string, 0, len(results.Documents))
	for _, doc := range results.Documents {
		docIDs = append(docIDs, doc.DocID)
	}
	corpusID, _, err := UpsertCorpus(ctx, db, results.Language, docIDs)
	if err != nil {
		return err
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin ingest: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(
		ctx,
		`INSERT INTO runs (run_id, corpus_id, language, started_at, finished_at, results_file, predicted, gold, nil_clusters, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, now())`,
		results.RunID,
		corpusID,
		results.Language,
		results.StartedAt,
		results.FinishedAt,
		results.ResultsFile,
		results.Counts.Predicted,
		results.Counts.Gold,
		results.Summary.NILClusters,
	); err != nil {
		return fmt.Errorf("insert run: %w", err)
	}
	if err := insertMetrics(ctx, tx, results); err != nil {
		return err
	}
	if err := insertVerdicts(ctx, tx, results); err != nil {
		return err
	}
	if err := insertDuplicates(ctx, tx, results); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit ingest: %w", err)
	}
	return nil
}

// Metric tiers as stored in the metrics table.
const (
	TierSpan         = "span"
	TierSpanType     = "span_type"
	TierSpanTypeLink = "span_type_link"
)

func insertMetrics(ctx context.Context, tx *sql.Tx, results runner.Results) error {
	rows := []struct {
		tier    string
		matched int
		metric  score.Metric
	}{
		{TierSpan, results.Counts.Span, results.Report.Span},
		{TierSpanType, results.Counts.Type, results.Report.SpanType},
		{TierSpanTypeLink, results.Counts.Link, results.Report.SpanTypeLink},
	}
	for _, row := range rows {
		if _, err := tx.ExecContext(
			ctx,
			`INSERT INTO metrics (run_id, tier, matched, precision_score, recall_score, f1_score) VALUES (?, ?, ?, ?, ?, ?)`,
			results.RunID,
			row.tier,
			row.matched,
			nullableFloat(row.metric.Precision),
			nullableFloat(row.metric.Recall),
			nullableFloat(row.metric.F1),
		); err != nil {
			return fmt.Errorf("insert metric %s: %w", row.tier, err)
		}
	}
	return nil
}

func insertVerdicts(ctx context.Context, tx *sql.Tx, results runner.Results) error {
	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO verdicts (verdict_id, run_id, doc_id, span_start, span_end, entity_type, predicted_id, gold_index, gold_id, gold_type, span_match, type_match, link_match)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare verdicts: %w", err)
	}
	defer stmt.Close()
	for _, doc := range results.Documents {
		for _, v := range doc.Verdicts {
			if _, err := stmt.ExecContext(
				ctx,
				uuid.NewString(),
				results.RunID,
				doc.DocID,
				v.Predicted.Start,
				v.Predicted.End,
				v.Predicted.Type,
				v.Predicted.PredictedID,
				v.GoldIndex,
				nullableString(v.GoldID),
				nullableString(v.GoldType),
				v.Span,
				v.Type,
				v.Link,
			); err != nil {
				return fmt.Errorf("insert verdict %s: %w", doc.DocID, err)
			}
		}
	}
	return nil
}

func insertDuplicates(ctx context.Context, tx *sql.Tx, results runner.Results) error {
	for _, dup := range results.Duplicates {
		if _, err := tx.ExecContext(
			ctx,
			`INSERT INTO duplicate_gold_spans (run_id, doc_id, span_start, span_end, occurrences) VALUES (?, ?, ?, ?, ?)`,
			results.RunID,
			dup.DocID,
			dup.Start,
			dup.End,
			dup.Count,
		); err != nil {
			return fmt.Errorf("insert duplicate span: %w", err)
		}
	}
	return nil
}

// nullableString converts an empty string into a SQL NULL.
func nullableString(value string) interface{} {
	if value == "" {
		return nil
	}
	return value
}

// nullableFloat stores undefined metric values as NULL.
func nullableFloat(value float64) interface{} {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return nil
	}
	return value
}

// lookupID fetches a single ID column value for a row keyed by keyColumn.
func lookupID(ctx context.Context, db *sql.DB, table, idColumn, keyColumn, key string) (string, error) {
	query := fmt.Sprintf("SELECT CAST(%s AS VARCHAR) FROM %s WHERE %s = ?", idColumn, table, keyColumn)
	var id string
	if err := db.QueryRowContext(ctx, query, key).Scan(&id); err != nil {
		return "", err
	}
	return id, nil
}
