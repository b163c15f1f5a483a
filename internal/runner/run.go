// Package runner drives a corpus through the annotation pipeline, writes the
// predictions and scores them against gold.
package runner

import (
	"context"
	"fmt"
	"os"
	"time"

	"edleval/internal/config"
	"edleval/internal/mention"
	"edleval/internal/postprocess"
	"edleval/internal/results"
	"edleval/internal/score"
)

// Run executes one evaluation: load, annotate every document, cluster NIL
// mentions across the corpus, write tac.<language>.results and score it.
func Run(ctx context.Context, cfg config.Config, params RunParams) (Results, error) {
	lang := params.Language
	source, ok := cfg.Source(lang)
	if !ok {
		return Results{}, fmt.Errorf("%w: %q is not configured", config.ErrUnknownLanguage, lang)
	}
	now := params.Deps.Now
	if now == nil {
		now = time.Now
	}
	runID, err := ensureRunID(params.Deps.RunID)
	if err != nil {
		return Results{}, err
	}
	paths, err := NewOutputPaths(resolveOutputDir(cfg, params.OutputDir), string(lang), runID)
	if err != nil {
		return Results{}, err
	}
	deps, err := resolveCollaborators(cfg, source, params.Deps)
	if err != nil {
		return Results{}, err
	}

	workers := resolveWorkers(cfg, params.Workers)
	verboseWriter, verboseLogWriter := wrapVerboseWriters(workers, params.VerboseWriter, params.VerboseLogWriter)
	log := logger{enabled: params.Verbose, writer: verboseWriter, log: verboseLogWriter, noColor: params.NoColor}
	events := emitter{observer: params.Observer, now: now}
	startedAt := now()

	docs, err := deps.loader.LoadDocuments(ctx, lang, source.DocLimit)
	if err != nil {
		return Results{}, fmt.Errorf("load documents: %w", err)
	}
	goldMentions, err := deps.loader.LoadGoldMentions(ctx, lang)
	if err != nil {
		return Results{}, fmt.Errorf("load gold: %w", err)
	}
	gold := score.NewGoldSet(goldMentions)
	log.printf(styleDefault, "Run %s language=%s documents=%d gold=%d workers=%d", runID, lang, len(docs), gold.Len(), workers)

	duplicates := gold.DuplicateSpans()
	for _, dup := range duplicates {
		log.printf(styleWarning, "Duplicate gold span doc=%s span=[%d,%d) count=%d, first gold mention wins", dup.DocID, dup.Start, dup.End, dup.Count)
	}

	if params.Observer != nil {
		params.Observer.OnRunStart(runID, string(lang), len(docs))
	}

	events.phase(PhaseAnnotate)
	annotated, err := annotateDocuments(ctx, annotateJobDeps{
		stages: planStages(deps.tagger, deps.linker),
		events: events,
		log:    log,
		total:  len(docs),
	}, docs, workers)
	if err != nil {
		return Results{}, err
	}

	events.phase(PhaseClusterNIL)
	minSize := resolveNILClusterMinSize(cfg)
	clustered := postprocess.ClusterNIL(annotated, minSize)
	log.printf(styleDefault, "NIL clustering min_size=%d", minSize)

	events.phase(PhaseWrite)
	if err := os.MkdirAll(paths.RunDir(), 0o755); err != nil {
		return Results{}, fmt.Errorf("create output dir: %w", err)
	}
	if err := results.Write(paths.PredictionsPath(), clustered); err != nil {
		return Results{}, err
	}
	log.printf(styleDefault, "Wrote %s", paths.PredictionsPath())

	events.phase(PhaseScore)
	acc, documents := scoreDocuments(clustered, gold)
	counts := acc.Counts()
	report := acc.Report()
	log.printf(styleMetrics, "Scores span=%s", report.Span)
	log.printf(styleMetrics, "Scores span+type=%s", report.SpanType)
	log.printf(styleMetrics, "Scores span+type+link=%s", report.SpanTypeLink)

	out := Results{
		RunID:       runID,
		Language:    string(lang),
		StartedAt:   startedAt,
		FinishedAt:  now(),
		ResultsFile: paths.PredictionsPath(),
		Counts:      counts,
		Report:      report,
		Duplicates:  duplicates,
		Documents:   documents,
		Summary:     summarize(clustered, gold, counts, duplicates),
	}
	if params.Observer != nil {
		params.Observer.OnRunEnd(out)
	}
	return out, nil
}

// scoreDocuments evaluates every document in corpus order on one goroutine.
func scoreDocuments(docs []mention.Document, gold score.GoldSet) (*score.Accumulator, []DocumentResult) {
	acc := score.NewAccumulator()
	out := make([]DocumentResult, 0, len(docs))
	for _, doc := range docs {
		before := acc.Counts()
		verdicts := acc.Evaluate(doc, gold)
		out = append(out, DocumentResult{
			DocID:    doc.ID,
			Counts:   acc.Counts().Sub(before),
			Verdicts: verdicts,
		})
	}
	return acc, out
}

// RunAndWrite runs the evaluation and writes results.json next to the
// predictions file.
func RunAndWrite(ctx context.Context, cfg config.Config, params RunParams) (Results, OutputPaths, error) {
	out, err := Run(ctx, cfg, params)
	if err != nil {
		return Results{}, OutputPaths{}, err
	}
	paths, err := NewOutputPaths(resolveOutputDir(cfg, params.OutputDir), out.Language, out.RunID)
	if err != nil {
		return out, OutputPaths{}, err
	}
	if err := WriteRunOutputs(out, paths); err != nil {
		return out, OutputPaths{}, err
	}
	return out, paths, nil
}
