package runner

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"edleval/internal/mention"
)

// annotateJobDeps bundles what every per-document job needs.
type annotateJobDeps struct {
	stages []stage
	events emitter
	log    logger
	total  int
}

// runDocument drives one document through every stage in order.
func runDocument(ctx context.Context, deps annotateJobDeps, index int, doc mention.Document) (mention.Document, error) {
	deps.log.printf(styleDocument, "Document %d/%d %s", index+1, deps.total, doc.ID)
	for _, s := range deps.stages {
		if err := ctx.Err(); err != nil {
			return doc, err
		}
		deps.events.document(DocumentEvent{Index: index, DocID: doc.ID, Type: DocumentStage, Stage: s.name, Mentions: len(doc.Mentions)})
		next, err := s.annotator.Annotate(ctx, doc)
		if err == nil && next.ID != doc.ID {
			err = fmt.Errorf("annotator changed document id to %q", next.ID)
		}
		if err != nil {
			deps.events.document(DocumentEvent{Index: index, DocID: doc.ID, Type: DocumentFailed, Stage: s.name, Error: err.Error()})
			deps.log.printf(styleError, "Document %s stage=%s error=%v", doc.ID, s.name, err)
			return doc, fmt.Errorf("document %s: %s: %w", doc.ID, s.name, err)
		}
		doc = next
	}
	deps.events.document(DocumentEvent{Index: index, DocID: doc.ID, Type: DocumentDone, Mentions: len(doc.Mentions)})
	deps.log.printf(styleMetrics, "Document %s mentions=%d", doc.ID, len(doc.Mentions))
	return doc, nil
}

// runDocumentsSequential annotates documents one at a time.
func runDocumentsSequential(ctx context.Context, deps annotateJobDeps, docs []mention.Document) ([]mention.Document, error) {
	out := make([]mention.Document, 0, len(docs))
	for index, doc := range docs {
		annotated, err := runDocument(ctx, deps, index, doc)
		if err != nil {
			return nil, err
		}
		out = append(out, annotated)
	}
	return out, nil
}

// runDocumentsConcurrent annotates documents on at most workers goroutines
// and preserves corpus order. The first failure cancels the remaining jobs.
func runDocumentsConcurrent(ctx context.Context, deps annotateJobDeps, docs []mention.Document, workers int) ([]mention.Document, error) {
	out := make([]mention.Document, len(docs))
	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(workers)
	for index, doc := range docs {
		group.Go(func() error {
			annotated, err := runDocument(groupCtx, deps, index, doc)
			if err != nil {
				return err
			}
			out[index] = annotated
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

// annotateDocuments is the per-document phase; it returns only once every
// document has finished, which is the barrier for corpus-wide stages.
func annotateDocuments(ctx context.Context, deps annotateJobDeps, docs []mention.Document, workers int) ([]mention.Document, error) {
	for index, doc := range docs {
		deps.events.document(DocumentEvent{Index: index, DocID: doc.ID, Type: DocumentQueued})
	}
	if workers <= 1 {
		return runDocumentsSequential(ctx, deps, docs)
	}
	return runDocumentsConcurrent(ctx, deps, docs, workers)
}
