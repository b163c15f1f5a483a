// Package annotate defines the annotator capability used for every pipeline
// stage and ships file-backed NER and linking annotators.
package annotate

import (
	"context"

	"edleval/internal/mention"
)

// Annotator transforms a document. Implementations return a new document
// value and must keep the relative order of the mentions they keep.
type Annotator interface {
	Annotate(ctx context.Context, doc mention.Document) (mention.Document, error)
}

// Func adapts a plain function to Annotator.
type Func func(ctx context.Context, doc mention.Document) (mention.Document, error)

// Annotate calls f.
func (f Func) Annotate(ctx context.Context, doc mention.Document) (mention.Document, error) {
	return f(ctx, doc)
}

// Transform adapts an infallible transformation to Annotator.
func Transform(fn func(mention.Document) mention.Document) Annotator {
	return Func(func(_ context.Context, doc mention.Document) (mention.Document, error) {
		return fn(doc), nil
	})
}
