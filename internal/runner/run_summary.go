package runner

import (
	"edleval/internal/mention"
	"edleval/internal/score"
)

// summarize aggregates run-level totals for results.json.
func summarize(docs []mention.Document, gold score.GoldSet, counts score.Counts, duplicates []score.DuplicateSpan) RunSummary {
	summary := RunSummary{
		Documents:      len(docs),
		GoldDocuments:  len(gold.DocIDs()),
		Predicted:      counts.Predicted,
		Gold:           counts.Gold,
		DuplicateSpans: len(duplicates),
	}
	clusters := make(map[string]struct{})
	for _, doc := range docs {
		for _, m := range doc.Mentions {
			if !mention.IsNIL(m.PredictedID) {
				continue
			}
			summary.NILMentions++
			clusters[m.PredictedID] = struct{}{}
		}
	}
	summary.NILClusters = len(clusters)
	return summary
}
