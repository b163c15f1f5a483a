package runner

import (
	"edleval/internal/annotate"
	"edleval/internal/postprocess"
)

// Stage names in execution order.
const (
	StageNER             = "ner"
	StageCleanSurfaces   = "clean_surfaces"
	StageWikify          = "wikify"
	StageSourceOffsets   = "source_offsets"
	StagePostAuthors     = "post_authors"
	StageRemoveQuotes    = "remove_quotes"
	StagePersonTitles    = "person_titles"
	StageClusterSurfaces = "cluster_surfaces"
)

// stage is one named step of the per-document chain.
type stage struct {
	name      string
	annotator annotate.Annotator
}

// planStages returns the per-document chain. The order is fixed: surfaces
// are cleaned before linking, and offsets move to source space before the
// stages that read the raw markup.
func planStages(tagger, linker annotate.Annotator) []stage {
	return []stage{
		{name: StageNER, annotator: tagger},
		{name: StageCleanSurfaces, annotator: annotate.Transform(postprocess.CleanSurfaces)},
		{name: StageWikify, annotator: linker},
		{name: StageSourceOffsets, annotator: annotate.Transform(postprocess.MapToSource)},
		{name: StagePostAuthors, annotator: annotate.Transform(postprocess.AddPostAuthors)},
		{name: StageRemoveQuotes, annotator: annotate.Transform(postprocess.RemoveQuotedMentions)},
		{name: StagePersonTitles, annotator: annotate.Transform(postprocess.FixPersonTitles)},
		{name: StageClusterSurfaces, annotator: annotate.Transform(postprocess.ClusterBySurface)},
	}
}

// StageNames lists the per-document stages in execution order.
func StageNames() []string {
	stages := planStages(nil, nil)
	names := make([]string, 0, len(stages))
	for _, s := range stages {
		names = append(names, s.name)
	}
	return names
}
