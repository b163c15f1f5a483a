package runner

import (
	"fmt"

	"edleval/internal/annotate"
	"edleval/internal/config"
	"edleval/internal/corpus"
)

// collaborators are the loader and annotators used by one run.
type collaborators struct {
	loader corpus.Loader
	tagger annotate.Annotator
	linker annotate.Annotator
}

// resolveCollaborators uses the injected dependencies or builds the
// file-backed defaults from the language configuration.
func resolveCollaborators(cfg config.Config, source config.LanguageConfig, deps RunDependencies) (collaborators, error) {
	out := collaborators{loader: deps.Loader, tagger: deps.Tagger, linker: deps.Linker}
	if out.loader == nil {
		out.loader = corpus.NewTACReader(cfg)
	}
	if out.tagger == nil {
		tagger, err := annotate.LoadReplayTagger(source.NERFile)
		if err != nil {
			return collaborators{}, fmt.Errorf("load ner output: %w", err)
		}
		out.tagger = tagger
	}
	if out.linker == nil {
		linker, err := annotate.LoadDictionaryLinker(source.KBDictionary)
		if err != nil {
			return collaborators{}, fmt.Errorf("load kb dictionary: %w", err)
		}
		out.linker = linker
	}
	return out, nil
}
