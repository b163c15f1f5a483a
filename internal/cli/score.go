package cli

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"edleval/internal/config"
	"edleval/internal/corpus"
	"edleval/internal/mention"
	"edleval/internal/results"
	"edleval/internal/score"
)

// runScore builds the handler for the score command.
func runScore(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}
		fs := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		fs.SetOutput(stderr)
		goldPath := fs.String("gold", "", "TAC gold annotations")
		resultsPath := fs.String("results", "", "tac.<language>.results file to score")
		langValue := fs.String("lang", "", "Restrict gold to one language (zh|es)")
		kinds := fs.String("kinds", "NAM", "Comma separated gold mention kinds to keep")
		if err := fs.Parse(args); err != nil {
			return ExitUsage
		}
		if fs.NArg() > 0 {
			fmt.Fprintf(stderr, "unexpected arguments: %s\n", strings.Join(fs.Args(), " "))
			return ExitUsage
		}
		if *goldPath == "" || *resultsPath == "" {
			fmt.Fprintln(stderr, "Missing --gold or --results")
			printCommandUsage(cmd, stderr)
			return ExitUsage
		}

		filter := corpus.GoldFilter{Kinds: splitList(*kinds)}
		if *langValue != "" {
			lang, err := config.ParseLanguage(*langValue)
			if err != nil {
				fmt.Fprintf(stderr, "Invalid language: %v\n", err)
				return ExitUsage
			}
			filter.DocIDMarker = config.DefaultDocIDMarker(lang)
		}

		gold, err := readGold(*goldPath, filter)
		if err != nil {
			fmt.Fprintf(stderr, "Failed to read gold: %v\n", err)
			return ExitError
		}
		predicted, err := results.Read(*resultsPath)
		if err != nil {
			fmt.Fprintf(stderr, "Failed to read results: %v\n", err)
			return ExitError
		}

		goldSet := score.NewGoldSet(gold)
		for _, dup := range goldSet.DuplicateSpans() {
			fmt.Fprintf(stderr, "Warning: duplicate gold span %s [%d,%d) x%d, first gold mention wins\n", dup.DocID, dup.Start, dup.End, dup.Count)
		}
		acc := score.NewAccumulator()
		for _, doc := range scoringDocuments(predicted, goldSet) {
			acc.Evaluate(doc, goldSet)
		}
		printReport(stdout, acc.Report())
		return ExitOK
	}
}

func readGold(path string, filter corpus.GoldFilter) ([]mention.Mention, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	return corpus.ParseGold(file, filter)
}

// scoringDocuments returns the documents in the results file followed by gold
// documents the file has no line for, so their gold still counts toward recall.
func scoringDocuments(predicted []mention.Mention, gold score.GoldSet) []mention.Document {
	docs := results.GroupByDocument(predicted)
	seen := make(map[string]struct{}, len(docs))
	for _, doc := range docs {
		seen[doc.ID] = struct{}{}
	}
	for _, id := range gold.DocIDs() {
		if _, ok := seen[id]; !ok {
			docs = append(docs, mention.Document{ID: id})
		}
	}
	return docs
}

func splitList(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
