// Package results reads and writes the fixed-column mention file consumed by
// external scorers:
//
//	docId<TAB>start<TAB>end-1<TAB>predictedId<TAB>0<TAB>type
//
// The end column is inclusive on disk and exclusive in memory.
package results

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"edleval/internal/mention"
)

const (
	columnCount = 6

	// placeholder fills the fifth column; downstream tools expect a literal 0.
	placeholder = "0"
)

// FileName returns the conventional results file name for a language.
func FileName(language string) string {
	return "tac." + language + ".results"
}

// Encode writes one line per predicted mention across all documents.
func Encode(w io.Writer, docs []mention.Document) error {
	bw := bufio.NewWriter(w)
	for _, doc := range docs {
		for _, m := range doc.Mentions {
			if _, err := fmt.Fprintf(bw, "%s\t%d\t%d\t%s\t%s\t%s\n",
				doc.ID, m.Start, m.End-1, m.PredictedID, placeholder, m.Type); err != nil {
				return err
			}
		}
	}
	return bw.Flush()
}

// Write replaces path with the encoded documents. Output is staged in a
// temporary file in the same directory, so a failed write never leaves a
// truncated results file behind.
func Write(path string, docs []mention.Document) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("create results file: %w", err)
	}
	tmpPath := tmp.Name()
	cleanup := func() { _ = os.Remove(tmpPath) }

	if err := Encode(tmp, docs); err != nil {
		_ = tmp.Close()
		cleanup()
		return fmt.Errorf("write %s: %w", filepath.Base(path), err)
	}
	if err := tmp.Close(); err != nil {
		cleanup()
		return fmt.Errorf("close %s: %w", filepath.Base(path), err)
	}
	if err := os.Chmod(tmpPath, 0o644); err != nil {
		cleanup()
		return fmt.Errorf("chmod %s: %w", filepath.Base(path), err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		cleanup()
		return fmt.Errorf("replace %s: %w", filepath.Base(path), err)
	}
	return nil
}

// Parse reads mentions back, restoring the exclusive end offset.
func Parse(r io.Reader) ([]mention.Mention, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)
	var out []mention.Mention
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimRight(scanner.Text(), "\r")
		if line == "" {
			continue
		}
		m, err := parseLine(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
		out = append(out, m)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// Read parses a results file from disk.
func Read(path string) ([]mention.Mention, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open results: %w", err)
	}
	defer file.Close()
	mentions, err := Parse(file)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", filepath.Base(path), err)
	}
	return mentions, nil
}

func parseLine(line string) (mention.Mention, error) {
	fields := strings.Split(line, "\t")
	if len(fields) != columnCount {
		return mention.Mention{}, fmt.Errorf("expected %d columns, got %d", columnCount, len(fields))
	}
	start, err := strconv.Atoi(fields[1])
	if err != nil {
		return mention.Mention{}, fmt.Errorf("start offset: %w", err)
	}
	last, err := strconv.Atoi(fields[2])
	if err != nil {
		return mention.Mention{}, fmt.Errorf("end offset: %w", err)
	}
	m := mention.Mention{
		DocID:       fields[0],
		Start:       start,
		End:         last + 1,
		PredictedID: fields[3],
		Type:        fields[5],
	}
	if err := m.Validate(); err != nil {
		return mention.Mention{}, err
	}
	return m, nil
}

// GroupByDocument rebuilds documents from parsed mentions, keeping first-seen
// document order and mention order within each document.
func GroupByDocument(mentions []mention.Mention) []mention.Document {
	index := make(map[string]int)
	var docs []mention.Document
	for _, m := range mentions {
		i, ok := index[m.DocID]
		if !ok {
			i = len(docs)
			index[m.DocID] = i
			docs = append(docs, mention.Document{ID: m.DocID})
		}
		docs[i].Mentions = append(docs[i].Mentions, m)
	}
	return docs
}
