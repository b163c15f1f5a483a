package duckdb

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"slices"
)

// sortedDocIDs encodes the document ids as a sorted JSON array.
func sortedDocIDs(docIDs []string) ([]byte, error) {
	sorted := slices.Clone(docIDs)
	slices.Sort(sorted)
	if sorted == nil {
		sorted = []string{}
	}
	data, err := json.Marshal(sorted)
	if err != nil {
		return nil, fmt.Errorf("encode doc ids: %w", err)
	}
	return data, nil
}

// CorpusKey returns a deterministic fingerprint for a language and document
// set, independent of document order.
func CorpusKey(language string, docIDs []string) (string, error) {
	ids, err := sortedDocIDs(docIDs)
	if err != nil {
		return "", err
	}
	hash := sha256.New()
	hash.Write([]byte(language))
	hash.Write([]byte{0})
	hash.Write(ids)
	return hex.EncodeToString(hash.Sum(nil)), nil
}
