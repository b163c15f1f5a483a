package config

import (
	"fmt"
	"os"
	"path/filepath"
)

const defaultConfig = `version: 1
output_dir: "./results"
workers: 1
nil_cluster_min_size: 3
results_db: ""

languages:
  es:
    documents_dir: "data/es/source"
    gold_file: "data/tac_kbp_2016_edl_gold.tab"
    doc_id_marker: "SPA"
    doc_limit: 10000
    mention_kinds: ["NAM"]
    ner_file: "data/es/ner.tsv"
    kb_dictionary: "data/es/titles.tsv"
  zh:
    documents_dir: "data/zh/source"
    gold_file: "data/tac_kbp_2016_edl_gold.tab"
    doc_id_marker: "CMN"
    mention_kinds: ["NAM"]
    ner_file: "data/zh/ner.tsv"
    kb_dictionary: "data/zh/titles.tsv"
`

// Scaffold writes a starter config to path. It refuses to overwrite an
// existing file.
func Scaffold(path string) error {
	if path == "" {
		return fmt.Errorf("config path is required")
	}
	if info, err := os.Stat(path); err == nil {
		if info.IsDir() {
			return fmt.Errorf("config path %q is a directory", path)
		}
		return fmt.Errorf("config file already exists at %q", path)
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("stat config file: %w", err)
	}

	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create config dir: %w", err)
		}
	}
	if err := os.WriteFile(path, []byte(defaultConfig), 0o644); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}
	return nil
}
