package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// writeFixture creates the files a valid Spanish config references.
func writeFixture(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	if err := os.MkdirAll(filepath.Join(root, "es", "source"), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	for _, name := range []string{"gold.tab", "es/ner.tsv", "es/titles.tsv"} {
		if err := os.WriteFile(filepath.Join(root, name), nil, 0o644); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
	}
	return root
}

const validYAML = `version: 1
output_dir: out
languages:
  es:
    documents_dir: es/source
    gold_file: gold.tab
    ner_file: es/ner.tsv
    kb_dictionary: es/titles.tsv
`

// TestParseValid verifies a valid config parses.
func TestParseValid(t *testing.T) {
	cfg, err := Parse([]byte(validYAML))
	if err != nil {
		t.Fatalf("expected parse to succeed, got %v", err)
	}
	if cfg.Languages["es"].GoldFile != "gold.tab" {
		t.Fatalf("unexpected gold file %q", cfg.Languages["es"].GoldFile)
	}
}

// TestParseUnknownField verifies unknown fields are rejected.
func TestParseUnknownField(t *testing.T) {
	if _, err := Parse([]byte("version: 1\nunknown: true\n")); err == nil {
		t.Fatalf("expected parse error for unknown field")
	}
}

// TestParseRejectsMultipleDocs verifies multiple YAML docs are rejected.
func TestParseRejectsMultipleDocs(t *testing.T) {
	if _, err := Parse([]byte("version: 1\n---\nversion: 1\n")); err == nil {
		t.Fatalf("expected parse error for multiple documents")
	}
}

// TestNormalizeDefaults verifies defaults per language.
func TestNormalizeDefaults(t *testing.T) {
	cfg := Config{
		Version: 1,
		Languages: map[string]LanguageConfig{
			"es": {},
			"zh": {DocLimit: 5},
		},
	}
	Normalize(&cfg)
	if cfg.OutputDir != DefaultOutputDir || cfg.Workers != 1 || cfg.NILClusterMinSize != 3 {
		t.Fatalf("unexpected defaults %+v", cfg)
	}
	es := cfg.Languages["es"]
	if es.DocIDMarker != "SPA" || es.DocLimit != 10000 {
		t.Fatalf("unexpected es defaults %+v", es)
	}
	if len(es.MentionKinds) != 1 || es.MentionKinds[0] != "NAM" {
		t.Fatalf("unexpected mention kinds %v", es.MentionKinds)
	}
	zh := cfg.Languages["zh"]
	if zh.DocIDMarker != "CMN" || zh.DocLimit != 5 {
		t.Fatalf("unexpected zh defaults %+v", zh)
	}
}

// TestLoadResolvesPaths verifies relative paths resolve against the config file.
func TestLoadResolvesPaths(t *testing.T) {
	root := writeFixture(t)
	path := filepath.Join(root, "config.yml")
	if err := os.WriteFile(path, []byte(validYAML), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	source, ok := cfg.Source(Spanish)
	if !ok {
		t.Fatalf("expected es source")
	}
	if source.GoldFile != filepath.Join(root, "gold.tab") {
		t.Fatalf("unexpected gold path %q", source.GoldFile)
	}
	if cfg.OutputDir != filepath.Join(root, "out") {
		t.Fatalf("unexpected output dir %q", cfg.OutputDir)
	}
	if cfg.ResultsDB != "" {
		t.Fatalf("empty results db must stay empty, got %q", cfg.ResultsDB)
	}
}

// TestValidateReportsMissingFiles verifies referenced files are checked.
func TestValidateReportsMissingFiles(t *testing.T) {
	root := writeFixture(t)
	cfg, err := Parse([]byte(validYAML))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	source := cfg.Languages["es"]
	source.GoldFile = "missing.tab"
	source.NERFile = ""
	cfg.Languages["es"] = source
	Normalize(&cfg)

	err = Validate(&cfg, root)
	var validationErr *ValidationError
	if !errors.As(err, &validationErr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	text := err.Error()
	for _, field := range []string{"languages.es.gold_file", "languages.es.ner_file"} {
		if !strings.Contains(text, field) {
			t.Fatalf("expected %s in %q", field, text)
		}
	}
}

// TestValidateRejectsUnknownLanguage verifies language keys are checked.
func TestValidateRejectsUnknownLanguage(t *testing.T) {
	cfg := Config{Version: 1, Languages: map[string]LanguageConfig{"en": {}}}
	Normalize(&cfg)
	err := Validate(&cfg, t.TempDir())
	if err == nil || !strings.Contains(err.Error(), "languages.en") {
		t.Fatalf("expected unknown language issue, got %v", err)
	}
}

// TestValidateVersionAndWorkers verifies scalar checks.
func TestValidateVersionAndWorkers(t *testing.T) {
	cfg := Config{Version: 2, OutputDir: "out", Workers: -1, NILClusterMinSize: 3}
	err := Validate(&cfg, ".")
	if err == nil {
		t.Fatalf("expected validation error")
	}
	for _, field := range []string{"version", "workers", "languages"} {
		if !strings.Contains(err.Error(), field) {
			t.Fatalf("expected %s issue in %q", field, err.Error())
		}
	}
}

// TestParseLanguage verifies only zh and es are accepted.
func TestParseLanguage(t *testing.T) {
	for _, value := range []string{"zh", "es"} {
		if _, err := ParseLanguage(value); err != nil {
			t.Fatalf("expected %s to parse: %v", value, err)
		}
	}
	_, err := ParseLanguage("en")
	if !errors.Is(err, ErrUnknownLanguage) {
		t.Fatalf("expected ErrUnknownLanguage, got %v", err)
	}
}

// TestScaffoldWritesParseableConfig verifies the starter config parses and
// is not overwritten.
func TestScaffoldWritesParseableConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "conf", "edleval.yml")
	if err := Scaffold(path); err != nil {
		t.Fatalf("scaffold: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	cfg, err := Parse(data)
	if err != nil {
		t.Fatalf("parse scaffold: %v", err)
	}
	Normalize(&cfg)
	if _, ok := cfg.Source(Spanish); !ok {
		t.Fatalf("expected es source in scaffold")
	}
	if zh, _ := cfg.Source(Chinese); zh.DocIDMarker != "CMN" {
		t.Fatalf("unexpected zh marker %q", zh.DocIDMarker)
	}
	if err := Scaffold(path); err == nil || !strings.Contains(err.Error(), "already exists") {
		t.Fatalf("expected already exists error, got %v", err)
	}
}
