package config

import (
	"fmt"
	"os"
	"sort"
	"strings"
)

// Issue captures a validation problem with a config field.
type Issue struct {
	Field   string
	Message string
}

// ValidationError aggregates config validation issues.
type ValidationError struct {
	Issues []Issue
}

// Error renders validation errors as a multi-line string.
func (err *ValidationError) Error() string {
	if err == nil || len(err.Issues) == 0 {
		return "config validation failed"
	}
	lines := make([]string, 0, len(err.Issues))
	for _, issue := range err.Issues {
		lines = append(lines, fmt.Sprintf("%s: %s", issue.Field, issue.Message))
	}
	return strings.Join(lines, "\n")
}

// Validate checks a normalized config and the files it references.
func Validate(cfg *Config, baseDir string) error {
	var issues []Issue
	add := func(field, message string) {
		issues = append(issues, Issue{Field: field, Message: message})
	}

	if cfg.Version == 0 {
		add("version", "is required")
	} else if cfg.Version != 1 {
		add("version", fmt.Sprintf("unsupported version %d", cfg.Version))
	}
	if strings.TrimSpace(cfg.OutputDir) == "" {
		add("output_dir", "is required")
	}
	if cfg.Workers < 1 {
		add("workers", "must be >= 1")
	}
	if cfg.NILClusterMinSize < 1 {
		add("nil_cluster_min_size", "must be >= 1")
	}

	if baseDir == "" {
		baseDir = "."
	}

	if len(cfg.Languages) == 0 {
		add("languages", "at least one language is required")
	}
	keys := make([]string, 0, len(cfg.Languages))
	for key := range cfg.Languages {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		source := cfg.Languages[key]
		fieldPrefix := "languages." + key
		if _, err := ParseLanguage(key); err != nil {
			add(fieldPrefix, err.Error())
			continue
		}
		checkDir(add, baseDir, fieldPrefix+".documents_dir", source.DocumentsDir, true)
		checkFile(add, baseDir, fieldPrefix+".gold_file", source.GoldFile, true)
		checkFile(add, baseDir, fieldPrefix+".ner_file", source.NERFile, true)
		checkFile(add, baseDir, fieldPrefix+".kb_dictionary", source.KBDictionary, false)
		if source.DocLimit < 0 {
			add(fieldPrefix+".doc_limit", "must be >= 0")
		}
		for i, kind := range source.MentionKinds {
			switch strings.TrimSpace(kind) {
			case "NAM", "NOM":
			default:
				add(fmt.Sprintf("%s.mention_kinds[%d]", fieldPrefix, i), fmt.Sprintf("unsupported kind %q", kind))
			}
		}
	}

	if len(issues) > 0 {
		return &ValidationError{Issues: issues}
	}
	return nil
}

func checkFile(add func(string, string), baseDir, field, path string, required bool) {
	path = strings.TrimSpace(path)
	if path == "" {
		if required {
			add(field, "is required")
		}
		return
	}
	info, err := os.Stat(resolvePath(baseDir, path))
	if err != nil {
		add(field, fmt.Sprintf("file not found at %q", path))
		return
	}
	if info.IsDir() {
		add(field, fmt.Sprintf("path %q is a directory", path))
	}
}

func checkDir(add func(string, string), baseDir, field, path string, required bool) {
	path = strings.TrimSpace(path)
	if path == "" {
		if required {
			add(field, "is required")
		}
		return
	}
	info, err := os.Stat(resolvePath(baseDir, path))
	if err != nil {
		add(field, fmt.Sprintf("path not found at %q", path))
		return
	}
	if !info.IsDir() {
		add(field, fmt.Sprintf("path %q is not a directory", path))
	}
}
