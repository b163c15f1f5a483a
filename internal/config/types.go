package config

// Config is the harness configuration file.
type Config struct {
	Version           int                       `yaml:"version"`
	OutputDir         string                    `yaml:"output_dir"`
	Workers           int                       `yaml:"workers"`
	NILClusterMinSize int                       `yaml:"nil_cluster_min_size"`
	ResultsDB         string                    `yaml:"results_db"`
	Languages         map[string]LanguageConfig `yaml:"languages"`
}

// LanguageConfig points at the corpus, gold and annotator resources for one
// language.
type LanguageConfig struct {
	DocumentsDir string   `yaml:"documents_dir"`
	GoldFile     string   `yaml:"gold_file"`
	DocIDMarker  string   `yaml:"doc_id_marker"`
	DocLimit     int      `yaml:"doc_limit"`
	MentionKinds []string `yaml:"mention_kinds"`
	NERFile      string   `yaml:"ner_file"`
	KBDictionary string   `yaml:"kb_dictionary"`
}

// Source returns the configuration for a language.
func (c Config) Source(lang Language) (LanguageConfig, bool) {
	source, ok := c.Languages[string(lang)]
	return source, ok
}
