package config

import "strings"

// Defaults applied by Normalize.
const (
	DefaultOutputDir         = "results"
	DefaultWorkers           = 1
	DefaultNILClusterMinSize = 3
)

// Normalize fills defaults in place.
func Normalize(cfg *Config) {
	if strings.TrimSpace(cfg.OutputDir) == "" {
		cfg.OutputDir = DefaultOutputDir
	}
	if cfg.Workers == 0 {
		cfg.Workers = DefaultWorkers
	}
	if cfg.NILClusterMinSize == 0 {
		cfg.NILClusterMinSize = DefaultNILClusterMinSize
	}
	for key, source := range cfg.Languages {
		lang := Language(strings.TrimSpace(key))
		if strings.TrimSpace(source.DocIDMarker) == "" {
			source.DocIDMarker = DefaultDocIDMarker(lang)
		}
		if source.DocLimit == 0 {
			source.DocLimit = defaultDocLimit(lang)
		}
		if len(source.MentionKinds) == 0 {
			source.MentionKinds = []string{"NAM"}
		}
		cfg.Languages[key] = source
	}
}
