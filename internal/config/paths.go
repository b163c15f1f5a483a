package config

import "path/filepath"

// BaseDir returns the directory relative config paths resolve against.
func BaseDir(configPath string) string {
	return filepath.Dir(configPath)
}

// resolvePath joins relative paths onto baseDir; empty paths stay empty.
func resolvePath(baseDir, path string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(baseDir, path)
}

// Resolve rewrites every relative path in cfg against baseDir.
func Resolve(cfg *Config, baseDir string) {
	cfg.OutputDir = resolvePath(baseDir, cfg.OutputDir)
	cfg.ResultsDB = resolvePath(baseDir, cfg.ResultsDB)
	for key, source := range cfg.Languages {
		source.DocumentsDir = resolvePath(baseDir, source.DocumentsDir)
		source.GoldFile = resolvePath(baseDir, source.GoldFile)
		source.NERFile = resolvePath(baseDir, source.NERFile)
		source.KBDictionary = resolvePath(baseDir, source.KBDictionary)
		cfg.Languages[key] = source
	}
}
