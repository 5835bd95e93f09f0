package domain

// SourceScanner walks a project directory and returns component source files.
type SourceScanner interface {
	Scan(projectPath string, extensions []string, excludePaths ...string) (*ScanResult, error)
}

// ComponentClassifier maps a component source file to a component type name.
type ComponentClassifier interface {
	Classify(relPath string) string
}

// ConfigLoader reads project configuration.
type ConfigLoader interface {
	Load(projectPath string) (ProjectConfig, error)
}

// ScanHistory persists scan summaries across runs.
type ScanHistory interface {
	Save(projectPath string, entry ScanEntry) error
	Load(projectPath string) ([]ScanEntry, error)
}

// GitInfo exposes repository metadata.
type GitInfo interface {
	IsGitRepo(projectPath string) bool
	CommitHash(projectPath string) (string, error)
}

// ScanResult holds the component files found under a project root.
type ScanResult struct {
	RootPath       string   `json:"root_path"`
	ComponentFiles []string `json:"component_files"`
	SkippedDirs    []string `json:"skipped_dirs,omitempty"`
}

// ReportCacheStore persists per-file reports between scans.
type ReportCacheStore interface {
	Load(projectPath string) (*ReportCache, error)
	Save(cache *ReportCache) error
	Invalidate(projectPath string) error
}
