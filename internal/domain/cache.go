package domain

// ReportCache holds the reports of a previous scan keyed by the file path
// relative to the project root.
type ReportCache struct {
	ProjectPath string                  `json:"project_path"`
	Level       Level                   `json:"level"`
	Entries     map[string]CachedReport `json:"entries"`
}

// CachedReport pairs a report with the fingerprint of the source it was
// built from.
type CachedReport struct {
	Fingerprint string `json:"fingerprint"`
	Report      Report `json:"report"`
}

// IsInvalidated reports whether the cache was built for another level.
func (c *ReportCache) IsInvalidated(level Level) bool {
	return c.Level != level
}

// Lookup returns the cached report for file when its fingerprint still
// matches. A nil cache never hits.
func (c *ReportCache) Lookup(file, fingerprint string) (Report, bool) {
	if c == nil {
		return Report{}, false
	}
	e, ok := c.Entries[file]
	if !ok || e.Fingerprint != fingerprint {
		return Report{}, false
	}
	return e.Report, true
}
