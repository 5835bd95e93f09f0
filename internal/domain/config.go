package domain

import (
	"fmt"
	"strings"
)

// DefaultExtensions are the file extensions scanned for component sources.
var DefaultExtensions = []string{".tsx", ".jsx", ".vue", ".svelte", ".html"}

// ProjectConfig holds project-level configuration loaded from .a11ykraft.yaml
// (or .a11ykraft.toml).
type ProjectConfig struct {
	Level          Level             `yaml:"level"           toml:"level"           json:"level,omitempty"`
	MinScore       int               `yaml:"min_score"       toml:"min_score"       json:"min_score,omitempty"`
	Extensions     []string          `yaml:"extensions"      toml:"extensions"      json:"extensions,omitempty"`
	ExcludePaths   []string          `yaml:"exclude_paths"   toml:"exclude_paths"   json:"exclude_paths,omitempty"`
	Components     map[string]string `yaml:"components"      toml:"components"      json:"components,omitempty"`
	SkipComponents []string          `yaml:"skip_components" toml:"skip_components" json:"skip_components,omitempty"`
}

// DefaultConfig returns the config used when no file exists.
func DefaultConfig() ProjectConfig {
	return ProjectConfig{
		Level:      DefaultLevel,
		Extensions: append([]string(nil), DefaultExtensions...),
	}
}

// WithDefaults fills unset fields from DefaultConfig.
func (c ProjectConfig) WithDefaults() ProjectConfig {
	d := DefaultConfig()
	if c.Level == "" {
		c.Level = d.Level
	}
	if len(c.Extensions) == 0 {
		c.Extensions = d.Extensions
	}
	return c
}

// IsSkippedComponent reports whether the named component type is excluded.
func (c ProjectConfig) IsSkippedComponent(name string) bool {
	for _, s := range c.SkipComponents {
		if strings.EqualFold(s, name) {
			return true
		}
	}
	return false
}

// Validate checks the config for invalid values and returns a descriptive error.
func (c ProjectConfig) Validate() error {
	if c.Level != "" {
		if _, err := ParseLevel(string(c.Level)); err != nil {
			return fmt.Errorf("unknown level %q (valid: A, AA, AAA)", c.Level)
		}
	}

	if c.MinScore < 0 || c.MinScore > 100 {
		return fmt.Errorf("min_score %d out of range (must be between 0 and 100)", c.MinScore)
	}

	for _, ext := range c.Extensions {
		if !strings.HasPrefix(ext, ".") || len(ext) < 2 {
			return fmt.Errorf("extension %q must start with a dot", ext)
		}
	}

	for path, component := range c.Components {
		if strings.TrimSpace(path) == "" {
			return fmt.Errorf("components: empty path mapped to %q", component)
		}
		if strings.TrimSpace(component) == "" {
			return fmt.Errorf("components: %s has no component type", path)
		}
	}

	return nil
}
