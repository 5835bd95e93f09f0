package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/openkraft/a11ykraft/internal/domain"
)

const (
	// YAMLFile is the preferred project config file name.
	YAMLFile = ".a11ykraft.yaml"
	// TOMLFile is read only when no YAML file exists.
	TOMLFile = ".a11ykraft.toml"
)

// Loader implements domain.ConfigLoader by reading .a11ykraft.yaml, falling
// back to .a11ykraft.toml.
type Loader struct{}

// New creates a Loader.
func New() *Loader { return &Loader{} }

// Load reads the project config from projectPath.
// Returns DefaultConfig if neither file exists.
func (l *Loader) Load(projectPath string) (domain.ProjectConfig, error) {
	var cfg domain.ProjectConfig
	name, err := l.decode(projectPath, &cfg)
	if err != nil {
		return domain.ProjectConfig{}, err
	}
	if name == "" {
		return domain.DefaultConfig(), nil
	}

	// Validate before defaults are applied so typos in the raw input surface.
	if err := cfg.Validate(); err != nil {
		return domain.ProjectConfig{}, fmt.Errorf("invalid %s: %w", name, err)
	}
	if cfg.Level != "" {
		cfg.Level, _ = domain.ParseLevel(string(cfg.Level))
	}
	return cfg.WithDefaults(), nil
}

// decode fills cfg from the first config file found and returns its name,
// or "" when there is none.
func (l *Loader) decode(projectPath string, cfg *domain.ProjectConfig) (string, error) {
	data, err := os.ReadFile(filepath.Join(projectPath, YAMLFile))
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return "", fmt.Errorf("parsing %s: %w", YAMLFile, err)
		}
		return YAMLFile, nil
	case !errors.Is(err, os.ErrNotExist):
		return "", err
	}

	tomlPath := filepath.Join(projectPath, TOMLFile)
	if _, err := os.Stat(tomlPath); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", nil
		}
		return "", err
	}
	meta, err := toml.DecodeFile(tomlPath, cfg)
	if err != nil {
		return "", fmt.Errorf("parsing %s: %w", TOMLFile, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return "", fmt.Errorf("parsing %s: unknown key %q", TOMLFile, undecoded[0].String())
	}
	return TOMLFile, nil
}

const defaultYAML = `# a11ykraft project configuration
# WCAG conformance level to validate against: A, AA or AAA.
level: AA

# Minimum average score for "a11ykraft scan --ci".
min_score: 80

# Component source extensions to scan.
extensions: [".tsx", ".jsx", ".vue", ".svelte", ".html"]

# Directories to skip in addition to node_modules, vendor, dist, build and .git.
exclude_paths: []

# Explicit component types for files whose names do not reveal them.
# components:
#   src/ui/Fancy.tsx: Button

# Component types that are never validated.
skip_components: []
`

// WriteDefault writes a commented default .a11ykraft.yaml into projectPath.
// It refuses to overwrite an existing file unless force is set.
func WriteDefault(projectPath string, force bool) (string, error) {
	path := filepath.Join(projectPath, YAMLFile)
	if !force {
		if _, err := os.Stat(path); err == nil {
			return "", fmt.Errorf("%s already exists (use --force to overwrite)", YAMLFile)
		}
	}
	if err := os.WriteFile(path, []byte(defaultYAML), 0o644); err != nil {
		return "", fmt.Errorf("writing %s: %w", YAMLFile, err)
	}
	return path, nil
}
