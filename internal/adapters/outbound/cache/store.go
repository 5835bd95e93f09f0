package cache

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/openkraft/a11ykraft/internal/domain"
)

// Store is a file-based implementation of domain.ReportCacheStore.
type Store struct{}

// New creates a new file-based cache store.
func New() *Store {
	return &Store{}
}

// Path returns the cache file location for projectPath.
func Path(projectPath string) string {
	return filepath.Join(projectPath, ".a11ykraft", "cache", "reports.json")
}

// Load reads a project cache from disk. Returns (nil, nil) if no cache exists.
func (s *Store) Load(projectPath string) (*domain.ReportCache, error) {
	path := Path(projectPath)
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}

	var cache domain.ReportCache
	if err := json.Unmarshal(data, &cache); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return &cache, nil
}

// Save writes a project cache to disk, creating directories as needed.
func (s *Store) Save(cache *domain.ReportCache) error {
	path := Path(cache.ProjectPath)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	data, err := json.Marshal(cache)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// Invalidate removes the cache file for the given project path.
func (s *Store) Invalidate(projectPath string) error {
	if err := os.Remove(Path(projectPath)); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}
