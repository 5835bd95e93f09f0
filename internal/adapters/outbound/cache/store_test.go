package cache_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openkraft/a11ykraft/internal/adapters/outbound/cache"
	"github.com/openkraft/a11ykraft/internal/domain"
)

func TestStore_SaveAndLoad(t *testing.T) {
	store := cache.New()
	projectPath := t.TempDir()

	original := &domain.ReportCache{
		ProjectPath: projectPath,
		Level:       domain.LevelAA,
		Entries: map[string]domain.CachedReport{
			"src/Button.tsx": {Fingerprint: "abc123", Report: domain.Report{Component: "Button", Score: 85}},
		},
	}
	require.NoError(t, store.Save(original))

	loaded, err := store.Load(projectPath)
	require.NoError(t, err)
	require.NotNil(t, loaded)

	assert.Equal(t, projectPath, loaded.ProjectPath)
	assert.Equal(t, domain.LevelAA, loaded.Level)
	r, ok := loaded.Lookup("src/Button.tsx", "abc123")
	require.True(t, ok)
	assert.Equal(t, 85, r.Score)
}

func TestStore_LoadNonExistent(t *testing.T) {
	loaded, err := cache.New().Load(t.TempDir())
	assert.NoError(t, err)
	assert.Nil(t, loaded)
}

func TestStore_LoadCorrupt(t *testing.T) {
	projectPath := t.TempDir()
	path := cache.Path(projectPath)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	_, err := cache.New().Load(projectPath)
	assert.ErrorContains(t, err, "parsing")
}

func TestStore_Invalidate(t *testing.T) {
	store := cache.New()
	projectPath := t.TempDir()

	require.NoError(t, store.Save(&domain.ReportCache{ProjectPath: projectPath, Level: domain.LevelA}))
	assert.FileExists(t, cache.Path(projectPath))

	require.NoError(t, store.Invalidate(projectPath))
	assert.NoFileExists(t, cache.Path(projectPath))

	assert.NoError(t, store.Invalidate(projectPath), "invalidating twice is not an error")
}

func TestReportCache_Lookup(t *testing.T) {
	c := &domain.ReportCache{
		Level: domain.LevelAA,
		Entries: map[string]domain.CachedReport{
			"a.tsx": {Fingerprint: "f1", Report: domain.Report{Component: "Button"}},
		},
	}

	_, ok := c.Lookup("a.tsx", "f2")
	assert.False(t, ok, "stale fingerprint")
	_, ok = c.Lookup("b.tsx", "f1")
	assert.False(t, ok, "unknown file")
	assert.True(t, c.IsInvalidated(domain.LevelAAA))
	assert.False(t, c.IsInvalidated(domain.LevelAA))

	var nilCache *domain.ReportCache
	_, ok = nilCache.Lookup("a.tsx", "f1")
	assert.False(t, ok)
}
