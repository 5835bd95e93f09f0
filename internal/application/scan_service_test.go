package application_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/openkraft/a11ykraft/internal/adapters/outbound/cache"
	"github.com/openkraft/a11ykraft/internal/adapters/outbound/config"
	"github.com/openkraft/a11ykraft/internal/adapters/outbound/gitinfo"
	"github.com/openkraft/a11ykraft/internal/adapters/outbound/scanner"
	"github.com/openkraft/a11ykraft/internal/application"
	"github.com/openkraft/a11ykraft/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const fixtureDir = "../../testdata/components/app"

func newScanService() *application.ScanService {
	return application.NewScanService(
		scanner.New(),
		scanner.NewClassifier(),
		config.New(),
		gitinfo.New(),
		newValidationService(),
		nil,
	)
}

func reportFor(t *testing.T, scan *domain.ProjectScan, file string) domain.Report {
	t.Helper()
	for _, r := range scan.Reports {
		if r.File == file {
			return r
		}
	}
	t.Fatalf("no report for %s", file)
	return domain.Report{}
}

func TestScanProject_Fixture(t *testing.T) {
	scan, err := newScanService().ScanProject(context.Background(), fixtureDir, "")
	require.NoError(t, err)

	assert.Equal(t, domain.LevelAA, scan.Level)
	assert.False(t, scan.ScannedAt.IsZero())
	assert.Equal(t, []string{
		"src/components/ConfirmDialog.tsx",
		"src/components/IconButton.tsx",
		"src/components/Logo.tsx",
		"src/components/PrimaryButton.tsx",
		"src/components/SettingsTabs.tsx",
		"src/forms/text-field/index.tsx",
		"src/widgets/Banner.vue",
	}, scan.Files, "storybook excluded and Table skipped by config")
	require.Len(t, scan.Reports, len(scan.Files))

	assert.Equal(t, 7, scan.Summary.TotalComponents)
	assert.Equal(t, 4, scan.Summary.PassedComponents)
	assert.Equal(t, 3, scan.Summary.FailedComponents)
}

func TestScanProject_ClassifiesFiles(t *testing.T) {
	scan, err := newScanService().ScanProject(context.Background(), fixtureDir, "")
	require.NoError(t, err)

	tests := []struct {
		file      string
		component string
		passed    bool
	}{
		{"src/components/PrimaryButton.tsx", "Button", true},
		{"src/components/IconButton.tsx", "Button", false},
		{"src/components/ConfirmDialog.tsx", "Modal", true},
		{"src/components/SettingsTabs.tsx", "Tabs", false},
		{"src/forms/text-field/index.tsx", "Input", true},
		{"src/widgets/Banner.vue", "Alert", false},
		{"src/components/Logo.tsx", "Logo", true},
	}
	for _, tt := range tests {
		t.Run(tt.file, func(t *testing.T) {
			r := reportFor(t, scan, tt.file)
			assert.Equal(t, tt.component, r.Component)
			assert.Equal(t, tt.passed, r.Passed)
		})
	}

	assert.False(t, reportFor(t, scan, "src/components/Logo.tsx").Coverage.CatalogFound)
}

func TestScanProject_BannerContrastWarning(t *testing.T) {
	scan, err := newScanService().ScanProject(context.Background(), fixtureDir, "")
	require.NoError(t, err)

	r := reportFor(t, scan, "src/widgets/Banner.vue")
	var ids []string
	for _, w := range r.Warnings {
		ids = append(ids, w.ID)
	}
	assert.Contains(t, ids, "alert-low-contrast")
}

func TestScanProject_LevelOverride(t *testing.T) {
	scan, err := newScanService().ScanProject(context.Background(), fixtureDir, domain.LevelA)
	require.NoError(t, err)
	assert.Equal(t, domain.LevelA, scan.Level)
	for _, r := range scan.Reports {
		assert.Equal(t, domain.LevelA, r.Level)
		for _, w := range r.Warnings {
			assert.NotContains(t, w.ID, "low-contrast", "contrast is an AA criterion")
		}
	}
}

func TestScanProject_InvalidConfig(t *testing.T) {
	dir := t.TempDir()
	_, err := config.WriteDefault(dir, false)
	require.NoError(t, err)

	_, err = newScanService().ScanProject(context.Background(), dir, domain.Level("Z"))
	require.ErrorIs(t, err, domain.ErrInvalidArgument)
}

func TestScanProject_MissingPath(t *testing.T) {
	_, err := newScanService().ScanProject(context.Background(), "../../testdata/does-not-exist", "")
	assert.Error(t, err)
}

// tamper rewrites the cached score so a cache hit is observable.
func tamper(t *testing.T, store *cache.Store, dir string) {
	t.Helper()
	stored, err := store.Load(dir)
	require.NoError(t, err)
	entry := stored.Entries["PrimaryButton.tsx"]
	entry.Report.Score = 1
	stored.Entries["PrimaryButton.tsx"] = entry
	require.NoError(t, store.Save(stored))
}

func TestScanProject_ReportCache(t *testing.T) {
	dir := t.TempDir()
	src, err := os.ReadFile(filepath.Join(fixtureDir, "src/components/PrimaryButton.tsx"))
	require.NoError(t, err)
	file := filepath.Join(dir, "PrimaryButton.tsx")
	require.NoError(t, os.WriteFile(file, src, 0o644))

	store := cache.New()
	svc := newScanService().WithCache(store)
	ctx := context.Background()

	first, err := svc.ScanProject(ctx, dir, "")
	require.NoError(t, err)
	require.Len(t, first.Reports, 1)
	assert.FileExists(t, cache.Path(dir))

	tamper(t, store, dir)

	hit, err := svc.ScanProject(ctx, dir, "")
	require.NoError(t, err)
	assert.Equal(t, 1, hit.Reports[0].Score)

	changed, err := svc.ScanProject(ctx, dir, domain.LevelAAA)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, first.Reports[0].Score, changed.Reports[0].Score)
	assert.NotEqual(t, 1, changed.Reports[0].Score, "level change invalidates the cache")

	tamper(t, store, dir)
	require.NoError(t, os.WriteFile(file, append(src, '\n'), 0o644))
	edited, err := svc.ScanProject(ctx, dir, domain.LevelAAA)
	require.NoError(t, err)
	assert.Equal(t, changed.Reports[0].Score, edited.Reports[0].Score)
}

func TestScanService_ClearCache(t *testing.T) {
	dir := t.TempDir()
	src, err := os.ReadFile(filepath.Join(fixtureDir, "src/components/PrimaryButton.tsx"))
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "PrimaryButton.tsx"), src, 0o644))

	assert.NoError(t, newScanService().ClearCache(dir), "no cache configured")

	store := cache.New()
	svc := newScanService().WithCache(store)
	first, err := svc.ScanProject(context.Background(), dir, "")
	require.NoError(t, err)
	require.FileExists(t, cache.Path(dir))

	tamper(t, store, dir)
	require.NoError(t, svc.ClearCache(dir))
	assert.NoFileExists(t, cache.Path(dir))

	fresh, err := svc.ScanProject(context.Background(), dir, "")
	require.NoError(t, err)
	assert.Equal(t, first.Reports[0].Score, fresh.Reports[0].Score, "a cleared cache is not reused")
}
