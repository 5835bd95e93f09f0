package application

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/openkraft/a11ykraft/internal/domain"
	"github.com/openkraft/a11ykraft/internal/domain/report"
)

// ScanService validates every component source file in a project:
// load config → walk tree → classify files → validate in parallel → summarize.
type ScanService struct {
	scanner      domain.SourceScanner
	classifier   domain.ComponentClassifier
	configLoader domain.ConfigLoader
	git          domain.GitInfo
	validator    *ValidationService
	cache        domain.ReportCacheStore
	logger       *slog.Logger
}

func NewScanService(
	scanner domain.SourceScanner,
	classifier domain.ComponentClassifier,
	configLoader domain.ConfigLoader,
	git domain.GitInfo,
	validator *ValidationService,
	logger *slog.Logger,
) *ScanService {
	if logger == nil {
		logger = slog.Default()
	}
	return &ScanService{
		scanner:      scanner,
		classifier:   classifier,
		configLoader: configLoader,
		git:          git,
		validator:    validator,
		logger:       logger,
	}
}

// WithCache returns a copy of s that reuses reports for unchanged files
// through store.
func (s *ScanService) WithCache(store domain.ReportCacheStore) *ScanService {
	cp := *s
	cp.cache = store
	return &cp
}

// ClearCache drops the cached reports for projectPath. It is a no-op when
// no cache is configured.
func (s *ScanService) ClearCache(projectPath string) error {
	if s.cache == nil {
		return nil
	}
	if err := s.cache.Invalidate(projectPath); err != nil {
		return fmt.Errorf("clearing report cache: %w", err)
	}
	s.logger.Debug("report cache cleared", "path", projectPath)
	return nil
}

// ScanProject validates the project at projectPath. level overrides the
// configured level when non-empty.
func (s *ScanService) ScanProject(ctx context.Context, projectPath string, level domain.Level) (*domain.ProjectScan, error) {
	cfg, err := s.configLoader.Load(projectPath)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	if level == "" {
		level = cfg.Level
	}
	if !level.Valid() {
		return nil, fmt.Errorf("%w: unknown conformance level %q (valid: A, AA, AAA)", domain.ErrInvalidArgument, level)
	}

	scan, err := s.scanner.Scan(projectPath, cfg.Extensions, cfg.ExcludePaths...)
	if err != nil {
		return nil, fmt.Errorf("scanning project: %w", err)
	}

	items := s.collect(scan, cfg)

	reports, err := s.validate(ctx, scan.RootPath, items, level)
	if err != nil {
		return nil, fmt.Errorf("validating components: %w", err)
	}

	files := make([]string, 0, len(items))
	for _, it := range items {
		files = append(files, it.File)
	}

	result := &domain.ProjectScan{
		Root:      scan.RootPath,
		Level:     level,
		Files:     files,
		Reports:   reports,
		Summary:   report.Summarize(reports),
		ScannedAt: time.Now().UTC(),
	}
	if s.git != nil && s.git.IsGitRepo(projectPath) {
		if hash, err := s.git.CommitHash(projectPath); err == nil {
			result.CommitHash = hash
		}
	}

	s.logger.Info("scanned project",
		"root", result.Root,
		"files", len(files),
		"average_score", result.Summary.AverageScore,
		"failed", result.Summary.FailedComponents,
	)
	return result, nil
}

// collect reads and classifies every scanned file. Unreadable files are
// logged and skipped.
func (s *ScanService) collect(scan *domain.ScanResult, cfg domain.ProjectConfig) []domain.ComponentSource {
	var items []domain.ComponentSource
	for _, rel := range scan.ComponentFiles {
		component := cfg.Components[filepath.ToSlash(rel)]
		if component == "" {
			component = s.classifier.Classify(rel)
		}
		if component == "" || cfg.IsSkippedComponent(component) {
			s.logger.Debug("skipping file", "file", rel, "component", component)
			continue
		}

		data, err := os.ReadFile(filepath.Join(scan.RootPath, rel))
		if err != nil {
			s.logger.Warn("unreadable component file", "file", rel, "error", err)
			continue
		}
		items = append(items, domain.ComponentSource{Name: component, Code: string(data), File: rel})
	}
	return items
}

// validate runs the validator over items, serving unchanged files from the
// report cache when one is configured.
func (s *ScanService) validate(ctx context.Context, root string, items []domain.ComponentSource, level domain.Level) ([]domain.Report, error) {
	if s.cache == nil {
		return s.validator.ValidateComponents(ctx, items, level)
	}

	prev, err := s.cache.Load(root)
	if err != nil {
		s.logger.Warn("ignoring unreadable report cache", "error", err)
		prev = nil
	}
	if prev != nil && prev.IsInvalidated(level) {
		prev = nil
	}

	reports := make([]domain.Report, len(items))
	prints := make([]string, len(items))
	var (
		todo []domain.ComponentSource
		idx  []int
	)
	for i, it := range items {
		prints[i] = fingerprint(it)
		if r, ok := prev.Lookup(it.File, prints[i]); ok {
			reports[i] = r
			continue
		}
		todo = append(todo, it)
		idx = append(idx, i)
	}

	fresh, err := s.validator.ValidateComponents(ctx, todo, level)
	if err != nil {
		return nil, err
	}
	for j, r := range fresh {
		reports[idx[j]] = r
	}
	s.logger.Debug("report cache", "hits", len(items)-len(todo), "misses", len(todo))

	next := &domain.ReportCache{
		ProjectPath: root,
		Level:       level,
		Entries:     make(map[string]domain.CachedReport, len(items)),
	}
	for i, it := range items {
		next.Entries[it.File] = domain.CachedReport{Fingerprint: prints[i], Report: reports[i]}
	}
	if err := s.cache.Save(next); err != nil {
		s.logger.Warn("could not save report cache", "error", err)
	}
	return reports, nil
}

func fingerprint(it domain.ComponentSource) string {
	h := sha256.New()
	h.Write([]byte(it.Name))
	h.Write([]byte{0})
	h.Write([]byte(it.Code))
	return hex.EncodeToString(h.Sum(nil))
}
