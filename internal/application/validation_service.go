package application

import (
	"context"
	"fmt"
	"log/slog"
	"runtime"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/openkraft/a11ykraft/internal/domain"
	"github.com/openkraft/a11ykraft/internal/domain/check"
	"github.com/openkraft/a11ykraft/internal/domain/contrast"
	"github.com/openkraft/a11ykraft/internal/domain/report"
	"github.com/openkraft/a11ykraft/internal/domain/rules"
)

// ValidationService is the call-style entry point of the analyzer:
// validate one or many components, summarize, and check contrast.
// It holds no mutable state and is safe for concurrent use.
type ValidationService struct {
	logger  *slog.Logger
	workers int
}

// NewValidationService returns a service logging to logger (slog.Default
// when nil). Batch validation uses GOMAXPROCS workers.
func NewValidationService(logger *slog.Logger) *ValidationService {
	if logger == nil {
		logger = slog.Default()
	}
	return &ValidationService{logger: logger, workers: runtime.GOMAXPROCS(0)}
}

// WithWorkers returns a copy of s limited to n concurrent validations.
func (s *ValidationService) WithWorkers(n int) *ValidationService {
	cp := *s
	if n > 0 {
		cp.workers = n
	}
	return &cp
}

func normalize(component string, level domain.Level) (string, domain.Level, error) {
	component = strings.TrimSpace(component)
	if component == "" {
		return "", "", fmt.Errorf("%w: component name is empty", domain.ErrInvalidArgument)
	}
	if level == "" {
		level = domain.DefaultLevel
	}
	if !level.Valid() {
		return "", "", fmt.Errorf("%w: unknown conformance level %q (valid: A, AA, AAA)", domain.ErrInvalidArgument, level)
	}
	if canonical, ok := rules.Lookup(component); ok {
		component = canonical
	}
	return component, level, nil
}

// ValidateComponent checks code as an implementation of component at level
// (AA when empty). Unknown component types are not an error: they yield a
// report without catalog findings and Coverage.CatalogFound false.
func (s *ValidationService) ValidateComponent(component, code string, level domain.Level) (domain.Report, error) {
	component, level, err := normalize(component, level)
	if err != nil {
		return domain.Report{}, err
	}

	res := check.Component(component, code, level)
	r := report.Build(component, code, level, res)

	s.logger.Debug("validated component",
		"component", component,
		"level", level,
		"score", r.Score,
		"passed", r.Passed,
		"issues", len(r.Issues),
		"warnings", len(r.Warnings),
		"catalog_found", r.Coverage.CatalogFound,
	)
	return r, nil
}

// ValidateComponents validates every item independently and returns the
// reports in input order. Argument errors are checked up front so no work
// starts for a bad batch.
func (s *ValidationService) ValidateComponents(ctx context.Context, items []domain.ComponentSource, level domain.Level) ([]domain.Report, error) {
	for i, it := range items {
		if _, _, err := normalize(it.Name, level); err != nil {
			return nil, fmt.Errorf("item %d: %w", i, err)
		}
	}
	if len(items) == 0 {
		return []domain.Report{}, nil
	}

	reports := make([]domain.Report, len(items))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(s.workers, len(items)))

	for i, it := range items {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			r, err := s.ValidateComponent(it.Name, it.Code, level)
			if err != nil {
				return fmt.Errorf("validating %s: %w", it.Name, err)
			}
			r.File = it.File
			reports[i] = r
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return reports, nil
}

// GenerateSummaryReport rolls reports up into a Summary.
func (s *ValidationService) GenerateSummaryReport(reports []domain.Report) domain.Summary {
	return report.Summarize(reports)
}

// QuickCheck reports whether code passes at the default level.
func (s *ValidationService) QuickCheck(component, code string) (bool, error) {
	r, err := s.ValidateComponent(component, code, domain.DefaultLevel)
	if err != nil {
		return false, err
	}
	return r.Passed, nil
}

// Score returns the score of code at the default level.
func (s *ValidationService) Score(component, code string) (int, error) {
	r, err := s.ValidateComponent(component, code, domain.DefaultLevel)
	if err != nil {
		return 0, err
	}
	return r.Score, nil
}

// CriticalIssues returns the titles of critical issues at the default level.
func (s *ValidationService) CriticalIssues(component, code string) ([]string, error) {
	r, err := s.ValidateComponent(component, code, domain.DefaultLevel)
	if err != nil {
		return nil, err
	}
	titles := []string{}
	for _, i := range r.Issues {
		if i.Severity == domain.SeverityCritical {
			titles = append(titles, i.Title)
		}
	}
	return titles, nil
}

// CheckColorContrast computes the contrast between two colors.
func (s *ValidationService) CheckColorContrast(foreground, background string) domain.ContrastResult {
	r := contrast.Check(foreground, background)
	if _, ok := contrast.ParseColor(foreground); !ok {
		s.logger.Warn("unparseable color treated as black", "color", foreground)
	}
	if _, ok := contrast.ParseColor(background); !ok {
		s.logger.Warn("unparseable color treated as black", "color", background)
	}
	return r
}

// MeetsAAContrast reports whether the pair passes AA for normal or large text.
func (s *ValidationService) MeetsAAContrast(foreground, background string, largeText bool) bool {
	return contrast.MeetsAA(foreground, background, largeText)
}
