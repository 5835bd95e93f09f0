package tui_test

import (
	"strings"
	"testing"
	"time"

	"github.com/openkraft/a11ykraft/internal/adapters/outbound/tui"
	"github.com/openkraft/a11ykraft/internal/domain"
	"github.com/stretchr/testify/assert"
)

func sampleReport() domain.Report {
	return domain.Report{
		Component: "Button",
		File:      "src/components/IconButton.tsx",
		Level:     domain.LevelAA,
		Score:     35,
		Passed:    false,
		Issues: []domain.Issue{
			{ID: "button-non-semantic", Severity: domain.SeverityCritical, Title: "Clickable element is not a button",
				Criteria: []string{"4.1.2"}, Remediation: "Use <button>."},
		},
		Warnings: []domain.Issue{
			{ID: "button-positive-tabindex", Severity: domain.SeverityModerate, Title: "Positive tabindex"},
		},
		Recommendations: []string{"Use a native <button> element"},
		Keyboard: []domain.KeyboardCheck{
			{Key: "Enter", Action: "Activates", Required: true, Implemented: true},
			{Key: "Space", Action: "Activates", Required: true, Implemented: false},
		},
		Coverage: domain.Coverage{CatalogFound: true, RequirementsChecked: 4, RequirementsUnverified: []string{"button-target-size"}},
	}
}

func TestRenderReport(t *testing.T) {
	out := tui.RenderReport(sampleReport())
	assert.Contains(t, out, "Button")
	assert.Contains(t, out, "IconButton.tsx")
	assert.Contains(t, out, "35 / 100")
	assert.Contains(t, out, "FAILED")
	assert.Contains(t, out, "CRITICAL")
	assert.Contains(t, out, "Clickable element is not a button")
	assert.Contains(t, out, "WCAG 4.1.2")
	assert.Contains(t, out, "Positive tabindex")
	assert.Contains(t, out, "Space")
	assert.Contains(t, out, "4 requirements checked")
	assert.Contains(t, out, "1 need manual testing")
}

func TestRenderReport_CleanAndUnknown(t *testing.T) {
	out := tui.RenderReport(domain.Report{Component: "Carousel", Score: 100, Passed: true, Level: domain.LevelAA})
	assert.Contains(t, out, "PASSED")
	assert.Contains(t, out, "No issues found.")
	assert.Contains(t, out, `No catalog rules for "Carousel"`)
}

func TestRenderScan(t *testing.T) {
	failing := sampleReport()
	passing := domain.Report{Component: "Modal", File: "src/ConfirmDialog.tsx", Score: 100, Passed: true}
	scan := &domain.ProjectScan{
		Root:       "/work/app",
		Level:      domain.LevelAA,
		CommitHash: "0123456789abcdef",
		Reports:    []domain.Report{passing, failing},
		Summary: domain.Summary{
			TotalComponents: 2, PassedComponents: 1, FailedComponents: 1, AverageScore: 68,
			IssuesBySeverity: map[domain.Severity]int{domain.SeverityCritical: 1, domain.SeverityModerate: 1},
			TopIssues:        []domain.IssueFrequency{{Title: "Clickable element is not a button", Count: 1, Components: []string{"Button"}}},
		},
		ScannedAt: time.Now(),
	}

	out := tui.RenderScan(scan)
	assert.Contains(t, out, "/work/app")
	assert.Contains(t, out, "0123456")
	assert.NotContains(t, out, "0123456789")
	assert.Contains(t, out, "1 passed")
	assert.Contains(t, out, "1 failed")
	assert.Contains(t, out, "1 critical")
	assert.Contains(t, out, "Top Issues")
	assert.Less(t, strings.Index(out, "IconButton.tsx"), strings.Index(out, "ConfirmDialog.tsx"), "failures listed first")
}

func TestRenderScan_Empty(t *testing.T) {
	out := tui.RenderScan(&domain.ProjectScan{Root: "/work/empty"})
	assert.Contains(t, out, "No component files found.")
}

func TestRenderHistory(t *testing.T) {
	out := tui.RenderHistory([]domain.ScanEntry{
		{Timestamp: "2026-10-01T10:00:00Z", CommitHash: "abcdef123456", AverageScore: 60, Total: 5, Passed: 2},
		{Timestamp: "2026-10-02T10:00:00Z", AverageScore: 75, Total: 5, Passed: 4},
		{Timestamp: "2026-10-03T10:00:00Z", AverageScore: 70, Total: 5, Passed: 3},
	})
	assert.Contains(t, out, "2026-10-01")
	assert.Contains(t, out, "abcdef1")
	assert.Contains(t, out, "↑15")
	assert.Contains(t, out, "↓5")
	assert.Contains(t, out, "4/5 passed")

	assert.Contains(t, tui.RenderHistory(nil), "No scan history")
}
