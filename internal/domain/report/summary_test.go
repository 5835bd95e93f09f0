package report_test

import (
	"testing"

	"github.com/openkraft/a11ykraft/internal/domain"
	"github.com/openkraft/a11ykraft/internal/domain/report"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func blocking(title string, s domain.Severity) domain.Issue {
	return domain.Issue{Title: title, Severity: s}
}

func TestSummarize_Empty(t *testing.T) {
	s := report.Summarize(nil)
	assert.Zero(t, s.TotalComponents)
	assert.Zero(t, s.AverageScore)
	assert.Empty(t, s.TopIssues)
	assert.Len(t, s.IssuesBySeverity, 4)
}

func TestSummarize_AllClean(t *testing.T) {
	reports := []domain.Report{
		validate("Button", cleanButton, domain.LevelAA),
		validate("Button", cleanButton, domain.LevelAA),
		validate("Button", cleanButton, domain.LevelAA),
	}
	s := report.Summarize(reports)

	assert.Equal(t, 3, s.TotalComponents)
	assert.Equal(t, 3, s.PassedComponents)
	assert.Zero(t, s.FailedComponents)
	assert.Equal(t, 100, s.AverageScore)
	assert.Empty(t, s.TopIssues)
}

func TestSummarize_CountsAndAverage(t *testing.T) {
	reports := []domain.Report{
		{Component: "Button", Score: 75, Issues: []domain.Issue{blocking("No name", domain.SeverityCritical)}},
		{Component: "Tabs", Score: 90, Passed: true, Warnings: []domain.Issue{blocking("Missing aria-controls", domain.SeverityModerate)}},
		{Component: "Modal", Score: 80, Passed: true},
	}
	s := report.Summarize(reports)

	assert.Equal(t, 3, s.TotalComponents)
	assert.Equal(t, 2, s.PassedComponents)
	assert.Equal(t, 1, s.FailedComponents)
	assert.Equal(t, 82, s.AverageScore) // 245 / 3 = 81.67
	assert.Equal(t, 1, s.IssuesBySeverity[domain.SeverityCritical])
	assert.Equal(t, 1, s.IssuesBySeverity[domain.SeverityModerate])
	assert.Zero(t, s.IssuesBySeverity[domain.SeverityMinor])
}

func TestSummarize_TopIssuesStableByCount(t *testing.T) {
	reports := []domain.Report{
		{Component: "Button", Issues: []domain.Issue{
			blocking("A", domain.SeveritySerious),
			blocking("B", domain.SeverityCritical),
		}},
		{Component: "Link", Issues: []domain.Issue{
			blocking("B", domain.SeverityCritical),
			blocking("C", domain.SeveritySerious),
		}},
		{Component: "Button", Issues: []domain.Issue{
			blocking("B", domain.SeverityCritical),
			blocking("D", domain.SeveritySerious),
			blocking("E", domain.SeveritySerious),
			blocking("F", domain.SeveritySerious),
			blocking("G", domain.SeveritySerious),
		}},
	}
	s := report.Summarize(reports)

	require.Len(t, s.TopIssues, report.TopIssueLimit)
	assert.Equal(t, "B", s.TopIssues[0].Title)
	assert.Equal(t, 3, s.TopIssues[0].Count)
	assert.Equal(t, []string{"Button", "Link"}, s.TopIssues[0].Components)

	var rest []string
	for _, f := range s.TopIssues[1:] {
		rest = append(rest, f.Title)
	}
	assert.Equal(t, []string{"A", "C", "D", "E"}, rest)
}

func TestSummarize_TopIssuesSkipWarnings(t *testing.T) {
	reports := []domain.Report{
		{Component: "Tabs", Warnings: []domain.Issue{blocking("Missing aria-controls", domain.SeverityModerate)}},
	}
	assert.Empty(t, report.Summarize(reports).TopIssues)
}
