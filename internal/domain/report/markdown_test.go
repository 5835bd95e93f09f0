package report_test

import (
	"strings"
	"testing"

	"github.com/openkraft/a11ykraft/internal/domain"
	"github.com/openkraft/a11ykraft/internal/domain/report"
	"github.com/stretchr/testify/assert"
)

func TestFormatMarkdown_FailingReport(t *testing.T) {
	r := validate("Button", `<div onClick={handleClick}>Save</div>`, domain.LevelAA)
	md := report.FormatMarkdown(r)

	assert.True(t, strings.HasPrefix(md, "# Accessibility Report: Button\n"))
	assert.Contains(t, md, "**Status:** FAILED")
	assert.Contains(t, md, "**Score:** 0/100 (F)")
	assert.Contains(t, md, "## Issues (")
	assert.Contains(t, md, "### [CRITICAL] Button has no accessible name")
	assert.Contains(t, md, "**Fix:**")
	assert.Contains(t, md, "```\n<button type=\"button\" aria-label=\"Close dialog\"")
	assert.Equal(t, len(r.Issues), strings.Count(md, "```\n<button type="), "one snippet per issue")
	assert.Contains(t, md, "## Recommendations")
	assert.Contains(t, md, "| Key | Action | Required | Implemented |")
	assert.Contains(t, md, "| Enter | Activates the button | Yes | Yes |")
	assert.Contains(t, md, "## Screen Reader Notes")
}

func TestFormatMarkdown_CleanReport(t *testing.T) {
	md := report.FormatMarkdown(validate("Button", cleanButton, domain.LevelAA))

	assert.Contains(t, md, "**Status:** PASSED")
	assert.Contains(t, md, "No critical or serious issues found.")
	assert.NotContains(t, md, "## Warnings")
	assert.Contains(t, md, "## Applicable WCAG Criteria")
}

func TestFormatMarkdown_UnknownComponentNote(t *testing.T) {
	md := report.FormatMarkdown(validate("Widget", "<div/>", domain.LevelAA))
	assert.Contains(t, md, `No catalog rules exist for "Widget"`)
	assert.Contains(t, md, report.FallbackScreenReaderNotes)
}

func TestFormatScanMarkdown(t *testing.T) {
	reports := []domain.Report{
		validate("Button", cleanButton, domain.LevelAA),
		validate("Button", `<div onClick={x}>Go</div>`, domain.LevelAA),
	}
	scan := domain.ProjectScan{
		Root:       "/tmp/app",
		Level:      domain.LevelAA,
		CommitHash: "abc1234",
		Reports:    reports,
		Summary:    report.Summarize(reports),
	}
	md := report.FormatScanMarkdown(scan)

	assert.Contains(t, md, "# Accessibility Scan")
	assert.Contains(t, md, "**Commit:** `abc1234`")
	assert.Contains(t, md, "**Components:** 2 (1 passed, 1 failed)")
	assert.Contains(t, md, "## Top Issues")
	assert.Equal(t, 2, strings.Count(md, "## Accessibility Report: Button"))
}
