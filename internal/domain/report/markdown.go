package report

import (
	"fmt"
	"strings"

	"github.com/openkraft/a11ykraft/internal/domain"
)

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}

func escapeCell(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}

// FormatMarkdown renders r as a Markdown document.
func FormatMarkdown(r domain.Report) string {
	var b strings.Builder
	writeReport(&b, r, "#")
	return b.String()
}

func writeReport(b *strings.Builder, r domain.Report, h string) {
	status := "FAILED"
	if r.Passed {
		status = "PASSED"
	}
	fmt.Fprintf(b, "%s Accessibility Report: %s\n\n", h, r.Component)
	if r.File != "" {
		fmt.Fprintf(b, "**File:** `%s`  \n", r.File)
	}
	fmt.Fprintf(b, "**Status:** %s  \n", status)
	fmt.Fprintf(b, "**Score:** %d/100 (%s)  \n", r.Score, r.Grade())
	fmt.Fprintf(b, "**WCAG Level:** %s  \n", r.Level)
	if !r.GeneratedAt.IsZero() {
		fmt.Fprintf(b, "**Generated:** %s\n", r.GeneratedAt.Format("2006-01-02 15:04:05 MST"))
	}
	b.WriteString("\n")

	if !r.Coverage.CatalogFound {
		fmt.Fprintf(b, "> No catalog rules exist for %q; only generic checks ran.\n\n", r.Component)
	}

	fmt.Fprintf(b, "%s# Issues (%d)\n\n", h, len(r.Issues))
	if len(r.Issues) == 0 {
		b.WriteString("No critical or serious issues found.\n\n")
	}
	for _, i := range r.Issues {
		fmt.Fprintf(b, "%s## [%s] %s\n\n", h, strings.ToUpper(string(i.Severity)), i.Title)
		if i.Description != i.Title {
			fmt.Fprintf(b, "%s\n\n", i.Description)
		}
		if len(i.Criteria) > 0 {
			fmt.Fprintf(b, "**WCAG:** %s  \n", strings.Join(i.Criteria, ", "))
		}
		fmt.Fprintf(b, "**Fix:** %s\n\n", i.Remediation)
		if i.Example != "" {
			fmt.Fprintf(b, "```\n%s\n```\n\n", strings.TrimRight(i.Example, "\n"))
		}
	}

	if len(r.Warnings) > 0 {
		fmt.Fprintf(b, "%s# Warnings (%d)\n\n", h, len(r.Warnings))
		for _, w := range r.Warnings {
			fmt.Fprintf(b, "- **[%s]** %s: %s\n", w.Severity, w.Title, w.Remediation)
		}
		b.WriteString("\n")
	}

	if len(r.Recommendations) > 0 {
		fmt.Fprintf(b, "%s# Recommendations\n\n", h)
		for _, rec := range r.Recommendations {
			fmt.Fprintf(b, "- %s\n", rec)
		}
		b.WriteString("\n")
	}

	if len(r.Keyboard) > 0 {
		fmt.Fprintf(b, "%s# Keyboard Support\n\n", h)
		b.WriteString("| Key | Action | Required | Implemented |\n")
		b.WriteString("|-----|--------|----------|-------------|\n")
		for _, k := range r.Keyboard {
			fmt.Fprintf(b, "| %s | %s | %s | %s |\n", escapeCell(k.Key), escapeCell(k.Action), yesNo(k.Required), yesNo(k.Implemented))
		}
		b.WriteString("\n")
	}

	fmt.Fprintf(b, "%s# Screen Reader Notes\n\n%s\n\n", h, r.ScreenReaderNotes)

	if len(r.Criteria) > 0 {
		fmt.Fprintf(b, "%s# Applicable WCAG Criteria\n\n", h)
		for _, c := range r.Criteria {
			fmt.Fprintf(b, "- %s %s (%s)\n", c.ID, c.Name, c.Level)
		}
		b.WriteString("\n")
	}
}

// FormatScanMarkdown renders a project scan: the summary followed by each
// component report.
func FormatScanMarkdown(scan domain.ProjectScan) string {
	var b strings.Builder
	s := scan.Summary
	b.WriteString("# Accessibility Scan\n\n")
	fmt.Fprintf(&b, "**Project:** `%s`  \n", scan.Root)
	fmt.Fprintf(&b, "**WCAG Level:** %s  \n", scan.Level)
	if scan.CommitHash != "" {
		fmt.Fprintf(&b, "**Commit:** `%s`  \n", scan.CommitHash)
	}
	fmt.Fprintf(&b, "**Components:** %d (%d passed, %d failed)  \n", s.TotalComponents, s.PassedComponents, s.FailedComponents)
	fmt.Fprintf(&b, "**Average Score:** %d/100 (%s)\n\n", s.AverageScore, domain.GradeFor(s.AverageScore))

	b.WriteString("## Findings by Severity\n\n")
	b.WriteString("| Severity | Count |\n|----------|-------|\n")
	for _, sev := range domain.ValidSeverities {
		fmt.Fprintf(&b, "| %s | %d |\n", sev, s.IssuesBySeverity[sev])
	}
	b.WriteString("\n")

	if len(s.TopIssues) > 0 {
		b.WriteString("## Top Issues\n\n")
		for i, f := range s.TopIssues {
			fmt.Fprintf(&b, "%d. %s (%d; %s)\n", i+1, f.Title, f.Count, strings.Join(f.Components, ", "))
		}
		b.WriteString("\n")
	}

	for _, r := range scan.Reports {
		writeReport(&b, r, "##")
	}
	return b.String()
}
