package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/openkraft/a11ykraft/internal/domain"
)

const scanMaxRows = 25

// RenderScan formats a project scan: summary box, per-file table (failures
// first) and the most frequent blocking issues.
func RenderScan(scan *domain.ProjectScan) string {
	var b strings.Builder
	s := scan.Summary

	grade := domain.GradeFor(s.AverageScore)
	title := headerStyle.Render("a11ykraft scan")
	root := dimStyle.Render(scan.Root)
	avg := lipgloss.NewStyle().
		Bold(true).
		Foreground(gradeColor(grade)).
		Render(fmt.Sprintf("%d / 100  %s", s.AverageScore, grade))
	stats := dimStyle.Render(fmt.Sprintf("%d components  ·  ", s.TotalComponents)) +
		passStyle.Render(fmt.Sprintf("%d passed", s.PassedComponents)) +
		dimStyle.Render("  ·  ") +
		failStyle.Render(fmt.Sprintf("%d failed", s.FailedComponents))
	meta := faintStyle.Render(fmt.Sprintf("WCAG %s  ·  %s", scan.Level, shortHash(scan.CommitHash)))

	b.WriteString(boxStyle.Render(title + "\n" + root + "\n\n" + avg + "\n" + stats + "\n" + meta))
	b.WriteString("\n\n")

	if len(scan.Reports) == 0 {
		b.WriteString("  " + dimStyle.Render("No component files found.") + "\n\n")
		return b.String()
	}

	renderScanTable(&b, scan.Reports)
	renderSeverityCounts(&b, s.IssuesBySeverity)
	renderTopIssues(&b, s.TopIssues)

	b.WriteString("\n")
	return b.String()
}

func renderScanTable(b *strings.Builder, reports []domain.Report) {
	rows := make([]domain.Report, 0, len(reports))
	for _, r := range reports {
		if !r.Passed {
			rows = append(rows, r)
		}
	}
	for _, r := range reports {
		if r.Passed {
			rows = append(rows, r)
		}
	}

	hdr := fmt.Sprintf("  %-36s %-12s %-10s %5s  %s", "File", "Component", "", "Score", "Status")
	b.WriteString(titleStyle.Render(hdr) + "\n")
	b.WriteString("  " + faintStyle.Render(strings.Repeat("─", 76)) + "\n")

	shown := min(len(rows), scanMaxRows)
	for _, r := range rows[:shown] {
		status := passStyle.Render("pass")
		if !r.Passed {
			status = failStyle.Render(fmt.Sprintf("fail (%d)", len(r.Issues)))
		}
		file := r.File
		if file == "" {
			file = r.Component
		}
		fmt.Fprintf(b, "  %s %s %s %5d  %s\n",
			dimStyle.Render(truncateOrPad(file, 36)),
			truncateOrPad(r.Component, 12),
			coloredBar(r.Score, 10),
			r.Score,
			status,
		)
	}
	if remaining := len(rows) - shown; remaining > 0 {
		b.WriteString(faintStyle.Render(fmt.Sprintf("  (%d more components)\n", remaining)))
	}
	b.WriteString("\n")
}

func renderSeverityCounts(b *strings.Builder, counts map[domain.Severity]int) {
	var parts []string
	for _, sev := range domain.ValidSeverities {
		if n := counts[sev]; n > 0 {
			parts = append(parts, severityStyles[sev].Render(fmt.Sprintf("%d %s", n, sev)))
		}
	}
	if len(parts) == 0 {
		b.WriteString("  " + passStyle.Render("No findings.") + "\n")
		return
	}
	b.WriteString("  " + titleStyle.Render("Findings") + "  " + strings.Join(parts, "  ") + "\n")
}

func renderTopIssues(b *strings.Builder, top []domain.IssueFrequency) {
	if len(top) == 0 {
		return
	}
	b.WriteString("\n  " + sectionStyle.Render("Top Issues") + "\n")
	for i, t := range top {
		fmt.Fprintf(b, "    %d. %s %s\n", i+1, t.Title,
			dimStyle.Render(fmt.Sprintf("×%d  %s", t.Count, strings.Join(t.Components, ", "))))
	}
}

// RenderHistory formats scan history for terminal output.
func RenderHistory(entries []domain.ScanEntry) string {
	if len(entries) == 0 {
		return "  " + dimStyle.Render("No scan history found.") + "\n"
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString("  " + titleStyle.Render("Scan History") + "\n")
	b.WriteString("  " + faintStyle.Render(strings.Repeat("─", 56)) + "\n\n")

	for i, e := range entries {
		date := e.Timestamp
		if len(date) > 10 {
			date = date[:10]
		}
		scoreStyled := lipgloss.NewStyle().
			Foreground(scoreColor(e.AverageScore)).
			Render(fmt.Sprintf("%3d/100", e.AverageScore))

		line := fmt.Sprintf("  %s  %s  %s  %s",
			dimStyle.Render(padRight(date, 10)),
			faintStyle.Render(shortHash(e.CommitHash)),
			scoreStyled,
			dimStyle.Render(fmt.Sprintf("%d/%d passed", e.Passed, e.Total)),
		)

		if i > 0 {
			diff := e.AverageScore - entries[i-1].AverageScore
			if diff > 0 {
				line += "  " + passStyle.Render(fmt.Sprintf("↑%d", diff))
			} else if diff < 0 {
				line += "  " + failStyle.Render(fmt.Sprintf("↓%d", -diff))
			}
		}

		b.WriteString(line)
		b.WriteString("\n")
	}

	return b.String()
}
