package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/openkraft/a11ykraft/internal/domain"
)

// ── warm palette ──
var (
	accent    = lipgloss.Color("#D97706") // amber
	fg        = lipgloss.Color("#E8E6E3") // warm light gray
	dim       = lipgloss.Color("#6B7280") // muted gray
	faint     = lipgloss.Color("#3F3F46") // very dim
	success   = lipgloss.Color("#22C55E") // green
	danger    = lipgloss.Color("#EF4444") // red
	warning   = lipgloss.Color("#F59E0B") // amber-yellow
	info      = lipgloss.Color("#8B949E") // soft blue-gray
	lime      = lipgloss.Color("#A3E635")
	orange    = lipgloss.Color("#FB923C")
	skipColor = lipgloss.Color("#4B5563") // dark gray
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(accent).
			Align(lipgloss.Center)

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(accent).
			Padding(1, 4).
			Align(lipgloss.Center).
			Width(68)

	gradeColors = map[string]lipgloss.Color{
		"A+": success,
		"A":  success,
		"B":  lime,
		"C":  warning,
		"D":  orange,
		"F":  danger,
	}

	dimStyle       = lipgloss.NewStyle().Foreground(dim)
	faintStyle     = lipgloss.NewStyle().Foreground(faint)
	passStyle      = lipgloss.NewStyle().Foreground(success)
	failStyle      = lipgloss.NewStyle().Foreground(danger)
	warnStyle      = lipgloss.NewStyle().Foreground(warning)
	skipStyle      = lipgloss.NewStyle().Foreground(skipColor)
	criticalStyle  = lipgloss.NewStyle().Foreground(danger).Bold(true)
	seriousStyle   = lipgloss.NewStyle().Foreground(orange).Bold(true)
	moderateStyle  = lipgloss.NewStyle().Foreground(warning)
	minorStyle     = lipgloss.NewStyle().Foreground(info)
	fileStyle      = lipgloss.NewStyle().Foreground(dim)
	titleStyle     = lipgloss.NewStyle().Bold(true).Foreground(fg)
	sectionStyle   = lipgloss.NewStyle().Bold(true).Foreground(accent)
	hintStyle      = lipgloss.NewStyle().Foreground(dim).Italic(true)
	separatorLine  = faintStyle.Render(strings.Repeat("─", 64))
	severityStyles = map[domain.Severity]lipgloss.Style{
		domain.SeverityCritical: criticalStyle,
		domain.SeveritySerious:  seriousStyle,
		domain.SeverityModerate: moderateStyle,
		domain.SeverityMinor:    minorStyle,
	}
)

// RenderReport formats a single component report for the terminal.
func RenderReport(r domain.Report) string {
	var b strings.Builder

	grade := r.Grade()
	title := headerStyle.Render("a11ykraft")
	name := titleStyle.Render(r.Component)
	if r.File != "" {
		name += "  " + fileStyle.Render(r.File)
	}
	scoreStyled := lipgloss.NewStyle().
		Bold(true).
		Foreground(gradeColor(grade)).
		Render(fmt.Sprintf("%d / 100  %s", r.Score, grade))
	status := passStyle.Render("PASSED")
	if !r.Passed {
		status = failStyle.Render("FAILED")
	}
	level := dimStyle.Render("WCAG " + string(r.Level))

	b.WriteString(boxStyle.Render(title + "\n" + name + "\n\n" + scoreStyled + "  " + status + "  " + level))
	b.WriteString("\n")

	if !r.Coverage.CatalogFound {
		b.WriteString("\n  " + hintStyle.Render(fmt.Sprintf("No catalog rules for %q; only generic checks ran.", r.Component)) + "\n")
	}

	renderFindings(&b, "Issues", r.Issues)
	renderFindings(&b, "Warnings", r.Warnings)
	if len(r.Issues) == 0 && len(r.Warnings) == 0 {
		b.WriteString("\n  " + passStyle.Render("No issues found.") + "\n")
	}

	renderKeyboard(&b, r.Keyboard)

	if len(r.Recommendations) > 0 {
		b.WriteString("\n  " + sectionStyle.Render("Recommendations") + "\n")
		for _, rec := range r.Recommendations {
			b.WriteString("    " + dimStyle.Render("→ "+rec) + "\n")
		}
	}

	if r.Coverage.CatalogFound {
		b.WriteString("\n  " + separatorLine + "\n")
		line := fmt.Sprintf("%d requirements checked", r.Coverage.RequirementsChecked)
		if n := len(r.Coverage.RequirementsUnverified); n > 0 {
			line += fmt.Sprintf("  ·  %d need manual testing", n)
		}
		b.WriteString("  " + faintStyle.Render(line) + "\n")
	}

	b.WriteString("\n")
	return b.String()
}

func renderFindings(b *strings.Builder, title string, findings []domain.Issue) {
	if len(findings) == 0 {
		return
	}
	fmt.Fprintf(b, "\n  %s %s\n", sectionStyle.Render(title), dimStyle.Render(fmt.Sprintf("(%d)", len(findings))))
	for _, f := range findings {
		fmt.Fprintf(b, "    %s %s\n", severityTag(f.Severity), f.Title)
		if len(f.Criteria) > 0 {
			fmt.Fprintf(b, "             %s\n", faintStyle.Render("WCAG "+strings.Join(f.Criteria, ", ")))
		}
		if f.Remediation != "" {
			fmt.Fprintf(b, "             %s\n", dimStyle.Render(f.Remediation))
		}
	}
}

func renderKeyboard(b *strings.Builder, keys []domain.KeyboardCheck) {
	if len(keys) == 0 {
		return
	}
	b.WriteString("\n  " + sectionStyle.Render("Keyboard") + "\n")
	for _, k := range keys {
		icon := passStyle.Render("✔")
		switch {
		case !k.Implemented && k.Required:
			icon = failStyle.Render("✘")
		case !k.Implemented:
			icon = skipStyle.Render("○")
		}
		fmt.Fprintf(b, "    %s %s %s\n", icon, padRight(k.Key, 12), dimStyle.Render(k.Action))
	}
}

func severityTag(s domain.Severity) string {
	style, ok := severityStyles[s]
	if !ok {
		style = dimStyle
	}
	return style.Render(padRight(strings.ToUpper(string(s)), 8))
}

func coloredBar(score, width int) string {
	filled := max(0, min(score*width/100, width))
	empty := width - filled

	color := scoreColor(score)
	filledStr := lipgloss.NewStyle().Foreground(color).Render(strings.Repeat("█", filled))
	emptyStr := lipgloss.NewStyle().Foreground(faint).Render(strings.Repeat("░", empty))
	return filledStr + emptyStr
}

func scoreColor(score int) lipgloss.Color {
	switch {
	case score >= 80:
		return success
	case score >= 60:
		return lime
	case score >= 40:
		return warning
	default:
		return danger
	}
}

func gradeColor(grade string) lipgloss.Color {
	if c, ok := gradeColors[grade]; ok {
		return c
	}
	return fg
}

// padRight pads to a display width; component names and paths may hold
// wide runes.
func padRight(s string, width int) string {
	return runewidth.FillRight(s, width)
}

func truncateOrPad(s string, width int) string {
	if runewidth.StringWidth(s) > width {
		return runewidth.Truncate(s, width, "…")
	}
	return padRight(s, width)
}

func shortHash(hash string) string {
	if hash == "" {
		return "·······"
	}
	if len(hash) > 7 {
		return hash[:7]
	}
	return hash
}
