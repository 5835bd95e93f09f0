package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/openkraft/a11ykraft/internal/domain"
)

// RenderContrast formats a contrast check with a color swatch and one line
// per WCAG threshold.
func RenderContrast(foreground, background string, r domain.ContrastResult) string {
	var b strings.Builder

	swatch := lipgloss.NewStyle().
		Foreground(lipgloss.Color(foreground)).
		Background(lipgloss.Color(background)).
		Padding(0, 2).
		Render("Sample text")
	ratio := lipgloss.NewStyle().Bold(true).Foreground(ratioColor(r)).Render(fmt.Sprintf("%.2f:1", r.Ratio))

	b.WriteString(boxStyle.Render(
		headerStyle.Render("Contrast") + "\n" +
			dimStyle.Render(foreground+" on "+background) + "\n\n" +
			swatch + "\n\n" + ratio))
	b.WriteString("\n\n")

	checks := []struct {
		name   string
		needed string
		ok     bool
	}{
		{"Normal text AA", "4.5:1", r.NormalTextAA},
		{"Normal text AAA", "7:1", r.NormalTextAAA},
		{"Large text AA", "3:1", r.LargeTextAA},
		{"Large text AAA", "4.5:1", r.LargeTextAAA},
		{"UI components AA", "3:1", r.UIComponentAA},
	}
	for _, c := range checks {
		icon := passStyle.Render("✔ pass")
		if !c.ok {
			icon = failStyle.Render("✘ fail")
		}
		fmt.Fprintf(&b, "  %s %s %s\n", padRight(c.name, 18), dimStyle.Render(padRight(c.needed, 6)), icon)
	}
	b.WriteString("\n")
	return b.String()
}

func ratioColor(r domain.ContrastResult) lipgloss.Color {
	switch {
	case r.NormalTextAAA:
		return success
	case r.NormalTextAA:
		return lime
	case r.LargeTextAA:
		return warning
	default:
		return danger
	}
}
