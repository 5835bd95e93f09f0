package tui

import (
	"fmt"
	"strings"

	"github.com/openkraft/a11ykraft/internal/domain"
)

// RenderCriteria formats criteria as a table grouped in catalog order.
func RenderCriteria(list []domain.Criterion) string {
	if len(list) == 0 {
		return "\n  " + dimStyle.Render("No criteria match.") + "\n\n"
	}

	var b strings.Builder
	b.WriteString("\n")
	hdr := fmt.Sprintf("  %-7s %-4s %-40s %-15s %s", "ID", "Lvl", "Name", "Principle", "Since")
	b.WriteString(titleStyle.Render(hdr) + "\n")
	b.WriteString("  " + faintStyle.Render(strings.Repeat("─", 76)) + "\n")

	for _, c := range list {
		fmt.Fprintf(&b, "  %s %s %s %s %s\n",
			padRight(c.ID, 7),
			levelLabel(c.Level),
			truncateOrPad(c.Name, 40),
			dimStyle.Render(padRight(string(c.Principle), 15)),
			faintStyle.Render(c.Version),
		)
	}
	b.WriteString(faintStyle.Render(fmt.Sprintf("\n  %d criteria\n\n", len(list))))
	return b.String()
}

func levelLabel(l domain.Level) string {
	s := padRight(string(l), 4)
	switch l {
	case domain.LevelA:
		return passStyle.Render(s)
	case domain.LevelAA:
		return warnStyle.Render(s)
	default:
		return dimStyle.Render(s)
	}
}

// RenderComponents lists the component types that have catalog rules.
func RenderComponents(names []string) string {
	var b strings.Builder
	b.WriteString("\n  " + titleStyle.Render("Component rules") + "\n")
	b.WriteString("  " + faintStyle.Render(strings.Repeat("─", 40)) + "\n")
	for _, n := range names {
		b.WriteString("    " + n + "\n")
	}
	b.WriteString("\n  " + hintStyle.Render("Run a11ykraft rules <component> for details.") + "\n\n")
	return b.String()
}

// RenderRule formats the catalog entry for one component type.
func RenderRule(rule domain.ComponentRule) string {
	var b strings.Builder

	title := headerStyle.Render(rule.Component)
	criteria := dimStyle.Render("WCAG " + strings.Join(rule.Criteria, ", "))
	body := title + "\n" + criteria
	if rule.PatternURL != "" {
		body += "\n" + faintStyle.Render(rule.PatternURL)
	}
	b.WriteString(boxStyle.Render(body))
	b.WriteString("\n")

	if len(rule.Requirements) > 0 {
		b.WriteString("\n  " + sectionStyle.Render("Requirements") + "\n")
		for _, r := range rule.Requirements {
			mode := passStyle.Render("auto  ")
			if !r.Automated {
				mode = skipStyle.Render("manual")
			}
			fmt.Fprintf(&b, "    %s %s %s\n", severityTag(r.Severity), mode, r.Description)
		}
	}

	renderKeyboardSpec(&b, rule.Keyboard)

	if len(rule.Violations) > 0 {
		b.WriteString("\n  " + sectionStyle.Render("Common violations") + "\n")
		for _, v := range rule.Violations {
			fmt.Fprintf(&b, "    %s %s\n", severityTag(v.Severity), v.Description)
			fmt.Fprintf(&b, "             %s\n", dimStyle.Render(v.Remediation))
		}
	}

	if rule.ScreenReaderNotes != "" {
		b.WriteString("\n  " + sectionStyle.Render("Screen reader") + "\n")
		b.WriteString("    " + dimStyle.Render(rule.ScreenReaderNotes) + "\n")
	}

	b.WriteString("\n")
	return b.String()
}

func renderKeyboardSpec(b *strings.Builder, keys []domain.KeyboardRequirement) {
	if len(keys) == 0 {
		return
	}
	b.WriteString("\n  " + sectionStyle.Render("Keyboard") + "\n")
	for _, k := range keys {
		req := dimStyle.Render("optional")
		if k.Required {
			req = warnStyle.Render("required")
		}
		fmt.Fprintf(b, "    %s %s %s\n", padRight(k.Key, 12), req, dimStyle.Render(k.Action))
	}
}
