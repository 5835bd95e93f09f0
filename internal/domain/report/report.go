// Package report turns checker findings into scored reports, rolls reports
// up into summaries and renders them as Markdown.
package report

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/openkraft/a11ykraft/internal/domain"
	"github.com/openkraft/a11ykraft/internal/domain/analysis"
	"github.com/openkraft/a11ykraft/internal/domain/check"
	"github.com/openkraft/a11ykraft/internal/domain/criteria"
)

// FallbackScreenReaderNotes is used when a component has no catalog entry.
const FallbackScreenReaderNotes = "No screen reader guidance is cataloged for this component type. " +
	"Verify with a screen reader that it announces a name, a role and any state changes."

// Score applies the severity deductions to the final issue and warning
// lists, clamped at zero.
func Score(issues, warnings []domain.Issue) int {
	score := 100
	for _, i := range issues {
		score -= i.Severity.Deduction()
	}
	for _, w := range warnings {
		score -= w.Severity.Deduction()
	}
	return max(score, 0)
}

// Passed reports whether issues holds no critical or serious entry.
func Passed(issues []domain.Issue) bool {
	for _, i := range issues {
		if i.Severity.Blocking() {
			return false
		}
	}
	return true
}

// KeyImplemented applies the per-key textual check used by the keyboard
// checklist.
func KeyImplemented(key string, t analysis.Text) bool {
	keyDown := t.HasKeyDownBinding()
	switch {
	case key == "Enter" || key == "Space":
		return t.HasClickBinding() || keyDown
	case key == "Tab":
		return t.HasNativeInteractive() || t.HasTabIndex()
	case strings.Contains(key, "Arrow"):
		return keyDown
	case key == "Escape":
		return keyDown && t.Mentions("escape")
	default:
		return keyDown
	}
}

// KeyboardChecklist annotates keys with what the source appears to implement.
func KeyboardChecklist(keys []domain.KeyboardRequirement, source string) []domain.KeyboardCheck {
	t := analysis.NewText(source)
	out := make([]domain.KeyboardCheck, 0, len(keys))
	for _, k := range keys {
		out = append(out, domain.KeyboardCheck{
			Key:         k.Key,
			Action:      k.Action,
			Required:    k.Required,
			Implemented: KeyImplemented(k.Key, t),
		})
	}
	return out
}

// Build assembles the report for one checked component.
func Build(component, source string, level domain.Level, res check.Result) domain.Report {
	notes := res.Rule.ScreenReaderNotes
	if !res.Coverage.CatalogFound || notes == "" {
		notes = FallbackScreenReaderNotes
	}
	issues := nonNil(res.Issues)
	warnings := nonNil(res.Warnings)

	return domain.Report{
		ID:                uuid.NewString(),
		Component:         component,
		GeneratedAt:       time.Now().UTC(),
		Level:             level,
		Passed:            Passed(issues),
		Score:             Score(issues, warnings),
		Issues:            issues,
		Warnings:          warnings,
		Recommendations:   append([]string{}, res.Analysis.Suggestions...),
		Criteria:          criteria.ApplicableAtLevel(component, level),
		Keyboard:          KeyboardChecklist(res.Rule.Keyboard, source),
		ScreenReaderNotes: notes,
		Coverage:          res.Coverage,
	}
}

func nonNil(issues []domain.Issue) []domain.Issue {
	if issues == nil {
		return []domain.Issue{}
	}
	return issues
}
