// Package check evaluates a component's catalog rule against its source
// text and classifies the findings into blocking issues and warnings.
package check

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/openkraft/a11ykraft/internal/domain"
	"github.com/openkraft/a11ykraft/internal/domain/analysis"
	"github.com/openkraft/a11ykraft/internal/domain/contrast"
	"github.com/openkraft/a11ykraft/internal/domain/criteria"
	"github.com/openkraft/a11ykraft/internal/domain/rules"
)

// Result is the outcome of checking one component.
type Result struct {
	Analysis domain.CodeAnalysis
	Rule     domain.ComponentRule
	Issues   []domain.Issue
	Warnings []domain.Issue
	Coverage domain.Coverage
}

type collector struct {
	res *Result
}

func (c collector) add(issue domain.Issue) {
	if issue.Severity.Blocking() {
		c.res.Issues = append(c.res.Issues, issue)
		return
	}
	c.res.Warnings = append(c.res.Warnings, issue)
}

// Component checks source as an implementation of component at level.
// Unregistered component types produce no catalog findings; analyzer
// warnings still apply.
func Component(component, source string, level domain.Level) Result {
	res := Result{Analysis: analysis.Analyze(component, source)}
	out := collector{res: &res}
	prefix := strings.ToLower(component)

	rule, found := rules.For(component)
	res.Coverage.CatalogFound = found
	if found {
		res.Rule = rule
		ev := evidence{signals: res.Analysis, text: analysis.NewText(source), rule: rule}
		example := rule.Examples.Compliant

		for _, v := range rule.Violations {
			detect, ok := detectors[v.Kind]
			if !ok || !detect(ev) {
				continue
			}
			out.add(domain.Issue{
				ID:          v.ID,
				Component:   component,
				Severity:    v.Severity,
				Criteria:    criteria.FilterIDs(v.Criteria, domain.LevelAAA),
				Title:       v.Description,
				Description: v.Description,
				Remediation: v.Remediation,
				Example:     example,
				Automated:   true,
			})
		}

		for _, req := range rule.Requirements {
			if req.Kind == domain.RequirementManual {
				res.Coverage.RequirementsUnverified = append(res.Coverage.RequirementsUnverified, req.ID)
				continue
			}
			satisfied, ok := requirementChecks[req.Kind]
			if !ok {
				res.Coverage.RequirementsUnverified = append(res.Coverage.RequirementsUnverified, req.ID)
				continue
			}
			res.Coverage.RequirementsChecked++
			if satisfied(ev) {
				continue
			}
			related := criteria.FilterIDs(rule.Criteria, level)
			if len(related) == 0 {
				continue
			}
			out.add(domain.Issue{
				ID:          req.ID,
				Component:   component,
				Severity:    req.Severity,
				Criteria:    related,
				Title:       req.Description,
				Description: fmt.Sprintf("Requirement not met: %s", req.Description),
				Remediation: fmt.Sprintf("Make sure the %s %s. Verify: %s.", component, lowerFirst(req.Description), req.TestMethod),
				Example:     example,
				Automated:   req.Automated,
			})
		}
	}

	for _, attr := range res.Analysis.MissingAriaAttributes {
		out.add(domain.Issue{
			ID:          fmt.Sprintf("%s-missing-%s", prefix, attr),
			Component:   component,
			Severity:    domain.SeverityModerate,
			Criteria:    criteria.FilterIDs([]string{"4.1.2"}, domain.LevelAAA),
			Title:       fmt.Sprintf("Missing %s", attr),
			Description: fmt.Sprintf("%s implementations usually need %s to expose their state or relationships.", component, attr),
			Remediation: fmt.Sprintf("Add %s where it applies.", attr),
			Automated:   true,
			Element:     attr,
		})
	}

	if issue, ok := contrastWarning(component, prefix, source, level); ok {
		out.add(issue)
	}
	return res
}

// contrastWarning flags literal text colors below the AA normal text ratio.
func contrastWarning(component, prefix, source string, level domain.Level) (domain.Issue, bool) {
	if !level.Includes(domain.LevelAA) {
		return domain.Issue{}, false
	}
	fg, bg, ok := analysis.NewText(source).ColorPair()
	if !ok {
		return domain.Issue{}, false
	}
	if _, ok := contrast.ParseColor(fg); !ok {
		return domain.Issue{}, false
	}
	if _, ok := contrast.ParseColor(bg); !ok {
		return domain.Issue{}, false
	}
	r := contrast.Check(fg, bg)
	if r.NormalTextAA {
		return domain.Issue{}, false
	}
	return domain.Issue{
		ID:          prefix + "-low-contrast",
		Component:   component,
		Severity:    domain.SeverityModerate,
		Criteria:    []string{"1.4.3"},
		Title:       "Insufficient text contrast",
		Description: fmt.Sprintf("Text color %s on %s has a contrast ratio of %.2f:1, below %.1f:1.", fg, bg, r.Ratio, contrast.NormalTextAA),
		Remediation: "Darken the text or lighten the background until the ratio reaches 4.5:1 (3:1 for large text).",
		Automated:   true,
		Element:     fg + " on " + bg,
	}, true
}

func lowerFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToLower(r)) + s[size:]
}
