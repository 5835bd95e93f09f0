package rules

import "github.com/openkraft/a11ykraft/internal/domain"

const apgBase = "https://www.w3.org/WAI/ARIA/apg/patterns/"

func outlineRemoved(prefix string) domain.Violation {
	return domain.Violation{
		ID:          prefix + "-outline-removed",
		Kind:        domain.ViolationFocusOutlineRemoved,
		Description: "Focus outline is removed without a replacement focus style",
		Severity:    domain.SeveritySerious,
		Remediation: "Keep the default outline or replace it with a :focus-visible style (ring, border or shadow) with at least 3:1 contrast.",
		Criteria:    []string{"2.4.7", "1.4.11"},
	}
}

func positiveTabIndex(prefix string) domain.Violation {
	return domain.Violation{
		ID:          prefix + "-positive-tabindex",
		Kind:        domain.ViolationPositiveTabIndex,
		Description: "Positive tabindex overrides the natural focus order",
		Severity:    domain.SeverityModerate,
		Remediation: "Use tabIndex={0} to add an element to the tab order or tabIndex={-1} for programmatic focus; reorder the DOM instead of using positive values.",
		Criteria:    []string{"2.4.3"},
	}
}

func focusVisibleRequirement(id string) domain.Requirement {
	return domain.Requirement{
		ID:          id,
		Description: "Shows a visible focus indicator when focused from the keyboard",
		Severity:    domain.SeveritySerious,
		Kind:        domain.RequirementFocusVisible,
		Automated:   true,
		TestMethod:  "Tab to the element and confirm a :focus or :focus-visible style is applied",
	}
}
