// Package rules is the compiled-in catalog of per-component accessibility
// rules: required behaviors, keyboard interactions, known violation patterns
// and reference snippets, keyed by component type.
package rules

import (
	"slices"
	"strings"

	"github.com/openkraft/a11ykraft/internal/domain"
)

// declared holds the catalog in declaration order. Issues are emitted in
// this order, so it must stay stable.
var declared = []domain.ComponentRule{
	buttonRule,
	linkRule,
	inputRule,
	selectRule,
	checkboxRule,
	radioGroupRule,
	switchRule,
	sliderRule,
	tabsRule,
	modalRule,
	dropdownRule,
	accordionRule,
	tooltipRule,
	navigationRule,
	breadcrumbRule,
	paginationRule,
	alertRule,
	toastRule,
	progressRule,
	tableRule,
	imageRule,
}

var byName = func() map[string]int {
	idx := make(map[string]int, len(declared))
	for i, r := range declared {
		if _, dup := idx[r.Component]; dup {
			panic("rules: duplicate component " + r.Component)
		}
		idx[r.Component] = i
	}
	return idx
}()

func clone(r domain.ComponentRule) domain.ComponentRule {
	r.Criteria = slices.Clone(r.Criteria)
	r.Requirements = slices.Clone(r.Requirements)
	r.Keyboard = slices.Clone(r.Keyboard)
	vs := make([]domain.Violation, len(r.Violations))
	for i, v := range r.Violations {
		v.Criteria = slices.Clone(v.Criteria)
		vs[i] = v
	}
	r.Violations = vs
	return r
}

// For returns the rule for component. The bool is false for unregistered
// component types, which callers treat as "no catalog data".
func For(component string) (domain.ComponentRule, bool) {
	i, ok := byName[component]
	if !ok {
		return domain.ComponentRule{}, false
	}
	return clone(declared[i]), true
}

// Has reports whether component has a registered rule.
func Has(component string) bool {
	_, ok := byName[component]
	return ok
}

// Lookup resolves component case-insensitively and returns the canonical
// registered name.
func Lookup(component string) (string, bool) {
	if _, ok := byName[component]; ok {
		return component, true
	}
	for _, r := range declared {
		if strings.EqualFold(r.Component, component) {
			return r.Component, true
		}
	}
	return "", false
}

// All returns every rule in declaration order.
func All() []domain.ComponentRule {
	out := make([]domain.ComponentRule, len(declared))
	for i, r := range declared {
		out[i] = clone(r)
	}
	return out
}

// Components returns the registered component names, sorted.
func Components() []string {
	out := make([]string, 0, len(declared))
	for _, r := range declared {
		out = append(out, r.Component)
	}
	slices.Sort(out)
	return out
}

// ComponentsForCriterion returns the components whose rule references
// criterion id, in declaration order.
func ComponentsForCriterion(id string) []string {
	var out []string
	for _, r := range declared {
		if slices.Contains(r.Criteria, id) {
			out = append(out, r.Component)
		}
	}
	return out
}

// AllViolations flattens the violation definitions of every component.
func AllViolations() []domain.Violation {
	var out []domain.Violation
	for _, r := range declared {
		out = append(out, clone(r).Violations...)
	}
	return out
}

// ViolationsBySeverity returns the violation definitions of severity s.
func ViolationsBySeverity(s domain.Severity) []domain.Violation {
	var out []domain.Violation
	for _, v := range AllViolations() {
		if v.Severity == s {
			out = append(out, v)
		}
	}
	return out
}

// KeyboardRequirements returns the keyboard interactions expected of
// component, or nil when it is not registered.
func KeyboardRequirements(component string) []domain.KeyboardRequirement {
	r, ok := For(component)
	if !ok {
		return nil
	}
	return r.Keyboard
}

// Examples returns the compliant/non-compliant snippet pair for component.
func Examples(component string) (domain.CodeExample, bool) {
	i, ok := byName[component]
	if !ok {
		return domain.CodeExample{}, false
	}
	return declared[i].Examples, true
}
