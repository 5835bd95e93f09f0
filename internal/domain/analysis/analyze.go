// Package analysis infers accessibility signals from raw component source
// text. It is a heuristic: nothing is parsed or executed.
package analysis

import "github.com/openkraft/a11ykraft/internal/domain"

// interactive lists component types whose missing signals produce
// suggestions. Static content types are left alone.
var interactive = map[string]bool{
	"Button": true, "Link": true, "Input": true, "Select": true, "Checkbox": true,
	"RadioGroup": true, "Switch": true, "Slider": true, "Tabs": true, "Modal": true,
	"Dropdown": true, "Accordion": true, "Tooltip": true, "Pagination": true,
}

// IsInteractive reports whether component is an interaction-sensitive type.
func IsInteractive(component string) bool { return interactive[component] }

// Analyze runs every signal family over source and fills the
// component-specific missing ARIA attributes and suggestions. It is a pure
// function of its arguments.
func Analyze(component, source string) domain.CodeAnalysis {
	t := NewText(source)
	a := domain.CodeAnalysis{
		Component:          component,
		HasAccessibleName:  t.HasAccessibleNameAttr(),
		HasSemanticRole:    t.HasInteractiveRole() || t.HasNativeInteractive(),
		HasKeyboardSupport: t.HasKeyDownBinding() || t.HasTabIndex(),
		HasFocusIndicator:  t.HasFocusStyle(),
		HasAriaStates:      t.HasAriaState(),
	}
	a.MissingAriaAttributes = missingAria(component, t)
	if interactive[component] {
		a.Suggestions = suggestions(a)
	}
	return a
}

func missingAria(component string, t Text) []string {
	var missing []string
	need := func(attrs ...string) {
		for _, attr := range attrs {
			if !t.HasAttr(attr) {
				missing = append(missing, attr)
			}
		}
	}

	switch component {
	case "Input":
		need("aria-describedby")
		if t.Mentions("error") {
			need("aria-invalid")
		}
	case "Tabs":
		need("aria-controls", "aria-selected")
	case "Modal":
		need("aria-modal", "aria-labelledby")
	case "Dropdown":
		need("aria-expanded", "aria-haspopup")
	case "Accordion":
		need("aria-expanded", "aria-controls")
	case "Switch":
		need("aria-checked")
	case "Checkbox":
		if !isNativeCheckbox(t) {
			need("aria-checked")
		}
	case "Tooltip":
		need("aria-describedby")
	case "Slider":
		if !t.Mentions(`type="range"`) {
			need("aria-valuenow", "aria-valuemin", "aria-valuemax")
		}
	case "Progress":
		if !t.HasNativeTag("progress") {
			need("aria-valuenow")
		}
	case "Select":
		if !t.HasNativeTag("select") {
			need("aria-expanded")
		}
	case "Navigation", "Pagination", "Breadcrumb":
		need("aria-current")
	case "Button":
		if t.Mentions("toggle") {
			need("aria-pressed")
		}
	case "Alert", "Toast":
		if !t.HasRole("alert", "status") {
			need("aria-live")
		}
	}
	return missing
}

func isNativeCheckbox(t Text) bool {
	return t.Mentions(`type="checkbox"`) || t.Mentions(`type='checkbox'`)
}

func suggestions(a domain.CodeAnalysis) []string {
	var out []string
	if !a.HasAccessibleName {
		out = append(out, "Add an accessible name with aria-label, aria-labelledby or an associated <label>")
	}
	if !a.HasSemanticRole {
		out = append(out, "Use a native interactive element or add an appropriate role attribute")
	}
	if !a.HasKeyboardSupport {
		out = append(out, "Add keyboard handling (onKeyDown) or make the element focusable with tabIndex")
	}
	if !a.HasFocusIndicator {
		out = append(out, "Add a visible focus style such as :focus-visible or a focus ring")
	}
	if !a.HasAriaStates {
		out = append(out, "Expose dynamic state with ARIA attributes such as aria-expanded or aria-pressed")
	}
	return out
}
