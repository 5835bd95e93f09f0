package check

import (
	"strings"

	"github.com/openkraft/a11ykraft/internal/domain"
	"github.com/openkraft/a11ykraft/internal/domain/analysis"
)

// autoDismissFloorMs is the shortest auto-dismiss delay accepted for
// transient messages.
const autoDismissFloorMs = 5000

// evidence is what every detector sees: the analyzer signals, the raw text
// probes and the catalog rule being evaluated.
type evidence struct {
	signals domain.CodeAnalysis
	text    analysis.Text
	rule    domain.ComponentRule
}

// A detector reports whether a violation is present.
type detector func(e evidence) bool

// A requirementCheck reports whether a requirement is satisfied.
type requirementCheck func(e evidence) bool

var detectors = map[domain.ViolationKind]detector{
	domain.ViolationMissingAccessibleName: func(e evidence) bool {
		return !e.signals.HasAccessibleName && !namedByContent(e.text)
	},
	domain.ViolationNonSemanticClickable: func(e evidence) bool {
		return e.text.HasClickBinding() && !e.signals.HasSemanticRole
	},
	domain.ViolationMissingKeyboardHandler: func(e evidence) bool {
		if needsArrowKeys(e.rule) {
			return !e.text.HasKeyDownBinding() && !nativeComposite(e.text)
		}
		return !e.signals.HasKeyboardSupport && !e.text.HasNativeInteractive()
	},
	domain.ViolationFocusOutlineRemoved: func(e evidence) bool {
		return e.text.RemovesOutline() && !e.signals.HasFocusIndicator
	},
	domain.ViolationMissingFocusIndicator: func(e evidence) bool {
		return !e.signals.HasFocusIndicator && (e.signals.HasSemanticRole || e.text.HasClickBinding())
	},
	domain.ViolationPositiveTabIndex: func(e evidence) bool {
		return e.text.HasPositiveTabIndex()
	},
	domain.ViolationMissingLabel: func(e evidence) bool {
		return !e.text.HasAriaLabel() && !e.text.HasLabelElement()
	},
	domain.ViolationPlaceholderAsLabel: func(e evidence) bool {
		return e.text.HasPlaceholder() && !e.text.HasAriaLabel() && !e.text.HasLabelElement()
	},
	domain.ViolationErrorNotAssociated: func(e evidence) bool {
		return e.text.Mentions("error") && !e.text.HasAttr("aria-describedby") && !e.text.HasAttr("aria-errormessage")
	},
	domain.ViolationMissingAltText: func(e evidence) bool {
		return (e.text.HasImage() || e.text.HasNativeTag("Image")) && !e.text.HasAltText()
	},
	domain.ViolationMissingDialogRole: func(e evidence) bool {
		return !e.text.HasRole("dialog", "alertdialog") && !e.text.HasNativeTag("dialog")
	},
	domain.ViolationMissingDialogLabel: func(e evidence) bool {
		return !e.text.HasAriaLabel()
	},
	domain.ViolationMissingModalState: func(e evidence) bool {
		return !e.text.HasAttr("aria-modal") && !e.text.Mentions("showModal(")
	},
	domain.ViolationMissingFocusTrap: func(e evidence) bool {
		return !e.text.HasFocusTrap()
	},
	domain.ViolationMissingEscapeHandler: func(e evidence) bool {
		return !handlesEscape(e.text) && !e.text.HasNativeTag("select")
	},
	domain.ViolationMissingTabRoles: func(e evidence) bool {
		return !e.text.HasRole("tablist") || !e.text.HasRole("tab")
	},
	domain.ViolationMissingSelectedState: func(e evidence) bool {
		return !e.text.HasAttr("aria-selected")
	},
	domain.ViolationMissingControlsRelation: func(e evidence) bool {
		return !e.text.HasAttr("aria-controls")
	},
	domain.ViolationMissingExpandedState: func(e evidence) bool {
		return !e.text.HasAttr("aria-expanded") && !e.text.HasNativeTag("select") && !e.text.HasNativeTag("details")
	},
	domain.ViolationMissingCheckedState: func(e evidence) bool {
		return !e.text.HasAttr("aria-checked") && !nativeCheckable(e.text)
	},
	domain.ViolationMissingPopupRole: func(e evidence) bool {
		return !e.text.HasRole("menu", "listbox") && !e.text.HasNativeTag("select")
	},
	domain.ViolationMissingLiveRegion: func(e evidence) bool {
		return !e.text.HasLiveRegion()
	},
	domain.ViolationAutoDismissTooFast: func(e evidence) bool {
		ms, ok := e.text.ShortestTimeout()
		return ok && ms < autoDismissFloorMs
	},
	domain.ViolationTooltipNotDescribed: func(e evidence) bool {
		return !e.text.HasAttr("aria-describedby")
	},
	domain.ViolationHoverOnlyTrigger: func(e evidence) bool {
		return e.text.HasHoverBinding() && !e.text.HasFocusHandler() && !e.text.HasClickBinding()
	},
	domain.ViolationMissingValueRange: func(e evidence) bool {
		return !e.text.HasAttr("aria-valuenow") && !nativeRange(e.text)
	},
	domain.ViolationMissingTableHeaders: func(e evidence) bool {
		return !e.text.HasTableHeaders()
	},
	domain.ViolationMissingNavLandmark: func(e evidence) bool {
		return !e.text.HasNativeTag("nav") && !e.text.HasRole("navigation")
	},
	domain.ViolationMissingCurrentIndicator: func(e evidence) bool {
		return !e.text.HasAttr("aria-current")
	},
	domain.ViolationMissingGroupRole: func(e evidence) bool {
		return !e.text.HasNativeTag("fieldset") && !e.text.HasRole("radiogroup", "group")
	},
	domain.ViolationLinkWithoutHref: func(e evidence) bool {
		return e.text.HasAnchor() && !e.text.HasHref()
	},
	domain.ViolationNewWindowUnannounced: func(e evidence) bool {
		return e.text.OpensNewWindow() && !e.text.Mentions("new tab") && !e.text.Mentions("new window")
	},
}

var requirementChecks = map[domain.RequirementKind]requirementCheck{
	domain.RequirementAccessibleName: func(e evidence) bool {
		return e.signals.HasAccessibleName || namedByContent(e.text)
	},
	domain.RequirementSemanticRole: func(e evidence) bool {
		return e.signals.HasSemanticRole
	},
	domain.RequirementKeyboard: func(e evidence) bool {
		return e.signals.HasKeyboardSupport || e.text.HasNativeInteractive()
	},
	domain.RequirementFocusVisible: func(e evidence) bool {
		return e.signals.HasFocusIndicator
	},
	domain.RequirementState: func(e evidence) bool {
		return e.signals.HasAriaStates || e.text.HasAttr("aria-modal") || nativeCheckable(e.text) ||
			nativeRange(e.text) || e.text.HasNativeTag("select") || e.text.HasLiveRegion()
	},
	domain.RequirementLinkRole: func(e evidence) bool {
		return (e.text.HasAnchor() && e.text.HasHref()) || e.text.HasRole("link")
	},
	domain.RequirementTableRole: func(e evidence) bool {
		return e.text.HasNativeTag("table") || e.text.HasRole("table", "grid", "treegrid")
	},
	domain.RequirementManual: func(evidence) bool { return true },
}

// HasDetector reports whether kind is bound to a detector.
func HasDetector(kind domain.ViolationKind) bool {
	_, ok := detectors[kind]
	return ok
}

// HasRequirementCheck reports whether kind is bound to a check.
func HasRequirementCheck(kind domain.RequirementKind) bool {
	_, ok := requirementChecks[kind]
	return ok
}

func needsArrowKeys(rule domain.ComponentRule) bool {
	for _, k := range rule.Keyboard {
		if k.Required && strings.Contains(k.Key, "Arrow") {
			return true
		}
	}
	return false
}

func nativeComposite(t analysis.Text) bool {
	return t.HasNativeTag("select") || nativeRange(t) || t.Mentions(`type="radio"`)
}

func nativeCheckable(t analysis.Text) bool {
	return t.Mentions(`type="checkbox"`) || t.Mentions(`type="radio"`)
}

func nativeRange(t analysis.Text) bool {
	return t.Mentions(`type="range"`) || t.HasNativeTag("progress") || t.HasNativeTag("meter")
}

// namedByContent reports a <caption> or <legend>, which name their table
// or fieldset without any attribute.
func namedByContent(t analysis.Text) bool {
	return t.HasNativeTag("caption") || t.HasNativeTag("legend")
}

func handlesEscape(t analysis.Text) bool {
	return t.HasKeyDownBinding() && t.Mentions("escape")
}
