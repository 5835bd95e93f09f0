package rules

import "github.com/openkraft/a11ykraft/internal/domain"

var tabsRule = domain.ComponentRule{
	Component:  "Tabs",
	Criteria:   []string{"1.3.1", "2.1.1", "2.4.3", "2.4.7", "4.1.2"},
	PatternURL: apgBase + "tabs/",
	Requirements: []domain.Requirement{
		{ID: "tabs-roles", Description: "Uses tablist, tab and tabpanel roles", Severity: domain.SeverityCritical, Kind: domain.RequirementSemanticRole, Automated: true, TestMethod: "Inspect roles on the list, each tab and each panel"},
		{ID: "tabs-selected-state", Description: "Active tab carries aria-selected=\"true\"", Severity: domain.SeveritySerious, Kind: domain.RequirementState, Automated: true, TestMethod: "Switch tabs and confirm aria-selected moves"},
		{ID: "tabs-keyboard", Description: "Arrow keys move between tabs", Severity: domain.SeveritySerious, Kind: domain.RequirementKeyboard, Automated: true, TestMethod: "Focus the tablist and press Left/Right Arrow"},
		{ID: "tabs-label", Description: "Tablist has an accessible name", Severity: domain.SeverityModerate, Kind: domain.RequirementAccessibleName, Automated: true, TestMethod: "Confirm aria-label or aria-labelledby on the tablist"},
		focusVisibleRequirement("tabs-focus-visible"),
		{ID: "tabs-roving-tabindex", Description: "Only the active tab is in the tab sequence", Severity: domain.SeverityModerate, Kind: domain.RequirementManual, Automated: false, TestMethod: "Tab into the tablist, then Tab again and confirm focus goes to the panel"},
	},
	Keyboard: []domain.KeyboardRequirement{
		{Key: "Enter", Action: "Activates the focused tab", Required: true},
		{Key: "Space", Action: "Activates the focused tab", Required: true},
		{Key: "ArrowRight", Action: "Moves focus to the next tab", Required: true},
		{Key: "ArrowLeft", Action: "Moves focus to the previous tab", Required: true},
		{Key: "Home", Action: "Moves focus to the first tab", Required: false},
		{Key: "End", Action: "Moves focus to the last tab", Required: false},
		{Key: "Tab", Action: "Moves focus from the active tab into the panel", Required: true},
	},
	ScreenReaderNotes: "Announced as \"<name>, tab, 2 of 4, selected\". The panel is announced as \"<tab name>, tab panel\" when it is labelled by its tab through aria-labelledby.",
	Violations: []domain.Violation{
		{ID: "tabs-no-roles", Kind: domain.ViolationMissingTabRoles, Description: "Tabs do not use the tablist/tab/tabpanel roles", Severity: domain.SeverityCritical, Remediation: "Add role=\"tablist\" to the container, role=\"tab\" to each trigger and role=\"tabpanel\" to each panel.", Criteria: []string{"4.1.2", "1.3.1"}},
		{ID: "tabs-no-selected", Kind: domain.ViolationMissingSelectedState, Description: "Active tab is not marked with aria-selected", Severity: domain.SeveritySerious, Remediation: "Set aria-selected={isActive} on every tab.", Criteria: []string{"4.1.2"}},
		{ID: "tabs-no-arrow-keys", Kind: domain.ViolationMissingKeyboardHandler, Description: "Tabs cannot be switched with arrow keys", Severity: domain.SeveritySerious, Remediation: "Handle ArrowLeft/ArrowRight (and Home/End) in onKeyDown on the tablist and move focus with a roving tabindex.", Criteria: []string{"2.1.1"}},
		{ID: "tabs-no-controls", Kind: domain.ViolationMissingControlsRelation, Description: "Tabs are not linked to their panels", Severity: domain.SeverityModerate, Remediation: "Set aria-controls on each tab to its panel id and aria-labelledby on the panel.", Criteria: []string{"1.3.1"}},
	},
	Examples: domain.CodeExample{
		Compliant: `<div role="tablist" aria-label="Settings" onKeyDown={onArrow}>
  <button role="tab" id="t-general" aria-selected={tab === "general"} aria-controls="p-general" tabIndex={tab === "general" ? 0 : -1} className="focus-visible:ring-2">General</button>
</div>
<div role="tabpanel" id="p-general" aria-labelledby="t-general">...</div>`,
		NonCompliant: `<div className="tabs">
  <span className={tab === "general" ? "active" : ""} onClick={() => setTab("general")}>General</span>
</div>`,
	},
}

var modalRule = domain.ComponentRule{
	Component:  "Modal",
	Criteria:   []string{"1.3.1", "2.1.1", "2.1.2", "2.4.3", "2.4.7", "2.4.11", "4.1.2"},
	PatternURL: apgBase + "dialog-modal/",
	Requirements: []domain.Requirement{
		{ID: "modal-role", Description: "Uses <dialog> or role=\"dialog\"/\"alertdialog\"", Severity: domain.SeverityCritical, Kind: domain.RequirementSemanticRole, Automated: true, TestMethod: "Inspect the dialog role"},
		{ID: "modal-label", Description: "Dialog has an accessible name", Severity: domain.SeveritySerious, Kind: domain.RequirementAccessibleName, Automated: true, TestMethod: "Confirm aria-labelledby pointing at the title, or aria-label"},
		{ID: "modal-keyboard", Description: "Closes with Escape and keeps Tab inside the dialog", Severity: domain.SeverityCritical, Kind: domain.RequirementKeyboard, Automated: true, TestMethod: "Open the dialog, Tab past the last control and press Escape"},
		{ID: "modal-state", Description: "Marks the dialog with aria-modal=\"true\"", Severity: domain.SeverityModerate, Kind: domain.RequirementState, Automated: true, TestMethod: "Confirm aria-modal on the dialog element"},
		{ID: "modal-return-focus", Description: "Returns focus to the trigger when closed", Severity: domain.SeveritySerious, Kind: domain.RequirementManual, Automated: false, TestMethod: "Close the dialog and confirm focus lands back on the opener"},
	},
	Keyboard: []domain.KeyboardRequirement{
		{Key: "Escape", Action: "Closes the dialog", Required: true},
		{Key: "Tab", Action: "Moves focus to the next control inside the dialog, wrapping at the end", Required: true},
		{Key: "Shift+Tab", Action: "Moves focus to the previous control inside the dialog, wrapping at the start", Required: true},
	},
	ScreenReaderNotes: "Announced as \"<title>, dialog\" when focus moves inside. Content behind the dialog must be inert or aria-hidden so virtual cursor users cannot wander out.",
	Violations: []domain.Violation{
		{ID: "modal-no-role", Kind: domain.ViolationMissingDialogRole, Description: "Modal does not expose a dialog role", Severity: domain.SeverityCritical, Remediation: "Use the native <dialog> element or add role=\"dialog\" to the container.", Criteria: []string{"4.1.2", "1.3.1"}},
		{ID: "modal-no-label", Kind: domain.ViolationMissingDialogLabel, Description: "Dialog has no accessible name", Severity: domain.SeveritySerious, Remediation: "Point aria-labelledby at the dialog title.", Criteria: []string{"4.1.2"}},
		{ID: "modal-no-focus-trap", Kind: domain.ViolationMissingFocusTrap, Description: "Focus can leave the open dialog", Severity: domain.SeverityCritical, Remediation: "Trap Tab and Shift+Tab inside the dialog (focus-trap, inert, or <dialog>.showModal()).", Criteria: []string{"2.4.3", "2.1.2"}},
		{ID: "modal-no-escape", Kind: domain.ViolationMissingEscapeHandler, Description: "Dialog cannot be closed with Escape", Severity: domain.SeveritySerious, Remediation: "Close on Escape in onKeyDown and restore focus to the trigger.", Criteria: []string{"2.1.1", "2.1.2"}},
		{ID: "modal-no-aria-modal", Kind: domain.ViolationMissingModalState, Description: "Dialog is not marked modal", Severity: domain.SeverityModerate, Remediation: "Add aria-modal=\"true\" so assistive technology hides background content.", Criteria: []string{"4.1.2"}},
	},
	Examples: domain.CodeExample{
		Compliant: `<div role="dialog" aria-modal="true" aria-labelledby="confirm-title" onKeyDown={e => e.key === "Escape" && onClose()}>
  <FocusTrap>
    <h2 id="confirm-title">Delete project?</h2>
    <button onClick={onClose}>Cancel</button>
  </FocusTrap>
</div>`,
		NonCompliant: `<div className="overlay">
  <div className="modal"><h2>Delete project?</h2><span onClick={onClose}>x</span></div>
</div>`,
	},
}

var dropdownRule = domain.ComponentRule{
	Component:  "Dropdown",
	Criteria:   []string{"1.3.1", "1.4.13", "2.1.1", "2.1.2", "2.4.3", "2.4.7", "4.1.2"},
	PatternURL: apgBase + "menu-button/",
	Requirements: []domain.Requirement{
		{ID: "dropdown-trigger-name", Description: "Trigger has an accessible name", Severity: domain.SeveritySerious, Kind: domain.RequirementAccessibleName, Automated: true, TestMethod: "Inspect the trigger name"},
		{ID: "dropdown-roles", Description: "Uses menu/menuitem or listbox/option roles", Severity: domain.SeveritySerious, Kind: domain.RequirementSemanticRole, Automated: true, TestMethod: "Inspect the popup and item roles"},
		{ID: "dropdown-expanded-state", Description: "Trigger exposes aria-expanded", Severity: domain.SeveritySerious, Kind: domain.RequirementState, Automated: true, TestMethod: "Open and close the menu and watch aria-expanded"},
		{ID: "dropdown-keyboard", Description: "Opens with Enter/Space/ArrowDown and closes with Escape", Severity: domain.SeveritySerious, Kind: domain.RequirementKeyboard, Automated: true, TestMethod: "Operate the menu from the keyboard only"},
		focusVisibleRequirement("dropdown-focus-visible"),
	},
	Keyboard: []domain.KeyboardRequirement{
		{Key: "Enter", Action: "Opens the menu or activates the focused item", Required: true},
		{Key: "Space", Action: "Opens the menu or activates the focused item", Required: true},
		{Key: "ArrowDown", Action: "Opens the menu and moves to the next item", Required: true},
		{Key: "ArrowUp", Action: "Moves to the previous item", Required: true},
		{Key: "Escape", Action: "Closes the menu and returns focus to the trigger", Required: true},
		{Key: "Tab", Action: "Moves focus to the trigger", Required: true},
	},
	ScreenReaderNotes: "Trigger is announced as \"<name>, menu button, collapsed\". Items are announced as \"<item>, menu item, 1 of 5\".",
	Violations: []domain.Violation{
		{ID: "dropdown-no-expanded", Kind: domain.ViolationMissingExpandedState, Description: "Trigger does not expose aria-expanded", Severity: domain.SeveritySerious, Remediation: "Set aria-expanded={open} and aria-haspopup=\"menu\" on the trigger.", Criteria: []string{"4.1.2"}},
		{ID: "dropdown-no-popup-role", Kind: domain.ViolationMissingPopupRole, Description: "Popup does not use a menu or listbox role", Severity: domain.SeveritySerious, Remediation: "Add role=\"menu\" to the popup and role=\"menuitem\" to each item.", Criteria: []string{"4.1.2", "1.3.1"}},
		{ID: "dropdown-no-escape", Kind: domain.ViolationMissingEscapeHandler, Description: "Open menu cannot be closed with Escape", Severity: domain.SeverityModerate, Remediation: "Close on Escape and return focus to the trigger.", Criteria: []string{"2.1.2", "1.4.13"}},
		{ID: "dropdown-hover-only", Kind: domain.ViolationHoverOnlyTrigger, Description: "Menu opens only on mouse hover", Severity: domain.SeveritySerious, Remediation: "Open the menu on click and from the keyboard, not only onMouseEnter.", Criteria: []string{"2.1.1", "1.4.13"}},
	},
	Examples: domain.CodeExample{
		Compliant: `<button aria-label="Options" aria-haspopup="menu" aria-expanded={open} className="focus-visible:ring-2" onClick={toggle} onKeyDown={e => (e.key === "Escape" ? close() : onKey(e))}>Options</button>
{open && <ul role="menu">{items.map(i => <li role="menuitem" key={i.id}>{i.label}</li>)}</ul>}`,
		NonCompliant: `<div onMouseEnter={() => setOpen(true)}>Options</div>
{open && <ul>{items.map(i => <li>{i.label}</li>)}</ul>}`,
	},
}

var accordionRule = domain.ComponentRule{
	Component:  "Accordion",
	Criteria:   []string{"1.3.1", "2.1.1", "2.4.6", "2.4.7", "4.1.2"},
	PatternURL: apgBase + "accordion/",
	Requirements: []domain.Requirement{
		{ID: "accordion-role", Description: "Headers are buttons inside heading elements", Severity: domain.SeveritySerious, Kind: domain.RequirementSemanticRole, Automated: true, TestMethod: "Confirm each header is a <button> (or role=\"button\")"},
		{ID: "accordion-expanded-state", Description: "Header buttons expose aria-expanded", Severity: domain.SeveritySerious, Kind: domain.RequirementState, Automated: true, TestMethod: "Toggle a section and watch aria-expanded"},
		{ID: "accordion-keyboard", Description: "Headers toggle with Enter and Space", Severity: domain.SeveritySerious, Kind: domain.RequirementKeyboard, Automated: true, TestMethod: "Focus a header and press Enter and Space"},
		focusVisibleRequirement("accordion-focus-visible"),
		{ID: "accordion-heading-level", Description: "Header buttons are wrapped in headings of the right level", Severity: domain.SeverityMinor, Kind: domain.RequirementManual, Automated: false, TestMethod: "Check the heading outline"},
	},
	Keyboard: []domain.KeyboardRequirement{
		{Key: "Enter", Action: "Expands or collapses the section", Required: true},
		{Key: "Space", Action: "Expands or collapses the section", Required: true},
		{Key: "Tab", Action: "Moves focus to the next header or focusable panel content", Required: true},
		{Key: "ArrowDown", Action: "Moves focus to the next header", Required: false},
		{Key: "ArrowUp", Action: "Moves focus to the previous header", Required: false},
	},
	ScreenReaderNotes: "Headers are announced as \"<title>, button, collapsed/expanded\" and appear in the headings list when wrapped in h2-h6.",
	Violations: []domain.Violation{
		{ID: "accordion-no-expanded", Kind: domain.ViolationMissingExpandedState, Description: "Header does not expose aria-expanded", Severity: domain.SeveritySerious, Remediation: "Set aria-expanded={open} on each header button.", Criteria: []string{"4.1.2"}},
		{ID: "accordion-non-semantic", Kind: domain.ViolationNonSemanticClickable, Description: "Clickable header is not a button", Severity: domain.SeverityCritical, Remediation: "Render each header as <h3><button>...</button></h3>.", Criteria: []string{"4.1.2", "2.1.1"}},
		{ID: "accordion-no-controls", Kind: domain.ViolationMissingControlsRelation, Description: "Header is not linked to its panel", Severity: domain.SeverityModerate, Remediation: "Set aria-controls on the header button to the panel id.", Criteria: []string{"1.3.1"}},
	},
	Examples: domain.CodeExample{
		Compliant: `<h3>
  <button aria-expanded={open} aria-controls="faq-1" className="focus-visible:ring-2" onClick={toggle}>Shipping</button>
</h3>
<div id="faq-1" hidden={!open}>...</div>`,
		NonCompliant: `<div className="accordion-header" onClick={toggle}>Shipping</div>
{open && <div>...</div>}`,
	},
}

var tooltipRule = domain.ComponentRule{
	Component:  "Tooltip",
	Criteria:   []string{"1.3.1", "1.4.13", "2.1.1", "4.1.2"},
	PatternURL: apgBase + "tooltip/",
	Requirements: []domain.Requirement{
		{ID: "tooltip-role", Description: "Tooltip element has role=\"tooltip\"", Severity: domain.SeverityModerate, Kind: domain.RequirementSemanticRole, Automated: true, TestMethod: "Inspect the popup role"},
		{ID: "tooltip-keyboard", Description: "Appears on focus and dismisses with Escape", Severity: domain.SeveritySerious, Kind: domain.RequirementKeyboard, Automated: true, TestMethod: "Tab to the trigger, confirm the tooltip shows, press Escape"},
		{ID: "tooltip-hoverable", Description: "Pointer can move onto the tooltip without it closing", Severity: domain.SeverityModerate, Kind: domain.RequirementManual, Automated: false, TestMethod: "Hover the trigger then move onto the tooltip"},
	},
	Keyboard: []domain.KeyboardRequirement{
		{Key: "Tab", Action: "Focusing the trigger shows the tooltip", Required: true},
		{Key: "Escape", Action: "Dismisses the tooltip", Required: true},
	},
	ScreenReaderNotes: "Tooltip text is read as the trigger's description after its name when linked through aria-describedby. Never put interactive content inside a tooltip.",
	Violations: []domain.Violation{
		{ID: "tooltip-not-described", Kind: domain.ViolationTooltipNotDescribed, Description: "Tooltip is not associated with its trigger", Severity: domain.SeveritySerious, Remediation: "Give the tooltip an id and reference it from the trigger with aria-describedby.", Criteria: []string{"1.3.1", "4.1.2"}},
		{ID: "tooltip-hover-only", Kind: domain.ViolationHoverOnlyTrigger, Description: "Tooltip appears only on mouse hover", Severity: domain.SeveritySerious, Remediation: "Show the tooltip on onFocus as well as onMouseEnter.", Criteria: []string{"2.1.1", "1.4.13"}},
		{ID: "tooltip-no-escape", Kind: domain.ViolationMissingEscapeHandler, Description: "Tooltip cannot be dismissed with Escape", Severity: domain.SeverityModerate, Remediation: "Hide the tooltip on Escape without moving focus.", Criteria: []string{"1.4.13"}},
	},
	Examples: domain.CodeExample{
		Compliant: `<button aria-describedby="tip-save" onFocus={show} onBlur={hide} onMouseEnter={show} onMouseLeave={hide} onKeyDown={e => e.key === "Escape" && hide()}>Save</button>
<div role="tooltip" id="tip-save" hidden={!visible}>Saves a draft</div>`,
		NonCompliant: `<span onMouseEnter={show} onMouseLeave={hide}>?</span>
{visible && <div className="tooltip">Saves a draft</div>}`,
	},
}

var navigationRule = domain.ComponentRule{
	Component:  "Navigation",
	Criteria:   []string{"1.3.1", "2.4.1", "2.4.4", "2.4.5", "3.2.3", "3.2.4", "4.1.2"},
	PatternURL: apgBase + "landmarks/",
	Requirements: []domain.Requirement{
		{ID: "navigation-landmark", Description: "Uses <nav> or role=\"navigation\"", Severity: domain.SeveritySerious, Kind: domain.RequirementSemanticRole, Automated: true, TestMethod: "Confirm the navigation landmark is present"},
		{ID: "navigation-label", Description: "Landmark is labelled when more than one exists", Severity: domain.SeverityModerate, Kind: domain.RequirementAccessibleName, Automated: true, TestMethod: "Confirm aria-label on each nav landmark"},
		{ID: "navigation-current-state", Description: "Current page link carries aria-current=\"page\"", Severity: domain.SeverityModerate, Kind: domain.RequirementState, Automated: true, TestMethod: "Navigate and confirm aria-current moves"},
		{ID: "navigation-consistent", Description: "Appears in the same order across pages", Severity: domain.SeverityMinor, Kind: domain.RequirementManual, Automated: false, TestMethod: "Compare navigation across several pages"},
	},
	Keyboard: []domain.KeyboardRequirement{
		{Key: "Tab", Action: "Moves through the navigation links", Required: true},
		{Key: "Enter", Action: "Follows the focused link", Required: true},
	},
	ScreenReaderNotes: "Landmark is announced as \"<label>, navigation\" and listed in the landmarks menu. The current link reads as \"current page\".",
	Violations: []domain.Violation{
		{ID: "navigation-no-landmark", Kind: domain.ViolationMissingNavLandmark, Description: "Navigation is not exposed as a landmark", Severity: domain.SeveritySerious, Remediation: "Wrap the links in <nav aria-label=\"Main\">.", Criteria: []string{"1.3.1", "2.4.1"}},
		{ID: "navigation-no-current", Kind: domain.ViolationMissingCurrentIndicator, Description: "Current page is not indicated programmatically", Severity: domain.SeverityModerate, Remediation: "Set aria-current=\"page\" on the active link.", Criteria: []string{"1.3.1"}},
		outlineRemoved("navigation"),
	},
	Examples: domain.CodeExample{
		Compliant: `<nav aria-label="Main">
  <a href="/" aria-current={path === "/" ? "page" : undefined}>Home</a>
</nav>`,
		NonCompliant: `<div className="menu">
  <a href="/" className={path === "/" ? "active" : ""}>Home</a>
</div>`,
	},
}

var breadcrumbRule = domain.ComponentRule{
	Component:  "Breadcrumb",
	Criteria:   []string{"1.3.1", "2.4.4", "4.1.2"},
	PatternURL: apgBase + "breadcrumb/",
	Requirements: []domain.Requirement{
		{ID: "breadcrumb-landmark", Description: "Wrapped in <nav> with an ordered list", Severity: domain.SeveritySerious, Kind: domain.RequirementSemanticRole, Automated: true, TestMethod: "Inspect the landmark and list structure"},
		{ID: "breadcrumb-label", Description: "Landmark is labelled \"Breadcrumb\"", Severity: domain.SeverityModerate, Kind: domain.RequirementAccessibleName, Automated: true, TestMethod: "Confirm aria-label on the nav"},
		{ID: "breadcrumb-current-state", Description: "Last item carries aria-current=\"page\"", Severity: domain.SeverityModerate, Kind: domain.RequirementState, Automated: true, TestMethod: "Confirm aria-current on the final item"},
	},
	Keyboard: []domain.KeyboardRequirement{
		{Key: "Tab", Action: "Moves through the breadcrumb links", Required: true},
		{Key: "Enter", Action: "Follows the focused link", Required: true},
	},
	ScreenReaderNotes: "Announced as \"Breadcrumb, navigation, list, 3 items\". Separators should be CSS or aria-hidden so they are not read between items.",
	Violations: []domain.Violation{
		{ID: "breadcrumb-no-landmark", Kind: domain.ViolationMissingNavLandmark, Description: "Breadcrumb trail is not a navigation landmark", Severity: domain.SeveritySerious, Remediation: "Wrap the trail in <nav aria-label=\"Breadcrumb\"><ol>...</ol></nav>.", Criteria: []string{"1.3.1"}},
		{ID: "breadcrumb-no-current", Kind: domain.ViolationMissingCurrentIndicator, Description: "Current page is not marked", Severity: domain.SeverityMinor, Remediation: "Add aria-current=\"page\" to the last item.", Criteria: []string{"1.3.1"}},
	},
	Examples: domain.CodeExample{
		Compliant: `<nav aria-label="Breadcrumb">
  <ol><li><a href="/">Home</a></li><li><a href="/docs" aria-current="page">Docs</a></li></ol>
</nav>`,
		NonCompliant: `<div className="crumbs"><a href="/">Home</a> / <span>Docs</span></div>`,
	},
}

var paginationRule = domain.ComponentRule{
	Component:  "Pagination",
	Criteria:   []string{"1.3.1", "2.4.4", "2.4.7", "2.5.8", "4.1.2"},
	PatternURL: "https://www.w3.org/WAI/tutorials/menus/",
	Requirements: []domain.Requirement{
		{ID: "pagination-landmark", Description: "Wrapped in a labelled <nav>", Severity: domain.SeverityModerate, Kind: domain.RequirementSemanticRole, Automated: true, TestMethod: "Confirm <nav aria-label=\"Pagination\">"},
		{ID: "pagination-label", Description: "Page links have descriptive names", Severity: domain.SeveritySerious, Kind: domain.RequirementAccessibleName, Automated: true, TestMethod: "Confirm names like \"Page 3\" or \"Next page\""},
		{ID: "pagination-current-state", Description: "Current page carries aria-current=\"page\"", Severity: domain.SeverityModerate, Kind: domain.RequirementState, Automated: true, TestMethod: "Confirm aria-current on the active page"},
		focusVisibleRequirement("pagination-focus-visible"),
	},
	Keyboard: []domain.KeyboardRequirement{
		{Key: "Tab", Action: "Moves through page links", Required: true},
		{Key: "Enter", Action: "Opens the focused page", Required: true},
	},
	ScreenReaderNotes: "Announced as \"Pagination, navigation\". Icon-only previous/next controls must carry aria-label, and the active page reads as \"current page\".",
	Violations: []domain.Violation{
		{ID: "pagination-no-current", Kind: domain.ViolationMissingCurrentIndicator, Description: "Active page is only indicated visually", Severity: domain.SeverityModerate, Remediation: "Set aria-current=\"page\" on the active page link.", Criteria: []string{"1.3.1"}},
		{ID: "pagination-no-name", Kind: domain.ViolationMissingAccessibleName, Description: "Previous/next controls have no accessible name", Severity: domain.SeveritySerious, Remediation: "Add aria-label=\"Previous page\" and aria-label=\"Next page\" to icon-only controls.", Criteria: []string{"2.4.4", "4.1.2"}},
		{ID: "pagination-no-landmark", Kind: domain.ViolationMissingNavLandmark, Description: "Pagination is not a navigation landmark", Severity: domain.SeverityMinor, Remediation: "Wrap the controls in <nav aria-label=\"Pagination\">.", Criteria: []string{"1.3.1"}},
	},
	Examples: domain.CodeExample{
		Compliant: `<nav aria-label="Pagination">
  <a href="?page=1" aria-label="Previous page" className="focus-visible:ring-2"><ChevronLeft aria-hidden="true" /></a>
  <a href="?page=2" aria-current="page" className="focus-visible:ring-2">2</a>
</nav>`,
		NonCompliant: `<div><span onClick={prev}>&lt;</span><span className="active">2</span><span onClick={next}>&gt;</span></div>`,
	},
}
