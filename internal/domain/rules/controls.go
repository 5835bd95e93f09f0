package rules

import "github.com/openkraft/a11ykraft/internal/domain"

var buttonRule = domain.ComponentRule{
	Component:  "Button",
	Criteria:   []string{"1.1.1", "1.4.3", "1.4.11", "2.1.1", "2.4.3", "2.4.7", "2.5.3", "2.5.8", "4.1.2"},
	PatternURL: apgBase + "button/",
	Requirements: []domain.Requirement{
		{ID: "button-accessible-name", Description: "Has an accessible name from text, aria-label or aria-labelledby", Severity: domain.SeverityCritical, Kind: domain.RequirementAccessibleName, Automated: true, TestMethod: "Inspect the accessibility tree for a non-empty name"},
		{ID: "button-role", Description: "Exposes the button role through <button> or role=\"button\"", Severity: domain.SeverityCritical, Kind: domain.RequirementSemanticRole, Automated: true, TestMethod: "Confirm the element is a native button or carries role=\"button\""},
		{ID: "button-keyboard-operable", Description: "Activates with Enter and Space", Severity: domain.SeveritySerious, Kind: domain.RequirementKeyboard, Automated: true, TestMethod: "Focus the button and press Enter and Space"},
		focusVisibleRequirement("button-focus-visible"),
		{ID: "button-toggle-state", Description: "Toggle buttons expose aria-pressed", Severity: domain.SeverityModerate, Kind: domain.RequirementManual, Automated: false, TestMethod: "For toggle buttons, confirm aria-pressed flips between true and false"},
		{ID: "button-target-size", Description: "Pointer target is at least 24 by 24 CSS pixels", Severity: domain.SeverityMinor, Kind: domain.RequirementManual, Automated: false, TestMethod: "Measure the rendered hit area"},
	},
	Keyboard: []domain.KeyboardRequirement{
		{Key: "Enter", Action: "Activates the button", Required: true},
		{Key: "Space", Action: "Activates the button", Required: true},
		{Key: "Tab", Action: "Moves focus to and from the button", Required: true},
	},
	ScreenReaderNotes: "Announced as \"<name>, button\". Toggle buttons add \"pressed\" or \"not pressed\". Disabled buttons are announced as \"dimmed\" or \"unavailable\"; prefer aria-disabled when the button must stay focusable.",
	Violations: []domain.Violation{
		{ID: "button-no-accessible-name", Kind: domain.ViolationMissingAccessibleName, Description: "Button has no accessible name", Severity: domain.SeverityCritical, Remediation: "Give the button visible text or add aria-label/aria-labelledby; icon-only buttons always need aria-label.", Criteria: []string{"4.1.2", "1.1.1"}},
		{ID: "button-non-semantic", Kind: domain.ViolationNonSemanticClickable, Description: "Clickable element is not a button", Severity: domain.SeverityCritical, Remediation: "Use a native <button> element, or add role=\"button\" and tabIndex={0} to the custom element.", Criteria: []string{"4.1.2", "2.1.1"}},
		{ID: "button-no-keyboard", Kind: domain.ViolationMissingKeyboardHandler, Description: "Custom button cannot be activated from the keyboard", Severity: domain.SeveritySerious, Remediation: "Handle Enter and Space in onKeyDown, or switch to a native <button> which does this for free.", Criteria: []string{"2.1.1"}},
		outlineRemoved("button"),
		positiveTabIndex("button"),
	},
	Examples: domain.CodeExample{
		Compliant: `<button type="button" aria-label="Close dialog" className="focus-visible:ring-2" onClick={onClose}>
  <XIcon aria-hidden="true" />
</button>`,
		NonCompliant: `<div className="btn" onClick={onClose}>
  <XIcon />
</div>`,
	},
}

var linkRule = domain.ComponentRule{
	Component:  "Link",
	Criteria:   []string{"1.1.1", "1.4.1", "2.1.1", "2.4.4", "2.4.7", "2.4.9", "2.5.3", "3.2.1", "4.1.2"},
	PatternURL: apgBase + "link/",
	Requirements: []domain.Requirement{
		{ID: "link-accessible-name", Description: "Link purpose is available from its text or aria-label", Severity: domain.SeveritySerious, Kind: domain.RequirementAccessibleName, Automated: true, TestMethod: "Read the link name out of context"},
		{ID: "link-role", Description: "Uses <a href> or role=\"link\"", Severity: domain.SeveritySerious, Kind: domain.RequirementLinkRole, Automated: true, TestMethod: "Confirm an anchor with href or role=\"link\" is rendered"},
		focusVisibleRequirement("link-focus-visible"),
		{ID: "link-distinguishable", Description: "Links are distinguishable from body text without relying on color", Severity: domain.SeverityModerate, Kind: domain.RequirementManual, Automated: false, TestMethod: "View in grayscale and confirm underline or other non-color cue"},
	},
	Keyboard: []domain.KeyboardRequirement{
		{Key: "Enter", Action: "Follows the link", Required: true},
		{Key: "Tab", Action: "Moves focus to and from the link", Required: true},
	},
	ScreenReaderNotes: "Announced as \"link, <name>\" and listed in the screen reader's links list, so the name must make sense out of context. Links that open a new tab should say so in their name.",
	Violations: []domain.Violation{
		{ID: "link-no-href", Kind: domain.ViolationLinkWithoutHref, Description: "Anchor without href is used as a click target", Severity: domain.SeveritySerious, Remediation: "Provide an href for navigation, or use a <button> when the element performs an action.", Criteria: []string{"2.1.1", "4.1.2"}},
		{ID: "link-no-accessible-name", Kind: domain.ViolationMissingAccessibleName, Description: "Link has no accessible name", Severity: domain.SeveritySerious, Remediation: "Add descriptive link text or aria-label; image links need alt text on the image.", Criteria: []string{"2.4.4", "4.1.2"}},
		{ID: "link-new-window-unannounced", Kind: domain.ViolationNewWindowUnannounced, Description: "Link opens a new window without warning", Severity: domain.SeverityMinor, Remediation: "Append \"(opens in new tab)\" to the link text or aria-label.", Criteria: []string{"3.2.1"}},
		outlineRemoved("link"),
	},
	Examples: domain.CodeExample{
		Compliant:    `<a href="/pricing" target="_blank" rel="noopener" aria-label="Pricing (opens in new tab)" className="underline focus-visible:ring-2">Pricing</a>`,
		NonCompliant: `<a onClick={() => navigate("/pricing")}>Click here</a>`,
	},
}

var inputRule = domain.ComponentRule{
	Component:  "Input",
	Criteria:   []string{"1.3.1", "1.3.5", "1.4.3", "1.4.11", "2.4.6", "2.4.7", "3.3.1", "3.3.2", "3.3.3", "4.1.2", "4.1.3"},
	PatternURL: "https://www.w3.org/WAI/tutorials/forms/labels/",
	Requirements: []domain.Requirement{
		{ID: "input-label", Description: "Has a programmatically associated label", Severity: domain.SeverityCritical, Kind: domain.RequirementAccessibleName, Automated: true, TestMethod: "Confirm <label htmlFor>, aria-label or aria-labelledby is present"},
		{ID: "input-role", Description: "Uses a native input or textarea element", Severity: domain.SeveritySerious, Kind: domain.RequirementSemanticRole, Automated: true, TestMethod: "Confirm <input>, <textarea> or role=\"textbox\" is rendered"},
		focusVisibleRequirement("input-focus-visible"),
		{ID: "input-error-state", Description: "Marks invalid values with aria-invalid and links the message", Severity: domain.SeverityModerate, Kind: domain.RequirementState, Automated: true, TestMethod: "Submit an invalid value and confirm aria-invalid=\"true\" plus aria-describedby"},
		{ID: "input-autocomplete", Description: "Personal data fields declare an autocomplete token", Severity: domain.SeverityMinor, Kind: domain.RequirementManual, Automated: false, TestMethod: "Check autocomplete on name, email, address and phone fields"},
	},
	Keyboard: []domain.KeyboardRequirement{
		{Key: "Tab", Action: "Moves focus into and out of the field", Required: true},
		{Key: "Enter", Action: "Submits the enclosing form", Required: false},
	},
	ScreenReaderNotes: "Announced as \"<label>, edit text\" followed by the value and any description. Required fields add \"required\"; invalid fields add \"invalid entry\" and should read the error message through aria-describedby.",
	Violations: []domain.Violation{
		{ID: "input-no-label", Kind: domain.ViolationMissingLabel, Description: "Form field has no associated label", Severity: domain.SeverityCritical, Remediation: "Add <label htmlFor={id}> matching the input id, or aria-labelledby pointing at visible label text.", Criteria: []string{"1.3.1", "3.3.2", "4.1.2"}},
		{ID: "input-placeholder-label", Kind: domain.ViolationPlaceholderAsLabel, Description: "Placeholder is used as the only label", Severity: domain.SeveritySerious, Remediation: "Keep a persistent visible label; placeholders disappear on input and are not reliably announced.", Criteria: []string{"3.3.2", "1.3.1"}},
		{ID: "input-error-not-associated", Kind: domain.ViolationErrorNotAssociated, Description: "Error message is not associated with the field", Severity: domain.SeveritySerious, Remediation: "Set aria-invalid=\"true\" and reference the error text with aria-describedby.", Criteria: []string{"3.3.1", "4.1.3"}},
		outlineRemoved("input"),
	},
	Examples: domain.CodeExample{
		Compliant: `<label htmlFor="email">Email</label>
<input id="email" type="email" autoComplete="email" aria-invalid={!!error} aria-describedby="email-error" className="focus-visible:ring-2" />
{error && <p id="email-error" role="alert">{error}</p>}`,
		NonCompliant: `<input type="email" placeholder="Email" />
{error && <p className="text-red">{error}</p>}`,
	},
}

var selectRule = domain.ComponentRule{
	Component:  "Select",
	Criteria:   []string{"1.3.1", "1.3.5", "2.1.1", "2.1.2", "2.4.6", "2.4.7", "3.2.1", "3.2.2", "3.3.2", "4.1.2"},
	PatternURL: apgBase + "combobox/",
	Requirements: []domain.Requirement{
		{ID: "select-label", Description: "Has an associated label", Severity: domain.SeverityCritical, Kind: domain.RequirementAccessibleName, Automated: true, TestMethod: "Confirm label association or aria-label"},
		{ID: "select-role", Description: "Uses <select> or the combobox/listbox roles", Severity: domain.SeveritySerious, Kind: domain.RequirementSemanticRole, Automated: true, TestMethod: "Confirm native select or role=\"combobox\" with a role=\"listbox\" popup"},
		{ID: "select-keyboard", Description: "Opens and moves through options with arrow keys", Severity: domain.SeveritySerious, Kind: domain.RequirementKeyboard, Automated: true, TestMethod: "Press Down Arrow, Up Arrow, Enter and Escape"},
		{ID: "select-expanded-state", Description: "Exposes open/closed state with aria-expanded", Severity: domain.SeverityModerate, Kind: domain.RequirementState, Automated: true, TestMethod: "Toggle the popup and watch aria-expanded"},
		focusVisibleRequirement("select-focus-visible"),
	},
	Keyboard: []domain.KeyboardRequirement{
		{Key: "ArrowDown", Action: "Opens the list or moves to the next option", Required: true},
		{Key: "ArrowUp", Action: "Moves to the previous option", Required: true},
		{Key: "Enter", Action: "Selects the highlighted option", Required: true},
		{Key: "Escape", Action: "Closes the list without changing the value", Required: true},
		{Key: "Home", Action: "Moves to the first option", Required: false},
		{Key: "End", Action: "Moves to the last option", Required: false},
	},
	ScreenReaderNotes: "Native selects are announced as \"<label>, combo box, <value>\". Custom comboboxes must announce expanded/collapsed and the active option through aria-activedescendant or by moving focus.",
	Violations: []domain.Violation{
		{ID: "select-no-label", Kind: domain.ViolationMissingLabel, Description: "Select has no associated label", Severity: domain.SeverityCritical, Remediation: "Associate a <label> or add aria-labelledby.", Criteria: []string{"1.3.1", "4.1.2"}},
		{ID: "select-custom-no-role", Kind: domain.ViolationMissingPopupRole, Description: "Custom select lacks combobox and listbox roles", Severity: domain.SeveritySerious, Remediation: "Use a native <select>, or give the trigger role=\"combobox\" and the popup role=\"listbox\" with role=\"option\" children.", Criteria: []string{"4.1.2"}},
		{ID: "select-no-expanded", Kind: domain.ViolationMissingExpandedState, Description: "Custom select does not expose aria-expanded", Severity: domain.SeverityModerate, Remediation: "Toggle aria-expanded on the trigger when the list opens and closes.", Criteria: []string{"4.1.2"}},
		{ID: "select-no-escape", Kind: domain.ViolationMissingEscapeHandler, Description: "Open list cannot be closed with Escape", Severity: domain.SeverityModerate, Remediation: "Close the popup on Escape and return focus to the trigger.", Criteria: []string{"2.1.2"}},
	},
	Examples: domain.CodeExample{
		Compliant: `<label htmlFor="country">Country</label>
<select id="country" className="focus-visible:ring-2" value={country} onChange={e => setCountry(e.target.value)}>
  <option value="ca">Canada</option>
</select>`,
		NonCompliant: `<div className="select" onClick={toggle}>{country}</div>
{open && <ul>{options.map(o => <li onClick={() => pick(o)}>{o}</li>)}</ul>}`,
	},
}

var checkboxRule = domain.ComponentRule{
	Component:  "Checkbox",
	Criteria:   []string{"1.3.1", "1.4.11", "2.1.1", "2.4.7", "2.5.3", "3.2.2", "3.3.2", "4.1.2"},
	PatternURL: apgBase + "checkbox/",
	Requirements: []domain.Requirement{
		{ID: "checkbox-label", Description: "Has an associated label", Severity: domain.SeverityCritical, Kind: domain.RequirementAccessibleName, Automated: true, TestMethod: "Confirm label association or aria-label"},
		{ID: "checkbox-role", Description: "Uses <input type=\"checkbox\"> or role=\"checkbox\"", Severity: domain.SeveritySerious, Kind: domain.RequirementSemanticRole, Automated: true, TestMethod: "Inspect the rendered role"},
		{ID: "checkbox-checked-state", Description: "Exposes checked state (aria-checked or native checked)", Severity: domain.SeveritySerious, Kind: domain.RequirementState, Automated: true, TestMethod: "Toggle and confirm the state is announced"},
		focusVisibleRequirement("checkbox-focus-visible"),
	},
	Keyboard: []domain.KeyboardRequirement{
		{Key: "Space", Action: "Toggles the checkbox", Required: true},
		{Key: "Tab", Action: "Moves focus to and from the checkbox", Required: true},
	},
	ScreenReaderNotes: "Announced as \"<label>, checkbox, checked/not checked\". Mixed state is announced as \"half checked\" when aria-checked=\"mixed\".",
	Violations: []domain.Violation{
		{ID: "checkbox-no-label", Kind: domain.ViolationMissingLabel, Description: "Checkbox has no associated label", Severity: domain.SeverityCritical, Remediation: "Wrap the input in a <label> or associate one with htmlFor.", Criteria: []string{"1.3.1", "4.1.2"}},
		{ID: "checkbox-no-checked-state", Kind: domain.ViolationMissingCheckedState, Description: "Custom checkbox does not expose its checked state", Severity: domain.SeveritySerious, Remediation: "Use a native checkbox input, or set role=\"checkbox\" with aria-checked.", Criteria: []string{"4.1.2"}},
		{ID: "checkbox-non-semantic", Kind: domain.ViolationNonSemanticClickable, Description: "Clickable element is not a checkbox", Severity: domain.SeverityCritical, Remediation: "Render <input type=\"checkbox\"> or add role=\"checkbox\" and tabIndex={0}.", Criteria: []string{"4.1.2", "2.1.1"}},
	},
	Examples: domain.CodeExample{
		Compliant: `<label>
  <input type="checkbox" className="focus-visible:ring-2" checked={accepted} onChange={toggle} /> Accept terms
</label>`,
		NonCompliant: `<div className={accepted ? "box checked" : "box"} onClick={toggle} /> Accept terms`,
	},
}

var radioGroupRule = domain.ComponentRule{
	Component:  "RadioGroup",
	Criteria:   []string{"1.3.1", "1.4.11", "2.1.1", "2.4.6", "2.4.7", "3.2.2", "3.3.2", "4.1.2"},
	PatternURL: apgBase + "radio/",
	Requirements: []domain.Requirement{
		{ID: "radiogroup-label", Description: "Group has a label (legend or aria-labelledby)", Severity: domain.SeveritySerious, Kind: domain.RequirementAccessibleName, Automated: true, TestMethod: "Confirm <legend> or aria-labelledby on the group"},
		{ID: "radiogroup-role", Description: "Uses fieldset or role=\"radiogroup\"", Severity: domain.SeveritySerious, Kind: domain.RequirementSemanticRole, Automated: true, TestMethod: "Inspect the group role"},
		{ID: "radiogroup-keyboard", Description: "Arrow keys move selection within the group", Severity: domain.SeveritySerious, Kind: domain.RequirementKeyboard, Automated: true, TestMethod: "Press arrow keys inside the group"},
		{ID: "radiogroup-checked-state", Description: "Exposes which option is checked", Severity: domain.SeveritySerious, Kind: domain.RequirementState, Automated: true, TestMethod: "Confirm checked/aria-checked updates"},
	},
	Keyboard: []domain.KeyboardRequirement{
		{Key: "Tab", Action: "Moves focus into the group to the checked option", Required: true},
		{Key: "ArrowDown", Action: "Checks the next option", Required: true},
		{Key: "ArrowUp", Action: "Checks the previous option", Required: true},
		{Key: "Space", Action: "Checks the focused option", Required: true},
	},
	ScreenReaderNotes: "Announced as \"<group label>, radio group\" on entry, then \"<option>, radio button, 2 of 4, checked\".",
	Violations: []domain.Violation{
		{ID: "radiogroup-no-group", Kind: domain.ViolationMissingGroupRole, Description: "Radio buttons are not grouped", Severity: domain.SeveritySerious, Remediation: "Wrap the radios in <fieldset> with a <legend>, or use role=\"radiogroup\" with aria-labelledby.", Criteria: []string{"1.3.1"}},
		{ID: "radiogroup-no-label", Kind: domain.ViolationMissingLabel, Description: "Radio option has no associated label", Severity: domain.SeverityCritical, Remediation: "Associate a <label> with every radio input.", Criteria: []string{"1.3.1", "4.1.2"}},
		{ID: "radiogroup-no-checked-state", Kind: domain.ViolationMissingCheckedState, Description: "Custom radio does not expose its checked state", Severity: domain.SeveritySerious, Remediation: "Use native radio inputs, or role=\"radio\" with aria-checked.", Criteria: []string{"4.1.2"}},
	},
	Examples: domain.CodeExample{
		Compliant: `<fieldset>
  <legend>Plan</legend>
  <label><input type="radio" name="plan" value="free" /> Free</label>
  <label><input type="radio" name="plan" value="pro" /> Pro</label>
</fieldset>`,
		NonCompliant: `<div>
  <span className="radio" onClick={() => pick("free")} /> Free
  <span className="radio" onClick={() => pick("pro")} /> Pro
</div>`,
	},
}

var switchRule = domain.ComponentRule{
	Component:  "Switch",
	Criteria:   []string{"1.4.1", "1.4.11", "2.1.1", "2.4.7", "2.5.3", "3.2.2", "4.1.2"},
	PatternURL: apgBase + "switch/",
	Requirements: []domain.Requirement{
		{ID: "switch-label", Description: "Has an accessible name", Severity: domain.SeverityCritical, Kind: domain.RequirementAccessibleName, Automated: true, TestMethod: "Confirm label association or aria-label"},
		{ID: "switch-role", Description: "Uses role=\"switch\" or a native checkbox", Severity: domain.SeveritySerious, Kind: domain.RequirementSemanticRole, Automated: true, TestMethod: "Inspect the rendered role"},
		{ID: "switch-checked-state", Description: "Exposes on/off state with aria-checked", Severity: domain.SeveritySerious, Kind: domain.RequirementState, Automated: true, TestMethod: "Toggle and confirm aria-checked flips"},
		{ID: "switch-keyboard", Description: "Toggles with Space", Severity: domain.SeveritySerious, Kind: domain.RequirementKeyboard, Automated: true, TestMethod: "Focus and press Space"},
		focusVisibleRequirement("switch-focus-visible"),
	},
	Keyboard: []domain.KeyboardRequirement{
		{Key: "Space", Action: "Toggles the switch", Required: true},
		{Key: "Enter", Action: "Toggles the switch", Required: false},
		{Key: "Tab", Action: "Moves focus to and from the switch", Required: true},
	},
	ScreenReaderNotes: "Announced as \"<label>, switch, on/off\". Do not convey state only through the track color.",
	Violations: []domain.Violation{
		{ID: "switch-no-state", Kind: domain.ViolationMissingCheckedState, Description: "Switch does not expose its on/off state", Severity: domain.SeveritySerious, Remediation: "Add role=\"switch\" with aria-checked bound to the current value.", Criteria: []string{"4.1.2"}},
		{ID: "switch-no-accessible-name", Kind: domain.ViolationMissingAccessibleName, Description: "Switch has no accessible name", Severity: domain.SeverityCritical, Remediation: "Add aria-label or aria-labelledby pointing at the visible label.", Criteria: []string{"4.1.2"}},
		{ID: "switch-non-semantic", Kind: domain.ViolationNonSemanticClickable, Description: "Clickable element is not a switch", Severity: domain.SeverityCritical, Remediation: "Render a <button role=\"switch\"> or a native checkbox.", Criteria: []string{"4.1.2", "2.1.1"}},
		{ID: "switch-no-keyboard", Kind: domain.ViolationMissingKeyboardHandler, Description: "Switch cannot be toggled from the keyboard", Severity: domain.SeveritySerious, Remediation: "Handle Space (and Enter) in onKeyDown or use a native <button>.", Criteria: []string{"2.1.1"}},
	},
	Examples: domain.CodeExample{
		Compliant:    `<button role="switch" aria-checked={on} aria-labelledby="wifi-label" onClick={toggle} className="focus-visible:ring" />`,
		NonCompliant: `<div className={on ? "switch on" : "switch"} onClick={toggle} />`,
	},
}

var sliderRule = domain.ComponentRule{
	Component:  "Slider",
	Criteria:   []string{"1.4.11", "2.1.1", "2.4.7", "2.5.1", "2.5.7", "2.5.8", "3.3.2", "4.1.2"},
	PatternURL: apgBase + "slider/",
	Requirements: []domain.Requirement{
		{ID: "slider-label", Description: "Has an accessible name", Severity: domain.SeverityCritical, Kind: domain.RequirementAccessibleName, Automated: true, TestMethod: "Confirm aria-label or aria-labelledby"},
		{ID: "slider-role", Description: "Uses <input type=\"range\"> or role=\"slider\"", Severity: domain.SeveritySerious, Kind: domain.RequirementSemanticRole, Automated: true, TestMethod: "Inspect the rendered role"},
		{ID: "slider-keyboard", Description: "Arrow keys change the value", Severity: domain.SeverityCritical, Kind: domain.RequirementKeyboard, Automated: true, TestMethod: "Press arrow, Home and End keys"},
		{ID: "slider-value-state", Description: "Exposes aria-valuenow, aria-valuemin and aria-valuemax", Severity: domain.SeveritySerious, Kind: domain.RequirementManual, Automated: false, TestMethod: "Move the thumb and confirm the value is announced"},
		{ID: "slider-no-drag-only", Description: "Can be set without dragging", Severity: domain.SeverityModerate, Kind: domain.RequirementManual, Automated: false, TestMethod: "Click on the track and confirm the value moves"},
	},
	Keyboard: []domain.KeyboardRequirement{
		{Key: "ArrowRight", Action: "Increases the value by one step", Required: true},
		{Key: "ArrowLeft", Action: "Decreases the value by one step", Required: true},
		{Key: "Home", Action: "Sets the minimum value", Required: true},
		{Key: "End", Action: "Sets the maximum value", Required: true},
		{Key: "PageUp", Action: "Increases the value by a large step", Required: false},
		{Key: "PageDown", Action: "Decreases the value by a large step", Required: false},
	},
	ScreenReaderNotes: "Announced as \"<label>, slider, <value>\". Use aria-valuetext when the raw number is not meaningful (e.g. \"3 of 5 stars\").",
	Violations: []domain.Violation{
		{ID: "slider-no-value", Kind: domain.ViolationMissingValueRange, Description: "Custom slider does not expose its value range", Severity: domain.SeveritySerious, Remediation: "Set aria-valuenow, aria-valuemin and aria-valuemax, or use <input type=\"range\">.", Criteria: []string{"4.1.2"}},
		{ID: "slider-no-keyboard", Kind: domain.ViolationMissingKeyboardHandler, Description: "Slider cannot be adjusted from the keyboard", Severity: domain.SeverityCritical, Remediation: "Handle arrow, Home and End keys in onKeyDown.", Criteria: []string{"2.1.1"}},
		{ID: "slider-no-accessible-name", Kind: domain.ViolationMissingAccessibleName, Description: "Slider has no accessible name", Severity: domain.SeveritySerious, Remediation: "Add aria-label or aria-labelledby.", Criteria: []string{"4.1.2"}},
	},
	Examples: domain.CodeExample{
		Compliant:    `<input type="range" min={0} max={100} value={volume} aria-label="Volume" onChange={e => setVolume(+e.target.value)} />`,
		NonCompliant: `<div className="track" onMouseDown={startDrag}><div className="thumb" style={{ left: volume + "%" }} /></div>`,
	},
}
