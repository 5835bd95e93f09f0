package rules

import "github.com/openkraft/a11ykraft/internal/domain"

var alertRule = domain.ComponentRule{
	Component:  "Alert",
	Criteria:   []string{"1.3.1", "1.4.1", "2.2.1", "3.3.1", "4.1.3"},
	PatternURL: apgBase + "alert/",
	Requirements: []domain.Requirement{
		{ID: "alert-role", Description: "Uses role=\"alert\" or role=\"status\"", Severity: domain.SeveritySerious, Kind: domain.RequirementSemanticRole, Automated: true, TestMethod: "Inspect the live region role"},
		{ID: "alert-live-state", Description: "Is announced without moving focus", Severity: domain.SeveritySerious, Kind: domain.RequirementState, Automated: true, TestMethod: "Trigger the alert with a screen reader running"},
		{ID: "alert-not-color-only", Description: "Conveys severity with text or an icon, not color alone", Severity: domain.SeverityModerate, Kind: domain.RequirementManual, Automated: false, TestMethod: "View in grayscale"},
	},
	Keyboard: []domain.KeyboardRequirement{
		{Key: "Tab", Action: "Reaches any action or dismiss button inside the alert", Required: false},
	},
	ScreenReaderNotes: "role=\"alert\" content is announced immediately and interrupts speech; use role=\"status\" for non-urgent messages. The live region must exist in the DOM before its text changes.",
	Violations: []domain.Violation{
		{ID: "alert-no-live-region", Kind: domain.ViolationMissingLiveRegion, Description: "Alert is not exposed as a live region", Severity: domain.SeveritySerious, Remediation: "Add role=\"alert\" (urgent) or role=\"status\" / aria-live=\"polite\" (informational).", Criteria: []string{"4.1.3"}},
		{ID: "alert-auto-dismiss", Kind: domain.ViolationAutoDismissTooFast, Description: "Alert disappears before it can be read", Severity: domain.SeverityModerate, Remediation: "Keep alerts visible until dismissed or for at least 5 seconds, and let users extend the time.", Criteria: []string{"2.2.1"}},
	},
	Examples: domain.CodeExample{
		Compliant:    `<div role="alert"><ErrorIcon aria-hidden="true" /> Payment failed. Check your card details.</div>`,
		NonCompliant: `<div className="text-red">Payment failed.</div>`,
	},
}

var toastRule = domain.ComponentRule{
	Component:  "Toast",
	Criteria:   []string{"1.4.1", "2.1.1", "2.2.1", "2.2.2", "4.1.3"},
	PatternURL: apgBase + "alert/",
	Requirements: []domain.Requirement{
		{ID: "toast-live-state", Description: "Toast container is a polite live region", Severity: domain.SeveritySerious, Kind: domain.RequirementState, Automated: true, TestMethod: "Trigger a toast with a screen reader running"},
		{ID: "toast-role", Description: "Uses role=\"status\" or role=\"alert\"", Severity: domain.SeverityModerate, Kind: domain.RequirementSemanticRole, Automated: true, TestMethod: "Inspect the container role"},
		{ID: "toast-dismissible", Description: "Dismiss control is keyboard reachable", Severity: domain.SeverityModerate, Kind: domain.RequirementManual, Automated: false, TestMethod: "Tab to the dismiss button and activate it"},
		{ID: "toast-pause", Description: "Timer pauses on hover and focus", Severity: domain.SeverityModerate, Kind: domain.RequirementManual, Automated: false, TestMethod: "Hover and focus the toast and confirm it stays"},
	},
	Keyboard: []domain.KeyboardRequirement{
		{Key: "Tab", Action: "Reaches the toast action or dismiss button", Required: false},
		{Key: "Escape", Action: "Dismisses the toast", Required: false},
	},
	ScreenReaderNotes: "Toasts are read out by the live region politely after the current utterance. Avoid putting the only copy of important actions in a toast, since it vanishes.",
	Violations: []domain.Violation{
		{ID: "toast-no-live-region", Kind: domain.ViolationMissingLiveRegion, Description: "Toast is not announced", Severity: domain.SeveritySerious, Remediation: "Render toasts inside a persistent role=\"status\" aria-live=\"polite\" container.", Criteria: []string{"4.1.3"}},
		{ID: "toast-auto-dismiss", Kind: domain.ViolationAutoDismissTooFast, Description: "Toast dismisses itself in under 5 seconds", Severity: domain.SeverityModerate, Remediation: "Use at least 5000 ms, pause on hover/focus, and provide a dismiss button.", Criteria: []string{"2.2.1"}},
	},
	Examples: domain.CodeExample{
		Compliant: `<div role="status" aria-live="polite">
  {toasts.map(t => <div key={t.id}>{t.message}<button aria-label="Dismiss" onClick={() => dismiss(t.id)}>x</button></div>)}
</div>`,
		NonCompliant: `useEffect(() => { setTimeout(hide, 2000) }, [])
return <div className="toast">{message}</div>`,
	},
}

var progressRule = domain.ComponentRule{
	Component:  "Progress",
	Criteria:   []string{"1.1.1", "1.3.1", "1.4.11", "4.1.2", "4.1.3"},
	PatternURL: apgBase + "meter/",
	Requirements: []domain.Requirement{
		{ID: "progress-role", Description: "Uses <progress> or role=\"progressbar\"", Severity: domain.SeveritySerious, Kind: domain.RequirementSemanticRole, Automated: true, TestMethod: "Inspect the role"},
		{ID: "progress-label", Description: "Has an accessible name", Severity: domain.SeverityModerate, Kind: domain.RequirementAccessibleName, Automated: true, TestMethod: "Confirm aria-label or aria-labelledby"},
		{ID: "progress-value-state", Description: "Exposes the current value", Severity: domain.SeverityModerate, Kind: domain.RequirementManual, Automated: false, TestMethod: "Confirm aria-valuenow updates as progress changes"},
	},
	ScreenReaderNotes: "Announced as \"<label>, progress bar, 40%\". Indeterminate bars omit aria-valuenow and are announced as busy.",
	Violations: []domain.Violation{
		{ID: "progress-no-value", Kind: domain.ViolationMissingValueRange, Description: "Progress value is not exposed", Severity: domain.SeveritySerious, Remediation: "Use <progress value max> or role=\"progressbar\" with aria-valuenow, aria-valuemin and aria-valuemax.", Criteria: []string{"4.1.2"}},
		{ID: "progress-no-name", Kind: domain.ViolationMissingAccessibleName, Description: "Progress bar has no accessible name", Severity: domain.SeverityModerate, Remediation: "Add aria-label describing what is loading.", Criteria: []string{"4.1.2"}},
	},
	Examples: domain.CodeExample{
		Compliant:    `<div role="progressbar" aria-label="Uploading photo" aria-valuenow={pct} aria-valuemin={0} aria-valuemax={100} />`,
		NonCompliant: `<div className="bar"><div style={{ width: pct + "%" }} /></div>`,
	},
}

var tableRule = domain.ComponentRule{
	Component:  "Table",
	Criteria:   []string{"1.3.1", "1.3.2", "1.4.10", "2.1.1", "4.1.2"},
	PatternURL: apgBase + "table/",
	Requirements: []domain.Requirement{
		{ID: "table-role", Description: "Uses <table> or the table/grid roles", Severity: domain.SeveritySerious, Kind: domain.RequirementTableRole, Automated: true, TestMethod: "Inspect the table semantics"},
		{ID: "table-label", Description: "Table has a caption or aria-label", Severity: domain.SeverityModerate, Kind: domain.RequirementAccessibleName, Automated: true, TestMethod: "Confirm <caption> or aria-label"},
		{ID: "table-sort-state", Description: "Sortable headers expose aria-sort", Severity: domain.SeverityMinor, Kind: domain.RequirementManual, Automated: false, TestMethod: "Sort a column and confirm aria-sort updates"},
	},
	Keyboard: []domain.KeyboardRequirement{
		{Key: "Tab", Action: "Moves to interactive controls in the table", Required: true},
	},
	ScreenReaderNotes: "Table navigation commands read the header for each cell when <th scope> is used. Layout tables should use role=\"presentation\".",
	Violations: []domain.Violation{
		{ID: "table-no-headers", Kind: domain.ViolationMissingTableHeaders, Description: "Data table has no header cells", Severity: domain.SeveritySerious, Remediation: "Mark header cells with <th scope=\"col\"> or <th scope=\"row\">.", Criteria: []string{"1.3.1"}},
		{ID: "table-no-name", Kind: domain.ViolationMissingAccessibleName, Description: "Table has no caption or label", Severity: domain.SeverityMinor, Remediation: "Add a <caption> or aria-label describing the data.", Criteria: []string{"1.3.1"}},
	},
	Examples: domain.CodeExample{
		Compliant: `<table>
  <caption>Invoices</caption>
  <thead><tr><th scope="col">Number</th><th scope="col">Amount</th></tr></thead>
</table>`,
		NonCompliant: `<div className="table"><div className="row"><div>Number</div><div>Amount</div></div></div>`,
	},
}

var imageRule = domain.ComponentRule{
	Component:  "Image",
	Criteria:   []string{"1.1.1", "1.4.5"},
	PatternURL: "https://www.w3.org/WAI/tutorials/images/",
	Requirements: []domain.Requirement{
		{ID: "image-alt-name", Description: "Has alt text, or alt=\"\" when decorative", Severity: domain.SeverityCritical, Kind: domain.RequirementAccessibleName, Automated: true, TestMethod: "Confirm an alt attribute on every <img>"},
		{ID: "image-no-text", Description: "Does not use images of text", Severity: domain.SeverityModerate, Kind: domain.RequirementManual, Automated: false, TestMethod: "Look for text baked into the image"},
	},
	ScreenReaderNotes: "Announced as \"<alt>, image\". Empty alt removes decorative images from the accessibility tree; a missing alt makes screen readers read the file name.",
	Violations: []domain.Violation{
		{ID: "image-no-alt", Kind: domain.ViolationMissingAltText, Description: "Image has no alt attribute", Severity: domain.SeverityCritical, Remediation: "Add alt describing the image's purpose, or alt=\"\" if it is purely decorative.", Criteria: []string{"1.1.1"}},
	},
	Examples: domain.CodeExample{
		Compliant:    `<img src={logo} alt="Acme home" />`,
		NonCompliant: `<img src={logo} />`,
	},
}
