package criteria

import "github.com/openkraft/a11ykraft/internal/domain"

var understandable = []domain.Criterion{
	{
		ID: "3.1.1", Name: "Language of Page", Level: domain.LevelA,
		Principle: domain.PrincipleUnderstandable, Guideline: "3.1 Readable", Version: "2.0",
		Description:   "The default human language of each page can be programmatically determined.",
		Techniques:    []string{"H57: lang attribute on the html element"},
		TestProcedure: "Confirm the document root declares a valid lang attribute.",
		Components:    []string{"Page"},
	},
	{
		ID: "3.1.2", Name: "Language of Parts", Level: domain.LevelAA,
		Principle: domain.PrincipleUnderstandable, Guideline: "3.1 Readable", Version: "2.0",
		Description:   "The human language of each passage or phrase can be programmatically determined.",
		Techniques:    []string{"H58: lang attribute to identify changes in language"},
		TestProcedure: "Confirm passages in another language carry their own lang attribute.",
		Components:    []string{domain.AllComponents},
	},
	{
		ID: "3.2.1", Name: "On Focus", Level: domain.LevelA,
		Principle: domain.PrincipleUnderstandable, Guideline: "3.2 Predictable", Version: "2.0",
		Description:   "When any component receives focus, it does not initiate a change of context.",
		Techniques:    []string{"G107: activate rather than focus as a trigger for changes of context"},
		Failures:      []string{"F52: opening a new window as soon as a page loads", "F55: script that removes focus when it is received"},
		TestProcedure: "Tab onto each control and confirm focus alone never navigates, submits or opens a window.",
		Components:    []string{"Input", "Select", "Tabs", "Dropdown", "Link"},
	},
	{
		ID: "3.2.2", Name: "On Input", Level: domain.LevelA,
		Principle: domain.PrincipleUnderstandable, Guideline: "3.2 Predictable", Version: "2.0",
		Description:   "Changing the setting of a component does not automatically cause a change of context unless the user has been advised beforehand.",
		Techniques:    []string{"G80: submit button to initiate a change of context", "H84: button with a select element to perform an action"},
		Failures:      []string{"F36: automatically submitting a form on field change", "F37: launching a new window on radio or checkbox change"},
		TestProcedure: "Change each control's value and confirm no unexpected navigation or submission.",
		Components:    []string{"Select", "Checkbox", "RadioGroup", "Switch", "Input"},
	},
	{
		ID: "3.2.3", Name: "Consistent Navigation", Level: domain.LevelAA,
		Principle: domain.PrincipleUnderstandable, Guideline: "3.2 Predictable", Version: "2.0",
		Description:   "Navigational mechanisms repeated on multiple pages occur in the same relative order each time.",
		Techniques:    []string{"G61: repeated components in the same relative order"},
		Failures:      []string{"F66: navigation functionality in different locations on different pages"},
		TestProcedure: "Compare navigation order across pages.",
		Components:    []string{"Navigation", "Breadcrumb"},
	},
	{
		ID: "3.2.4", Name: "Consistent Identification", Level: domain.LevelAA,
		Principle: domain.PrincipleUnderstandable, Guideline: "3.2 Predictable", Version: "2.0",
		Description:   "Components with the same functionality are identified consistently.",
		Techniques:    []string{"G197: consistent labels, names and text alternatives for the same function"},
		Failures:      []string{"F31: two different labels for the same function on different pages"},
		TestProcedure: "Confirm repeated controls (search, close, next) use consistent names.",
		Components:    []string{domain.AllComponents},
	},
	{
		ID: "3.2.6", Name: "Consistent Help", Level: domain.LevelA,
		Principle: domain.PrincipleUnderstandable, Guideline: "3.2 Predictable", Version: "2.2",
		Description:   "Help mechanisms repeated on multiple pages occur in the same relative order.",
		Techniques:    []string{"G220: contact-us link in a consistent location"},
		TestProcedure: "Compare the location of help links and widgets across pages.",
		Components:    []string{"Navigation"},
	},
	{
		ID: "3.3.1", Name: "Error Identification", Level: domain.LevelA,
		Principle: domain.PrincipleUnderstandable, Guideline: "3.3 Input Assistance", Version: "2.0",
		Description:   "If an input error is automatically detected, the item in error is identified and the error is described to the user in text.",
		Techniques:    []string{"ARIA21: aria-invalid to indicate an error field", "ARIA19: ARIA role=alert or live regions to identify errors", "G83: text descriptions to identify required fields that were not completed"},
		Failures:      []string{"F13: error conveyed only through color"},
		TestProcedure: "Submit invalid data and confirm the field is marked invalid and the error text is associated and announced.",
		Components:    []string{"Input", "Select", "Checkbox", "RadioGroup", "Alert"},
	},
	{
		ID: "3.3.2", Name: "Labels or Instructions", Level: domain.LevelA,
		Principle: domain.PrincipleUnderstandable, Guideline: "3.3 Input Assistance", Version: "2.0",
		Description:   "Labels or instructions are provided when content requires user input.",
		Techniques:    []string{"G131: descriptive labels", "H44: label elements associated with text fields", "ARIA1: aria-describedby to provide descriptive labels"},
		Failures:      []string{"F82: visually formatting a set of fields without a label for each", "Placeholder text used as the only label"},
		TestProcedure: "Confirm each input has a persistent visible label and required format instructions.",
		Components:    []string{"Input", "Select", "Checkbox", "RadioGroup", "Switch", "Slider"},
	},
	{
		ID: "3.3.3", Name: "Error Suggestion", Level: domain.LevelAA,
		Principle: domain.PrincipleUnderstandable, Guideline: "3.3 Input Assistance", Version: "2.0",
		Description:   "If an input error is detected and suggestions for correction are known, the suggestions are provided to the user.",
		Techniques:    []string{"G85: text description when input falls outside the required format", "G177: suggested correction text"},
		TestProcedure: "Trigger validation errors and confirm the message explains how to fix the input.",
		Components:    []string{"Input", "Select"},
	},
	{
		ID: "3.3.4", Name: "Error Prevention (Legal, Financial, Data)", Level: domain.LevelAA,
		Principle: domain.PrincipleUnderstandable, Guideline: "3.3 Input Assistance", Version: "2.0",
		Description:   "Submissions that cause legal commitments or financial transactions are reversible, checked, or confirmed.",
		Techniques:    []string{"G98: review and correct before submitting", "G155: checkbox in addition to a submit button"},
		TestProcedure: "Confirm destructive or financial actions ask for confirmation or can be undone.",
		Components:    []string{"Modal", "Button"},
	},
	{
		ID: "3.3.7", Name: "Redundant Entry", Level: domain.LevelA,
		Principle: domain.PrincipleUnderstandable, Guideline: "3.3 Input Assistance", Version: "2.2",
		Description:   "Information previously entered by the user is auto-populated or available to select in the same process.",
		Techniques:    []string{"Auto-populating previously entered information"},
		TestProcedure: "Walk a multi-step form and confirm earlier answers are not re-requested.",
		Components:    []string{"Input", "Select"},
	},
	{
		ID: "3.3.8", Name: "Accessible Authentication (Minimum)", Level: domain.LevelAA,
		Principle: domain.PrincipleUnderstandable, Guideline: "3.3 Input Assistance", Version: "2.2",
		Description:   "A cognitive function test is not required for any step in an authentication process unless an alternative is provided.",
		Techniques:    []string{"Allowing paste and password managers in credential fields"},
		Failures:      []string{"Blocking paste into password inputs"},
		TestProcedure: "Confirm login fields allow paste and autocomplete.",
		Components:    []string{"Input"},
	},
}
