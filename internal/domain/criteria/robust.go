package criteria

import "github.com/openkraft/a11ykraft/internal/domain"

var robust = []domain.Criterion{
	{
		ID: "4.1.2", Name: "Name, Role, Value", Level: domain.LevelA,
		Principle: domain.PrincipleRobust, Guideline: "4.1 Compatible", Version: "2.0",
		Description:   "For all user interface components, the name and role can be programmatically determined; states, properties, and values can be programmatically set; and changes are notified to assistive technologies.",
		Techniques:    []string{"ARIA14: aria-label for an invisible label", "ARIA16: aria-labelledby to provide a name", "G108: markup to expose name and role", "ARIA5: ARIA state and property attributes to expose the state of a component"},
		Failures:      []string{"F59: script to make a div or span a control without a role", "F68: control without a programmatically determined name", "F79: focus state not programmatically determinable", "F86: no name for each part of a multi-part form field"},
		TestProcedure: "Inspect each control in the accessibility tree: it has a role, an accessible name, and current state values that update as the user interacts.",
		Components:    []string{domain.AllComponents},
	},
	{
		ID: "4.1.3", Name: "Status Messages", Level: domain.LevelAA,
		Principle: domain.PrincipleRobust, Guideline: "4.1 Compatible", Version: "2.1",
		Description:   "Status messages can be programmatically determined through role or properties so they are presented to the user by assistive technologies without receiving focus.",
		Techniques:    []string{"ARIA22: role=status to present status messages", "ARIA19: role=alert or live regions to identify errors", "ARIA23: role=log for sequential information updates"},
		Failures:      []string{"F103: status messages not exposed through role or properties"},
		TestProcedure: "Trigger the message with a screen reader running and confirm it is announced without moving focus.",
		Components:    []string{"Alert", "Toast", "Progress", "Input"},
	},
}
