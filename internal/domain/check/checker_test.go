package check_test

import (
	"testing"

	"github.com/openkraft/a11ykraft/internal/domain"
	"github.com/openkraft/a11ykraft/internal/domain/check"
	"github.com/openkraft/a11ykraft/internal/domain/criteria"
	"github.com/openkraft/a11ykraft/internal/domain/rules"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const cleanButton = `<button type="button" aria-label="Save" className="focus-visible:ring-2" onClick={save}>Save</button>`

func issueIDs(issues []domain.Issue) []string {
	ids := make([]string, 0, len(issues))
	for _, i := range issues {
		ids = append(ids, i.ID)
	}
	return ids
}

func findIssue(t *testing.T, issues []domain.Issue, id string) domain.Issue {
	t.Helper()
	for _, i := range issues {
		if i.ID == id {
			return i
		}
	}
	require.Failf(t, "issue not found", "%s not in %v", id, issueIDs(issues))
	return domain.Issue{}
}

func TestComponent_ClickableDivButton(t *testing.T) {
	res := check.Component("Button", `<div onClick={handleClick}>Save</div>`, domain.LevelAA)

	ids := issueIDs(res.Issues)
	assert.Contains(t, ids, "button-no-accessible-name")
	assert.Contains(t, ids, "button-non-semantic")
	assert.Contains(t, ids, "button-no-keyboard")

	name := findIssue(t, res.Issues, "button-no-accessible-name")
	assert.Equal(t, domain.SeverityCritical, name.Severity)
	assert.Equal(t, "Button", name.Component)
	assert.NotEmpty(t, name.Remediation)
	assert.NotEmpty(t, name.Example)
	assert.True(t, name.Automated)
}

func TestComponent_CleanButton(t *testing.T) {
	res := check.Component("Button", cleanButton, domain.LevelAA)

	assert.Empty(t, res.Issues)
	assert.Empty(t, res.Warnings)
	assert.True(t, res.Coverage.CatalogFound)
	assert.Equal(t, 4, res.Coverage.RequirementsChecked)
	assert.Equal(t, []string{"button-toggle-state", "button-target-size"}, res.Coverage.RequirementsUnverified)
}

func TestComponent_UnknownTypeDegrades(t *testing.T) {
	res := check.Component("NoSuchComponent", "<div/>", domain.LevelAA)

	assert.Empty(t, res.Issues)
	assert.Empty(t, res.Warnings)
	assert.False(t, res.Coverage.CatalogFound)
	assert.Zero(t, res.Coverage.RequirementsChecked)
}

func TestComponent_RoutesBySeverity(t *testing.T) {
	res := check.Component("Tabs", `<div className="tabs"><span onClick={pick}>A</span></div>`, domain.LevelAA)

	for _, i := range res.Issues {
		assert.True(t, i.Severity.Blocking(), i.ID)
	}
	for _, w := range res.Warnings {
		assert.False(t, w.Severity.Blocking(), w.ID)
	}
	assert.Contains(t, issueIDs(res.Issues), "tabs-no-roles")
	assert.Contains(t, issueIDs(res.Warnings), "tabs-no-controls")
}

func TestComponent_WarningOrder(t *testing.T) {
	src := `<div className="tabs" style={{ color: "#999", background: "#fff" }}><span onClick={pick}>A</span></div>`
	res := check.Component("Tabs", src, domain.LevelAA)

	ids := issueIDs(res.Warnings)
	require.GreaterOrEqual(t, len(ids), 4)
	// Catalog findings come first, then missing attributes, then contrast.
	assert.Equal(t, "tabs-no-controls", ids[0])
	assert.Equal(t, "tabs-missing-aria-controls", ids[len(ids)-3])
	assert.Equal(t, "tabs-missing-aria-selected", ids[len(ids)-2])
	assert.Equal(t, "tabs-low-contrast", ids[len(ids)-1])
}

func TestComponent_RequirementCriteriaFollowLevel(t *testing.T) {
	src := `<div>tabs</div>`

	atA := findIssue(t, check.Component("Tabs", src, domain.LevelA).Issues, "tabs-roles")
	assert.NotContains(t, atA.Criteria, "2.4.7")
	assert.Contains(t, atA.Criteria, "4.1.2")

	atAA := findIssue(t, check.Component("Tabs", src, domain.LevelAA).Issues, "tabs-roles")
	assert.Contains(t, atAA.Criteria, "2.4.7")
}

func TestComponent_TabsArrowKeys(t *testing.T) {
	clickOnly := `<div role="tablist"><button role="tab" aria-selected={a} aria-controls="p" onClick={pick}>A</button></div>`
	assert.Contains(t, issueIDs(check.Component("Tabs", clickOnly, domain.LevelAA).Issues), "tabs-no-arrow-keys")

	withKeys := `<div role="tablist" onKeyDown={onArrow}><button role="tab" aria-selected={a} aria-controls="p" onClick={pick}>A</button></div>`
	assert.NotContains(t, issueIDs(check.Component("Tabs", withKeys, domain.LevelAA).Issues), "tabs-no-arrow-keys")
}

func TestComponent_ContrastWarning(t *testing.T) {
	src := cleanButton + `<style>.save { color: #777777; background-color: #ffffff; }</style>`

	res := check.Component("Button", src, domain.LevelAA)
	w := findIssue(t, res.Warnings, "button-low-contrast")
	assert.Equal(t, domain.SeverityModerate, w.Severity)
	assert.Equal(t, []string{"1.4.3"}, w.Criteria)
	assert.Contains(t, w.Description, "4.48")

	assert.Empty(t, check.Component("Button", src, domain.LevelA).Warnings)

	passing := cleanButton + `<style>.save { color: #000; background: #fff; }</style>`
	assert.Empty(t, check.Component("Button", passing, domain.LevelAA).Warnings)
}

func TestComponent_SupplementalDetectors(t *testing.T) {
	toast := check.Component("Toast", `<div role="status">{msg}</div>; setTimeout(hide, 2000)`, domain.LevelAA)
	assert.Contains(t, issueIDs(toast.Warnings), "toast-auto-dismiss")

	slowToast := check.Component("Toast", `<div role="status">{msg}</div>; setTimeout(hide, 6000)`, domain.LevelAA)
	assert.NotContains(t, issueIDs(slowToast.Warnings), "toast-auto-dismiss")

	nested := check.Component("Toast", `<div role="status">{msg}</div>; setTimeout(() => dismiss(toastId, 0), 8000)`, domain.LevelAA)
	assert.NotContains(t, issueIDs(nested.Warnings), "toast-auto-dismiss")

	tab := check.Component("Button", `<button aria-label="Go" tabIndex={2} className="focus:ring">Go</button>`, domain.LevelAA)
	assert.Contains(t, issueIDs(tab.Warnings), "button-positive-tabindex")
}

func TestComponent_IssueCriteriaExistInCatalog(t *testing.T) {
	for _, name := range rules.Components() {
		res := check.Component(name, "<div onClick={x} onMouseEnter={y}>?</div>", domain.LevelAAA)
		for _, i := range append(res.Issues, res.Warnings...) {
			require.NotEmpty(t, i.Criteria, i.ID)
			for _, id := range i.Criteria {
				assert.True(t, criteria.Exists(id), "%s cites unknown %s", i.ID, id)
			}
		}
	}
}

func TestDetectors_CoverEveryKind(t *testing.T) {
	for _, k := range domain.ViolationKinds {
		assert.True(t, check.HasDetector(k), "no detector for %s", k)
	}
	for _, k := range domain.RequirementKinds {
		assert.True(t, check.HasRequirementCheck(k), "no check for %s", k)
	}
	for _, v := range rules.AllViolations() {
		assert.True(t, check.HasDetector(v.Kind), "%s uses unbound kind %s", v.ID, v.Kind)
	}
}

func TestComponent_CatalogExamplesMatchTheirRules(t *testing.T) {
	for _, rule := range rules.All() {
		t.Run(rule.Component, func(t *testing.T) {
			good := check.Component(rule.Component, rule.Examples.Compliant, domain.LevelAA)
			assert.Empty(t, issueIDs(good.Issues), "compliant example must pass")

			bad := check.Component(rule.Component, rule.Examples.NonCompliant, domain.LevelAA)
			assert.NotEmpty(t, bad.Issues, "non-compliant example must fail")
		})
	}
}

func TestComponent_NativeLinkAndTable(t *testing.T) {
	link := check.Component("Link", `<a href="/docs" aria-label="Docs" className="focus:ring">Docs</a>`, domain.LevelAA)
	assert.NotContains(t, issueIDs(link.Issues), "link-role")

	roleLink := check.Component("Link", `<span role="link" tabIndex={0} aria-label="Docs" className="focus:ring">Docs</span>`, domain.LevelAA)
	assert.NotContains(t, issueIDs(roleLink.Issues), "link-role")

	table := check.Component("Table", `<table><caption>Invoices</caption><tr><th>Number</th></tr></table>`, domain.LevelAA)
	assert.Empty(t, issueIDs(table.Issues))
	assert.NotContains(t, issueIDs(table.Warnings), "table-no-name")

	divTable := check.Component("Table", `<div className="table"><div>Number</div></div>`, domain.LevelAA)
	assert.Contains(t, issueIDs(divTable.Issues), "table-role")
}
