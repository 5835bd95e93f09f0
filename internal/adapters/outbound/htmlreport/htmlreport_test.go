package htmlreport_test

import (
	"testing"

	"github.com/openkraft/a11ykraft/internal/adapters/outbound/htmlreport"
	"github.com/openkraft/a11ykraft/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRender_Tables(t *testing.T) {
	out, err := htmlreport.Render("T", "# Title\n\n| Key | Action |\n|-----|--------|\n| Enter | Activates |\n")
	require.NoError(t, err)
	assert.Contains(t, out, "<!DOCTYPE html>")
	assert.Contains(t, out, "<title>T</title>")
	assert.Contains(t, out, `<h1 id="title">Title</h1>`)
	assert.Contains(t, out, "<table>")
	assert.Contains(t, out, "<td>Enter</td>")
}

func TestRender_EscapesMarkupInProse(t *testing.T) {
	out, err := htmlreport.Render("T", "Use a native <button> element, see `<div role=\"button\">`.\n")
	require.NoError(t, err)
	assert.Contains(t, out, "&lt;button&gt;")
	assert.Contains(t, out, "<code>&lt;div role=&quot;button&quot;&gt;</code>")
	assert.NotContains(t, out, "raw HTML omitted")
}

func TestRender_FencedSnippetEscapedOnce(t *testing.T) {
	out, err := htmlreport.Render("T", "**Fix:** use a button.\n\n```\n<button aria-label=\"Close\">x</button>\n```\n\nAfter <b>.\n")
	require.NoError(t, err)
	assert.Contains(t, out, "<pre><code>&lt;button aria-label=&quot;Close&quot;&gt;x&lt;/button&gt;\n</code></pre>")
	assert.NotContains(t, out, "&amp;lt;")
	assert.Contains(t, out, "After &lt;b&gt;.")
}

func TestRender_EscapesTitle(t *testing.T) {
	out, err := htmlreport.Render("<script>", "x")
	require.NoError(t, err)
	assert.Contains(t, out, "<title>&lt;script&gt;</title>")
}

func TestReport(t *testing.T) {
	r := domain.Report{
		Component: "Button",
		Level:     domain.LevelAA,
		Score:     75,
		Issues: []domain.Issue{{
			Severity: domain.SeverityCritical, Title: "Clickable element is not a button",
			Description: "Clickable element is not a button", Criteria: []string{"4.1.2"},
			Remediation: "Replace the <div> with <button>.",
		}},
		Coverage: domain.Coverage{CatalogFound: true},
	}
	out, err := htmlreport.Report(r)
	require.NoError(t, err)
	assert.Contains(t, out, "Accessibility Report: Button")
	assert.Contains(t, out, "[CRITICAL] Clickable element is not a button")
	assert.Contains(t, out, "Replace the &lt;div&gt; with &lt;button&gt;.")
}

func TestScan(t *testing.T) {
	out, err := htmlreport.Scan(domain.ProjectScan{Root: "/work/app", Level: domain.LevelAA})
	require.NoError(t, err)
	assert.Contains(t, out, "<title>Accessibility Scan</title>")
	assert.Contains(t, out, "Findings by Severity")
}
