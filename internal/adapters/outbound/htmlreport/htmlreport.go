// Package htmlreport turns Markdown reports into standalone HTML pages.
package htmlreport

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"

	"github.com/openkraft/a11ykraft/internal/domain"
	"github.com/openkraft/a11ykraft/internal/domain/report"
)

var md = goldmark.New(
	goldmark.WithExtensions(extension.GFM),
	goldmark.WithParserOptions(parser.WithAutoHeadingID()),
)

var page = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>{{.Title}}</title>
<style>
body { font-family: system-ui, sans-serif; max-width: 56rem; margin: 2rem auto; padding: 0 1rem; line-height: 1.5; color: #1f2937; }
table { border-collapse: collapse; }
th, td { border: 1px solid #9ca3af; padding: .25rem .75rem; text-align: left; }
code { background: #f3f4f6; padding: 0 .25rem; }
blockquote { border-left: 4px solid #d97706; margin-left: 0; padding-left: 1rem; }
</style>
</head>
<body>
<main>
{{.Body}}
</main>
</body>
</html>
`))

// Render converts a Markdown document into a full HTML page.
func Render(title, markdown string) (string, error) {
	var body bytes.Buffer
	if err := md.Convert([]byte(escapeRawHTML(markdown)), &body); err != nil {
		return "", fmt.Errorf("rendering markdown: %w", err)
	}

	var out bytes.Buffer
	err := page.Execute(&out, struct {
		Title string
		Body  template.HTML
	}{title, template.HTML(body.String())})
	if err != nil {
		return "", fmt.Errorf("rendering page: %w", err)
	}
	return out.String(), nil
}

// Report renders one component report.
func Report(r domain.Report) (string, error) {
	return Render("Accessibility Report: "+r.Component, report.FormatMarkdown(r))
}

// Scan renders a project scan.
func Scan(scan domain.ProjectScan) (string, error) {
	return Render("Accessibility Scan", report.FormatScanMarkdown(scan))
}

// escapeRawHTML escapes '<' outside code spans and fenced blocks. Findings
// quote markup such as <button> in prose and it must show as text, not
// vanish as raw HTML. Code is left alone because goldmark escapes it.
func escapeRawHTML(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	inFence := false
	for _, line := range strings.SplitAfter(s, "\n") {
		if strings.HasPrefix(strings.TrimLeft(line, " "), "```") {
			inFence = !inFence
			b.WriteString(line)
			continue
		}
		if inFence {
			b.WriteString(line)
			continue
		}
		inCode := false
		for i := 0; i < len(line); i++ {
			c := line[i]
			switch {
			case c == '`':
				inCode = !inCode
				b.WriteByte(c)
			case c == '<' && !inCode:
				b.WriteString("&lt;")
			default:
				b.WriteByte(c)
			}
		}
	}
	return b.String()
}
