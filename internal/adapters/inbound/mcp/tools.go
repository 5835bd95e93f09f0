package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/openkraft/a11ykraft/internal/adapters/outbound/scanner"
	"github.com/openkraft/a11ykraft/internal/domain"
	"github.com/openkraft/a11ykraft/internal/domain/contrast"
	"github.com/openkraft/a11ykraft/internal/domain/criteria"
	"github.com/openkraft/a11ykraft/internal/domain/rules"
)

const levelDescription = "WCAG conformance level: A, AA or AAA (default AA)"

func registerTools(s *server.MCPServer, h *handlers) {
	s.AddTool(
		mcplib.NewTool("a11y_validate_component",
			mcplib.WithDescription("Validate component source code against WCAG criteria and the ARIA pattern for its type. Returns the full report as JSON."),
			mcplib.WithString("component", mcplib.Required(),
				mcplib.Description("Component type, e.g. Button, Modal, Tabs, Input")),
			mcplib.WithString("code", mcplib.Required(),
				mcplib.Description("Component source (JSX, TSX, Vue, Svelte or HTML)")),
			mcplib.WithString("level", mcplib.Description(levelDescription)),
		),
		h.validateComponent,
	)

	s.AddTool(
		mcplib.NewTool("a11y_validate_file",
			mcplib.WithDescription("Validate a component source file in the project. The component type is inferred from the file name unless given."),
			mcplib.WithString("file", mcplib.Required(),
				mcplib.Description("File path, relative to the project root")),
			mcplib.WithString("component", mcplib.Description("Component type override")),
			mcplib.WithString("level", mcplib.Description(levelDescription)),
		),
		h.validateFile,
	)

	s.AddTool(
		mcplib.NewTool("a11y_check_contrast",
			mcplib.WithDescription("Compute the WCAG contrast ratio between two colors (#rrggbb, #rgb, rgb(), rgba())."),
			mcplib.WithString("foreground", mcplib.Required(), mcplib.Description("Text color")),
			mcplib.WithString("background", mcplib.Required(), mcplib.Description("Background color")),
			mcplib.WithBoolean("large_text", mcplib.Description("Report meets_aa for large text (3:1) instead of normal text")),
		),
		h.checkContrast,
	)

	s.AddTool(
		mcplib.NewTool("a11y_get_rules",
			mcplib.WithDescription("Return the accessibility rules for a component type: requirements, keyboard interactions, common violations and examples."),
			mcplib.WithString("component", mcplib.Required(), mcplib.Description("Component type")),
		),
		h.getRules,
	)

	s.AddTool(
		mcplib.NewTool("a11y_list_criteria",
			mcplib.WithDescription("List WCAG success criteria, optionally filtered by level (at or below), principle and component type."),
			mcplib.WithString("level", mcplib.Description("A, AA or AAA")),
			mcplib.WithString("principle", mcplib.Description("Perceivable, Operable, Understandable or Robust")),
			mcplib.WithString("component", mcplib.Description("Only criteria applicable to this component type")),
		),
		h.listCriteria,
	)

	s.AddTool(
		mcplib.NewTool("a11y_scan_project",
			mcplib.WithDescription("Validate every component file in the project and return the per-file reports and summary."),
			mcplib.WithString("level", mcplib.Description("Overrides the level from .a11ykraft.yaml")),
		),
		h.scanProject,
	)
}

func optionalLevel(request mcplib.CallToolRequest) (domain.Level, error) {
	s := request.GetString("level", "")
	if s == "" {
		return "", nil
	}
	return domain.ParseLevel(s)
}

func (h *handlers) validateComponent(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
	component, err := request.RequireString("component")
	if err != nil {
		return errorResult(err.Error()), nil
	}
	code, err := request.RequireString("code")
	if err != nil {
		return errorResult(err.Error()), nil
	}
	level, err := optionalLevel(request)
	if err != nil {
		return errorResult(err.Error()), nil
	}

	r, err := h.validator.ValidateComponent(component, code, level)
	if err != nil {
		return errorResult(fmt.Sprintf("validation failed: %v", err)), nil
	}
	return jsonResult(r)
}

func (h *handlers) validateFile(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
	file, err := request.RequireString("file")
	if err != nil {
		return errorResult(err.Error()), nil
	}
	level, err := optionalLevel(request)
	if err != nil {
		return errorResult(err.Error()), nil
	}

	path, rel, err := h.projectFile(file)
	if err != nil {
		return errorResult(err.Error()), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return errorResult(fmt.Sprintf("reading file failed: %v", err)), nil
	}

	component := request.GetString("component", "")
	if component == "" {
		component = scanner.NewClassifier().Classify(rel)
	}

	r, err := h.validator.ValidateComponent(component, string(data), level)
	if err != nil {
		return errorResult(fmt.Sprintf("validation failed: %v", err)), nil
	}
	r.File = filepath.ToSlash(rel)
	return jsonResult(r)
}

// projectFile resolves file against the project root and rejects paths
// that leave it. It returns the absolute path and the root-relative one.
func (h *handlers) projectFile(file string) (string, string, error) {
	root, err := filepath.Abs(h.projectPath)
	if err != nil {
		return "", "", fmt.Errorf("resolving project path: %w", err)
	}
	path := file
	if !filepath.IsAbs(path) {
		path = filepath.Join(root, file)
	}
	rel, err := filepath.Rel(root, filepath.Clean(path))
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", "", fmt.Errorf("file %q is outside the project root", file)
	}
	return path, rel, nil
}

type contrastResponse struct {
	Foreground string `json:"foreground"`
	Background string `json:"background"`
	domain.ContrastResult
	MeetsAA bool `json:"meets_aa"`
}

func (h *handlers) checkContrast(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
	fg, err := request.RequireString("foreground")
	if err != nil {
		return errorResult(err.Error()), nil
	}
	bg, err := request.RequireString("background")
	if err != nil {
		return errorResult(err.Error()), nil
	}
	for _, c := range []string{fg, bg} {
		if _, ok := contrast.ParseColor(c); !ok {
			return errorResult(fmt.Sprintf("unrecognized color %q", c)), nil
		}
	}

	large := request.GetBool("large_text", false)
	return jsonResult(contrastResponse{
		Foreground:     fg,
		Background:     bg,
		ContrastResult: h.validator.CheckColorContrast(fg, bg),
		MeetsAA:        h.validator.MeetsAAContrast(fg, bg, large),
	})
}

func (h *handlers) getRules(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
	component, err := request.RequireString("component")
	if err != nil {
		return errorResult(err.Error()), nil
	}
	name, ok := rules.Lookup(component)
	if !ok {
		return errorResult(fmt.Sprintf("no rules for component %q; known components: %v", component, rules.Components())), nil
	}
	rule, _ := rules.For(name)
	return jsonResult(rule)
}

func (h *handlers) listCriteria(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
	list := criteria.All()

	if s := request.GetString("level", ""); s != "" {
		level, err := domain.ParseLevel(s)
		if err != nil {
			return errorResult(err.Error()), nil
		}
		list = criteria.AtLevel(level)
	}
	if p := request.GetString("principle", ""); p != "" {
		list = filter(list, func(c domain.Criterion) bool { return strings.EqualFold(string(c.Principle), p) })
	}
	if comp := request.GetString("component", ""); comp != "" {
		if name, ok := rules.Lookup(comp); ok {
			comp = name
		}
		list = filter(list, func(c domain.Criterion) bool { return c.AppliesTo(comp) })
	}
	return jsonResult(list)
}

func (h *handlers) scanProject(ctx context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
	level, err := optionalLevel(request)
	if err != nil {
		return errorResult(err.Error()), nil
	}
	scan, err := h.scans.ScanProject(ctx, h.projectPath, level)
	if err != nil {
		return errorResult(fmt.Sprintf("scan failed: %v", err)), nil
	}
	return jsonResult(scan)
}

func filter(list []domain.Criterion, keep func(domain.Criterion) bool) []domain.Criterion {
	out := make([]domain.Criterion, 0, len(list))
	for _, c := range list {
		if keep(c) {
			out = append(out, c)
		}
	}
	return out
}

// jsonResult marshals v to JSON and returns it as a text content result.
func jsonResult(v any) (*mcplib.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling result: %w", err)
	}
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(string(data))},
	}, nil
}

// errorResult returns a tool result that indicates an error occurred.
func errorResult(msg string) *mcplib.CallToolResult {
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(msg)},
		IsError: true,
	}
}
