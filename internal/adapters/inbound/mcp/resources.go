package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/openkraft/a11ykraft/internal/domain/criteria"
	"github.com/openkraft/a11ykraft/internal/domain/rules"
)

func registerResources(s *server.MCPServer) {
	s.AddResource(
		mcplib.NewResource(
			"a11y://criteria",
			"WCAG Criteria",
			mcplib.WithResourceDescription("Every WCAG success criterion in the catalog"),
			mcplib.WithMIMEType("application/json"),
		),
		func(_ context.Context, request mcplib.ReadResourceRequest) ([]mcplib.ResourceContents, error) {
			return jsonContents(request.Params.URI, criteria.All())
		},
	)

	s.AddResource(
		mcplib.NewResource(
			"a11y://components",
			"Component Types",
			mcplib.WithResourceDescription("Component types that have accessibility rules"),
			mcplib.WithMIMEType("application/json"),
		),
		func(_ context.Context, request mcplib.ReadResourceRequest) ([]mcplib.ResourceContents, error) {
			return jsonContents(request.Params.URI, rules.Components())
		},
	)

	s.AddResourceTemplate(
		mcplib.NewResourceTemplate(
			"a11y://components/{name}",
			"Component Rules",
			mcplib.WithTemplateDescription("Accessibility rules for one component type"),
			mcplib.WithTemplateMIMEType("application/json"),
		),
		handleComponentResource,
	)
}

func handleComponentResource(_ context.Context, request mcplib.ReadResourceRequest) ([]mcplib.ResourceContents, error) {
	name := templateArg(request.Params.Arguments["name"])
	if name == "" {
		return nil, fmt.Errorf("component name is required")
	}
	canonical, ok := rules.Lookup(name)
	if !ok {
		return nil, fmt.Errorf("no rules for component %q", name)
	}
	rule, _ := rules.For(canonical)
	return jsonContents(request.Params.URI, rule)
}

// templateArg unwraps a matched URI template variable, which arrives either
// as a string or as a single-element list.
func templateArg(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case []string:
		if len(t) > 0 {
			return t[0]
		}
	}
	return ""
}

func jsonContents(uri string, v any) ([]mcplib.ResourceContents, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling %s: %w", uri, err)
	}
	return []mcplib.ResourceContents{
		mcplib.TextResourceContents{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}
