package mcp

import (
	"log/slog"

	"github.com/mark3labs/mcp-go/server"

	"github.com/openkraft/a11ykraft/internal/adapters/outbound/config"
	"github.com/openkraft/a11ykraft/internal/adapters/outbound/gitinfo"
	"github.com/openkraft/a11ykraft/internal/adapters/outbound/scanner"
	"github.com/openkraft/a11ykraft/internal/application"
)

// handlers carries the services shared by every tool and resource.
type handlers struct {
	projectPath string
	validator   *application.ValidationService
	scans       *application.ScanService
	logger      *slog.Logger
}

// NewServer creates an MCP server with all a11ykraft tools and resources
// registered. projectPath anchors relative file paths and project scans.
func NewServer(projectPath string, logger *slog.Logger) *server.MCPServer {
	if logger == nil {
		logger = slog.Default()
	}
	s := server.NewMCPServer(
		"a11ykraft",
		"0.1.0",
		server.WithToolCapabilities(true),
		server.WithResourceCapabilities(true, false),
	)

	validator := application.NewValidationService(logger)
	h := &handlers{
		projectPath: projectPath,
		validator:   validator,
		scans: application.NewScanService(
			scanner.New(),
			scanner.NewClassifier(),
			config.New(),
			gitinfo.New(),
			validator,
			logger,
		),
		logger: logger,
	}

	registerTools(s, h)
	registerResources(s)

	return s
}
