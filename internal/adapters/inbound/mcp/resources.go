package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/uiforge/uiforge/internal/adapters/outbound/history"
)

// registerResources registers all UIForge MCP resources on the given server.
func registerResources(s *server.MCPServer, projectPath string) {
	// 1. uiforge://context - detected project context
	s.AddResource(
		mcplib.NewResource(
			"uiforge://context",
			"Project Context",
			mcplib.WithResourceDescription("Detected framework, styling system, language, and component directory"),
			mcplib.WithMIMEType("application/json"),
		),
		handleContextResource(projectPath),
	)

	// 2. uiforge://config - effective configuration
	s.AddResource(
		mcplib.NewResource(
			"uiforge://config",
			"Configuration",
			mcplib.WithResourceDescription("Effective configuration: defaults merged with .uiforge.yaml"),
			mcplib.WithMIMEType("application/json"),
		),
		handleConfigResource(projectPath),
	)

	// 3. uiforge://history - past runs
	s.AddResource(
		mcplib.NewResource(
			"uiforge://history",
			"Run History",
			mcplib.WithResourceDescription("Past validation, fix, and generation runs"),
			mcplib.WithMIMEType("application/json"),
		),
		handleHistoryResource(projectPath),
	)

	// 4. uiforge://components/{file} - per-file validation report (resource template)
	s.AddResourceTemplate(
		mcplib.NewResourceTemplate(
			"uiforge://components/{file}",
			"Component Report",
			mcplib.WithTemplateDescription("Validation report for a specific component file"),
			mcplib.WithTemplateMIMEType("application/json"),
		),
		handleComponentResource(projectPath),
	)
}

func handleContextResource(projectPath string) server.ResourceHandlerFunc {
	return func(_ context.Context, _ mcplib.ReadResourceRequest) ([]mcplib.ResourceContents, error) {
		contexts, _, _ := newServices()
		pctx, _, err := contexts.Resolve(projectPath)
		if err != nil {
			return nil, fmt.Errorf("resolving context: %w", err)
		}
		return jsonContents("uiforge://context", pctx)
	}
}

func handleConfigResource(projectPath string) server.ResourceHandlerFunc {
	return func(_ context.Context, _ mcplib.ReadResourceRequest) ([]mcplib.ResourceContents, error) {
		contexts, _, _ := newServices()
		_, cfg, err := contexts.Resolve(projectPath)
		if err != nil {
			return nil, fmt.Errorf("resolving config: %w", err)
		}
		return jsonContents("uiforge://config", cfg)
	}
}

func handleHistoryResource(projectPath string) server.ResourceHandlerFunc {
	return func(_ context.Context, _ mcplib.ReadResourceRequest) ([]mcplib.ResourceContents, error) {
		entries, err := history.New().Load(projectPath, 0)
		if err != nil {
			return nil, fmt.Errorf("loading history: %w", err)
		}
		return jsonContents("uiforge://history", entries)
	}
}

func handleComponentResource(projectPath string) server.ResourceTemplateHandlerFunc {
	return func(_ context.Context, request mcplib.ReadResourceRequest) ([]mcplib.ResourceContents, error) {
		file, ok := request.Params.Arguments["file"].(string)
		if !ok || file == "" {
			return nil, fmt.Errorf("file is required")
		}

		data, err := os.ReadFile(resolvePath(projectPath, file))
		if err != nil {
			return nil, fmt.Errorf("reading component: %w", err)
		}

		_, validateSvc, _ := newServices()
		result, err := validateSvc.ValidateContent(projectPath, file, string(data))
		if err != nil {
			return nil, fmt.Errorf("validating component: %w", err)
		}

		return jsonContents(request.Params.URI, result)
	}
}

// jsonContents marshals v and wraps it as a single JSON resource.
func jsonContents(uri string, v any) ([]mcplib.ResourceContents, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling resource: %w", err)
	}
	return []mcplib.ResourceContents{
		mcplib.TextResourceContents{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}
