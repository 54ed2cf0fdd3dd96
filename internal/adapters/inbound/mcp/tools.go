package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	cacheAdapter "github.com/uiforge/uiforge/internal/adapters/outbound/cache"
	"github.com/uiforge/uiforge/internal/adapters/outbound/config"
	"github.com/uiforge/uiforge/internal/adapters/outbound/detector"
	"github.com/uiforge/uiforge/internal/adapters/outbound/generator"
	"github.com/uiforge/uiforge/internal/adapters/outbound/gitinfo"
	"github.com/uiforge/uiforge/internal/adapters/outbound/history"
	"github.com/uiforge/uiforge/internal/adapters/outbound/keystore"
	"github.com/uiforge/uiforge/internal/adapters/outbound/scanner"
	"github.com/uiforge/uiforge/internal/adapters/outbound/writer"
	"github.com/uiforge/uiforge/internal/application"
	"github.com/uiforge/uiforge/internal/domain"
	"github.com/uiforge/uiforge/internal/domain/autofix"
	"github.com/uiforge/uiforge/internal/domain/golden"
)

// registerTools registers all UIForge MCP tools on the given server.
func registerTools(s *server.MCPServer, projectPath string) {
	// 1. uiforge_validate
	s.AddTool(
		mcplib.NewTool("uiforge_validate",
			mcplib.WithDescription("Validate a component against the eight-axis quality gate. Returns issues, score, and pass/fail as JSON."),
			mcplib.WithString("file", mcplib.Description("Path to the component file, relative to the project root")),
			mcplib.WithString("content", mcplib.Description("Inline component source to validate instead of reading the file")),
			mcplib.WithString("axis", mcplib.Description("Run a single axis (typescript, imports, styling, naming, structure, accessibility, performance, security)")),
		),
		handleValidate(projectPath),
	)

	// 2. uiforge_fix
	s.AddTool(
		mcplib.NewTool("uiforge_fix",
			mcplib.WithDescription("Apply safe autofixes to a component, revalidate, and return the outcome. The rewrite is kept only when it is no worse than the original."),
			mcplib.WithString("file", mcplib.Required(), mcplib.Description("Path to the component file, relative to the project root")),
			mcplib.WithBoolean("write", mcplib.Description("Write the fixed content back to the file")),
			mcplib.WithBoolean("force", mcplib.Description("Write even when the result still fails validation")),
		),
		handleFix(projectPath),
	)

	// 3. uiforge_generate
	s.AddTool(
		mcplib.NewTool("uiforge_generate",
			mcplib.WithDescription("Generate a component from a description using the project's conventions, validated against the quality gate."),
			mcplib.WithString("description", mcplib.Required(), mcplib.Description("What the component should do")),
			mcplib.WithString("name", mcplib.Description("Component name (derived from the description when omitted)")),
			mcplib.WithString("path", mcplib.Description("Output path relative to the project root")),
			mcplib.WithBoolean("write", mcplib.Description("Write the component into the project")),
		),
		handleGenerate(projectPath),
	)

	// 4. uiforge_context
	s.AddTool(
		mcplib.NewTool("uiforge_context",
			mcplib.WithDescription("Returns the detected project context (framework, styling, language, component directory) and effective configuration as JSON"),
			mcplib.WithBoolean("refresh", mcplib.Description("Bypass the cache and re-detect")),
		),
		handleContext(projectPath),
	)

	// 5. uiforge_examples
	s.AddTool(
		mcplib.NewTool("uiforge_examples",
			mcplib.WithDescription("Returns the project's best components ranked by convention quality, as used for generation few-shot prompts"),
			mcplib.WithNumber("limit", mcplib.Description("Maximum number of components to return (default 3)")),
		),
		handleExamples(projectPath),
	)

	// 6. uiforge_history
	s.AddTool(
		mcplib.NewTool("uiforge_history",
			mcplib.WithDescription("Returns past validation, fix, and generation runs for the project"),
			mcplib.WithNumber("limit", mcplib.Description("Maximum entries to return (default 20)")),
		),
		handleHistory(projectPath),
	)
}

// newServices creates the standard set of outbound adapters and services.
func newServices() (*application.ContextService, *application.ValidateService, *application.FixService) {
	contexts := application.NewContextService(
		detector.New(),
		config.New(),
		cacheAdapter.New(),
		gitinfo.New(),
	)
	validateSvc := application.NewValidateService(contexts, history.New())
	fixSvc := application.NewFixService(validateSvc, autofix.New(), writer.New(), history.New())
	return contexts, validateSvc, fixSvc
}

// resolvePath joins a tool-supplied path with the project root.
func resolvePath(projectPath, file string) string {
	if filepath.IsAbs(file) {
		return file
	}
	return filepath.Join(projectPath, file)
}

func handleValidate(projectPath string) server.ToolHandlerFunc {
	return func(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		args := request.GetArguments()
		file, _ := args["file"].(string)
		content, _ := args["content"].(string)
		axis, _ := args["axis"].(string)

		if file == "" && content == "" {
			return errorResult("either file or content is required"), nil
		}

		if content == "" {
			data, err := os.ReadFile(resolvePath(projectPath, file))
			if err != nil {
				return errorResult(fmt.Sprintf("reading file failed: %v", err)), nil
			}
			content = string(data)
		}

		_, validateSvc, _ := newServices()

		var result *domain.ValidationResult
		var err error
		if axis != "" {
			if !domain.IsValidValidationType(domain.ValidationType(axis)) {
				return errorResult(fmt.Sprintf("unknown axis %q", axis)), nil
			}
			result, err = validateSvc.ValidateAxis(projectPath, file, content, domain.ValidationType(axis))
		} else {
			result, err = validateSvc.ValidateContent(projectPath, file, content)
		}
		if err != nil {
			return errorResult(fmt.Sprintf("validate failed: %v", err)), nil
		}

		return jsonResult(result)
	}
}

func handleFix(projectPath string) server.ToolHandlerFunc {
	return func(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		file, err := request.RequireString("file")
		if err != nil {
			return errorResult(err.Error()), nil
		}

		args := request.GetArguments()
		write, _ := args["write"].(bool)
		force, _ := args["force"].(bool)

		_, _, fixSvc := newServices()

		opts := domain.FixOptions{Write: write, Force: force}
		outcome, err := fixSvc.FixFile(resolvePath(projectPath, file), opts)
		if err != nil {
			return errorResult(fmt.Sprintf("fix failed: %v", err)), nil
		}

		// Content is excluded from the outcome's JSON form; assistants
		// need the fixed source, so wrap it alongside.
		return jsonResult(struct {
			*domain.FixOutcome
			FixedContent string `json:"fixed_content"`
		}{outcome, outcome.Content})
	}
}

func handleGenerate(projectPath string) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		description, err := request.RequireString("description")
		if err != nil {
			return errorResult(err.Error()), nil
		}

		args := request.GetArguments()
		name, _ := args["name"].(string)
		outPath, _ := args["path"].(string)
		write, _ := args["write"].(bool)

		apiKey, err := keystore.New().Get()
		if err != nil {
			return errorResult(err.Error()), nil
		}

		contexts, validateSvc, _ := newServices()

		_, cfg, err := contexts.Resolve(projectPath)
		if err != nil {
			return errorResult(fmt.Sprintf("resolving context failed: %v", err)), nil
		}

		gen, err := generator.NewGemini(ctx, apiKey, cfg.Generator)
		if err != nil {
			return errorResult(fmt.Sprintf("starting generator failed: %v", err)), nil
		}
		defer gen.Close()

		svc := application.NewGenerateService(
			contexts,
			validateSvc,
			autofix.New(),
			gen,
			scanner.New(),
			writer.New(),
			history.New(),
		)

		req := domain.GenerateRequest{
			Description: description,
			Name:        name,
			Path:        outPath,
			Write:       write,
		}

		outcome, err := svc.Generate(ctx, projectPath, req)
		if err != nil {
			return errorResult(fmt.Sprintf("generate failed: %v", err)), nil
		}

		return jsonResult(outcome)
	}
}

func handleContext(projectPath string) server.ToolHandlerFunc {
	return func(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		contexts, _, _ := newServices()

		refresh, _ := request.GetArguments()["refresh"].(bool)
		if refresh {
			if _, err := contexts.Refresh(projectPath); err != nil {
				return errorResult(fmt.Sprintf("refreshing context failed: %v", err)), nil
			}
		}

		pctx, cfg, err := contexts.Resolve(projectPath)
		if err != nil {
			return errorResult(fmt.Sprintf("resolving context failed: %v", err)), nil
		}

		return jsonResult(struct {
			Context *domain.ProjectContext `json:"context"`
			Config  domain.ProjectConfig   `json:"config"`
		}{pctx, cfg})
	}
}

func handleExamples(projectPath string) server.ToolHandlerFunc {
	return func(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		limit := 3
		if raw, ok := request.GetArguments()["limit"].(float64); ok && raw > 0 {
			limit = int(raw)
		}

		contexts, _, _ := newServices()
		pctx, _, err := contexts.Resolve(projectPath)
		if err != nil {
			return errorResult(fmt.Sprintf("resolving context failed: %v", err)), nil
		}

		scan, err := scanner.New().Scan(projectPath)
		if err != nil {
			return errorResult(fmt.Sprintf("scan failed: %v", err)), nil
		}

		ranked, err := golden.SelectExamples(scan, pctx.ComponentDir, limit)
		if err != nil {
			return errorResult(fmt.Sprintf("ranking failed: %v", err)), nil
		}

		return jsonResult(ranked)
	}
}

func handleHistory(projectPath string) server.ToolHandlerFunc {
	return func(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		limit := 20
		if raw, ok := request.GetArguments()["limit"].(float64); ok && raw > 0 {
			limit = int(raw)
		}

		entries, err := history.New().Load(projectPath, limit)
		if err != nil {
			return errorResult(fmt.Sprintf("loading history failed: %v", err)), nil
		}

		return jsonResult(entries)
	}
}

// jsonResult marshals v to JSON and returns it as a text content result.
func jsonResult(v interface{}) (*mcplib.CallToolResult, error) {
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
