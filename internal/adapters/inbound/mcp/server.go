package mcp

import (
	"github.com/mark3labs/mcp-go/server"
)

// NewUIForgeMCPServer creates a new MCP server with all UIForge tools
// and resources registered. The projectPath is the root directory of
// the project the tools operate on.
func NewUIForgeMCPServer(projectPath string) *server.MCPServer {
	s := server.NewMCPServer(
		"uiforge",
		"0.1.0",
		server.WithToolCapabilities(true),
		server.WithResourceCapabilities(true, false),
	)

	registerTools(s, projectPath)
	registerResources(s, projectPath)

	return s
}
