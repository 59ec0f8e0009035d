package mcp

import (
	"github.com/mark3labs/mcp-go/server"
)

// NewBrewkraftMCPServer creates a new MCP server with all Brewkraft tools
// and resources registered. The configDir is the directory whose
// .brewkraft.yaml (if any) defines the effective menu.
func NewBrewkraftMCPServer(configDir string) *server.MCPServer {
	s := server.NewMCPServer(
		"brewkraft",
		"0.1.0",
		server.WithToolCapabilities(true),
		server.WithResourceCapabilities(true, false),
	)

	registerTools(s, configDir)
	registerResources(s, configDir)

	return s
}
