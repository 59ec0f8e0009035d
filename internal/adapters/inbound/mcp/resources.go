package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// registerResources registers all Brewkraft MCP resources on the given server.
func registerResources(s *server.MCPServer, configDir string) {
	// brewkraft://menu - effective menu
	s.AddResource(
		mcplib.NewResource(
			"brewkraft://menu",
			"Menu",
			mcplib.WithResourceDescription("Effective menu: catalogs, unit prices and limits"),
			mcplib.WithMIMEType("application/json"),
		),
		handleMenuResource(configDir),
	)
}

func handleMenuResource(configDir string) server.ResourceHandlerFunc {
	return func(_ context.Context, _ mcplib.ReadResourceRequest) ([]mcplib.ResourceContents, error) {
		menu, err := newService().Menu(configDir)
		if err != nil {
			return nil, fmt.Errorf("loading menu failed: %w", err)
		}

		data, err := json.MarshalIndent(menu, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("marshaling menu: %w", err)
		}

		return []mcplib.ResourceContents{
			mcplib.TextResourceContents{
				URI:      "brewkraft://menu",
				MIMEType: "application/json",
				Text:     string(data),
			},
		}, nil
	}
}
