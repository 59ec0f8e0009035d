package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/brewkraft/brewkraft/internal/adapters/outbound/config"
	"github.com/brewkraft/brewkraft/internal/application"
)

// registerTools registers all Brewkraft MCP tools on the given server.
func registerTools(s *server.MCPServer, configDir string) {
	// 1. brewkraft_price
	s.AddTool(
		mcplib.NewTool("brewkraft_price",
			mcplib.WithDescription("Validate and price a beverage order, returning the priced order as JSON"),
			mcplib.WithString("base",
				mcplib.Required(),
				mcplib.Description("Drink base (espresso, americano, latte, cappuccino)"),
			),
			mcplib.WithString("size",
				mcplib.Required(),
				mcplib.Description("Serving size (small, medium, large)"),
			),
			mcplib.WithString("milk", mcplib.Description("Milk choice (whole, skim, oat, soy)")),
			mcplib.WithString("syrups", mcplib.Description("Comma-separated syrup names, up to 4 distinct")),
			mcplib.WithNumber("sugar", mcplib.Description("Teaspoons of sugar (0-5)")),
			mcplib.WithNumber("shots", mcplib.Description("Extra espresso shots (0-3)")),
			mcplib.WithBoolean("iced", mcplib.Description("Serve iced (+20% of base cost)")),
		),
		handlePrice(configDir),
	)

	// 2. brewkraft_menu
	s.AddTool(
		mcplib.NewTool("brewkraft_menu",
			mcplib.WithDescription("Returns the effective menu (catalogs, unit prices and limits) as JSON"),
		),
		handleMenu(configDir),
	)
}

func newService() *application.OrderService {
	return application.NewOrderService(config.New())
}

func handlePrice(configDir string) server.ToolHandlerFunc {
	return func(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		base, err := request.RequireString("base")
		if err != nil {
			return errorResult(err.Error()), nil
		}
		size, err := request.RequireString("size")
		if err != nil {
			return errorResult(err.Error()), nil
		}

		req := application.OrderRequest{Base: base, Size: size}

		args := request.GetArguments()
		if milk, ok := args["milk"].(string); ok {
			req.Milk = milk
		}
		if syrups, ok := args["syrups"].(string); ok && syrups != "" {
			req.Syrups = splitAndTrim(syrups)
		}
		if sugar, ok := args["sugar"].(float64); ok {
			req.Sugar = int(sugar)
		}
		if shots, ok := args["shots"].(float64); ok {
			req.Shots = int(shots)
		}
		iced, _ := args["iced"].(bool)
		req.Iced = iced

		order, err := newService().PriceOrder(configDir, req)
		if err != nil {
			return errorResult(fmt.Sprintf("pricing failed: %v", err)), nil
		}
		return jsonResult(order)
	}
}

func handleMenu(configDir string) server.ToolHandlerFunc {
	return func(_ context.Context, _ mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		menu, err := newService().Menu(configDir)
		if err != nil {
			return errorResult(fmt.Sprintf("loading menu failed: %v", err)), nil
		}
		return jsonResult(menu)
	}
}

func splitAndTrim(s string) []string {
	parts := strings.Split(s, ",")
	var result []string
	for _, p := range parts {
		trimmed := strings.TrimSpace(p)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
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

// errorResult returns a tool error with the given message.
func errorResult(msg string) *mcplib.CallToolResult {
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(msg)},
		IsError: true,
	}
}
