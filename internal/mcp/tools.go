package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"wardrobe/m/domain"
	"wardrobe/m/internal/store"
)

var emptyObject = map[string]interface{}{
	"type":       "object",
	"properties": map[string]interface{}{},
}

func (s *Server) registerTools() {
	mcp.AddTool(s.mcp, &mcp.Tool{
		Name:        "list_items",
		Description: "List every wardrobe item with cost, wear totals, source and category.",
		InputSchema: emptyObject,
	}, s.handleListItems)

	mcp.AddTool(s.mcp, &mcp.Tool{
		Name:        "list_wears",
		Description: "List monthly wear counts joined with each item's name, source and category.",
		InputSchema: emptyObject,
	}, s.handleListWears)

	mcp.AddTool(s.mcp, &mcp.Tool{
		Name:        "get_item",
		Description: "Get a single wardrobe item by its unique_id.",
		InputSchema: map[string]interface{}{
			"type": "object",
			"properties": map[string]interface{}{
				"unique_id": map[string]interface{}{
					"type":        "string",
					"description": "Identifier of the item (e.g., 'jeans-01')",
				},
			},
			"required": []string{"unique_id"},
		},
	}, s.handleGetItem)
}

// ListInput takes no arguments.
type ListInput struct{}

// ItemsOutput is the result of list_items.
type ItemsOutput struct {
	Items []domain.Item `json:"items"`
}

// WearsOutput is the result of list_wears.
type WearsOutput struct {
	Wears []domain.Wear `json:"wears"`
}

// GetItemInput defines input for get_item.
type GetItemInput struct {
	UniqueID string `json:"unique_id"`
}

func (s *Server) handleListItems(ctx context.Context, _ *mcp.CallToolRequest, _ ListInput) (*mcp.CallToolResult, ItemsOutput, error) {
	items, err := s.store.Items(ctx)
	if err != nil {
		return nil, ItemsOutput{}, fmt.Errorf("failed to list items: %w", err)
	}
	out := ItemsOutput{Items: items}
	return textResult(out), out, nil
}

func (s *Server) handleListWears(ctx context.Context, _ *mcp.CallToolRequest, _ ListInput) (*mcp.CallToolResult, WearsOutput, error) {
	wears, err := s.store.Wears(ctx)
	if err != nil {
		return nil, WearsOutput{}, fmt.Errorf("failed to list wears: %w", err)
	}
	out := WearsOutput{Wears: wears}
	return textResult(out), out, nil
}

func (s *Server) handleGetItem(ctx context.Context, _ *mcp.CallToolRequest, input GetItemInput) (*mcp.CallToolResult, domain.Item, error) {
	id := strings.TrimSpace(input.UniqueID)
	if id == "" {
		return nil, domain.Item{}, fmt.Errorf("unique_id is required")
	}
	item, err := s.store.Item(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return nil, domain.Item{}, fmt.Errorf("item %q not found", id)
	}
	if err != nil {
		return nil, domain.Item{}, fmt.Errorf("failed to get item: %w", err)
	}
	return textResult(item), item, nil
}

func textResult(v any) *mcp.CallToolResult {
	jsonBytes, _ := json.MarshalIndent(v, "", "  ") //nolint:errchkjson // plain structs always marshal
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: string(jsonBytes)}},
	}
}
