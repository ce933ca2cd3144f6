package mcp

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"wardrobe/m/domain"
)

// Store is the read model exposed to agents.
type Store interface {
	Items(ctx context.Context) ([]domain.Item, error)
	Wears(ctx context.Context) ([]domain.Wear, error)
	Item(ctx context.Context, uniqueID string) (domain.Item, error)
}

// Server wraps an MCP server over the wardrobe store.
type Server struct {
	mcp   *mcp.Server
	store Store
}

// NewServer creates an MCP server with the read-only wardrobe tools.
func NewServer(store Store, version string) (*Server, error) {
	if store == nil {
		return nil, fmt.Errorf("store is required")
	}

	s := &Server{
		mcp: mcp.NewServer(&mcp.Implementation{
			Name:    "wardrobe",
			Version: version,
		}, nil),
		store: store,
	}
	s.registerTools()
	return s, nil
}

// Serve runs the server over stdio until ctx is cancelled.
func (s *Server) Serve(ctx context.Context) error {
	return s.mcp.Run(ctx, &mcp.StdioTransport{})
}
