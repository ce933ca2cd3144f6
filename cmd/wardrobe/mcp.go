package main

import (
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"wardrobe/m/internal/mcp"
	"wardrobe/m/internal/store"
)

func newMCPCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "mcp",
		Short: "Start an MCP server on stdio exposing the wardrobe read model",
		RunE: func(cmd *cobra.Command, args []string) error {
			server, err := mcp.NewServer(store.New(a.db), version)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return server.Serve(ctx)
		},
	}
}
