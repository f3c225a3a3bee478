package main

import (
	"context"

	"github.com/spf13/cobra"

	"questlog/internal/mcp"

	sdk "github.com/modelcontextprotocol/go-sdk/mcp"
)

func serveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the MCP server over stdio",
		RunE:  runServe,
	}
	return cmd
}

func runServe(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	p, err := loadProjectAll(ctx)
	if err != nil {
		return err
	}

	server := mcp.NewServer(p.Index, version)
	return server.Run(ctx, &sdk.StdioTransport{})
}
