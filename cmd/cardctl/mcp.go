package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/cardctl/cardctl/internal/git"
	"github.com/cardctl/cardctl/internal/mcp"
)

func newMCPCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mcp",
		Short: "Start MCP server",
		Long:  "Start the Model Context Protocol server exposing the card editing tools",
		RunE: func(cmd *cobra.Command, args []string) error {
			site := resolveSite()
			server := mcp.NewServer(site, git.ExecRunner{})
			return server.Run(context.Background())
		},
	}

	return cmd
}
