package main

import (
	"github.com/spf13/cobra"

	"github.com/cardctl/cardctl/internal/git"
	"github.com/cardctl/cardctl/internal/web"
)

func newServeCmd() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the local web editing UI",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			site := resolveSite()
			server := web.NewServer(site, git.ExecRunner{})
			return server.ListenAndServe(addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "127.0.0.1:5050", "Listen address for the web UI")

	return cmd
}
