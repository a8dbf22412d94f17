package main

import (
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/spf13/cobra"
)

func newPreviewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Run the site's local preview server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			site := resolveSite()

			parts := strings.Fields(site.PreviewCommand)
			if len(parts) == 0 {
				return fmt.Errorf("no preview command configured")
			}

			fmt.Fprintf(cmd.ErrOrStderr(), "Running %s in %s...\n", site.PreviewCommand, site.Root)

			previewCmd := exec.Command(parts[0], parts[1:]...)
			previewCmd.Dir = site.Root
			previewCmd.Stdin = os.Stdin
			previewCmd.Stdout = os.Stdout
			previewCmd.Stderr = os.Stderr
			return previewCmd.Run()
		},
	}

	return cmd
}
