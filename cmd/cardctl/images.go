package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cardctl/cardctl/internal/assets"
)

func newImagesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "images",
		Short: "List image files available for card logos",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			site := resolveSite()
			images, err := assets.ListImages(site.ImagesDir())
			if err != nil {
				return err
			}

			for _, img := range images {
				fmt.Fprintln(cmd.OutOrStdout(), img)
			}
			return nil
		},
	}

	return cmd
}
