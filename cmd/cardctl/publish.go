package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cardctl/cardctl/internal/config"
	"github.com/cardctl/cardctl/internal/git"
)

func newPublishCmd() *cobra.Command {
	var (
		message string
		force   bool
	)

	cmd := &cobra.Command{
		Use:   "publish",
		Short: "Commit and push the card file to deploy the site",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			site := resolveSite()

			if !force {
				ok, err := confirm(cmd, fmt.Sprintf("Publish with message: '%s'? (y/N) ", message))
				if err != nil {
					return err
				}
				if !ok {
					fmt.Fprintln(cmd.OutOrStdout(), "Cancelled.")
					return nil
				}
			}

			publisher := git.Publisher{Runner: git.ExecRunner{}, Dir: site.Root}
			if err := publisher.Publish(config.CardsRelPath, message); err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), "Published successfully!")
			return nil
		},
	}

	cmd.Flags().StringVarP(&message, "message", "m", "Update cards", "Commit message")
	cmd.Flags().BoolVar(&force, "force", false, "Skip confirmation prompt")

	return cmd
}
