package main

import (
	"github.com/spf13/cobra"

	"github.com/cardctl/cardctl/internal/config"
)

var siteFlag string

var rootCmd = &cobra.Command{
	Use:   "cardctl",
	Short: "cardctl - Edit the homepage cards of a static site",
	Long:  "cardctl edits the card entries in the site's _data/cards.yml and publishes changes via git.",
}

var cardsCmd = &cobra.Command{
	Use:   "cards",
	Short: "Manage homepage cards",
}

func init() {
	rootCmd.PersistentFlags().StringVar(&siteFlag, "site", "", "Site root directory (defaults to CARDCTL_SITE_ROOT, then the enclosing git repository)")

	cardsCmd.AddCommand(newListCmd())
	cardsCmd.AddCommand(newAddCmd())
	cardsCmd.AddCommand(newEditCmd())
	cardsCmd.AddCommand(newRemoveCmd())
	cardsCmd.AddCommand(newReorderCmd())

	rootCmd.AddCommand(cardsCmd)
	rootCmd.AddCommand(newImagesCmd())
	rootCmd.AddCommand(newPreviewCmd())
	rootCmd.AddCommand(newPublishCmd())
	rootCmd.AddCommand(newServeCmd())
	rootCmd.AddCommand(newMCPCmd())
}

func resolveSite() config.Site {
	return config.Resolve(siteFlag)
}
