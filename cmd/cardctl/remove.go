package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/cardctl/cardctl/internal/cards"
	"github.com/cardctl/cardctl/internal/store"
)

func newRemoveCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "remove <index>",
		Short: "Remove a card by index",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			index, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid index: %s", args[0])
			}

			site := resolveSite()
			st := store.New(site.CardsFile())
			list, err := st.Load()
			if err != nil {
				return err
			}

			card, err := list.At(index)
			if err != nil {
				return err
			}

			if !force {
				displayLogo := card.Logo()
				if displayLogo == "" {
					displayLogo = "(no logo)"
				}
				fmt.Fprintf(cmd.ErrOrStderr(), "Card [%d]: %s\n", index, displayLogo)
				fmt.Fprintf(cmd.ErrOrStderr(), "  %s\n", card.Preview(cards.DefaultPreviewLen))

				ok, err := confirm(cmd, "Remove this card? (y/N) ")
				if err != nil {
					return err
				}
				if !ok {
					fmt.Fprintln(cmd.OutOrStdout(), "Cancelled.")
					return nil
				}
			}

			if _, err := list.Remove(index); err != nil {
				return err
			}
			if err := st.Save(list); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Card [%d] removed.\n", index)
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Skip confirmation prompt")

	return cmd
}

func confirm(cmd *cobra.Command, message string) (bool, error) {
	reader := bufio.NewReader(os.Stdin)
	fmt.Fprint(cmd.ErrOrStderr(), message)
	answer, err := reader.ReadString('\n')
	if err != nil {
		return false, err
	}
	return strings.TrimSpace(strings.ToLower(answer)) == "y", nil
}
