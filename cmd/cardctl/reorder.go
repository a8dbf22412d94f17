package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/cardctl/cardctl/internal/store"
)

func newReorderCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reorder <from> <to>",
		Short: "Move a card from one position to another",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			from, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid from index: %s", args[0])
			}
			to, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("invalid to index: %s", args[1])
			}

			site := resolveSite()
			st := store.New(site.CardsFile())
			list, err := st.Load()
			if err != nil {
				return err
			}

			if err := list.Reorder(from, to); err != nil {
				return err
			}
			if err := st.Save(list); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Card moved from [%d] to [%d].\n", from, to)
			return nil
		},
	}

	return cmd
}
