package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/cardctl/cardctl/internal/cards"
	"github.com/cardctl/cardctl/internal/store"
)

func newListCmd() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List cards with index, logo, and content preview",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			site := resolveSite()
			list, err := store.New(site.CardsFile()).Load()
			if err != nil {
				return err
			}

			switch format {
			case "json":
				return outputJSON(cmd, list)
			case "table":
				outputTable(cmd, list)
				return nil
			default:
				return fmt.Errorf("invalid format: %s (valid values: table, json)", format)
			}
		},
	}

	cmd.Flags().StringVar(&format, "format", "table", "Output format: table or json")

	return cmd
}

type listOutputEntry struct {
	Index     int    `json:"index"`
	Logo      string `json:"logo,omitempty"`
	Title     string `json:"title,omitempty"`
	Content   string `json:"content"`
	Center    bool   `json:"center,omitempty"`
	Partition bool   `json:"partition,omitempty"`
}

func outputJSON(cmd *cobra.Command, list *cards.List) error {
	output := make([]listOutputEntry, 0, list.Len())
	for i, card := range list.Cards() {
		output = append(output, listOutputEntry{
			Index:     i,
			Logo:      card.Logo(),
			Title:     card.Title(),
			Content:   strings.Join(card.Content(), "\n"),
			Center:    card.Center(),
			Partition: card.Partition(),
		})
	}

	encoder := json.NewEncoder(cmd.OutOrStdout())
	encoder.SetIndent("", "  ")
	return encoder.Encode(output)
}

func getTerminalWidth() int {
	if width, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && width > 0 {
		return width
	}
	// Default width if terminal size cannot be determined
	return 80
}

func outputTable(cmd *cobra.Command, list *cards.List) {
	t := table.NewWriter()
	t.SetOutputMirror(cmd.OutOrStdout())
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"#", "Logo", "Title", "Flags", "Preview"})

	// Give the preview whatever width the fixed columns leave over.
	termWidth := getTerminalWidth()
	logoWidth, titleWidth := 0, 0
	for _, card := range list.Cards() {
		if w := runewidth.StringWidth(card.Logo()); w > logoWidth {
			logoWidth = w
		}
		if w := runewidth.StringWidth(card.Title()); w > titleWidth {
			titleWidth = w
		}
	}
	previewWidth := termWidth - logoWidth - titleWidth - 30
	if previewWidth < 20 {
		previewWidth = 20
	}
	if previewWidth > cards.DefaultPreviewLen {
		previewWidth = cards.DefaultPreviewLen
	}

	for i, card := range list.Cards() {
		var flags []string
		if card.Center() {
			flags = append(flags, "center")
		}
		if card.Partition() {
			flags = append(flags, "partition")
		}

		preview := runewidth.Truncate(card.Preview(cards.DefaultPreviewLen), previewWidth, "...")
		t.AppendRow(table.Row{i, card.Logo(), card.Title(), strings.Join(flags, ","), preview})
	}

	t.Render()
}
