package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/cardctl/cardctl/internal/assets"
	"github.com/cardctl/cardctl/internal/store"
)

func newAddCmd() *cobra.Command {
	var (
		logo      string
		title     string
		filePath  string
		center    bool
		partition bool
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a new card at the end of the list",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			site := resolveSite()

			if logo == "" {
				images, err := assets.ListImages(site.ImagesDir())
				if err == nil && len(images) > 0 {
					fmt.Fprintln(cmd.ErrOrStderr(), "Available images:")
					for _, img := range images {
						fmt.Fprintf(cmd.ErrOrStderr(), "  %s\n", img)
					}
				}
			}

			content, err := readContent(cmd, filePath)
			if err != nil {
				return err
			}

			st := store.New(site.CardsFile())
			list, err := st.Load()
			if err != nil {
				return err
			}

			list.Add(logo, title, content, center, partition)
			if err := st.Save(list); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Card added at index %d.\n", list.Len()-1)
			return nil
		},
	}

	cmd.Flags().StringVar(&logo, "logo", "", "Logo path (e.g. /assets/img/flower.svg)")
	cmd.Flags().StringVar(&title, "title", "", "Card title (leave empty for none)")
	cmd.Flags().StringVarP(&filePath, "file", "f", "", "Read content from file instead of stdin")
	cmd.Flags().BoolVar(&center, "center", false, "Center this card")
	cmd.Flags().BoolVar(&partition, "partition", false, "Add a partition line after this card")

	return cmd
}

func readContent(cmd *cobra.Command, filePath string) (string, error) {
	if filePath != "" {
		bytes, err := os.ReadFile(filePath)
		if err != nil {
			return "", err
		}
		return string(bytes), nil
	}

	stat, err := os.Stdin.Stat()
	if err == nil && (stat.Mode()&os.ModeCharDevice) != 0 {
		fmt.Fprintln(cmd.ErrOrStderr(), "Enter content (HTML allowed, Ctrl-D when done):")
	}

	bytes, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", err
	}
	return string(bytes), nil
}
