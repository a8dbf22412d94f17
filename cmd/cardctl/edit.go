package main

import (
	"crypto/sha256"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/cardctl/cardctl/internal/cards"
	"github.com/cardctl/cardctl/internal/store"
)

func newEditCmd() *cobra.Command {
	var (
		logo      string
		title     string
		filePath  string
		center    bool
		partition bool
	)

	cmd := &cobra.Command{
		Use:   "edit <index>",
		Short: "Edit an existing card by index",
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

			displayLogo := card.Logo()
			if displayLogo == "" {
				displayLogo = "(no logo)"
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "Editing card [%d]: %s\n", index, displayLogo)

			var fields cards.Fields
			if cmd.Flags().Changed("logo") {
				fields.Logo = &logo
			}
			if cmd.Flags().Changed("title") {
				fields.Title = &title
			}
			if cmd.Flags().Changed("center") {
				fields.Center = &center
			}
			if cmd.Flags().Changed("partition") {
				fields.Partition = &partition
			}

			switch {
			case filePath != "":
				bytes, err := os.ReadFile(filePath)
				if err != nil {
					return err
				}
				content := string(bytes)
				fields.Content = &content
			default:
				content, changed, err := editContent(card, index)
				if err != nil {
					return err
				}
				if changed {
					fields.Content = &content
				}
			}

			if err := list.Update(index, fields); err != nil {
				return err
			}
			if err := st.Save(list); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Card [%d] updated.\n", index)
			return nil
		},
	}

	cmd.Flags().StringVar(&logo, "logo", "", "New logo path (empty removes the logo)")
	cmd.Flags().StringVar(&title, "title", "", "New title (empty removes the title)")
	cmd.Flags().StringVarP(&filePath, "file", "f", "", "Read replacement content from file instead of $EDITOR")
	cmd.Flags().BoolVar(&center, "center", false, "Center this card")
	cmd.Flags().BoolVar(&partition, "partition", false, "Add a partition line after this card")

	return cmd
}

// editContent opens the card's current content in $EDITOR and reports
// whether the user changed it. The call blocks until the editor exits.
func editContent(card cards.Card, index int) (string, bool, error) {
	current := strings.Join(card.Content(), "\n")

	tempDir, err := os.MkdirTemp("", "cardctl-edit-")
	if err != nil {
		return "", false, err
	}
	defer os.RemoveAll(tempDir)

	tempFile := filepath.Join(tempDir, fmt.Sprintf("card-%d.html", index))
	if err := os.WriteFile(tempFile, []byte(current), 0o600); err != nil {
		return "", false, err
	}

	editor := os.Getenv("EDITOR")
	if editor == "" {
		editor = os.Getenv("VISUAL")
	}
	if editor == "" {
		editor = "vi"
	}

	editorCmd := exec.Command(editor, tempFile)
	editorCmd.Stdin = os.Stdin
	editorCmd.Stdout = os.Stdout
	editorCmd.Stderr = os.Stderr

	if err := editorCmd.Run(); err != nil {
		return "", false, fmt.Errorf("editor exited with error: %w", err)
	}

	edited, err := os.ReadFile(tempFile)
	if err != nil {
		return "", false, err
	}

	if sha256.Sum256([]byte(current)) == sha256.Sum256(edited) {
		return "", false, nil
	}
	return string(edited), true, nil
}
