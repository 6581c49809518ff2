package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aretw0/jot/pkg/core"
)

var (
	editTitle     string
	editContent   string
	editTags      []string
	editClearTags bool
)

var editCmd = &cobra.Command{
	Use:   "edit [id]",
	Short: "Change the title, content or tags of a note",
	Long: `Edit replaces only the fields given as flags. The id and creation time
never change. --tag replaces the whole tag list; --clear-tags empties it.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id := args[0]
		patch := patchFromFlags(cmd)
		if patch.IsEmpty() {
			return fmt.Errorf("nothing to change: use --title, --content, --tag or --clear-tags")
		}

		svc := openService()
		if _, ok := svc.Get(id); !ok {
			return fmt.Errorf("note not found: %s", id)
		}
		svc.EditNote(context.Background(), id, patch)
		checkSaved(svc)

		fmt.Fprintf(cmd.OutOrStdout(), "Note updated: %s\n", id)
		return nil
	},
}

func patchFromFlags(cmd *cobra.Command) core.Patch {
	var p core.Patch
	flags := cmd.Flags()
	if flags.Changed("title") {
		p = p.SetTitle(editTitle)
	}
	if flags.Changed("content") {
		p = p.SetContent(editContent)
	}
	switch {
	case editClearTags:
		p = p.SetTags([]string{})
	case flags.Changed("tag"):
		p = p.SetTags(editTags)
	}
	return p
}

func init() {
	rootCmd.AddCommand(editCmd)
	editCmd.Flags().StringVar(&editTitle, "title", "", "New title")
	editCmd.Flags().StringVar(&editContent, "content", "", "New content")
	editCmd.Flags().StringArrayVar(&editTags, "tag", nil, "New tag list (repeatable)")
	editCmd.Flags().BoolVar(&editClearTags, "clear-tags", false, "Remove all tags")
}
