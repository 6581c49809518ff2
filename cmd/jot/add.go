package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aretw0/jot/pkg/core"
)

var (
	addTitle   string
	addContent string
	addTags    []string
)

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a note",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		svc := openService()

		note, err := svc.AddNote(context.Background(), core.NoteInput{
			Title:   addTitle,
			Content: addContent,
			Tags:    addTags,
		})
		if err != nil {
			return err
		}
		checkSaved(svc)

		fmt.Fprintln(cmd.OutOrStdout(), note.ID)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(addCmd)
	addCmd.Flags().StringVar(&addTitle, "title", "", "Note title")
	addCmd.Flags().StringVar(&addContent, "content", "", "Note content")
	addCmd.Flags().StringArrayVar(&addTags, "tag", nil, "Tag (repeatable)")
}
