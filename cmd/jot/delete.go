package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var deleteCmd = &cobra.Command{
	Use:   "delete [id]",
	Short: "Delete a note",
	Long:  `Delete removes a note permanently. Deleting an unknown id is a no-op.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id := args[0]
		svc := openService()

		_, existed := svc.Get(id)
		svc.DeleteNote(context.Background(), id)
		checkSaved(svc)

		if existed {
			fmt.Fprintf(cmd.OutOrStdout(), "Note deleted: %s\n", id)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(deleteCmd)
}
