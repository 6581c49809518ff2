package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aretw0/jot/pkg/core"
)

var showFormat string

var showCmd = &cobra.Command{
	Use:   "show [id]",
	Short: "Show a note",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc := openService()
		note, ok := svc.Get(args[0])
		if !ok {
			return fmt.Errorf("note not found: %s", args[0])
		}
		if showFormat != formatText {
			return render(cmd.OutOrStdout(), showFormat, []core.Note{note})
		}
		return renderNote(cmd.OutOrStdout(), note)
	},
}

func init() {
	rootCmd.AddCommand(showCmd)
	showCmd.Flags().StringVarP(&showFormat, "format", "f", formatText, "Output format: text, json or yaml")
}
