package main

import (
	"github.com/spf13/cobra"
)

var (
	listSearch string
	listTag    string
	listFormat string
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List notes, optionally filtered by search term and tag",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		svc := openService()
		svc.SetSearch(listSearch)
		if listTag != "" {
			svc.ToggleTag(listTag)
		}
		return render(cmd.OutOrStdout(), listFormat, svc.Visible())
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().StringVarP(&listSearch, "search", "s", "", "Case-insensitive search in title and content")
	listCmd.Flags().StringVar(&listTag, "tag", "", "Only notes with this exact tag")
	listCmd.Flags().StringVarP(&listFormat, "format", "f", formatText, "Output format: text, json or yaml")
}
