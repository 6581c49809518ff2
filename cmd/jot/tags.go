package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var tagsCmd = &cobra.Command{
	Use:   "tags",
	Short: "List the known tags and every tag in use",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		svc := openService()
		counts := map[string]int{}
		for _, n := range svc.Notes() {
			for _, t := range n.Tags {
				counts[t]++
			}
		}
		for _, t := range svc.Tags() {
			fmt.Fprintf(cmd.OutOrStdout(), "%s\t%d\n", t, counts[t])
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(tagsCmd)
}
