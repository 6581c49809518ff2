package main

import (
	"encoding/json"

	"github.com/aretw0/introspection"
	"github.com/spf13/cobra"
)

var stateCmd = &cobra.Command{
	Use:   "state",
	Short: "Print an introspection snapshot of the session as JSON",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		svc := openService()

		snapshot := map[string]any{
			"service": svc.State(),
			"store":   svc.Store().State(),
		}
		if b, ok := svc.Store().Backend().(introspection.Introspectable); ok {
			snapshot["backend"] = b.State()
		}

		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(snapshot)
	},
}

func init() {
	rootCmd.AddCommand(stateCmd)
}
