package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	jotlifecycle "github.com/aretw0/jot/pkg/adapters/lifecycle"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Follow changes made to the notes record by other processes",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		svc := openService()
		events, err := svc.Watch(ctx)
		if err != nil {
			return err
		}

		src := jotlifecycle.NewSource(events)
		if err := src.Start(ctx); err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Watching %s (Ctrl+C to stop)\n", svc.Store().Key())
		for e := range src.Events() {
			fmt.Fprintln(out, e.String())
			if err := svc.Reload(ctx); err != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "warning: reload failed: %v\n", err)
				svc.ClearError()
				continue
			}
			fmt.Fprintf(out, "%d notes\n", len(svc.Notes()))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(watchCmd)
}
