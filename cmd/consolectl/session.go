package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// sessionCmd represents the session command
var sessionCmd = &cobra.Command{
	Use:     "sessions",
	Aliases: []string{"session"},
	Short:   "Session statistics and cleanup.",
}

var sessionStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show session statistics.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := opContext(cmd)
		defer cancel()
		st, err := console.Services.Sessions.Stats(ctx)
		if err != nil {
			return err
		}
		if jsonOutput {
			return printJSON(cmd.OutOrStdout(), st)
		}
		renderSessionStats(cmd.OutOrStdout(), st)
		return nil
	},
}

var sessionCleanupCmd = &cobra.Command{
	Use:   "cleanup",
	Short: "End sessions idle for a day or more.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := opContext(cmd)
		defer cancel()
		n, err := console.Services.Sessions.CleanupStale(ctx)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%d stale sessions ended\n", n)
		return nil
	},
}

func init() {
	sessionCmd.AddCommand(sessionStatsCmd, sessionCleanupCmd)
}
