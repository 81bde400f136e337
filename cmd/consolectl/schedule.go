package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// scheduleCmd represents the schedule command
var scheduleCmd = &cobra.Command{
	Use:     "schedules",
	Aliases: []string{"schedule"},
	Short:   "Inspect and run backup schedules.",
}

var scheduleListCmd = &cobra.Command{
	Use:   "list",
	Short: "List backup schedules.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := opContext(cmd)
		defer cancel()
		items, err := console.Services.Schedules.List(ctx)
		if err != nil {
			return err
		}
		if jsonOutput {
			return printJSON(cmd.OutOrStdout(), items)
		}
		renderSchedules(cmd.OutOrStdout(), items, location())
		return nil
	},
}

var scheduleRunCmd = &cobra.Command{
	Use:   "run",
	Short: "Run every schedule that is due now.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := opContext(cmd)
		defer cancel()
		sum, err := console.Services.Schedules.RunDue(ctx)
		if err != nil {
			return err
		}
		if jsonOutput {
			return printJSON(cmd.OutOrStdout(), sum)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "due: %d, succeeded: %d, failed: %d\n", sum.Due, sum.Succeeded, sum.Failed)
		return nil
	},
}

func init() {
	scheduleCmd.AddCommand(scheduleListCmd, scheduleRunCmd)
}
