package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"tenantconsole/internal/export"
)

var (
	exportFormat string
	exportDir    string
)

// tableCmd represents the table command
var tableCmd = &cobra.Command{
	Use:     "tables",
	Aliases: []string{"table"},
	Short:   "Table statistics and exports.",
}

var tableStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show row counts and sizes of every table.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := opContext(cmd)
		defer cancel()
		st, err := console.Services.Schema.TableStats(ctx)
		if err != nil {
			return err
		}
		if jsonOutput {
			return printJSON(cmd.OutOrStdout(), st)
		}
		renderTableStats(cmd.OutOrStdout(), st)
		return nil
	},
}

var tableExportCmd = &cobra.Command{
	Use:   "export <table>",
	Short: "Write a table to an xlsx, sql or csv file.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := opContext(cmd)
		defer cancel()
		f, err := console.Services.Schema.Export(ctx, args[0], exportFormat)
		if err != nil {
			return err
		}
		dst := filepath.Join(exportDir, f.Name)
		if err := os.WriteFile(dst, f.Data, 0o644); err != nil {
			return fmt.Errorf("write export: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s (%s)\n", dst, humanize.Bytes(uint64(len(f.Data))))
		return nil
	},
}

func init() {
	tableExportCmd.Flags().StringVar(&exportFormat, "format", export.FormatXLSX, "xlsx, sql or csv")
	tableExportCmd.Flags().StringVar(&exportDir, "dir", ".", "output directory")

	tableCmd.AddCommand(tableStatsCmd, tableExportCmd)
}
