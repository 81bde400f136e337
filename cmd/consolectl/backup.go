package main

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"tenantconsole/internal/model"
)

var (
	backupClientID string
	backupOpts     model.BackupOptions
	restoreConfirm string
)

// backupCmd represents the backup command
var backupCmd = &cobra.Command{
	Use:     "backups",
	Aliases: []string{"backup"},
	Short:   "Create, list, restore and delete backups.",
}

var backupListCmd = &cobra.Command{
	Use:   "list",
	Short: "List backups, newest first.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := opContext(cmd)
		defer cancel()
		items, err := console.Services.Backups.List(ctx, backupClientID)
		if err != nil {
			return err
		}
		if jsonOutput {
			return printJSON(cmd.OutOrStdout(), items)
		}
		renderBackups(cmd.OutOrStdout(), items, location())
		return nil
	},
}

var backupCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Back up the given tables, or every default table with --all.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := opContext(cmd)
		defer cancel()
		res, err := console.Services.Backups.Create(ctx, backupOpts)
		if err != nil {
			return err
		}
		if jsonOutput {
			return printJSON(cmd.OutOrStdout(), res)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "backed up %d tables (%s)\n", len(res.Tables), humanize.Bytes(uint64(max(res.Size, 0))))
		if res.Record != nil {
			fmt.Fprintf(cmd.OutOrStdout(), "backup id: %s\n", res.Record.ID)
		}
		for _, p := range res.FilePaths {
			fmt.Fprintf(cmd.OutOrStdout(), "  %s\n", p)
		}
		return nil
	},
}

var backupRestoreCmd = &cobra.Command{
	Use:   "restore <backup-id>",
	Short: "Restore a completed backup. --confirm must repeat the backup's table name.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := opContext(cmd)
		defer cancel()
		if err := console.Services.Backups.Restore(ctx, args[0], restoreConfirm); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "backup %s restored\n", args[0])
		return nil
	},
}

var backupDeleteCmd = &cobra.Command{
	Use:   "delete <backup-id>",
	Short: "Delete a backup and its stored files.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := opContext(cmd)
		defer cancel()
		if err := console.Services.Backups.Delete(ctx, args[0]); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "backup %s deleted\n", args[0])
		return nil
	},
}

var backupPruneCmd = &cobra.Command{
	Use:   "prune",
	Short: "Delete backups past their retention period.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := opContext(cmd)
		defer cancel()
		n, err := console.Services.Backups.PruneExpired(ctx)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%d expired backups deleted\n", n)
		return nil
	},
}

func init() {
	backupListCmd.Flags().StringVar(&backupClientID, "client", "", "only backups containing this client's rows")

	f := backupCreateCmd.Flags()
	f.StringSliceVar(&backupOpts.Tables, "table", nil, "table to back up (repeatable)")
	f.BoolVar(&backupOpts.SelectAllTables, "all", false, "back up every default table")
	f.StringVar(&backupOpts.ClientID, "client", "", "only rows owned by this client")
	f.StringVar(&backupOpts.Type, "type", model.BackupTypeFull, "full, incremental or differential")
	f.StringVar(&backupOpts.StorageType, "storage", model.StorageCloud, "cloud, local or both")
	f.BoolVar(&backupOpts.Compression, "compress", false, "zip local files")
	f.StringVar(&backupOpts.Description, "description", "", "free text note")
	f.IntVar(&backupOpts.RetentionDays, "retention-days", 0, "days to keep the backup (0 uses the default)")

	backupRestoreCmd.Flags().StringVar(&restoreConfirm, "confirm", "", "the backup's table name")
	_ = backupRestoreCmd.MarkFlagRequired("confirm")

	backupCmd.AddCommand(backupListCmd, backupCreateCmd, backupRestoreCmd, backupDeleteCmd, backupPruneCmd)
}
