package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	_ "github.com/joho/godotenv/autoload"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"tenantconsole/internal/app"
	"tenantconsole/internal/config"
	"tenantconsole/internal/logging"
)

var (
	debug      bool
	jsonOutput bool
	timeout    time.Duration

	console *app.App
	logger  *zap.Logger
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:           "consolectl",
	Short:         "Tenant console maintenance tool.",
	Long:          `consolectl manages backups, schedules, table exports and sessions of the tenant console database.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if !needsDatabase(cmd) {
			return nil
		}
		cfg := config.Load()
		level := cfg.LogLevel
		if debug {
			level = "debug"
		}
		logger = logging.New(cmd.ErrOrStderr(), cfg.Location(), level)

		ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
		defer cancel()
		a, err := app.New(ctx, cfg, logger, app.Options{SkipMigrations: true})
		if err != nil {
			return err
		}
		console = a
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if console == nil {
			return nil
		}
		return console.Close()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "print JSON instead of a table")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 10*time.Minute, "deadline for the operation")

	rootCmd.AddCommand(backupCmd, scheduleCmd, tableCmd, sessionCmd)
}

// needsDatabase is false for the built-in help and completion commands.
func needsDatabase(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		switch c.Name() {
		case "help", "completion", cobra.ShellCompRequestCmd, cobra.ShellCompNoDescRequestCmd:
			return false
		}
	}
	return true
}

// opContext bounds a command by the --timeout flag.
func opContext(cmd *cobra.Command) (context.Context, context.CancelFunc) {
	return context.WithTimeout(cmd.Context(), timeout)
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func location() *time.Location {
	if console == nil {
		return time.UTC
	}
	return console.Config.Location()
}
