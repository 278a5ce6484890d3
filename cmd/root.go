/*
Copyright © 2026 James Lawson (jpl-au) <hello@caelisco.net>
*/

// root.go defines the root command and CLI execution entry point.
//
// Separated from init_extensions.go to isolate cobra setup from extension
// initialisation logic.
//
// Design: PersistentPreRunE handles context initialisation lazily - only
// commands that need the shared context trigger extension init. This enables
// bootstrap commands (config, guide, version) to work on a fresh machine.
// The standaloneCommands map controls which commands skip initialisation.

package cmd

import (
	"fmt"
	"os"
	"slices"

	"github.com/jpl-au/sqlmate/internal/telemetry"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "sqlmate",
	Short: "SQL Server companion for formatting and tool launching",
	Long:  `A command-line companion for SQL Server development: named connection profiles, pluggable SQL formatters with an interactive picker, and SSMS dialog launching via the bundled SsmsMin tool.`,
	Run: func(cmd *cobra.Command, _ []string) {
		_ = cmd.Help()
	},
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		if output != "" && !slices.Contains(validOutputFormats, output) {
			return fmt.Errorf("invalid output format: %s (valid: %v)", output, validOutputFormats)
		}

		// Initialise the shared context for commands that need it
		cmdName := topLevelCmdName(cmd)
		if !standaloneCommands[cmdName] {
			if err := initExtensions(); err != nil {
				if JSON() {
					_ = PrintJSON(map[string]string{"error": err.Error()})
					cmd.SilenceErrors = true
					cmd.SilenceUsage = true
				}
				return fmt.Errorf("initialise extensions: %w", err)
			}
		}

		return nil
	},
}

// topLevelCmdName returns the name of the top-level command (direct child of root).
// For "sqlmate format document q.sql", returns "format".
// For "sqlmate connection add prod", returns "connection".
func topLevelCmdName(cmd *cobra.Command) string {
	// Walk up until we find a command whose parent has no parent (the root)
	for cmd.HasParent() && cmd.Parent().HasParent() {
		cmd = cmd.Parent()
	}
	return cmd.Name()
}

// Execute runs the root command and handles process lifecycle.
// Opens telemetry, registers extensions, executes the command, and ensures
// proper cleanup before exit. Exit code 1 indicates error.
func Execute() {
	// Initialise telemetry (warn if it fails, but continue)
	if err := telemetry.Open(); err != nil {
		fmt.Fprintf(os.Stderr, "warning: telemetry unavailable: %v\n", err)
	}
	defer telemetry.Close()

	registerExtensions()
	err := rootCmd.Execute()

	if err != nil {
		// os.Exit skips deferred calls, so flush telemetry here too.
		telemetry.Close()
		os.Exit(1)
	}
}

// RootCmd returns the root command for testing and extension access.
func RootCmd() *cobra.Command {
	return rootCmd
}
