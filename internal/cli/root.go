// Package cli provides the command-line interface for logview.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/AndrewKWatts/LogViewer/internal/cli/commands"
)

// Execute runs the root command and returns the exit code.
func Execute() int {
	rootCmd := NewRootCommand()

	if err := rootCmd.Execute(); err != nil {
		// Print error to stderr (SilenceErrors prevents Cobra from doing this)
		_, _ = fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 2 // Configuration or runtime error
	}
	return commands.ExitCode
}

// NewRootCommand creates the root cobra command.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "logview",
		Short: "Schema-driven log parsing, filtering, and viewing",
		Long: `logview parses semi-structured text logs whose shape is described by a
user-editable schema: a delimiter set plus an ordered list of named, typed
categories. Entries decompose into typed fields, declarative color rules
highlight values, and multi-predicate filters narrow the view.

Schemas are JSON files under a logViewerConfig root; see validate for the
normalized result of loading one.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(commands.NewViewCommand())
	rootCmd.AddCommand(commands.NewExportCommand())
	rootCmd.AddCommand(commands.NewStatsCommand())
	rootCmd.AddCommand(commands.NewValidateCommand())
	rootCmd.AddCommand(commands.NewWatchCommand())
	rootCmd.AddCommand(commands.NewTuiCommand())
	rootCmd.AddCommand(commands.NewVersionCommand())

	return rootCmd
}
