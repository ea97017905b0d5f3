package commands

import (
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/AndrewKWatts/LogViewer/internal/session"
)

// StatsOptions holds command-line options for the stats command.
type StatsOptions struct {
	SelectOptions
}

// NewStatsCommand creates the stats command.
func NewStatsCommand() *cobra.Command {
	opts := &StatsOptions{}

	cmd := &cobra.Command{
		Use:   "stats <file|dir|glob>...",
		Short: "Summarize parsed log entries",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStats(cmd, args, opts)
		},
	}

	addSelectFlags(cmd, &opts.SelectOptions)
	return cmd
}

func runStats(cmd *cobra.Command, args []string, opts *StatsOptions) error {
	cfg, err := loadSchema(opts.ConfigPath)
	if err != nil {
		return err
	}

	files, err := resolvePaths(cfg, args)
	if err != nil {
		return err
	}

	criteria, err := buildCriteria(cfg, &opts.SelectOptions)
	if err != nil {
		return err
	}

	sess := session.New(cfg)
	if _, err := sess.Load(files); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}
	sess.SetCriteria(criteria)

	stats := sess.Stats()
	out := cmd.OutOrStdout()

	fmt.Fprintf(out, "Files:           %d\n", len(files))
	fmt.Fprintf(out, "Total entries:   %d\n", stats.Total)
	fmt.Fprintf(out, "After filters:   %d\n", stats.Filtered)

	fmt.Fprintf(out, "Categories:      ")
	for i, cat := range cfg.Categories {
		if i > 0 {
			fmt.Fprint(out, ", ")
		}
		fmt.Fprintf(out, "%s (%s)", cat.Name, cat.Type)
	}
	fmt.Fprintln(out)

	if len(stats.Levels) > 0 {
		fmt.Fprintln(out, "Log levels:")
		levels := make([]string, 0, len(stats.Levels))
		for level := range stats.Levels {
			levels = append(levels, level)
		}
		sort.Strings(levels)
		for _, level := range levels {
			fmt.Fprintf(out, "  %-10s %d\n", level, stats.Levels[level])
		}
	}
	return nil
}
