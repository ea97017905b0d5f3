package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/AndrewKWatts/LogViewer/internal/render"
	"github.com/AndrewKWatts/LogViewer/internal/session"
)

// ViewOptions holds command-line options for the view command.
type ViewOptions struct {
	SelectOptions
	Detailed bool
	NoColor  bool
}

// NewViewCommand creates the view command.
func NewViewCommand() *cobra.Command {
	opts := &ViewOptions{}

	cmd := &cobra.Command{
		Use:   "view <file|dir|glob>...",
		Short: "Parse, filter, and display log files",
		Long: `Parse log files according to the schema and display matching entries.

Filters use Category:operator:operand, e.g.:
  --filter "LogLevel:equals:ERROR"
  --filter "ErrorCode:between:1000,2000"
  --filter "Details:has-key:action"

Exit codes:
  0 - Entries displayed
  1 - No entries matched
  2 - Configuration or runtime error`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runView(cmd, args, opts)
		},
	}

	addSelectFlags(cmd, &opts.SelectOptions)
	cmd.Flags().BoolVarP(&opts.Detailed, "detailed", "d", false, "Per-category breakdown instead of one line per entry")
	cmd.Flags().BoolVar(&opts.NoColor, "no-color", false, "Disable color rules")

	return cmd
}

func addSelectFlags(cmd *cobra.Command, opts *SelectOptions) {
	cmd.Flags().StringVarP(&opts.ConfigPath, "config", "c", "", "Schema config file (built-in default if omitted)")
	cmd.Flags().StringArrayVarP(&opts.Filters, "filter", "f", nil, "Category filter (repeatable): Category:operator:operand")
	cmd.Flags().StringVarP(&opts.Search, "search", "s", "", "Case-insensitive raw text search")
	cmd.Flags().StringVar(&opts.Structural, "structural", "all", "Structural display filter (all|only|hide)")
	cmd.Flags().IntVarP(&opts.Limit, "limit", "n", 0, "Show at most N entries (0 = all)")
}

func runView(cmd *cobra.Command, args []string, opts *ViewOptions) error {
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
	count, err := sess.Load(files)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}
	sess.SetCriteria(criteria)

	matched := sess.Filtered()
	display := limitEntries(matched, opts.Limit)

	r := render.New(cfg, colorEnabled(opts.NoColor))
	if opts.Detailed {
		r.WriteDetailed(cmd.OutOrStdout(), cfg, display)
	} else {
		r.WriteCompact(cmd.OutOrStdout(), cfg, display)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "\nShowing %d of %d entries (%d parsed)\n", len(display), len(matched), count)

	if len(matched) == 0 {
		ExitCode = 1
	}
	return nil
}
