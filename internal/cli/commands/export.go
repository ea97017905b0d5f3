package commands

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/AndrewKWatts/LogViewer/internal/prefs"
	"github.com/AndrewKWatts/LogViewer/internal/session"
	"github.com/AndrewKWatts/LogViewer/pkg/output"
)

// ExportOptions holds command-line options for the export command.
type ExportOptions struct {
	SelectOptions
	Format   string
	Output   string
	Detailed bool
}

// NewExportCommand creates the export command.
func NewExportCommand() *cobra.Command {
	opts := &ExportOptions{}

	cmd := &cobra.Command{
		Use:   "export <file|dir|glob>...",
		Short: "Export filtered entries as text, JSON, or CSV",
		Long: `Parse and filter log files, then write the surviving entries in an
export format. Field values serialize losslessly: scalars verbatim, mappings
as key=value pairs, sequences as comma-joined lists.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExport(cmd, args, opts)
		},
	}

	addSelectFlags(cmd, &opts.SelectOptions)
	cmd.Flags().StringVarP(&opts.Format, "format", "o", "", "Output format (text|json|csv); inferred from --output extension, then prefs, if omitted")
	cmd.Flags().StringVar(&opts.Output, "output", "", "Write to file instead of stdout")
	cmd.Flags().BoolVarP(&opts.Detailed, "detailed", "d", false, "Per-category breakdown in text format")

	return cmd
}

func runExport(cmd *cobra.Command, args []string, opts *ExportOptions) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

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

	formatter, err := pickFormatter(opts)
	if err != nil {
		return err
	}

	snap := &output.Snapshot{
		Config:  cfg,
		Entries: limitEntries(sess.Filtered(), opts.Limit),
		Total:   len(sess.Entries()),
	}

	var w io.Writer = cmd.OutOrStdout()
	if opts.Output != "" {
		f, err := os.Create(opts.Output) // #nosec G304 -- user-provided output path is expected
		if err != nil {
			return fmt.Errorf("creating output file: %w", err)
		}
		defer func() { _ = f.Close() }()
		w = f
	}

	if err := formatter.Format(ctx, snap, w); err != nil {
		return fmt.Errorf("formatting output: %w", err)
	}

	if opts.Output != "" {
		fmt.Fprintf(cmd.OutOrStdout(), "Exported %d entries to %s (%s)\n", len(snap.Entries), opts.Output, formatter.Name())
	}
	if len(snap.Entries) == 0 {
		ExitCode = 1
	}
	return nil
}

// pickFormatter resolves the export format: the --format flag wins, then the
// --output extension, then the user's preferred default format.
func pickFormatter(opts *ExportOptions) (output.Formatter, error) {
	formatOpts := output.FormatOptions{Detailed: opts.Detailed}
	if opts.Format == "" {
		if opts.Output != "" {
			return output.FormatterForPath(opts.Output, formatOpts), nil
		}
		return output.NewFormatter(prefs.Load("").Format, formatOpts)
	}
	return output.NewFormatter(opts.Format, formatOpts)
}
