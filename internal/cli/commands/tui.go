package commands

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/AndrewKWatts/LogViewer/internal/prefs"
	"github.com/AndrewKWatts/LogViewer/internal/render"
	"github.com/AndrewKWatts/LogViewer/internal/session"
	"github.com/AndrewKWatts/LogViewer/internal/tui"
)

// TuiOptions holds command-line options for the tui command.
type TuiOptions struct {
	SelectOptions
	NoColor bool
}

// NewTuiCommand creates the tui command.
func NewTuiCommand() *cobra.Command {
	opts := &TuiOptions{}

	cmd := &cobra.Command{
		Use:   "tui <file|dir|glob>...",
		Short: "Browse logs interactively",
		Long: `Open an interactive viewer over the parsed entries.

Keys:
  /        live raw-text search
  s        cycle the structural filter (all/only/hide)
  enter    open the selected entry's detail pane
  r        reload the files
  a        toggle auto-refresh (prefs poll interval)
  q        quit`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTui(args, opts)
		},
	}

	addSelectFlags(cmd, &opts.SelectOptions)
	cmd.Flags().BoolVar(&opts.NoColor, "no-color", false, "Disable color rules")

	return cmd
}

func runTui(args []string, opts *TuiOptions) error {
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

	interval := time.Duration(prefs.Load("").PollSeconds) * time.Second
	return tui.Run(sess, render.New(cfg, colorEnabled(opts.NoColor)), interval)
}
