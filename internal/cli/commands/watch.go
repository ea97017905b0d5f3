package commands

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/AndrewKWatts/LogViewer/internal/prefs"
	"github.com/AndrewKWatts/LogViewer/internal/render"
	"github.com/AndrewKWatts/LogViewer/internal/session"
)

// WatchOptions holds command-line options for the watch command.
type WatchOptions struct {
	SelectOptions
	Interval int
	NoColor  bool
}

// NewWatchCommand creates the watch command.
func NewWatchCommand() *cobra.Command {
	opts := &WatchOptions{}

	cmd := &cobra.Command{
		Use:   "watch <file|dir|glob>...",
		Short: "Re-parse and re-display logs at an interval",
		Long: `Poll the given log files, re-parsing and re-displaying matching entries
each cycle. Watching a directory picks up files added after start.
Stops on Ctrl-C.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWatch(cmd, args, opts)
		},
	}

	addSelectFlags(cmd, &opts.SelectOptions)
	cmd.Flags().IntVarP(&opts.Interval, "interval", "i", 0, "Refresh interval in seconds (prefs default if omitted)")
	cmd.Flags().BoolVar(&opts.NoColor, "no-color", false, "Disable color rules")

	return cmd
}

func runWatch(cmd *cobra.Command, args []string, opts *WatchOptions) error {
	cfg, err := loadSchema(opts.ConfigPath)
	if err != nil {
		return err
	}

	criteria, err := buildCriteria(cfg, &opts.SelectOptions)
	if err != nil {
		return err
	}

	interval := opts.Interval
	if interval <= 0 {
		interval = prefs.Load("").PollSeconds
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	sess := session.New(cfg)
	r := render.New(cfg, colorEnabled(opts.NoColor))
	out := cmd.OutOrStdout()

	refresh := func() {
		// Directories are re-resolved each cycle so new files appear.
		files, err := resolvePaths(cfg, args)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
			return
		}
		if _, err := sess.Load(files); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
		}
		sess.SetCriteria(criteria)

		matched := limitEntries(sess.Filtered(), opts.Limit)
		fmt.Fprintf(out, "--- %s: %d of %d entries ---\n",
			time.Now().Format("15:04:05"), len(matched), len(sess.Entries()))
		r.WriteCompact(out, cfg, matched)
	}

	refresh()
	ticker := time.NewTicker(time.Duration(interval) * time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			refresh()
		}
	}
}
