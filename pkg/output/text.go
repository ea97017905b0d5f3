package output

import (
	"context"
	"fmt"
	"io"
	"strings"
)

// TextFormatter writes entries as plain text, one "Line N: raw" per entry, or
// a per-category breakdown in detailed mode.
type TextFormatter struct {
	opts FormatOptions
}

// Name returns the format name.
func (f *TextFormatter) Name() string {
	return "text"
}

// Format renders the snapshot as text.
func (f *TextFormatter) Format(ctx context.Context, snap *Snapshot, w io.Writer) error {
	if snap == nil {
		return errNilSnapshot
	}

	if f.opts.Detailed {
		return f.formatDetailed(snap, w)
	}

	for _, entry := range snap.Entries {
		if _, err := fmt.Fprintf(w, "Line %d: %s\n", entry.LineNumber, entry.Raw); err != nil {
			return err
		}
	}
	return nil
}

func (f *TextFormatter) formatDetailed(snap *Snapshot, w io.Writer) error {
	for i, entry := range snap.Entries {
		fmt.Fprintf(w, "%s\n", strings.Repeat("=", 60))
		fmt.Fprintf(w, "Log Entry #%d (Line %d)\n", i+1, entry.LineNumber)
		if entry.Source != "" {
			fmt.Fprintf(w, "Source: %s\n", entry.Source)
		}
		fmt.Fprintf(w, "%s\n", strings.Repeat("-", 60))

		for _, cat := range snap.Config.Categories {
			value, ok := entry.Fields[cat.Name]
			if !ok {
				continue
			}
			fmt.Fprintf(w, "%s: %s\n", cat.Name, value.String())
		}

		if entry.Multiline {
			fmt.Fprintf(w, "\n[Multi-line Entry]\nRaw text:\n%s\n", entry.Raw)
		}
		fmt.Fprintln(w)
	}

	_, err := fmt.Fprintf(w, "Exported %d of %d entries\n", len(snap.Entries), snap.Total)
	return err
}
