package output

import (
	"context"
	"io"
)

// Formatter renders an entry snapshot in a specific export format.
type Formatter interface {
	// Format writes the snapshot to w.
	Format(ctx context.Context, snap *Snapshot, w io.Writer) error

	// Name returns the format name (text, json, csv).
	Name() string
}

// FormatOptions controls formatter behavior.
type FormatOptions struct {
	// Detailed enables per-category breakdown in text output.
	Detailed bool
}
