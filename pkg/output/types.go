// Package output provides read-only export projections of parsed, filtered
// log entries: plain text, JSON, and CSV.
package output

import (
	"errors"
	"fmt"
	"strings"

	"github.com/AndrewKWatts/LogViewer/pkg/config"
	"github.com/AndrewKWatts/LogViewer/pkg/parser"
)

// Snapshot is the exportable view of a session: the schema plus the entries
// that survived filtering.
type Snapshot struct {
	Config  *config.Config
	Entries []*parser.LogEntry

	// Total is the pre-filter entry count, for summary lines.
	Total int
}

// NewFormatter returns the formatter for a format name.
func NewFormatter(name string, opts FormatOptions) (Formatter, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "text", "txt":
		return &TextFormatter{opts: opts}, nil
	case "json":
		return &JSONFormatter{opts: opts}, nil
	case "csv":
		return &CSVFormatter{opts: opts}, nil
	default:
		return nil, fmt.Errorf("unknown output format %q (must be text, json, or csv)", name)
	}
}

// FormatterForPath picks a formatter from a file extension, defaulting to
// text for unknown extensions.
func FormatterForPath(path string, opts FormatOptions) Formatter {
	switch {
	case strings.HasSuffix(path, ".json"):
		return &JSONFormatter{opts: opts}
	case strings.HasSuffix(path, ".csv"):
		return &CSVFormatter{opts: opts}
	default:
		return &TextFormatter{opts: opts}
	}
}

var errNilSnapshot = errors.New("nil snapshot")
