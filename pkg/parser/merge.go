package parser

import (
	"sort"

	"github.com/AndrewKWatts/LogViewer/pkg/config"
)

// Merge combines entries from several files into one view. When the schema
// declares a datetime category, the merged entries are stable-sorted by its
// stringified value (lexicographic; timestamps are opaque strings). Without
// one, source order is preserved. The inputs are not modified; entries remain
// independent per-file copies.
func Merge(cfg *config.Config, lists ...[]*LogEntry) []*LogEntry {
	total := 0
	for _, l := range lists {
		total += len(l)
	}

	merged := make([]*LogEntry, 0, total)
	for _, l := range lists {
		merged = append(merged, l...)
	}

	tsCat := cfg.FirstDateTimeCategory()
	if tsCat == nil {
		return merged
	}

	sort.SliceStable(merged, func(i, j int) bool {
		return merged[i].Field(tsCat.Name).String() < merged[j].Field(tsCat.Name).String()
	})
	return merged
}
