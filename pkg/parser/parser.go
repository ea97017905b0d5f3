package parser

import (
	"fmt"
	"os"

	"github.com/AndrewKWatts/LogViewer/pkg/config"
)

// ParseContent tokenizes and decodes raw content into entries. Entry line
// numbers are 1-based in scan order; the source identifier is stamped onto
// every entry.
func ParseContent(content string, cfg *config.Config, source string) []*LogEntry {
	raws := SplitEntries(content, cfg.Delimiters)

	entries := make([]*LogEntry, 0, len(raws))
	for i, raw := range raws {
		entry := DecodeEntry(raw, i+1, cfg)
		entry.Source = source
		entries = append(entries, entry)
	}
	return entries
}

// ParseFile reads and parses a whole log file into memory.
func ParseFile(path string, cfg *config.Config) ([]*LogEntry, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- user-provided paths are expected
	if err != nil {
		return nil, fmt.Errorf("reading log file %s: %w", path, err)
	}
	return ParseContent(string(data), cfg, path), nil
}
