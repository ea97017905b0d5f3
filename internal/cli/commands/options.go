// Package commands implements the logview subcommands.
package commands

import (
	"fmt"
	"os"
	"strings"

	"github.com/AndrewKWatts/LogViewer/internal/prefs"
	"github.com/AndrewKWatts/LogViewer/pkg/config"
	"github.com/AndrewKWatts/LogViewer/pkg/filter"
	"github.com/AndrewKWatts/LogViewer/pkg/parser"
)

// ExitCode is set by commands to indicate the result.
var ExitCode = 0

// SelectOptions are the flags shared by every command that reads logs.
type SelectOptions struct {
	ConfigPath string
	Filters    []string
	Search     string
	Structural string
	Limit      int
}

// loadSchema loads the schema file, or the built-in default schema when no
// path is given.
func loadSchema(path string) (*config.Config, error) {
	if strings.TrimSpace(path) == "" {
		return config.Default(), nil
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	return cfg, nil
}

// resolvePaths expands the file/dir/glob arguments into a concrete file list.
// Directories are walked recursively using the schema's file filters.
func resolvePaths(cfg *config.Config, args []string) ([]string, error) {
	var patterns []string
	var files []string

	for _, arg := range args {
		info, err := os.Stat(arg)
		if err == nil && info.IsDir() {
			found, err := parser.DiscoverFiles(arg, cfg.FileFilters)
			if err != nil {
				return nil, err
			}
			files = append(files, found...)
			continue
		}
		patterns = append(patterns, arg)
	}

	expanded, err := parser.ExpandGlobs(patterns)
	if err != nil {
		return nil, err
	}
	files = append(files, expanded...)

	if len(files) == 0 {
		return nil, fmt.Errorf("no log files matched: %v", args)
	}
	return files, nil
}

// buildCriteria assembles filter criteria from the selection flags. Filter
// flags use the form "Category:operator:operand"; between/not-between take a
// comma-separated "low,high" operand.
func buildCriteria(cfg *config.Config, opts *SelectOptions) (filter.Criteria, error) {
	criteria := filter.Criteria{Search: opts.Search}

	switch strings.ToLower(strings.TrimSpace(opts.Structural)) {
	case "", "all":
		criteria.Structural = filter.ShowAll
	case "only":
		criteria.Structural = filter.OnlyStructured
	case "hide":
		criteria.Structural = filter.HideStructured
	default:
		return criteria, fmt.Errorf("invalid structural mode %q (must be all, only, or hide)", opts.Structural)
	}

	for _, spec := range opts.Filters {
		pred, err := parseFilterSpec(cfg, spec)
		if err != nil {
			return criteria, err
		}
		criteria.Predicates = append(criteria.Predicates, pred)
	}
	return criteria, nil
}

func parseFilterSpec(cfg *config.Config, spec string) (filter.Predicate, error) {
	parts := strings.SplitN(spec, ":", 3)
	if len(parts) != 3 {
		return filter.Predicate{}, fmt.Errorf("invalid filter %q (expected Category:operator:operand)", spec)
	}

	name := strings.TrimSpace(parts[0])
	cat := cfg.CategoryByName(name)
	if cat == nil {
		return filter.Predicate{}, fmt.Errorf("unknown category %q in filter %q", name, spec)
	}

	op, err := filter.ParseOp(parts[1], cat.Type)
	if err != nil {
		return filter.Predicate{}, fmt.Errorf("filter %q: %w", spec, err)
	}

	pred := filter.Predicate{
		Category: cat.Name,
		Type:     cat.Type,
		Op:       op,
		Value:    strings.TrimSpace(parts[2]),
	}

	// Range operators split their operand into the two bounds.
	if op == filter.OpBetween || op == filter.OpNotBetween {
		low, high, found := strings.Cut(pred.Value, ",")
		if !found {
			return filter.Predicate{}, fmt.Errorf("filter %q: %s needs a low,high operand", spec, op)
		}
		pred.Value = strings.TrimSpace(low)
		pred.Value2 = strings.TrimSpace(high)
	}
	return pred, nil
}

// colorEnabled combines the --no-color flag with the user's color
// preference: the flag always wins, otherwise prefs decide.
func colorEnabled(noColor bool) bool {
	if noColor {
		return false
	}
	return prefs.Load("").Color
}

// limitEntries caps a list for display purposes; zero or negative means all.
func limitEntries(entries []*parser.LogEntry, limit int) []*parser.LogEntry {
	if limit > 0 && limit < len(entries) {
		return entries[:limit]
	}
	return entries
}
