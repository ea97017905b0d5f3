// Package session holds the mutable viewing state for one set of log files:
// the schema, the parsed entries, and the currently filtered view. The core
// packages are pure; this is the explicit context object their callers own.
package session

import (
	"errors"
	"fmt"
	"sync"

	"github.com/AndrewKWatts/LogViewer/pkg/config"
	"github.com/AndrewKWatts/LogViewer/pkg/filter"
	"github.com/AndrewKWatts/LogViewer/pkg/parser"
)

// Session is safe for concurrent use. Parsing happens outside the lock; the
// caller contract is one in-flight Load/Reload per session, which the poller
// guarantees by running reloads on a single goroutine.
type Session struct {
	cfg *config.Config

	mu       sync.RWMutex
	paths    []string
	entries  []*parser.LogEntry
	filtered []*parser.LogEntry
	criteria filter.Criteria
}

// New creates an empty session over a loaded schema.
func New(cfg *config.Config) *Session {
	return &Session{cfg: cfg}
}

// Config returns the read-only schema the session parses against.
func (s *Session) Config() *config.Config {
	return s.cfg
}

// Load parses the given files and replaces the session contents wholesale.
// Unreadable files are skipped, not fatal: parsing continues with the rest
// and the joined per-file errors are returned alongside the loaded count.
// Active filter criteria are re-applied to the new entries.
func (s *Session) Load(paths []string) (int, error) {
	var lists [][]*parser.LogEntry
	var errs []error

	for _, path := range paths {
		entries, err := parser.ParseFile(path, s.cfg)
		if err != nil {
			errs = append(errs, fmt.Errorf("skipping %s: %w", path, err))
			continue
		}
		lists = append(lists, entries)
	}

	var merged []*parser.LogEntry
	if len(lists) == 1 {
		merged = lists[0]
	} else if len(lists) > 1 {
		merged = parser.Merge(s.cfg, lists...)
	}

	s.mu.Lock()
	s.paths = append([]string(nil), paths...)
	s.entries = merged
	s.filtered = filter.Apply(merged, s.criteria)
	s.mu.Unlock()

	return len(merged), errors.Join(errs...)
}

// Reload re-parses the files of the previous Load.
func (s *Session) Reload() (int, error) {
	s.mu.RLock()
	paths := append([]string(nil), s.paths...)
	s.mu.RUnlock()

	if len(paths) == 0 {
		return 0, nil
	}
	return s.Load(paths)
}

// SetCriteria replaces the active filter criteria and recomputes the
// filtered view.
func (s *Session) SetCriteria(c filter.Criteria) {
	s.mu.Lock()
	s.criteria = c
	s.filtered = filter.Apply(s.entries, c)
	s.mu.Unlock()
}

// ResetFilters clears all criteria so the filtered view shows everything.
func (s *Session) ResetFilters() {
	s.SetCriteria(filter.Criteria{})
}

// Criteria returns the active filter criteria.
func (s *Session) Criteria() filter.Criteria {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.criteria
}

// Entries returns the full entry list.
func (s *Session) Entries() []*parser.LogEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.entries
}

// Filtered returns the entries surviving the active criteria.
func (s *Session) Filtered() []*parser.LogEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.filtered
}

// Stats summarizes the loaded entries.
type Stats struct {
	Total    int
	Filtered int

	// Levels counts entries per value of the LogLevel category, when the
	// schema declares one.
	Levels map[string]int
}

// Stats computes summary statistics for the session.
func (s *Session) Stats() Stats {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stats := Stats{
		Total:    len(s.entries),
		Filtered: len(s.filtered),
	}

	if s.cfg.CategoryByName("LogLevel") != nil {
		stats.Levels = make(map[string]int)
		for _, entry := range s.entries {
			level := entry.Field("LogLevel").String()
			if level != "" {
				stats.Levels[level]++
			}
		}
	}
	return stats
}
