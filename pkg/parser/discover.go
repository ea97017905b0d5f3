package parser

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"
)

// ExpandGlobs expands a list of file paths and glob patterns into a
// deduplicated, sorted list of paths. Patterns that match nothing are kept
// as literal paths so the caller can report file-not-found per file.
func ExpandGlobs(patterns []string) ([]string, error) {
	seen := make(map[string]bool)
	var result []string

	for _, pattern := range patterns {
		matches, err := filepath.Glob(pattern)
		if err != nil {
			return nil, fmt.Errorf("invalid glob pattern %q: %w", pattern, err)
		}

		if len(matches) == 0 {
			if !seen[pattern] {
				seen[pattern] = true
				result = append(result, pattern)
			}
			continue
		}

		for _, match := range matches {
			if !seen[match] {
				seen[match] = true
				result = append(result, match)
			}
		}
	}

	sort.Strings(result)
	return result, nil
}

// DiscoverFiles walks a folder recursively and returns every file whose name
// ends with one of the extension filters (case-insensitive), sorted for
// deterministic ordering.
func DiscoverFiles(root string, filters []string) ([]string, error) {
	var files []string

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		name := strings.ToLower(d.Name())
		for _, ext := range filters {
			if strings.HasSuffix(name, strings.ToLower(ext)) {
				files = append(files, path)
				break
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("scanning folder %s: %w", root, err)
	}

	sort.Strings(files)
	return files, nil
}
