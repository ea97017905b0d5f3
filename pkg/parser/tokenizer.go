package parser

import (
	"regexp"
	"strings"

	"github.com/AndrewKWatts/LogViewer/pkg/config"
)

// SplitEntries splits raw file content into entry text blocks.
//
// When both the log-start and log-end delimiters are configured, the content
// is scanned for non-overlapping, non-greedy start...end matches whose bodies
// may span newlines. If the pair is configured but never found the tokenizer
// degrades to line mode rather than reporting zero entries for plausibly
// line-oriented content. Blank bodies are discarded.
func SplitEntries(content string, delims config.Delimiters) []RawEntry {
	if delims.LogStart != "" && delims.LogEnd != "" {
		entries := splitDelimited(content, delims.LogStart, delims.LogEnd)
		if len(entries) > 0 {
			return entries
		}
	}
	return splitLines(content)
}

func splitDelimited(content, start, end string) []RawEntry {
	pattern := regexp.MustCompile(`(?s)` + regexp.QuoteMeta(start) + `(.*?)` + regexp.QuoteMeta(end))

	var entries []RawEntry
	for _, match := range pattern.FindAllStringSubmatch(content, -1) {
		body := strings.TrimSpace(match[1])
		if body == "" {
			continue
		}
		entries = append(entries, RawEntry{
			Text:      body,
			Multiline: strings.Contains(body, "\n"),
		})
	}
	return entries
}

func splitLines(content string) []RawEntry {
	var entries []RawEntry
	for _, line := range strings.Split(strings.TrimSpace(content), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		entries = append(entries, RawEntry{Text: line})
	}
	return entries
}

// SplitFields splits one entry text into positional field strings on the
// category separator. Plain split, no escaping; each field is trimmed.
func SplitFields(entryText, categorySeparator string) []string {
	var parts []string
	if categorySeparator == "" {
		parts = []string{entryText}
	} else {
		parts = strings.Split(entryText, categorySeparator)
	}
	for i, p := range parts {
		parts[i] = strings.TrimSpace(p)
	}
	return parts
}
