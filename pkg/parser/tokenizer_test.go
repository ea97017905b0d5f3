package parser

import (
	"reflect"
	"strings"
	"testing"

	"github.com/AndrewKWatts/LogViewer/pkg/config"
)

func TestSplitEntries_DelimiterMode(t *testing.T) {
	delims := config.Delimiters{LogStart: "<<", LogEnd: ">>"}
	content := "<<first entry>> junk <<second\nentry>><<third>>"

	entries := SplitEntries(content, delims)
	if len(entries) != 3 {
		t.Fatalf("entries = %d, want 3", len(entries))
	}

	if entries[0].Text != "first entry" || entries[0].Multiline {
		t.Errorf("entries[0] = %+v, want single-line %q", entries[0], "first entry")
	}
	if entries[1].Text != "second\nentry" || !entries[1].Multiline {
		t.Errorf("entries[1] = %+v, want multiline", entries[1])
	}
	if entries[2].Text != "third" {
		t.Errorf("entries[2].Text = %q, want %q", entries[2].Text, "third")
	}
}

func TestSplitEntries_NonGreedyMatching(t *testing.T) {
	delims := config.Delimiters{LogStart: "[", LogEnd: "]"}
	entries := SplitEntries("[a][b][c]", delims)

	want := []string{"a", "b", "c"}
	if len(entries) != len(want) {
		t.Fatalf("entries = %d, want %d", len(entries), len(want))
	}
	for i, w := range want {
		if entries[i].Text != w {
			t.Errorf("entries[%d].Text = %q, want %q", i, entries[i].Text, w)
		}
	}
}

func TestSplitEntries_BlankBodiesDiscarded(t *testing.T) {
	delims := config.Delimiters{LogStart: "<", LogEnd: ">"}
	entries := SplitEntries("<a><  ><b>", delims)

	if len(entries) != 2 {
		t.Fatalf("entries = %d, want 2 (blank body discarded)", len(entries))
	}
	if entries[0].Text != "a" || entries[1].Text != "b" {
		t.Errorf("entries = [%q, %q], want [a, b]", entries[0].Text, entries[1].Text)
	}
}

func TestSplitEntries_LineMode(t *testing.T) {
	content := "line one\n\n  line two  \nline three\n"

	entries := SplitEntries(content, config.Delimiters{})
	want := []string{"line one", "line two", "line three"}
	if len(entries) != len(want) {
		t.Fatalf("entries = %d, want %d", len(entries), len(want))
	}
	for i, w := range want {
		if entries[i].Text != w {
			t.Errorf("entries[%d].Text = %q, want %q", i, entries[i].Text, w)
		}
		if entries[i].Multiline {
			t.Errorf("entries[%d].Multiline = true, want false", i)
		}
	}
}

func TestSplitEntries_FallbackWhenDelimitersNeverMatch(t *testing.T) {
	delims := config.Delimiters{LogStart: "<<", LogEnd: ">>"}
	content := "plain line one\nplain line two"

	entries := SplitEntries(content, delims)
	if len(entries) != 2 {
		t.Fatalf("entries = %d, want 2 (line-mode fallback)", len(entries))
	}
}

func TestSplitEntries_EmptyContent(t *testing.T) {
	if entries := SplitEntries("", config.Delimiters{}); len(entries) != 0 {
		t.Errorf("entries = %d, want 0", len(entries))
	}
	if entries := SplitEntries("   \n\n  ", config.Delimiters{}); len(entries) != 0 {
		t.Errorf("entries = %d for whitespace content, want 0", len(entries))
	}
}

// Single-line bodies from a delimiter-pair scan retokenize to the same entry
// count in line mode.
func TestSplitEntries_ScanOutputStableInLineMode(t *testing.T) {
	delims := config.Delimiters{LogStart: "<", LogEnd: ">"}
	scanned := SplitEntries("<a|b> <c|d> <e|f>", delims)
	if len(scanned) != 3 {
		t.Fatalf("scanned = %d, want 3", len(scanned))
	}

	texts := make([]string, len(scanned))
	for i, e := range scanned {
		texts[i] = e.Text
	}
	relined := SplitEntries(strings.Join(texts, "\n"), config.Delimiters{})
	if len(relined) != len(scanned) {
		t.Errorf("line-mode retokenize = %d entries, want %d", len(relined), len(scanned))
	}
}

func TestSplitEntries_RegexMetacharacterDelimiters(t *testing.T) {
	delims := config.Delimiters{LogStart: "(*", LogEnd: "*)"}
	entries := SplitEntries("(*one*)(*two*)", delims)

	if len(entries) != 2 || entries[0].Text != "one" || entries[1].Text != "two" {
		t.Errorf("entries = %+v, want [one two]", entries)
	}
}

func TestSplitFields(t *testing.T) {
	tests := []struct {
		name      string
		text      string
		separator string
		want      []string
	}{
		{"basic", "a|b|c", "|", []string{"a", "b", "c"}},
		{"trims fields", " a | b ", "|", []string{"a", "b"}},
		{"separator absent", "abc", "|", []string{"abc"}},
		{"empty separator", "a|b", "", []string{"a|b"}},
		{"empty trailing field", "a|b|", "|", []string{"a", "b", ""}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SplitFields(tt.text, tt.separator)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("SplitFields(%q, %q) = %v, want %v", tt.text, tt.separator, got, tt.want)
			}
		})
	}
}
