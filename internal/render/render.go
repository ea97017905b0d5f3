// Package render writes parsed entries to a terminal, applying the colors
// the classifier resolves from the schema's rules.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/AndrewKWatts/LogViewer/pkg/classify"
	"github.com/AndrewKWatts/LogViewer/pkg/config"
	"github.com/AndrewKWatts/LogViewer/pkg/parser"
)

// Renderer composes display lines for entries. Zero value renders without
// color; set Styles to enable classification-driven coloring.
type Renderer struct {
	Styles *classify.StyleTable
	Color  bool
}

// New returns a renderer with a style table prebuilt from the schema.
func New(cfg *config.Config, color bool) *Renderer {
	return &Renderer{
		Styles: classify.NewStyleTable(cfg),
		Color:  color,
	}
}

// WriteCompact writes one line per entry: "[i] Line N: field | field | ...".
func (r *Renderer) WriteCompact(w io.Writer, cfg *config.Config, entries []*parser.LogEntry) {
	for i, entry := range entries {
		fmt.Fprintln(w, r.CompactLine(cfg, entry, i+1))
	}
}

// CompactLine renders a single entry with its display index.
func (r *Renderer) CompactLine(cfg *config.Config, entry *parser.LogEntry, index int) string {
	prefix := fmt.Sprintf("[%d] Line %d: ", index, entry.LineNumber)
	body := FormatFields(cfg, entry)

	if !r.Color || r.Styles == nil {
		return prefix + body
	}
	return r.colorize(prefix, body, entry)
}

// colorize applies resolved colors with the priority the rule kinds imply:
// a WholeLine match paints everything, a LineNumber match paints the index
// prefix, and SpecificValue matches paint value occurrences inside the body,
// overriding any line-level color on those spans.
func (r *Renderer) colorize(prefix, body string, entry *parser.LogEntry) string {
	resolved := r.Styles.Resolve(entry)
	if len(resolved) == 0 {
		return prefix + body
	}

	var wholeLine, lineNumber *classify.Resolved
	var specific []classify.Resolved
	for i := range resolved {
		res := resolved[i]
		switch res.Kind {
		case config.ColorWholeLine:
			if wholeLine == nil {
				wholeLine = &res
			}
		case config.ColorLineNumber:
			if lineNumber == nil {
				lineNumber = &res
			}
		case config.ColorSpecificValue:
			specific = append(specific, res)
		}
	}

	base := func(s string) string {
		if s == "" {
			return s
		}
		if wholeLine != nil {
			return wholeLine.Style.Render(s)
		}
		return s
	}

	renderedPrefix := base(prefix)
	if lineNumber != nil {
		renderedPrefix = lineNumber.Style.Render(prefix)
	}

	return renderedPrefix + paintSpans(body, specific, base)
}

// paintSpans styles occurrences of each specific-value text within the body,
// rendering the segments between matches with the base (line-level) style so
// spans and line color coexist.
func paintSpans(body string, specific []classify.Resolved, base func(string) string) string {
	if len(specific) == 0 {
		return base(body)
	}

	// One pass per span value; later values do not re-paint inside spans
	// already claimed by earlier ones because segments are built in order.
	type span struct {
		start, end int
		style      classify.Resolved
	}
	var spans []span
	claimed := make([]bool, len(body))

	for _, res := range specific {
		if res.Text == "" {
			continue
		}
		offset := 0
		for {
			pos := strings.Index(body[offset:], res.Text)
			if pos < 0 {
				break
			}
			start := offset + pos
			end := start + len(res.Text)
			offset = end

			overlap := false
			for i := start; i < end; i++ {
				if claimed[i] {
					overlap = true
					break
				}
			}
			if overlap {
				continue
			}
			for i := start; i < end; i++ {
				claimed[i] = true
			}
			spans = append(spans, span{start: start, end: end, style: res})
		}
	}

	if len(spans) == 0 {
		return base(body)
	}

	// Assemble in position order.
	for i := 1; i < len(spans); i++ {
		for j := i; j > 0 && spans[j].start < spans[j-1].start; j-- {
			spans[j], spans[j-1] = spans[j-1], spans[j]
		}
	}

	var b strings.Builder
	cursor := 0
	for _, sp := range spans {
		b.WriteString(base(body[cursor:sp.start]))
		b.WriteString(sp.style.Style.Render(body[sp.start:sp.end]))
		cursor = sp.end
	}
	b.WriteString(base(body[cursor:]))
	return b.String()
}

// WriteDetailed writes a per-category block for each entry.
func (r *Renderer) WriteDetailed(w io.Writer, cfg *config.Config, entries []*parser.LogEntry) {
	for i, entry := range entries {
		fmt.Fprintln(w, strings.Repeat("=", 60))
		fmt.Fprintf(w, "Log Entry #%d (Line %d)\n", i+1, entry.LineNumber)
		if entry.Source != "" {
			fmt.Fprintf(w, "Source: %s\n", entry.Source)
		}
		fmt.Fprintln(w, strings.Repeat("-", 60))

		for _, cat := range cfg.Categories {
			value, ok := entry.Fields[cat.Name]
			if !ok {
				continue
			}
			fmt.Fprintf(w, "%s: %s\n", cat.Name, FormatValue(value))
		}

		if entry.Multiline {
			fmt.Fprintf(w, "\n[Multi-line Entry]\nRaw text:\n%s\n", entry.Raw)
		}
		fmt.Fprintln(w)
	}
}

// FormatFields joins the entry's fields in schema order for compact display.
func FormatFields(cfg *config.Config, entry *parser.LogEntry) string {
	parts := make([]string, 0, len(cfg.Categories))
	for _, cat := range cfg.Categories {
		value, ok := entry.Fields[cat.Name]
		if !ok {
			continue
		}
		parts = append(parts, cat.Name+": "+FormatValue(value))
	}
	return strings.Join(parts, " | ")
}

// FormatValue renders a field for display: mappings braced as "{k=v, k=v}",
// sequences bracketed as "[a, b]", scalars verbatim.
func FormatValue(v parser.FieldValue) string {
	switch v.Kind() {
	case parser.KindMapping:
		parts := make([]string, 0, len(v.Mapping()))
		for _, pair := range v.Mapping() {
			parts = append(parts, pair.Key+"="+pair.Value)
		}
		return "{" + strings.Join(parts, ", ") + "}"
	case parser.KindSequence:
		return "[" + strings.Join(v.Sequence(), ", ") + "]"
	default:
		return v.String()
	}
}
