package classify

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/AndrewKWatts/LogViewer/pkg/config"
	"github.com/AndrewKWatts/LogViewer/pkg/parser"
)

// Resolved is the classification outcome for one field of one entry: the hex
// color, the paint target, the rule kind, and a ready-to-use lipgloss style.
type Resolved struct {
	Category string
	Hex      string
	Paint    config.Paint
	Kind     config.ColorKind
	Style    lipgloss.Style

	// Text is the stringified field value; SpecificValue renderers paint its
	// occurrences within the line.
	Text string
}

// StyleTable precomputes per-category rule styles from a Config so renderers
// do not rebuild styles per entry. Build once, share read-only.
type StyleTable struct {
	categories []ruleEntry
}

type ruleEntry struct {
	category config.Category
	styles   map[string]lipgloss.Style // hex -> style
}

// NewStyleTable builds the table for every category carrying a color rule.
func NewStyleTable(cfg *config.Config) *StyleTable {
	table := &StyleTable{}
	for _, cat := range cfg.Categories {
		if !cat.HasColorRule() {
			continue
		}

		styles := make(map[string]lipgloss.Style, len(cat.ColourMap))
		for _, rule := range cat.ColourMap {
			hex := RGBToHex(rule.RGB)
			if _, ok := styles[hex]; !ok {
				styles[hex] = styleFor(hex, cat.Colouring)
			}
		}
		table.categories = append(table.categories, ruleEntry{category: cat, styles: styles})
	}
	return table
}

func styleFor(hex string, paint config.Paint) lipgloss.Style {
	style := lipgloss.NewStyle().Bold(true)
	if paint == config.PaintBackground {
		return style.Background(lipgloss.Color(hex))
	}
	return style.Foreground(lipgloss.Color(hex))
}

// Resolve classifies every rule-carrying field of an entry and returns the
// resolved colors in category order.
func (t *StyleTable) Resolve(entry *parser.LogEntry) []Resolved {
	var out []Resolved
	for _, re := range t.categories {
		value, ok := entry.Fields[re.category.Name]
		if !ok {
			continue
		}

		hex, matched := ResolveColor(re.category, value)
		if !matched {
			continue
		}

		style, ok := re.styles[hex]
		if !ok {
			style = styleFor(hex, re.category.Colouring)
		}
		out = append(out, Resolved{
			Category: re.category.Name,
			Hex:      hex,
			Paint:    re.category.Colouring,
			Kind:     re.category.ColourType,
			Style:    style,
			Text:     value.String(),
		})
	}
	return out
}
