package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/AndrewKWatts/LogViewer/internal/render"
	"github.com/AndrewKWatts/LogViewer/pkg/filter"
)

// reloadedMsg reports a completed background reload.
type reloadedMsg struct {
	count int
	err   error
}

// Update handles events.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.WindowSize = msg
		m.Detail.Width = msg.Width - 4
		m.Detail.Height = msg.Height - 6
		return m, nil

	case reloadedMsg:
		if msg.err != nil {
			m.Status = fmt.Sprintf("reload: %v", msg.err)
		} else {
			m.Status = fmt.Sprintf("reloaded %d entries", msg.count)
		}
		m.applyFilters()
		return m, nil

	case tea.KeyMsg:
		if m.SearchMode {
			switch msg.Type {
			case tea.KeyEnter:
				m.SearchMode = false
				m.SearchTerm.Blur()
				return m, nil
			case tea.KeyEsc:
				m.SearchMode = false
				m.SearchTerm.Blur()
				m.SearchTerm.SetValue("")
				m.applyFilters()
				return m, nil
			}
			m.SearchTerm, cmd = m.SearchTerm.Update(msg)
			m.applyFilters()
			return m, cmd
		}

		if m.ShowDetail {
			switch msg.String() {
			case "esc", "enter", "q":
				m.ShowDetail = false
				return m, nil
			}
			m.Detail, cmd = m.Detail.Update(msg)
			return m, cmd
		}

		switch msg.String() {
		case "ctrl+c", "q":
			m.stopPoller()
			return m, tea.Quit
		case "/":
			m.SearchMode = true
			m.SearchTerm.Focus()
			return m, nil
		case "esc":
			if m.SearchTerm.Value() != "" || m.Structural != filter.ShowAll {
				m.SearchTerm.SetValue("")
				m.Structural = filter.ShowAll
				m.applyFilters()
			}
			return m, nil
		case "up", "k":
			if m.SelectedIdx > 0 {
				m.SelectedIdx--
			}
		case "down", "j":
			if m.SelectedIdx < len(m.Entries)-1 {
				m.SelectedIdx++
			}
		case "s":
			m.Structural = cycleStructural(m.Structural)
			m.applyFilters()
		case "a":
			m.toggleAutoRefresh()
		case "enter":
			if len(m.Entries) > 0 {
				m.ShowDetail = true
				m.Detail.SetContent(m.detailContent())
				m.Detail.GotoTop()
			}
		case "r":
			session := m.Session
			m.Status = "reloading..."
			return m, func() tea.Msg {
				count, err := session.Reload()
				return reloadedMsg{count: count, err: err}
			}
		}
	}

	return m, nil
}

func cycleStructural(mode filter.StructuralMode) filter.StructuralMode {
	switch mode {
	case filter.ShowAll:
		return filter.OnlyStructured
	case filter.OnlyStructured:
		return filter.HideStructured
	default:
		return filter.ShowAll
	}
}

func (m *Model) detailContent() string {
	entry := m.Entries[m.SelectedIdx]
	cfg := m.Session.Config()

	var b strings.Builder
	fmt.Fprintf(&b, "Line %d", entry.LineNumber)
	if entry.Source != "" {
		fmt.Fprintf(&b, "  (%s)", entry.Source)
	}
	b.WriteString("\n\n")

	for _, cat := range cfg.Categories {
		value, ok := entry.Fields[cat.Name]
		if !ok {
			continue
		}
		fmt.Fprintf(&b, "%s: %s\n", cat.Name, render.FormatValue(value))
	}

	b.WriteString("\nRaw:\n")
	b.WriteString(entry.Raw)
	return b.String()
}
