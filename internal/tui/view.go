package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/AndrewKWatts/LogViewer/internal/render"
	"github.com/AndrewKWatts/LogViewer/internal/session"
	"github.com/AndrewKWatts/LogViewer/pkg/filter"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#3C6E71")).
			Padding(0, 1)

	selectedItemStyle = lipgloss.NewStyle().
				PaddingLeft(1).
				Foreground(lipgloss.Color("205"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	detailStyle = lipgloss.NewStyle().
			Padding(1, 2).
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("63"))

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("208"))
)

// View renders the UI.
func (m Model) View() string {
	if m.Err != nil {
		return fmt.Sprintf("\n  Error: %v\n", m.Err)
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("logview"))
	b.WriteString("  ")
	header := fmt.Sprintf("%d/%d entries  structural: %s",
		len(m.Entries), len(m.Session.Entries()), structuralLabel(m.Structural))
	if m.AutoRefresh {
		header += "  auto-refresh"
	}
	b.WriteString(dimStyle.Render(header))
	b.WriteString("\n\n")

	if m.ShowDetail {
		b.WriteString(detailStyle.Render(m.Detail.View()))
		b.WriteString("\n")
		b.WriteString(dimStyle.Render("esc/enter close  up/down scroll"))
		return b.String()
	}

	if m.SearchMode || m.SearchTerm.Value() != "" {
		b.WriteString("  / ")
		b.WriteString(m.SearchTerm.View())
		b.WriteString("\n\n")
	}

	b.WriteString(m.renderList())
	b.WriteString("\n")

	if m.Status != "" {
		b.WriteString(statusStyle.Render(m.Status))
		b.WriteString("\n")
	}
	b.WriteString(dimStyle.Render("/ search  s structural  enter detail  r reload  a auto  q quit"))
	return b.String()
}

func (m Model) renderList() string {
	if len(m.Entries) == 0 {
		return dimStyle.Render("  no entries match the active filters")
	}

	height := m.WindowSize.Height - 8
	if height < 5 {
		height = 5
	}

	start := 0
	if m.SelectedIdx >= height {
		start = m.SelectedIdx - height + 1
	}
	end := start + height
	if end > len(m.Entries) {
		end = len(m.Entries)
	}

	cfg := m.Session.Config()
	var b strings.Builder
	for i := start; i < end; i++ {
		line := m.Renderer.CompactLine(cfg, m.Entries[i], i+1)
		if i == m.SelectedIdx {
			b.WriteString(selectedItemStyle.Render("> " + line))
		} else {
			b.WriteString("  " + line)
		}
		b.WriteString("\n")
	}
	return b.String()
}

func structuralLabel(mode filter.StructuralMode) string {
	switch mode {
	case filter.OnlyStructured:
		return "only"
	case filter.HideStructured:
		return "hide"
	default:
		return "all"
	}
}

// Run starts the interactive viewer over a loaded session. pollInterval is
// the auto-refresh cadence used when the toggle is switched on.
func Run(s *session.Session, r *render.Renderer, pollInterval time.Duration) error {
	m := NewModel(s, r)
	m.PollInterval = pollInterval

	var program *tea.Program
	m.Send = func(msg tea.Msg) {
		program.Send(msg)
	}
	program = tea.NewProgram(m, tea.WithAltScreen())
	_, err := program.Run()
	return err
}
