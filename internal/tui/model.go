// Package tui is the interactive terminal viewer: a scrollable entry list
// with live search, a structural filter toggle, and a detail pane.
package tui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/AndrewKWatts/LogViewer/internal/render"
	"github.com/AndrewKWatts/LogViewer/internal/session"
	"github.com/AndrewKWatts/LogViewer/pkg/filter"
	"github.com/AndrewKWatts/LogViewer/pkg/parser"
)

// Model holds the TUI state.
type Model struct {
	Session  *session.Session
	Renderer *render.Renderer

	// Entries is the filtered snapshot currently displayed.
	Entries     []*parser.LogEntry
	SelectedIdx int

	// Filter state
	Structural filter.StructuralMode
	SearchMode bool
	SearchTerm textinput.Model

	// Detail pane
	ShowDetail bool
	Detail     viewport.Model

	// Auto-refresh. Send delivers poller results into the running program;
	// pollCancel stops the active poller goroutine.
	AutoRefresh  bool
	PollInterval time.Duration
	Send         func(tea.Msg)
	pollCancel   context.CancelFunc

	WindowSize tea.WindowSizeMsg
	Status     string
	Err        error
}

// NewModel returns the initial state over a loaded session.
func NewModel(s *session.Session, r *render.Renderer) Model {
	ti := textinput.New()
	ti.Placeholder = "search raw text..."
	ti.CharLimit = 120
	ti.Width = 40

	return Model{
		Session:    s,
		Renderer:   r,
		Entries:    s.Filtered(),
		SearchTerm: ti,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// applyFilters pushes the current search term and structural mode into the
// session and refreshes the displayed snapshot.
func (m *Model) applyFilters() {
	criteria := m.Session.Criteria()
	criteria.Search = m.SearchTerm.Value()
	criteria.Structural = m.Structural
	m.Session.SetCriteria(criteria)

	m.Entries = m.Session.Filtered()
	if m.SelectedIdx >= len(m.Entries) {
		m.SelectedIdx = len(m.Entries) - 1
	}
	if m.SelectedIdx < 0 {
		m.SelectedIdx = 0
	}
}

// toggleAutoRefresh starts or stops the background poller. While on, the
// session reloads at the poll interval and each completed reload arrives as
// a reloadedMsg through Send.
func (m *Model) toggleAutoRefresh() {
	if m.AutoRefresh {
		if m.pollCancel != nil {
			m.pollCancel()
			m.pollCancel = nil
		}
		m.AutoRefresh = false
		m.Status = "auto-refresh off"
		return
	}
	if m.Send == nil {
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	m.pollCancel = cancel
	send := m.Send
	session.StartPoller(ctx, m.Session, m.PollInterval, func(count int) {
		send(reloadedMsg{count: count})
	})
	m.AutoRefresh = true
	m.Status = "auto-refresh on"
}

// stopPoller cancels any active auto-refresh poller.
func (m *Model) stopPoller() {
	if m.pollCancel != nil {
		m.pollCancel()
		m.pollCancel = nil
	}
}
