// Package ui provides the interactive terminal view of the solar tracker.
package ui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/devskill-org/sunpos/tracker"
)

// tickMsg is sent every refresh interval
type tickMsg time.Time

// Model represents the application's state
type Model struct {
	tracker  *tracker.Tracker
	interval time.Duration

	snapshot tracker.Snapshot
	status   string

	width  int
	height int

	keys keyMap
	help help.Model
}

// NewModel creates a model driven by t and computes the first snapshot
func NewModel(t *tracker.Tracker) Model {
	return Model{
		tracker:  t,
		interval: t.GetConfig().RefreshInterval,
		snapshot: t.Compute(),
		keys:     defaultKeyMap(),
		help:     help.New(),
	}
}

// Snapshot returns the snapshot currently on screen
func (m Model) Snapshot() tracker.Snapshot {
	return m.snapshot
}

func tick(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Init starts the refresh loop
func (m Model) Init() tea.Cmd {
	return tick(m.interval)
}

// Update handles messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tickMsg:
		m.snapshot = m.tracker.Compute()
		return m, tick(m.interval)

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Refraction):
			m.status = "Refraction " + onOff(m.tracker.ToggleRefraction())
		case key.Matches(msg, m.keys.Horizon):
			m.status = "Horizon: " + m.tracker.ToggleHorizon()
		case key.Matches(msg, m.keys.Reference):
			m.status = "Cross-check " + onOff(m.tracker.ToggleReference())
		default:
			return m, nil
		}
		m.snapshot = m.tracker.Compute()
		return m, nil
	}

	return m, nil
}

// View renders the application
func (m Model) View() string {
	s := m.snapshot

	header := headerStyle.Render(fmt.Sprintf("☀ %s", tracker.FormatWhen(s.When)))
	if m.status != "" {
		header = lipgloss.JoinHorizontal(lipgloss.Center, header, "  ", mutedStyle.Render(m.status))
	}

	panes := []string{m.renderPositionPane(), m.renderSunTimesPane()}
	if s.Reference != nil {
		panes = append(panes, m.renderReferencePane())
	}

	body := lipgloss.JoinHorizontal(lipgloss.Top, panes...)
	if m.width > 0 && lipgloss.Width(body) > m.width {
		body = lipgloss.JoinVertical(lipgloss.Left, panes...)
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		header,
		"",
		body,
		helpStyle.Render(m.help.View(m.keys)),
	)
}

func onOff(on bool) string {
	if on {
		return "on"
	}
	return "off"
}
