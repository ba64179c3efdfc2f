package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"timesheet/internal/cli/formatter"
	"timesheet/internal/domain"
	"timesheet/internal/service"
)

// watchModel is the live status view behind "status --watch": it polls
// the active session once a second and renders the running clock.
type watchModel struct {
	svc     service.TimesheetService
	keys    watchKeymap
	session *domain.ActiveSession
	now     time.Time
	err     error
}

type watchKeymap struct {
	Quit key.Binding
}

type tickMsg time.Time

type sessionMsg struct {
	session *domain.ActiveSession
	err     error
}

func newWatchModel(svc service.TimesheetService) watchModel {
	return watchModel{
		svc: svc,
		keys: watchKeymap{
			Quit: key.NewBinding(
				key.WithKeys("q", "esc", "ctrl+c"),
				key.WithHelp("q", "quit"),
			),
		},
		now: time.Now(),
	}
}

func tick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg { return tickMsg(t) })
}

func (m watchModel) refresh() tea.Msg {
	sess, err := m.svc.CurrentSession(context.Background())
	return sessionMsg{session: sess, err: err}
}

func (m watchModel) Init() tea.Cmd {
	return tea.Batch(m.refresh, tick())
}

func (m watchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			return m, tea.Quit
		}
	case tickMsg:
		m.now = time.Time(msg)
		return m, tea.Batch(m.refresh, tick())
	case sessionMsg:
		m.session = msg.session
		m.err = msg.err
	}
	return m, nil
}

var watchBoxStyle = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(formatter.ColorDim).
	Padding(1, 3)

func (m watchModel) View() string {
	var body string
	switch {
	case m.err != nil:
		body = formatter.StyleRed.Render(m.err.Error())
	case m.session == nil:
		body = formatter.StyleDim.Render("No active session.")
	default:
		elapsed := m.now.Sub(m.session.Start).Truncate(time.Second)
		if elapsed < 0 {
			elapsed = 0
		}
		clock := fmt.Sprintf("%02d:%02d:%02d",
			int(elapsed.Hours()), int(elapsed.Minutes())%60, int(elapsed.Seconds())%60)
		body = formatter.StyleHeader.Render(clock)
		if m.session.Description != "" {
			body += "\n" + m.session.Description
		}
		body += "\n" + formatter.StyleDim.Render("since "+formatter.Clock(m.session.Start))
	}

	return watchBoxStyle.Render(body) + "\n" + formatter.StyleDim.Render("q: quit") + "\n"
}
