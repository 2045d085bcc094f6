// Package ui is the bubbletea render loop. It feeds keys and ticks into the
// shared app and draws a snapshot of it every frame.
package ui

import (
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/daylist/internal/app"
	"github.com/llehouerou/daylist/internal/dispatch"
	"github.com/llehouerou/daylist/internal/logpane"
	"github.com/llehouerou/daylist/internal/ui/styles"
)

// TickMsg is sent periodically to refresh the session.
type TickMsg time.Time

// startMsg asks for the initial playlist once the program runs.
type startMsg struct{}

// TickCmd returns a command that sends TickMsg after d.
func TickCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// Model is the root bubbletea model.
type Model struct {
	shared  *app.Shared
	logs    *logpane.Buffer
	tick    time.Duration
	spinner spinner.Model

	width, height int
	quitting      bool
}

// New creates the root model. logs may be nil.
func New(shared *app.Shared, logs *logpane.Buffer, tick time.Duration) Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = styles.T().S().Playing

	return Model{
		shared:  shared,
		logs:    logs,
		tick:    tick,
		spinner: sp,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		func() tea.Msg { return startMsg{} },
		TickCmd(m.tick),
		m.spinner.Tick,
	)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil

	case tea.KeyMsg:
		var ret app.Return
		m.shared.Do(func(a *app.App) { ret = a.DoAction(msg.String()) })
		if ret == app.Exit {
			m.quitting = true
			return m, tea.Quit
		}
		return m, nil

	case startMsg:
		m.shared.Do(func(a *app.App) {
			_ = a.Dispatch(dispatch.Request{Kind: dispatch.Initialize})
		})
		return m, nil

	case TickMsg:
		m.shared.Do(func(a *app.App) { a.UpdateOnTick() })
		return m, TickCmd(m.tick)

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}
	return m, nil
}
