package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/daylist/internal/app"
	"github.com/llehouerou/daylist/internal/playback"
	"github.com/llehouerou/daylist/internal/ui/gauge"
	"github.com/llehouerou/daylist/internal/ui/helpbindings"
	"github.com/llehouerou/daylist/internal/ui/logview"
	"github.com/llehouerou/daylist/internal/ui/render"
	"github.com/llehouerou/daylist/internal/ui/styles"
	"github.com/llehouerou/daylist/internal/ui/tracklist"
)

// Layout constants.
const (
	// MinWidth and MinHeight are the smallest terminal the layout supports.
	MinWidth  = 52
	MinHeight = 28

	// BorderHeight is the vertical space consumed by a panel border.
	BorderHeight = 2

	titleHeight  = 1
	gaugeHeight  = 3 // border + one row
	logsHeight   = 7
	statusHeight = 6
)

const appTitle = "daylist"

// View implements tea.Model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.width == 0 || m.height == 0 {
		return ""
	}
	if m.width < MinWidth || m.height < MinHeight {
		return tooSmall(m.width, m.height)
	}

	snap := m.shared.Snapshot()

	bodyHeight := m.height - titleHeight - gaugeHeight - logsHeight
	listWidth := m.width * 3 / 5
	sideWidth := m.width - listWidth

	list := styles.Panel("Tracks",
		tracklist.Render(snap.Tracks, snap.Selected, snap.NowPlaying, listWidth-2, bodyHeight-BorderHeight-1),
		listWidth, bodyHeight, true)

	help := styles.Panel("Help",
		helpbindings.Render(snap.Bindings, sideWidth-2, bodyHeight-statusHeight-BorderHeight-1),
		sideWidth, bodyHeight-statusHeight, false)
	side := lipgloss.JoinVertical(lipgloss.Left, m.renderStatus(snap, sideWidth), help)

	return lipgloss.JoinVertical(lipgloss.Left,
		m.renderTitle(snap),
		lipgloss.JoinHorizontal(lipgloss.Top, list, side),
		m.renderGauge(snap),
		m.renderLogs(),
	)
}

func (m Model) renderTitle(snap app.Snapshot) string {
	title := styles.Gradient(appTitle, styles.T().Primary, styles.T().Secondary)
	right := ""
	if snap.Loading {
		right = m.spinner.View() + styles.T().S().Muted.Render(" loading")
	}
	return render.Row(title, right, m.width)
}

func (m Model) renderStatus(snap app.Snapshot, width int) string {
	s := styles.T().S()
	inner := width - 2

	var state string
	switch snap.Status.Kind() {
	case playback.Playing:
		state = "Playing"
	case playback.Paused:
		state = "Paused"
	case playback.Empty:
		state = "Stopped"
	}

	track := s.Muted.Render("nothing loaded")
	if snap.NowPlaying != nil {
		track = s.Playing.Render(render.Truncate(snap.NowPlaying.String(), inner))
	}

	lines := []string{
		s.Base.Render(state),
		track,
		s.Muted.Render(fmt.Sprintf("%d tracks", len(snap.Tracks))),
	}
	return styles.Panel("Status", strings.Join(lines, "\n"), width, statusHeight, false)
}

func (m Model) renderGauge(snap app.Snapshot) string {
	elapsed, _ := snap.Session.Elapsed()
	total, _ := snap.Session.Total()
	bar := gauge.Render(elapsed, total, m.width-2, snap.Status.Kind())

	return lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(styles.T().Border).
		Width(m.width - 2).
		Render(bar)
}

func (m Model) renderLogs() string {
	content := ""
	if m.logs != nil {
		content = logview.Render(m.logs.Lines(), m.width-2, logsHeight-BorderHeight-1)
	}
	return styles.Panel("Logs", content, m.width, logsHeight, false)
}

func tooSmall(width, height int) string {
	msg := fmt.Sprintf("Terminal too small: %dx%d\nNeed at least %dx%d", width, height, MinWidth, MinHeight)
	return styles.T().S().Warning.Render(msg)
}
