// Package logview renders the operator log pane.
package logview

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/sirupsen/logrus"

	"github.com/llehouerou/daylist/internal/logpane"
	"github.com/llehouerou/daylist/internal/ui/render"
	"github.com/llehouerou/daylist/internal/ui/styles"
)

// Render draws the newest entries that fit in height rows.
func Render(entries []logpane.Entry, width, height int) string {
	if height <= 0 || width <= 0 {
		return ""
	}
	if len(entries) > height {
		entries = entries[len(entries)-height:]
	}

	lines := make([]string, 0, len(entries))
	for _, e := range entries {
		prefix := e.Time.Format("15:04:05") + " " + levelLabel(e.Level) + " "
		msg := render.Truncate(e.Message, width-lipgloss.Width(prefix))
		lines = append(lines, levelStyle(e.Level).Render(prefix)+msg)
	}
	return strings.Join(lines, "\n")
}

func levelLabel(l logrus.Level) string {
	switch l {
	case logrus.PanicLevel, logrus.FatalLevel, logrus.ErrorLevel:
		return "ERROR"
	case logrus.WarnLevel:
		return "WARN "
	case logrus.InfoLevel:
		return "INFO "
	default:
		return "DEBUG"
	}
}

func levelStyle(l logrus.Level) lipgloss.Style {
	s := styles.T().S()
	switch l {
	case logrus.PanicLevel, logrus.FatalLevel, logrus.ErrorLevel:
		return s.Error
	case logrus.WarnLevel:
		return s.Warning
	case logrus.InfoLevel:
		return s.Info
	default:
		return s.Debug
	}
}
