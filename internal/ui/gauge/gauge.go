// Package gauge renders the duration gauge of the loaded track.
package gauge

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/daylist/internal/playback"
	"github.com/llehouerou/daylist/internal/ui/styles"
)

var (
	filledBlock = "▓"
	emptyBlock  = "░"
)

// Render renders a block gauge for elapsed over total.
// Format: ▶  1:23  ▓▓▓▓▓░░░░░  4:56
func Render(elapsed, total time.Duration, width int, kind playback.Kind) string {
	icon := statusIcon(kind)
	posStr := FormatDuration(elapsed)
	durStr := FormatDuration(total)

	fixedWidth := lipgloss.Width(icon) + 2 + lipgloss.Width(posStr) + 2 + 2 + lipgloss.Width(durStr)
	barWidth := width - fixedWidth

	if barWidth < 3 {
		// Too narrow for bar, just show times
		return icon + "  " + posStr + " / " + durStr
	}

	filled := int(float64(barWidth) * Ratio(elapsed, total))

	s := styles.T().S()
	bar := s.Gauge.Render(strings.Repeat(filledBlock, filled)) +
		s.GaugeOff.Render(strings.Repeat(emptyBlock, barWidth-filled))

	return icon + "  " + posStr + "  " + bar + "  " + durStr
}

// Ratio returns elapsed/total clamped to [0, 1].
func Ratio(elapsed, total time.Duration) float64 {
	if total <= 0 {
		return 0
	}
	return min(max(float64(elapsed)/float64(total), 0), 1)
}

// FormatDuration renders d as m:ss.
func FormatDuration(d time.Duration) string {
	d = max(d, 0)
	m := int(d.Minutes())
	s := int(d.Seconds()) % 60
	return fmt.Sprintf("%d:%02d", m, s)
}

func statusIcon(kind playback.Kind) string {
	switch kind {
	case playback.Playing:
		return "▶"
	case playback.Paused:
		return "⏸"
	default:
		return "■"
	}
}
