// Package tracklist renders the track list pane.
package tracklist

import (
	"fmt"
	"strings"

	"github.com/llehouerou/daylist/internal/catalog"
	"github.com/llehouerou/daylist/internal/ui/gauge"
	"github.com/llehouerou/daylist/internal/ui/render"
	"github.com/llehouerou/daylist/internal/ui/styles"
)

// ScrollMargin is the number of rows kept visible below the cursor.
const ScrollMargin = 2

// markerWidth is the width of the "▶ " playing marker column.
const markerWidth = 2

// Render draws up to height rows of tracks, width cells wide. selected is
// -1 when nothing is selected; playing may be nil.
func Render(tracks []*catalog.Track, selected int, playing *catalog.Track, width, height int) string {
	if height <= 0 || width <= 0 {
		return ""
	}
	s := styles.T().S()
	if len(tracks) == 0 {
		return s.Muted.Render(render.Truncate("No tracks. Press i to load the daily playlist.", width))
	}

	start := Offset(selected, len(tracks), height)
	end := min(start+height, len(tracks))

	lines := make([]string, 0, end-start)
	for i := start; i < end; i++ {
		t := tracks[i]
		marker := "  "
		if t == playing {
			marker = "▶ "
		}
		dur := gauge.FormatDuration(t.TotalDuration())
		titleWidth := max(width-markerWidth-len(dur)-1, 0)
		line := render.Row(marker+render.Fit(fmt.Sprintf("%d. %s", i+1, t), titleWidth), dur, width)

		switch {
		case i == selected:
			line = s.Cursor.Render(line)
		case t == playing:
			line = s.Playing.Render(line)
		default:
			line = s.Base.Render(line)
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}

// Offset returns the first visible row so that selected stays on screen
// with ScrollMargin rows below it when possible.
func Offset(selected, count, height int) int {
	if selected < 0 || count <= height {
		return 0
	}
	offset := max(selected+ScrollMargin+1-height, 0)
	return min(offset, count-height)
}
