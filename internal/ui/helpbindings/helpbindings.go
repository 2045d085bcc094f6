// Package helpbindings renders the key binding help pane.
package helpbindings

import (
	"strings"

	"github.com/samber/lo"

	"github.com/llehouerou/daylist/internal/keymap"
	"github.com/llehouerou/daylist/internal/ui/render"
	"github.com/llehouerou/daylist/internal/ui/styles"
)

// categoryOrder defines the display order of binding categories.
var categoryOrder = []string{
	"playlist",
	"playback",
	"global",
}

// keyColumnWidth is the width of the key column.
const keyColumnWidth = 12

// Render lists bindings grouped by category, one per row, up to height rows.
func Render(bindings []keymap.Binding, width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	s := styles.T().S()

	var lines []string
	for _, ctx := range categoryOrder {
		for _, b := range bindings {
			if b.Context != ctx {
				continue
			}
			keys := strings.Join(lo.Map(b.Keys, func(k string, _ int) string {
				return keymap.DisplayKey(k)
			}), "/")
			line := s.Key.Render(render.Fit(keys, keyColumnWidth)) +
				s.Base.Render(render.Truncate(b.Description, width-keyColumnWidth))
			lines = append(lines, line)
		}
	}

	if len(lines) > height {
		lines = lines[:height]
	}
	return strings.Join(lines, "\n")
}
