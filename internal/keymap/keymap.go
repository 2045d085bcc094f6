// Package keymap defines key bindings for the application.
package keymap

// Binding describes a single key binding.
type Binding struct {
	Action      Action
	Keys        []string
	Description string
	Context     string // "global", "playback", "playlist"
}

// All contains all key bindings, in help order.
var All = []Binding{
	// Global
	{ActionQuit, []string{"q", "ctrl+c"}, "Quit", "global"},
	{ActionInitialize, []string{"i"}, "Load daily playlist", "global"},

	// Playback
	{ActionPlayPause, []string{" "}, "Play/pause", "playback"},
	{ActionStop, []string{"s"}, "Stop", "playback"},
	{ActionRandom, []string{"r"}, "Random track", "playback"},

	// Playlist
	{ActionMoveDown, []string{"down", "j"}, "Next track", "playlist"},
	{ActionMoveUp, []string{"up", "k"}, "Previous track", "playlist"},
	{ActionSelect, []string{"enter"}, "Play selected", "playlist"},
}

// ByContext returns key bindings filtered by context.
func ByContext(context string) []Binding {
	var result []Binding
	for _, kb := range All {
		if kb.Context == context {
			result = append(result, kb)
		}
	}
	return result
}

// DisplayKey returns the label shown for key in help text.
func DisplayKey(key string) string {
	if key == " " {
		return "space"
	}
	return key
}
