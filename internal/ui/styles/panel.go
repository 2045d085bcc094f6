package styles

import "github.com/charmbracelet/lipgloss"

// Panel renders content inside a rounded border with title on the first
// line. width and height include the border. Active panels use the focus
// color.
func Panel(title, content string, width, height int, active bool) string {
	border := T().Border
	if active {
		border = T().BorderFocus
	}

	innerW := max(width-2, 0)
	innerH := max(height-2, 0)

	body := T().S().Title.Render(title)
	if content != "" {
		body += "\n" + content
	}

	return lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Width(innerW).
		Height(innerH).
		MaxHeight(height).
		Render(body)
}
