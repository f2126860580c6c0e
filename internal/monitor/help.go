package monitor

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// HelpBinding represents a single keyboard shortcut entry.
type HelpBinding struct {
	Key  string
	Desc string
}

// helpBindings defines all keyboard shortcuts shown in the help overlay.
var helpBindings = []HelpBinding{
	{Key: "q / Esc / Ctrl+C", Desc: "Quit"},
	{Key: "j / down", Desc: "Select next row"},
	{Key: "k / up", Desc: "Select previous row"},
	{Key: "Enter", Desc: "Open host detail"},
	{Key: "b", Desc: "Back to overview"},
	{Key: "r", Desc: "Refresh now"},
	{Key: "h / ?", Desc: "Toggle this help"},
}

// renderHelpOverlay renders a centered help box with keyboard shortcuts.
func (m Model) renderHelpOverlay() string {
	var lines []string
	lines = append(lines, m.styles.HelpTitle.Render("Keyboard Shortcuts"))
	lines = append(lines, "")

	for _, binding := range helpBindings {
		lines = append(lines, m.styles.HelpKey.Render(binding.Key)+m.styles.HelpDesc.Render(binding.Desc))
	}

	lines = append(lines, "")
	lines = append(lines, m.styles.Muted.Render("Press h to close"))

	box := m.styles.HelpBox.Render(strings.Join(lines, "\n"))

	if m.width == 0 || m.height == 0 {
		return box
	}
	return lipgloss.Place(
		m.width,
		m.height,
		lipgloss.Center,
		lipgloss.Center,
		box,
		lipgloss.WithWhitespaceChars(" "),
	)
}
