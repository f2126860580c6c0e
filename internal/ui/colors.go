package ui

import "github.com/charmbracelet/lipgloss"

// Color palette using ANSI color codes so CLI output degrades cleanly on
// basic terminals. The dashboard has its own richer palette; this one is for
// the plain commands (check, doctor, init).

// Semantic colors for status indication
const (
	ColorSuccess lipgloss.Color = "2" // Green
	ColorError   lipgloss.Color = "1" // Red
	ColorWarning lipgloss.Color = "3" // Yellow
	ColorInfo    lipgloss.Color = "6" // Cyan
)

// Text colors for content hierarchy
const (
	ColorPrimary   lipgloss.Color = "7" // White/default
	ColorSecondary lipgloss.Color = "4" // Blue
	ColorMuted     lipgloss.Color = "8" // Gray (bright black)
)
