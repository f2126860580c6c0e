package monitor

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/lookout-dev/lookout/internal/engine"
)

// Status indicator characters.
const (
	GlyphUp      = "●"
	GlyphDown    = "✗"
	GlyphUnknown = "◌"
	GlyphService = "└─"
)

// spinnerFrames animate the refresh indicator and the waiting placeholder.
var spinnerFrames = []string{"◐", "◓", "◑", "◒"}

// palette holds the raw colors behind a theme.
type palette struct {
	surface   lipgloss.Color
	border    lipgloss.Color
	accent    lipgloss.Color
	text      lipgloss.Color
	textDim   lipgloss.Color
	textMuted lipgloss.Color
	up        lipgloss.Color
	down      lipgloss.Color
	unknown   lipgloss.Color
}

var darkPalette = palette{
	surface:   lipgloss.Color("#12121A"),
	border:    lipgloss.Color("#2A2A4A"),
	accent:    lipgloss.Color("#FF2E97"),
	text:      lipgloss.Color("#FFFFFF"),
	textDim:   lipgloss.Color("#B4B4D0"),
	textMuted: lipgloss.Color("#6B6B8D"),
	up:        lipgloss.Color("#39FF14"),
	down:      lipgloss.Color("#FF0055"),
	unknown:   lipgloss.Color("#FFAA00"),
}

var lightPalette = palette{
	surface:   lipgloss.Color("#EAEAF2"),
	border:    lipgloss.Color("#C0C0D8"),
	accent:    lipgloss.Color("#C2185B"),
	text:      lipgloss.Color("#1A1A2E"),
	textDim:   lipgloss.Color("#44445E"),
	textMuted: lipgloss.Color("#8A8AA3"),
	up:        lipgloss.Color("#1B8A2F"),
	down:      lipgloss.Color("#C41E4F"),
	unknown:   lipgloss.Color("#B07800"),
}

// Styles bundles every lipgloss style the dashboard uses, resolved once at
// startup from the configured theme.
type Styles struct {
	Title    lipgloss.Style
	Header   lipgloss.Style
	Footer   lipgloss.Style
	Label    lipgloss.Style
	Muted    lipgloss.Style
	Value    lipgloss.Style
	HostName lipgloss.Style
	Selected lipgloss.Style

	Up      lipgloss.Style
	Down    lipgloss.Style
	Unknown lipgloss.Style

	HelpBox   lipgloss.Style
	HelpTitle lipgloss.Style
	HelpKey   lipgloss.Style
	HelpDesc  lipgloss.Style

	DetailSection lipgloss.Style
	DetailTitle   lipgloss.Style
}

// NewStyles resolves a theme name into concrete styles. "dark" and "light"
// force a palette; anything else auto-detects from the terminal background.
func NewStyles(theme string) Styles {
	var p palette
	switch theme {
	case "dark":
		p = darkPalette
	case "light":
		p = lightPalette
	default:
		if termenv.HasDarkBackground() {
			p = darkPalette
		} else {
			p = lightPalette
		}
	}

	return Styles{
		Title:    lipgloss.NewStyle().Foreground(p.accent).Bold(true),
		Header:   lipgloss.NewStyle().Foreground(p.text).Background(p.surface).Bold(true).Padding(0, 1),
		Footer:   lipgloss.NewStyle().Foreground(p.textMuted).Padding(0, 1),
		Label:    lipgloss.NewStyle().Foreground(p.textDim),
		Muted:    lipgloss.NewStyle().Foreground(p.textMuted),
		Value:    lipgloss.NewStyle().Foreground(p.text),
		HostName: lipgloss.NewStyle().Foreground(p.text).Bold(true),
		Selected: lipgloss.NewStyle().Background(p.surface).Foreground(p.accent).Bold(true),

		Up:      lipgloss.NewStyle().Foreground(p.up),
		Down:    lipgloss.NewStyle().Foreground(p.down),
		Unknown: lipgloss.NewStyle().Foreground(p.unknown),

		HelpBox: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.accent).
			Padding(1, 2),
		HelpTitle: lipgloss.NewStyle().Foreground(p.accent).Bold(true).MarginBottom(1),
		HelpKey:   lipgloss.NewStyle().Foreground(p.text).Bold(true).Width(16),
		HelpDesc:  lipgloss.NewStyle().Foreground(p.textDim),

		DetailSection: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.border).
			Padding(0, 1).
			MarginBottom(1),
		DetailTitle: lipgloss.NewStyle().Foreground(p.accent).Bold(true),
	}
}

// StatusGlyph renders the colored indicator for a status.
func (s Styles) StatusGlyph(status engine.Status) string {
	switch status {
	case engine.StatusUp:
		return s.Up.Render(GlyphUp)
	case engine.StatusDown:
		return s.Down.Render(GlyphDown)
	default:
		return s.Unknown.Render(GlyphUnknown)
	}
}

// StatusText renders the status label in its status color.
func (s Styles) StatusText(status engine.Status) string {
	switch status {
	case engine.StatusUp:
		return s.Up.Render(status.Label())
	case engine.StatusDown:
		return s.Down.Render(status.Label())
	default:
		return s.Unknown.Render(status.Label())
	}
}
