package ui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/lookout-dev/lookout/internal/util"
)

// CheckSummary holds one round's results for summary rendering.
type CheckSummary struct {
	Up   int
	Down int
}

// Total returns the number of services checked.
func (s CheckSummary) Total() int { return s.Up + s.Down }

// RenderCheckSummary generates the one-line verdict under the check table.
func RenderCheckSummary(s CheckSummary) string {
	total := s.Total()
	if total == 0 {
		return ""
	}

	word := util.Pluralize(total, "service", "services")

	if s.Down == 0 {
		successStyle := lipgloss.NewStyle().Foreground(ColorSuccess)
		return successStyle.Render(fmt.Sprintf("%s all %d %s up", SymbolSuccess, total, word))
	}

	errorStyle := lipgloss.NewStyle().Foreground(ColorError)
	return errorStyle.Render(fmt.Sprintf("%s %d of %d %s down", SymbolFail, s.Down, total, word))
}
