package monitor

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/lookout-dev/lookout/internal/engine"
	"github.com/lookout-dev/lookout/internal/util"
)

// renderOverview renders the grouped host/service list.
func (m Model) renderOverview() string {
	var b strings.Builder

	b.WriteString(m.renderHeader())
	b.WriteString("\n\n")
	b.WriteString(m.renderRows())
	b.WriteString("\n")
	b.WriteString(m.renderFooter())

	return b.String()
}

// renderHeader renders the title bar with fleet stats, the tally, a clock in
// the configured timezone, and the age of the last round.
func (m Model) renderHeader() string {
	title := m.styles.Title.Render("lookout")

	hosts := len(m.groups)
	services := m.stats.Total()

	tally := fmt.Sprintf("%s %d up  %s %d down",
		m.styles.Up.Render(GlyphUp), m.stats.Up,
		m.styles.Down.Render(GlyphDown), m.stats.Down)
	if m.stats.Unknown > 0 {
		tally += fmt.Sprintf("  %s %d unknown", m.styles.Unknown.Render(GlyphUnknown), m.stats.Unknown)
	}

	clock := time.Now().In(m.loc).Format("15:04:05 MST")

	var updated string
	switch {
	case m.refreshing:
		updated = m.spinner() + " refreshing"
	case m.lastUpdate.IsZero():
		updated = "waiting for first round"
	default:
		updated = "updated " + m.updateAgeText()
	}

	stats := m.styles.Label.Render(fmt.Sprintf(" | %d hosts | %d services | ", hosts, services)) +
		tally +
		m.styles.Label.Render(" | "+clock+" | "+updated)

	return m.styles.Header.Render(title + stats)
}

func (m Model) updateAgeText() string {
	switch age := m.SecondsSinceUpdate(); age {
	case 0:
		return "just now"
	case 1:
		return "1s ago"
	default:
		return fmt.Sprintf("%ds ago", age)
	}
}

// renderRows renders host headers with their indented service rows.
func (m Model) renderRows() string {
	if len(m.groups) == 0 {
		return m.renderWaiting()
	}

	var lines []string
	index := 0
	for _, g := range m.groups {
		lines = append(lines, m.renderHostRow(g, index == m.selected))
		index++

		for _, r := range g.Services {
			lines = append(lines, m.renderServiceRow(r, index == m.selected))
			index++
		}
	}

	return strings.Join(lines, "\n")
}

// renderWaiting renders the placeholder shown before the first round lands.
func (m Model) renderWaiting() string {
	msg := m.styles.Label.Render(m.spinner() + " Waiting for first results...")
	if m.width > 0 && m.height > 8 {
		return lipgloss.Place(m.width, m.height-6, lipgloss.Center, lipgloss.Center, msg)
	}
	return msg
}

// renderHostRow renders a host header line with an aggregate indicator.
func (m Model) renderHostRow(g HostGroup, selected bool) string {
	glyph := m.styles.StatusGlyph(HostStatus(g.Services))
	name := m.styles.HostName.Render(g.Host)

	address := ""
	if host, ok := m.cfg.HostByName(g.Host); ok && host.Address != "" {
		address = m.styles.Muted.Render("  " + host.Address)
	}

	count := m.styles.Muted.Render(fmt.Sprintf("  %d %s",
		len(g.Services), util.Pluralize(len(g.Services), "service", "services")))

	line := fmt.Sprintf("%s %s%s%s", glyph, name, address, count)
	if selected {
		return m.styles.Selected.Render("> ") + line
	}
	return "  " + line
}

// renderServiceRow renders one indented service line.
func (m Model) renderServiceRow(r engine.CheckResult, selected bool) string {
	glyph := m.styles.StatusGlyph(r.Status)
	name := m.styles.Value.Render(r.ServiceName)
	target := m.styles.Muted.Render(fmt.Sprintf(":%d/%s", r.Port, r.Protocol))
	response := m.styles.Label.Render(formatResponseTime(r.ResponseTime))

	line := fmt.Sprintf("   %s %s %s %s  %s", GlyphService, glyph, name, target, response)

	if r.ErrorMessage != "" {
		line += "  " + m.styles.Down.Render(util.Truncate(r.ErrorMessage, m.errorBudget()))
	}

	if selected {
		return m.styles.Selected.Render("> ") + line
	}
	return "  " + line
}

// errorBudget caps error text so rows stay on one line.
func (m Model) errorBudget() int {
	if m.width == 0 {
		return 40
	}
	budget := m.width - 50
	if budget < 16 {
		return 16
	}
	if budget > 80 {
		return 80
	}
	return budget
}

// renderFooter renders the keyboard hint line.
func (m Model) renderFooter() string {
	hints := []string{
		"q quit",
		"j/k move",
		"enter detail",
		"r refresh",
		"h help",
	}
	return m.styles.Footer.Render(strings.Join(hints, " | "))
}

// formatResponseTime renders a probe duration for a row. Down rows show
// their time to failure; zero means the pair has not been probed yet,
// shown as N/A.
func formatResponseTime(d time.Duration) string {
	switch {
	case d == 0:
		return "N/A"
	case d < time.Millisecond:
		return "<1ms"
	case d < time.Second:
		return fmt.Sprintf("%dms", d.Milliseconds())
	default:
		return fmt.Sprintf("%.1fs", d.Seconds())
	}
}
