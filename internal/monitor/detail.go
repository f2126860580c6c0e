package monitor

import (
	"fmt"
	"strings"
	"time"

	"github.com/lookout-dev/lookout/internal/config"
	"github.com/lookout-dev/lookout/internal/engine"
)

// renderDetailView renders the single-host detail view: a header line, a
// scrollable body, and a hint footer.
func (m Model) renderDetailView() string {
	if m.detailHost == "" {
		return m.styles.Label.Render("No host selected")
	}

	var b strings.Builder
	b.WriteString(m.renderDetailHeader())
	b.WriteString("\n\n")

	if m.viewportReady {
		b.WriteString(m.detailViewport.View())
	} else {
		b.WriteString(m.renderDetailContent())
	}

	b.WriteString("\n")
	b.WriteString(m.renderDetailFooter())
	return b.String()
}

// renderDetailHeader renders the host name with its aggregate status.
func (m Model) renderDetailHeader() string {
	services := HostServices(m.statuses, m.detailHost)
	status := HostStatus(services)

	title := m.styles.Title.Render(m.detailHost)
	indicator := m.styles.StatusGlyph(status) + " " + m.styles.StatusText(status)

	return m.styles.Header.Render(fmt.Sprintf("%s  %s", title, indicator))
}

// updateDetailViewportContent refreshes the scrollable body. Called when the
// detail view opens, on every tick while it is open, and on resize.
func (m *Model) updateDetailViewportContent() {
	if !m.viewportReady {
		return
	}
	m.detailViewport.SetContent(m.renderDetailContent())
}

// renderDetailContent builds the host metadata section followed by one
// section per service.
func (m Model) renderDetailContent() string {
	width := m.contentWidth()

	var b strings.Builder
	b.WriteString(m.renderHostInfoSection(width))
	b.WriteString("\n")

	services := HostServices(m.statuses, m.detailHost)
	if len(services) == 0 {
		b.WriteString(m.styles.DetailSection.Width(width).Render(
			m.styles.Label.Render(m.spinner() + " Waiting for results for this host...")))
		return b.String()
	}

	for _, r := range services {
		b.WriteString(m.renderServiceSection(r, width))
		b.WriteString("\n")
	}

	return strings.TrimRight(b.String(), "\n")
}

func (m Model) contentWidth() int {
	width := m.width - 6
	if width < 40 {
		width = 40
	}
	return width
}

// renderHostInfoSection renders the configured host metadata.
func (m Model) renderHostInfoSection(width int) string {
	var lines []string
	lines = append(lines, m.styles.DetailTitle.Render("Host"))
	lines = append(lines, "")

	host, ok := m.cfg.HostByName(m.detailHost)
	if !ok {
		// The host was probed under an old config; show what the store has.
		lines = append(lines, m.styles.Label.Render("  Not present in the current configuration"))
		return m.styles.DetailSection.Width(width).Render(strings.Join(lines, "\n"))
	}

	lines = append(lines, fmt.Sprintf("  Address:  %s", m.styles.Value.Render(host.Address)))
	if host.Description != "" {
		lines = append(lines, fmt.Sprintf("  About:    %s", m.styles.Label.Render(host.Description)))
	}
	if host.Timeout > 0 {
		lines = append(lines, fmt.Sprintf("  Timeout:  %s", m.styles.Label.Render(host.Timeout.String())))
	}
	lines = append(lines, fmt.Sprintf("  Services: %s", m.styles.Value.Render(fmt.Sprintf("%d", len(host.Services)))))

	return m.styles.DetailSection.Width(width).Render(strings.Join(lines, "\n"))
}

// renderServiceSection renders every recorded field for one service.
func (m Model) renderServiceSection(r engine.CheckResult, width int) string {
	var lines []string

	title := m.styles.DetailTitle.Render(r.ServiceName)
	statusText := m.styles.StatusGlyph(r.Status) + " " + m.styles.StatusText(r.Status)
	lines = append(lines, fmt.Sprintf("%s  %s", title, statusText))
	lines = append(lines, "")

	target := fmt.Sprintf("%s:%d", r.Address, r.Port)
	lines = append(lines, fmt.Sprintf("  Target:    %s", m.styles.Value.Render(target)))
	lines = append(lines, fmt.Sprintf("  Protocol:  %s", m.styles.Label.Render(r.Protocol.String())))

	if svc, ok := m.serviceConfig(r); ok {
		if svc.Path != "" {
			lines = append(lines, fmt.Sprintf("  Path:      %s", m.styles.Label.Render(svc.Path)))
		}
		if svc.Description != "" {
			lines = append(lines, fmt.Sprintf("  About:     %s", m.styles.Label.Render(svc.Description)))
		}
	}

	lines = append(lines, fmt.Sprintf("  Response:  %s", m.styles.Value.Render(formatResponseTime(r.ResponseTime))))
	lines = append(lines, fmt.Sprintf("  Checked:   %s", m.styles.Label.Render(m.formatTimestamp(r.LastCheck))))

	if r.ErrorMessage != "" {
		lines = append(lines, fmt.Sprintf("  Error:     %s", m.styles.Down.Render(r.ErrorMessage)))
	}

	return m.styles.DetailSection.Width(width).Render(strings.Join(lines, "\n"))
}

// serviceConfig finds the configured service behind a result.
func (m Model) serviceConfig(r engine.CheckResult) (config.ServiceConfig, bool) {
	host, ok := m.cfg.HostByName(r.HostName)
	if !ok {
		return config.ServiceConfig{}, false
	}
	for _, svc := range host.Services {
		if svc.Name == r.ServiceName && svc.Port == r.Port {
			return svc, true
		}
	}
	return config.ServiceConfig{}, false
}

// formatTimestamp renders a check time in the configured timezone.
func (m Model) formatTimestamp(t time.Time) string {
	if t.IsZero() {
		return "never"
	}
	return t.In(m.loc).Format("15:04:05 MST")
}

// renderDetailFooter renders navigation hints for the detail view.
func (m Model) renderDetailFooter() string {
	hints := []string{"b back", "j/k scroll", "r refresh", "q quit"}
	return m.styles.Footer.Render(strings.Join(hints, " | "))
}
