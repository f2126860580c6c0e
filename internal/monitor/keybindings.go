package monitor

import tea "github.com/charmbracelet/bubbletea"

// Key bindings as constants for consistency.
const (
	KeyQuit        = "q"
	KeyQuitEsc     = "esc"
	KeyQuitAlt     = "ctrl+c"
	KeyToggleHelp  = "h"
	KeyToggleHelp2 = "?"
	KeySelectNext  = "j"
	KeySelectNext2 = "down"
	KeySelectPrev  = "k"
	KeySelectPrev2 = "up"
	KeyRefresh     = "r"
	KeyEnterDetail = "enter"
	KeyExitDetail  = "b"
)

// HandleKeyMsg processes keyboard input. It returns true when the key was
// handled; unhandled keys fall through to the detail viewport.
func (m *Model) HandleKeyMsg(msg tea.KeyMsg) (bool, tea.Cmd) {
	key := msg.String()

	// Quit and help work everywhere, including on top of the overlay.
	switch key {
	case KeyQuit, KeyQuitEsc, KeyQuitAlt:
		m.quitting = true
		return true, tea.Quit

	case KeyToggleHelp, KeyToggleHelp2:
		m.showHelp = !m.showHelp
		return true, nil
	}

	switch key {
	case KeySelectNext, KeySelectNext2:
		if m.viewMode == ViewDetail {
			return false, nil // scrolls the viewport instead
		}
		m.moveSelection(1)
		return true, nil

	case KeySelectPrev, KeySelectPrev2:
		if m.viewMode == ViewDetail {
			return false, nil
		}
		m.moveSelection(-1)
		return true, nil

	case KeyRefresh:
		m.refreshing = true
		m.refreshMark = m.lastUpdate
		m.eng.Refresh()
		return true, nil

	case KeyEnterDetail:
		// The only key the help overlay blocks: opening detail underneath
		// an overlay the operator cannot see would be disorienting.
		// Navigation and refresh keep working while help is up.
		if m.showHelp {
			return true, nil
		}
		m.enterHostDetail()
		return true, nil

	case KeyExitDetail:
		if m.viewMode == ViewDetail {
			m.exitHostDetail()
		}
		return true, nil
	}

	return false, nil
}

// moveSelection shifts the selected row with modulo wraparound. No-op when
// the view is empty.
func (m *Model) moveSelection(delta int) {
	total := TotalItems(m.groups)
	if total == 0 {
		return
	}
	m.selected = ((m.selected+delta)%total + total) % total
}

// enterHostDetail opens the detail view for the selected item's host. Both
// header and service rows pin a host. No-op when the view is empty.
func (m *Model) enterHostDetail() {
	item, ok := ItemAt(m.groups, m.selected)
	if !ok {
		return
	}
	m.detailHost = item.Host
	m.viewMode = ViewDetail
	if m.viewportReady {
		m.detailViewport.GotoTop()
	}
	m.updateDetailViewportContent()
}

// exitHostDetail returns to the overview unconditionally.
func (m *Model) exitHostDetail() {
	m.viewMode = ViewOverview
	m.detailHost = ""
}
