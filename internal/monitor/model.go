package monitor

import (
	"time"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/lookout-dev/lookout/internal/config"
	"github.com/lookout-dev/lookout/internal/engine"
)

// Engine is the slice of the monitoring engine the dashboard consumes.
// *engine.Engine is the production implementation; tests plug in stubs.
type Engine interface {
	// Statuses returns a snapshot of the latest results.
	Statuses() map[engine.Key]engine.CheckResult
	// Refresh asks for an immediate probe round.
	Refresh()
	// LastRound reports when the most recent round completed.
	LastRound() time.Time
}

// ViewMode defines the current display mode of the dashboard.
type ViewMode int

const (
	ViewOverview ViewMode = iota
	ViewDetail
)

// uiTickInterval is how often the dashboard pulls a fresh snapshot from the
// engine. Probing runs on its own cadence; this only drives rendering.
const uiTickInterval = 250 * time.Millisecond

// tickMsg signals a periodic snapshot pull and re-render.
type tickMsg time.Time

// Model is the Bubble Tea model for the service health dashboard.
type Model struct {
	eng    Engine
	cfg    *config.Config
	loc    *time.Location
	styles Styles

	statuses map[engine.Key]engine.CheckResult
	groups   []HostGroup
	stats    Stats

	selected   int
	viewMode   ViewMode
	showHelp   bool
	detailHost string

	// refreshing is set by the r key and cleared once a round completes
	// after refreshMark.
	refreshing  bool
	refreshMark time.Time

	width      int
	height     int
	lastUpdate time.Time
	quitting   bool

	spinnerFrame int

	detailViewport viewport.Model
	viewportReady  bool
}

// New creates the dashboard model over a running engine. The configured
// timezone drives the header clock and timestamps; an unparseable timezone
// falls back to UTC (validation normally rejects it before this point).
func New(eng Engine, cfg *config.Config) Model {
	loc := time.UTC
	if cfg.Settings.Timezone != "" {
		if l, err := time.LoadLocation(cfg.Settings.Timezone); err == nil {
			loc = l
		}
	}

	m := Model{
		eng:      eng,
		cfg:      cfg,
		loc:      loc,
		styles:   NewStyles(cfg.Settings.Theme),
		statuses: make(map[engine.Key]engine.CheckResult),
	}
	m.syncFromEngine()
	return m
}

// Init starts the UI tick loop.
func (m Model) Init() tea.Cmd {
	return m.tickCmd()
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		handled, cmd := m.HandleKeyMsg(msg)
		if handled {
			return m, cmd
		}

		// Unhandled keys scroll the viewport in the detail view.
		if m.viewMode == ViewDetail && m.viewportReady {
			var vpCmd tea.Cmd
			m.detailViewport, vpCmd = m.detailViewport.Update(msg)
			return m, vpCmd
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		// Reserve space for the detail header and footer.
		headerHeight := 3
		footerHeight := 2
		viewportHeight := m.height - headerHeight - footerHeight
		if viewportHeight < 1 {
			viewportHeight = 1
		}

		if !m.viewportReady {
			m.detailViewport = viewport.New(m.width, viewportHeight)
			m.detailViewport.YPosition = headerHeight
			m.viewportReady = true
		} else {
			m.detailViewport.Width = m.width
			m.detailViewport.Height = viewportHeight
		}

		if m.viewMode == ViewDetail {
			m.updateDetailViewportContent()
		}

	case tickMsg:
		m.spinnerFrame = (m.spinnerFrame + 1) % 10000
		m.syncFromEngine()
		if m.viewMode == ViewDetail {
			m.updateDetailViewportContent()
		}
		return m, m.tickCmd()
	}

	return m, nil
}

// View renders the dashboard. The help overlay wins over the detail view,
// which wins over the overview.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.showHelp {
		return m.renderHelpOverlay()
	}
	if m.viewMode == ViewDetail {
		return m.renderDetailView()
	}
	return m.renderOverview()
}

// tickCmd returns a command that sends the next UI tick.
func (m Model) tickCmd() tea.Cmd {
	return tea.Tick(uiTickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// syncFromEngine pulls a fresh snapshot, regroups it, and keeps the
// selection inside the new bounds.
func (m *Model) syncFromEngine() {
	m.statuses = m.eng.Statuses()
	m.groups = GroupResults(m.statuses)
	m.stats = Tally(m.statuses)
	m.lastUpdate = m.eng.LastRound()

	if m.refreshing && m.lastUpdate.After(m.refreshMark) {
		m.refreshing = false
	}

	m.clampSelection()
}

// clampSelection pins a stale index back into range after a snapshot change.
func (m *Model) clampSelection() {
	total := TotalItems(m.groups)
	if total == 0 {
		m.selected = 0
		return
	}
	if m.selected >= total {
		m.selected = total - 1
	}
	if m.selected < 0 {
		m.selected = 0
	}
}

// SelectedItem resolves the current selection. ok is false when the view is
// empty.
func (m Model) SelectedItem() (Item, bool) {
	return ItemAt(m.groups, m.selected)
}

// SecondsSinceUpdate returns how many whole seconds have passed since the
// last completed round.
func (m Model) SecondsSinceUpdate() int {
	if m.lastUpdate.IsZero() {
		return 0
	}
	return int(time.Since(m.lastUpdate).Seconds())
}

// spinner returns the current animation frame.
func (m Model) spinner() string {
	return spinnerFrames[m.spinnerFrame%len(spinnerFrames)]
}
