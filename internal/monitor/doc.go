// Package monitor implements the terminal dashboard for service health.
//
// The dashboard shows every configured (host, service) pair grouped by host,
// with color-coded status indicators, a per-host detail view, and a help
// overlay.
//
// # Architecture
//
// The package uses the Bubble Tea framework, which follows The Elm
// Architecture (Model-Update-View pattern):
//
//   - Model: Holds dashboard state (snapshot, groups, selection, view mode)
//   - Update: Processes messages (keystrokes, tick events, window resizes)
//   - View: Renders the current state to a string for display
//
// Probing is not driven by the UI. The engine runs its own round loop and
// writes into its store; the dashboard only reads snapshots.
//
// # Message Flow
//
// The dashboard runs on a fixed 250ms tick:
//
//  1. tickMsg fires and pulls engine.Statuses()
//  2. GroupResults orders the snapshot into host groups
//  3. The stale selection index is clamped into the new bounds
//  4. View() re-renders the rows
//
// A manual refresh (r) signals the engine and shows a spinner until the next
// completed round lands.
//
// # Views
//
// Three render states, in priority order:
//
//	Help overlay  - centered keybinding reference; navigation and refresh
//	                stay active underneath, only Enter is blocked
//	Host detail   - scrollable viewport with host metadata and full
//	                per-service fields
//	Overview      - host headers with indented service rows
//
// # Keyboard Shortcuts
//
//	q, Esc, Ctrl+C - Quit
//	j/k, down/up   - Move selection (scrolls the viewport in detail view)
//	Enter          - Open detail for the selected item's host
//	b              - Back to the overview
//	r              - Probe now instead of waiting for the next round
//	h, ?           - Toggle help overlay
package monitor
