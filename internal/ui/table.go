package ui

import (
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"github.com/lookout-dev/lookout/internal/util"
)

// TableColumn defines a table column with name and width.
type TableColumn struct {
	Title string
	Width int
}

// NewTable creates a new Bubbles table with default styling.
func NewTable(columns []TableColumn, rows []table.Row) table.Model {
	cols := make([]table.Column, len(columns))
	for i, c := range columns {
		cols[i] = table.Column{
			Title: c.Title,
			Width: c.Width,
		}
	}

	t := table.New(
		table.WithColumns(cols),
		table.WithRows(rows),
		table.WithFocused(false),
		table.WithHeight(len(rows)+1), // +1 for header
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color(string(ColorMuted))).
		BorderBottom(true).
		Bold(true).
		Foreground(lipgloss.Color(string(ColorPrimary)))
	s.Cell = s.Cell.
		Foreground(lipgloss.Color(string(ColorPrimary)))
	s.Selected = s.Selected.
		Foreground(lipgloss.Color(string(ColorPrimary))).
		Background(lipgloss.Color(string(ColorMuted))).
		Bold(false)

	t.SetStyles(s)
	return t
}

// RenderSimpleTable renders a non-interactive table string for CLI output.
func RenderSimpleTable(columns []TableColumn, rows [][]string) string {
	if len(rows) == 0 {
		return ""
	}

	tableRows := make([]table.Row, len(rows))
	for i, row := range rows {
		tableRows[i] = table.Row(row)
	}

	t := NewTable(columns, tableRows)
	return t.View()
}

// maxErrorWidth caps the error column so one verbose failure does not blow
// up the whole table.
const maxErrorWidth = 40

// CheckRow is one service result in the check command's table.
type CheckRow struct {
	Up       bool
	Host     string
	Service  string
	Target   string // address:port
	Response string
	Error    string
}

// RenderCheckTable renders service results as a table, ordered by host then
// service. The host cell is left blank on repeats so services group visually
// under their host.
func RenderCheckTable(rows []CheckRow) string {
	if len(rows) == 0 {
		return "No services configured"
	}

	tableRows := make([][]string, 0, len(rows))
	lastHost := ""
	for _, row := range rows {
		status := SymbolUp
		if !row.Up {
			status = SymbolFail
		}

		host := row.Host
		if host == lastHost {
			host = ""
		} else {
			lastHost = host
		}

		tableRows = append(tableRows, []string{
			status,
			host,
			row.Service,
			row.Target,
			row.Response,
			util.Truncate(row.Error, maxErrorWidth),
		})
	}

	columns := []TableColumn{
		{Title: "", Width: 2},
		{Title: "HOST", Width: columnWidth("HOST", rows, func(r CheckRow) string { return r.Host })},
		{Title: "SERVICE", Width: columnWidth("SERVICE", rows, func(r CheckRow) string { return r.Service })},
		{Title: "TARGET", Width: columnWidth("TARGET", rows, func(r CheckRow) string { return r.Target })},
		{Title: "RESPONSE", Width: 10},
		{Title: "ERROR", Width: errorWidth(rows)},
	}

	return RenderSimpleTable(columns, tableRows)
}

// columnWidth sizes a column to its widest value plus padding.
func columnWidth(title string, rows []CheckRow, value func(CheckRow) string) int {
	width := lipgloss.Width(title)
	for _, row := range rows {
		if w := lipgloss.Width(value(row)); w > width {
			width = w
		}
	}
	return width + 2
}

func errorWidth(rows []CheckRow) int {
	width := 5 // "ERROR"
	for _, row := range rows {
		w := lipgloss.Width(util.Truncate(row.Error, maxErrorWidth))
		if w > width {
			width = w
		}
	}
	return width + 2
}

// DoctorCheckRow represents a row in the doctor diagnostic report.
type DoctorCheckRow struct {
	Status     string // "pass", "warn", "fail"
	Category   string // Check category
	Message    string // Check result message
	Suggestion string // Suggestion for fixing (if failed)
}

// RenderDoctorReport renders doctor check results grouped by category, in
// first-seen category order.
func RenderDoctorReport(rows []DoctorCheckRow) string {
	if len(rows) == 0 {
		return "No checks to display"
	}

	successStyle := lipgloss.NewStyle().Foreground(ColorSuccess)
	errorStyle := lipgloss.NewStyle().Foreground(ColorError)
	warnStyle := lipgloss.NewStyle().Foreground(ColorWarning)
	mutedStyle := lipgloss.NewStyle().Foreground(ColorMuted)
	headerStyle := lipgloss.NewStyle().Bold(true).Foreground(ColorPrimary)

	categories := make(map[string][]DoctorCheckRow)
	categoryOrder := []string{}
	for _, row := range rows {
		if _, exists := categories[row.Category]; !exists {
			categoryOrder = append(categoryOrder, row.Category)
		}
		categories[row.Category] = append(categories[row.Category], row)
	}

	var output string
	for _, cat := range categoryOrder {
		output += headerStyle.Render(cat) + "\n"

		for _, row := range categories[cat] {
			var statusIcon string
			switch row.Status {
			case "pass":
				statusIcon = successStyle.Render(SymbolSuccess)
			case "warn":
				statusIcon = warnStyle.Render(SymbolWarn)
			case "fail":
				statusIcon = errorStyle.Render(SymbolFail)
			default:
				statusIcon = mutedStyle.Render(SymbolUnknown)
			}

			output += "  " + statusIcon + " " + row.Message + "\n"

			if row.Suggestion != "" && row.Status != "pass" {
				output += "    " + mutedStyle.Render(row.Suggestion) + "\n"
			}
		}
		output += "\n"
	}

	return output
}
