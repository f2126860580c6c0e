package ui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/bubbles/table"
	"github.com/stretchr/testify/assert"
)

func TestNewTable(t *testing.T) {
	columns := []TableColumn{
		{Title: "Name", Width: 20},
		{Title: "Status", Width: 10},
	}
	rows := []table.Row{
		{"item1", "ok"},
		{"item2", "error"},
	}

	tbl := NewTable(columns, rows)

	view := tbl.View()
	assert.NotEmpty(t, view)
	assert.Contains(t, view, "Name")
	assert.Contains(t, view, "Status")
	assert.Contains(t, view, "item1")
	assert.Contains(t, view, "item2")
}

func TestRenderSimpleTable(t *testing.T) {
	columns := []TableColumn{
		{Title: "Host", Width: 15},
		{Title: "Status", Width: 10},
	}
	rows := [][]string{
		{"server1", "online"},
		{"server2", "offline"},
	}

	output := RenderSimpleTable(columns, rows)

	assert.Contains(t, output, "Host")
	assert.Contains(t, output, "server1")
	assert.Contains(t, output, "offline")
}

func TestRenderSimpleTable_EmptyRows(t *testing.T) {
	assert.Empty(t, RenderSimpleTable([]TableColumn{{Title: "Name", Width: 20}}, nil))
}

func TestRenderCheckTable(t *testing.T) {
	rows := []CheckRow{
		{Up: true, Host: "db-01", Service: "postgres", Target: "10.0.0.2:5432", Response: "12ms"},
		{Up: false, Host: "web-01", Service: "http", Target: "10.0.0.1:80", Response: "N/A", Error: "Connection refused"},
		{Up: true, Host: "web-01", Service: "ssh", Target: "10.0.0.1:22", Response: "8ms"},
	}

	output := RenderCheckTable(rows)

	assert.Contains(t, output, "HOST")
	assert.Contains(t, output, "SERVICE")
	assert.Contains(t, output, "db-01")
	assert.Contains(t, output, "postgres")
	assert.Contains(t, output, "10.0.0.1:80")
	assert.Contains(t, output, "Connection refused")
	assert.Contains(t, output, SymbolUp)
	assert.Contains(t, output, SymbolFail)

	// Repeated hosts render blank so services group under one header
	assert.Equal(t, 1, strings.Count(output, "web-01"))
}

func TestRenderCheckTable_Empty(t *testing.T) {
	assert.Equal(t, "No services configured", RenderCheckTable(nil))
}

func TestRenderCheckTable_TruncatesLongErrors(t *testing.T) {
	rows := []CheckRow{
		{Up: false, Host: "a", Service: "s", Target: "a:1", Response: "N/A",
			Error: strings.Repeat("x", 80) + "END"},
	}

	output := RenderCheckTable(rows)

	assert.NotContains(t, output, "END")
	assert.Contains(t, output, "...")
}

func TestRenderDoctorReport(t *testing.T) {
	rows := []DoctorCheckRow{
		{Status: "pass", Category: "CONFIG", Message: "Config file: lookout.yaml"},
		{Status: "fail", Category: "CONFIG", Message: "No hosts configured", Suggestion: "Add a host"},
		{Status: "warn", Category: "SETTINGS", Message: "1 service has a slow timeout", Suggestion: "Lower it"},
	}

	output := RenderDoctorReport(rows)

	assert.Contains(t, output, "CONFIG")
	assert.Contains(t, output, "SETTINGS")
	assert.Contains(t, output, "Config file: lookout.yaml")
	assert.Contains(t, output, "Add a host")
	assert.Contains(t, output, "Lower it")

	// Categories render in first-seen order
	assert.Less(t, strings.Index(output, "CONFIG"), strings.Index(output, "SETTINGS"))
}

func TestRenderDoctorReport_PassSuggestionHidden(t *testing.T) {
	rows := []DoctorCheckRow{
		{Status: "pass", Category: "CONFIG", Message: "All good", Suggestion: "Should not appear"},
	}

	output := RenderDoctorReport(rows)

	assert.NotContains(t, output, "Should not appear")
}

func TestRenderDoctorReport_Empty(t *testing.T) {
	assert.Equal(t, "No checks to display", RenderDoctorReport(nil))
}
