package ui

// Unicode symbols for status indicators.
const (
	SymbolSuccess = "✓" // Check passed
	SymbolFail    = "✗" // Check failed / service down
	SymbolUp      = "●" // Service up
	SymbolUnknown = "◌" // Service not probed yet
	SymbolWarn    = "!" // Check warned
)
