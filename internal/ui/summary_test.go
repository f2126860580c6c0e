package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderCheckSummary(t *testing.T) {
	tests := []struct {
		name     string
		summary  CheckSummary
		contains string
	}{
		{
			name:     "all up",
			summary:  CheckSummary{Up: 3},
			contains: "all 3 services up",
		},
		{
			name:     "single service up",
			summary:  CheckSummary{Up: 1},
			contains: "all 1 service up",
		},
		{
			name:     "some down",
			summary:  CheckSummary{Up: 7, Down: 2},
			contains: "2 of 9 services down",
		},
		{
			name:     "all down",
			summary:  CheckSummary{Down: 1},
			contains: "1 of 1 service down",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Contains(t, RenderCheckSummary(tc.summary), tc.contains)
		})
	}
}

func TestRenderCheckSummary_Symbols(t *testing.T) {
	assert.Contains(t, RenderCheckSummary(CheckSummary{Up: 2}), SymbolSuccess)
	assert.Contains(t, RenderCheckSummary(CheckSummary{Up: 1, Down: 1}), SymbolFail)
}

func TestRenderCheckSummary_Empty(t *testing.T) {
	assert.Empty(t, RenderCheckSummary(CheckSummary{}))
}

func TestCheckSummaryTotal(t *testing.T) {
	assert.Equal(t, 5, CheckSummary{Up: 3, Down: 2}.Total())
	assert.Equal(t, 0, CheckSummary{}.Total())
}
