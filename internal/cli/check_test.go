package cli

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lookout-dev/lookout/internal/engine"
	"github.com/lookout-dev/lookout/internal/monitor"
)

func makeResult(host, service string, port int, status engine.Status, rt time.Duration, errMsg string) engine.CheckResult {
	return engine.CheckResult{
		HostName:     host,
		ServiceName:  service,
		Address:      "10.0.0.1",
		Port:         port,
		Protocol:     "tcp",
		Status:       status,
		ResponseTime: rt,
		ErrorMessage: errMsg,
	}
}

func TestBuildCheckRows(t *testing.T) {
	groups := []monitor.HostGroup{
		{
			Host: "api",
			Services: []engine.CheckResult{
				makeResult("api", "http", 80, engine.StatusUp, 12*time.Millisecond, ""),
				makeResult("api", "ssh", 22, engine.StatusDown, 8*time.Millisecond, "connection refused"),
			},
		},
		{
			Host: "db",
			Services: []engine.CheckResult{
				makeResult("db", "postgres", 5432, engine.StatusUp, 3*time.Millisecond, ""),
			},
		},
	}

	rows := buildCheckRows(groups)
	require.Len(t, rows, 3)

	assert.Equal(t, "api", rows[0].Host)
	assert.Equal(t, "http", rows[0].Service)
	assert.Equal(t, "10.0.0.1:80", rows[0].Target)
	assert.Equal(t, "12ms", rows[0].Response)
	assert.True(t, rows[0].Up)

	assert.False(t, rows[1].Up)
	assert.Equal(t, "8ms", rows[1].Response, "down rows keep their time to failure")
	assert.Equal(t, "connection refused", rows[1].Error)

	assert.Equal(t, "db", rows[2].Host)
	assert.Equal(t, "postgres", rows[2].Service)
}

func TestFormatCheckResponse(t *testing.T) {
	tests := []struct {
		name     string
		result   engine.CheckResult
		expected string
	}{
		{"unprobed shows dash", makeResult("h", "s", 1, engine.StatusUnknown, 0, ""), "-"},
		{"down shows time to failure", makeResult("h", "s", 1, engine.StatusDown, 75*time.Millisecond, "refused"), "75ms"},
		{"sub-millisecond", makeResult("h", "s", 1, engine.StatusUp, 200*time.Microsecond, ""), "<1ms"},
		{"milliseconds", makeResult("h", "s", 1, engine.StatusUp, 45*time.Millisecond, ""), "45ms"},
		{"seconds", makeResult("h", "s", 1, engine.StatusUp, 1500*time.Millisecond, ""), "1.5s"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, formatCheckResponse(tc.result))
		})
	}
}

func TestPrintCheckJSON(t *testing.T) {
	groups := []monitor.HostGroup{
		{
			Host: "api",
			Services: []engine.CheckResult{
				makeResult("api", "http", 80, engine.StatusUp, 12*time.Millisecond, ""),
				makeResult("api", "ssh", 22, engine.StatusDown, 0, "connection refused"),
			},
		},
	}
	stats := monitor.Stats{Up: 1, Down: 1}

	cmd := &cobra.Command{}
	out := captureOutput(t, cmd, func() {
		require.NoError(t, printCheckJSON(cmd, groups, stats))
	})

	var decoded checkJSONOutput
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))

	require.Len(t, decoded.Results, 2)
	assert.Equal(t, "http", decoded.Results[0].ServiceName)
	assert.Equal(t, engine.StatusUp, decoded.Results[0].Status)
	assert.Equal(t, "connection refused", decoded.Results[1].ErrorMessage)
	assert.Equal(t, 1, decoded.Summary.Up)
	assert.Equal(t, 1, decoded.Summary.Down)
	assert.Equal(t, 2, decoded.Summary.Total)
}

func TestPrintCheckJSONEmpty(t *testing.T) {
	cmd := &cobra.Command{}
	out := captureOutput(t, cmd, func() {
		require.NoError(t, printCheckJSON(cmd, nil, monitor.Stats{}))
	})

	var decoded checkJSONOutput
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))
	assert.NotNil(t, decoded.Results)
	assert.Empty(t, decoded.Results)
	assert.Equal(t, 0, decoded.Summary.Total)
}
