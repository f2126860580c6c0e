package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lookout-dev/lookout/internal/errors"
)

// validConfig returns a minimal config that passes validation; tests mutate
// one field at a time to provoke specific failures.
func validConfig() *Config {
	return &Config{
		Hosts: []HostConfig{
			{
				Name:    "web-01",
				Address: "192.168.1.10",
				Timeout: 5 * time.Second,
				Services: []ServiceConfig{
					{Name: "http", Port: 80, Protocol: ProtocolHTTP, Path: "/", Timeout: 10 * time.Second},
					{Name: "ssh", Port: 22, Protocol: ProtocolTCP, Timeout: 10 * time.Second},
				},
			},
		},
		Settings: Settings{
			RefreshInterval: 5 * time.Second,
			Theme:           "default",
			Timezone:        "UTC",
		},
	}
}

func TestValidate_OK(t *testing.T) {
	assert.NoError(t, Validate(validConfig()))
}

func TestValidate_EmptyHostsOK(t *testing.T) {
	// An empty fleet is allowed; the dashboard just shows the waiting
	// placeholder until hosts are added.
	cfg := DefaultConfig()
	assert.NoError(t, Validate(cfg))
}

func TestValidate_Failures(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(*Config)
		wantPart string
	}{
		{
			name:     "refresh interval too short",
			mutate:   func(c *Config) { c.Settings.RefreshInterval = 100 * time.Millisecond },
			wantPart: "refresh_interval",
		},
		{
			name:     "unknown theme",
			mutate:   func(c *Config) { c.Settings.Theme = "solarized" },
			wantPart: "theme",
		},
		{
			name:     "unknown timezone",
			mutate:   func(c *Config) { c.Settings.Timezone = "Mars/Olympus_Mons" },
			wantPart: "timezone",
		},
		{
			name:     "host without name",
			mutate:   func(c *Config) { c.Hosts[0].Name = "" },
			wantPart: "missing its 'name'",
		},
		{
			name:     "host without address",
			mutate:   func(c *Config) { c.Hosts[0].Address = "" },
			wantPart: "needs an 'address'",
		},
		{
			name:     "negative host timeout",
			mutate:   func(c *Config) { c.Hosts[0].Timeout = -time.Second },
			wantPart: "negative timeout",
		},
		{
			name:     "duplicate host names",
			mutate:   func(c *Config) { c.Hosts = append(c.Hosts, c.Hosts[0]) },
			wantPart: "defined twice",
		},
		{
			name:     "service without name",
			mutate:   func(c *Config) { c.Hosts[0].Services[0].Name = "" },
			wantPart: "missing its 'name'",
		},
		{
			name:     "port zero",
			mutate:   func(c *Config) { c.Hosts[0].Services[0].Port = 0 },
			wantPart: "ports run from 1 to 65535",
		},
		{
			name:     "port too large",
			mutate:   func(c *Config) { c.Hosts[0].Services[0].Port = 70000 },
			wantPart: "ports run from 1 to 65535",
		},
		{
			name:     "unknown protocol",
			mutate:   func(c *Config) { c.Hosts[0].Services[0].Protocol = "gopher" },
			wantPart: "use tcp, udp, http, or https",
		},
		{
			name:     "path on tcp service",
			mutate:   func(c *Config) { c.Hosts[0].Services[1].Path = "/nope" },
			wantPart: "paths only apply to http and https",
		},
		{
			name:     "negative service timeout",
			mutate:   func(c *Config) { c.Hosts[0].Services[0].Timeout = -time.Second },
			wantPart: "negative timeout",
		},
		{
			// `timeout: 5` without a unit decodes as 5 nanoseconds.
			name:     "unitless service timeout",
			mutate:   func(c *Config) { c.Hosts[0].Services[0].Timeout = 5 },
			wantPart: "write a duration with a unit",
		},
		{
			name:     "unitless host timeout",
			mutate:   func(c *Config) { c.Hosts[0].Timeout = 5 },
			wantPart: "write a duration with a unit",
		},
		{
			name: "duplicate status key",
			mutate: func(c *Config) {
				c.Hosts[0].Services = append(c.Hosts[0].Services, c.Hosts[0].Services[0])
			},
			wantPart: "results would overwrite each other",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)

			err := Validate(cfg)

			require.Error(t, err)
			assert.True(t, errors.IsCode(err, errors.ErrConfig))
			assert.Contains(t, err.Error(), tt.wantPart)
		})
	}
}

func TestValidate_CollectsEveryProblem(t *testing.T) {
	cfg := validConfig()
	cfg.Settings.Theme = "solarized"
	cfg.Hosts[0].Address = ""
	cfg.Hosts[0].Services[0].Port = 0

	err := Validate(cfg)
	require.Error(t, err)

	// All three problems surface in one pass.
	msg := err.Error()
	assert.Contains(t, msg, "theme")
	assert.Contains(t, msg, "address")
	assert.Contains(t, msg, "ports run from 1 to 65535")
}
