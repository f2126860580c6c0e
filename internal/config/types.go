package config

import (
	"sort"
	"strings"
	"time"
)

// Protocol identifies how a service is probed.
type Protocol string

const (
	ProtocolTCP   Protocol = "tcp"
	ProtocolUDP   Protocol = "udp"
	ProtocolHTTP  Protocol = "http"
	ProtocolHTTPS Protocol = "https"
)

// String returns the display form of the protocol (e.g. "TCP", "HTTPS").
func (p Protocol) String() string {
	return strings.ToUpper(string(p))
}

// Valid reports whether the protocol is one of the supported probe types.
func (p Protocol) Valid() bool {
	switch p {
	case ProtocolTCP, ProtocolUDP, ProtocolHTTP, ProtocolHTTPS:
		return true
	}
	return false
}

// IsHTTP reports whether the protocol is HTTP or HTTPS. Only these
// protocols accept a request path.
func (p Protocol) IsHTTP() bool {
	return p == ProtocolHTTP || p == ProtocolHTTPS
}

// Config represents the complete lookout.yaml configuration file.
type Config struct {
	Hosts    []HostConfig `yaml:"hosts" mapstructure:"hosts"`
	Settings Settings     `yaml:"settings" mapstructure:"settings"`
}

// HostConfig defines a monitored machine and the services it exposes.
type HostConfig struct {
	// Name is the display name for this host. Must be unique.
	Name string `yaml:"name" mapstructure:"name"`

	// Address is the hostname or IP that probes connect to.
	Address string `yaml:"address" mapstructure:"address"`

	// Description is optional free text shown in the host detail view.
	Description string `yaml:"description,omitempty" mapstructure:"description"`

	// Timeout is the default probe timeout for this host's services.
	// Services without their own timeout inherit it.
	Timeout time.Duration `yaml:"timeout,omitempty" mapstructure:"timeout"`

	// Services to probe on this host.
	Services []ServiceConfig `yaml:"services" mapstructure:"services"`
}

// ServiceConfig defines a single service probe on a host.
type ServiceConfig struct {
	// Name identifies the service within its host (e.g. "http", "postgres").
	Name string `yaml:"name" mapstructure:"name"`

	// Port the service listens on (1-65535).
	Port int `yaml:"port" mapstructure:"port"`

	// Protocol selects the probe type: tcp, udp, http, or https.
	Protocol Protocol `yaml:"protocol" mapstructure:"protocol"`

	// Path is the request path for http/https probes (e.g. "/healthz").
	Path string `yaml:"path,omitempty" mapstructure:"path"`

	// Description is optional free text shown in the host detail view.
	Description string `yaml:"description,omitempty" mapstructure:"description"`

	// Timeout bounds a single probe of this service.
	Timeout time.Duration `yaml:"timeout,omitempty" mapstructure:"timeout"`
}

// Settings holds dashboard-wide options.
type Settings struct {
	// RefreshInterval is the period between probe rounds.
	RefreshInterval time.Duration `yaml:"refresh_interval" mapstructure:"refresh_interval"`

	// Theme selects the dashboard palette: "default" (detect from the
	// terminal background), "dark", or "light".
	Theme string `yaml:"theme" mapstructure:"theme"`

	// Timezone is the IANA zone name used for the clock and timestamps.
	Timezone string `yaml:"timezone" mapstructure:"timezone"`

	// LogFile, when set, sends engine logs to a rotating file so the
	// dashboard keeps the terminal to itself.
	LogFile string `yaml:"log_file,omitempty" mapstructure:"log_file"`
}

// Default timeouts and cadence. Services without an explicit timeout
// inherit their host's; hosts without one get DefaultHostTimeout.
const (
	DefaultHostTimeout     = 5 * time.Second
	DefaultServiceTimeout  = 10 * time.Second
	DefaultRefreshInterval = 5 * time.Second
	MinRefreshInterval     = 500 * time.Millisecond
)

// DefaultConfig returns a Config with sensible defaults and no hosts.
func DefaultConfig() *Config {
	return &Config{
		Hosts: []HostConfig{},
		Settings: Settings{
			RefreshInterval: DefaultRefreshInterval,
			Theme:           "default",
			Timezone:        "UTC",
		},
	}
}

// HostByName returns the host with the given name.
func (c *Config) HostByName(name string) (HostConfig, bool) {
	for _, h := range c.Hosts {
		if h.Name == name {
			return h, true
		}
	}
	return HostConfig{}, false
}

// HostNames returns all configured host names in sorted order.
func (c *Config) HostNames() []string {
	names := make([]string, 0, len(c.Hosts))
	for _, h := range c.Hosts {
		names = append(names, h.Name)
	}
	sort.Strings(names)
	return names
}

// TotalServices returns the number of configured (host, service) pairs.
func (c *Config) TotalServices() int {
	n := 0
	for _, h := range c.Hosts {
		n += len(h.Services)
	}
	return n
}

// FilterHosts returns a copy of the config restricted to the named hosts.
// Unknown names are ignored; an empty filter returns the config unchanged.
func (c *Config) FilterHosts(names []string) *Config {
	if len(names) == 0 {
		return c
	}

	wanted := make(map[string]bool, len(names))
	for _, n := range names {
		wanted[strings.TrimSpace(n)] = true
	}

	filtered := *c
	filtered.Hosts = make([]HostConfig, 0, len(c.Hosts))
	for _, h := range c.Hosts {
		if wanted[h.Name] {
			filtered.Hosts = append(filtered.Hosts, h)
		}
	}
	return &filtered
}
