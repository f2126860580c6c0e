package engine

import (
	"fmt"
	"time"

	"github.com/lookout-dev/lookout/internal/config"
)

// Status classifies the latest probe outcome for a service.
type Status string

const (
	// StatusUnknown means the pair has not been probed yet.
	StatusUnknown Status = "unknown"
	// StatusUp means the most recent probe succeeded.
	StatusUp Status = "up"
	// StatusDown means the most recent probe failed.
	StatusDown Status = "down"
)

// Label returns the display form used in dashboard and check output.
func (s Status) Label() string {
	switch s {
	case StatusUp:
		return "Up"
	case StatusDown:
		return "Down"
	default:
		return "Unknown"
	}
}

// Key identifies a (host, service) pair in the store. Port is part of the
// identity so the same service name can be checked on several ports.
type Key struct {
	Host    string `json:"host"`
	Service string `json:"service"`
	Port    int    `json:"port"`
}

// String renders the key as host:service:port.
func (k Key) String() string {
	return fmt.Sprintf("%s:%s:%d", k.Host, k.Service, k.Port)
}

// CheckResult is the latest outcome of probing one service on one host.
// ResponseTime is the probe's wall-clock elapsed time regardless of status;
// on a Down result it measures the time to failure.
type CheckResult struct {
	HostName     string          `json:"host"`
	ServiceName  string          `json:"service"`
	Address      string          `json:"address"`
	Port         int             `json:"port"`
	Protocol     config.Protocol `json:"protocol"`
	Status       Status          `json:"status"`
	LastCheck    time.Time       `json:"last_check"`
	ResponseTime time.Duration   `json:"response_time"`
	ErrorMessage string          `json:"error,omitempty"`
}

// Key derives the store key for this result.
func (r CheckResult) Key() Key {
	return Key{Host: r.HostName, Service: r.ServiceName, Port: r.Port}
}
