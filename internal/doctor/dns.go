package doctor

import (
	"context"
	"fmt"
	"net"
	"time"

	"github.com/lookout-dev/lookout/internal/config"
)

// DefaultLookupTimeout bounds a single DNS resolution check.
const DefaultLookupTimeout = 5 * time.Second

// DNSResolveCheck verifies that a host's configured address resolves.
// Literal IP addresses pass without a lookup.
type DNSResolveCheck struct {
	HostName string
	Address  string
	Timeout  time.Duration
}

func (c *DNSResolveCheck) Name() string     { return fmt.Sprintf("dns_%s", c.HostName) }
func (c *DNSResolveCheck) Category() string { return "DNS" }

func (c *DNSResolveCheck) Run() CheckResult {
	if c.Address == "" {
		return CheckResult{
			Name:       c.Name(),
			Status:     StatusFail,
			Message:    fmt.Sprintf("%s: no address configured", c.HostName),
			Suggestion: "Set 'address:' for this host in your lookout.yaml",
		}
	}

	if ip := net.ParseIP(c.Address); ip != nil {
		return CheckResult{
			Name:    c.Name(),
			Status:  StatusPass,
			Message: fmt.Sprintf("%s: %s is a literal address", c.HostName, c.Address),
		}
	}

	timeout := c.Timeout
	if timeout == 0 {
		timeout = DefaultLookupTimeout
	}

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	addrs, err := net.DefaultResolver.LookupHost(ctx, c.Address)
	if err != nil {
		return CheckResult{
			Name:       c.Name(),
			Status:     StatusFail,
			Message:    fmt.Sprintf("%s: %s does not resolve", c.HostName, c.Address),
			Suggestion: "Check the address spelling and your DNS settings",
		}
	}

	msg := fmt.Sprintf("%s: %s resolves to %s", c.HostName, c.Address, addrs[0])
	if extra := len(addrs) - 1; extra > 0 {
		msg += fmt.Sprintf(" (+%d more)", extra)
	}

	return CheckResult{
		Name:    c.Name(),
		Status:  StatusPass,
		Message: msg,
	}
}

// NewDNSChecks creates a resolution check for every configured host, in
// config order. Run them with RunAllParallel so one slow resolver does not
// serialize the rest.
func NewDNSChecks(cfg *config.Config) []Check {
	checks := make([]Check, 0, len(cfg.Hosts))
	for _, host := range cfg.Hosts {
		checks = append(checks, &DNSResolveCheck{
			HostName: host.Name,
			Address:  host.Address,
		})
	}
	return checks
}
