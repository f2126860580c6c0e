package doctor

import (
	"fmt"

	"github.com/lookout-dev/lookout/internal/config"
	"github.com/lookout-dev/lookout/internal/util"
)

// TimeoutSanityCheck warns when service timeouts meet or exceed the refresh
// interval. Rounds never overlap, so a probe that runs longer than the
// interval delays every round after it.
type TimeoutSanityCheck struct {
	Config *config.Config
}

func (c *TimeoutSanityCheck) Name() string     { return "timeout_sanity" }
func (c *TimeoutSanityCheck) Category() string { return "SETTINGS" }

func (c *TimeoutSanityCheck) Run() CheckResult {
	if c.Config == nil {
		return CheckResult{
			Name:    c.Name(),
			Status:  StatusPass,
			Message: "No config to check",
		}
	}

	interval := c.Config.Settings.RefreshInterval
	if interval <= 0 {
		interval = config.DefaultRefreshInterval
	}

	slow := 0
	for _, host := range c.Config.Hosts {
		for _, svc := range host.Services {
			timeout := svc.Timeout
			if timeout == 0 {
				timeout = config.DefaultServiceTimeout
			}
			if timeout >= interval {
				slow++
			}
		}
	}

	if slow > 0 {
		return CheckResult{
			Name:   c.Name(),
			Status: StatusWarn,
			Message: fmt.Sprintf("%d %s %s a timeout at or above the %s refresh interval",
				slow, util.Pluralize(slow, "service", "services"),
				util.Pluralize(slow, "has", "have"), interval),
			Suggestion: "Slow probes hold up the next round. Lower those timeouts or raise settings.refresh_interval",
		}
	}

	if c.Config.TotalServices() == 0 {
		return CheckResult{
			Name:    c.Name(),
			Status:  StatusPass,
			Message: "No service timeouts to check",
		}
	}

	return CheckResult{
		Name:    c.Name(),
		Status:  StatusPass,
		Message: fmt.Sprintf("Service timeouts fit inside the %s refresh interval", interval),
	}
}

// NewSettingsChecks creates the settings sanity checks for a loaded config.
// Pass nil when the config failed to load; the checks degrade to no-ops so
// the CONFIG category stays the single reporter of load errors.
func NewSettingsChecks(cfg *config.Config) []Check {
	return []Check{
		&TimeoutSanityCheck{Config: cfg},
	}
}
