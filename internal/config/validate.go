package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/lookout-dev/lookout/internal/errors"
	"go.uber.org/multierr"
)

// validThemes are the palettes the dashboard knows how to render.
var validThemes = map[string]bool{"default": true, "dark": true, "light": true}

// Validate checks the config for errors. Every problem is collected so the
// operator can fix the whole file in one pass; the combined error is wrapped
// in a structured CONFIG error.
func Validate(cfg *Config) error {
	var problems error

	problems = multierr.Append(problems, validateSettings(cfg.Settings))

	seenHosts := make(map[string]bool)
	seenKeys := make(map[string]bool)

	for _, host := range cfg.Hosts {
		if err := validateHost(host); err != nil {
			problems = multierr.Append(problems, err)
		}

		if host.Name != "" {
			if seenHosts[host.Name] {
				problems = multierr.Append(problems, fmt.Errorf(
					"host '%s' is defined twice - give each host a unique name", host.Name))
			}
			seenHosts[host.Name] = true
		}

		for _, svc := range host.Services {
			if err := validateService(host.Name, svc); err != nil {
				problems = multierr.Append(problems, err)
			}

			// (host, service, port) is the status key; a duplicate would
			// silently overwrite its twin's results.
			key := fmt.Sprintf("%s:%s:%d", host.Name, svc.Name, svc.Port)
			if seenKeys[key] {
				problems = multierr.Append(problems, fmt.Errorf(
					"service '%s' on host '%s' port %d appears twice - results would overwrite each other", svc.Name, host.Name, svc.Port))
			}
			seenKeys[key] = true
		}
	}

	if problems != nil {
		return errors.WrapWithCode(problems, errors.ErrConfig,
			"Configuration has problems",
			"Fix the entries above in "+ConfigFileName)
	}
	return nil
}

// validateSettings checks the settings section.
func validateSettings(s Settings) error {
	var problems error

	if s.RefreshInterval < MinRefreshInterval {
		problems = multierr.Append(problems, fmt.Errorf(
			"settings.refresh_interval %v is too short - use a duration of at least 500ms, like '5s'", s.RefreshInterval))
	}

	if !validThemes[s.Theme] {
		problems = multierr.Append(problems, fmt.Errorf(
			"settings.theme '%s' isn't valid - use 'default', 'dark', or 'light'", s.Theme))
	}

	if _, err := time.LoadLocation(s.Timezone); err != nil {
		problems = multierr.Append(problems, fmt.Errorf(
			"settings.timezone '%s' isn't a known timezone - use an IANA name like 'UTC' or 'America/New_York'", s.Timezone))
	}

	return problems
}

// validateHost checks a single host entry.
func validateHost(host HostConfig) error {
	var problems error

	if strings.TrimSpace(host.Name) == "" {
		problems = multierr.Append(problems, fmt.Errorf(
			"a host is missing its 'name' - every host needs one"))
	}

	if strings.TrimSpace(host.Address) == "" {
		problems = multierr.Append(problems, fmt.Errorf(
			"host '%s' needs an 'address' - that's what probes connect to", host.Name))
	}

	if host.Timeout < 0 {
		problems = multierr.Append(problems, fmt.Errorf(
			"host '%s' has a negative timeout - that doesn't make sense", host.Name))
	}

	// A bare number like `timeout: 5` parses as 5 nanoseconds, which would
	// make every probe fail instantly.
	if host.Timeout > 0 && host.Timeout < time.Millisecond {
		problems = multierr.Append(problems, fmt.Errorf(
			"host '%s' has timeout %v - write a duration with a unit, like '5s'", host.Name, host.Timeout))
	}

	return problems
}

// validateService checks a single service entry.
func validateService(hostName string, svc ServiceConfig) error {
	var problems error

	if strings.TrimSpace(svc.Name) == "" {
		problems = multierr.Append(problems, fmt.Errorf(
			"a service on host '%s' is missing its 'name'", hostName))
	}

	if svc.Port < 1 || svc.Port > 65535 {
		problems = multierr.Append(problems, fmt.Errorf(
			"service '%s' on host '%s' has port %d - ports run from 1 to 65535", svc.Name, hostName, svc.Port))
	}

	if !svc.Protocol.Valid() {
		problems = multierr.Append(problems, fmt.Errorf(
			"service '%s' on host '%s' has protocol '%s' - use tcp, udp, http, or https", svc.Name, hostName, svc.Protocol))
	}

	if svc.Path != "" && !svc.Protocol.IsHTTP() {
		problems = multierr.Append(problems, fmt.Errorf(
			"service '%s' on host '%s' sets a path but '%s' probes don't use one - paths only apply to http and https", svc.Name, hostName, svc.Protocol))
	}

	if svc.Timeout < 0 {
		problems = multierr.Append(problems, fmt.Errorf(
			"service '%s' on host '%s' has a negative timeout - that doesn't make sense", svc.Name, hostName))
	}

	if svc.Timeout > 0 && svc.Timeout < time.Millisecond {
		problems = multierr.Append(problems, fmt.Errorf(
			"service '%s' on host '%s' has timeout %v - write a duration with a unit, like '5s'", svc.Name, hostName, svc.Timeout))
	}

	return problems
}
