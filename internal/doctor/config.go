package doctor

import (
	"fmt"
	"path/filepath"

	"github.com/lookout-dev/lookout/internal/config"
	"github.com/lookout-dev/lookout/internal/util"
)

// ConfigFileCheck verifies that a config file exists.
type ConfigFileCheck struct {
	ConfigPath string // Explicit path, or empty to search
}

func (c *ConfigFileCheck) Name() string     { return "config_file" }
func (c *ConfigFileCheck) Category() string { return "CONFIG" }

func (c *ConfigFileCheck) Run() CheckResult {
	path, err := config.Find(c.ConfigPath)
	if err != nil {
		return CheckResult{
			Name:       c.Name(),
			Status:     StatusFail,
			Message:    fmt.Sprintf("Error finding config: %v", err),
			Suggestion: "Check file permissions or run 'lookout init' to create a config",
		}
	}

	if path == "" {
		return CheckResult{
			Name:       c.Name(),
			Status:     StatusFail,
			Message:    "No config file found",
			Suggestion: "Run 'lookout init' to create a lookout.yaml config file",
		}
	}

	return CheckResult{
		Name:    c.Name(),
		Status:  StatusPass,
		Message: fmt.Sprintf("Config file: %s", filepath.Base(path)),
	}
}

// ConfigParseCheck verifies that the config file parses as YAML.
type ConfigParseCheck struct {
	ConfigPath string
}

func (c *ConfigParseCheck) Name() string     { return "config_parse" }
func (c *ConfigParseCheck) Category() string { return "CONFIG" }

func (c *ConfigParseCheck) Run() CheckResult {
	path, err := config.Find(c.ConfigPath)
	if err != nil || path == "" {
		// ConfigFileCheck reports the missing file
		return CheckResult{
			Name:    c.Name(),
			Status:  StatusFail,
			Message: "Cannot parse: no config file",
		}
	}

	if _, err := config.Load(path); err != nil {
		return CheckResult{
			Name:       c.Name(),
			Status:     StatusFail,
			Message:    fmt.Sprintf("Failed to load config: %v", err),
			Suggestion: "Check the YAML syntax in " + filepath.Base(path),
		}
	}

	return CheckResult{
		Name:    c.Name(),
		Status:  StatusPass,
		Message: "Config parses",
	}
}

// ConfigValidCheck runs full validation over the parsed config.
type ConfigValidCheck struct {
	ConfigPath string
}

func (c *ConfigValidCheck) Name() string     { return "config_valid" }
func (c *ConfigValidCheck) Category() string { return "CONFIG" }

func (c *ConfigValidCheck) Run() CheckResult {
	path, err := config.Find(c.ConfigPath)
	if err != nil || path == "" {
		return CheckResult{
			Name:    c.Name(),
			Status:  StatusFail,
			Message: "Cannot validate: no config file",
		}
	}

	cfg, err := config.Load(path)
	if err != nil {
		// ConfigParseCheck reports the parse error
		return CheckResult{
			Name:    c.Name(),
			Status:  StatusFail,
			Message: "Cannot validate: config load error",
		}
	}

	if err := config.Validate(cfg); err != nil {
		return CheckResult{
			Name:       c.Name(),
			Status:     StatusFail,
			Message:    fmt.Sprintf("Invalid config: %v", err),
			Suggestion: "Fix the listed problems in " + filepath.Base(path),
		}
	}

	return CheckResult{
		Name:    c.Name(),
		Status:  StatusPass,
		Message: "Config valid",
	}
}

// ConfigHostsCheck verifies hosts and services are configured.
type ConfigHostsCheck struct {
	ConfigPath string
}

func (c *ConfigHostsCheck) Name() string     { return "config_hosts" }
func (c *ConfigHostsCheck) Category() string { return "CONFIG" }

func (c *ConfigHostsCheck) Run() CheckResult {
	path, err := config.Find(c.ConfigPath)
	if err != nil || path == "" {
		return CheckResult{
			Name:    c.Name(),
			Status:  StatusFail,
			Message: "Cannot check hosts: no config file",
		}
	}

	cfg, err := config.Load(path)
	if err != nil {
		return CheckResult{
			Name:    c.Name(),
			Status:  StatusFail,
			Message: "Cannot check hosts: config load error",
		}
	}

	numHosts := len(cfg.Hosts)
	if numHosts == 0 {
		return CheckResult{
			Name:       c.Name(),
			Status:     StatusFail,
			Message:    "No hosts configured",
			Suggestion: "Add at least one host under 'hosts:' in your lookout.yaml",
		}
	}

	numServices := cfg.TotalServices()
	return CheckResult{
		Name:   c.Name(),
		Status: StatusPass,
		Message: fmt.Sprintf("%d %s, %d %s configured",
			numHosts, util.Pluralize(numHosts, "host", "hosts"),
			numServices, util.Pluralize(numServices, "service", "services")),
	}
}

// NewConfigChecks creates all config-related checks.
func NewConfigChecks(configPath string) []Check {
	return []Check{
		&ConfigFileCheck{ConfigPath: configPath},
		&ConfigParseCheck{ConfigPath: configPath},
		&ConfigValidCheck{ConfigPath: configPath},
		&ConfigHostsCheck{ConfigPath: configPath},
	}
}
