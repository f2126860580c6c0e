package config

import (
	"fmt"
	"os"
	"time"

	"github.com/lookout-dev/lookout/internal/errors"
	"gopkg.in/yaml.v3"
)

// configHeader is prepended to generated config files.
const configHeader = `# lookout configuration
# Run 'lookout' to start the dashboard, or 'lookout check' for a one-shot round.
# Run 'lookout doctor' to diagnose problems with this file.

`

// yamlDuration marshals as a duration string ("5s") instead of the raw
// nanosecond count yaml.v3 would otherwise emit.
type yamlDuration time.Duration

func (d yamlDuration) MarshalYAML() (interface{}, error) {
	return time.Duration(d).String(), nil
}

type savedConfig struct {
	Hosts    []savedHost   `yaml:"hosts"`
	Settings savedSettings `yaml:"settings"`
}

type savedHost struct {
	Name        string         `yaml:"name"`
	Address     string         `yaml:"address"`
	Description string         `yaml:"description,omitempty"`
	Timeout     *yamlDuration  `yaml:"timeout,omitempty"`
	Services    []savedService `yaml:"services"`
}

type savedService struct {
	Name        string        `yaml:"name"`
	Port        int           `yaml:"port"`
	Protocol    string        `yaml:"protocol"`
	Path        string        `yaml:"path,omitempty"`
	Description string        `yaml:"description,omitempty"`
	Timeout     *yamlDuration `yaml:"timeout,omitempty"`
}

type savedSettings struct {
	RefreshInterval yamlDuration `yaml:"refresh_interval"`
	Theme           string       `yaml:"theme"`
	Timezone        string       `yaml:"timezone"`
	LogFile         string       `yaml:"log_file,omitempty"`
}

// Save writes the config to path as YAML with a header comment. Durations
// come out as strings ("5s") so the file stays hand-editable.
func Save(cfg *Config, path string) error {
	data, err := yaml.Marshal(toSaved(cfg))
	if err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			"Failed to generate config",
			"This shouldn't happen - please report this bug")
	}

	content := configHeader + string(data)

	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			fmt.Sprintf("Failed to write config file: %s", path),
			"Check directory permissions")
	}
	return nil
}

func toSaved(cfg *Config) savedConfig {
	out := savedConfig{
		Settings: savedSettings{
			RefreshInterval: yamlDuration(cfg.Settings.RefreshInterval),
			Theme:           cfg.Settings.Theme,
			Timezone:        cfg.Settings.Timezone,
			LogFile:         cfg.Settings.LogFile,
		},
	}

	for _, h := range cfg.Hosts {
		sh := savedHost{
			Name:        h.Name,
			Address:     h.Address,
			Description: h.Description,
			Timeout:     optionalDuration(h.Timeout),
		}
		for _, s := range h.Services {
			sh.Services = append(sh.Services, savedService{
				Name:        s.Name,
				Port:        s.Port,
				Protocol:    string(s.Protocol),
				Path:        s.Path,
				Description: s.Description,
				Timeout:     optionalDuration(s.Timeout),
			})
		}
		out.Hosts = append(out.Hosts, sh)
	}
	return out
}

func optionalDuration(d time.Duration) *yamlDuration {
	if d == 0 {
		return nil
	}
	yd := yamlDuration(d)
	return &yd
}

// Sample returns a starter config with one example host, used by
// 'lookout init'. Defaults are left implicit so the generated file stays
// short.
func Sample(hostName, address string) *Config {
	return &Config{
		Hosts: []HostConfig{
			{
				Name:        hostName,
				Address:     address,
				Description: "Example host - edit me",
				Services: []ServiceConfig{
					{Name: "http", Port: 80, Protocol: ProtocolHTTP, Path: "/"},
					{Name: "ssh", Port: 22, Protocol: ProtocolTCP},
				},
			},
		},
		Settings: Settings{
			RefreshInterval: DefaultRefreshInterval,
			Theme:           "default",
			Timezone:        "UTC",
		},
	}
}
