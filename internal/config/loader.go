package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/lookout-dev/lookout/internal/errors"
	"github.com/spf13/viper"
)

const (
	// ConfigFileName is the default config file name.
	ConfigFileName = "lookout.yaml"
	// GlobalConfigDir is the directory for global config.
	GlobalConfigDir = ".config/lookout"
)

// Load reads config from the specified path.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)

	if err := v.ReadInConfig(); err != nil {
		if os.IsNotExist(err) {
			return nil, errors.WrapWithCode(err, errors.ErrConfig,
				"Config file not found",
				"Run 'lookout init' to create a config file, or specify one with --config")
		}
		return nil, errors.WrapWithCode(err, errors.ErrConfig,
			"Failed to read config file",
			"Check the file exists and is valid YAML")
	}

	return parseConfig(v, path)
}

// Find locates the config file using the search order:
// 1. Explicit path (from --config flag)
// 2. lookout.yaml in current directory
// 3. lookout.yaml in parent directories (stops at git root or home)
// 4. ~/.config/lookout/lookout.yaml (global defaults)
//
// Returns the path to the config file, or empty string if not found.
func Find(explicit string) (string, error) {
	// 1. Explicit path takes precedence
	if explicit != "" {
		if _, err := os.Stat(explicit); err != nil {
			if os.IsNotExist(err) {
				return "", errors.WrapWithCode(err, errors.ErrConfig,
					"Specified config file not found: "+explicit,
					"Check the path is correct")
			}
			return "", errors.WrapWithCode(err, errors.ErrConfig,
				"Cannot access config file: "+explicit,
				"Check file permissions")
		}
		return explicit, nil
	}

	// 2. Current directory
	cwd, err := os.Getwd()
	if err != nil {
		return "", errors.WrapWithCode(err, errors.ErrConfig,
			"Cannot determine current directory",
			"Check directory permissions")
	}

	localConfig := filepath.Join(cwd, ConfigFileName)
	if _, err := os.Stat(localConfig); err == nil {
		return localConfig, nil
	}

	// 3. Walk up to parent directories
	home, _ := os.UserHomeDir()
	dir := cwd
	for {
		parent := filepath.Dir(dir)
		if parent == dir {
			// Reached filesystem root
			break
		}
		if home != "" && parent == home {
			// Don't go above home directory
			break
		}
		dir = parent

		configPath := filepath.Join(dir, ConfigFileName)
		if _, err := os.Stat(configPath); err == nil {
			return configPath, nil
		}

		// Stop at git root
		gitPath := filepath.Join(dir, ".git")
		if _, err := os.Stat(gitPath); err == nil {
			break
		}
	}

	// 4. Global config
	if home != "" {
		globalConfig := filepath.Join(home, GlobalConfigDir, ConfigFileName)
		if _, err := os.Stat(globalConfig); err == nil {
			return globalConfig, nil
		}
	}

	return "", nil
}

// LoadOrDefault loads config from the found path, or returns defaults if not found.
// This is useful for commands like 'lookout init' that should work without existing config.
func LoadOrDefault() (*Config, error) {
	path, err := Find("")
	if err != nil {
		return nil, err
	}

	if path == "" {
		return DefaultConfig(), nil
	}

	return Load(path)
}

// parseConfig converts viper config to our Config struct with defaults merged in.
func parseConfig(v *viper.Viper, path string) (*Config, error) {
	setDefaults(v)

	cfg := DefaultConfig()
	if err := v.Unmarshal(cfg); err != nil {
		return nil, errors.WrapWithCode(err, errors.ErrConfig,
			"Invalid config format",
			"Check the YAML syntax in "+path)
	}

	normalize(cfg)
	return cfg, nil
}

// setDefaults configures viper defaults that merge under explicit values.
func setDefaults(v *viper.Viper) {
	v.SetDefault("settings.refresh_interval", "5s")
	v.SetDefault("settings.theme", "default")
	v.SetDefault("settings.timezone", "UTC")
}

// normalize fills in per-host and per-service defaults after unmarshalling.
// Timeout resolution: an explicit service timeout wins, then the host
// timeout, then DefaultServiceTimeout. Protocols are lowercased and paths
// get a leading slash so URL building can concatenate them directly.
func normalize(cfg *Config) {
	if cfg.Settings.RefreshInterval == 0 {
		cfg.Settings.RefreshInterval = DefaultRefreshInterval
	}
	if cfg.Settings.Theme == "" {
		cfg.Settings.Theme = "default"
	}
	if cfg.Settings.Timezone == "" {
		cfg.Settings.Timezone = "UTC"
	}

	for hi := range cfg.Hosts {
		host := &cfg.Hosts[hi]
		for si := range host.Services {
			svc := &host.Services[si]

			svc.Protocol = Protocol(strings.ToLower(strings.TrimSpace(string(svc.Protocol))))

			if svc.Timeout == 0 {
				if host.Timeout != 0 {
					svc.Timeout = host.Timeout
				} else {
					svc.Timeout = DefaultServiceTimeout
				}
			}

			if svc.Path != "" && !strings.HasPrefix(svc.Path, "/") {
				svc.Path = "/" + svc.Path
			}
		}

		if host.Timeout == 0 {
			host.Timeout = DefaultHostTimeout
		}
	}
}
