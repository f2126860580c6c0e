package doctor

import (
	"os"
	"path/filepath"
	"testing"
)

const validYAML = `hosts:
  - name: web-01
    address: 10.0.0.1
    services:
      - name: http
        port: 80
        protocol: http
`

func writeConfig(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestConfigFileCheck(t *testing.T) {
	t.Run("config not found", func(t *testing.T) {
		check := &ConfigFileCheck{ConfigPath: filepath.Join(t.TempDir(), "nonexistent.yaml")}
		result := check.Run()

		if result.Status != StatusFail {
			t.Errorf("expected StatusFail, got %v", result.Status)
		}
	})

	t.Run("config found", func(t *testing.T) {
		check := &ConfigFileCheck{ConfigPath: writeConfig(t, "lookout.yaml", validYAML)}
		result := check.Run()

		if result.Status != StatusPass {
			t.Errorf("expected StatusPass, got %v: %s", result.Status, result.Message)
		}
	})

	t.Run("name and category", func(t *testing.T) {
		check := &ConfigFileCheck{}
		if check.Name() != "config_file" {
			t.Errorf("expected name 'config_file', got %s", check.Name())
		}
		if check.Category() != "CONFIG" {
			t.Errorf("expected category 'CONFIG', got %s", check.Category())
		}
	})
}

func TestConfigParseCheck(t *testing.T) {
	t.Run("valid yaml", func(t *testing.T) {
		check := &ConfigParseCheck{ConfigPath: writeConfig(t, "valid.yaml", validYAML)}
		result := check.Run()

		if result.Status != StatusPass {
			t.Errorf("expected StatusPass, got %v: %s", result.Status, result.Message)
		}
	})

	t.Run("invalid yaml", func(t *testing.T) {
		check := &ConfigParseCheck{
			ConfigPath: writeConfig(t, "invalid.yaml", `this is not valid yaml: [unclosed`),
		}
		result := check.Run()

		if result.Status != StatusFail {
			t.Errorf("expected StatusFail, got %v", result.Status)
		}
	})
}

func TestConfigValidCheck(t *testing.T) {
	t.Run("valid config", func(t *testing.T) {
		check := &ConfigValidCheck{ConfigPath: writeConfig(t, "valid.yaml", validYAML)}
		result := check.Run()

		if result.Status != StatusPass {
			t.Errorf("expected StatusPass, got %v: %s", result.Status, result.Message)
		}
	})

	t.Run("bad protocol fails validation", func(t *testing.T) {
		content := `hosts:
  - name: web-01
    address: 10.0.0.1
    services:
      - name: http
        port: 80
        protocol: carrier-pigeon
`
		check := &ConfigValidCheck{ConfigPath: writeConfig(t, "bad.yaml", content)}
		result := check.Run()

		if result.Status != StatusFail {
			t.Errorf("expected StatusFail, got %v: %s", result.Status, result.Message)
		}
		if result.Suggestion == "" {
			t.Error("expected a suggestion for an invalid config")
		}
	})

	t.Run("out of range port fails validation", func(t *testing.T) {
		content := `hosts:
  - name: web-01
    address: 10.0.0.1
    services:
      - name: http
        port: 99999
        protocol: tcp
`
		check := &ConfigValidCheck{ConfigPath: writeConfig(t, "port.yaml", content)}
		result := check.Run()

		if result.Status != StatusFail {
			t.Errorf("expected StatusFail, got %v: %s", result.Status, result.Message)
		}
	})
}

func TestConfigHostsCheck(t *testing.T) {
	t.Run("hosts configured", func(t *testing.T) {
		check := &ConfigHostsCheck{ConfigPath: writeConfig(t, "hosts.yaml", validYAML)}
		result := check.Run()

		if result.Status != StatusPass {
			t.Errorf("expected StatusPass, got %v: %s", result.Status, result.Message)
		}
		if result.Message == "" {
			t.Error("expected message with host count")
		}
	})

	t.Run("no hosts", func(t *testing.T) {
		check := &ConfigHostsCheck{
			ConfigPath: writeConfig(t, "nohosts.yaml", "settings:\n  theme: dark\n"),
		}
		result := check.Run()

		if result.Status != StatusFail {
			t.Errorf("expected StatusFail, got %v", result.Status)
		}
	})
}

func TestNewConfigChecks(t *testing.T) {
	checks := NewConfigChecks("")

	if len(checks) != 4 {
		t.Errorf("expected 4 config checks, got %d", len(checks))
	}

	for _, check := range checks {
		if check.Category() != "CONFIG" {
			t.Errorf("expected CONFIG category, got %s", check.Category())
		}
	}
}
