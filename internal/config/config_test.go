package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}
	return path
}

func TestLoadConfiguration(t *testing.T) {
	path := writeConfigFile(t, `
logging:
  level: debug
  format: console
output:
  format: csv
defaults:
  presentValue: 10000
  futureValue: 0
  timing: 1
`)

	conf, err := LoadConfiguration(path)
	if err != nil {
		t.Fatalf("LoadConfiguration() unexpected error: %v", err)
	}

	if conf.Logging.Level != "debug" {
		t.Errorf("Logging.Level = %q, expected debug", conf.Logging.Level)
	}
	if conf.Logging.Format != "console" {
		t.Errorf("Logging.Format = %q, expected console", conf.Logging.Format)
	}
	if conf.Output.Format != "csv" {
		t.Errorf("Output.Format = %q, expected csv", conf.Output.Format)
	}
	if conf.Defaults.PresentValue != 10000 {
		t.Errorf("Defaults.PresentValue = %v, expected 10000", conf.Defaults.PresentValue)
	}
	if conf.Defaults.Timing != 1 {
		t.Errorf("Defaults.Timing = %v, expected 1", conf.Defaults.Timing)
	}
}

func TestLoadConfigurationMissingFile(t *testing.T) {
	_, err := LoadConfiguration(filepath.Join(t.TempDir(), "does-not-exist.yaml"))
	if err == nil {
		t.Error("LoadConfiguration() = nil error for missing file, expected error")
	}
}

func TestValidateConfiguration(t *testing.T) {
	tests := []struct {
		name             string
		conf             Configuration
		expectedWarnings int
		expectedFormat   string
		expectedTiming   int
	}{
		{
			name:             "empty configuration is valid",
			conf:             Configuration{},
			expectedWarnings: 0,
			expectedTiming:   0,
		},
		{
			name: "valid values pass through",
			conf: Configuration{
				Output:   OutputConfig{Format: "csv"},
				Defaults: DefaultsConfig{Timing: 1},
			},
			expectedWarnings: 0,
			expectedFormat:   "csv",
			expectedTiming:   1,
		},
		{
			name: "invalid output format falls back to pretty",
			conf: Configuration{
				Output: OutputConfig{Format: "xml"},
			},
			expectedWarnings: 1,
			expectedFormat:   "pretty",
		},
		{
			name: "invalid timing falls back to ordinary",
			conf: Configuration{
				Defaults: DefaultsConfig{Timing: 3},
			},
			expectedWarnings: 1,
			expectedTiming:   0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			warnings := tt.conf.ValidateConfiguration()
			if len(warnings) != tt.expectedWarnings {
				t.Errorf("got %d warnings (%v), expected %d", len(warnings), warnings, tt.expectedWarnings)
			}
			if tt.expectedFormat != "" && tt.conf.Output.Format != tt.expectedFormat {
				t.Errorf("Output.Format = %q, expected %q", tt.conf.Output.Format, tt.expectedFormat)
			}
			if tt.conf.Defaults.Timing != tt.expectedTiming {
				t.Errorf("Defaults.Timing = %d, expected %d", tt.conf.Defaults.Timing, tt.expectedTiming)
			}
		})
	}
}
