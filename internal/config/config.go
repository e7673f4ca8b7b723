// Package config defines the data structures related to configuration and
// includes functions for loading and parsing the config.
package config

import (
	"fmt"

	"github.com/finsheet/annuity-core/pkg/constants"
	"github.com/finsheet/annuity-core/pkg/validation"
	"github.com/spf13/viper"
)

// Configuration holds all configuration for annuity-core.
type Configuration struct {
	Logging  LoggingConfig  `yaml:"logging,omitempty"`
	Output   OutputConfig   `yaml:"output,omitempty"`
	Defaults DefaultsConfig `yaml:"defaults,omitempty"`
}

// LoggingConfig holds logging configuration options
type LoggingConfig struct {
	Level      string `yaml:"level,omitempty"`      // debug, info, warn, error
	Format     string `yaml:"format,omitempty"`     // json, console
	OutputFile string `yaml:"outputFile,omitempty"` // optional file output
}

// OutputConfig holds output format configuration options
type OutputConfig struct {
	Format string `yaml:"format,omitempty"` // pretty, csv
}

// DefaultsConfig holds the default cash-flow parameters applied when the
// caller does not supply them.
type DefaultsConfig struct {
	PresentValue float64 `yaml:"presentValue,omitempty"`
	FutureValue  float64 `yaml:"futureValue,omitempty"`
	Timing       int     `yaml:"timing,omitempty"` // 0 = ordinary, 1 = due
}

// LoadConfiguration takes a file path as input and loads the YAML-formatted
// configuration there.
func LoadConfiguration(configPath string) (*Configuration, error) {
	viper.SetConfigFile(configPath)
	viper.AutomaticEnv()

	viper.SetConfigType("yml")

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file, %s", err)
	}

	var configuration Configuration
	err := viper.Unmarshal(&configuration)
	if err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %s", err)
	}

	return &configuration, nil
}

// ValidateConfiguration checks the loaded configuration for invalid values
// and returns a list of warnings. Warnings do not prevent execution; the
// offending values fall back to defaults.
func (conf *Configuration) ValidateConfiguration() []string {
	var warnings []string

	if conf.Output.Format != "" {
		if err := validation.ValidateOutputFormat(conf.Output.Format); err != nil {
			warnings = append(warnings, err.Error())
			conf.Output.Format = constants.OutputFormatPretty
		}
	}

	if err := validation.ValidateTiming(conf.Defaults.Timing); err != nil {
		warnings = append(warnings, err.Error())
		conf.Defaults.Timing = constants.TimingOrdinary
	}

	return warnings
}
