package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all configuration for the ledger CLI
type Config struct {
	Log      LogConfig      `mapstructure:"log"`
	Report   ReportConfig   `mapstructure:"report"`
	Scenario ScenarioConfig `mapstructure:"scenario"`
}

// LogConfig holds logger configuration
type LogConfig struct {
	Level       string `mapstructure:"level"`
	Development bool   `mapstructure:"development"`
}

// ReportConfig holds output configuration
type ReportConfig struct {
	Format string `mapstructure:"format"`
	Pretty bool   `mapstructure:"pretty"`
	Output string `mapstructure:"output"`
}

// ScenarioConfig points at the CSV files of a scenario. Both empty means the
// built-in reference scenario.
type ScenarioConfig struct {
	PartiesFile    string `mapstructure:"parties_file"`
	OperationsFile string `mapstructure:"operations_file"`
}

// Load reads configuration from defaults, an optional YAML file and LEDGER_*
// environment variables, in increasing order of precedence
func Load(configPath string) (*Config, error) {
	v := viper.New()

	v.SetDefault("log.level", "info")
	v.SetDefault("log.development", false)
	v.SetDefault("report.format", "text")
	v.SetDefault("report.pretty", true)
	v.SetDefault("report.output", "")
	v.SetDefault("scenario.parties_file", "")
	v.SetDefault("scenario.operations_file", "")

	v.SetEnvPrefix("LEDGER")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configPath != "" {
		v.SetConfigFile(configPath)
		v.SetConfigType("yaml")

		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks that the scenario files are given together
func (c *Config) Validate() error {
	if (c.Scenario.PartiesFile == "") != (c.Scenario.OperationsFile == "") {
		return errors.New("scenario needs both a parties file and an operations file")
	}
	return nil
}

// UseReferenceScenario reports whether no scenario files were configured
func (c *Config) UseReferenceScenario() bool {
	return c.Scenario.PartiesFile == "" && c.Scenario.OperationsFile == ""
}
