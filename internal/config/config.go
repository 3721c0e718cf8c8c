// Package config loads copyscore configuration from config files,
// environment variables, and flag bindings via viper.
package config

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/dotcommander/copyscore/internal/types"
)

// Config represents the copyscore configuration.
type Config struct {
	Format       string   `mapstructure:"format"`
	Output       string   `mapstructure:"output"`
	Quiet        bool     `mapstructure:"quiet"`
	Verbose      bool     `mapstructure:"verbose"`
	ContentType  string   `mapstructure:"contentType"`
	Product      string   `mapstructure:"product"`
	Audience     string   `mapstructure:"audience"`
	MinScore     int      `mapstructure:"minScore"`
	Concurrency  int      `mapstructure:"concurrency"`
	Exclude      []string `mapstructure:"exclude"`
	LexiconFile  string   `mapstructure:"lexicon"`
	WeightsFile  string   `mapstructure:"weights"`
	ValuePerConv float64  `mapstructure:"valuePerConversion"`
	CTRCap       float64  `mapstructure:"ctrCap"`
}

// ConfigFiles are the file names probed in the working directory, in order.
var ConfigFiles = []string{".copyscorerc.json", ".copyscorerc.yaml", ".copyscorerc.yml"}

// LoadConfig resolves the effective configuration from defaults, an optional
// rc file, COPYSCORE_* environment variables, and any flags already bound to
// viper.
func LoadConfig() (*Config, error) {
	viper.SetDefault("format", "console")
	viper.SetDefault("quiet", false)
	viper.SetDefault("verbose", false)
	viper.SetDefault("minScore", 0)
	viper.SetDefault("concurrency", 10)
	viper.SetDefault("valuePerConversion", 0)
	viper.SetDefault("ctrCap", 0)

	viper.SetEnvPrefix("COPYSCORE")
	viper.AutomaticEnv()

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &config, nil
}

func validateConfig(config *Config) error {
	if config.Format != "console" && config.Format != "json" && config.Format != "markdown" {
		return fmt.Errorf("invalid format: %s. Must be 'console', 'json', or 'markdown'", config.Format)
	}
	if config.Concurrency < 1 {
		return fmt.Errorf("concurrency must be at least 1")
	}
	if config.MinScore < 0 || config.MinScore > 100 {
		return fmt.Errorf("minScore must be between 0 and 100")
	}
	if config.ContentType != "" {
		if _, err := types.ParseContentType(config.ContentType); err != nil {
			return err
		}
	}
	if config.CTRCap < 0 {
		return fmt.Errorf("ctrCap must not be negative")
	}
	return nil
}
