// Package config defines the data structures related to configuration and
// includes functions for loading and validating the config.
package config

import (
	"fmt"
	"os"

	"github.com/iwvelando/fx-returns/pkg/constants"
	"github.com/iwvelando/fx-returns/pkg/validation"
	"github.com/spf13/viper"
)

// Configuration holds all configuration for fx-returns.
type Configuration struct {
	Search  SearchConfig  `yaml:"search,omitempty"`
	Logging LoggingConfig `yaml:"logging,omitempty"`
	Output  OutputConfig  `yaml:"output,omitempty"`
}

// SearchConfig holds the search parameters and the expected tensor shape.
type SearchConfig struct {
	StartCurrency  int    `yaml:"startCurrency,omitempty"`
	StartPeriod    int    `yaml:"startPeriod,omitempty"`
	TargetCurrency int    `yaml:"targetCurrency,omitempty"`
	Periods        int    `yaml:"periods,omitempty"`
	Currencies     int    `yaml:"currencies,omitempty"`
	DataFolder     string `yaml:"dataFolder,omitempty"`
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

// LoadConfiguration takes a file path as input and loads the YAML-formatted
// configuration there, applying defaults and environment overrides. A missing
// file is not an error: defaults and the environment still apply, so the tool
// runs without any config file present.
func LoadConfiguration(configPath string) (*Configuration, error) {
	v := viper.New()

	v.SetDefault("search.startCurrency", 0)
	v.SetDefault("search.startPeriod", 0)
	v.SetDefault("search.targetCurrency", 0)
	v.SetDefault("search.periods", constants.DefaultPeriods)
	v.SetDefault("search.currencies", constants.DefaultCurrencies)
	v.SetDefault("search.dataFolder", constants.DefaultDataFolder)

	_ = v.BindEnv("search.startCurrency", "FROM_CURRENCY")
	_ = v.BindEnv("search.startPeriod", "START_MONTH")
	_ = v.BindEnv("search.targetCurrency", "TO_TRADE_CURRENCY")
	_ = v.BindEnv("search.dataFolder", "DATA_FOLDER")
	v.AutomaticEnv()

	if _, err := os.Stat(configPath); err == nil {
		v.SetConfigFile(configPath)
		v.SetConfigType("yml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("error reading config file, %s", err)
		}
	}

	var configuration Configuration
	err := v.Unmarshal(&configuration)
	if err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %s", err)
	}

	return &configuration, nil
}

// ValidateConfiguration performs general validation of the configuration and returns warnings
func (c *Configuration) ValidateConfiguration() []string {
	return validation.ValidateSearch(validation.SearchInfo{
		StartCurrency:  c.Search.StartCurrency,
		StartPeriod:    c.Search.StartPeriod,
		TargetCurrency: c.Search.TargetCurrency,
		Periods:        c.Search.Periods,
		Currencies:     c.Search.Currencies,
	})
}
