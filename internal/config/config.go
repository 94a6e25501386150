// Package config provides application configuration loading and validation.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds the complete application configuration.
type Config struct {
	Server ServerConfig
	Rates  []RateEntry `mapstructure:"rates"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port         int  `mapstructure:"port"`
	ServeSwagger bool `mapstructure:"serve_swagger"`
}

// RateEntry is a single directed conversion rate in the config file.
// An entry with a missing or non-positive rate is skipped at table
// construction, leaving the pair unknown at lookup time.
type RateEntry struct {
	Base  string  `mapstructure:"base"`
	Quote string  `mapstructure:"quote"`
	Rate  float64 `mapstructure:"rate"`
}

// LoadConfig reads configuration from config files, environment variables, and defaults.
func LoadConfig() (*Config, error) {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		fmt.Printf("No .env file found or error loading it: %v\n", err)
	}

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	// Config search paths
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	viper.AddConfigPath("./internal/config")

	viper.SetEnvPrefix("CONVSVC")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	// default values
	viper.SetDefault("server.port", 8080)
	viper.SetDefault("server.serve_swagger", true)

	if err := viper.ReadInConfig(); err != nil {
		// It's okay if no config file, we have defaults and env
		fmt.Printf("Config file not found: %v\n", err)
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

// Validate checks that all required configuration fields are set and valid.
func (c *Config) Validate() error {
	var errs []error
	if c.Server.Port <= 0 {
		errs = append(errs, fmt.Errorf("server.port must be positive, got %d", c.Server.Port))
	}

	for i, r := range c.Rates {
		if r.Base == "" || r.Quote == "" {
			errs = append(errs, fmt.Errorf("rates[%d]: base and quote are required", i))
		}
	}

	return errors.Join(errs...)
}
