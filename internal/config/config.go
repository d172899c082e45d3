// Package config loads CLI configuration from the environment.
package config

import "github.com/spf13/viper"

// Config holds the settings for the corral CLI. The repository itself
// takes table names explicitly; only the CLI resolves them from the
// environment.
type Config struct {
	CustomerTable string
	CommonTable   string
	LogLevel      string
}

// Load reads CORRAL_* environment variables, falling back to the
// conventional table names.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("corral")
	v.AutomaticEnv()

	v.SetDefault("customer_table", "customer")
	v.SetDefault("common_table", "common")
	v.SetDefault("log_level", "info")

	return &Config{
		CustomerTable: v.GetString("customer_table"),
		CommonTable:   v.GetString("common_table"),
		LogLevel:      v.GetString("log_level"),
	}, nil
}
