// Package config reads generator settings from the environment.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v6"
)

// Config holds everything the generator tool needs. MongoURI empty
// means archiving is disabled.
type Config struct {
	MongoURI        string `env:"ADF_MONGO_URI"`
	MongoDatabase   string `env:"ADF_MONGO_DATABASE" envDefault:"adf"`
	MongoCollection string `env:"ADF_MONGO_COLLECTION" envDefault:"leads"`
	LogLevel        string `env:"ADF_LOG_LEVEL" envDefault:"info"`
}

// Build parses the configuration from environment variables.
func Build() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse environment variables - %w", err)
	}
	return cfg, nil
}
