// Package config holds the environment configuration for the backend.
package config

import "github.com/caarlos0/env/v8"

type Config struct {
	APIURL    string `env:"API_URL" envDefault:"http://localhost:8080"` // Base URL the API is reachable under, used for link generation
	DBPath    string `env:"DB_PATH" envDefault:"data/centavo.db"`       // Path to the sqlite database file
	Port      int    `env:"PORT" envDefault:"8080"`                     // Port the HTTP server listens on
	GinMode   string `env:"GIN_MODE" envDefault:"release"`              // Mode gin runs in, one of release and debug
	LogFormat string `env:"LOG_FORMAT"`                                 // Log format, "human" for console output, JSON otherwise
}

// Load parses the configuration from the environment.
func Load() (Config, error) {
	cfg := Config{}
	err := env.Parse(&cfg)
	return cfg, err
}
