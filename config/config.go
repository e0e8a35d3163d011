// Package config loads server configuration from the environment. A
// .env file in the working directory is honored when present; real
// environment variables win over it.
package config

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App struct {
		Port int    `envconfig:"PORT" default:"8080"`
		DB   string `envconfig:"DB_PATH" default:"erp.db"`
	}

	CORS struct {
		AllowedOrigins []string `envconfig:"ALLOWED_ORIGINS" default:"http://localhost:5173,http://localhost:8080"`
	}
}

func Load() (*Config, error) {
	// Missing .env is fine; the defaults and environment cover it.
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}
	return &cfg, nil
}
