package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	Port         string `env:"PORT" envDefault:"8080"`
	GameDuration int    `env:"GAME_DURATION" envDefault:"300"` // seconds
	FinishDelay  int    `env:"FINISH_DELAY" envDefault:"2"`    // seconds
}

// Load reads configuration from environment variables.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
