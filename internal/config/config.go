// Package config loads deferio settings from the environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds settings shared by all commands. CLI flags override it.
type Config struct {
	LogLevel string `env:"DEFERIO_LOG_LEVEL" envDefault:"info"`
	Debug    bool   `env:"DEFERIO_DEBUG"`
	JSON     bool   `env:"DEFERIO_JSON"`
	Prompt   string `env:"DEFERIO_PROMPT" envDefault:"> "`
	Metrics  bool   `env:"DEFERIO_METRICS"`
	Quit     bool   `env:"DEFERIO_QUIT_WORDS" envDefault:"true"`
}

// Load reads the optional .env files (default ".env") and then parses the environment.
// Variables already set in the process environment take precedence over .env values.
func Load(dotenv ...string) (Config, error) {
	if len(dotenv) == 0 {
		dotenv = []string{".env"}
	}
	for _, path := range dotenv {
		if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", path, err)
		}
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
