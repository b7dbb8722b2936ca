// Package config loads server configuration from the environment.
package config

import (
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/hearthforge/sheet-api/internal/errors"
)

// Config holds everything the server needs from the environment.
type Config struct {
	Port int `env:"PORT" envDefault:"8080"`

	RedisAddr     string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPassword string `env:"REDIS_PASSWORD"`
	RedisDB       int    `env:"REDIS_DB" envDefault:"0"`

	JWTSecret string        `env:"JWT_SECRET"`
	TokenTTL  time.Duration `env:"TOKEN_TTL" envDefault:"24h"`

	// Narrative generation is optional: leave the key empty to run
	// without the backstory and name features.
	NarrativeAPIKey string `env:"NARRATIVE_API_KEY"`
	NarrativeModel  string `env:"NARRATIVE_MODEL" envDefault:"gpt-4o-mini"`
	NarrativeURL    string `env:"NARRATIVE_URL"`
}

// Validate checks settings that have no usable default.
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Port <= 0 || c.Port > 65535 {
		vb.InvalidField("PORT", "must be a valid port number")
	}
	if c.JWTSecret == "" {
		vb.RequiredField("JWT_SECRET")
	}
	if c.TokenTTL <= 0 {
		vb.InvalidField("TOKEN_TTL", "must be positive")
	}

	return vb.Build()
}

// Load reads a .env file when present, then parses the environment.
func Load() (*Config, error) {
	// A missing .env is fine; the environment may be set by the shell
	// or the deployment.
	_ = godotenv.Load()

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, errors.Wrapf(err, "failed to parse environment")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}
