package cli

import (
	"fmt"

	"github.com/caarlos0/env/v11"

	"github.com/dmitrymomot/ulid/pkg/logger"
)

// Config is the environment configuration of the command.
type Config struct {
	Log       logger.Config `envPrefix:"ULID_"`
	Sentry    logger.SentryConfig
	Monotonic bool `env:"ULID_MONOTONIC" envDefault:"true"`
}

// LoadConfig reads Config from the process environment.
func LoadConfig() (Config, error) {
	return parseConfig(env.Options{})
}

func parseConfig(opts env.Options) (Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, opts); err != nil {
		return Config{}, fmt.Errorf("cli: load config: %w", err)
	}
	return cfg, nil
}
