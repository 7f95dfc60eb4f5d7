package server

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds HTTP server settings, loaded from the environment.
type Config struct {
	Host string `env:"RVB_HOST" envDefault:"0.0.0.0"`
	Port int    `env:"RVB_PORT" envDefault:"8080"`

	ReadTimeout     time.Duration `env:"RVB_READ_TIMEOUT" envDefault:"10s"`
	WriteTimeout    time.Duration `env:"RVB_WRITE_TIMEOUT" envDefault:"30s"`
	RequestTimeout  time.Duration `env:"RVB_REQUEST_TIMEOUT" envDefault:"25s"`
	ShutdownTimeout time.Duration `env:"RVB_SHUTDOWN_TIMEOUT" envDefault:"15s"`

	// MaxSims caps the per-request Monte Carlo trial count so one call
	// cannot monopolize the process.
	MaxSims int `env:"RVB_MAX_SIMS" envDefault:"100000"`

	LogLevel string `env:"RVB_LOG_LEVEL" envDefault:"info"`
}

// LoadConfig reads the configuration from environment variables.
func LoadConfig() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse server config: %w", err)
	}
	return cfg, nil
}

// Addr returns the listen address.
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}
