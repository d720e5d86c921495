package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// ServerConfig holds settings for the SSH and web servers.
type ServerConfig struct {
	SSHAddr     string        `env:"SLIDE2048_SSH_ADDR" envDefault:":23234"`
	HTTPAddr    string        `env:"SLIDE2048_HTTP_ADDR" envDefault:":8048"`
	DBPath      string        `env:"SLIDE2048_DB" envDefault:"~/.slide2048/scores.db"`
	HostKeyPath string        `env:"SLIDE2048_HOST_KEY"`
	IdleTimeout time.Duration `env:"SLIDE2048_IDLE_TIMEOUT" envDefault:"30m"`
	LogLevel    string        `env:"SLIDE2048_LOG_LEVEL" envDefault:"info"`
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// LoadServerConfig reads server settings from the environment.
func LoadServerConfig() (ServerConfig, error) {
	var cfg ServerConfig
	if err := ParseEnv(&cfg); err != nil {
		return ServerConfig{}, err
	}
	if cfg.IdleTimeout < 0 {
		return ServerConfig{}, fmt.Errorf("%w: SLIDE2048_IDLE_TIMEOUT must not be negative", ErrInvalidConfig)
	}
	return cfg, nil
}
