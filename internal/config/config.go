// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package config handles application configuration loading from environment
// variables and an optional .env file. It provides a centralized Config struct
// used across the application.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// DotEnvFile is the optional file read before the environment is parsed.
// Variables already present in the environment win over the file.
const DotEnvFile = ".env"

// Config holds all application configuration values loaded from the environment.
type Config struct {
	// Server settings
	Host string `env:"APP_HOST" envDefault:"0.0.0.0"`
	Port string `env:"APP_PORT" envDefault:"3000"`
	Env  string `env:"APP_ENV" envDefault:"development"` // "development", "production", "testing"

	// Logging
	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"text"`

	// Branding shown in the navbar, footer and page titles.
	SiteName string `env:"SITE_NAME" envDefault:"TimeUp"`

	// Valkey (Redis-compatible page cache). An empty host disables caching.
	ValkeyHost     string        `env:"VALKEY_HOST"`
	ValkeyPort     string        `env:"VALKEY_PORT" envDefault:"6379"`
	ValkeyPassword string        `env:"VALKEY_PASSWORD"`
	PageCacheTTL   time.Duration `env:"PAGE_CACHE_TTL" envDefault:"5m"`

	// Per-client limits for the HTMX partial endpoints.
	RateLimitRPS   float64 `env:"RATE_LIMIT_RPS" envDefault:"10"`
	RateLimitBurst int     `env:"RATE_LIMIT_BURST" envDefault:"20"`

	// TrustProxy takes the client address from X-Forwarded-For/X-Real-IP.
	// Enable only behind a reverse proxy that overwrites those headers.
	TrustProxy bool `env:"TRUST_PROXY" envDefault:"false"`
}

var knownEnvs = map[string]bool{
	"development": true,
	"production":  true,
	"testing":     true,
}

// Load reads configuration from DotEnvFile (if present) and the environment,
// applying defaults where appropriate. Returns an error for values the
// server cannot start with.
func Load() (*Config, error) {
	if err := godotenv.Load(DotEnvFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load %s: %w", DotEnvFile, err)
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse environment: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if !knownEnvs[c.Env] {
		return fmt.Errorf("APP_ENV must be development, production or testing, got %q", c.Env)
	}
	if c.RateLimitRPS <= 0 {
		return fmt.Errorf("RATE_LIMIT_RPS must be positive, got %v", c.RateLimitRPS)
	}
	if c.RateLimitBurst <= 0 {
		return fmt.Errorf("RATE_LIMIT_BURST must be positive, got %d", c.RateLimitBurst)
	}
	if c.PageCacheTTL <= 0 {
		return fmt.Errorf("PAGE_CACHE_TTL must be positive, got %s", c.PageCacheTTL)
	}
	return nil
}

// Addr returns the server listen address (host:port).
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%s", c.Host, c.Port)
}

// ValkeyAddr returns the Valkey address (host:port).
func (c *Config) ValkeyAddr() string {
	return net.JoinHostPort(c.ValkeyHost, c.ValkeyPort)
}

// CacheEnabled reports whether a Valkey host was configured.
func (c *Config) CacheEnabled() bool {
	return c.ValkeyHost != ""
}

// IsDev returns true if the application is running in development mode.
func (c *Config) IsDev() bool {
	return c.Env == "development"
}
