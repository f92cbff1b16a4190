// Package config loads process configuration from the environment,
// grounded on wisbric-nightowl's internal/config package.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v6"
)

// Config holds everything cmd/server needs at startup.
type Config struct {
	Host string `env:"ROSTER_HOST" envDefault:"0.0.0.0"`
	Port int    `env:"ROSTER_PORT" envDefault:"8080"`

	HistoryDBPath string `env:"ROSTER_HISTORY_DB" envDefault:"data/roster-history.db"`

	LogLevel  string `env:"ROSTER_LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"ROSTER_LOG_FORMAT" envDefault:"console"` // "console" | "json"

	SolveTimeoutSeconds int `env:"ROSTER_SOLVE_TIMEOUT_SECONDS" envDefault:"30"`

	CORSAllowedOrigins []string `env:"ROSTER_CORS_ALLOWED_ORIGINS" envDefault:"*" envSeparator:","`

	// OpenAIAPIKey enables the advisory infeasibility explainer
	// (SPEC_FULL.md §9.6). Left empty, the explainer is silently disabled.
	OpenAIAPIKey string `env:"OPENAI_API_KEY"`
	OpenAIModel  string `env:"ROSTER_OPENAI_MODEL" envDefault:"gpt-4o-mini"`
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parsing config from env: %w", err)
	}
	return cfg, nil
}

// ListenAddr returns the address the HTTP server should listen on.
func (c *Config) ListenAddr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}
