// Package config loads process configuration from the environment.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"

	"times-table/internal/game"
)

// Game holds the defaults for new quiz sessions.
type Game struct {
	MinOperand    int `env:"TIMESTABLE_MIN_OPERAND" envDefault:"1"`
	MaxOperand    int `env:"TIMESTABLE_MAX_OPERAND" envDefault:"10"`
	SessionLength int `env:"TIMESTABLE_SESSION_LENGTH" envDefault:"10"`
}

// Settings converts the defaults into game settings.
func (g Game) Settings() game.Settings {
	return game.Settings{
		MinOperand: g.MinOperand,
		MaxOperand: g.MaxOperand,
		Length:     g.SessionLength,
	}
}

// Service configures the HTTP service.
type Service struct {
	Addr   string `env:"ADDR" envDefault:":8080"`
	DBPath string `env:"TIMESTABLE_DB_PATH" envDefault:"timestable.db"`

	// SessionIdleTimeout drops sessions nobody has touched for this long.
	// Zero keeps them until deleted.
	SessionIdleTimeout time.Duration `env:"TIMESTABLE_SESSION_IDLE_TIMEOUT" envDefault:"30m"`
	Game               Game
}

// CLI configures the terminal game.
type CLI struct {
	Locale string `env:"TIMESTABLE_LOCALE" envDefault:"en"`
	Game   Game
}

// Client configures the interactive HTTP client.
type Client struct {
	ServerURL string `env:"TIMESTABLE_SERVER" envDefault:"http://127.0.0.1:8080"`
	Game      Game
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}
