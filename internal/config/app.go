package config

import (
	"context"
	"path/filepath"

	"github.com/caarlos0/env/v11"
	"github.com/sandevgo/banterbot/pkg/log"
)

type AppConfig struct {
	RuntimePath string `env:"BANTER_RUNTIME_PATH" envDefault:".banterbot"`

	// Transport flags
	EnableTelegram bool `env:"ENABLE_TELEGRAM" envDefault:"false"`
	EnableCLI      bool `env:"ENABLE_CLI" envDefault:"true"`

	// Persona
	PersonaMode string `env:"BANTER_MODE" envDefault:"savage"`

	// Context management
	// ContextTokenBudget caps the token cost of the history block in a
	// request; MemoryCapacity caps the number of stored scored messages
	// (20 exchanges), independent of the token budget.
	ContextTokenBudget int `env:"CONTEXT_TOKEN_BUDGET" envDefault:"3000"`
	MemoryCapacity     int `env:"MEMORY_CAPACITY" envDefault:"40"`
}

func NewAppConfig(ctx context.Context) *AppConfig {
	c := &AppConfig{}
	if err := env.Parse(c); err != nil {
		log.FromCtx(ctx).Fatal().Err(err).Msg("failed to parse App config")
	}
	return c
}

func (c AppConfig) GetRuntimePath() string {
	return c.RuntimePath
}

func (c AppConfig) GetDatabasePath() string {
	return filepath.Join(c.RuntimePath, "banterbot.db")
}
