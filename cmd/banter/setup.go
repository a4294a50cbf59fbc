package main

import (
	"context"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/sandevgo/banterbot/internal/config"
	"github.com/sandevgo/banterbot/internal/core"
	"github.com/sandevgo/banterbot/internal/providers/llm"
	"github.com/sandevgo/banterbot/internal/service/agent"
	"github.com/sandevgo/banterbot/internal/service/command"
	"github.com/sandevgo/banterbot/internal/service/memory"
	"github.com/sandevgo/banterbot/internal/service/persona"
	"github.com/sandevgo/banterbot/internal/service/state"
	"github.com/sandevgo/banterbot/internal/storage/sqlite"
	"github.com/sandevgo/banterbot/internal/transport/cli"
	"github.com/sandevgo/banterbot/internal/transport/telegram"
	"github.com/sandevgo/banterbot/pkg/log"
	"github.com/sandevgo/banterbot/pkg/srv"
	"github.com/sandevgo/banterbot/pkg/tokenizer"
)

func NewServices(ctx context.Context) []srv.Service {
	logger := log.FromCtx(ctx)
	services := make([]srv.Service, 0)

	// init env
	err := initEnv(ctx, config.GetRuntimePath())
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to init env")
	}

	// 1. Configuration
	appCfg := config.NewAppConfig(ctx)
	llmCfg := config.NewLLMConfig(ctx)

	// 2. Storage
	db, err := sqlite.NewDB(ctx, appCfg.GetDatabasePath())
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to initialize storage")
	}
	services = append(services, srv.NewCleanup(db.Close))

	historyRepo := sqlite.NewHistoryRepo(db)
	profilesRepo := sqlite.NewProfilesRepo(db)

	// 3. Persona
	selector := persona.NewSelector(appCfg.PersonaMode)

	// 4. Memory Service
	mem := memory.NewMemory(
		appCfg,
		historyRepo,
		profilesRepo,
		tokenizer.New(ctx),
		memory.NewDefaultScorer(),
		selector,
	)

	// 5. AI Provider (rebuilt on /model switches)
	aiProvider, err := llm.NewDynamicProvider(ctx, llmCfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to initialize LLM provider")
	}

	// 6. Commands
	globalState := state.NewGlobalState(aiProvider, selector)
	commands := command.New(command.NewCommands(llmCfg, globalState, mem))

	// 7. Agent Service
	ag := agent.NewAgent(aiProvider, mem)

	// 8. Transports
	transports, err := initTransports(ctx, appCfg, ag, commands)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to initialize transports")
	}
	services = append(services, transports...)

	return services
}

func initTransports(
	ctx context.Context,
	cfg *config.AppConfig,
	ag *agent.Agent,
	commands core.CmdRouter,
) ([]srv.Service, error) {
	var services []srv.Service

	// Telegram Bot
	if cfg.EnableTelegram {
		tgCfg := config.NewTelegramConfig(ctx)
		bot, err := telegram.NewBot(ctx, tgCfg, ag, commands)
		if err != nil {
			return nil, err
		}
		services = append(services, bot)
	}

	// Interactive terminal chat
	if cfg.EnableCLI {
		rl, err := cli.NewReadLine(ag, commands, cfg)
		if err != nil {
			return nil, err
		}
		services = append(services, rl)
	}

	return services, nil
}

func initEnv(ctx context.Context, runtimePath string) error {
	logger := log.FromCtx(ctx)
	envFile := filepath.Join(runtimePath, ".env")

	if _, err := os.Stat(envFile); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	if err := godotenv.Load(envFile); err != nil {
		logger.Warn().Err(err).Str("path", envFile).Msg("failed to load .env file")
		return err
	}

	logger.Debug().Str("path", envFile).Msg("loaded .env file")
	return nil
}
