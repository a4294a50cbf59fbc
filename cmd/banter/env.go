package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/sandevgo/banterbot/internal/config"
	"github.com/sandevgo/banterbot/pkg/env"
	"github.com/sandevgo/banterbot/pkg/log"
	"github.com/spf13/cobra"
)

var envCmd = &cobra.Command{
	Use:           "env",
	Short:         "Write the current configuration to the runtime .env file",
	Long:          `Snapshots the resolved configuration (environment plus defaults) into <runtime>/.env so it survives restarts. Refuses to overwrite an existing file.`,
	SilenceUsage:  true,
	SilenceErrors: false,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		// Setup logger
		var flushLog func()
		ctx, flushLog = setupLogger(ctx)
		defer flushLog()

		logger := log.FromCtx(ctx)

		runtimePath := config.GetRuntimePath()
		if err := os.MkdirAll(runtimePath, 0755); err != nil {
			return fmt.Errorf("failed to create runtime directory: %w", err)
		}

		envPath := filepath.Join(runtimePath, ".env")
		if _, err := os.Stat(envPath); err == nil {
			return fmt.Errorf("%s already exists, remove it first", envPath)
		}

		appContent, err := env.MarshalEnv(config.NewAppConfig(ctx))
		if err != nil {
			return fmt.Errorf("failed to marshal app config: %w", err)
		}
		llmContent, err := env.MarshalEnv(config.NewLLMConfig(ctx))
		if err != nil {
			return fmt.Errorf("failed to marshal llm config: %w", err)
		}

		if err := os.WriteFile(envPath, []byte(appContent+llmContent), 0600); err != nil {
			return fmt.Errorf("failed to write .env: %w", err)
		}

		logger.Info().Str("path", envPath).Msg("wrote configuration snapshot")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(envCmd)
}
