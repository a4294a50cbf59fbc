package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/chzyer/readline"
	"github.com/sandevgo/banterbot/internal/config"
	"github.com/sandevgo/banterbot/internal/service/agent"
	"github.com/sandevgo/banterbot/internal/service/ui"
	"github.com/sandevgo/banterbot/pkg/log"

	"github.com/sandevgo/banterbot/internal/core"
)

const defaultSessionID = "cli-local"

type ReadLine struct {
	cfg      *config.AppConfig
	agent    *agent.Agent
	commands core.CmdRouter
	rl       *readline.Instance
}

func NewReadLine(agent *agent.Agent, commands core.CmdRouter, cfg *config.AppConfig) (*ReadLine, error) {
	// Ensure runtime directory exists
	if err := os.MkdirAll(cfg.RuntimePath, 0755); err != nil {
		return nil, fmt.Errorf("failed to create runtime directory: %w", err)
	}

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          ">>> ",
		HistoryFile:     filepath.Join(cfg.RuntimePath, "input_history"),
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		return nil, err
	}

	return &ReadLine{
		cfg:      cfg,
		agent:    agent,
		commands: commands,
		rl:       rl,
	}, nil
}

func (r *ReadLine) Start(ctx context.Context) error {
	logger := log.FromCtx(ctx)
	logger.Info().Msg("ReadLine chat started. Type 'exit' to quit.")

	// Readline blocks with no context support; closing the instance on
	// cancellation is the only way to unblock a pending read.
	stop := context.AfterFunc(ctx, func() { _ = r.rl.Close() })
	defer stop()

	for {
		line, err := r.rl.Readline()
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if err != nil {
			if err == readline.ErrInterrupt {
				if len(line) == 0 {
					return nil // Exit on Ctrl+C
				}
				continue
			} else if err == io.EOF {
				return nil
			}
			return err
		}

		line = strings.TrimSpace(line)
		if line == "exit" {
			return nil
		}
		if line == "" {
			continue
		}

		// Slash commands short-circuit the agent
		if out, handled := r.commands.Execute(ctx, defaultSessionID, line); handled {
			fmt.Fprintf(r.rl.Stdout(), "%s\n", out)
			continue
		}

		reply, err := r.agent.Run(ctx, defaultSessionID, line)
		if err != nil {
			logger.Error().Err(err).Msg("agent run failed")
			fmt.Fprintf(r.rl.Stdout(), "%s\n", ui.ErrorStyle.Render(fmt.Sprintf("Error: %v", err)))
			continue
		}

		fmt.Fprintf(r.rl.Stdout(), "%s\n", reply)
	}
}

func (r *ReadLine) Shutdown(ctx context.Context) error {
	if r.rl != nil {
		return r.rl.Close()
	}
	return nil
}
