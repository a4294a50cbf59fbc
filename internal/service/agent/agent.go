package agent

import (
	"context"
	"fmt"

	"github.com/sandevgo/banterbot/internal/core"
	"github.com/sandevgo/banterbot/pkg/log"
)

// Agent drives one conversational turn: assemble context through the memory
// service, call the model, then record the finished exchange so the memory
// can score and retain it.
type Agent struct {
	ai     core.AIProvider
	memory core.Memory
}

func NewAgent(ai core.AIProvider, memory core.Memory) *Agent {
	return &Agent{
		ai:     ai,
		memory: memory,
	}
}

func (a *Agent) Run(ctx context.Context, sessionID string, input string) (string, error) {
	logger := log.FromCtx(ctx)

	messages, err := a.memory.Context(ctx, sessionID, input)
	if err != nil {
		return "", fmt.Errorf("failed to assemble context: %w", err)
	}

	reply, err := a.ai.Chat(ctx, messages)
	if err != nil {
		return "", fmt.Errorf("ai chat error: %w", err)
	}

	// The exchange is scored after the reply exists: a substantive reply
	// feeds the engagement bonus. A persistence failure must not lose the
	// reply the user already earned.
	score, err := a.memory.RecordExchange(ctx, sessionID, input, reply.Content)
	if err != nil {
		logger.Error().Err(err).Msg("failed to record exchange")
	} else {
		logger.Debug().Int("importance", score).Str("session", sessionID).Msg("exchange recorded")
	}

	return reply.Content, nil
}
