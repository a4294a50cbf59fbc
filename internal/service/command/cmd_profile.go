package command

import (
	"context"
	"fmt"

	"github.com/sandevgo/banterbot/internal/core"
)

type ProfileCommand struct {
	memory    core.Memory
	formatter *ResponseFormatter
}

func NewProfileCommand(memory core.Memory) *ProfileCommand {
	return &ProfileCommand{
		memory:    memory,
		formatter: NewResponseFormatter(),
	}
}

func (c *ProfileCommand) Name() string {
	return "profile"
}

func (c *ProfileCommand) Description() string {
	return "Show what the bot has learned about you"
}

func (c *ProfileCommand) Execute(ctx context.Context, sessionID string, args []string) (string, error) {
	snippet, err := c.memory.Snippet(ctx, sessionID)
	if err != nil {
		return "", fmt.Errorf("failed to load profile: %w", err)
	}
	if snippet == "" {
		return c.formatter.Info("Nothing on file yet — keep talking and I'll catch on."), nil
	}
	return snippet, nil
}
