package command

import (
	"context"
	"fmt"

	"github.com/sandevgo/banterbot/internal/core"
)

type ClearCommand struct {
	memory    core.Memory
	formatter *ResponseFormatter
}

func NewClearCommand(memory core.Memory) *ClearCommand {
	return &ClearCommand{
		memory:    memory,
		formatter: NewResponseFormatter(),
	}
}

func (c *ClearCommand) Name() string {
	return "clear"
}

func (c *ClearCommand) Description() string {
	return "Forget the conversation and start fresh"
}

func (c *ClearCommand) Execute(ctx context.Context, sessionID string, args []string) (string, error) {
	if err := c.memory.Reset(ctx, sessionID); err != nil {
		return "", fmt.Errorf("failed to clear session: %w", err)
	}
	return c.formatter.Success("Memory wiped. Clean slate — make it count."), nil
}
