package command

import (
	"context"
	"fmt"

	"github.com/sandevgo/banterbot/internal/core"
	"github.com/sandevgo/banterbot/internal/service/persona"
)

type ModeCommand struct {
	state     core.GlobalState
	formatter *ResponseFormatter
}

func NewModeCommand(state core.GlobalState) *ModeCommand {
	return &ModeCommand{
		state:     state,
		formatter: NewResponseFormatter(),
	}
}

func (c *ModeCommand) Name() string {
	return "mode"
}

func (c *ModeCommand) Description() string {
	return "Show or change the banter persona"
}

func (c *ModeCommand) Execute(ctx context.Context, sessionID string, args []string) (string, error) {
	if len(args) == 0 {
		return c.formatter.Combine(
			c.formatter.Info("Persona"),
			c.formatter.Label("Current", c.state.CurrentPersona()),
			c.formatter.List(persona.Modes()),
			c.formatter.Usage("/mode [name]"),
		), nil
	}

	if err := c.state.ChangePersona(ctx, args[0]); err != nil {
		return "", fmt.Errorf("failed to set persona: %w", err)
	}

	return c.formatter.Combine(
		c.formatter.Success(fmt.Sprintf("Persona changed to: `%s`", args[0])),
	), nil
}
