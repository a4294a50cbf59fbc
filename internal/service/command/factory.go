package command

import (
	"github.com/sandevgo/banterbot/internal/core"
)

func NewCommands(
	cfg core.ProviderConfig,
	state core.GlobalState,
	memory core.Memory,
) []core.Command {
	return []core.Command{
		NewModelCommand(cfg, state),
		NewModeCommand(state),
		NewProfileCommand(memory),
		NewClearCommand(memory),
	}
}
