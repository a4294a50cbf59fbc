package state

import (
	"context"
)

type provider interface {
	SetModel(ctx context.Context, model string) error
}

type personaSelector interface {
	Mode() string
	SetMode(mode string) error
}

type GlobalState struct {
	provider provider
	persona  personaSelector
}

func NewGlobalState(
	provider provider,
	persona personaSelector,
) *GlobalState {
	return &GlobalState{
		provider: provider,
		persona:  persona,
	}
}

func (s *GlobalState) ChangeModel(ctx context.Context, model string) error {
	return s.provider.SetModel(ctx, model)
}

func (s *GlobalState) ChangePersona(_ context.Context, mode string) error {
	return s.persona.SetMode(mode)
}

func (s *GlobalState) CurrentPersona() string {
	return s.persona.Mode()
}
