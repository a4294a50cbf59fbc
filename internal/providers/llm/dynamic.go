package llm

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/sandevgo/banterbot/internal/core"
)

// DynamicProvider swaps the underlying provider at runtime when the model
// changes (driven by the /model command).
type DynamicProvider struct {
	config  core.ProviderConfig
	current atomic.Value
	mu      sync.Mutex
}

func NewDynamicProvider(ctx context.Context, config core.ProviderConfig) (*DynamicProvider, error) {
	d := &DynamicProvider{config: config}

	provider, err := NewProvider(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("failed to create initial provider: %w", err)
	}

	d.current.Store(provider)
	return d, nil
}

func (d *DynamicProvider) Chat(ctx context.Context, history []core.Message) (core.Message, error) {
	provider := d.current.Load().(core.AIProvider)
	return provider.Chat(ctx, history)
}

func (d *DynamicProvider) Models(ctx context.Context) ([]core.Model, error) {
	provider := d.current.Load().(core.AIProvider)
	return provider.Models(ctx)
}

func (d *DynamicProvider) GetModel() string {
	return d.config.GetModel()
}

func (d *DynamicProvider) SetModel(ctx context.Context, model string) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if err := d.config.SetModel(model); err != nil {
		return err
	}

	newProvider, err := NewProvider(ctx, d.config)
	if err != nil {
		return fmt.Errorf("failed to create provider: %w", err)
	}

	d.current.Store(newProvider)
	return nil
}
