package config

import (
	"context"
	"fmt"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/sandevgo/banterbot/pkg/log"
)

// LLMConfig carries credentials and model selection for every supported
// provider. It implements core.ProviderConfig; SetModel takes effect for
// subsequent requests.
type LLMConfig struct {
	mu sync.RWMutex

	Provider string `env:"LLM_PROVIDER" envDefault:"openrouter"`
	Model    string `env:"LLM_MODEL" envDefault:"google/gemma-3-27b-it:free"`

	OpenAIAPIKey     string `env:"OPENAI_API_KEY"`
	AnthropicAPIKey  string `env:"ANTHROPIC_API_KEY"`
	OpenRouterAPIKey string `env:"OPENROUTER_API_KEY"`
	OllamaBaseURL    string `env:"OLLAMA_BASE_URL" envDefault:"http://localhost:11434"`
	OllamaAPIKey     string `env:"OLLAMA_API_KEY"`
	CustomBaseURL    string `env:"CUSTOM_OPENAI_BASE_URL"`
	CustomAPIKey     string `env:"CUSTOM_OPENAI_API_KEY"`
}

func NewLLMConfig(ctx context.Context) *LLMConfig {
	c := &LLMConfig{}
	if err := env.Parse(c); err != nil {
		log.FromCtx(ctx).Fatal().Err(err).Msg("failed to parse LLM config")
	}
	return c
}

func (c *LLMConfig) GetModel() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.Model
}

// SetModel accepts either "model" or "provider/model" form; the provider
// part must be one of the known backends.
func (c *LLMConfig) SetModel(model string) error {
	if model == "" {
		return fmt.Errorf("model must not be empty")
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.Model = model
	return nil
}

func (c *LLMConfig) SetProvider(provider string) error {
	switch provider {
	case "openai", "anthropic", "openrouter", "ollama", "custom":
	default:
		return fmt.Errorf("unknown llm provider: %s", provider)
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.Provider = provider
	return nil
}

func (c *LLMConfig) GetProvider() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.Provider
}

func (c *LLMConfig) GetOpenAIAPIKey() string     { return c.OpenAIAPIKey }
func (c *LLMConfig) GetAnthropicAPIKey() string  { return c.AnthropicAPIKey }
func (c *LLMConfig) GetOpenRouterAPIKey() string { return c.OpenRouterAPIKey }
func (c *LLMConfig) GetOllamaAPIKey() string     { return c.OllamaAPIKey }
func (c *LLMConfig) GetOllamaBaseURL() string    { return c.OllamaBaseURL }
func (c *LLMConfig) GetCustomBaseURL() string    { return c.CustomBaseURL }
func (c *LLMConfig) GetCustomAPIKey() string     { return c.CustomAPIKey }
