package core

import "context"

type ProviderConfig interface {
	GetModel() string
	SetModel(model string) error
	GetProvider() string
	GetOpenAIAPIKey() string
	GetAnthropicAPIKey() string
	GetOpenRouterAPIKey() string
	GetOllamaAPIKey() string
	GetOllamaBaseURL() string
	GetCustomBaseURL() string
	GetCustomAPIKey() string
}

type GlobalState interface {
	ChangeModel(ctx context.Context, model string) error
	ChangePersona(ctx context.Context, mode string) error
	CurrentPersona() string
}
