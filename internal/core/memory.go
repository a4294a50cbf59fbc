package core

import "context"

// Memory is the adaptive context subsystem the agent talks to: it assembles
// the prompt context for a turn and records the finished exchange.
type Memory interface {
	Context(ctx context.Context, sessionID, userInput string) ([]Message, error)
	RecordExchange(ctx context.Context, sessionID, userText, assistantText string) (int, error)
	Snippet(ctx context.Context, sessionID string) (string, error)
	Reset(ctx context.Context, sessionID string) error
}

// CostEstimator converts text to an integer token-equivalent cost.
// Implementations may count exact subword tokens or approximate from word
// counts; callers must not depend on which.
type CostEstimator interface {
	Cost(text string) int
}
