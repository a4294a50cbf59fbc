package core

import "context"

// HistoryRepository persists scored messages per session. It is an audit log
// and rehydration source; trimming never touches it.
type HistoryRepository interface {
	AddMessage(ctx context.Context, sessionID string, msg ScoredMessage) error
	GetMessages(ctx context.Context, sessionID string, limit int) ([]ScoredMessage, error)
	Clear(ctx context.Context, sessionID string) error
}

// ProfileRepository persists the per-session user profile as an opaque
// serialized blob keyed by session id. Load returns (nil, nil) when no
// profile has been saved yet.
type ProfileRepository interface {
	Save(ctx context.Context, sessionID string, profile *Profile) error
	Load(ctx context.Context, sessionID string) (*Profile, error)
	Clear(ctx context.Context, sessionID string) error
}
