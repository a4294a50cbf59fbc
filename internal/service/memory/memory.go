package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/sandevgo/banterbot/internal/config"
	"github.com/sandevgo/banterbot/internal/core"
	"github.com/sandevgo/banterbot/pkg/log"
)

// Prompter supplies the leading system messages for a request (persona
// prompt and any static identity content).
type Prompter interface {
	Build() []core.Message
}

// Memory is the adaptive context service. It keeps one scored store and one
// profile per session, assembles the prompt context for each turn, and
// persists exchanges through the repositories. Sessions are independent;
// operations within a session are serialized by a per-session lock.
type Memory struct {
	cfg       *config.AppConfig
	history   core.HistoryRepository
	profiles  core.ProfileRepository
	estimator core.CostEstimator
	scorer    *Scorer
	prompter  Prompter

	mu       sync.Mutex
	sessions map[string]*session
}

type session struct {
	mu      sync.Mutex
	store   *Store
	profile *core.Profile
	loaded  bool
}

func NewMemory(
	cfg *config.AppConfig,
	history core.HistoryRepository,
	profiles core.ProfileRepository,
	estimator core.CostEstimator,
	scorer *Scorer,
	prompter Prompter,
) *Memory {
	return &Memory{
		cfg:       cfg,
		history:   history,
		profiles:  profiles,
		estimator: estimator,
		scorer:    scorer,
		prompter:  prompter,
		sessions:  make(map[string]*session),
	}
}

// Context assembles the full message list for one turn: persona prompt,
// profile snippet (once enough signal exists), budget-trimmed history, and
// the current user input.
func (m *Memory) Context(ctx context.Context, sessionID, userInput string) ([]core.Message, error) {
	s, err := m.session(sessionID)
	if err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := m.ensureLoaded(ctx, sessionID, s); err != nil {
		return nil, err
	}

	messages := m.prompter.Build()

	if snippet := FormatSnippet(s.profile); snippet != "" {
		messages = append(messages, core.Message{Role: core.RoleSystem, Content: snippet})
	}

	trimmed, err := Trim(s.store.Snapshot(), m.cfg.ContextTokenBudget, m.estimator)
	if err != nil {
		return nil, fmt.Errorf("trim history: %w", err)
	}
	for _, sm := range trimmed {
		messages = append(messages, sm.AsMessage())
	}

	messages = append(messages, core.Message{Role: core.RoleUser, Content: userInput})

	log.FromCtx(ctx).Debug().
		Int("history", len(trimmed)).
		Int("total", len(messages)).
		Msg("assembled context")

	return messages, nil
}

// RecordExchange scores the finished exchange, appends the pair to the
// session store, and persists both halves plus the updated profile. Returns
// the importance score assigned to the exchange.
func (m *Memory) RecordExchange(ctx context.Context, sessionID, userText, assistantText string) (int, error) {
	s, err := m.session(sessionID)
	if err != nil {
		return 0, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := m.ensureLoaded(ctx, sessionID, s); err != nil {
		return 0, err
	}

	score := m.scorer.Score(userText, assistantText, s.profile)

	// Persist the pair as appended, not via the store snapshot: a store at
	// capacity 1 evicts the user half immediately, and the audit log must
	// still carry both.
	for _, sm := range s.store.AppendExchange(userText, assistantText, score) {
		if err := m.history.AddMessage(ctx, sessionID, sm); err != nil {
			return 0, fmt.Errorf("persist message: %w", err)
		}
	}

	if err := m.profiles.Save(ctx, sessionID, s.profile); err != nil {
		return 0, fmt.Errorf("persist profile: %w", err)
	}

	log.FromCtx(ctx).Debug().
		Int("importance", score).
		Int("turn_count", s.profile.TurnCount).
		Msg("recorded exchange")

	return score, nil
}

// Snippet renders the current profile summary for the session.
func (m *Memory) Snippet(ctx context.Context, sessionID string) (string, error) {
	s, err := m.session(sessionID)
	if err != nil {
		return "", err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := m.ensureLoaded(ctx, sessionID, s); err != nil {
		return "", err
	}
	return FormatSnippet(s.profile), nil
}

// Reset wipes the session's store, profile, and persisted state.
func (m *Memory) Reset(ctx context.Context, sessionID string) error {
	s, err := m.session(sessionID)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	s.store.Clear()
	if s.profile != nil {
		s.profile.Reset()
	}
	s.loaded = true

	if err := m.history.Clear(ctx, sessionID); err != nil {
		return fmt.Errorf("clear history: %w", err)
	}
	if err := m.profiles.Clear(ctx, sessionID); err != nil {
		return fmt.Errorf("clear profile: %w", err)
	}
	return nil
}

func (m *Memory) session(sessionID string) (*session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if s, ok := m.sessions[sessionID]; ok {
		return s, nil
	}

	store, err := NewStore(m.cfg.MemoryCapacity)
	if err != nil {
		return nil, err
	}
	s := &session{store: store, profile: core.NewProfile()}
	m.sessions[sessionID] = s
	return s, nil
}

// ensureLoaded rehydrates profile and scored history from storage on first
// access, so a session resumes where its last process left off. Caller holds
// the session lock.
func (m *Memory) ensureLoaded(ctx context.Context, sessionID string, s *session) error {
	if s.loaded {
		return nil
	}

	profile, err := m.profiles.Load(ctx, sessionID)
	if err != nil {
		return fmt.Errorf("load profile: %w", err)
	}
	if profile != nil {
		s.profile = profile
	}

	stored, err := m.history.GetMessages(ctx, sessionID, m.cfg.MemoryCapacity)
	if err != nil {
		return fmt.Errorf("load history: %w", err)
	}
	for _, sm := range stored {
		s.store.Rehydrate(sm)
	}

	s.loaded = true
	log.FromCtx(ctx).Debug().
		Str("session", sessionID).
		Int("messages", len(stored)).
		Msg("session rehydrated")
	return nil
}
