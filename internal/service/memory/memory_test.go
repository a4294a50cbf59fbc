package memory

import (
	"context"
	"strings"
	"testing"

	"github.com/sandevgo/banterbot/internal/config"
	"github.com/sandevgo/banterbot/internal/core"
)

type fakeHistory struct {
	messages map[string][]core.ScoredMessage
	fail     error
}

func newFakeHistory() *fakeHistory {
	return &fakeHistory{messages: make(map[string][]core.ScoredMessage)}
}

func (f *fakeHistory) AddMessage(_ context.Context, sessionID string, msg core.ScoredMessage) error {
	if f.fail != nil {
		return f.fail
	}
	f.messages[sessionID] = append(f.messages[sessionID], msg)
	return nil
}

func (f *fakeHistory) GetMessages(_ context.Context, sessionID string, limit int) ([]core.ScoredMessage, error) {
	msgs := f.messages[sessionID]
	if len(msgs) > limit {
		msgs = msgs[len(msgs)-limit:]
	}
	return msgs, nil
}

func (f *fakeHistory) Clear(_ context.Context, sessionID string) error {
	delete(f.messages, sessionID)
	return nil
}

type fakeProfiles struct {
	profiles map[string]*core.Profile
}

func newFakeProfiles() *fakeProfiles {
	return &fakeProfiles{profiles: make(map[string]*core.Profile)}
}

func (f *fakeProfiles) Save(_ context.Context, sessionID string, profile *core.Profile) error {
	clone := *profile
	f.profiles[sessionID] = &clone
	return nil
}

func (f *fakeProfiles) Load(_ context.Context, sessionID string) (*core.Profile, error) {
	p, ok := f.profiles[sessionID]
	if !ok {
		return nil, nil
	}
	clone := *p
	return &clone, nil
}

func (f *fakeProfiles) Clear(_ context.Context, sessionID string) error {
	delete(f.profiles, sessionID)
	return nil
}

type stubPrompter struct {
	prompt string
}

func (s stubPrompter) Build() []core.Message {
	return []core.Message{{Role: core.RoleSystem, Content: s.prompt}}
}

func testMemory(history core.HistoryRepository, profiles core.ProfileRepository) *Memory {
	return testMemoryWithCapacity(history, profiles, 40)
}

func testMemoryWithCapacity(history core.HistoryRepository, profiles core.ProfileRepository, capacity int) *Memory {
	cfg := &config.AppConfig{
		ContextTokenBudget: 1000,
		MemoryCapacity:     capacity,
	}
	return NewMemory(cfg, history, profiles, flatCost{per: 1}, NewDefaultScorer(), stubPrompter{prompt: "be mean"})
}

func TestMemory_ContextFirstTurn(t *testing.T) {
	mem := testMemory(newFakeHistory(), newFakeProfiles())
	ctx := context.Background()

	msgs, err := mem.Context(ctx, "s1", "hello there")
	if err != nil {
		t.Fatal(err)
	}

	// Persona prompt plus the current input; no history, no snippet yet.
	if len(msgs) != 2 {
		t.Fatalf("len = %d, want 2: %+v", len(msgs), msgs)
	}
	if msgs[0].Role != core.RoleSystem || msgs[0].Content != "be mean" {
		t.Errorf("first message should be persona prompt, got %+v", msgs[0])
	}
	if msgs[1].Role != core.RoleUser || msgs[1].Content != "hello there" {
		t.Errorf("last message should be user input, got %+v", msgs[1])
	}
}

func TestMemory_ContextIncludesHistoryAndSnippet(t *testing.T) {
	mem := testMemory(newFakeHistory(), newFakeProfiles())
	ctx := context.Background()

	if _, err := mem.RecordExchange(ctx, "s1", "I'm a senior backend engineer at Google", "Sure you are."); err != nil {
		t.Fatal(err)
	}
	if _, err := mem.RecordExchange(ctx, "s1", "i can't fix this bug, why doesn't it work", "Tragic."); err != nil {
		t.Fatal(err)
	}

	msgs, err := mem.Context(ctx, "s1", "help me out")
	if err != nil {
		t.Fatal(err)
	}

	// persona + snippet + 4 history messages + current input
	if len(msgs) != 7 {
		t.Fatalf("len = %d, want 7: %+v", len(msgs), msgs)
	}
	if !strings.Contains(msgs[1].Content, "USER PROFILE") {
		t.Errorf("expected profile snippet second, got %+v", msgs[1])
	}
	if msgs[2].Content != "I'm a senior backend engineer at Google" {
		t.Errorf("history out of order: %+v", msgs[2])
	}
	if msgs[6].Role != core.RoleUser || msgs[6].Content != "help me out" {
		t.Errorf("last message should be current input, got %+v", msgs[6])
	}
}

func TestMemory_RecordExchangePersists(t *testing.T) {
	history := newFakeHistory()
	profiles := newFakeProfiles()
	mem := testMemory(history, profiles)
	ctx := context.Background()

	score, err := mem.RecordExchange(ctx, "s1", "I'm a senior backend engineer at Google", "Sure.")
	if err != nil {
		t.Fatal(err)
	}
	if score < 6 {
		t.Errorf("disclosure score = %d, want >= 6", score)
	}

	stored := history.messages["s1"]
	if len(stored) != 2 {
		t.Fatalf("persisted %d messages, want 2", len(stored))
	}
	if stored[0].Role != core.RoleUser || stored[1].Role != core.RoleAssistant {
		t.Errorf("persisted roles wrong: %s, %s", stored[0].Role, stored[1].Role)
	}
	if stored[0].Importance != score || stored[0].Turn != stored[1].Turn {
		t.Errorf("persisted metadata wrong: %+v, %+v", stored[0], stored[1])
	}

	if profiles.profiles["s1"] == nil {
		t.Fatal("profile not persisted")
	}
	if profiles.profiles["s1"].TurnCount != 1 {
		t.Errorf("persisted TurnCount = %d, want 1", profiles.profiles["s1"].TurnCount)
	}
}

func TestMemory_RecordExchangeAtCapacityOne(t *testing.T) {
	history := newFakeHistory()
	profiles := newFakeProfiles()
	mem := testMemoryWithCapacity(history, profiles, 1)
	ctx := context.Background()

	// A capacity-1 store evicts the user half the moment the assistant half
	// lands; recording must neither panic nor lose the audit trail.
	score, err := mem.RecordExchange(ctx, "s1", "hello there friend of mine", "Hello yourself, stranger.")
	if err != nil {
		t.Fatal(err)
	}
	if score < 0 || score > 10 {
		t.Errorf("score %d outside [0,10]", score)
	}

	stored := history.messages["s1"]
	if len(stored) != 2 {
		t.Fatalf("persisted %d messages, want both halves", len(stored))
	}
	if stored[0].Role != core.RoleUser || stored[1].Role != core.RoleAssistant {
		t.Errorf("persisted roles wrong: %s, %s", stored[0].Role, stored[1].Role)
	}

	msgs, err := mem.Context(ctx, "s1", "still here?")
	if err != nil {
		t.Fatal(err)
	}
	// persona + 1 surviving history message + current input
	if len(msgs) != 3 {
		t.Errorf("context len = %d, want 3: %+v", len(msgs), msgs)
	}
}

func TestMemory_RehydratesFromStorage(t *testing.T) {
	history := newFakeHistory()
	profiles := newFakeProfiles()

	// First process records an exchange, then the module is rebuilt to
	// simulate a restart against the same storage.
	first := testMemory(history, profiles)
	ctx := context.Background()
	if _, err := first.RecordExchange(ctx, "s1", "I'm a senior backend engineer at Google", "Sure."); err != nil {
		t.Fatal(err)
	}
	if _, err := first.RecordExchange(ctx, "s1", "my gym membership expired months ago honestly", "Shocking."); err != nil {
		t.Fatal(err)
	}

	second := testMemory(history, profiles)
	msgs, err := second.Context(ctx, "s1", "remember me?")
	if err != nil {
		t.Fatal(err)
	}

	var foundHistory bool
	for _, m := range msgs {
		if m.Content == "I'm a senior backend engineer at Google" {
			foundHistory = true
		}
	}
	if !foundHistory {
		t.Errorf("rehydrated context missing stored history: %+v", msgs)
	}

	snippet, err := second.Snippet(ctx, "s1")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(snippet, "senior backend engineer") {
		t.Errorf("rehydrated snippet missing skills: %q", snippet)
	}
}

func TestMemory_ResetWipesEverything(t *testing.T) {
	history := newFakeHistory()
	profiles := newFakeProfiles()
	mem := testMemory(history, profiles)
	ctx := context.Background()

	if _, err := mem.RecordExchange(ctx, "s1", "I'm a senior backend engineer at Google", "Sure."); err != nil {
		t.Fatal(err)
	}
	if err := mem.Reset(ctx, "s1"); err != nil {
		t.Fatal(err)
	}

	if len(history.messages["s1"]) != 0 {
		t.Error("history not cleared")
	}
	if profiles.profiles["s1"] != nil {
		t.Error("profile not cleared")
	}

	msgs, err := mem.Context(ctx, "s1", "who am i?")
	if err != nil {
		t.Fatal(err)
	}
	if len(msgs) != 2 {
		t.Errorf("context after reset should be persona + input, got %d messages", len(msgs))
	}

	snippet, err := mem.Snippet(ctx, "s1")
	if err != nil {
		t.Fatal(err)
	}
	if snippet != "" {
		t.Errorf("snippet after reset = %q, want empty", snippet)
	}
}

func TestMemory_SessionsIsolated(t *testing.T) {
	mem := testMemory(newFakeHistory(), newFakeProfiles())
	ctx := context.Background()

	if _, err := mem.RecordExchange(ctx, "a", "I'm a senior backend engineer at Google", "Sure."); err != nil {
		t.Fatal(err)
	}

	msgs, err := mem.Context(ctx, "b", "hello")
	if err != nil {
		t.Fatal(err)
	}
	for _, m := range msgs {
		if strings.Contains(m.Content, "senior backend engineer") {
			t.Errorf("session b sees session a history: %+v", m)
		}
	}
}
