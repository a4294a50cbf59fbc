package memory

import (
	"github.com/sandevgo/banterbot/internal/core"
)

// Store is a bounded, ordered sequence of scored messages for one session.
// Once the element cap is reached the oldest entry is evicted on append; the
// cap is independent of the trimmer's token budget. Store is not safe for
// concurrent use; the owning session serializes access.
type Store struct {
	capacity int
	nextSeq  int64
	nextTurn int64
	msgs     []core.ScoredMessage
}

func NewStore(capacity int) (*Store, error) {
	if capacity <= 0 {
		return nil, core.ErrCapacity
	}
	return &Store{capacity: capacity}, nil
}

// Append adds a single message and returns its sequence number. The message
// forms its own turn; use AppendExchange for a paired user/assistant
// exchange. The oldest entry is evicted if the store is full.
func (s *Store) Append(role, content string, importance int) int64 {
	s.nextTurn++
	return s.push(role, content, importance, s.nextTurn)
}

// AppendExchange adds a user/assistant pair under one shared turn so the
// trimmer can evict the exchange as a unit. The returned pair is the
// appended messages as written, whether or not the store's capacity has
// since evicted them.
func (s *Store) AppendExchange(userText, assistantText string, importance int) [2]core.ScoredMessage {
	s.nextTurn++
	userSeq := s.push(core.RoleUser, userText, importance, s.nextTurn)
	assistantSeq := s.push(core.RoleAssistant, assistantText, importance, s.nextTurn)
	return [2]core.ScoredMessage{
		{Role: core.RoleUser, Content: userText, Importance: importance, Sequence: userSeq, Turn: s.nextTurn},
		{Role: core.RoleAssistant, Content: assistantText, Importance: importance, Sequence: assistantSeq, Turn: s.nextTurn},
	}
}

// Rehydrate reloads a message persisted by an earlier run, preserving its
// importance and turn grouping.
func (s *Store) Rehydrate(msg core.ScoredMessage) {
	if msg.Turn > s.nextTurn {
		s.nextTurn = msg.Turn
	}
	s.push(msg.Role, msg.Content, msg.Importance, msg.Turn)
}

func (s *Store) push(role, content string, importance int, turn int64) int64 {
	if len(s.msgs) >= s.capacity {
		s.msgs = s.msgs[1:]
	}
	s.nextSeq++
	s.msgs = append(s.msgs, core.ScoredMessage{
		Role:       role,
		Content:    content,
		Importance: importance,
		Sequence:   s.nextSeq,
		Turn:       turn,
	})
	return s.nextSeq
}

// Snapshot returns the stored messages in insertion order, oldest first.
func (s *Store) Snapshot() []core.ScoredMessage {
	out := make([]core.ScoredMessage, len(s.msgs))
	copy(out, s.msgs)
	return out
}

// ForTransport strips retention metadata for handoff to an AIProvider.
func (s *Store) ForTransport() []core.Message {
	out := make([]core.Message, len(s.msgs))
	for i, m := range s.msgs {
		out[i] = m.AsMessage()
	}
	return out
}

func (s *Store) Len() int {
	return len(s.msgs)
}

func (s *Store) Clear() {
	s.msgs = nil
}
