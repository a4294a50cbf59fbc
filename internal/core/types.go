package core

const (
	BanterName          = "BanterBot"
	BanterUserAgent     = "BanterBot-Agent/0.1"
	BanterRepositoryURL = "https://github.com/sandevgo/banterbot"
	BanterVersion       = "0.1.0"
)

const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Message is the wire-level chat message handed to an AIProvider.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ScoredMessage is a chat message annotated for retention decisions.
// Importance is assigned once at append time and never changes. Sequence is
// strictly increasing per store and never reused, even after eviction. Turn
// groups the user/assistant halves of one exchange so the trimmer can evict
// them together.
type ScoredMessage struct {
	Role       string `json:"role"`
	Content    string `json:"content"`
	Importance int    `json:"importance"`
	Sequence   int64  `json:"sequence"`
	Turn       int64  `json:"turn"`
}

// AsMessage strips retention metadata for LLM transport.
func (m ScoredMessage) AsMessage() Message {
	return Message{Role: m.Role, Content: m.Content}
}

type Model struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	ContextLength int    `json:"context_length,omitempty"`
}
