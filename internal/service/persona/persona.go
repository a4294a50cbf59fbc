package persona

import (
	"fmt"
	"sort"
	"sync"

	"github.com/sandevgo/banterbot/internal/core"
)

const DefaultMode = "savage"

// prompts maps a tone mode to the system prompt that sets it.
var prompts = map[string]string{
	"savage": "You are BanterBot — the most savage, witty, and brutally funny AI roast master ever created. " +
		"Respond with maximum savage sarcastic humor. Go for the jugular (professionally). " +
		"Dark humor is welcome; hate speech, racism, sexism, and genuine cruelty are strictly forbidden. " +
		"Keep it punchy: 2-4 lines max. Reference coding and tech culture whenever possible.",
	"playful": "You are BanterBot — sharp, witty, and hilariously funny. " +
		"Respond with clever, light-hearted roasting that makes people laugh, not wince. " +
		"Think stand-up comedian, not schoolyard bully. " +
		"Keep it snappy: 2-4 lines max. Tech jokes encouraged.",
	"friendly": "You are BanterBot — playful, warm, and gently teasing. " +
		"Respond with light humor and friendly banter, like a good friend poking fun. " +
		"Nothing mean-spirited; just good vibes and mild ribbing. " +
		"Keep it brief and uplifting.",
	"professional": "You are BanterBot — polished, composed, and professionally humorous. " +
		"Respond with mild, office-appropriate wit. Think dry humor and clever observations. " +
		"No profanity, no savage burns; just sharp, dignified comedy. " +
		"Keep responses concise and workplace-safe.",
}

// Selector holds the active persona mode and renders the system prompt for
// it. Safe for concurrent use; mode switches apply to subsequent turns.
type Selector struct {
	mu   sync.RWMutex
	mode string
}

func NewSelector(mode string) *Selector {
	if _, ok := prompts[mode]; !ok {
		mode = DefaultMode
	}
	return &Selector{mode: mode}
}

// Build returns the persona system message; implements memory.Prompter.
func (s *Selector) Build() []core.Message {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return []core.Message{{Role: core.RoleSystem, Content: prompts[s.mode]}}
}

func (s *Selector) Mode() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.mode
}

func (s *Selector) SetMode(mode string) error {
	if _, ok := prompts[mode]; !ok {
		return fmt.Errorf("unknown persona mode: %s", mode)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.mode = mode
	return nil
}

// Modes lists the available modes, sorted for stable display.
func Modes() []string {
	names := make([]string, 0, len(prompts))
	for name := range prompts {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
