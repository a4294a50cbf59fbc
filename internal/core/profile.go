package core

// Profile is the accumulated per-session user model the scorer maintains.
// It is a plain value passed into every scoring call; nothing in the core
// holds it as ambient state, so independent sessions can run concurrently.
type Profile struct {
	Skills     []string       `json:"skills"`
	Weaknesses []string       `json:"weaknesses"`
	Themes     map[string]int `json:"themes"`
	Traits     []string       `json:"traits"`
	TurnCount  int            `json:"turn_count"`
}

func NewProfile() *Profile {
	return &Profile{
		Themes: make(map[string]int),
	}
}

// Reset wipes all accumulated signal. Called on explicit session clear.
func (p *Profile) Reset() {
	p.Skills = nil
	p.Weaknesses = nil
	p.Themes = make(map[string]int)
	p.Traits = nil
	p.TurnCount = 0
}
