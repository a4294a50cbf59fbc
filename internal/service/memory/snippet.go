package memory

import (
	"sort"
	"strings"

	"github.com/sandevgo/banterbot/internal/core"
)

const (
	// snippetMinTurns gates personalization until enough signal has
	// accumulated; the first turn of a session always renders empty.
	snippetMinTurns = 2

	snippetMaxSkills = 3
	snippetMaxWeak   = 3
	snippetMaxThemes = 3
	snippetMaxTraits = 2
)

// FormatSnippet renders the profile as a compact bullet block for system
// prompt injection, so the model can personalize its banter without being
// told explicitly. Returns "" until the profile has seen at least two turns.
func FormatSnippet(profile *core.Profile) string {
	if profile == nil || profile.TurnCount < snippetMinTurns {
		return ""
	}

	var parts []string

	if len(profile.Skills) > 0 {
		recent := lastN(profile.Skills, snippetMaxSkills)
		parts = append(parts, "Claims to be good at: "+strings.Join(recent, "; "))
	}

	if len(profile.Weaknesses) > 0 {
		recent := lastN(profile.Weaknesses, snippetMaxWeak)
		parts = append(parts, "Has revealed weaknesses / slip-ups: "+strings.Join(recent, "; "))
	}

	if len(profile.Themes) > 0 {
		parts = append(parts, "Recurring topics: "+strings.Join(topThemes(profile.Themes, snippetMaxThemes), ", "))
	}

	if len(profile.Traits) > 0 {
		recent := lastN(profile.Traits, snippetMaxTraits)
		parts = append(parts, "Personality signals: "+strings.Join(recent, ", "))
	}

	if len(parts) == 0 {
		return ""
	}

	var sb strings.Builder
	sb.WriteString("[USER PROFILE — use this to personalise your banter]\n")
	for _, p := range parts {
		sb.WriteString("• ")
		sb.WriteString(p)
		sb.WriteString("\n")
	}
	sb.WriteString("[/USER PROFILE]")
	return sb.String()
}

// topThemes orders topics by occurrence count descending, ties alphabetical.
func topThemes(themes map[string]int, limit int) []string {
	names := make([]string, 0, len(themes))
	for name := range themes {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		if themes[names[i]] != themes[names[j]] {
			return themes[names[i]] > themes[names[j]]
		}
		return names[i] < names[j]
	})
	if len(names) > limit {
		names = names[:limit]
	}
	return names
}

func lastN(list []string, n int) []string {
	if len(list) <= n {
		return list
	}
	return list[len(list)-n:]
}
