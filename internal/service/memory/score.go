package memory

import (
	"regexp"
	"strings"

	"github.com/sandevgo/banterbot/internal/core"
)

const (
	scoreMax = 10

	// maxProfileEntries caps each profile list so a very long session cannot
	// grow the profile without bound; oldest entries rotate out.
	maxProfileEntries = 20

	// disclosureSnippetLen bounds the stored disclosure text.
	disclosureSnippetLen = 60

	excitableExclamations = 2
)

var wordPattern = regexp.MustCompile(`[a-z0-9']+`)

// Scorer rates a single user/assistant exchange for retention value and
// folds the observed signal into the session profile. One Scorer is safe to
// share across sessions; all mutable state lives in the Profile passed in.
type Scorer struct {
	rules Rules
}

func NewScorer(rules Rules) *Scorer {
	return &Scorer{rules: rules}
}

func NewDefaultScorer() *Scorer {
	return NewScorer(DefaultRules())
}

// Score returns an importance score in [0,10] for the exchange and updates
// profile in place. assistantText may be empty; it is consulted only for the
// engagement bonus. Empty or whitespace-only user text is valid and scores
// low, it is not an error. TurnCount increments exactly once per call.
func (s *Scorer) Score(userText, assistantText string, profile *core.Profile) int {
	if profile.Themes == nil {
		profile.Themes = make(map[string]int)
	}
	profile.TurnCount++

	text := strings.TrimSpace(userText)
	lower := strings.ToLower(text)
	words := wordPattern.FindAllString(lower, -1)

	wordSet := make(map[string]struct{}, len(words))
	for _, w := range words {
		wordSet[w] = struct{}{}
	}

	score := 0

	if hits := matchRules(s.rules.SkillRules, lower); hits > 0 {
		score += hits
		addProfileEntry(&profile.Skills, disclosureSnippet(text))
	}

	if hits := matchRules(s.rules.WeaknessRules, lower); hits > 0 {
		score += hits
		addProfileEntry(&profile.Weaknesses, disclosureSnippet(text))
	}

	// Themes: flat +1 per mentioned topic. Recurrence is tracked in the
	// profile counter, not double-rewarded in the score.
	for topic, keywords := range s.rules.ThemeKeywords {
		hits := 0
		for _, kw := range keywords {
			if _, ok := wordSet[kw]; ok {
				hits++
			}
		}
		if hits > 0 {
			profile.Themes[topic] += hits
			score++
		}
	}

	for _, w := range words {
		if _, ok := s.rules.EmotionWords[w]; ok {
			score += 2
			break
		}
	}

	for _, sig := range s.rules.TraitSignals {
		for _, phrase := range sig.Phrases {
			if strings.Contains(lower, phrase) {
				addProfileEntry(&profile.Traits, sig.Trait)
				score++
				break
			}
		}
	}
	if strings.Count(text, "!") >= excitableExclamations {
		addProfileEntry(&profile.Traits, "excitable")
		score++
	}

	if strings.HasSuffix(lower, "?") {
		score++
	}

	if len(words) <= s.rules.TrivialWordMax || fillerOnly(strings.Fields(lower), s.rules.FillerTokens) {
		score--
	}

	if assistantText != "" && len(strings.Fields(assistantText)) > s.rules.EngagementWordMin {
		score++
	}

	return clampScore(score)
}

// matchRules sums the weight of every rule whose pattern matches.
func matchRules(rules []DisclosureRule, lower string) int {
	total := 0
	for _, rule := range rules {
		if rule.Pattern.MatchString(lower) {
			total += rule.Weight
		}
	}
	return total
}

func fillerOnly(tokens []string, filler map[string]struct{}) bool {
	if len(tokens) == 0 {
		return true
	}
	for _, tok := range tokens {
		if _, ok := filler[tok]; !ok {
			return false
		}
	}
	return true
}

// disclosureSnippet bounds the literal disclosure text stored in the profile.
func disclosureSnippet(text string) string {
	runes := []rune(text)
	if len(runes) > disclosureSnippetLen {
		return strings.TrimSpace(string(runes[:disclosureSnippetLen]))
	}
	return text
}

// addProfileEntry appends entry with case-insensitive dedup, rotating out the
// oldest entry once the cap is reached.
func addProfileEntry(list *[]string, entry string) {
	if entry == "" {
		return
	}
	for _, existing := range *list {
		if strings.EqualFold(existing, entry) {
			return
		}
	}
	if len(*list) >= maxProfileEntries {
		*list = (*list)[1:]
	}
	*list = append(*list, entry)
}

func clampScore(score int) int {
	if score < 0 {
		return 0
	}
	if score > scoreMax {
		return scoreMax
	}
	return score
}
