package memory

import "regexp"

// Rules is the scoring policy as data: every pattern and keyword table the
// scorer consults lives here, so the policy can be tested apart from the
// scoring loop and swapped without touching it.
type Rules struct {
	SkillRules    []DisclosureRule
	WeaknessRules []DisclosureRule
	ThemeKeywords map[string][]string
	EmotionWords  map[string]struct{}
	TraitSignals  []TraitSignal
	FillerTokens  map[string]struct{}

	// TrivialWordMax is the word count at or below which a message is
	// considered trivial. EngagementWordMin is the assistant-reply word count
	// above which the engagement bonus applies.
	TrivialWordMax    int
	EngagementWordMin int
}

// DisclosureRule awards Weight when Pattern matches the lowercased message.
type DisclosureRule struct {
	Name    string
	Pattern *regexp.Regexp
	Weight  int
}

// TraitSignal infers a personality trait when any of its phrases occur.
type TraitSignal struct {
	Trait   string
	Phrases []string
}

// DefaultRules returns the built-in scoring policy.
func DefaultRules() Rules {
	return Rules{
		SkillRules: []DisclosureRule{
			{
				Name:    "first_person_claim",
				Pattern: regexp.MustCompile(`\bi (?:am|can|know|built|made|work|use|code|wrote|designed|developed|lead|created)\b`),
				Weight:  3,
			},
			{
				Name:    "possessive_craft",
				Pattern: regexp.MustCompile(`\bmy (?:project|work|job|startup|company|code|app|bot|api|skill)\b`),
				Weight:  3,
			},
			{
				Name:    "occupation_claim",
				Pattern: regexp.MustCompile(`\bi(?:'m| am) (?:a|an) \w+`),
				Weight:  3,
			},
			{
				Name:    "title_claim",
				Pattern: regexp.MustCompile(`\b(?:senior|lead|principal|staff|chief) (?:\w+ )?(?:engineer|developer|architect|designer|scientist|manager)\b`),
				Weight:  3,
			},
		},
		WeaknessRules: []DisclosureRule{
			{
				Name:    "first_person_failure",
				Pattern: regexp.MustCompile(`\bi (?:can'?t|couldn'?t|don'?t know|failed|forgot|broke|messed|struggle|suck|don'?t understand)\b`),
				Weight:  3,
			},
			{
				Name:    "possessive_trouble",
				Pattern: regexp.MustCompile(`\bmy (?:bug|error|mistake|issue|problem)\b`),
				Weight:  3,
			},
			{
				Name:    "confused_why",
				Pattern: regexp.MustCompile(`\bwhy (?:doesn'?t|isn'?t|won'?t|can'?t)\b`),
				Weight:  3,
			},
		},
		ThemeKeywords: map[string][]string{
			"coding":        {"code", "python", "javascript", "bug", "git", "commit", "deploy", "debug", "function", "loop", "error", "exception", "stack", "api", "sql", "framework"},
			"career":        {"job", "interview", "resume", "cv", "salary", "promotion", "manager", "startup", "intern", "hire", "fired", "engineer", "developer"},
			"relationships": {"girlfriend", "boyfriend", "date", "dating", "crush", "friend", "family", "mom", "dad", "ex"},
			"fitness":       {"gym", "workout", "diet", "weight", "run", "exercise", "fat", "muscle", "protein"},
			"gaming":        {"game", "gamer", "play", "level", "rank", "noob", "pvp", "fps", "rpg", "stream"},
			"ai_ml":         {"ai", "ml", "model", "neural", "gpt", "llm", "dataset", "train", "loss", "accuracy", "embedding"},
			"college":       {"college", "university", "degree", "exam", "assignment", "professor", "student", "gpa", "lecture"},
		},
		EmotionWords: wordSet(
			"hate", "love", "scared", "proud", "angry", "excited", "sad", "happy",
			"frustrated", "confused", "lost", "embarrassed", "awesome", "terrible",
			"horrible", "amazing", "disgusting", "jealous",
		),
		TraitSignals: []TraitSignal{
			{Trait: "overconfident", Phrases: []string{"obviously", "trust me", "i know best", "clearly", "of course i", "no one can"}},
			{Trait: "self_deprecating", Phrases: []string{"lol i", "haha i suck", "i know i'm bad", "don't roast me", "i'm the worst"}},
			{Trait: "curious", Phrases: []string{"how does", "why does", "can you explain", "what is", "what are", "how do i"}},
			{Trait: "defensive", Phrases: []string{"that's not fair", "actually i", "you're wrong", "not true", "stop roasting"}},
		},
		FillerTokens: wordSet(
			"ok", "okay", "k", "lol", "lmao", "haha", "hmm", "...", "yes", "no", "nice", "cool",
		),
		TrivialWordMax:    3,
		EngagementWordMin: 5,
	}
}

func wordSet(words ...string) map[string]struct{} {
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	return set
}
