package memory

import (
	"strings"
	"testing"

	"github.com/sandevgo/banterbot/internal/core"
)

func TestFormatSnippet_GatedUntilSecondTurn(t *testing.T) {
	profile := core.NewProfile()
	profile.Skills = []string{"I'm a senior engineer"}
	profile.TurnCount = 1

	if got := FormatSnippet(profile); got != "" {
		t.Errorf("expected empty snippet on first turn, got %q", got)
	}
}

func TestFormatSnippet_NilProfile(t *testing.T) {
	if got := FormatSnippet(nil); got != "" {
		t.Errorf("expected empty snippet for nil profile, got %q", got)
	}
}

func TestFormatSnippet_EmptyProfilePastGate(t *testing.T) {
	profile := core.NewProfile()
	profile.TurnCount = 5

	if got := FormatSnippet(profile); got != "" {
		t.Errorf("expected empty snippet for empty profile, got %q", got)
	}
}

func TestFormatSnippet_RendersAllSections(t *testing.T) {
	profile := core.NewProfile()
	profile.TurnCount = 4
	profile.Skills = []string{"I'm a senior engineer"}
	profile.Weaknesses = []string{"i can't center a div"}
	profile.Themes = map[string]int{"coding": 3, "gaming": 1}
	profile.Traits = []string{"curious"}

	got := FormatSnippet(profile)

	for _, want := range []string{
		"[USER PROFILE",
		"[/USER PROFILE]",
		"Claims to be good at: I'm a senior engineer",
		"Has revealed weaknesses / slip-ups: i can't center a div",
		"Recurring topics: coding, gaming",
		"Personality signals: curious",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("snippet missing %q:\n%s", want, got)
		}
	}
}

func TestFormatSnippet_KeepsMostRecentEntries(t *testing.T) {
	profile := core.NewProfile()
	profile.TurnCount = 4
	profile.Skills = []string{"first", "second", "third", "fourth", "fifth"}

	got := FormatSnippet(profile)

	if strings.Contains(got, "first") || strings.Contains(got, "second") {
		t.Errorf("snippet should drop oldest skills:\n%s", got)
	}
	for _, want := range []string{"third", "fourth", "fifth"} {
		if !strings.Contains(got, want) {
			t.Errorf("snippet missing recent skill %q:\n%s", want, got)
		}
	}
}

func TestTopThemes_OrderAndLimit(t *testing.T) {
	themes := map[string]int{
		"coding":  5,
		"career":  5,
		"gaming":  9,
		"fitness": 1,
	}

	got := topThemes(themes, 3)

	want := []string{"gaming", "career", "coding"}
	if len(got) != len(want) {
		t.Fatalf("len = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("topThemes[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}
