package memory

import (
	"errors"
	"testing"

	"github.com/sandevgo/banterbot/internal/core"
)

// flatCost charges the same price for every message regardless of content.
type flatCost struct {
	per int
}

func (f flatCost) Cost(string) int { return f.per }

// exchange builds the user/assistant pair for one turn.
func exchange(turn int64, importance int, seqBase int64) []core.ScoredMessage {
	return []core.ScoredMessage{
		{Role: core.RoleUser, Content: "q", Importance: importance, Sequence: seqBase, Turn: turn},
		{Role: core.RoleAssistant, Content: "a", Importance: importance, Sequence: seqBase + 1, Turn: turn},
	}
}

func TestTrim_NegativeBudget(t *testing.T) {
	_, err := Trim(exchange(1, 5, 1), -1, flatCost{per: 1})
	if !errors.Is(err, core.ErrBudget) {
		t.Fatalf("error = %v, want ErrBudget", err)
	}
}

func TestTrim_EmptyInputZeroBudget(t *testing.T) {
	got, err := Trim(nil, 0, flatCost{per: 1})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("expected empty result, got %d messages", len(got))
	}
}

func TestTrim_FitsUntouched(t *testing.T) {
	var msgs []core.ScoredMessage
	msgs = append(msgs, exchange(1, 2, 1)...)
	msgs = append(msgs, exchange(2, 8, 3)...)

	got, err := Trim(msgs, 100, flatCost{per: 10})
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 4 {
		t.Fatalf("len = %d, want 4", len(got))
	}
	for i := range got {
		if got[i] != msgs[i] {
			t.Errorf("message %d changed: %+v != %+v", i, got[i], msgs[i])
		}
	}
}

func TestTrim_EvictsLowestImportancePairFirst(t *testing.T) {
	// Three exchanges with importance 1, 10, 9; budget forces one pair out.
	var msgs []core.ScoredMessage
	msgs = append(msgs, exchange(1, 1, 1)...)
	msgs = append(msgs, exchange(2, 10, 3)...)
	msgs = append(msgs, exchange(3, 9, 5)...)

	got, err := Trim(msgs, 40, flatCost{per: 10})
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 4 {
		t.Fatalf("len = %d, want 4", len(got))
	}
	for _, m := range got {
		if m.Importance == 1 {
			t.Fatalf("low-importance message survived: %+v", m)
		}
	}
	// Both halves of the evicted turn must be gone together.
	for _, m := range got {
		if m.Turn == 1 {
			t.Fatalf("half of evicted exchange left behind: %+v", m)
		}
	}
}

func TestTrim_ProtectedTailSurvivesLowImportance(t *testing.T) {
	// The most recent exchange scores lowest but sits in the protected tail.
	var msgs []core.ScoredMessage
	msgs = append(msgs, exchange(1, 5, 1)...)
	msgs = append(msgs, exchange(2, 1, 3)...)

	got, err := Trim(msgs, 20, flatCost{per: 10})
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}
	if got[0].Turn != 2 || got[1].Turn != 2 {
		t.Errorf("protected tail evicted, kept turns %d, %d", got[0].Turn, got[1].Turn)
	}
}

func TestTrim_NeverBelowFloor(t *testing.T) {
	msgs := exchange(1, 5, 1)

	got, err := Trim(msgs, 5, flatCost{per: 10})
	if err != nil {
		t.Fatal(err)
	}
	// Cost 20 against budget 5: presence beats strict compliance.
	if len(got) != minRetained {
		t.Errorf("len = %d, want floor %d", len(got), minRetained)
	}
}

func TestTrim_RecencyFallbackForUniformImportance(t *testing.T) {
	// All messages share max importance; only recency can break the tie.
	msgs := []core.ScoredMessage{
		{Role: core.RoleUser, Content: "a", Importance: 10, Sequence: 1, Turn: 1},
		{Role: core.RoleUser, Content: "b", Importance: 10, Sequence: 2, Turn: 2},
		{Role: core.RoleUser, Content: "c", Importance: 10, Sequence: 3, Turn: 3},
		{Role: core.RoleUser, Content: "d", Importance: 10, Sequence: 4, Turn: 4},
	}

	got, err := Trim(msgs, 20, flatCost{per: 10})
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}
	if got[0].Content != "c" || got[1].Content != "d" {
		t.Errorf("expected newest two kept, got %q, %q", got[0].Content, got[1].Content)
	}
}

func TestTrim_TiesBreakOldestFirst(t *testing.T) {
	msgs := []core.ScoredMessage{
		{Role: core.RoleUser, Content: "old", Importance: 2, Sequence: 1, Turn: 1},
		{Role: core.RoleUser, Content: "newer", Importance: 2, Sequence: 2, Turn: 2},
		{Role: core.RoleUser, Content: "keep1", Importance: 9, Sequence: 3, Turn: 3},
		{Role: core.RoleUser, Content: "keep2", Importance: 9, Sequence: 4, Turn: 4},
		{Role: core.RoleUser, Content: "keep3", Importance: 9, Sequence: 5, Turn: 5},
	}

	got, err := Trim(msgs, 40, flatCost{per: 10})
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 4 {
		t.Fatalf("len = %d, want 4", len(got))
	}
	if got[0].Content != "newer" {
		t.Errorf("expected oldest of tied pair evicted, first kept is %q", got[0].Content)
	}
}

func TestTrim_Deterministic(t *testing.T) {
	var msgs []core.ScoredMessage
	msgs = append(msgs, exchange(1, 3, 1)...)
	msgs = append(msgs, exchange(2, 3, 3)...)
	msgs = append(msgs, exchange(3, 7, 5)...)

	first, err := Trim(msgs, 40, flatCost{per: 10})
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 10; i++ {
		again, err := Trim(msgs, 40, flatCost{per: 10})
		if err != nil {
			t.Fatal(err)
		}
		if len(again) != len(first) {
			t.Fatalf("run %d: len %d != %d", i, len(again), len(first))
		}
		for j := range again {
			if again[j] != first[j] {
				t.Fatalf("run %d differs at %d: %+v != %+v", i, j, again[j], first[j])
			}
		}
	}
}

func TestTrim_InputNotMutated(t *testing.T) {
	var msgs []core.ScoredMessage
	msgs = append(msgs, exchange(1, 1, 1)...)
	msgs = append(msgs, exchange(2, 9, 3)...)
	before := make([]core.ScoredMessage, len(msgs))
	copy(before, msgs)

	if _, err := Trim(msgs, 20, flatCost{per: 10}); err != nil {
		t.Fatal(err)
	}

	for i := range msgs {
		if msgs[i] != before[i] {
			t.Errorf("input mutated at %d", i)
		}
	}
}
