package memory

import (
	"github.com/sandevgo/banterbot/internal/core"
)

const (
	// protectedTail is the number of most recent messages exempt from
	// importance-based eviction.
	protectedTail = 2

	// minRetained is the floor below which trimming never shrinks the
	// history, even when the budget cannot be met.
	minRetained = 2
)

// Trim returns an order-preserving subsequence of messages whose total cost
// fits maxTokens, removing low-importance content first while keeping the
// most recent exchange intact.
//
// Policy, in priority order: the trailing two messages are never removed by
// importance-based eviction; if everything already fits, the input is
// returned unchanged; otherwise the lowest-importance message outside the
// protected tail goes first (ties broken by oldest sequence), taking its
// same-turn counterpart with it so no half-exchange is left dangling; the
// result never shrinks below two messages; if the budget is still exceeded
// once only high-importance content remains, messages are dropped oldest
// first regardless of score. Presence wins over strict budget compliance
// below the retention floor, so maxTokens == 0 is a valid input.
func Trim(messages []core.ScoredMessage, maxTokens int, estimator core.CostEstimator) ([]core.ScoredMessage, error) {
	if maxTokens < 0 {
		return nil, core.ErrBudget
	}

	working := make([]core.ScoredMessage, len(messages))
	copy(working, messages)
	if len(working) == 0 {
		return working, nil
	}

	if totalCost(working, estimator) <= maxTokens {
		return working, nil
	}

	for totalCost(working, estimator) > maxTokens && len(working) > minRetained {
		limit := len(working) - protectedTail
		if limit <= 0 {
			break
		}

		drop := 0
		for i := 1; i < limit; i++ {
			if working[i].Importance < working[drop].Importance ||
				(working[i].Importance == working[drop].Importance && working[i].Sequence < working[drop].Sequence) {
				drop = i
			}
		}

		if pair, ok := pairedIndex(working, drop, limit); ok && len(working) > minRetained+1 {
			// Remove the higher index first so the lower one stays valid.
			lo, hi := drop, pair
			if lo > hi {
				lo, hi = hi, lo
			}
			working = append(working[:hi], working[hi+1:]...)
			working = append(working[:lo], working[lo+1:]...)
		} else {
			working = append(working[:drop], working[drop+1:]...)
		}
	}

	// Recency fallback: importance-based eviction is exhausted but the
	// budget is still blown. Drop from the front until it fits or only the
	// protected tail remains.
	for totalCost(working, estimator) > maxTokens && len(working) > minRetained {
		working = working[1:]
	}

	return working, nil
}

// pairedIndex finds the adjacent same-turn counterpart of working[idx], if
// one exists outside the protected tail.
func pairedIndex(working []core.ScoredMessage, idx, limit int) (int, bool) {
	for _, cand := range []int{idx + 1, idx - 1} {
		if cand < 0 || cand >= limit {
			continue
		}
		if working[cand].Turn == working[idx].Turn && working[cand].Role != working[idx].Role {
			return cand, true
		}
	}
	return 0, false
}

func totalCost(messages []core.ScoredMessage, estimator core.CostEstimator) int {
	total := 0
	for _, m := range messages {
		total += estimator.Cost(m.Content)
	}
	return total
}
