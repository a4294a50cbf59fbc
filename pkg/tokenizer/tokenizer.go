// Package tokenizer provides token-cost estimation with two interchangeable
// strategies: exact subword counting via tiktoken, or a word-count
// approximation when the encoding cannot be loaded. Callers depend only on
// the Estimator interface.
package tokenizer

import (
	"context"
	"fmt"
	"strings"

	"github.com/pkoukk/tiktoken-go"
	"github.com/sandevgo/banterbot/pkg/log"
)

const encodingName = "cl100k_base"

// wordTokenRatio approximates tokens per whitespace-separated word for the
// fallback strategy.
const wordTokenRatio = 1.3

// Estimator converts text to a non-negative integer token cost.
type Estimator interface {
	Cost(text string) int
}

// Tiktoken counts exact subword tokens using the cl100k_base encoding.
type Tiktoken struct {
	enc *tiktoken.Tiktoken
}

func NewTiktoken() (*Tiktoken, error) {
	enc, err := tiktoken.GetEncoding(encodingName)
	if err != nil {
		return nil, fmt.Errorf("load %s encoding: %w", encodingName, err)
	}
	return &Tiktoken{enc: enc}, nil
}

func (t *Tiktoken) Cost(text string) int {
	return len(t.enc.Encode(text, nil, nil))
}

// WordCount approximates token cost from the whitespace word count. It is
// deterministic and needs no encoding data.
type WordCount struct{}

func (WordCount) Cost(text string) int {
	words := len(strings.Fields(text))
	return int(float64(words)*wordTokenRatio + 0.5)
}

// New returns the exact estimator when the encoding is available, falling
// back to the word-count approximation otherwise. The choice is made once at
// construction; consumers never see which strategy is behind the interface.
func New(ctx context.Context) Estimator {
	exact, err := NewTiktoken()
	if err != nil {
		log.FromCtx(ctx).Warn().Err(err).
			Msg("tiktoken unavailable, using word-count token approximation")
		return WordCount{}
	}
	return exact
}
