// Package windowing bounds the reconciliation transcript sent with each
// LLM classification call. The transcript is text-only (tool results are
// never fed back), so a message is the atomic unit.
package windowing

import (
	"unicode/utf8"

	"github.com/anthropics/anthropic-sdk-go"
)

// TokenCounter estimates input-token cost for a message.
type TokenCounter interface {
	CountMessage(m anthropic.MessageParam) int
}

// HeuristicCounter is the default deterministic estimator: rune count of
// each text block plus a small per-block overhead for formatting. Non-text
// blocks contribute overhead only.
type HeuristicCounter struct{}

// Fixed per-block overhead for deterministic counts; changing this requires updating the guard test.
const blockOverhead = 4

func (HeuristicCounter) CountMessage(m anthropic.MessageParam) int {
	total := 0
	for _, blk := range m.Content {
		if tb := blk.OfText; tb != nil {
			total += utf8.RuneCountInString(tb.Text) + blockOverhead
			continue
		}
		total += blockOverhead
	}
	return total
}
