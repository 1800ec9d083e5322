// Package loop drives one reconciliation cycle: present the draft, take one
// utterance, apply it, re-present, until the user explicitly approves.
package loop

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/petasbytes/standup-agent/internal/classify"
	"github.com/petasbytes/standup-agent/internal/draft"
	"github.com/petasbytes/standup-agent/internal/telemetry"
)

// Status is the terminal condition of a cycle.
type Status string

const (
	StatusFinalized Status = "finalized"
	// StatusAborted means the caller cancelled or the input closed; the
	// in-progress draft is discarded, nothing is finalized.
	StatusAborted Status = "aborted"
	// StatusIncomplete means the round cap was reached without approval.
	// Recoverable: the caller may start a new cycle.
	StatusIncomplete Status = "incomplete"
)

// CompletenessPrompt follows every intermediate draft presentation.
const CompletenessPrompt = "Anything to add or change? Reply \"looks good\" to finalize."

// Conversator supplies one utterance in response to a presented draft.
// Prompt blocks until the human replies, the context is cancelled, or the
// input source closes (io.EOF).
type Conversator interface {
	Prompt(ctx context.Context, presentation string) (string, error)
}

// Result is what one cycle produced. Draft is only meaningful when Status
// is StatusFinalized.
type Result struct {
	Draft  draft.Draft
	Status Status
	Rounds int
}

// Loop owns the mutable draft for the duration of one cycle.
type Loop struct {
	Classifier classify.Classifier
	Conv       Conversator
	// MaxRounds caps utterance rounds; <= 0 means unlimited.
	MaxRounds int
}

// Run executes the cycle. The draft is re-rendered and re-presented after
// every applied update; only an approval-classified utterance finalizes.
// Classifier errors degrade to a re-prompt, never to a lost cycle.
func (l *Loop) Run(ctx context.Context, d draft.Draft) (Result, error) {
	cycleID, _ := telemetry.CycleIDFromContext(ctx)
	rounds := 0
	for {
		if err := ctx.Err(); err != nil {
			telemetry.Emit("cycle_aborted", map[string]any{"cycle_id": cycleID, "rounds": rounds})
			return Result{Status: StatusAborted, Rounds: rounds}, nil
		}
		if l.MaxRounds > 0 && rounds >= l.MaxRounds {
			telemetry.Emit("cycle_incomplete", map[string]any{"cycle_id": cycleID, "rounds": rounds})
			return Result{Status: StatusIncomplete, Rounds: rounds}, nil
		}

		utterance, err := l.Conv.Prompt(ctx, draft.Render(d)+"\n"+CompletenessPrompt)
		if err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, context.Canceled) || ctx.Err() != nil {
				telemetry.Emit("cycle_aborted", map[string]any{"cycle_id": cycleID, "rounds": rounds})
				return Result{Status: StatusAborted, Rounds: rounds}, nil
			}
			return Result{Status: StatusAborted, Rounds: rounds}, fmt.Errorf("prompt: %w", err)
		}
		rounds++
		telemetry.EmitUtteranceFeatures(ctx, utterance)

		upd, ok, err := l.Classifier.Classify(ctx, utterance, d)
		if err != nil {
			// Ask again rather than dropping the cycle.
			telemetry.Emit("classify_error", map[string]any{"cycle_id": cycleID, "error": err.Error()})
			continue
		}
		if !ok {
			// Empty after cleaning: re-prompt, draft untouched.
			continue
		}
		telemetry.Emit("utterance_classified", map[string]any{
			"cycle_id": cycleID,
			"kind":     string(upd.Kind),
			"rounds":   rounds,
		})

		switch upd.Kind {
		case classify.KindApproval:
			telemetry.Emit("cycle_finalized", map[string]any{"cycle_id": cycleID, "rounds": rounds})
			return Result{Draft: d, Status: StatusFinalized, Rounds: rounds}, nil
		case classify.KindContentUpdate:
			d = draft.Merge(d, upd.Section, draft.FormatText(upd.Text))
			telemetry.Emit("draft_updated", map[string]any{
				"cycle_id": cycleID,
				"section":  string(upd.Section),
				"rounds":   rounds,
			})
		}
	}
}
