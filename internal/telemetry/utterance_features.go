package telemetry

import (
	"context"

	"github.com/petasbytes/standup-agent/internal/metrics"
)

// EmitUtteranceFeatures records size features of one human utterance
// alongside its cycle. The raw text itself is never persisted.
func EmitUtteranceFeatures(ctx context.Context, utterance string) {
	if !ObserveEnabled() {
		return
	}
	cycleID, _ := CycleIDFromContext(ctx)
	f := metrics.CountFeatures(utterance)
	Emit("utterance_features", map[string]any{
		"cycle_id":         cycleID,
		"features_version": "1",
		"utterance": map[string]any{
			"bytes": f.Bytes,
			"runes": f.Runes,
			"words": f.Words,
			"lines": f.Lines,
		},
	})
}
