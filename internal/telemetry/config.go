// Package telemetry emits env-gated JSONL events describing a standup cycle:
// source fetches, synthesis, classification, and loop transitions.
package telemetry

import "os"

var observeEnabled bool

func init() {
	// Read once at process start. Mid-run environment changes have no effect.
	observeEnabled = os.Getenv("STANDUP_OBSERVE_JSON") == "1"
}

// ObserveEnabled reports whether JSONL emission was enabled at startup.
func ObserveEnabled() bool {
	// Preserve startup-evaluated default, but allow tests to enable mid-run
	// via env override.
	if os.Getenv("STANDUP_OBSERVE_JSON") == "1" {
		return true
	}
	return observeEnabled
}
