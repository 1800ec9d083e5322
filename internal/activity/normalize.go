package activity

import "strings"

// State names that resolve to a category regardless of other fields.
// Comparison is case-insensitive after trimming.
var (
	completedStates = map[string]bool{
		"merged":    true,
		"closed":    true,
		"done":      true,
		"completed": true,
	}
	blockedStates = map[string]bool{
		"blocked": true,
		"stalled": true,
		"on hold": true,
		"on-hold": true,
	}
	openStates = map[string]bool{
		"open":        true,
		"in progress": true,
		"in_progress": true,
		"started":     true,
		"in review":   true,
		"todo":        true,
	}
)

// Normalize maps raw source entries onto canonical records.
//
// Pure transform, fails closed: entries that cannot be categorised, entries
// without a title, and code-host/tracker entries without a URL are silently
// dropped. Upstream completeness is not this layer's responsibility.
func Normalize(entries []RawEntry) []Record {
	out := make([]Record, 0, len(entries))
	for _, e := range entries {
		r, ok := normalizeOne(e)
		if !ok {
			continue
		}
		out = append(out, r)
	}
	return out
}

func normalizeOne(e RawEntry) (Record, bool) {
	if strings.TrimSpace(e.Title) == "" {
		return Record{}, false
	}
	// Fresh records must carry a link; memory-carried items may not.
	if (e.Source == SourceCodeHost || e.Source == SourceTracker) && e.URL == "" {
		return Record{}, false
	}

	cat, ok := categorise(e)
	if !ok {
		return Record{}, false
	}
	return Record{
		Title:     strings.TrimSpace(e.Title),
		URL:       e.URL,
		Source:    e.Source,
		Category:  cat,
		Timestamp: e.UpdatedAt,
	}, true
}

func categorise(e RawEntry) (Category, bool) {
	state := strings.ToLower(strings.TrimSpace(e.State))
	switch {
	case e.Merged, e.Completed, completedStates[state]:
		return CategoryCompleted, true
	case blockedStates[state]:
		return CategoryBlocked, true
	case openStates[state] && !e.UpdatedAt.IsZero():
		// Open without a recent-activity timestamp is ambiguous: the entry
		// may be arbitrarily stale, so it is dropped rather than guessed.
		return CategoryInProgress, true
	}
	return "", false
}
