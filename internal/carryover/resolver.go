// Package carryover re-derives which of yesterday's open items still need
// attention today. Items the fresh activity already covers are treated as
// resolved and dropped; the rest carry forward as follow-up candidates.
package carryover

import (
	"strings"

	"github.com/petasbytes/standup-agent/internal/activity"
	"github.com/petasbytes/standup-agent/memory"
)

// Resolve compares a previous snapshot's open blockers and plans against
// today's fresh records. Unmatched items come back as memory-sourced records
// tagged for verification; matched items are dropped. Absence of a snapshot
// is the normal first run and yields nil.
//
// Matching is by URL when both sides have one, otherwise by near-exact title
// (case-insensitive, whitespace-collapsed).
func Resolve(prev *memory.Snapshot, fresh []activity.Record) []activity.Record {
	if prev == nil {
		return nil
	}

	urls := make(map[string]bool, len(fresh))
	titles := make(map[string]bool, len(fresh))
	for _, r := range fresh {
		if r.URL != "" {
			urls[r.URL] = true
		}
		titles[matchKey(r.Title)] = true
	}

	var out []activity.Record
	carry := func(items []memory.Item, cat activity.Category) {
		for _, it := range items {
			if it.Status == memory.StatusResolved {
				continue
			}
			if it.URL != "" && urls[it.URL] {
				continue
			}
			if titles[matchKey(it.Title)] {
				continue
			}
			out = append(out, activity.Record{
				Title:             it.Title,
				URL:               it.URL, // may be empty; original link kept when it existed
				Source:            activity.SourceMemory,
				Category:          cat,
				NeedsVerification: true,
			})
		}
	}
	carry(prev.Blockers, activity.CategoryBlocked)
	carry(prev.Plans, activity.CategoryInProgress)
	return out
}

func matchKey(title string) string {
	return strings.ToLower(strings.Join(strings.Fields(title), " "))
}
