package activity_test

import (
	"testing"
	"time"

	"github.com/petasbytes/standup-agent/internal/activity"
)

var now = time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC)

func TestNormalize_CategoryMapping(t *testing.T) {
	cases := []struct {
		name string
		in   activity.RawEntry
		want activity.Category
	}{
		{
			name: "merged pr is completed",
			in:   activity.RawEntry{Source: activity.SourceCodeHost, Title: "Fix login bug", URL: "https://example.com/pull/2", Merged: true},
			want: activity.CategoryCompleted,
		},
		{
			name: "closed state is completed",
			in:   activity.RawEntry{Source: activity.SourceCodeHost, Title: "Handle edge case", URL: "https://example.com/pull/41", State: "closed"},
			want: activity.CategoryCompleted,
		},
		{
			name: "tracker completedAt is completed",
			in:   activity.RawEntry{Source: activity.SourceTracker, Title: "ENG-12", URL: "https://linear.app/issue/ENG-12", Completed: true, State: "Done"},
			want: activity.CategoryCompleted,
		},
		{
			name: "blocked state",
			in:   activity.RawEntry{Source: activity.SourceTracker, Title: "ENG-13", URL: "https://linear.app/issue/ENG-13", State: "Blocked"},
			want: activity.CategoryBlocked,
		},
		{
			name: "on hold state is blocked",
			in:   activity.RawEntry{Source: activity.SourceTracker, Title: "ENG-14", URL: "https://linear.app/issue/ENG-14", State: "On Hold"},
			want: activity.CategoryBlocked,
		},
		{
			name: "open with recent activity is in progress",
			in:   activity.RawEntry{Source: activity.SourceCodeHost, Title: "Add XYZ", URL: "https://example.com/pull/42", State: "open", UpdatedAt: now},
			want: activity.CategoryInProgress,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			recs := activity.Normalize([]activity.RawEntry{tc.in})
			if len(recs) != 1 {
				t.Fatalf("expected 1 record, got %d", len(recs))
			}
			if recs[0].Category != tc.want {
				t.Fatalf("category: got %q want %q", recs[0].Category, tc.want)
			}
		})
	}
}

func TestNormalize_FailsClosed(t *testing.T) {
	entries := []activity.RawEntry{
		// No state, no completion markers: undeterminable, dropped.
		{Source: activity.SourceCodeHost, Title: "Mystery item", URL: "https://example.com/1"},
		// Open but without a recent-activity timestamp: dropped.
		{Source: activity.SourceCodeHost, Title: "Stale item", URL: "https://example.com/2", State: "open"},
		// Missing title: dropped.
		{Source: activity.SourceCodeHost, URL: "https://example.com/3", State: "closed"},
		// Fresh source without a URL: violates the link invariant, dropped.
		{Source: activity.SourceTracker, Title: "No link", State: "closed"},
	}
	if got := activity.Normalize(entries); len(got) != 0 {
		t.Fatalf("expected all entries dropped, got %d records", len(got))
	}
}

func TestNormalize_DropsSilently_KeepsOthers(t *testing.T) {
	entries := []activity.RawEntry{
		{Source: activity.SourceCodeHost, Title: "Undeterminable", URL: "https://example.com/1"},
		{Source: activity.SourceCodeHost, Title: "Fix login bug", URL: "https://example.com/pull/2", Merged: true},
	}
	recs := activity.Normalize(entries)
	if len(recs) != 1 {
		t.Fatalf("expected 1 record, got %d", len(recs))
	}
	if recs[0].Title != "Fix login bug" {
		t.Fatalf("kept wrong record: %+v", recs[0])
	}
}

func TestNormalize_TrimsTitle(t *testing.T) {
	recs := activity.Normalize([]activity.RawEntry{
		{Source: activity.SourceCodeHost, Title: "  Fix login bug  ", URL: "https://example.com/pull/2", State: "merged"},
	})
	if len(recs) != 1 || recs[0].Title != "Fix login bug" {
		t.Fatalf("got %+v", recs)
	}
}
