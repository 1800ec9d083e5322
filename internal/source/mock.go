package source

import (
	"context"
	"time"

	"github.com/petasbytes/standup-agent/internal/activity"
)

// Mock is a canned offline source: a realistic day of activity so the whole
// cycle can run without network access or tokens.
type Mock struct{}

func (Mock) Name() string { return "mock" }

func (Mock) Fetch(_ context.Context, _ string, since time.Time) ([]activity.RawEntry, error) {
	recent := since.Add(2 * time.Hour)
	return []activity.RawEntry{
		{
			Source:    activity.SourceCodeHost,
			Title:     "Bugfix: Handle edge case",
			URL:       "https://github.com/example/test-repo/pull/41",
			State:     "closed",
			UpdatedAt: recent,
		},
		{
			Source:    activity.SourceCodeHost,
			Title:     "Feature: Add XYZ functionality",
			URL:       "https://github.com/example/test-repo/pull/42",
			State:     "open",
			UpdatedAt: recent,
		},
		{
			Source:    activity.SourceCodeHost,
			Title:     "Performance degradation in production",
			URL:       "https://github.com/example/test-repo/issues/99",
			State:     "open",
			UpdatedAt: recent,
		},
		{
			Source:    activity.SourceTracker,
			Title:     "Waiting on infra team for staging database",
			URL:       "https://linear.app/issue/ENG-13",
			State:     "Blocked",
			UpdatedAt: recent,
		},
	}, nil
}
