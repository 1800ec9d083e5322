// Package activity defines the canonical activity record and the normalizer
// that maps source-native payloads onto it.
//
// Categorisation model:
//   - merged/closed/completed states -> completed
//   - blocked/stalled/on-hold states -> blocked
//   - open states with recent activity -> in progress
//
// Entries whose category cannot be determined are dropped, not guessed.
package activity

import "time"

// Source identifies where a record was observed.
type Source string

const (
	SourceCodeHost Source = "code_host"
	SourceTracker  Source = "tracker"
	SourceMemory   Source = "memory"
)

// Category is the standup section a record belongs to.
type Category string

const (
	CategoryCompleted  Category = "completed"
	CategoryInProgress Category = "in_progress"
	CategoryBlocked    Category = "blocked"
)

// RawEntry is the loose shape source adapters hand to the normalizer.
// Only Title and Source are required; everything else is whatever the
// upstream API happened to provide.
type RawEntry struct {
	Source    Source
	Title     string
	URL       string
	State     string // source-native state name ("open", "Blocked", ...)
	Merged    bool
	Completed bool // e.g. tracker completedAt set
	UpdatedAt time.Time // zero when the source did not report one
}

// Record is one normalized unit of observed work.
type Record struct {
	Title             string
	URL               string
	Source            Source
	Category          Category
	Timestamp         time.Time // zero when unknown
	NeedsVerification bool
}
