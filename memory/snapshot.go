package memory

import (
	"encoding/json"
	"errors"
	"os"
)

// Status records how an item stood when its cycle was finalized.
type Status string

const (
	StatusResolved   Status = "resolved"
	StatusUnresolved Status = "unresolved"
	StatusUnknown    Status = "unknown"
)

// Item is one finalized standup bullet, split back into its parts.
type Item struct {
	Title  string `json:"title"`
	URL    string `json:"url,omitempty"`
	Status Status `json:"status"`
}

// Snapshot is a previous cycle's finalized draft plus per-item status.
// It is written once at finalization and only ever read afterwards.
type Snapshot struct {
	Date            string `json:"date"`
	Accomplishments []Item `json:"accomplishments"`
	Blockers        []Item `json:"blockers"`
	Plans           []Item `json:"plans"`
}

// LoadSnapshot reads a previous snapshot. A missing file is the normal first
// run and returns (nil, nil).
func LoadSnapshot(path string) (*Snapshot, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}
	var s Snapshot
	if err := json.Unmarshal(b, &s); err != nil {
		return nil, err
	}
	return &s, nil
}

func SaveSnapshot(path string, s *Snapshot) error {
	b, err := json.MarshalIndent(s, "", " ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, b, 0o644)
}
