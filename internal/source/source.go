// Package source fetches recent activity from the external trackers and
// shapes it into raw entries for the normalizer. Adapters impose no contract
// on upstream beyond "resolves to title, optional link, optional state,
// optional timestamp".
package source

import (
	"context"
	"time"

	"github.com/petasbytes/standup-agent/internal/activity"
)

// Source produces raw activity entries for one external system.
type Source interface {
	Name() string
	Fetch(ctx context.Context, user string, since time.Time) ([]activity.RawEntry, error)
}
