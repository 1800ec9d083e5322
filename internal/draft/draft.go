// Package draft holds the working standup document and the merge rules that
// keep it consistent: insertion order is preserved, duplicates (by normalized
// text or by link) are suppressed, and re-merging the same inputs is a no-op.
package draft

import (
	"strings"

	"github.com/petasbytes/standup-agent/internal/activity"
)

// Section names the three fixed parts of a standup document.
type Section string

const (
	SectionAccomplishments Section = "accomplishments"
	SectionBlockers        Section = "blockers"
	SectionPlans           Section = "plans"
)

// Draft is the working standup document: three ordered bullet lists.
// The zero value is a valid empty draft.
type Draft struct {
	Accomplishments []string
	Blockers        []string
	Plans           []string
}

// Bullets returns the bullet list for s. Unknown sections map to plans,
// matching the classifier's fallback.
func (d Draft) Bullets(s Section) []string {
	switch s {
	case SectionAccomplishments:
		return d.Accomplishments
	case SectionBlockers:
		return d.Blockers
	default:
		return d.Plans
	}
}

// clone returns a copy with freshly allocated slices so merges never alias
// the caller's draft.
func (d Draft) clone() Draft {
	return Draft{
		Accomplishments: append([]string(nil), d.Accomplishments...),
		Blockers:        append([]string(nil), d.Blockers...),
		Plans:           append([]string(nil), d.Plans...),
	}
}

func (d *Draft) setBullets(s Section, bullets []string) {
	switch s {
	case SectionAccomplishments:
		d.Accomplishments = bullets
	case SectionBlockers:
		d.Blockers = bullets
	default:
		d.Plans = bullets
	}
}

// SectionForCategory maps a record category onto its document section.
func SectionForCategory(c activity.Category) Section {
	switch c {
	case activity.CategoryCompleted:
		return SectionAccomplishments
	case activity.CategoryBlocked:
		return SectionBlockers
	default:
		return SectionPlans
	}
}

// NormalizeText collapses runs of whitespace so textual duplicate checks
// are stable against formatting noise.
func NormalizeText(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
