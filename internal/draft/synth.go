package draft

import (
	"fmt"
	"strings"

	"github.com/petasbytes/standup-agent/internal/activity"
)

const verifyMarker = " [?]"

// FormatRecord renders a record as a markdown bullet: "- [title](url)" when a
// link exists, "- title" otherwise, with a trailing [?] marker for items
// whose provenance needs human verification.
func FormatRecord(r activity.Record) string {
	var b strings.Builder
	if r.URL != "" {
		fmt.Fprintf(&b, "- [%s](%s)", r.Title, r.URL)
	} else {
		fmt.Fprintf(&b, "- %s", r.Title)
	}
	if r.NeedsVerification {
		b.WriteString(verifyMarker)
	}
	return b.String()
}

// FormatText renders free text (a human content update) as a plain bullet.
func FormatText(text string) string {
	return "- " + strings.TrimSpace(text)
}

// Synthesize merges records into an existing draft (pass the zero Draft to
// start fresh). Records are partitioned by category and appended to their
// section in input order; a record whose normalized text or URL already
// appears in the section is skipped. Existing bullets are never reordered or
// removed, so synthesizing the same records twice yields the same draft.
func Synthesize(existing Draft, records []activity.Record) Draft {
	d := existing.clone()
	for _, r := range records {
		d = merge(d, SectionForCategory(r.Category), FormatRecord(r), r.URL)
	}
	return d
}

// Merge appends one bullet to a section under the same duplicate-suppression
// rules as Synthesize. Used by the reconciliation loop for human updates.
func Merge(d Draft, s Section, bullet string) Draft {
	_, url, _ := ParseBullet(bullet)
	return merge(d.clone(), s, bullet, url)
}

func merge(d Draft, s Section, bullet, url string) Draft {
	existing := d.Bullets(s)
	norm := NormalizeText(bullet)
	for _, b := range existing {
		if NormalizeText(b) == norm {
			return d
		}
		if url != "" {
			if _, u, _ := ParseBullet(b); u == url {
				return d
			}
		}
	}
	d.setBullets(s, append(existing, bullet))
	return d
}

// ParseBullet splits a rendered bullet back into title, url, and the
// verification flag. Plain bullets return the text as title with an empty
// url. Used when persisting a finalized draft and when matching carried
// items against fresh links.
func ParseBullet(bullet string) (title, url string, needsVerification bool) {
	s := strings.TrimSpace(bullet)
	s = strings.TrimPrefix(s, "- ")
	if strings.HasSuffix(s, strings.TrimSpace(verifyMarker)) {
		needsVerification = true
		s = strings.TrimSpace(strings.TrimSuffix(s, strings.TrimSpace(verifyMarker)))
	}
	// Markdown link form: [title](url)
	if strings.HasPrefix(s, "[") {
		if close := strings.Index(s, "]("); close > 0 && strings.HasSuffix(s, ")") {
			return s[1:close], s[close+2 : len(s)-1], needsVerification
		}
	}
	return s, "", needsVerification
}
