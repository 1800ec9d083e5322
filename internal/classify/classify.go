// Package classify turns one free-text human utterance into a structured
// pending update: an approval signal, or a content update aimed at one of
// the three draft sections.
//
// Two implementations share the Classifier contract: Rules (deterministic,
// offline) and LLM (Anthropic-backed, falling back to Rules on any failure).
// Approval detection is always the rule layer's call, so the terminal
// transition stays deterministic and testable.
package classify

import (
	"context"
	"regexp"
	"strings"

	"github.com/petasbytes/standup-agent/internal/draft"
)

// Kind discriminates the two utterance outcomes.
type Kind string

const (
	KindApproval      Kind = "approval"
	KindContentUpdate Kind = "content_update"
)

// Update is the structured result of classifying one utterance. It is
// applied to the draft and then discarded; nothing retains it.
type Update struct {
	Kind    Kind
	Section draft.Section // content updates only
	Text    string        // content updates only; cleaned, non-empty
}

// Classifier decides what one utterance means against the current draft.
// ok=false means the utterance produced nothing actionable (empty after
// cleaning); the loop re-prompts and the draft is untouched.
type Classifier interface {
	Classify(ctx context.Context, utterance string, d draft.Draft) (upd Update, ok bool, err error)
}

// approvals is the explicit affirmative-intent allow-list, matched against
// the whole normalized utterance.
var approvals = map[string]bool{
	"looks good":        true,
	"looks good to me":  true,
	"lgtm":              true,
	"yes":               true,
	"yep":               true,
	"yeah":              true,
	"ok":                true,
	"okay":              true,
	"sure":              true,
	"approve":           true,
	"approved":          true,
	"ship it":           true,
	"that's everything": true,
	"thats everything":  true,
	"that's all":        true,
	"thats all":         true,
	"all good":          true,
	"perfect":           true,
	"good to go":        true,
	"done":              true,
	"nothing else":      true,
	"no changes":        true,
}

var approvalEmoji = map[string]bool{
	"\U0001F44D": true, // thumbs up
	"✅":     true, // check mark
	"\U0001F680": true, // rocket
}

// metaPrefixes strip imperative/meta phrasing from the front of a content
// update. Section words inside the prefix also decide the target section.
var metaPrefixes = []*regexp.Regexp{
	regexp.MustCompile(`(?i)^please\s+`),
	regexp.MustCompile(`(?i)^(add|include|put|record)\s+(a|an|the)?\s*(new\s+)?(blocker|plan|accomplishment|item|note)?\s*[:,-]?\s*`),
	regexp.MustCompile(`(?i)^note\s+that\b\s*`),
	regexp.MustCompile(`(?i)^note\s*[:,-]\s*`),
	regexp.MustCompile(`(?i)^also\s*[:,]?\s+`),
	regexp.MustCompile(`(?i)^and\s+`),
}

// Section cues, checked in priority order: blocker language is the most
// specific, accomplishment language next, plan language last.
var (
	blockerCues = []string{"blocker", "blocked", "waiting on", "waiting for", "stuck", "on hold"}
	doneCues    = []string{"accomplishment", "completed", "finished", "shipped", "merged", "done"}
	planCues    = []string{"plan", "next", "tomorrow", "will ", "going to", "todo", "to do"}
)

// Rules is the deterministic, dependency-free classifier.
type Rules struct{}

func (Rules) Classify(_ context.Context, utterance string, _ draft.Draft) (Update, bool, error) {
	return classifyRules(utterance)
}

func classifyRules(utterance string) (Update, bool, error) {
	trimmed := strings.TrimSpace(utterance)
	if trimmed == "" {
		return Update{}, false, nil
	}

	if isApproval(trimmed) {
		return Update{Kind: KindApproval}, true, nil
	}

	section, _ := targetSection(trimmed)
	cleaned := cleanText(trimmed)
	if cleaned == "" {
		// Nothing left after stripping meta phrasing: no-op, re-prompt.
		return Update{}, false, nil
	}
	return Update{Kind: KindContentUpdate, Section: section, Text: cleaned}, true, nil
}

// SectionIsExplicit reports whether the utterance carries a section cue.
// The LLM classifier uses it to decide when the model's judgement is needed.
func SectionIsExplicit(utterance string) bool {
	_, explicit := targetSection(strings.TrimSpace(utterance))
	return explicit
}

func isApproval(trimmed string) bool {
	if approvalEmoji[trimmed] {
		return true
	}
	norm := strings.ToLower(trimmed)
	norm = strings.TrimRight(norm, ".!? ")
	norm = strings.Join(strings.Fields(norm), " ")
	return approvals[norm]
}

// targetSection scans for cue keywords. Without a cue the update defaults
// to plans, the least destructive section for an ambiguous note.
func targetSection(trimmed string) (draft.Section, bool) {
	lower := strings.ToLower(trimmed)
	for _, cue := range blockerCues {
		if strings.Contains(lower, cue) {
			return draft.SectionBlockers, true
		}
	}
	for _, cue := range doneCues {
		if strings.Contains(lower, cue) {
			return draft.SectionAccomplishments, true
		}
	}
	for _, cue := range planCues {
		if strings.Contains(lower, cue) {
			return draft.SectionPlans, true
		}
	}
	return draft.SectionPlans, false
}

func cleanText(trimmed string) string {
	s := trimmed
	for _, re := range metaPrefixes {
		s = re.ReplaceAllString(s, "")
	}
	s = strings.Trim(s, " :,-")
	return strings.TrimSpace(s)
}
