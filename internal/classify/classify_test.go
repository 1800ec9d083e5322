package classify_test

import (
	"context"
	"testing"

	"github.com/petasbytes/standup-agent/internal/classify"
	"github.com/petasbytes/standup-agent/internal/draft"
)

func TestRules_ApprovalSet(t *testing.T) {
	approvals := []string{
		"looks good",
		"Looks good!",
		"LGTM",
		"yes",
		"okay",
		"that's everything",
		"ship it",
		"\U0001F44D",
		"✅",
		"all good.",
	}
	var r classify.Rules
	for _, u := range approvals {
		upd, ok, err := r.Classify(context.Background(), u, draft.Draft{})
		if err != nil || !ok {
			t.Fatalf("%q: got (ok=%v, err=%v)", u, ok, err)
		}
		if upd.Kind != classify.KindApproval {
			t.Fatalf("%q: expected approval, got %+v", u, upd)
		}
	}
}

func TestRules_NotApproval(t *testing.T) {
	// Content that merely contains affirmative words must not finalize.
	notApprovals := []string{
		"yes and also add a blocker: waiting on infra",
		"the perfect storm hit staging",
		"looks good except the blockers section",
	}
	var r classify.Rules
	for _, u := range notApprovals {
		upd, ok, err := r.Classify(context.Background(), u, draft.Draft{})
		if err != nil || !ok {
			t.Fatalf("%q: got (ok=%v, err=%v)", u, ok, err)
		}
		if upd.Kind != classify.KindContentUpdate {
			t.Fatalf("%q: must not classify as approval", u)
		}
	}
}

func TestRules_BlockerUtterance(t *testing.T) {
	var r classify.Rules
	upd, ok, err := r.Classify(context.Background(), "add a blocker: waiting for test computer", draft.Draft{})
	if err != nil || !ok {
		t.Fatalf("got (ok=%v, err=%v)", ok, err)
	}
	if upd.Kind != classify.KindContentUpdate || upd.Section != draft.SectionBlockers {
		t.Fatalf("wrong classification: %+v", upd)
	}
	if upd.Text != "waiting for test computer" {
		t.Fatalf("cleaning failed: %q", upd.Text)
	}
}

func TestRules_SectionCues(t *testing.T) {
	cases := []struct {
		utterance string
		section   draft.Section
	}{
		{"I'm blocked on the staging database", draft.SectionBlockers},
		{"finished the migration script", draft.SectionAccomplishments},
		{"note that I merged the retry fix", draft.SectionAccomplishments},
		{"plan to refactor the importer", draft.SectionPlans},
		{"next I'll look at the flaky tests", draft.SectionPlans},
	}
	var r classify.Rules
	for _, tc := range cases {
		upd, ok, err := r.Classify(context.Background(), tc.utterance, draft.Draft{})
		if err != nil || !ok {
			t.Fatalf("%q: got (ok=%v, err=%v)", tc.utterance, ok, err)
		}
		if upd.Section != tc.section {
			t.Fatalf("%q: got section %q want %q", tc.utterance, upd.Section, tc.section)
		}
	}
}

func TestRules_DefaultSectionIsPlans(t *testing.T) {
	var r classify.Rules
	upd, ok, err := r.Classify(context.Background(), "refactor the importer", draft.Draft{})
	if err != nil || !ok {
		t.Fatalf("got (ok=%v, err=%v)", ok, err)
	}
	if upd.Section != draft.SectionPlans {
		t.Fatalf("cue-less utterance must default to plans, got %q", upd.Section)
	}
}

func TestRules_PrefixStripping(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"note that the API is down", "the API is down"},
		{"also: update the importer docs", "update the importer docs"},
		{"please add a note: rotate the staging certs", "rotate the staging certs"},
		{"add an item: follow up with infra", "follow up with infra"},
	}
	var r classify.Rules
	for _, tc := range cases {
		upd, ok, err := r.Classify(context.Background(), tc.in, draft.Draft{})
		if err != nil || !ok {
			t.Fatalf("%q: got (ok=%v, err=%v)", tc.in, ok, err)
		}
		if upd.Text != tc.want {
			t.Fatalf("%q: got %q want %q", tc.in, upd.Text, tc.want)
		}
	}
}

func TestRules_EmptyAfterCleaningIsNoOp(t *testing.T) {
	var r classify.Rules
	for _, u := range []string{"", "   ", "add a blocker:", "note that"} {
		_, ok, err := r.Classify(context.Background(), u, draft.Draft{})
		if err != nil {
			t.Fatalf("%q: unexpected err: %v", u, err)
		}
		if ok {
			t.Fatalf("%q: expected no-op", u)
		}
	}
}

func TestSectionIsExplicit(t *testing.T) {
	if !classify.SectionIsExplicit("add a blocker: waiting on infra") {
		t.Fatal("blocker cue not detected")
	}
	if classify.SectionIsExplicit("refactor the importer") {
		t.Fatal("cue-less utterance reported explicit")
	}
}
