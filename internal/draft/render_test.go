package draft_test

import (
	"strings"
	"testing"

	"github.com/petasbytes/standup-agent/internal/draft"
)

func TestRender_FixedHeadings(t *testing.T) {
	d := draft.Draft{
		Accomplishments: []string{"- [Fix login bug](https://example.com/pull/2)"},
	}
	got := draft.Render(d)
	want := "# Standup Summary\n" +
		"## Accomplishments\n" +
		"- [Fix login bug](https://example.com/pull/2)\n" +
		"## Blockers\n" +
		"## Plans\n"
	if got != want {
		t.Fatalf("render mismatch:\ngot:\n%s\nwant:\n%s", got, want)
	}
}

func TestRender_EmptyDraftStillHasThreeSections(t *testing.T) {
	got := draft.Render(draft.Draft{})
	for _, h := range []string{"# Standup Summary", "## Accomplishments", "## Blockers", "## Plans"} {
		if !strings.Contains(got, h) {
			t.Fatalf("missing heading %q in:\n%s", h, got)
		}
	}
}

func TestRenderFinal_Marker(t *testing.T) {
	got := draft.RenderFinal(draft.Draft{Plans: []string{"- write docs"}})
	if !strings.HasPrefix(got, "FINAL STANDUP:\n") {
		t.Fatalf("missing final marker prefix:\n%s", got)
	}
	if !strings.Contains(got, "- write docs") {
		t.Fatalf("final output lost content:\n%s", got)
	}
}
