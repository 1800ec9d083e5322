package memory_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/petasbytes/standup-agent/memory"
)

func TestSnapshot_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "standup.json")

	in := &memory.Snapshot{
		Date: "2025-06-02",
		Accomplishments: []memory.Item{
			{Title: "Fix login bug", URL: "https://example.com/pull/2", Status: memory.StatusResolved},
		},
		Blockers: []memory.Item{
			{Title: "API Endpoint Unavailable", Status: memory.StatusUnresolved},
		},
		Plans: []memory.Item{
			{Title: "Add XYZ", URL: "https://example.com/pull/42", Status: memory.StatusUnresolved},
		},
	}
	if err := memory.SaveSnapshot(p, in); err != nil {
		t.Fatalf("save: %v", err)
	}

	out, err := memory.LoadSnapshot(p)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if out == nil {
		t.Fatal("expected snapshot, got nil")
	}
	if out.Date != in.Date {
		t.Fatalf("date: got %q want %q", out.Date, in.Date)
	}
	if len(out.Blockers) != 1 || out.Blockers[0] != in.Blockers[0] {
		t.Fatalf("blockers mismatch: got %+v", out.Blockers)
	}
	if len(out.Plans) != 1 || out.Plans[0].URL != "https://example.com/pull/42" {
		t.Fatalf("plans mismatch: got %+v", out.Plans)
	}
}

func TestSnapshot_LoadMissing_ReturnsNil(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "does-not-exist.json")

	if _, err := os.Stat(p); !os.IsNotExist(err) {
		t.Fatalf("expected missing file in tempdir")
	}

	s, err := memory.LoadSnapshot(p)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if s != nil {
		t.Fatalf("expected nil snapshot for missing file, got %#v", s)
	}
}

func TestSnapshot_LoadInvalidJSON_ReturnsError(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "bad.json")
	if err := os.WriteFile(p, []byte("{oops"), 0o664); err != nil {
		t.Fatalf("prep: %v", err)
	}
	if _, err := memory.LoadSnapshot(p); err == nil {
		t.Fatal("expected error for invalid JSON")
	}
}
