package chromium

import (
	"os"
	"path/filepath"
	"testing"

	"go.uber.org/zap"
)

// TestLoad_MalformedSourcesIsolated checks that good sources load in full
// even when their neighbours are corrupt.
func TestLoad_MalformedSourcesIsolated(t *testing.T) {
	dir := t.TempDir()

	writeProfile := func(profile, content string) {
		if err := os.MkdirAll(filepath.Join(dir, profile), 0755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(filepath.Join(dir, profile, "Bookmarks"), []byte(content), 0644); err != nil {
			t.Fatal(err)
		}
	}

	writeProfile("Default", `{
		"roots": {
			"bookmark_bar": {
				"children": [
					{"type": "url", "name": "One", "url": "https://one.example.com"},
					{"type": "url", "name": "Two", "url": "https://two.example.com"}
				]
			}
		}
	}`)
	writeProfile("Profile 1", `this is not json at all`)
	writeProfile("Profile 2", `{"roots": {"bookmark_bar": {"children": [{"type": "url", "name": "Three", "url": "https://three.example.com"}]}}}`)

	entries := Load([]Browser{{Name: "Brave", Dir: dir}}, zap.NewNop())

	if len(entries) != 3 {
		t.Fatalf("expected union of the well-formed sources (3 entries), got %d", len(entries))
	}
	for _, e := range entries {
		if e.Browser != "Brave" {
			t.Errorf("entry browser = %q, want Brave", e.Browser)
		}
	}
}

func TestLoad_NoSourcesYieldsEmptySet(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "nope")

	entries := Load([]Browser{{Name: "Google Chrome", Dir: missing}}, zap.NewNop())
	if len(entries) != 0 {
		t.Errorf("expected no entries, got %d", len(entries))
	}
}
