package chromium

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

// writeBookmarks drops a bookmark file with the given content into a temp
// dir and returns a source pointing at it.
func writeBookmarks(t *testing.T, profile, content string) Source {
	t.Helper()
	path := filepath.Join(t.TempDir(), "Bookmarks")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}
	return Source{Browser: "Google Chrome", Profile: profile, Path: path}
}

func TestParseFile_NestedFolders(t *testing.T) {
	src := writeBookmarks(t, "", `{
		"roots": {
			"bookmark_bar": {
				"type": "folder",
				"name": "Bookmarks bar",
				"children": [
					{
						"type": "folder",
						"name": "Work",
						"children": [
							{
								"type": "folder",
								"name": "Dev",
								"children": [
									{"type": "url", "name": "Go", "url": "https://go.dev", "date_added": "13300000000000000"}
								]
							}
						]
					}
				]
			}
		}
	}`)

	entries, err := ParseFile(src)
	if err != nil {
		t.Fatalf("ParseFile() error: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}

	e := entries[0]
	if e.FolderPath != "Work > Dev" {
		t.Errorf("FolderPath = %q, want %q", e.FolderPath, "Work > Dev")
	}
	if e.Title != "Go" || e.URL != "https://go.dev" {
		t.Errorf("unexpected entry: %+v", e)
	}
	if e.AddedAt == nil {
		t.Error("expected AddedAt to be set")
	}
}

func TestParseFile_RootFolderNameExcludedFromPath(t *testing.T) {
	src := writeBookmarks(t, "", `{
		"roots": {
			"other": {
				"type": "folder",
				"name": "Other bookmarks",
				"children": [
					{"type": "url", "name": "Top", "url": "https://example.com"}
				]
			}
		}
	}`)

	entries, err := ParseFile(src)
	if err != nil {
		t.Fatalf("ParseFile() error: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	if entries[0].FolderPath != "" {
		t.Errorf("root bookmark FolderPath = %q, want empty", entries[0].FolderPath)
	}
}

func TestParseFile_BlankTitleFallsBackToURL(t *testing.T) {
	src := writeBookmarks(t, "", `{
		"roots": {
			"bookmark_bar": {
				"children": [
					{"type": "url", "name": "   ", "url": "https://example.com"},
					{"type": "URL", "url": "https://no-name.example.com"}
				]
			}
		}
	}`)

	entries, err := ParseFile(src)
	if err != nil {
		t.Fatalf("ParseFile() error: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	for _, e := range entries {
		if e.Title != e.URL {
			t.Errorf("Title = %q, want fallback to URL %q", e.Title, e.URL)
		}
		if e.Title == "" {
			t.Error("Title must never be empty")
		}
	}
}

func TestParseFile_DropsEntriesWithoutURL(t *testing.T) {
	src := writeBookmarks(t, "", `{
		"roots": {
			"bookmark_bar": {
				"children": [
					{"type": "url", "name": "No URL at all"},
					{"type": "url", "name": "Blank URL", "url": "  "},
					{"type": "url", "name": "Kept", "url": "https://kept.example.com"}
				]
			}
		}
	}`)

	entries, err := ParseFile(src)
	if err != nil {
		t.Fatalf("ParseFile() error: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	if entries[0].Title != "Kept" {
		t.Errorf("kept entry = %q, want %q", entries[0].Title, "Kept")
	}
}

func TestParseFile_UnknownTypeSkipsSubtree(t *testing.T) {
	src := writeBookmarks(t, "", `{
		"roots": {
			"bookmark_bar": {
				"children": [
					{
						"type": "meta_info",
						"name": "Hidden",
						"children": [
							{"type": "url", "name": "Buried", "url": "https://buried.example.com"}
						]
					},
					{"type": "url", "name": "Visible", "url": "https://visible.example.com"}
				]
			}
		}
	}`)

	entries, err := ParseFile(src)
	if err != nil {
		t.Fatalf("ParseFile() error: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	if entries[0].Title != "Visible" {
		t.Errorf("got %q, want only the entry outside the unknown subtree", entries[0].Title)
	}
}

func TestParseFile_MissingTypeTreatedAsFolder(t *testing.T) {
	src := writeBookmarks(t, "", `{
		"roots": {
			"bookmark_bar": {
				"children": [
					{
						"name": "Untyped",
						"children": [
							{"type": "url", "name": "Inside", "url": "https://inside.example.com"}
						]
					}
				]
			}
		}
	}`)

	entries, err := ParseFile(src)
	if err != nil {
		t.Fatalf("ParseFile() error: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	if entries[0].FolderPath != "Untyped" {
		t.Errorf("FolderPath = %q, want %q", entries[0].FolderPath, "Untyped")
	}
}

func TestParseFile_BlankFolderNameDoesNotExtendPath(t *testing.T) {
	src := writeBookmarks(t, "", `{
		"roots": {
			"bookmark_bar": {
				"children": [
					{
						"type": "folder",
						"name": "",
						"children": [
							{"type": "url", "name": "Orphan", "url": "https://orphan.example.com"}
						]
					}
				]
			}
		}
	}`)

	entries, err := ParseFile(src)
	if err != nil {
		t.Fatalf("ParseFile() error: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	if entries[0].FolderPath != "" {
		t.Errorf("FolderPath = %q, want empty for blank folder name", entries[0].FolderPath)
	}
}

func TestParseFile_ScalarFieldsAcceptNumbers(t *testing.T) {
	src := writeBookmarks(t, "", `{
		"roots": {
			"bookmark_bar": {
				"children": [
					{"type": "url", "name": 42, "url": "https://num.example.com", "date_added": 13300000000000000}
				]
			}
		}
	}`)

	entries, err := ParseFile(src)
	if err != nil {
		t.Fatalf("ParseFile() error: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	if entries[0].Title != "42" {
		t.Errorf("numeric name decoded as %q, want %q", entries[0].Title, "42")
	}
	if entries[0].AddedAt == nil {
		t.Error("numeric date_added should still produce a timestamp")
	}
}

func TestParseFile_WrongKindScalarTreatedAsAbsent(t *testing.T) {
	src := writeBookmarks(t, "", `{
		"roots": {
			"bookmark_bar": {
				"children": [
					{"type": "url", "name": ["not", "a", "string"], "url": "https://odd.example.com", "date_added": true}
				]
			}
		}
	}`)

	entries, err := ParseFile(src)
	if err != nil {
		t.Fatalf("ParseFile() error: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	if entries[0].Title != "https://odd.example.com" {
		t.Errorf("array name should be absent, Title = %q", entries[0].Title)
	}
	if entries[0].AddedAt != nil {
		t.Error("boolean date_added should be absent")
	}
}

func TestParseFile_NonObjectChildrenSkipped(t *testing.T) {
	src := writeBookmarks(t, "", `{
		"roots": {
			"bookmark_bar": {
				"children": [
					"stray string",
					17,
					{"type": "url", "name": "Survivor", "url": "https://ok.example.com"}
				]
			}
		}
	}`)

	entries, err := ParseFile(src)
	if err != nil {
		t.Fatalf("ParseFile() error: %v", err)
	}
	if len(entries) != 1 || entries[0].Title != "Survivor" {
		t.Fatalf("expected only the object child, got %+v", entries)
	}
}

func TestParseFile_DateLastUsedFallback(t *testing.T) {
	src := writeBookmarks(t, "", `{
		"roots": {
			"bookmark_bar": {
				"children": [
					{"type": "url", "name": "A", "url": "https://a.example.com", "date_added": "garbage", "date_last_used": "13300000000000000"}
				]
			}
		}
	}`)

	entries, err := ParseFile(src)
	if err != nil {
		t.Fatalf("ParseFile() error: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	want := time.Date(2022, 6, 18, 4, 26, 40, 0, time.UTC)
	if entries[0].AddedAt == nil || !entries[0].AddedAt.Equal(want) {
		t.Errorf("AddedAt = %v, want %v via date_last_used fallback", entries[0].AddedAt, want)
	}
}

func TestParseFile_MissingRoots(t *testing.T) {
	src := writeBookmarks(t, "", `{"version": 1}`)

	entries, err := ParseFile(src)
	if err != nil {
		t.Fatalf("ParseFile() error: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("expected 0 entries for document without roots, got %d", len(entries))
	}
}

func TestParseFile_MalformedJSON(t *testing.T) {
	src := writeBookmarks(t, "", `{"roots": {`)

	if _, err := ParseFile(src); err == nil {
		t.Fatal("expected an error for malformed JSON")
	}
}

func TestParseFile_FileMissing(t *testing.T) {
	src := Source{Browser: "Brave", Path: filepath.Join(t.TempDir(), "Bookmarks")}

	if _, err := ParseFile(src); err == nil {
		t.Fatal("expected an error for a missing file")
	}
}

func TestParseFile_ProfileCanonicalised(t *testing.T) {
	tests := []struct {
		profile string
		want    string
	}{
		{"default", "Default"},
		{"DEFAULT", "Default"},
		{"Default", "Default"},
		{"Profile 2", "Profile 2"},
		{"", ""},
	}

	for _, tt := range tests {
		src := writeBookmarks(t, tt.profile, `{
			"roots": {
				"bookmark_bar": {
					"children": [{"type": "url", "name": "X", "url": "https://x.example.com"}]
				}
			}
		}`)

		entries, err := ParseFile(src)
		if err != nil {
			t.Fatalf("ParseFile() error: %v", err)
		}
		if len(entries) != 1 {
			t.Fatalf("expected 1 entry, got %d", len(entries))
		}
		if entries[0].Profile != tt.want {
			t.Errorf("profile %q canonicalised to %q, want %q", tt.profile, entries[0].Profile, tt.want)
		}
	}
}

func TestParseFile_EveryEntryHasTitleAndURL(t *testing.T) {
	src := writeBookmarks(t, "Default", `{
		"roots": {
			"bookmark_bar": {
				"children": [
					{"type": "url", "name": "A", "url": "https://a.example.com"},
					{"type": "url", "url": "https://b.example.com"},
					{"type": "url", "name": "No URL"}
				]
			},
			"other": {
				"children": [
					{"type": "url", "name": "C", "url": "https://c.example.com"}
				]
			}
		}
	}`)

	entries, err := ParseFile(src)
	if err != nil {
		t.Fatalf("ParseFile() error: %v", err)
	}
	if len(entries) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(entries))
	}
	for _, e := range entries {
		if e.Title == "" || e.URL == "" {
			t.Errorf("entry with empty title or URL leaked through: %+v", e)
		}
	}
}
