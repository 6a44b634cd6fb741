package model

import (
	"time"

	"github.com/google/uuid"
)

// Entry is one bookmark flattened out of a browser's bookmark tree.
// Entries are created once during loading and never mutated.
type Entry struct {
	ID         string     `json:"id"`
	Browser    string     `json:"browser"`
	Profile    string     `json:"profile,omitempty"` // empty for single-profile installs
	Title      string     `json:"title"`             // falls back to URL when the source title is blank
	URL        string     `json:"url"`
	FolderPath string     `json:"folderPath,omitempty"` // ancestor folder names joined with " > "
	AddedAt    *time.Time `json:"addedAt,omitempty"`    // nil = source had no usable timestamp
}

// PathSeparator joins folder names in FolderPath and the pieces of TagLabel.
const PathSeparator = " > "

// NewEntryParams holds the fields gathered while flattening one tree node.
type NewEntryParams struct {
	Browser    string
	Profile    string
	Title      string
	URL        string
	FolderPath string
	AddedAt    *time.Time
}

// NewEntry creates an Entry with a generated UUID.
func NewEntry(params NewEntryParams) Entry {
	return Entry{
		ID:         generateUUID(),
		Browser:    params.Browser,
		Profile:    params.Profile,
		Title:      params.Title,
		URL:        params.URL,
		FolderPath: params.FolderPath,
		AddedAt:    params.AddedAt,
	}
}

// generateUUID creates a new UUID string.
func generateUUID() string {
	return uuid.New().String()
}

// SectionLabel returns the grouping key shown above a result:
// "Browser - Profile", or just the browser name when there is no profile.
func (e Entry) SectionLabel() string {
	if e.Profile != "" {
		return e.Browser + " - " + e.Profile
	}
	return e.Browser
}

// FolderLabel returns the folder path for display, empty for root bookmarks.
func (e Entry) FolderLabel() string {
	return e.FolderPath
}

// TagLabel combines profile and folder path for the result tag, profile first.
func (e Entry) TagLabel() string {
	switch {
	case e.Profile != "" && e.FolderPath != "":
		return e.Profile + PathSeparator + e.FolderPath
	case e.Profile != "":
		return e.Profile
	default:
		return e.FolderPath
	}
}
