package session

import (
	"github.com/vanzue/bbmark/internal/model"
	"github.com/vanzue/bbmark/internal/search"
)

// Placeholder identifies which empty-state message the host should show.
type Placeholder int

const (
	// PlaceholderNone means there are results to render.
	PlaceholderNone Placeholder = iota
	// PlaceholderNoBookmarks means nothing was loaded at all.
	PlaceholderNoBookmarks
	// PlaceholderNoMatches means bookmarks exist but the query matched none.
	PlaceholderNoMatches
)

// Message returns the display text for the placeholder.
func (p Placeholder) Message() string {
	switch p {
	case PlaceholderNoBookmarks:
		return "No browser bookmarks were detected"
	case PlaceholderNoMatches:
		return "No bookmark matches the search"
	default:
		return ""
	}
}

// Session holds the loaded entry set and the host-visible result list for
// the current query. The entry set is read-only after construction; every
// query change replaces the result list wholesale.
type Session struct {
	entries []model.Entry
	mode    search.Mode
	query   string
	results []search.Result
}

// New creates a Session over a loaded entry set, pre-filtered with the
// empty query so the default-ordered view is available immediately.
func New(entries []model.Entry, mode search.Mode) *Session {
	s := &Session{entries: entries, mode: mode}
	s.SetQuery("")
	return s
}

// SetQuery re-filters the entry set against the new query text.
func (s *Session) SetQuery(query string) {
	s.query = query
	s.results = s.mode.Filter(s.entries, query)
}

// Query returns the current query text.
func (s *Session) Query() string { return s.query }

// Results returns the current ordered result list.
func (s *Session) Results() []search.Result { return s.results }

// Count returns the number of current results.
func (s *Session) Count() int { return len(s.results) }

// Loaded returns the number of entries loaded at construction.
func (s *Session) Loaded() int { return len(s.entries) }

// Placeholder reports which empty-state message applies, if any. A session
// with no loaded entries always reports PlaceholderNoBookmarks, whatever
// the query.
func (s *Session) Placeholder() Placeholder {
	switch {
	case len(s.entries) == 0:
		return PlaceholderNoBookmarks
	case len(s.results) == 0:
		return PlaceholderNoMatches
	default:
		return PlaceholderNone
	}
}
