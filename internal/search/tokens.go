package search

import (
	"sort"
	"strings"

	"github.com/vanzue/bbmark/internal/model"
)

// Mode selects which matcher a query runs through. The two modes carry
// their own complete ordering contracts and are never mixed.
type Mode string

const (
	ModeRanked Mode = "ranked"
	ModeTokens Mode = "tokens"
)

// Filter dispatches to the matcher for this mode.
func (m Mode) Filter(entries []model.Entry, query string) []Result {
	if m == ModeTokens {
		return FilterTokens(entries, query)
	}
	return Filter(entries, query)
}

// FilterTokens is the token-AND matcher: the query is split on whitespace
// and an entry survives only if every token is a case-insensitive substring
// of at least one searchable field. Matches come back newest first; there
// are no rank tiers and no fuzzy scoring in this mode.
func FilterTokens(entries []model.Entry, query string) []Result {
	tokens := strings.Fields(strings.ToLower(query))
	if len(tokens) == 0 {
		return defaultOrder(entries)
	}

	results := make([]Result, 0, len(entries))
	for _, e := range entries {
		if matchesAllTokens(e, tokens) {
			results = append(results, Result{Entry: e, Rank: RankNone})
		}
	}
	sort.SliceStable(results, func(i, j int) bool {
		return entryLess(results[i].Entry, results[j].Entry)
	})
	return results
}

func matchesAllTokens(e model.Entry, tokens []string) bool {
	fields := [...]string{
		strings.ToLower(e.Title),
		strings.ToLower(e.URL),
		strings.ToLower(e.Browser),
		strings.ToLower(e.Profile),
		strings.ToLower(e.FolderLabel()),
	}

	for _, tok := range tokens {
		matched := false
		for _, f := range fields {
			if strings.Contains(f, tok) {
				matched = true
				break
			}
		}
		if !matched {
			return false
		}
	}
	return true
}
