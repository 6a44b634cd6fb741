package search

import (
	"sort"
	"strings"

	"github.com/sahilm/fuzzy"
	"github.com/vanzue/bbmark/internal/model"
)

// Rank orders match categories: a browser-name hit beats a URL hit, which
// beats a fuzzy title hit. A substring match on a short high-signal field
// is a stronger explicit signal than a fuzzy title score.
type Rank int

const (
	RankBrowser Rank = iota
	RankURL
	RankTitle

	// RankNone marks results that were not ranked at all (empty query or
	// token mode).
	RankNone Rank = -1
)

// Result pairs an entry with the category and quality of its match.
type Result struct {
	Entry      model.Entry
	Rank       Rank
	TitleScore int // fuzzy quality, meaningful only for RankTitle
}

// Filter scores entries against the query and returns the matches best
// first. An empty or whitespace query returns every entry in default order.
// Filter never mutates the entry slice and keeps no state between calls.
func Filter(entries []model.Entry, query string) []Result {
	query = strings.TrimSpace(query)
	if query == "" {
		return defaultOrder(entries)
	}

	lower := strings.ToLower(query)
	results := make([]Result, 0, len(entries))
	for _, e := range entries {
		switch {
		case strings.Contains(strings.ToLower(e.Browser), lower):
			results = append(results, Result{Entry: e, Rank: RankBrowser})
		case strings.Contains(strings.ToLower(e.URL), lower):
			results = append(results, Result{Entry: e, Rank: RankURL})
		default:
			if score, ok := titleScore(query, e.Title); ok {
				results = append(results, Result{Entry: e, Rank: RankTitle, TitleScore: score})
			}
		}
	}

	sort.SliceStable(results, func(i, j int) bool {
		a, b := results[i], results[j]
		if a.Rank != b.Rank {
			return a.Rank < b.Rank
		}
		if a.TitleScore != b.TitleScore {
			return a.TitleScore > b.TitleScore
		}
		return entryLess(a.Entry, b.Entry)
	})
	return results
}

// titleScore runs the fuzzy matcher against a single title. Higher scores
// are better matches.
func titleScore(query, title string) (int, bool) {
	matches := fuzzy.Find(query, []string{title})
	if len(matches) == 0 {
		return 0, false
	}
	return matches[0].Score, true
}

// defaultOrder returns every entry, newest first.
func defaultOrder(entries []model.Entry) []Result {
	results := make([]Result, 0, len(entries))
	for _, e := range entries {
		results = append(results, Result{Entry: e, Rank: RankNone})
	}
	sort.SliceStable(results, func(i, j int) bool {
		return entryLess(results[i].Entry, results[j].Entry)
	})
	return results
}

// entryLess is the shared recency tie-break: newest first, entries without
// a timestamp after all timestamped ones, then title and URL
// case-insensitively.
func entryLess(a, b model.Entry) bool {
	switch {
	case a.AddedAt != nil && b.AddedAt == nil:
		return true
	case a.AddedAt == nil && b.AddedAt != nil:
		return false
	case a.AddedAt != nil && b.AddedAt != nil && !a.AddedAt.Equal(*b.AddedAt):
		return a.AddedAt.After(*b.AddedAt)
	}

	at, bt := strings.ToLower(a.Title), strings.ToLower(b.Title)
	if at != bt {
		return at < bt
	}
	return strings.ToLower(a.URL) < strings.ToLower(b.URL)
}
