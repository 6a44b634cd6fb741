package chromium

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/vanzue/bbmark/internal/model"
)

// document is the top level of a Chromium Bookmarks file. Root values are
// kept raw because the roots object also carries scalar bookkeeping fields.
type document struct {
	Roots map[string]json.RawMessage `json:"roots"`
}

// node is one element of the bookmark tree. Children are kept raw so a
// single malformed child does not poison its siblings.
type node struct {
	Type         scalar            `json:"type"`
	Name         scalar            `json:"name"`
	URL          scalar            `json:"url"`
	DateAdded    scalar            `json:"date_added"`
	DateLastUsed scalar            `json:"date_last_used"`
	Children     []json.RawMessage `json:"children"`
}

// scalar reads a JSON value as a string. Chromium writes these fields as
// strings, other writers of the format use numbers; any other kind decodes
// as absent.
type scalar string

func (s *scalar) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err == nil {
		*s = scalar(str)
		return nil
	}
	var num json.Number
	if err := json.Unmarshal(data, &num); err == nil {
		*s = scalar(num.String())
		return nil
	}
	*s = ""
	return nil
}

// nodeKind is the closed classification of a tree node.
type nodeKind int

const (
	kindURL nodeKind = iota
	kindFolder
	kindOther
)

// classify maps a node's type field onto a kind. A missing type means
// folder; any unrecognised type hides the node and its whole subtree.
func classify(n node) nodeKind {
	switch strings.ToLower(string(n.Type)) {
	case "url":
		return kindURL
	case "folder", "":
		return kindFolder
	default:
		return kindOther
	}
}

// ParseFile reads one bookmark file and flattens its tree into entries.
// It is the isolation boundary for per-source failures: any error reported
// here loses only this file's contribution.
func ParseFile(src Source) ([]model.Entry, error) {
	data, err := os.ReadFile(src.Path)
	if err != nil {
		return nil, fmt.Errorf("read bookmark file: %w", err)
	}

	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse bookmark file %s: %w", src.Path, err)
	}
	if len(doc.Roots) == 0 {
		return nil, nil
	}

	w := &walker{browser: src.Browser, profile: canonicalProfile(src.Profile)}

	// Stable root order; map iteration would shuffle entries between runs.
	names := make([]string, 0, len(doc.Roots))
	for name := range doc.Roots {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		var root node
		if err := json.Unmarshal(doc.Roots[name], &root); err != nil {
			continue
		}
		// Root folder names ("Bookmarks bar" etc.) are not part of the
		// folder path, so traversal starts at the root's children.
		for _, child := range root.Children {
			w.walk(child, "")
		}
	}
	return w.entries, nil
}

// canonicalProfile normalises the profile directory name. Any case variant
// of "default" renders as "Default"; everything else passes through.
func canonicalProfile(profile string) string {
	if strings.EqualFold(profile, "Default") {
		return "Default"
	}
	return profile
}

// walker accumulates entries while descending one source's tree.
type walker struct {
	browser string
	profile string
	entries []model.Entry
}

func (w *walker) walk(raw json.RawMessage, path string) {
	var n node
	if err := json.Unmarshal(raw, &n); err != nil {
		// Non-object nodes are skipped.
		return
	}

	switch classify(n) {
	case kindURL:
		url := strings.TrimSpace(string(n.URL))
		if url == "" {
			return
		}
		title := strings.TrimSpace(string(n.Name))
		if title == "" {
			title = url
		}
		added := parseTimestamp(string(n.DateAdded))
		if added == nil {
			added = parseTimestamp(string(n.DateLastUsed))
		}
		w.entries = append(w.entries, model.NewEntry(model.NewEntryParams{
			Browser:    w.browser,
			Profile:    w.profile,
			Title:      title,
			URL:        url,
			FolderPath: path,
			AddedAt:    added,
		}))

	case kindFolder:
		next := path
		if name := strings.TrimSpace(string(n.Name)); name != "" {
			if next == "" {
				next = name
			} else {
				next += model.PathSeparator + name
			}
		}
		for _, child := range n.Children {
			w.walk(child, next)
		}

	case kindOther:
		// Unknown node kinds hide their whole subtree.
	}
}
