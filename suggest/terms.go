package suggest

import (
	"strings"

	"github.com/tchap/go-patricia/v2/patricia"

	"github.com/YY-Nexus/MediNexus--sub002/core"
)

// termIndex holds the distinct display terms of a catalog: titles, parent
// titles, and category names. Terms are deduplicated case-insensitively and
// kept in first-seen order. A patricia trie over the lower-cased terms gives
// the correction source a cheap prefix fast path before the full scan.
type termIndex struct {
	trie  *patricia.Trie
	terms []string
}

func newTermIndex(entries []core.CatalogEntry) *termIndex {
	ti := &termIndex{trie: patricia.NewTrie()}
	for _, entry := range entries {
		ti.add(entry.Title)
		ti.add(entry.ParentTitle)
		ti.add(entry.Category)
	}
	return ti
}

func (ti *termIndex) add(term string) {
	if term == "" {
		return
	}
	lowered := strings.ToLower(term)
	// Insert reports false when the prefix is already present
	if ti.trie.Insert(patricia.Prefix(lowered), term) {
		ti.terms = append(ti.terms, term)
	}
}

// prefixMatches returns the original terms whose lower-cased form starts with
// lowerPrefix, in trie order.
func (ti *termIndex) prefixMatches(lowerPrefix string) []string {
	var matches []string
	_ = ti.trie.VisitSubtree(patricia.Prefix(lowerPrefix), func(p patricia.Prefix, item patricia.Item) error {
		matches = append(matches, item.(string))
		return nil
	})
	return matches
}

// all returns every distinct term in first-seen order.
func (ti *termIndex) all() []string {
	return ti.terms
}
