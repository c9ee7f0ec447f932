package search

import (
	"log/slog"
	"slices"
	"strings"
	"time"

	"github.com/YY-Nexus/MediNexus--sub002/core"
)

// Searcher matches, filters, and orders catalog entries for a query.
// All of its computations are synchronous, pure, and re-entrant: a Searcher
// may be shared across goroutines once constructed.
type Searcher struct {
	entries []core.CatalogEntry
	logger  *slog.Logger
}

// Option configures a Searcher.
type Option func(*Searcher) error

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(s *Searcher) error {
		if logger == nil {
			logger = slog.Default()
		}
		s.logger = logger
		return nil
	}
}

// NewSearcher creates a new searcher over a flattened catalog.
func NewSearcher(entries []core.CatalogEntry, opts ...Option) (*Searcher, error) {
	if entries == nil {
		return nil, ErrCatalogRequired
	}

	s := &Searcher{
		entries: entries,
		logger:  slog.Default(),
	}

	// Apply options
	for _, opt := range opts {
		if err := opt(s); err != nil {
			return nil, err
		}
	}

	return s, nil
}

// Match returns every catalog entry that structurally matches the query: the
// lower-cased query is a substring of the title, parent title, any keyword,
// or the category. Matching is substring-based, not tokenized. An empty or
// whitespace-only query yields an empty result set; that is defined
// behavior, not an error. No ordering is implied; Rank owns ordering.
func (s *Searcher) Match(query string) []core.CatalogEntry {
	trimmed := strings.TrimSpace(query)
	if trimmed == "" {
		return []core.CatalogEntry{}
	}

	q := strings.ToLower(trimmed)
	matches := make([]core.CatalogEntry, 0, 8)
	for _, entry := range s.entries {
		if entryMatches(entry, q) {
			matches = append(matches, entry)
		}
	}
	return matches
}

func entryMatches(entry core.CatalogEntry, q string) bool {
	if strings.Contains(strings.ToLower(entry.Title), q) {
		return true
	}
	if entry.ParentTitle != "" && strings.Contains(strings.ToLower(entry.ParentTitle), q) {
		return true
	}
	for _, keyword := range entry.Keywords {
		if strings.Contains(keyword, q) {
			return true
		}
	}
	if entry.Category != "" && strings.Contains(strings.ToLower(entry.Category), q) {
		return true
	}
	return false
}

// Rank orders a match set by default relevance for the query:
//
//  1. Entries whose title starts with the query outrank the rest.
//  2. Among ties, entries whose title contains the query outrank entries
//     that matched via parent, keyword, or category only.
//  3. Remaining ties break on case-insensitive title order.
//
// The sort is stable, so the output is always a permutation of the input.
// The input slice is not modified.
func (s *Searcher) Rank(query string, matches []core.CatalogEntry) []core.CatalogEntry {
	q := strings.ToLower(strings.TrimSpace(query))
	ranked := slices.Clone(matches)

	slices.SortStableFunc(ranked, func(a, b core.CatalogEntry) int {
		at, bt := strings.ToLower(a.Title), strings.ToLower(b.Title)

		aPrefix, bPrefix := strings.HasPrefix(at, q), strings.HasPrefix(bt, q)
		if aPrefix != bPrefix {
			if aPrefix {
				return -1
			}
			return 1
		}

		aContains, bContains := strings.Contains(at, q), strings.Contains(bt, q)
		if aContains != bContains {
			if aContains {
				return -1
			}
			return 1
		}

		return strings.Compare(at, bt)
	})

	return ranked
}

// SortEntries re-sorts entries by an explicit alternate order: alphabetical
// (case-insensitive title), recency (LastUpdated descending, missing oldest),
// or frequency (UsageFrequency descending, missing zero). SortRelevance is
// the fallback only and leaves the input order untouched; callers wanting
// relevance use Rank. All sorts are stable and do not modify the input.
func SortEntries(order core.SortOrder, entries []core.CatalogEntry) []core.CatalogEntry {
	sorted := slices.Clone(entries)

	switch order {
	case core.SortAlphabetical:
		slices.SortStableFunc(sorted, func(a, b core.CatalogEntry) int {
			return strings.Compare(strings.ToLower(a.Title), strings.ToLower(b.Title))
		})
	case core.SortRecency:
		slices.SortStableFunc(sorted, func(a, b core.CatalogEntry) int {
			// zero time naturally sorts as oldest
			return b.LastUpdated.Compare(a.LastUpdated)
		})
	case core.SortFrequency:
		slices.SortStableFunc(sorted, func(a, b core.CatalogEntry) int {
			return b.UsageFrequency - a.UsageFrequency
		})
	}

	return sorted
}

// Search runs the full pipeline for a query: match, filter, then order.
// favorites is the set of favorited destinations used by the favorites-only
// filter; now anchors the time-window filter.
func (s *Searcher) Search(query string, filter core.FilterState, favorites map[string]bool, now time.Time) []core.CatalogEntry {
	return s.SearchWithMonitor(query, filter, favorites, now, nil)
}

// SearchWithMonitor runs the full pipeline with monitoring.
// The monitor receives callbacks at each stage of the search process.
func (s *Searcher) SearchWithMonitor(query string, filter core.FilterState, favorites map[string]bool, now time.Time, monitor SearchMonitor) []core.CatalogEntry {
	// Use noop monitor if none provided
	if monitor == nil {
		monitor = &noopMonitor{}
	}

	monitor.Start(query)

	matches := s.Match(query)
	monitor.AfterMatch(matches)

	filtered := ApplyFilters(matches, filter, favorites, now)
	monitor.AfterFilter(filtered)

	var results []core.CatalogEntry
	if filter.SortOrder == core.SortRelevance || filter.SortOrder == "" {
		results = s.Rank(query, filtered)
	} else {
		results = SortEntries(filter.SortOrder, filtered)
	}

	monitor.Finish(results)
	return results
}
