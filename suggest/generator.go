package suggest

import (
	"log/slog"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/YY-Nexus/MediNexus--sub002/core"
)

// Per-source candidate caps, applied before the overall suggestion limit.
const (
	historyCandidates    = 2
	popularCandidates    = 2
	trendingCandidates   = 1
	correctionCandidates = 2

	// corrections only engage once the input is longer than this many runes
	correctionMinRunes = 2
)

// Generator produces query completions from five sources in strict priority
// order: history, popular, trending, correction, contextual. It holds no
// state of its own beyond the catalog term index; suggestions are recomputed
// from scratch on every input change.
type Generator struct {
	terms    *termIndex
	popular  []string
	trending []string
	limit    int
	logger   *slog.Logger
}

// Option configures a Generator.
type Option func(*Generator) error

// WithLimit sets the maximum number of suggestions per generation.
// Default is core.DefaultLimits().Suggestions.
func WithLimit(limit int) Option {
	return func(g *Generator) error {
		if limit < 1 {
			return core.ErrInvalidLimits
		}
		g.limit = limit
		return nil
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(g *Generator) error {
		if logger == nil {
			logger = slog.Default()
		}
		g.logger = logger
		return nil
	}
}

// WithPopularTerms replaces the default popular vocabulary.
func WithPopularTerms(terms []string) Option {
	return func(g *Generator) error {
		g.popular = terms
		return nil
	}
}

// WithTrendingTerms replaces the default trending vocabulary.
func WithTrendingTerms(terms []string) Option {
	return func(g *Generator) error {
		g.trending = terms
		return nil
	}
}

// NewGenerator creates a suggestion generator over a flattened catalog.
func NewGenerator(entries []core.CatalogEntry, opts ...Option) (*Generator, error) {
	if entries == nil {
		return nil, ErrCatalogRequired
	}

	g := &Generator{
		terms:    newTermIndex(entries),
		popular:  defaultPopularTerms,
		trending: defaultTrendingTerms,
		limit:    core.DefaultLimits().Suggestions,
		logger:   slog.Default(),
	}

	// Apply options
	for _, opt := range opts {
		if err := opt(g); err != nil {
			return nil, err
		}
	}

	return g, nil
}

// Generate produces up to the configured number of suggestions for the
// current partial input, assembled in source priority order and deduplicated
// case-insensitively. An empty or whitespace-only query yields nil; the
// show-suggestions preference gate is the session controller's concern, not
// the generator's.
func (g *Generator) Generate(query string, history []core.HistoryEntry) []core.Suggestion {
	trimmed := strings.TrimSpace(query)
	if trimmed == "" {
		return nil
	}

	q := strings.ToLower(trimmed)
	acc := &accumulator{limit: g.limit, seen: make(map[string]bool, g.limit)}

	g.fromHistory(acc, q, history)
	g.fromList(acc, q, g.popular, core.SourcePopular, popularCandidates)
	g.fromList(acc, q, g.trending, core.SourceTrending, trendingCandidates)
	g.fromCorrections(acc, q, trimmed)
	g.fromTemplates(acc, trimmed)

	return acc.out
}

// fromHistory adds past queries containing the input, most recent first.
func (g *Generator) fromHistory(acc *accumulator, q string, history []core.HistoryEntry) {
	recent := slices.Clone(history)
	slices.SortStableFunc(recent, func(a, b core.HistoryEntry) int {
		return b.SearchedAt.Compare(a.SearchedAt)
	})

	added := 0
	for _, entry := range recent {
		if acc.full() || added == historyCandidates {
			return
		}
		if strings.Contains(strings.ToLower(entry.Query), q) {
			if acc.add(entry.Query, core.SourceHistory) {
				added++
			}
		}
	}
}

// fromList adds fixed-vocabulary terms containing the input, in list order.
func (g *Generator) fromList(acc *accumulator, q string, terms []string, source core.SuggestionSource, quota int) {
	added := 0
	for _, term := range terms {
		if acc.full() || added == quota {
			return
		}
		if strings.Contains(strings.ToLower(term), q) {
			if acc.add(term, source) {
				added++
			}
		}
	}
}

// fromCorrections adds catalog terms that look like what the user meant to
// type. A term qualifies when either string contains the other, or when the
// positional mismatch rule of nearMatch holds. Terms equal to the query are
// never suggested back. The trie prefix walk runs first so prefix completions
// win the per-source slots before the full scan.
func (g *Generator) fromCorrections(acc *accumulator, q, trimmed string) {
	if utf8.RuneCountInString(trimmed) <= correctionMinRunes {
		return
	}

	added := 0
	consider := func(term string) bool {
		if acc.full() || added == correctionCandidates {
			return false
		}
		lowered := strings.ToLower(term)
		if lowered == q {
			return true
		}
		if !strings.Contains(lowered, q) && !strings.Contains(q, lowered) && !nearMatch(q, lowered) {
			return true
		}
		if acc.add(term, core.SourceCorrection) {
			added++
		}
		return true
	}

	for _, term := range g.terms.prefixMatches(q) {
		if !consider(term) {
			return
		}
	}
	for _, term := range g.terms.all() {
		if !consider(term) {
			return
		}
	}
}

// fromTemplates fills remaining slots with templated completions of the raw
// input. Pure string concatenation; see vocab.go.
func (g *Generator) fromTemplates(acc *accumulator, trimmed string) {
	for _, suffix := range contextualSuffixes {
		if acc.full() {
			return
		}
		acc.add(trimmed+" "+suffix, core.SourceContextual)
	}
}

// accumulator collects suggestions up to a limit, skipping any candidate
// whose text case-insensitively duplicates one already accepted.
type accumulator struct {
	limit int
	seen  map[string]bool
	out   []core.Suggestion
}

func (a *accumulator) full() bool {
	return len(a.out) >= a.limit
}

func (a *accumulator) add(text string, source core.SuggestionSource) bool {
	if a.full() {
		return false
	}
	key := strings.ToLower(text)
	if a.seen[key] {
		return false
	}
	a.seen[key] = true
	a.out = append(a.out, core.Suggestion{Text: text, Source: source})
	return true
}
