package core

import (
	"encoding/binary"
	"time"

	"github.com/go-crypt/x/blake2b"
)

// ID is a unique identifier for catalog entries.
// It is derived from the entry's destination using content-based hashing.
type ID uint64

// IDFromContent generates a deterministic ID from text content using BLAKE2b hashing.
// This ensures that identical content produces identical IDs.
func IDFromContent(text string) ID {
	h, _ := blake2b.New(8, nil) // 8 bytes = 64 bits
	h.Write([]byte(text))
	sum := h.Sum(nil)
	return ID(binary.LittleEndian.Uint64(sum))
}

// Node is one node of the hierarchical navigation catalog supplied by the host
// application. A node with a non-empty Destination is directly selectable;
// a node without one only contributes context (title, category) to its
// children. Nodes without a title are malformed and are skipped during
// flattening, together with their subtree.
type Node struct {
	Title          string    `json:"title"`
	Destination    string    `json:"destination,omitempty"`
	Icon           string    `json:"icon,omitempty"`
	Category       string    `json:"category,omitempty"`
	LastUpdated    time.Time `json:"lastUpdated,omitzero"`
	UsageFrequency int       `json:"usageFrequency,omitempty"`
	Children       []Node    `json:"children,omitempty"`
}

// CatalogEntry is a flattened, searchable navigation destination.
// Entries are immutable once flattened; the set is regenerated only when the
// source catalog changes.
type CatalogEntry struct {
	Id             ID
	Title          string
	Destination    string
	ParentTitle    string
	Category       string
	Keywords       []string // lower-cased, deduplicated
	LastUpdated    time.Time
	UsageFrequency int
}

// RecentEntry records a visited destination. Recents are ordered
// most-recent-first, deduplicated by destination, and capped.
type RecentEntry struct {
	Title       string    `json:"title"`
	Destination string    `json:"destination"`
	VisitedAt   time.Time `json:"visitedAt"`
	ParentTitle string    `json:"parentTitle,omitempty"`
}

// FavoriteEntry marks a destination as pinned by the user. Favorites have set
// semantics keyed by destination; insertion order is preserved for display.
type FavoriteEntry struct {
	Title       string `json:"title"`
	Destination string `json:"destination"`
	ParentTitle string `json:"parentTitle,omitempty"`
}

// HistoryEntry records a past search. History is keyed by case-insensitive
// query text; a repeated query refreshes the existing entry instead of
// duplicating it.
type HistoryEntry struct {
	Query       string    `json:"query"`
	SearchedAt  time.Time `json:"searchedAt"`
	ResultCount int       `json:"resultCount"`
}

// SuggestionSource identifies which generator source produced a suggestion.
type SuggestionSource string

const (
	SourceHistory    SuggestionSource = "history"
	SourcePopular    SuggestionSource = "popular"
	SourceTrending   SuggestionSource = "trending"
	SourceCorrection SuggestionSource = "correction"
	SourceContextual SuggestionSource = "contextual"
)

// Suggestion is a query completion candidate. Suggestions are ephemeral and
// recomputed on every input change; they are never persisted.
type Suggestion struct {
	Text   string
	Source SuggestionSource
}

// TimeWindow restricts results to entries updated within a rolling window.
type TimeWindow string

const (
	TimeWindowAll   TimeWindow = "all"
	TimeWindowDay   TimeWindow = "day"
	TimeWindowWeek  TimeWindow = "week"
	TimeWindowMonth TimeWindow = "month"
)

// Duration returns the window length and whether the window restricts at all.
// TimeWindowAll returns false.
func (w TimeWindow) Duration() (time.Duration, bool) {
	switch w {
	case TimeWindowDay:
		return 24 * time.Hour, true
	case TimeWindowWeek:
		return 7 * 24 * time.Hour, true
	case TimeWindowMonth:
		return 30 * 24 * time.Hour, true
	default:
		return 0, false
	}
}

// SortOrder selects how a result set is ordered. Relevance is the default;
// the alternate orders fully replace it when active.
type SortOrder string

const (
	SortRelevance    SortOrder = "relevance"
	SortAlphabetical SortOrder = "alphabetical"
	SortRecency      SortOrder = "recency"
	SortFrequency    SortOrder = "frequency"
)

// FilterState holds the user's persisted result-narrowing preferences.
// An empty Categories slice means no category restriction.
type FilterState struct {
	Categories    []string   `json:"categories"`
	TimeWindow    TimeWindow `json:"timeWindow"`
	SortOrder     SortOrder  `json:"sortOrder"`
	FavoritesOnly bool       `json:"favoritesOnly"`
}

// DefaultFilterState returns the canonical default filter: no category
// restriction, all time, relevance order, favorites-only off.
func DefaultFilterState() FilterState {
	return FilterState{
		Categories: []string{},
		TimeWindow: TimeWindowAll,
		SortOrder:  SortRelevance,
	}
}

// Preferences are the two independently persisted UI toggles.
type Preferences struct {
	ShowSuggestions bool
	ShowHistory     bool
}

// DefaultPreferences returns the defaults used when nothing is persisted yet.
func DefaultPreferences() Preferences {
	return Preferences{ShowSuggestions: true, ShowHistory: true}
}

// Limits holds the cap for each persisted list and the suggestion count.
// Caps are enforced on every mutation and are never retroactively violated.
type Limits struct {
	Recents     int
	Favorites   int
	History     int
	Suggestions int
}

// DefaultLimits returns the documented default caps.
func DefaultLimits() Limits {
	return Limits{Recents: 5, Favorites: 5, History: 10, Suggestions: 5}
}
