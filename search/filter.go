package search

import (
	"time"

	"github.com/YY-Nexus/MediNexus--sub002/core"
)

// ApplyFilters narrows a match set by the three independent constraints of a
// FilterState, in order: category, time window, favorites-only. Each is an
// optional narrowing, never an expansion. The input slice is not modified.
func ApplyFilters(entries []core.CatalogEntry, state core.FilterState, favorites map[string]bool, now time.Time) []core.CatalogEntry {
	result := filterByCategory(entries, state.Categories)
	result = filterByTimeWindow(result, state.TimeWindow, now)
	if state.FavoritesOnly {
		result = filterByFavorites(result, favorites)
	}
	return result
}

// filterByCategory keeps entries whose category is in the requested set.
// An empty set means no restriction.
func filterByCategory(entries []core.CatalogEntry, categories []string) []core.CatalogEntry {
	if len(categories) == 0 {
		return entries
	}

	wanted := make(map[string]bool, len(categories))
	for _, c := range categories {
		wanted[c] = true
	}

	kept := make([]core.CatalogEntry, 0, len(entries))
	for _, entry := range entries {
		if wanted[entry.Category] {
			kept = append(kept, entry)
		}
	}
	return kept
}

// filterByTimeWindow keeps entries updated within now minus the window.
// If no entry in the set carries a LastUpdated stamp the filter is a no-op
// regardless of window, so an undated catalog never filters to nothing.
func filterByTimeWindow(entries []core.CatalogEntry, window core.TimeWindow, now time.Time) []core.CatalogEntry {
	duration, bounded := window.Duration()
	if !bounded {
		return entries
	}

	anyDated := false
	for _, entry := range entries {
		if !entry.LastUpdated.IsZero() {
			anyDated = true
			break
		}
	}
	if !anyDated {
		return entries
	}

	cutoff := now.Add(-duration)
	kept := make([]core.CatalogEntry, 0, len(entries))
	for _, entry := range entries {
		if !entry.LastUpdated.IsZero() && !entry.LastUpdated.Before(cutoff) {
			kept = append(kept, entry)
		}
	}
	return kept
}

// filterByFavorites keeps entries whose destination is favorited.
func filterByFavorites(entries []core.CatalogEntry, favorites map[string]bool) []core.CatalogEntry {
	kept := make([]core.CatalogEntry, 0, len(entries))
	for _, entry := range entries {
		if favorites[entry.Destination] {
			kept = append(kept, entry)
		}
	}
	return kept
}
