package storage

import (
	"context"

	"github.com/YY-Nexus/MediNexus--sub002/core"
)

// StateRepository persists the cross-session user state of the navigation
// search engine: recents, favorites, search history, filter preferences, and
// the two UI toggles. One logical key backs each entity.
//
// Load methods never fail on a missing or malformed stored value: they return
// the documented default instead. Errors are reserved for genuine backend
// failures (e.g. a closed store).
type StateRepository interface {
	// LoadRecents retrieves the recent-destination list, most recent first.
	// A missing or malformed value yields an empty list.
	LoadRecents(ctx context.Context) ([]core.RecentEntry, error)

	// SaveRecents replaces the stored recent-destination list.
	SaveRecents(ctx context.Context, entries []core.RecentEntry) error

	// LoadFavorites retrieves the favorite destinations in insertion order.
	// A missing or malformed value yields an empty list.
	LoadFavorites(ctx context.Context) ([]core.FavoriteEntry, error)

	// SaveFavorites replaces the stored favorite list.
	SaveFavorites(ctx context.Context, entries []core.FavoriteEntry) error

	// LoadHistory retrieves the search history, most recent first.
	// A missing or malformed value yields an empty list.
	LoadHistory(ctx context.Context) ([]core.HistoryEntry, error)

	// SaveHistory replaces the stored search history.
	SaveHistory(ctx context.Context, entries []core.HistoryEntry) error

	// LoadFilterState retrieves the persisted filter preferences.
	// A missing or malformed value yields core.DefaultFilterState().
	LoadFilterState(ctx context.Context) (core.FilterState, error)

	// SaveFilterState replaces the stored filter preferences.
	SaveFilterState(ctx context.Context, state core.FilterState) error

	// LoadPreferences retrieves both UI toggles. Each toggle is stored under
	// its own key; a missing or malformed value yields true for that toggle.
	LoadPreferences(ctx context.Context) (core.Preferences, error)

	// SaveShowSuggestions persists the show-suggestions toggle.
	SaveShowSuggestions(ctx context.Context, show bool) error

	// SaveShowHistory persists the show-history toggle.
	SaveShowHistory(ctx context.Context, show bool) error

	// Close releases repository resources.
	Close() error
}
