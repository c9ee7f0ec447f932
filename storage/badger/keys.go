package badger

import "fmt"

// All engine state lives under one namespace, one key per logical entity.
const statePrefix = "navstate"

const (
	keyRecents         = "recentNavItems"
	keyFavorites       = "favoriteNavItems"
	keyHistory         = "searchHistory"
	keyFilterState     = "searchFilterPrefs"
	keyShowSuggestions = "showSearchSuggestions"
	keyShowHistory     = "showSearchHistory"
)

// makeStateKey generates the storage key for a logical entity.
func makeStateKey(logicalKey string) []byte {
	return []byte(fmt.Sprintf("%s:%s", statePrefix, logicalKey))
}
