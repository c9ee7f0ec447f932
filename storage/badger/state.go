package badger

import (
	"context"
	"errors"
	"log/slog"

	"github.com/dgraph-io/badger/v4"

	"github.com/YY-Nexus/MediNexus--sub002/core"
	"github.com/YY-Nexus/MediNexus--sub002/storage"
)

// StateRepository implements storage.StateRepository for BadgerDB.
type StateRepository struct {
	backend *Backend
	logger  *slog.Logger
}

var _ storage.StateRepository = (*StateRepository)(nil)

// NewStateRepository creates a new StateRepository on top of an open backend.
func NewStateRepository(backend *Backend) (storage.StateRepository, error) {
	if backend == nil {
		return nil, storage.ErrBackendRequired
	}

	return &StateRepository{
		backend: backend,
		logger:  slog.Default(),
	}, nil
}

// Close releases repository resources. The backend is owned by the caller
// and is closed separately.
func (r *StateRepository) Close() error {
	return nil
}

// getValue reads the raw stored value for a logical key.
// A missing key is not an error: it returns found=false.
func (r *StateRepository) getValue(logicalKey string) (value []byte, found bool, err error) {
	err = r.backend.WithTx(func(tx *badger.Txn) error {
		item, err := tx.Get(makeStateKey(logicalKey))
		if err != nil {
			return err
		}
		value, err = item.ValueCopy(nil)
		return err
	}, false)

	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return value, true, nil
}

// setValue writes the raw value for a logical key, last writer wins.
func (r *StateRepository) setValue(logicalKey string, value []byte) error {
	return r.backend.WithTx(func(tx *badger.Txn) error {
		if err := tx.Set(makeStateKey(logicalKey), value); err != nil {
			return err
		}
		return tx.Commit()
	}, true)
}

// LoadRecents retrieves the recent-destination list.
func (r *StateRepository) LoadRecents(ctx context.Context) ([]core.RecentEntry, error) {
	data, found, err := r.getValue(keyRecents)
	if err != nil {
		return nil, err
	}
	if !found {
		return []core.RecentEntry{}, nil
	}

	entries, err := storage.UnmarshalRecents(data)
	if err != nil {
		r.logger.Warn("discarding malformed recents value", "err", err)
		return []core.RecentEntry{}, nil
	}
	return entries, nil
}

// SaveRecents replaces the stored recent-destination list.
func (r *StateRepository) SaveRecents(ctx context.Context, entries []core.RecentEntry) error {
	data, err := storage.MarshalRecents(entries)
	if err != nil {
		return err
	}
	return r.setValue(keyRecents, data)
}

// LoadFavorites retrieves the favorite destinations.
func (r *StateRepository) LoadFavorites(ctx context.Context) ([]core.FavoriteEntry, error) {
	data, found, err := r.getValue(keyFavorites)
	if err != nil {
		return nil, err
	}
	if !found {
		return []core.FavoriteEntry{}, nil
	}

	entries, err := storage.UnmarshalFavorites(data)
	if err != nil {
		r.logger.Warn("discarding malformed favorites value", "err", err)
		return []core.FavoriteEntry{}, nil
	}
	return entries, nil
}

// SaveFavorites replaces the stored favorite list.
func (r *StateRepository) SaveFavorites(ctx context.Context, entries []core.FavoriteEntry) error {
	data, err := storage.MarshalFavorites(entries)
	if err != nil {
		return err
	}
	return r.setValue(keyFavorites, data)
}

// LoadHistory retrieves the search history.
func (r *StateRepository) LoadHistory(ctx context.Context) ([]core.HistoryEntry, error) {
	data, found, err := r.getValue(keyHistory)
	if err != nil {
		return nil, err
	}
	if !found {
		return []core.HistoryEntry{}, nil
	}

	entries, err := storage.UnmarshalHistory(data)
	if err != nil {
		r.logger.Warn("discarding malformed history value", "err", err)
		return []core.HistoryEntry{}, nil
	}
	return entries, nil
}

// SaveHistory replaces the stored search history.
func (r *StateRepository) SaveHistory(ctx context.Context, entries []core.HistoryEntry) error {
	data, err := storage.MarshalHistory(entries)
	if err != nil {
		return err
	}
	return r.setValue(keyHistory, data)
}

// LoadFilterState retrieves the persisted filter preferences.
func (r *StateRepository) LoadFilterState(ctx context.Context) (core.FilterState, error) {
	data, found, err := r.getValue(keyFilterState)
	if err != nil {
		return core.FilterState{}, err
	}
	if !found {
		return core.DefaultFilterState(), nil
	}

	state, err := storage.UnmarshalFilterState(data)
	if err != nil {
		r.logger.Warn("discarding malformed filter state value", "err", err)
		return core.DefaultFilterState(), nil
	}
	return state, nil
}

// SaveFilterState replaces the stored filter preferences.
func (r *StateRepository) SaveFilterState(ctx context.Context, state core.FilterState) error {
	data, err := storage.MarshalFilterState(state)
	if err != nil {
		return err
	}
	return r.setValue(keyFilterState, data)
}

// LoadPreferences retrieves both UI toggles, each from its own key.
func (r *StateRepository) LoadPreferences(ctx context.Context) (core.Preferences, error) {
	prefs := core.DefaultPreferences()

	if v, ok, err := r.loadBool(keyShowSuggestions); err != nil {
		return core.Preferences{}, err
	} else if ok {
		prefs.ShowSuggestions = v
	}

	if v, ok, err := r.loadBool(keyShowHistory); err != nil {
		return core.Preferences{}, err
	} else if ok {
		prefs.ShowHistory = v
	}

	return prefs, nil
}

func (r *StateRepository) loadBool(logicalKey string) (value, found bool, err error) {
	data, found, err := r.getValue(logicalKey)
	if err != nil || !found {
		return false, false, err
	}

	v, err := storage.UnmarshalBool(data)
	if err != nil {
		r.logger.Warn("discarding malformed toggle value", "key", logicalKey, "err", err)
		return false, false, nil
	}
	return v, true, nil
}

// SaveShowSuggestions persists the show-suggestions toggle.
func (r *StateRepository) SaveShowSuggestions(ctx context.Context, show bool) error {
	data, err := storage.MarshalBool(show)
	if err != nil {
		return err
	}
	return r.setValue(keyShowSuggestions, data)
}

// SaveShowHistory persists the show-history toggle.
func (r *StateRepository) SaveShowHistory(ctx context.Context, show bool) error {
	data, err := storage.MarshalBool(show)
	if err != nil {
		return err
	}
	return r.setValue(keyShowHistory, data)
}
