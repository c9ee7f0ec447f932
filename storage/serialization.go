// Copyright 2026 YY-Nexus
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package storage

import (
	"encoding/json"
	"fmt"

	"github.com/YY-Nexus/MediNexus--sub002/core"
)

// Stored values are JSON so they stay inspectable and survive schema drift:
// a value that no longer decodes is replaced by its default, never surfaced.

// MarshalRecents serializes a recent-entry list.
func MarshalRecents(entries []core.RecentEntry) ([]byte, error) {
	return json.Marshal(entries)
}

// UnmarshalRecents deserializes a recent-entry list.
func UnmarshalRecents(data []byte) ([]core.RecentEntry, error) {
	var entries []core.RecentEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedValue, err)
	}
	return entries, nil
}

// MarshalFavorites serializes a favorite-entry list.
func MarshalFavorites(entries []core.FavoriteEntry) ([]byte, error) {
	return json.Marshal(entries)
}

// UnmarshalFavorites deserializes a favorite-entry list.
func UnmarshalFavorites(data []byte) ([]core.FavoriteEntry, error) {
	var entries []core.FavoriteEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedValue, err)
	}
	return entries, nil
}

// MarshalHistory serializes a history-entry list.
func MarshalHistory(entries []core.HistoryEntry) ([]byte, error) {
	return json.Marshal(entries)
}

// UnmarshalHistory deserializes a history-entry list.
func UnmarshalHistory(data []byte) ([]core.HistoryEntry, error) {
	var entries []core.HistoryEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedValue, err)
	}
	return entries, nil
}

// MarshalFilterState serializes a FilterState.
func MarshalFilterState(state core.FilterState) ([]byte, error) {
	return json.Marshal(state)
}

// UnmarshalFilterState deserializes a FilterState. A value that decodes but
// carries unknown enum values is treated as malformed, so callers fall back
// to the default state.
func UnmarshalFilterState(data []byte) (core.FilterState, error) {
	var state core.FilterState
	if err := json.Unmarshal(data, &state); err != nil {
		return core.FilterState{}, fmt.Errorf("%w: %w", ErrMalformedValue, err)
	}
	if err := core.ValidateFilterState(state); err != nil {
		return core.FilterState{}, fmt.Errorf("%w: %w", ErrMalformedValue, err)
	}
	if state.Categories == nil {
		state.Categories = []string{}
	}
	return state, nil
}

// MarshalBool serializes a boolean toggle.
func MarshalBool(v bool) ([]byte, error) {
	return json.Marshal(v)
}

// UnmarshalBool deserializes a boolean toggle.
func UnmarshalBool(data []byte) (bool, error) {
	var v bool
	if err := json.Unmarshal(data, &v); err != nil {
		return false, fmt.Errorf("%w: %w", ErrMalformedValue, err)
	}
	return v, nil
}
