package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateFilterState(t *testing.T) {
	t.Run("default state is valid", func(t *testing.T) {
		assert.NoError(t, ValidateFilterState(DefaultFilterState()))
	})

	t.Run("all enum combinations are valid", func(t *testing.T) {
		for _, w := range []TimeWindow{TimeWindowAll, TimeWindowDay, TimeWindowWeek, TimeWindowMonth} {
			for _, o := range []SortOrder{SortRelevance, SortAlphabetical, SortRecency, SortFrequency} {
				fs := FilterState{TimeWindow: w, SortOrder: o}
				assert.NoError(t, ValidateFilterState(fs))
			}
		}
	})

	t.Run("unknown time window", func(t *testing.T) {
		fs := DefaultFilterState()
		fs.TimeWindow = "fortnight"
		err := ValidateFilterState(fs)
		assert.ErrorIs(t, err, ErrInvalidFilterState)
		assert.ErrorIs(t, err, ErrInvalidTimeWindow)
	})

	t.Run("unknown sort order", func(t *testing.T) {
		fs := DefaultFilterState()
		fs.SortOrder = "shuffled"
		err := ValidateFilterState(fs)
		assert.ErrorIs(t, err, ErrInvalidFilterState)
		assert.ErrorIs(t, err, ErrInvalidSortOrder)
	})
}

func TestValidateLimits(t *testing.T) {
	assert.NoError(t, ValidateLimits(DefaultLimits()))

	for _, l := range []Limits{
		{Recents: 0, Favorites: 5, History: 10, Suggestions: 5},
		{Recents: 5, Favorites: -1, History: 10, Suggestions: 5},
		{Recents: 5, Favorites: 5, History: 0, Suggestions: 5},
		{Recents: 5, Favorites: 5, History: 10, Suggestions: 0},
	} {
		assert.ErrorIs(t, ValidateLimits(l), ErrInvalidLimits)
	}
}
