package core

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestIDFromContent(t *testing.T) {
	t.Run("deterministic", func(t *testing.T) {
		a := IDFromContent("/patients")
		b := IDFromContent("/patients")
		assert.Equal(t, a, b)
	})

	t.Run("distinct content yields distinct ids", func(t *testing.T) {
		a := IDFromContent("/patients")
		b := IDFromContent("/appointments")
		assert.NotEqual(t, a, b)
	})

	t.Run("empty content is valid", func(t *testing.T) {
		assert.NotPanics(t, func() { IDFromContent("") })
	})
}

func TestTimeWindowDuration(t *testing.T) {
	tests := []struct {
		window   TimeWindow
		duration time.Duration
		bounded  bool
	}{
		{TimeWindowAll, 0, false},
		{TimeWindowDay, 24 * time.Hour, true},
		{TimeWindowWeek, 7 * 24 * time.Hour, true},
		{TimeWindowMonth, 30 * 24 * time.Hour, true},
		{TimeWindow("bogus"), 0, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.window), func(t *testing.T) {
			d, ok := tt.window.Duration()
			assert.Equal(t, tt.bounded, ok)
			assert.Equal(t, tt.duration, d)
		})
	}
}

func TestDefaults(t *testing.T) {
	t.Run("filter state", func(t *testing.T) {
		fs := DefaultFilterState()
		assert.Empty(t, fs.Categories)
		assert.Equal(t, TimeWindowAll, fs.TimeWindow)
		assert.Equal(t, SortRelevance, fs.SortOrder)
		assert.False(t, fs.FavoritesOnly)
	})

	t.Run("preferences", func(t *testing.T) {
		prefs := DefaultPreferences()
		assert.True(t, prefs.ShowSuggestions)
		assert.True(t, prefs.ShowHistory)
	})

	t.Run("limits", func(t *testing.T) {
		limits := DefaultLimits()
		assert.Equal(t, 5, limits.Recents)
		assert.Equal(t, 5, limits.Favorites)
		assert.Equal(t, 10, limits.History)
		assert.Equal(t, 5, limits.Suggestions)
	})
}
