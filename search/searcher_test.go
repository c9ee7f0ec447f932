package search

import (
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/YY-Nexus/MediNexus--sub002/catalog"
	"github.com/YY-Nexus/MediNexus--sub002/core"
)

func testCatalog(t *testing.T) []core.CatalogEntry {
	t.Helper()
	entries, _ := catalog.Flatten([]core.Node{
		{Title: "Patient Records", Destination: "/patients", Category: "clinical"},
		{Title: "Cardiology", Destination: "/cardiology", Category: "clinical"},
		{Title: "Postcard Printing", Destination: "/postcards", Category: "admin"},
		{Title: "Billing", Destination: "/billing", Category: "finance"},
		{
			Title: "数据分析",
			Children: []core.Node{
				{Title: "运营报表", Destination: "/analytics/ops"},
			},
		},
	})
	return entries
}

func TestNewSearcher(t *testing.T) {
	t.Run("valid configuration", func(t *testing.T) {
		searcher, err := NewSearcher(testCatalog(t))
		require.NoError(t, err)
		assert.NotNil(t, searcher)
	})

	t.Run("with custom logger", func(t *testing.T) {
		searcher, err := NewSearcher(testCatalog(t), WithLogger(slog.Default()))
		require.NoError(t, err)
		assert.NotNil(t, searcher)
	})

	t.Run("with nil logger falls back to default", func(t *testing.T) {
		searcher, err := NewSearcher(testCatalog(t), WithLogger(nil))
		require.NoError(t, err)
		assert.NotNil(t, searcher)
	})

	t.Run("nil catalog", func(t *testing.T) {
		_, err := NewSearcher(nil)
		assert.Equal(t, ErrCatalogRequired, err)
	})

	t.Run("empty catalog is valid", func(t *testing.T) {
		searcher, err := NewSearcher([]core.CatalogEntry{})
		require.NoError(t, err)
		assert.Empty(t, searcher.Match("anything"))
	})
}

func TestMatch(t *testing.T) {
	searcher, err := NewSearcher(testCatalog(t))
	require.NoError(t, err)

	t.Run("empty query matches nothing", func(t *testing.T) {
		assert.Empty(t, searcher.Match(""))
	})

	t.Run("whitespace query matches nothing", func(t *testing.T) {
		assert.Empty(t, searcher.Match("   \t"))
	})

	t.Run("title substring, case-insensitive", func(t *testing.T) {
		matches := searcher.Match("PAT")
		require.Len(t, matches, 1)
		assert.Equal(t, "/patients", matches[0].Destination)
	})

	t.Run("substring matches mid-word", func(t *testing.T) {
		// "card" matches both "Cardiology" and "Postcard Printing"
		matches := searcher.Match("card")
		destinations := destinationsOf(matches)
		assert.ElementsMatch(t, []string{"/cardiology", "/postcards"}, destinations)
	})

	t.Run("matches via parent title", func(t *testing.T) {
		matches := searcher.Match("数据")
		require.Len(t, matches, 1)
		assert.Equal(t, "/analytics/ops", matches[0].Destination)
	})

	t.Run("matches via category", func(t *testing.T) {
		matches := searcher.Match("finance")
		require.Len(t, matches, 1)
		assert.Equal(t, "/billing", matches[0].Destination)
	})

	t.Run("every match contains the query somewhere", func(t *testing.T) {
		for _, q := range []string{"a", "card", "报", "clinical", "ING"} {
			for _, m := range searcher.Match(q) {
				assert.True(t, entryMatches(m, strings.ToLower(q)), "query %q entry %q", q, m.Title)
			}
		}
	})
}

func TestRank(t *testing.T) {
	searcher, err := NewSearcher(testCatalog(t))
	require.NoError(t, err)

	t.Run("prefix outranks substring", func(t *testing.T) {
		matches := searcher.Match("card")
		ranked := searcher.Rank("card", matches)
		require.Len(t, ranked, 2)
		assert.Equal(t, "Cardiology", ranked[0].Title)
		assert.Equal(t, "Postcard Printing", ranked[1].Title)
	})

	t.Run("single prefix match stays first", func(t *testing.T) {
		matches := searcher.Match("pat")
		ranked := searcher.Rank("pat", matches)
		require.Len(t, ranked, 1)
		assert.Equal(t, "Patient Records", ranked[0].Title)
	})

	t.Run("title-substring outranks context-only match", func(t *testing.T) {
		entries := []core.CatalogEntry{
			{Title: "质控指标", ParentTitle: "报表中心", Keywords: []string{"质控指标", "报表中心"}},
			{Title: "运营报表", Keywords: []string{"运营报表"}},
		}
		ranked := (&Searcher{entries: entries}).Rank("报表", entries)
		assert.Equal(t, "运营报表", ranked[0].Title)
	})

	t.Run("alphabetical tie-break", func(t *testing.T) {
		entries := []core.CatalogEntry{
			{Title: "Ward B", Keywords: []string{"ward b"}},
			{Title: "Ward A", Keywords: []string{"ward a"}},
		}
		ranked := (&Searcher{entries: entries}).Rank("ward", entries)
		assert.Equal(t, "Ward A", ranked[0].Title)
		assert.Equal(t, "Ward B", ranked[1].Title)
	})

	t.Run("output is a permutation of input", func(t *testing.T) {
		matches := searcher.Match("i")
		ranked := searcher.Rank("i", matches)
		assert.ElementsMatch(t, destinationsOf(matches), destinationsOf(ranked))
	})

	t.Run("input slice is not modified", func(t *testing.T) {
		matches := searcher.Match("card")
		before := destinationsOf(matches)
		searcher.Rank("card", matches)
		assert.Equal(t, before, destinationsOf(matches))
	})
}

func TestSortEntries(t *testing.T) {
	entries := []core.CatalogEntry{
		{Title: "b page", LastUpdated: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC), UsageFrequency: 5},
		{Title: "A Page", LastUpdated: time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC), UsageFrequency: 1},
		{Title: "c page", UsageFrequency: 9}, // no LastUpdated
	}

	t.Run("alphabetical is case-insensitive", func(t *testing.T) {
		sorted := SortEntries(core.SortAlphabetical, entries)
		assert.Equal(t, []string{"A Page", "b page", "c page"}, titlesOf(sorted))
	})

	t.Run("recency descending, missing oldest", func(t *testing.T) {
		sorted := SortEntries(core.SortRecency, entries)
		assert.Equal(t, []string{"A Page", "b page", "c page"}, titlesOf(sorted))
	})

	t.Run("frequency descending", func(t *testing.T) {
		sorted := SortEntries(core.SortFrequency, entries)
		assert.Equal(t, []string{"c page", "b page", "A Page"}, titlesOf(sorted))
	})

	t.Run("relevance leaves order untouched", func(t *testing.T) {
		sorted := SortEntries(core.SortRelevance, entries)
		assert.Equal(t, titlesOf(entries), titlesOf(sorted))
	})
}

// recordingMonitor captures pipeline stages for assertions.
type recordingMonitor struct {
	query    string
	matched  int
	filtered int
	finished int
}

var _ SearchMonitor = (*recordingMonitor)(nil)

func (m *recordingMonitor) Start(query string)                    { m.query = query }
func (m *recordingMonitor) AfterMatch(e []core.CatalogEntry)      { m.matched = len(e) }
func (m *recordingMonitor) AfterFilter(e []core.CatalogEntry)     { m.filtered = len(e) }
func (m *recordingMonitor) Finish(results []core.CatalogEntry)    { m.finished = len(results) }

func TestSearchPipeline(t *testing.T) {
	searcher, err := NewSearcher(testCatalog(t))
	require.NoError(t, err)
	now := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

	t.Run("relevance by default", func(t *testing.T) {
		results := searcher.Search("card", core.DefaultFilterState(), nil, now)
		require.Len(t, results, 2)
		assert.Equal(t, "Cardiology", results[0].Title)
	})

	t.Run("category filter narrows before ordering", func(t *testing.T) {
		fs := core.DefaultFilterState()
		fs.Categories = []string{"admin"}
		results := searcher.Search("card", fs, nil, now)
		require.Len(t, results, 1)
		assert.Equal(t, "/postcards", results[0].Destination)
	})

	t.Run("alternate order replaces relevance", func(t *testing.T) {
		fs := core.DefaultFilterState()
		fs.SortOrder = core.SortAlphabetical
		results := searcher.Search("card", fs, nil, now)
		require.Len(t, results, 2)
		assert.Equal(t, "Cardiology", results[0].Title)
		assert.Equal(t, "Postcard Printing", results[1].Title)
	})

	t.Run("monitor observes every stage", func(t *testing.T) {
		monitor := &recordingMonitor{}
		fs := core.DefaultFilterState()
		fs.Categories = []string{"clinical"}
		searcher.SearchWithMonitor("card", fs, nil, now, monitor)
		assert.Equal(t, "card", monitor.query)
		assert.Equal(t, 2, monitor.matched)
		assert.Equal(t, 1, monitor.filtered)
		assert.Equal(t, 1, monitor.finished)
	})
}

func destinationsOf(entries []core.CatalogEntry) []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.Destination
	}
	return out
}

func titlesOf(entries []core.CatalogEntry) []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.Title
	}
	return out
}
