package session

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/YY-Nexus/MediNexus--sub002/core"
	"github.com/YY-Nexus/MediNexus--sub002/search"
	"github.com/YY-Nexus/MediNexus--sub002/storage"
	"github.com/YY-Nexus/MediNexus--sub002/suggest"
)

// Controller owns the in-memory session state of the navigation search
// engine and mediates every write back to the persisted store. Presentation
// layers consume its read-only views and call its action methods; they own
// no logic of their own.
//
// The controller is a single logical actor: all persistence writes happen
// synchronously on its call path, one at a time, and a failed write is
// logged and swallowed, leaving in-memory state as the source of truth for
// the rest of the session.
type Controller struct {
	entries    []core.CatalogEntry
	categories []string
	searcher   *search.Searcher
	suggester  *suggest.Generator
	repo       storage.StateRepository
	navigate   func(destination string)
	limits      core.Limits
	logger      *slog.Logger
	now         func() time.Time
	suggestOpts []suggest.Option

	open        bool
	filterPanel bool
	query       string

	recents   []core.RecentEntry
	favorites []core.FavoriteEntry
	history   []core.HistoryEntry
	filter    core.FilterState
	prefs     core.Preferences
}

// Option configures a Controller.
type Option func(*Controller) error

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(c *Controller) error {
		if logger == nil {
			logger = slog.Default()
		}
		c.logger = logger
		return nil
	}
}

// WithLimits overrides the default caps for recents, favorites, history,
// and suggestions.
func WithLimits(limits core.Limits) Option {
	return func(c *Controller) error {
		if err := core.ValidateLimits(limits); err != nil {
			return err
		}
		c.limits = limits
		return nil
	}
}

// WithNavigator sets the external navigation side effect invoked when a
// result is selected. The controller does not know how navigation is
// actually performed. Default is a no-op.
func WithNavigator(navigate func(destination string)) Option {
	return func(c *Controller) error {
		c.navigate = navigate
		return nil
	}
}

// WithClock overrides the time source. Intended for tests.
func WithClock(now func() time.Time) Option {
	return func(c *Controller) error {
		if now != nil {
			c.now = now
		}
		return nil
	}
}

// WithSuggestOptions forwards options to the internally built suggestion
// generator.
func WithSuggestOptions(opts ...suggest.Option) Option {
	return func(c *Controller) error {
		c.suggestOpts = append(c.suggestOpts, opts...)
		return nil
	}
}

// NewController creates a session controller over a flattened catalog and a
// state repository, loading all persisted state once. The catalog is
// read-only for the lifetime of the session.
func NewController(ctx context.Context, entries []core.CatalogEntry, categories []string, repo storage.StateRepository, opts ...Option) (*Controller, error) {
	if entries == nil {
		return nil, ErrCatalogRequired
	}
	if repo == nil {
		return nil, ErrRepositoryRequired
	}

	c := &Controller{
		entries:    entries,
		categories: categories,
		repo:       repo,
		limits:     core.DefaultLimits(),
		logger:     slog.Default(),
		now:        time.Now,
		filter:     core.DefaultFilterState(),
		prefs:      core.DefaultPreferences(),
	}

	// Apply options
	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}

	searcher, err := search.NewSearcher(entries, search.WithLogger(c.logger))
	if err != nil {
		return nil, err
	}
	c.searcher = searcher

	suggestOpts := append([]suggest.Option{
		suggest.WithLogger(c.logger),
		suggest.WithLimit(c.limits.Suggestions),
	}, c.suggestOpts...)
	suggester, err := suggest.NewGenerator(entries, suggestOpts...)
	if err != nil {
		return nil, err
	}
	c.suggester = suggester

	if err := c.loadState(ctx); err != nil {
		return nil, err
	}

	return c, nil
}

// loadState pulls all persisted entities from the store. Missing and
// malformed values already arrive as defaults from the repository.
func (c *Controller) loadState(ctx context.Context) error {
	recents, err := c.repo.LoadRecents(ctx)
	if err != nil {
		return err
	}
	c.recents = c.truncateRecents(recents)

	favorites, err := c.repo.LoadFavorites(ctx)
	if err != nil {
		return err
	}
	if len(favorites) > c.limits.Favorites {
		favorites = favorites[:c.limits.Favorites]
	}
	c.favorites = favorites

	history, err := c.repo.LoadHistory(ctx)
	if err != nil {
		return err
	}
	if len(history) > c.limits.History {
		history = history[:c.limits.History]
	}
	c.history = history

	filter, err := c.repo.LoadFilterState(ctx)
	if err != nil {
		return err
	}
	c.filter = filter

	prefs, err := c.repo.LoadPreferences(ctx)
	if err != nil {
		return err
	}
	c.prefs = prefs

	return nil
}

// ToggleSearch flips the search surface open or closed and returns the new
// state. Closing the surface resets the current query.
func (c *Controller) ToggleSearch() bool {
	c.open = !c.open
	if !c.open {
		c.query = ""
	}
	return c.open
}

// IsOpen reports whether the search surface is open.
func (c *Controller) IsOpen() bool {
	return c.open
}

// ToggleFilterPanel flips the filter panel visibility and returns the new
// state.
func (c *Controller) ToggleFilterPanel() bool {
	c.filterPanel = !c.filterPanel
	return c.filterPanel
}

// FilterPanelVisible reports whether the filter panel is shown.
func (c *Controller) FilterPanelVisible() bool {
	return c.filterPanel
}

// SetQuery records a query change, recomputes the derived views, and — for a
// non-empty query — upserts a history entry carrying the matcher's current
// result count. It returns the new view.
func (c *Controller) SetQuery(ctx context.Context, query string) View {
	c.query = query

	trimmed := strings.TrimSpace(query)
	if trimmed != "" {
		matchCount := len(c.searcher.Match(query))
		c.upsertHistory(ctx, trimmed, matchCount)
	}

	return c.view()
}

// Query returns the current raw query.
func (c *Controller) Query() string {
	return c.query
}

// Select records a visit to the given entry, closes the search surface, and
// emits the external navigation side effect. The entry may be a dangling
// reference (a stored recent or favorite whose catalog entry no longer
// exists); it is passed through as-is.
func (c *Controller) Select(ctx context.Context, entry core.CatalogEntry) {
	c.bumpRecent(ctx, entry)
	c.open = false
	c.query = ""
	if c.navigate != nil {
		c.navigate(entry.Destination)
	}
}

// ToggleFavorite adds or removes the entry from favorites and reports
// whether it is favorited afterwards. An insertion beyond the cap is
// rejected outright: no existing favorite is evicted.
func (c *Controller) ToggleFavorite(ctx context.Context, entry core.CatalogEntry) bool {
	for i, fav := range c.favorites {
		if fav.Destination == entry.Destination {
			c.favorites = append(c.favorites[:i], c.favorites[i+1:]...)
			c.persistFavorites(ctx)
			return false
		}
	}

	if len(c.favorites) >= c.limits.Favorites {
		c.logger.Debug("favorite cap reached, insertion rejected",
			"destination", entry.Destination, "cap", c.limits.Favorites)
		return false
	}

	c.favorites = append(c.favorites, core.FavoriteEntry{
		Title:       entry.Title,
		Destination: entry.Destination,
		ParentTitle: entry.ParentTitle,
	})
	c.persistFavorites(ctx)
	return true
}

// IsFavorite reports whether a destination is currently favorited.
func (c *Controller) IsFavorite(destination string) bool {
	for _, fav := range c.favorites {
		if fav.Destination == destination {
			return true
		}
	}
	return false
}

// ClearHistory empties the search history and persists immediately.
func (c *Controller) ClearHistory(ctx context.Context) {
	c.history = []core.HistoryEntry{}
	c.persistHistory(ctx)
}

// SetFilter replaces the filter state and persists immediately. An invalid
// state is ignored and the previous one kept.
func (c *Controller) SetFilter(ctx context.Context, state core.FilterState) View {
	if err := core.ValidateFilterState(state); err != nil {
		c.logger.Warn("rejecting invalid filter state", "err", err)
		return c.view()
	}
	if state.Categories == nil {
		state.Categories = []string{}
	}
	c.filter = state
	if err := c.repo.SaveFilterState(ctx, c.filter); err != nil {
		c.logger.Warn("failed to persist filter state", "err", err)
	}
	return c.view()
}

// SetShowSuggestions updates the show-suggestions toggle and persists it.
func (c *Controller) SetShowSuggestions(ctx context.Context, show bool) {
	c.prefs.ShowSuggestions = show
	if err := c.repo.SaveShowSuggestions(ctx, show); err != nil {
		c.logger.Warn("failed to persist show-suggestions toggle", "err", err)
	}
}

// SetShowHistory updates the show-history toggle and persists it.
func (c *Controller) SetShowHistory(ctx context.Context, show bool) {
	c.prefs.ShowHistory = show
	if err := c.repo.SaveShowHistory(ctx, show); err != nil {
		c.logger.Warn("failed to persist show-history toggle", "err", err)
	}
}

// Results computes the current filtered, ordered result set. Pure and cheap
// enough to run on every keystroke.
func (c *Controller) Results() []core.CatalogEntry {
	return c.searcher.Search(c.query, c.filter, c.favoriteSet(), c.now())
}

// Suggestions computes the current completion list. Suppressed entirely when
// the show-suggestions preference is off or the query is empty.
func (c *Controller) Suggestions() []core.Suggestion {
	if !c.prefs.ShowSuggestions {
		return nil
	}
	return c.suggester.Generate(c.query, c.history)
}

// Recents returns the recent destinations, most recent first.
func (c *Controller) Recents() []core.RecentEntry {
	return c.recents
}

// Favorites returns the favorites in insertion order.
func (c *Controller) Favorites() []core.FavoriteEntry {
	return c.favorites
}

// History returns the search history, most recent first. The view is
// suppressed when the show-history preference is off; the stored list is
// retained either way.
func (c *Controller) History() []core.HistoryEntry {
	if !c.prefs.ShowHistory {
		return nil
	}
	return c.history
}

// FilterState returns the current filter preferences.
func (c *Controller) FilterState() core.FilterState {
	return c.filter
}

// Preferences returns the current UI toggles.
func (c *Controller) Preferences() core.Preferences {
	return c.prefs
}

// Categories returns the distinct catalog categories for filter options.
func (c *Controller) Categories() []string {
	return c.categories
}

func (c *Controller) view() View {
	return View{
		Query:       c.query,
		Results:     c.Results(),
		Suggestions: c.Suggestions(),
	}
}

func (c *Controller) favoriteSet() map[string]bool {
	set := make(map[string]bool, len(c.favorites))
	for _, fav := range c.favorites {
		set[fav.Destination] = true
	}
	return set
}

// bumpRecent moves the entry's destination to the front of the recents,
// deduplicated by destination and capped.
func (c *Controller) bumpRecent(ctx context.Context, entry core.CatalogEntry) {
	recent := core.RecentEntry{
		Title:       entry.Title,
		Destination: entry.Destination,
		VisitedAt:   c.now(),
		ParentTitle: entry.ParentTitle,
	}

	kept := make([]core.RecentEntry, 0, len(c.recents)+1)
	kept = append(kept, recent)
	for _, r := range c.recents {
		if r.Destination != entry.Destination {
			kept = append(kept, r)
		}
	}
	c.recents = c.truncateRecents(kept)
	c.persistRecents(ctx)
}

func (c *Controller) truncateRecents(entries []core.RecentEntry) []core.RecentEntry {
	if len(entries) > c.limits.Recents {
		return entries[:c.limits.Recents]
	}
	return entries
}

// upsertHistory refreshes the entry for a query, keyed case-insensitively.
// A repeated query keeps a single entry: its timestamp and result count are
// updated and it moves to the front, preserving most-recent-first order.
func (c *Controller) upsertHistory(ctx context.Context, query string, resultCount int) {
	entry := core.HistoryEntry{
		Query:       query,
		SearchedAt:  c.now(),
		ResultCount: resultCount,
	}

	key := strings.ToLower(query)
	kept := make([]core.HistoryEntry, 0, len(c.history)+1)
	kept = append(kept, entry)
	for _, h := range c.history {
		if strings.ToLower(h.Query) != key {
			kept = append(kept, h)
		}
	}
	if len(kept) > c.limits.History {
		kept = kept[:c.limits.History]
	}
	c.history = kept
	c.persistHistory(ctx)
}

func (c *Controller) persistRecents(ctx context.Context) {
	if err := c.repo.SaveRecents(ctx, c.recents); err != nil {
		c.logger.Warn("failed to persist recents", "err", err)
	}
}

func (c *Controller) persistFavorites(ctx context.Context) {
	if err := c.repo.SaveFavorites(ctx, c.favorites); err != nil {
		c.logger.Warn("failed to persist favorites", "err", err)
	}
}

func (c *Controller) persistHistory(ctx context.Context) {
	if err := c.repo.SaveHistory(ctx, c.history); err != nil {
		c.logger.Warn("failed to persist history", "err", err)
	}
}
