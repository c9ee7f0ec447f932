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

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/panjf2000/ants/v2"
	"github.com/urfave/cli/v2"

	navsearch "github.com/YY-Nexus/MediNexus--sub002"
	"github.com/YY-Nexus/MediNexus--sub002/config"
	"github.com/YY-Nexus/MediNexus--sub002/core"
	"github.com/YY-Nexus/MediNexus--sub002/search"
	"github.com/YY-Nexus/MediNexus--sub002/session"
)

func main() {
	app := &cli.App{
		Name:  "navsearch",
		Usage: "Navigation search over an application catalog",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   "Set logging level (debug, info, warn, error)",
				Value:   "info",
			},
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to TOML configuration file",
			},
			&cli.StringFlag{
				Name:     "catalog",
				Usage:    "Path to the catalog JSON file (a tree of navigation nodes)",
				Required: true,
			},
			&cli.StringFlag{
				Name:  "store",
				Usage: "Path to the state store directory (overrides config)",
			},
			&cli.BoolFlag{
				Name:  "in-memory",
				Usage: "Keep persisted state in memory for this run",
			},
		},
		Before: setupLogger,
		Commands: []*cli.Command{
			{
				Name:      "search",
				Usage:     "Run a query against the catalog",
				ArgsUsage: "<query>",
				Action:    searchCommand,
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "explain",
						Usage: "Log each pipeline stage of the search",
					},
					&cli.StringSliceFlag{
						Name:  "category",
						Usage: "Restrict results to the given categories",
					},
					&cli.StringFlag{
						Name:  "within",
						Usage: "Time window: all, day, week, month",
						Value: "all",
					},
					&cli.StringFlag{
						Name:  "sort",
						Usage: "Sort order: relevance, alphabetical, recency, frequency",
						Value: "relevance",
					},
					&cli.BoolFlag{
						Name:  "favorites-only",
						Usage: "Only show favorited destinations",
					},
				},
			},
			{
				Name:      "suggest",
				Usage:     "Show suggestions for a partial query",
				ArgsUsage: "<partial>",
				Action:    suggestCommand,
			},
			{
				Name:   "recents",
				Usage:  "List recently visited destinations",
				Action: recentsCommand,
			},
			{
				Name:   "favorites",
				Usage:  "List favorited destinations",
				Action: favoritesCommand,
			},
			{
				Name:   "history",
				Usage:  "List past queries",
				Action: historyCommand,
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "clear",
						Usage: "Clear the search history instead of listing it",
					},
				},
			},
			{
				Name:   "bench",
				Usage:  "Measure concurrent search throughput over the catalog",
				Action: benchCommand,
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:  "workers",
						Usage: "Size of the worker pool",
						Value: 8,
					},
					&cli.IntFlag{
						Name:  "searches",
						Usage: "Total number of searches to run",
						Value: 10000,
					},
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

// openEngine builds the engine from the global flags: configuration first,
// flag overrides second.
func openEngine(ctx context.Context, c *cli.Context) (*navsearch.Engine, *config.Config, error) {
	cfg, err := config.Load(c.String("config"), slog.Default())
	if err != nil {
		return nil, nil, err
	}

	storePath := cfg.Store.Path
	if c.String("store") != "" {
		storePath = c.String("store")
	}
	inMemory := cfg.Store.InMemory || c.Bool("in-memory")

	nodes, err := loadCatalog(c.String("catalog"))
	if err != nil {
		return nil, nil, err
	}

	opts := []navsearch.EngineOption{
		navsearch.WithSessionOptions(session.WithLimits(cfg.CoreLimits())),
	}
	if inMemory {
		opts = append(opts, navsearch.WithInMemoryStore())
	}

	engine, err := navsearch.NewEngine(ctx, nodes, storePath, opts...)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open engine: %w", err)
	}
	return engine, cfg, nil
}

// loadCatalog reads a JSON array of navigation nodes.
func loadCatalog(path string) ([]core.Node, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog: %w", err)
	}
	var nodes []core.Node
	if err := json.Unmarshal(data, &nodes); err != nil {
		return nil, fmt.Errorf("failed to parse catalog: %w", err)
	}
	return nodes, nil
}

func searchCommand(c *cli.Context) error {
	ctx := context.Background()

	query := strings.Join(c.Args().Slice(), " ")
	if query == "" {
		return fmt.Errorf("query is required")
	}

	engine, _, err := openEngine(ctx, c)
	if err != nil {
		return err
	}
	defer engine.Close()

	filter := core.FilterState{
		Categories:    c.StringSlice("category"),
		TimeWindow:    core.TimeWindow(c.String("within")),
		SortOrder:     core.SortOrder(c.String("sort")),
		FavoritesOnly: c.Bool("favorites-only"),
	}
	if filter.Categories == nil {
		filter.Categories = []string{}
	}
	if err := core.ValidateFilterState(filter); err != nil {
		return err
	}

	sess := engine.Session()
	sess.SetFilter(ctx, filter)

	var results []core.CatalogEntry
	if c.Bool("explain") {
		searcher, err := search.NewSearcher(engine.Catalog())
		if err != nil {
			return err
		}
		favorites := make(map[string]bool)
		for _, fav := range sess.Favorites() {
			favorites[fav.Destination] = true
		}
		results = searcher.SearchWithMonitor(query, filter, favorites, time.Now(), &logMonitor{logger: slog.Default()})
	} else {
		view := sess.SetQuery(ctx, query)
		results = view.Results
	}

	fmt.Printf("Found %d results\n", len(results))
	for i, entry := range results {
		location := entry.Title
		if entry.ParentTitle != "" {
			location = entry.ParentTitle + " / " + entry.Title
		}
		fmt.Printf("%d: %s -> %s [%s]\n", i+1, location, entry.Destination, entry.Category)
	}
	return nil
}

func suggestCommand(c *cli.Context) error {
	ctx := context.Background()

	partial := strings.Join(c.Args().Slice(), " ")
	if partial == "" {
		return fmt.Errorf("partial query is required")
	}

	engine, _, err := openEngine(ctx, c)
	if err != nil {
		return err
	}
	defer engine.Close()

	view := engine.Session().SetQuery(ctx, partial)
	for i, s := range view.Suggestions {
		fmt.Printf("%d: %s (%s)\n", i+1, s.Text, s.Source)
	}
	return nil
}

func recentsCommand(c *cli.Context) error {
	ctx := context.Background()

	engine, _, err := openEngine(ctx, c)
	if err != nil {
		return err
	}
	defer engine.Close()

	for i, r := range engine.Session().Recents() {
		fmt.Printf("%d: %s -> %s (visited %s)\n", i+1, r.Title, r.Destination, r.VisitedAt.Format(time.RFC3339))
	}
	return nil
}

func favoritesCommand(c *cli.Context) error {
	ctx := context.Background()

	engine, _, err := openEngine(ctx, c)
	if err != nil {
		return err
	}
	defer engine.Close()

	for i, f := range engine.Session().Favorites() {
		fmt.Printf("%d: %s -> %s\n", i+1, f.Title, f.Destination)
	}
	return nil
}

func historyCommand(c *cli.Context) error {
	ctx := context.Background()

	engine, _, err := openEngine(ctx, c)
	if err != nil {
		return err
	}
	defer engine.Close()

	sess := engine.Session()
	if c.Bool("clear") {
		sess.ClearHistory(ctx)
		fmt.Println("History cleared")
		return nil
	}

	for i, h := range sess.History() {
		fmt.Printf("%d: %q (%d results, %s)\n", i+1, h.Query, h.ResultCount, h.SearchedAt.Format(time.RFC3339))
	}
	return nil
}

// benchCommand hammers the search pipeline from a worker pool. Searches are
// pure functions over immutable catalog data, so they run concurrently
// without coordination.
func benchCommand(c *cli.Context) error {
	ctx := context.Background()

	engine, cfg, err := openEngine(ctx, c)
	if err != nil {
		return err
	}
	defer engine.Close()

	searcher, err := search.NewSearcher(engine.Catalog())
	if err != nil {
		return err
	}

	queries := benchQueries(engine.Catalog())
	if len(queries) == 0 {
		return fmt.Errorf("catalog has no searchable entries")
	}

	workers := c.Int("workers")
	total := c.Int("searches")
	if workers < 1 || total < 1 {
		return fmt.Errorf("workers and searches must be greater than 0")
	}

	pool, err := ants.NewPool(workers)
	if err != nil {
		return fmt.Errorf("failed to create worker pool: %w", err)
	}
	defer pool.Release()

	filter := core.DefaultFilterState()
	favorites := map[string]bool{}
	now := time.Now()

	var wg sync.WaitGroup
	start := time.Now()
	for i := 0; i < total; i++ {
		query := queries[i%len(queries)]
		wg.Add(1)
		if err := pool.Submit(func() {
			defer wg.Done()
			searcher.Search(query, filter, favorites, now)
		}); err != nil {
			wg.Done()
			return fmt.Errorf("failed to submit search: %w", err)
		}
	}
	wg.Wait()
	elapsed := time.Since(start)

	fmt.Printf("Ran %d searches across %d workers in %s\n", total, workers, elapsed.Round(time.Millisecond))
	fmt.Printf("Throughput: %.0f searches/sec\n", float64(total)/elapsed.Seconds())
	fmt.Printf("Limits: recents=%d favorites=%d history=%d suggestions=%d\n",
		cfg.Limits.Recents, cfg.Limits.Favorites, cfg.Limits.History, cfg.Limits.Suggestions)
	return nil
}

// benchQueries derives short probe queries from catalog titles.
func benchQueries(entries []core.CatalogEntry) []string {
	queries := make([]string, 0, len(entries)*2)
	for _, entry := range entries {
		title := strings.TrimSpace(entry.Title)
		if title == "" {
			continue
		}
		queries = append(queries, title)
		runes := []rune(title)
		if len(runes) > 2 {
			queries = append(queries, string(runes[:2]))
		}
	}
	return queries
}

// logMonitor traces each search pipeline stage through slog.
type logMonitor struct {
	logger *slog.Logger
}

var _ search.SearchMonitor = (*logMonitor)(nil)

func (m *logMonitor) Start(query string) {
	m.logger.Info("search started", "query", query)
}

func (m *logMonitor) AfterMatch(matches []core.CatalogEntry) {
	m.logger.Info("substring match complete", "matches", len(matches))
}

func (m *logMonitor) AfterFilter(filtered []core.CatalogEntry) {
	m.logger.Info("filters applied", "remaining", len(filtered))
}

func (m *logMonitor) Finish(results []core.CatalogEntry) {
	m.logger.Info("search finished", "results", len(results))
}

func setupLogger(c *cli.Context) error {
	// Get log level from flag and normalize to lowercase
	levelStr := strings.ToLower(c.String("log-level"))

	// Map string to slog.Level
	var level slog.Level
	switch levelStr {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		return fmt.Errorf("invalid log level %q: must be one of debug, info, warn, error", levelStr)
	}

	// Configure slog with the specified level
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	return nil
}
