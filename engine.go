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

package navsearch

import (
	"context"
	"log/slog"

	"github.com/YY-Nexus/MediNexus--sub002/catalog"
	"github.com/YY-Nexus/MediNexus--sub002/core"
	"github.com/YY-Nexus/MediNexus--sub002/session"
	"github.com/YY-Nexus/MediNexus--sub002/storage"
	"github.com/YY-Nexus/MediNexus--sub002/storage/badger"
)

// Engine wires the navigation search subsystem together: it flattens the
// catalog, opens the persisted state store, and exposes a ready session
// controller. Embedding applications construct one Engine per catalog and
// keep it for the application lifetime.
type Engine struct {
	backend    *badger.Backend
	repo       storage.StateRepository
	controller *session.Controller
	entries    []core.CatalogEntry
	categories []string
	logger     *slog.Logger
}

// EngineOption configures an Engine.
type EngineOption func(*engineOptions)

type engineOptions struct {
	inMemory    bool
	logger      *slog.Logger
	sessionOpts []session.Option
}

// WithInMemoryStore keeps all persisted state in memory. Intended for tests
// and ephemeral sessions.
func WithInMemoryStore() EngineOption {
	return func(o *engineOptions) {
		o.inMemory = true
	}
}

// WithEngineLogger sets the logger shared by the engine and the components
// it builds.
func WithEngineLogger(logger *slog.Logger) EngineOption {
	return func(o *engineOptions) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithSessionOptions forwards options to the session controller, such as
// session.WithLimits or session.WithNavigator.
func WithSessionOptions(opts ...session.Option) EngineOption {
	return func(o *engineOptions) {
		o.sessionOpts = append(o.sessionOpts, opts...)
	}
}

// NewEngine flattens the catalog tree, opens the state store at storePath,
// and builds the session controller over both.
func NewEngine(ctx context.Context, nodes []core.Node, storePath string, opts ...EngineOption) (*Engine, error) {
	// Apply options
	options := &engineOptions{
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(options)
	}

	entries, categories := catalog.Flatten(nodes)

	// Open backend
	backend, err := badger.OpenBackend(storePath, options.inMemory)
	if err != nil {
		return nil, err
	}

	// Create state repository
	repo, err := badger.NewStateRepository(backend)
	if err != nil {
		backend.Close()
		return nil, err
	}

	sessionOpts := append([]session.Option{
		session.WithLogger(options.logger),
	}, options.sessionOpts...)
	controller, err := session.NewController(ctx, entries, categories, repo, sessionOpts...)
	if err != nil {
		repo.Close()
		backend.Close()
		return nil, err
	}

	return &Engine{
		backend:    backend,
		repo:       repo,
		controller: controller,
		entries:    entries,
		categories: categories,
		logger:     options.logger,
	}, nil
}

func (e *Engine) Close() error {
	// Close repository first
	if err := e.repo.Close(); err != nil {
		e.logger.Error("error closing state repository", "err", err)
		return err
	}

	// Close backend
	if err := e.backend.Close(); err != nil {
		e.logger.Error("error closing backend storage", "err", err)
		return err
	}
	return nil
}

// Session returns the session controller.
func (e *Engine) Session() *session.Controller {
	return e.controller
}

// Catalog returns the flattened catalog entries.
func (e *Engine) Catalog() []core.CatalogEntry {
	return e.entries
}

// Categories returns the distinct catalog categories, sorted.
func (e *Engine) Categories() []string {
	return e.categories
}

// StateRepository exposes the underlying store for callers that manage
// persisted state directly.
func (e *Engine) StateRepository() storage.StateRepository {
	return e.repo
}
