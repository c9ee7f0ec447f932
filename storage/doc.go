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


// Package storage provides the persistence abstraction for the navigation
// search engine.
//
// This package defines the StateRepository interface that decouples the
// search and session logic from the storage implementation, so backends
// (BadgerDB, in-memory, etc.) can be used interchangeably.
//
// # Constructor Return Type Pattern
//
// Public constructors in implementation packages return the
// storage.StateRepository interface rather than their concrete type:
//
//	repo, err := badger.NewStateRepository(backend)  // storage.StateRepository
//
// This keeps consumers decoupled from backend specifics and lets tests swap
// in alternative implementations without modification.
//
// # Durability Model
//
// The engine loads all state once at start-up and writes each entity back
// synchronously after every mutation. Writes are fire-and-forget from the
// caller's point of view: a failed write is logged and swallowed, and the
// in-memory state remains the source of truth for the session. All writes
// originate from a single logical actor, so last-writer-wins semantics need
// no locking or transaction discipline.
//
// # Value Encoding
//
// Values are stored as JSON. A missing or malformed value never propagates
// an error to the engine; the documented default is returned instead.
package storage
