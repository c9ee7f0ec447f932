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


// Package search matches, filters, and orders navigation catalog entries.
//
// The Searcher type implements a three-stage pipeline:
//   - Substring matching over title, parent title, keywords, and category
//   - Independent narrowing filters: category, time window, favorites-only
//   - Ordering: a three-tier relevance rule by default, or an explicit
//     alternate order (alphabetical, recency, frequency)
//
// Every stage is a pure computation: the pipeline holds no mutable state and
// is safe to run concurrently from multiple sessions.
package search
