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


// Package suggest generates query completions for partial search input.
//
// Candidates come from five sources, assembled in strict priority order:
//   - history: past queries containing the input, most recent first
//   - popular: a fixed domain vocabulary, substring-matched in list order
//   - trending: a second fixed vocabulary
//   - correction: catalog terms close to the input under a positional
//     mismatch rule (not a true edit distance, by contract)
//   - contextual: templated completions of the raw input
//
// Duplicate texts are skipped case-insensitively across sources. The
// generator is stateless between calls: every keystroke recomputes the list
// from the catalog term index and the caller-supplied history.
package suggest
