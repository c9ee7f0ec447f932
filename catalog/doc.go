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


// Package catalog flattens the hierarchical navigation catalog into the flat
// entry list the search engine operates over.
//
// The catalog is read-only input: the flattened entry set is created once at
// session start-up and regenerated only when the source catalog changes.
package catalog
