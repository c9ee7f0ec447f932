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


package core

import "errors"

// Domain validation errors
var (
	// ErrInvalidFilterState indicates a FilterState failed validation.
	ErrInvalidFilterState = errors.New("invalid filter state")

	// ErrInvalidTimeWindow indicates an unknown TimeWindow value.
	ErrInvalidTimeWindow = errors.New("invalid time window")

	// ErrInvalidSortOrder indicates an unknown SortOrder value.
	ErrInvalidSortOrder = errors.New("invalid sort order")

	// ErrInvalidLimits indicates a Limits value with a non-positive cap.
	ErrInvalidLimits = errors.New("invalid limits")
)
