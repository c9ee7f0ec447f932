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

import "fmt"

// ValidateTimeWindow validates that a TimeWindow has a known value.
func ValidateTimeWindow(w TimeWindow) error {
	switch w {
	case TimeWindowAll, TimeWindowDay, TimeWindowWeek, TimeWindowMonth:
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrInvalidTimeWindow, w)
	}
}

// ValidateSortOrder validates that a SortOrder has a known value.
func ValidateSortOrder(o SortOrder) error {
	switch o {
	case SortRelevance, SortAlphabetical, SortRecency, SortFrequency:
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrInvalidSortOrder, o)
	}
}

// ValidateFilterState validates a FilterState according to domain rules.
//
// Validation rules:
//   - TimeWindow must be a known value
//   - SortOrder must be a known value
//
// Categories are not validated against the catalog: a stored category that no
// longer exists simply matches nothing.
func ValidateFilterState(fs FilterState) error {
	if err := ValidateTimeWindow(fs.TimeWindow); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidFilterState, err)
	}
	if err := ValidateSortOrder(fs.SortOrder); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidFilterState, err)
	}
	return nil
}

// ValidateLimits validates that every cap is positive.
func ValidateLimits(l Limits) error {
	if l.Recents < 1 || l.Favorites < 1 || l.History < 1 || l.Suggestions < 1 {
		return fmt.Errorf("%w: all caps must be at least 1", ErrInvalidLimits)
	}
	return nil
}
