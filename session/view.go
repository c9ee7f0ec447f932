package session

import "github.com/YY-Nexus/MediNexus--sub002/core"

// View is the derived, read-only output of a query change: the text as
// typed, the filtered and ordered results, and the current suggestions.
// Views are plain values; the presentation layer renders them and owns
// nothing else.
type View struct {
	Query       string
	Results     []core.CatalogEntry
	Suggestions []core.Suggestion
}
