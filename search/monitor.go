package search

import "github.com/YY-Nexus/MediNexus--sub002/core"

// SearchMonitor provides hooks to observe the search pipeline.
// Implement this interface to track intermediate stages during a search.
type SearchMonitor interface {
	Start(query string)
	AfterMatch(matches []core.CatalogEntry)
	AfterFilter(filtered []core.CatalogEntry)
	Finish(results []core.CatalogEntry)
}

// noopMonitor is a no-op implementation of SearchMonitor
type noopMonitor struct{}

var _ SearchMonitor = (*noopMonitor)(nil)

func (n *noopMonitor) Start(_ string)                    {}
func (n *noopMonitor) AfterMatch(_ []core.CatalogEntry)  {}
func (n *noopMonitor) AfterFilter(_ []core.CatalogEntry) {}
func (n *noopMonitor) Finish(_ []core.CatalogEntry)      {}
