package catalog

import (
	"slices"
	"strings"

	"github.com/YY-Nexus/MediNexus--sub002/core"
)

// Flatten converts the hierarchical navigation catalog into a flat, searchable
// entry list. One CatalogEntry is produced per node that carries a
// destination; nodes without a destination are not directly selectable but
// contribute their title to their children's ParentTitle and Keywords.
//
// Flatten also collects the distinct non-empty category values across all
// nodes, returned sorted for filter-option population.
//
// Nodes without a title are malformed and are skipped silently, together with
// their subtree. Flatten is a pure, deterministic transform with no error
// conditions.
func Flatten(nodes []core.Node) ([]core.CatalogEntry, []string) {
	entries := make([]core.CatalogEntry, 0, len(nodes))
	categories := make(map[string]struct{})

	for i := range nodes {
		entries = flattenNode(&nodes[i], "", entries, categories)
	}

	names := make([]string, 0, len(categories))
	for name := range categories {
		names = append(names, name)
	}
	slices.Sort(names)

	return entries, names
}

func flattenNode(node *core.Node, parentTitle string, entries []core.CatalogEntry, categories map[string]struct{}) []core.CatalogEntry {
	if node.Title == "" {
		return entries
	}

	if node.Category != "" {
		categories[node.Category] = struct{}{}
	}

	if node.Destination != "" {
		entries = append(entries, core.CatalogEntry{
			Id:             core.IDFromContent(node.Destination),
			Title:          node.Title,
			Destination:    node.Destination,
			ParentTitle:    parentTitle,
			Category:       node.Category,
			Keywords:       keywordsFor(node.Title, parentTitle),
			LastUpdated:    node.LastUpdated,
			UsageFrequency: node.UsageFrequency,
		})
	}

	for i := range node.Children {
		entries = flattenNode(&node.Children[i], node.Title, entries, categories)
	}

	return entries
}

// keywordsFor builds the lower-cased keyword set for an entry: its own title
// plus, for child nodes, the parent title.
func keywordsFor(title, parentTitle string) []string {
	keywords := []string{strings.ToLower(title)}
	if parentTitle != "" {
		lowered := strings.ToLower(parentTitle)
		if lowered != keywords[0] {
			keywords = append(keywords, lowered)
		}
	}
	return keywords
}
