// Package catalog - Availability gate
// Applies the remote availability flags and controls what the per-card and
// combo surfaces may sell. Disabled platforms keep their catalog entry but
// lose every interactive affordance.
package catalog

// Gate filters the catalog by availability
type Gate struct {
	catalog *Catalog
}

// NewGate builds a gate over a catalog, applying availability flags keyed by
// display name (the shape of the remote config resource). A nil flag map
// leaves the catalog's own enabled state untouched.
func NewGate(c *Catalog, flags map[string]bool) *Gate {
	if flags != nil {
		for _, entry := range c.All() {
			if enabled, ok := flags[entry.DisplayName]; ok {
				entry.Enabled = enabled
			}
		}
	}
	return &Gate{catalog: c}
}

// Catalog returns the gated catalog
func (g *Gate) Catalog() *Catalog {
	return g.catalog
}

// IsEnabled reports whether a platform is currently sellable
func (g *Gate) IsEnabled(key string) bool {
	entry, ok := g.catalog.Get(key)
	return ok && entry.Enabled
}

// Entries returns all platforms in display order: enabled platforms first in
// catalog order, disabled platforms demoted to the end without being removed.
func (g *Gate) Entries() []*Entry {
	all := g.catalog.All()
	result := make([]*Entry, 0, len(all))
	for _, entry := range all {
		if entry.Enabled {
			result = append(result, entry)
		}
	}
	for _, entry := range all {
		if !entry.Enabled {
			result = append(result, entry)
		}
	}
	return result
}

// EnabledEntries returns only the sellable platforms in catalog order
func (g *Gate) EnabledEntries() []*Entry {
	all := g.catalog.All()
	result := make([]*Entry, 0, len(all))
	for _, entry := range all {
		if entry.Enabled {
			result = append(result, entry)
		}
	}
	return result
}
