// Package catalog - Authoritative platform catalog
// Defines the canonical list of sellable platforms with pricing metadata.
// This is the source of truth for what the storefront can sell.
package catalog

import (
	"streamdeals/internal/errors"
)

// BillingUnit classifies how a platform counts simultaneous slots
type BillingUnit int

const (
	// UnitProfile - billed per profile on a shared account
	UnitProfile BillingUnit = iota
	// UnitAccount - billed per full account
	UnitAccount
)

// String returns string representation
func (u BillingUnit) String() string {
	switch u {
	case UnitProfile:
		return "profile"
	case UnitAccount:
		return "account"
	default:
		return "unknown"
	}
}

// Word returns the lowercase unit word used in price-per-unit labels
func (u BillingUnit) Word() string {
	if u == UnitAccount {
		return "cuenta"
	}
	return "perfil"
}

// PluralWord returns the lowercase plural used in checkout messages
func (u BillingUnit) PluralWord() string {
	if u == UnitAccount {
		return "cuentas"
	}
	return "perfiles"
}

// Label returns the capitalized unit label for a quantity
func (u BillingUnit) Label(n int) string {
	if u == UnitAccount {
		if n == 1 {
			return "Cuenta"
		}
		return "Cuentas"
	}
	if n == 1 {
		return "Perfil"
	}
	return "Perfiles"
}

// Entry is a catalog entry for a sellable platform.
// Exactly one of PricePerMonth or Tiers is authoritative: platforms with a
// tier table ignore the flat monthly rate and the generic discount tables.
type Entry struct {
	// Key is the canonical platform key
	Key string

	// DisplayName is the human-readable platform name
	DisplayName string

	// PricePerMonth is the flat monthly rate, 0 when the platform is tiered
	PricePerMonth int64

	// Tiers maps billing duration in months to a fixed price for one unit
	Tiers map[int]int64

	// Unit is how quantity is counted for this platform
	Unit BillingUnit

	// MaxMonths is the longest selectable billing duration
	MaxMonths int

	// Enabled marks whether the platform is currently sellable
	Enabled bool
}

// Tiered reports whether the entry uses a duration tier table
func (e *Entry) Tiered() bool {
	return len(e.Tiers) > 0
}

// TierPrice returns the single-unit price for a duration.
// Durations without an exact tier fall back to the 1-month tier.
func (e *Entry) TierPrice(months int) int64 {
	if p, ok := e.Tiers[months]; ok {
		return p
	}
	return e.Tiers[1]
}

// MonthlyRate returns the price used when the platform appears in a combo:
// the flat monthly rate, or the 1-month tier for tiered platforms.
func (e *Entry) MonthlyRate() int64 {
	if e.PricePerMonth > 0 {
		return e.PricePerMonth
	}
	return e.Tiers[1]
}

// Validate checks that the entry can be priced at all
func (e *Entry) Validate() error {
	if e.PricePerMonth <= 0 && !e.Tiered() {
		return errors.InvalidCatalog(e.DisplayName)
	}
	if e.Tiered() {
		if _, ok := e.Tiers[1]; !ok {
			// The 1-month tier is the fallback for every unmapped duration
			return errors.InvalidCatalog(e.DisplayName)
		}
	}
	if e.MaxMonths < 1 {
		return errors.InvalidCatalog(e.DisplayName)
	}
	return nil
}

// Catalog is the authoritative platform catalog
type Catalog struct {
	entries map[string]*Entry
	order   []string
}

// New creates an empty catalog
func New() *Catalog {
	return &Catalog{
		entries: make(map[string]*Entry),
	}
}

// Register adds a platform to the catalog, preserving insertion order.
// Re-registering a key replaces the entry in place.
func (c *Catalog) Register(entry Entry) {
	if _, exists := c.entries[entry.Key]; !exists {
		c.order = append(c.order, entry.Key)
	}
	c.entries[entry.Key] = &entry
}

// Get returns a platform entry by canonical key
func (c *Catalog) Get(key string) (*Entry, bool) {
	entry, ok := c.entries[key]
	return entry, ok
}

// GetByName returns a platform entry by display name
func (c *Catalog) GetByName(name string) (*Entry, bool) {
	return c.Get(Normalize(name))
}

// All returns entries in registration order
func (c *Catalog) All() []*Entry {
	result := make([]*Entry, 0, len(c.order))
	for _, key := range c.order {
		result = append(result, c.entries[key])
	}
	return result
}

// Len returns the number of registered platforms
func (c *Catalog) Len() int {
	return len(c.entries)
}

// Stats returns catalog statistics
func (c *Catalog) Stats() Stats {
	var stats Stats
	for _, entry := range c.entries {
		stats.Total++
		if entry.Enabled {
			stats.Enabled++
		}
		if entry.Tiered() {
			stats.Tiered++
		}
		if entry.Unit == UnitAccount {
			stats.AccountBased++
		}
	}
	return stats
}

// Stats holds catalog statistics
type Stats struct {
	Total        int
	Enabled      int
	Tiered       int
	AccountBased int
}
