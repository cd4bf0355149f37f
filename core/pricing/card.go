// Package pricing - Per-card pricing state machine
// One Card exists per platform card. It owns the bounded profiles/months
// counters and recomputes the full quote on every transition; the rendering
// layer only ever reads the returned quote snapshots.
package pricing

import (
	"fmt"

	"streamdeals/core/catalog"
	"streamdeals/core/discount"
	"streamdeals/core/money"
	"streamdeals/internal/errors"
)

// Counter bounds shared by every card. The month ceiling is per-platform.
const (
	MinProfiles = 1
	MaxProfiles = 3
	MinMonths   = 1
)

// Card is the pricing state machine for a single platform card
type Card struct {
	entry        *catalog.Entry
	profileRules *discount.Table
	monthRules   *discount.Table
	links        LinkBuilder

	profiles int
	months   int
}

// NewCard creates a card for a sellable platform at the initial selection
// (1 profile, 1 month). Construction fails fast instead of letting an
// unpriceable entry propagate into quotes.
func NewCard(entry *catalog.Entry, profileRules, monthRules *discount.Table, links LinkBuilder) (*Card, error) {
	if entry == nil {
		return nil, errors.MissingAnchor("platform card")
	}
	if !entry.Enabled {
		return nil, errors.Input("platform is not available: " + entry.DisplayName)
	}
	if err := entry.Validate(); err != nil {
		return nil, err
	}
	return &Card{
		entry:        entry,
		profileRules: profileRules,
		monthRules:   monthRules,
		links:        links,
		profiles:     MinProfiles,
		months:       MinMonths,
	}, nil
}

// Profiles returns the current profile count
func (c *Card) Profiles() int {
	return c.profiles
}

// Months returns the current month count
func (c *Card) Months() int {
	return c.months
}

// IncrementProfiles adds a profile. At the ceiling this is a no-op.
func (c *Card) IncrementProfiles() CardQuote {
	if c.profiles < MaxProfiles {
		c.profiles++
	}
	return c.Quote()
}

// DecrementProfiles removes a profile. At the floor this is a no-op.
func (c *Card) DecrementProfiles() CardQuote {
	if c.profiles > MinProfiles {
		c.profiles--
	}
	return c.Quote()
}

// IncrementMonths adds a month, bounded by the platform's ceiling
func (c *Card) IncrementMonths() CardQuote {
	if c.months < c.entry.MaxMonths {
		c.months++
	}
	return c.Quote()
}

// DecrementMonths removes a month. At the floor this is a no-op.
func (c *Card) DecrementMonths() CardQuote {
	if c.months > MinMonths {
		c.months--
	}
	return c.Quote()
}

// SetSelection jumps the counters to an explicit selection, validating both
// bounds instead of clamping silently.
func (c *Card) SetSelection(profiles, months int) (CardQuote, error) {
	if profiles < MinProfiles || profiles > MaxProfiles {
		return c.Quote(), errors.Newf(errors.TypeInput,
			"profiles must be between %d and %d, got %d", MinProfiles, MaxProfiles, profiles)
	}
	if months < MinMonths || months > c.entry.MaxMonths {
		return c.Quote(), errors.Newf(errors.TypeInput,
			"months must be between %d and %d for %s, got %d",
			MinMonths, c.entry.MaxMonths, c.entry.DisplayName, months)
	}
	c.profiles = profiles
	c.months = months
	return c.Quote(), nil
}

// CardQuote is the derived pricing result for a card's current selection.
// It is recomputed from scratch on every transition, never cached.
type CardQuote struct {
	// Platform is the display name
	Platform string `json:"platform"`

	// Key is the canonical platform key
	Key string `json:"key"`

	// Profiles and Months echo the selection that produced this quote
	Profiles int `json:"profiles"`
	Months   int `json:"months"`

	// Total is the final price in pesos, never negative
	Total int64 `json:"total"`

	// Discount is the combined discount that was subtracted
	Discount int64 `json:"discount"`

	// PerUnit is the display price per unit, rounded half up
	PerUnit int64 `json:"per_unit"`

	// PerUnitLabel qualifies PerUnit ("mes", "perfil", "mes x cuenta", ...)
	PerUnitLabel string `json:"per_unit_label"`

	// Badge is the selection summary line
	Badge string `json:"badge"`

	// Message is the checkout message text
	Message string `json:"message"`

	// Link is the checkout deep link
	Link string `json:"link"`

	// Counter affordances for the rendering layer
	CanAddProfile    bool `json:"can_add_profile"`
	CanRemoveProfile bool `json:"can_remove_profile"`
	CanAddMonth      bool `json:"can_add_month"`
	CanRemoveMonth   bool `json:"can_remove_month"`
}

// Quote computes the pricing result for the current selection
func (c *Card) Quote() CardQuote {
	entry := c.entry

	var total, applied int64
	if entry.Tiered() {
		// Tiered platforms carry their duration discounting in the tier
		// table itself and ignore the generic discount tables.
		total = entry.TierPrice(c.months) * int64(c.profiles)
	} else {
		profileDiscount := c.profileRules.Resolve(c.profiles)
		monthDiscount := c.monthRules.Resolve(c.months)
		// Each axis's discount scales by the other axis's quantity. This is
		// the storefront's long-standing policy; see package tests.
		applied = profileDiscount*int64(c.months) + monthDiscount*int64(c.profiles)
		total = money.Clamp(entry.PricePerMonth*int64(c.profiles)*int64(c.months) - applied)
	}

	perUnit, perUnitLabel := c.perUnit(total)

	badge := fmt.Sprintf("%s • %d %s", monthsPhrase(c.months), c.profiles, entry.Unit.Label(c.profiles))

	message := cardMessage(entry.DisplayName, c.profiles, c.months, entry.Unit, total)

	return CardQuote{
		Platform:         entry.DisplayName,
		Key:              entry.Key,
		Profiles:         c.profiles,
		Months:           c.months,
		Total:            total,
		Discount:         applied,
		PerUnit:          perUnit,
		PerUnitLabel:     perUnitLabel,
		Badge:            badge,
		Message:          message,
		Link:             c.links.Link(message),
		CanAddProfile:    c.profiles < MaxProfiles,
		CanRemoveProfile: c.profiles > MinProfiles,
		CanAddMonth:      c.months < entry.MaxMonths,
		CanRemoveMonth:   c.months > MinMonths,
	}
}

// perUnit picks the display denominator: whichever axes exceed 1 divide the
// total, with the unit word reflecting the platform's billing unit.
func (c *Card) perUnit(total int64) (int64, string) {
	unitWord := c.entry.Unit.Word()
	switch {
	case c.months > 1 && c.profiles > 1:
		return money.DivRound(total, int64(c.profiles)*int64(c.months)), "mes x " + unitWord
	case c.months > 1:
		return money.DivRound(total, int64(c.months)), "mes"
	case c.profiles > 1:
		return money.DivRound(total, int64(c.profiles)), unitWord
	default:
		return total, unitWord
	}
}
