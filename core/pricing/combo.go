// Package pricing - Combo selection engine
// A single Combo owns the multi-platform selection set. Disabled platforms
// can never become members; presets replace the set atomically.
package pricing

import (
	"fmt"

	"streamdeals/core/catalog"
	"streamdeals/core/discount"
	"streamdeals/core/money"
	"streamdeals/internal/errors"
)

// NudgeText is shown when checkout is attempted with fewer than two platforms
const NudgeText = "❌ Selecciona 2 o más para continuar"

// savingsPrompt is shown while the selection is below the discount threshold
const savingsPrompt = "Selecciona 2 o más para descuento"

// Option is one selectable platform in the combo list
type Option struct {
	// Key is the canonical platform key
	Key string `json:"key"`

	// DisplayName is the human-readable platform name
	DisplayName string `json:"display_name"`

	// Price is the monthly rate counted toward the combo total. Catalog
	// prices win; for options without a catalog entry this is the price
	// stamped on the selection control.
	Price int64 `json:"price"`

	// Disabled options stay listed but can never be selected
	Disabled bool `json:"disabled"`
}

// Combo is the multi-platform selection engine
type Combo struct {
	options  []Option
	index    map[string]int
	selected map[string]bool
	rules    *discount.Table
	links    LinkBuilder
}

// NewCombo builds the combo list from the availability gate: enabled
// platforms first, disabled ones demoted to the end.
func NewCombo(gate *catalog.Gate, rules *discount.Table, links LinkBuilder) *Combo {
	c := &Combo{
		index:    make(map[string]int),
		selected: make(map[string]bool),
		rules:    rules,
		links:    links,
	}
	for _, entry := range gate.Entries() {
		c.index[entry.Key] = len(c.options)
		c.options = append(c.options, Option{
			Key:         entry.Key,
			DisplayName: entry.DisplayName,
			Price:       entry.MonthlyRate(),
			Disabled:    !entry.Enabled,
		})
	}
	return c
}

// AddOption appends a platform that has no catalog entry, carrying the price
// stamped on its selection control.
func (c *Combo) AddOption(displayName string, price int64) {
	key := catalog.Normalize(displayName)
	if _, exists := c.index[key]; exists {
		return
	}
	c.index[key] = len(c.options)
	c.options = append(c.options, Option{
		Key:         key,
		DisplayName: displayName,
		Price:       price,
	})
}

// Options returns the selectable list in display order
func (c *Combo) Options() []Option {
	return append([]Option(nil), c.options...)
}

// Count returns the number of selected platforms
func (c *Combo) Count() int {
	return len(c.selected)
}

// Toggle flips membership for a platform, addressed by display name or
// canonical key. Disabled platforms are rejected and stay unchecked.
func (c *Combo) Toggle(name string) (ComboQuote, error) {
	key := catalog.Normalize(name)
	i, ok := c.index[key]
	if !ok {
		return c.Quote(), errors.MissingAnchor("combo option: " + name)
	}
	if c.options[i].Disabled {
		delete(c.selected, key)
		return c.Quote(), errors.Input("platform is not available: " + c.options[i].DisplayName)
	}
	if c.selected[key] {
		delete(c.selected, key)
	} else {
		c.selected[key] = true
	}
	return c.Quote(), nil
}

// ApplyPreset replaces the selection with a named preset, atomically:
// everything previously selected and absent from the preset is removed,
// then disabled members are filtered back out.
func (c *Combo) ApplyPreset(name string) (ComboQuote, error) {
	members, ok := Preset(name)
	if !ok {
		return c.Quote(), errors.MissingAnchor("preset: " + name)
	}

	c.selected = make(map[string]bool)
	for _, member := range members {
		key := catalog.Normalize(member)
		i, found := c.index[key]
		if !found || c.options[i].Disabled {
			continue
		}
		c.selected[key] = true
	}
	return c.Quote(), nil
}

// Clear empties the selection
func (c *Combo) Clear() {
	c.selected = make(map[string]bool)
}

// ComboQuote is the derived pricing result for the current selection
type ComboQuote struct {
	// Selected lists the selected display names in list order
	Selected []string `json:"selected"`

	// Count is the number of selected platforms
	Count int `json:"count"`

	// Total is the undiscounted sum of monthly rates
	Total int64 `json:"total"`

	// Discount is the bundle discount for the selection count
	Discount int64 `json:"discount"`

	// FinalPrice is the discounted total, never negative
	FinalPrice int64 `json:"final_price"`

	// SavingsText is the savings line under the price
	SavingsText string `json:"savings_text"`

	// CheckoutReady gates the call to action; below two selections the
	// click is suppressed and NudgeText is shown instead
	CheckoutReady bool `json:"checkout_ready"`

	// Message is the checkout message text
	Message string `json:"message"`

	// Link is the checkout deep link
	Link string `json:"link"`

	// MatchedPreset names the preset whose set exactly matches the
	// selection, order-independently; empty when none does
	MatchedPreset string `json:"matched_preset,omitempty"`
}

// Quote computes the pricing result for the current selection
func (c *Combo) Quote() ComboQuote {
	var total int64
	names := make([]string, 0, len(c.selected))
	for _, opt := range c.options {
		if c.selected[opt.Key] {
			total += opt.Price
			names = append(names, opt.DisplayName)
		}
	}

	count := len(names)
	disc := c.rules.Resolve(count)

	var finalPrice int64
	if total > 0 {
		finalPrice = money.Clamp(total - disc)
	}

	savings := savingsPrompt
	if count >= 2 {
		savings = fmt.Sprintf("💰 Ahorro de %s aplicado", money.Format(disc))
	}

	message := comboMessage(names, finalPrice)

	return ComboQuote{
		Selected:      names,
		Count:         count,
		Total:         total,
		Discount:      disc,
		FinalPrice:    finalPrice,
		SavingsText:   savings,
		CheckoutReady: count >= 2,
		Message:       message,
		Link:          c.links.Link(message),
		MatchedPreset: c.matchedPreset(),
	}
}

// matchedPreset returns the preset whose member set equals the selection
func (c *Combo) matchedPreset() string {
	for _, name := range PresetNames() {
		members, _ := Preset(name)
		if len(members) != len(c.selected) {
			continue
		}
		match := true
		for _, member := range members {
			if !c.selected[catalog.Normalize(member)] {
				match = false
				break
			}
		}
		if match {
			return name
		}
	}
	return ""
}
