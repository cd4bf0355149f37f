// Package storefront assembles the pricing core into the operations the
// outer surfaces (API, CLI) consume: card quotes, combo sessions, and the
// gated platform listing.
package storefront

import (
	"go.uber.org/zap"

	"streamdeals/core/catalog"
	"streamdeals/core/dataload"
	"streamdeals/core/pricing"
	"streamdeals/internal/errors"
	"streamdeals/internal/logging"
)

// Store is the assembled pricing core over one data snapshot
type Store struct {
	snap  *dataload.Snapshot
	links pricing.LinkBuilder
}

// New creates a store over a loaded snapshot
func New(snap *dataload.Snapshot, links pricing.LinkBuilder) *Store {
	return &Store{snap: snap, links: links}
}

// Live reports whether remote data is in effect
func (s *Store) Live() bool {
	return s.snap.Live
}

// Gate returns the availability gate
func (s *Store) Gate() *catalog.Gate {
	return s.snap.Gate
}

// NewCard creates the pricing state machine for a platform, addressed by
// display name or canonical key.
func (s *Store) NewCard(name string) (*pricing.Card, error) {
	entry, ok := s.snap.Gate.Catalog().GetByName(name)
	if !ok {
		return nil, errors.NotFound("platform", name)
	}
	return pricing.NewCard(entry, s.snap.ProfileRules, s.snap.MonthRules, s.links)
}

// CardQuote prices an explicit selection in one step
func (s *Store) CardQuote(name string, profiles, months int) (pricing.CardQuote, error) {
	card, err := s.NewCard(name)
	if err != nil {
		return pricing.CardQuote{}, err
	}
	return card.SetSelection(profiles, months)
}

// NewCombo creates a combo selection session over the gated platform list
func (s *Store) NewCombo() *pricing.Combo {
	return pricing.NewCombo(s.snap.Gate, s.snap.ComboRules, s.links)
}

// Cards builds the state machines for every sellable platform. Platforms
// that cannot be priced are skipped with a warning; nothing is fatal to the
// rest of the page.
func (s *Store) Cards() []*pricing.Card {
	entries := s.snap.Gate.EnabledEntries()
	cards := make([]*pricing.Card, 0, len(entries))
	for _, entry := range entries {
		card, err := pricing.NewCard(entry, s.snap.ProfileRules, s.snap.MonthRules, s.links)
		if err != nil {
			logging.Warn("skipping platform card",
				zap.String("platform", entry.DisplayName),
				zap.Error(err))
			continue
		}
		cards = append(cards, card)
	}
	return cards
}
