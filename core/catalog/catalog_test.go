package catalog

import (
	"testing"

	"streamdeals/internal/errors"
)

func TestEntryValidateRejectsUnpriceable(t *testing.T) {
	entry := &Entry{Key: "ghost", DisplayName: "Ghost", MaxMonths: 3, Enabled: true}
	err := entry.Validate()
	if err == nil {
		t.Fatal("expected validation error for entry with no price and no tiers")
	}
	if !errors.IsType(err, errors.TypeInvalidCatalog) {
		t.Errorf("expected INVALID_CATALOG, got %v", err)
	}
}

func TestEntryValidateRequiresOneMonthTier(t *testing.T) {
	entry := &Entry{
		Key: "broken", DisplayName: "Broken", MaxMonths: 3, Enabled: true,
		Tiers: map[int]int64{2: 12000, 3: 16000},
	}
	if err := entry.Validate(); err == nil {
		t.Fatal("expected validation error for tier table without 1-month fallback")
	}
}

func TestTierPriceFallsBackToOneMonth(t *testing.T) {
	entry := &Entry{
		Key: "tiered", DisplayName: "Tiered", MaxMonths: 6, Enabled: true,
		Tiers: map[int]int64{1: 7000, 2: 12000, 3: 16000},
	}
	if got := entry.TierPrice(3); got != 16000 {
		t.Errorf("TierPrice(3) = %d, want 16000", got)
	}
	// 4 months has no tier; the 1-month tier backs it
	if got := entry.TierPrice(4); got != 7000 {
		t.Errorf("TierPrice(4) = %d, want 7000", got)
	}
}

func TestMonthlyRatePrefersFlatRate(t *testing.T) {
	flat := &Entry{PricePerMonth: 20000}
	if got := flat.MonthlyRate(); got != 20000 {
		t.Errorf("MonthlyRate() = %d, want 20000", got)
	}
	tiered := &Entry{Tiers: map[int]int64{1: 10000, 2: 19000}}
	if got := tiered.MonthlyRate(); got != 10000 {
		t.Errorf("MonthlyRate() = %d, want 10000", got)
	}
}

func TestFallbackCatalogIsWellFormed(t *testing.T) {
	c := Fallback()
	if c.Len() == 0 {
		t.Fatal("fallback catalog is empty")
	}
	for _, entry := range c.All() {
		if err := entry.Validate(); err != nil {
			t.Errorf("fallback entry %s does not validate: %v", entry.Key, err)
		}
		if !entry.Enabled {
			t.Errorf("fallback entry %s should start enabled", entry.Key)
		}
		if Normalize(entry.DisplayName) != entry.Key {
			t.Errorf("display name %q does not normalize to key %q", entry.DisplayName, entry.Key)
		}
	}
}

func TestFallbackMonthCeilings(t *testing.T) {
	c := Fallback()
	chatgpt, ok := c.Get("chatgpt_go")
	if !ok {
		t.Fatal("chatgpt_go missing from fallback catalog")
	}
	if chatgpt.MaxMonths != 6 {
		t.Errorf("chatgpt_go MaxMonths = %d, want 6", chatgpt.MaxMonths)
	}
	netflix, _ := c.Get("netflix")
	if netflix.MaxMonths != 3 {
		t.Errorf("netflix MaxMonths = %d, want 3", netflix.MaxMonths)
	}
}

func TestRegisterPreservesOrderAndReplaces(t *testing.T) {
	c := New()
	c.Register(Entry{Key: "a", DisplayName: "A", PricePerMonth: 100, MaxMonths: 3})
	c.Register(Entry{Key: "b", DisplayName: "B", PricePerMonth: 200, MaxMonths: 3})
	c.Register(Entry{Key: "a", DisplayName: "A2", PricePerMonth: 150, MaxMonths: 3})

	all := c.All()
	if len(all) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(all))
	}
	if all[0].DisplayName != "A2" || all[1].DisplayName != "B" {
		t.Errorf("unexpected order/content: %s, %s", all[0].DisplayName, all[1].DisplayName)
	}
}
