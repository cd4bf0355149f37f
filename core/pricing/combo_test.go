package pricing

import (
	"net/url"
	"strings"
	"testing"

	"streamdeals/core/catalog"
	"streamdeals/core/discount"
	"streamdeals/internal/errors"
)

func comboGate(flags map[string]bool) *catalog.Gate {
	c := catalog.New()
	c.Register(catalog.Entry{Key: "prime_video", DisplayName: "Prime Video", PricePerMonth: 10000, MaxMonths: 3, Enabled: true})
	c.Register(catalog.Entry{Key: "gemini_ai", DisplayName: "Gemini AI Pro", PricePerMonth: 15000, Unit: catalog.UnitAccount, MaxMonths: 3, Enabled: true})
	c.Register(catalog.Entry{Key: "netflix", DisplayName: "Netflix", PricePerMonth: 20000, MaxMonths: 3, Enabled: true})
	c.Register(catalog.Entry{Key: "disney_premium", DisplayName: "Disney+ Premium", PricePerMonth: 16000, MaxMonths: 3, Enabled: true})
	c.Register(catalog.Entry{Key: "hbo_max", DisplayName: "HBO Max", PricePerMonth: 12000, MaxMonths: 3, Enabled: true})
	return catalog.NewGate(c, flags)
}

func newTestCombo(flags map[string]bool, rules *discount.Table) *Combo {
	return NewCombo(comboGate(flags), rules, DefaultLinks())
}

// Three platforms at 10000/15000/20000 with a 3-platform rule of 5000:
// final price 40000 and a message listing every selection.
func TestComboThreePlatforms(t *testing.T) {
	rules := discount.NewTable(discount.Rule{Threshold: 3, Amount: 5000, Exact: true})
	combo := newTestCombo(nil, rules)

	combo.Toggle("Prime Video")
	combo.Toggle("Gemini AI Pro")
	quote, err := combo.Toggle("Netflix")
	if err != nil {
		t.Fatalf("Toggle failed: %v", err)
	}

	if quote.Total != 45000 {
		t.Errorf("Total = %d, want 45000", quote.Total)
	}
	if quote.Discount != 5000 {
		t.Errorf("Discount = %d, want 5000", quote.Discount)
	}
	if quote.FinalPrice != 40000 {
		t.Errorf("FinalPrice = %d, want 40000", quote.FinalPrice)
	}
	if !quote.CheckoutReady {
		t.Error("three selections must be checkout ready")
	}

	want := "Quiero mi Combo de: Prime Video, Gemini AI Pro, Netflix. Precio: $40.000"
	if quote.Message != want {
		t.Errorf("Message = %q, want %q", quote.Message, want)
	}
}

// A single selection suppresses checkout and shows the select-2+ prompt.
func TestComboSingleSelectionNotReady(t *testing.T) {
	combo := newTestCombo(nil, discount.FallbackCombo())

	quote, _ := combo.Toggle("Netflix")
	if quote.CheckoutReady {
		t.Error("one selection must not be checkout ready")
	}
	if quote.Discount != 0 {
		t.Errorf("Discount = %d, want 0", quote.Discount)
	}
	if quote.SavingsText != "Selecciona 2 o más para descuento" {
		t.Errorf("SavingsText = %q", quote.SavingsText)
	}
}

func TestComboSavingsTextAtThreshold(t *testing.T) {
	combo := newTestCombo(nil, discount.FallbackCombo())
	combo.Toggle("Netflix")
	quote, _ := combo.Toggle("HBO Max")

	if quote.SavingsText != "💰 Ahorro de $2.000 aplicado" {
		t.Errorf("SavingsText = %q", quote.SavingsText)
	}
}

func TestComboToggleOff(t *testing.T) {
	combo := newTestCombo(nil, discount.FallbackCombo())
	combo.Toggle("Netflix")
	combo.Toggle("HBO Max")
	quote, _ := combo.Toggle("Netflix")

	if quote.Count != 1 {
		t.Errorf("Count = %d, want 1 after toggling off", quote.Count)
	}
	if quote.Selected[0] != "HBO Max" {
		t.Errorf("Selected = %v", quote.Selected)
	}
}

// Disabled platforms are rejected and stay unchecked.
func TestComboRejectsDisabled(t *testing.T) {
	combo := newTestCombo(map[string]bool{"HBO Max": false}, discount.FallbackCombo())

	quote, err := combo.Toggle("HBO Max")
	if err == nil {
		t.Fatal("expected rejection for disabled platform")
	}
	if !errors.IsType(err, errors.TypeInput) {
		t.Errorf("got %v, want INPUT_ERROR", err)
	}
	if quote.Count != 0 {
		t.Errorf("Count = %d, want 0", quote.Count)
	}
}

func TestComboUnknownPlatform(t *testing.T) {
	combo := newTestCombo(nil, discount.FallbackCombo())
	if _, err := combo.Toggle("Ghost Service"); !errors.IsType(err, errors.TypeMissingAnchor) {
		t.Errorf("got %v, want MISSING_ANCHOR", err)
	}
}

// Applying a preset replaces the selection atomically; prior members not in
// the preset are removed, never merged.
func TestComboPresetReplacesAtomically(t *testing.T) {
	combo := newTestCombo(nil, discount.FallbackCombo())
	combo.Toggle("Prime Video")
	combo.Toggle("Gemini AI Pro")

	quote, err := combo.ApplyPreset("duo")
	if err != nil {
		t.Fatalf("ApplyPreset failed: %v", err)
	}
	if quote.Count != 2 {
		t.Fatalf("Count = %d, want 2", quote.Count)
	}
	for _, name := range quote.Selected {
		if name == "Prime Video" || name == "Gemini AI Pro" {
			t.Errorf("previous selection %q survived the preset", name)
		}
	}
	if quote.MatchedPreset != "duo" {
		t.Errorf("MatchedPreset = %q, want duo", quote.MatchedPreset)
	}
}

// Disabled preset members are filtered right back out.
func TestComboPresetFiltersDisabledMembers(t *testing.T) {
	combo := newTestCombo(map[string]bool{"Disney+ Premium": false}, discount.FallbackCombo())

	quote, err := combo.ApplyPreset("duo")
	if err != nil {
		t.Fatalf("ApplyPreset failed: %v", err)
	}
	if quote.Count != 1 {
		t.Errorf("Count = %d, want 1 (Disney+ filtered out)", quote.Count)
	}
	if quote.MatchedPreset == "duo" {
		t.Error("a filtered preset must not read as an exact match")
	}
}

func TestComboPresetUnknown(t *testing.T) {
	combo := newTestCombo(nil, discount.FallbackCombo())
	combo.Toggle("Netflix")

	_, err := combo.ApplyPreset("mega")
	if !errors.IsType(err, errors.TypeMissingAnchor) {
		t.Errorf("got %v, want MISSING_ANCHOR", err)
	}
	if combo.Count() != 1 {
		t.Error("an unknown preset must leave the selection unchanged")
	}
}

// Preset matching is order-independent.
func TestComboManualSelectionMatchesPreset(t *testing.T) {
	combo := newTestCombo(nil, discount.FallbackCombo())
	combo.Toggle("Disney+ Premium")
	quote, _ := combo.Toggle("Netflix")

	if quote.MatchedPreset != "duo" {
		t.Errorf("MatchedPreset = %q, want duo", quote.MatchedPreset)
	}
}

func TestComboEmptySelection(t *testing.T) {
	combo := newTestCombo(nil, discount.FallbackCombo())
	quote := combo.Quote()

	if quote.Total != 0 || quote.FinalPrice != 0 || quote.Count != 0 {
		t.Errorf("empty quote: total=%d final=%d count=%d", quote.Total, quote.FinalPrice, quote.Count)
	}
}

func TestComboLinkEmbedsMessage(t *testing.T) {
	combo := newTestCombo(nil, discount.FallbackCombo())
	combo.Toggle("Netflix")
	quote, _ := combo.Toggle("HBO Max")

	parsed, err := url.Parse(quote.Link)
	if err != nil {
		t.Fatalf("link does not parse: %v", err)
	}
	if got := parsed.Query().Get("text"); got != quote.Message {
		t.Errorf("decoded link text = %q, want %q", got, quote.Message)
	}
	if !strings.HasPrefix(quote.Link, "https://wa.me/") {
		t.Errorf("Link = %q", quote.Link)
	}
}

// Disabled platforms keep their listing but are demoted to the end.
func TestComboOptionsDemoteDisabled(t *testing.T) {
	combo := newTestCombo(map[string]bool{"Prime Video": false}, discount.FallbackCombo())

	options := combo.Options()
	if len(options) != 5 {
		t.Fatalf("expected 5 options, got %d", len(options))
	}
	last := options[len(options)-1]
	if last.Key != "prime_video" || !last.Disabled {
		t.Errorf("disabled option should be last, got %+v", last)
	}
}

func TestComboStampedOptionPrice(t *testing.T) {
	combo := newTestCombo(nil, discount.FallbackCombo())
	combo.AddOption("Star+ Deportes", 9000)

	combo.Toggle("Netflix")
	quote, err := combo.Toggle("Star+ Deportes")
	if err != nil {
		t.Fatalf("Toggle failed: %v", err)
	}
	if quote.Total != 29000 {
		t.Errorf("Total = %d, want 20000 + stamped 9000", quote.Total)
	}
}
