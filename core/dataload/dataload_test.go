package dataload

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

const testConfigJSON = `{
  "platforms": {
    "Netflix": {"enabled": true},
    "HBO Max": {"enabled": false}
  }
}`

const testPricesJSON = `{
  "platforms": {
    "netflix": {"pricePerMonth": 21000},
    "chatgpt_go": {"pricing": {"1_month": 7500, "2_months": 13000, "3_months": 17000, "6_months": 31000}}
  },
  "discounts": {
    "profiles": {"2": 2500, "3": 4500},
    "combo": {"2": 2000, "3": 4000, "4": 7000, "5+": 10000}
  }
}`

func testServer(t *testing.T, configBody, pricesBody string, status int) (*httptest.Server, *int) {
	t.Helper()
	requests := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		w.WriteHeader(status)
		switch r.URL.Path {
		case "/config.json":
			w.Write([]byte(configBody))
		case "/prices.json":
			w.Write([]byte(pricesBody))
		default:
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(srv.Close)
	return srv, &requests
}

func TestLoadMergesRemoteData(t *testing.T) {
	srv, _ := testServer(t, testConfigJSON, testPricesJSON, http.StatusOK)
	loader := NewLoader(srv.URL+"/config.json", srv.URL+"/prices.json", 0)

	snap := loader.Load(context.Background())
	if !snap.Live {
		t.Fatal("snapshot should be live")
	}
	if !loader.Loaded() {
		t.Fatal("Loaded() should report true")
	}

	cat := snap.Gate.Catalog()
	netflix, _ := cat.Get("netflix")
	if netflix.PricePerMonth != 21000 {
		t.Errorf("netflix price = %d, want remote 21000", netflix.PricePerMonth)
	}
	chatgpt, _ := cat.Get("chatgpt_go")
	if chatgpt.TierPrice(6) != 31000 {
		t.Errorf("chatgpt_go 6-month tier = %d, want 31000", chatgpt.TierPrice(6))
	}

	// Platforms untouched by the resource keep fallback prices
	hbo, _ := cat.Get("hbo_max")
	if hbo.PricePerMonth != 12000 {
		t.Errorf("hbo_max price = %d, want fallback 12000", hbo.PricePerMonth)
	}

	// Availability flags applied by display name
	if snap.Gate.IsEnabled("hbo_max") {
		t.Error("hbo_max should be disabled by the config resource")
	}
	if !snap.Gate.IsEnabled("netflix") {
		t.Error("netflix should be enabled")
	}

	if got := snap.ProfileRules.Resolve(2); got != 2500 {
		t.Errorf("profile discount(2) = %d, want remote 2500", got)
	}
	// The months axis shares the profiles table
	if got := snap.MonthRules.Resolve(3); got != 4500 {
		t.Errorf("month discount(3) = %d, want 4500", got)
	}
	if got := snap.ComboRules.Resolve(7); got != 10000 {
		t.Errorf("combo discount(7) = %d, want 10000", got)
	}
}

func TestLoadFailureDegradesToFallback(t *testing.T) {
	srv, _ := testServer(t, "not json at all", "{}", http.StatusOK)
	loader := NewLoader(srv.URL+"/config.json", srv.URL+"/prices.json", 0)

	snap := loader.Load(context.Background())
	if snap.Live {
		t.Fatal("snapshot must not be live after a parse failure")
	}
	if loader.Loaded() {
		t.Error("Loaded() must report false")
	}
	if loader.Err() == nil {
		t.Error("the terminal error should be recorded")
	}

	// Fallback data is fully usable
	netflix, ok := snap.Gate.Catalog().Get("netflix")
	if !ok || netflix.PricePerMonth != 20000 {
		t.Errorf("fallback netflix price missing or wrong: %+v", netflix)
	}
	if got := snap.ComboRules.Resolve(4); got != 7000 {
		t.Errorf("fallback combo discount(4) = %d, want 7000", got)
	}
}

func TestLoadHTTPErrorDegradesToFallback(t *testing.T) {
	srv, _ := testServer(t, testConfigJSON, testPricesJSON, http.StatusInternalServerError)
	loader := NewLoader(srv.URL+"/config.json", srv.URL+"/prices.json", 0)

	if snap := loader.Load(context.Background()); snap.Live {
		t.Fatal("snapshot must not be live after an HTTP error")
	}
}

// A second load is never issued once the first attempt completed or failed.
func TestLoadIsSingleAttempt(t *testing.T) {
	srv, requests := testServer(t, "broken", "broken", http.StatusOK)
	loader := NewLoader(srv.URL+"/config.json", srv.URL+"/prices.json", 0)

	first := loader.Load(context.Background())
	after := *requests
	second := loader.Load(context.Background())

	if *requests != after {
		t.Errorf("second Load refetched: %d -> %d requests", after, *requests)
	}
	if first != second {
		t.Error("both calls must return the same snapshot")
	}
}

func TestOfflineLoaderSkipsNetwork(t *testing.T) {
	loader := NewOfflineLoader()
	snap := loader.Load(context.Background())
	if snap.Live {
		t.Error("offline snapshot must not be live")
	}
	if snap.Gate.Catalog().Len() == 0 {
		t.Error("offline snapshot carries the fallback catalog")
	}
}

func TestParseTiers(t *testing.T) {
	tiers, err := parseTiers(map[string]int64{
		"1_month": 7000, "2_months": 12000, "6_months": 30000,
	})
	if err != nil {
		t.Fatalf("parseTiers failed: %v", err)
	}
	if tiers[1] != 7000 || tiers[2] != 12000 || tiers[6] != 30000 {
		t.Errorf("tiers = %v", tiers)
	}

	if _, err := parseTiers(map[string]int64{"2_months": 12000}); err == nil {
		t.Error("expected error for tier table without the 1-month fallback")
	}
	if _, err := parseTiers(map[string]int64{"x_months": 12000}); err == nil {
		t.Error("expected error for malformed tier key")
	}
}
