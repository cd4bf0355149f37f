// Package dataload fetches the storefront's remote config and prices
// resources. Loading happens at most once: a failed attempt is terminal and
// degrades to the embedded fallback data, never retried and never surfaced
// to users.
package dataload

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"streamdeals/core/catalog"
	"streamdeals/core/discount"
	"streamdeals/internal/errors"
	"streamdeals/internal/logging"
)

// RemoteConfig is the availability resource, keyed by display name
type RemoteConfig struct {
	Platforms map[string]PlatformFlags `json:"platforms"`
}

// PlatformFlags holds per-platform availability settings
type PlatformFlags struct {
	Enabled bool `json:"enabled"`
}

// RemotePrices is the prices and discounts resource, keyed by canonical key
type RemotePrices struct {
	Platforms map[string]PlatformPrice `json:"platforms"`
	Discounts RemoteDiscounts          `json:"discounts"`
}

// PlatformPrice carries either a flat monthly rate or a tier table
type PlatformPrice struct {
	PricePerMonth int64            `json:"pricePerMonth,omitempty"`
	Pricing       map[string]int64 `json:"pricing,omitempty"`
}

// RemoteDiscounts holds the two rule tables in remote shape
type RemoteDiscounts struct {
	Profiles map[string]int64 `json:"profiles"`
	Combo    map[string]int64 `json:"combo"`
}

// Snapshot is the loaded (or fallback) pricing dataset. The month axis
// shares the profiles rule table, kept as two references so the resources
// can diverge later without touching the engines.
type Snapshot struct {
	Gate         *catalog.Gate
	ProfileRules *discount.Table
	MonthRules   *discount.Table
	ComboRules   *discount.Table

	// Live is true when remote data is in effect rather than fallback
	Live bool
}

// Loader performs the single load attempt
type Loader struct {
	client    *http.Client
	configURL string
	pricesURL string
	offline   bool

	once sync.Once
	snap *Snapshot
	err  error
}

// NewLoader creates a loader for the two resource URLs
func NewLoader(configURL, pricesURL string, timeout time.Duration) *Loader {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Loader{
		client:    &http.Client{Timeout: timeout},
		configURL: configURL,
		pricesURL: pricesURL,
	}
}

// NewOfflineLoader creates a loader that skips the network entirely
func NewOfflineLoader() *Loader {
	return &Loader{offline: true}
}

// Load performs the load attempt on first call and returns the resulting
// snapshot; later calls return the same snapshot without refetching.
func (l *Loader) Load(ctx context.Context) *Snapshot {
	l.once.Do(func() {
		if l.offline {
			l.snap = fallbackSnapshot()
			return
		}

		snap, err := l.fetch(ctx)
		if err != nil {
			l.err = err
			logging.Warn("remote data unavailable, using fallback prices",
				zap.Error(err))
			l.snap = fallbackSnapshot()
			return
		}
		l.snap = snap
	})
	return l.snap
}

// Loaded reports whether live remote data is in effect
func (l *Loader) Loaded() bool {
	return l.snap != nil && l.snap.Live
}

// Err returns the terminal load error, if the attempt failed
func (l *Loader) Err() error {
	return l.err
}

func (l *Loader) fetch(ctx context.Context) (*Snapshot, error) {
	var cfg RemoteConfig
	if err := l.getJSON(ctx, l.configURL, &cfg); err != nil {
		return nil, errors.DataUnavailable("loading config resource", err)
	}

	var prices RemotePrices
	if err := l.getJSON(ctx, l.pricesURL, &prices); err != nil {
		return nil, errors.DataUnavailable("loading prices resource", err)
	}

	return buildSnapshot(&cfg, &prices)
}

func (l *Loader) getJSON(ctx context.Context, url string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	resp, err := l.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %d from %s", resp.StatusCode, url)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

// buildSnapshot merges the remote dataset over the embedded catalog
func buildSnapshot(cfg *RemoteConfig, prices *RemotePrices) (*Snapshot, error) {
	cat := catalog.Fallback()

	for key, price := range prices.Platforms {
		entry, ok := cat.Get(key)
		if !ok {
			logging.Debug("prices resource references unknown platform",
				zap.String("key", key))
			continue
		}
		if price.PricePerMonth > 0 {
			entry.PricePerMonth = price.PricePerMonth
		}
		if len(price.Pricing) > 0 {
			tiers, err := parseTiers(price.Pricing)
			if err != nil {
				return nil, errors.DataUnavailable("parsing tier table for "+key, err)
			}
			entry.Tiers = tiers
		}
	}

	profileRules, err := discount.Parse(prices.Discounts.Profiles)
	if err != nil {
		return nil, errors.DataUnavailable("parsing profile discounts", err)
	}
	comboRules, err := discount.Parse(prices.Discounts.Combo)
	if err != nil {
		return nil, errors.DataUnavailable("parsing combo discounts", err)
	}

	flags := make(map[string]bool, len(cfg.Platforms))
	for name, settings := range cfg.Platforms {
		flags[name] = settings.Enabled
	}

	return &Snapshot{
		Gate:         catalog.NewGate(cat, flags),
		ProfileRules: profileRules,
		MonthRules:   profileRules,
		ComboRules:   comboRules,
		Live:         true,
	}, nil
}

// parseTiers converts "1_month"/"N_months" keys to month counts
func parseTiers(raw map[string]int64) (map[int]int64, error) {
	tiers := make(map[int]int64, len(raw))
	for key, price := range raw {
		numeric := strings.TrimSuffix(strings.TrimSuffix(key, "_months"), "_month")
		months, err := strconv.Atoi(numeric)
		if err != nil {
			return nil, fmt.Errorf("invalid tier key: %s", key)
		}
		tiers[months] = price
	}
	if _, ok := tiers[1]; !ok {
		return nil, fmt.Errorf("tier table is missing the 1_month fallback tier")
	}
	return tiers, nil
}

func fallbackSnapshot() *Snapshot {
	quantity := discount.FallbackQuantity()
	return &Snapshot{
		Gate:         catalog.NewGate(catalog.Fallback(), nil),
		ProfileRules: quantity,
		MonthRules:   quantity,
		ComboRules:   discount.FallbackCombo(),
	}
}
