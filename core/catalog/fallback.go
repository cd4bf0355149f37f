// Package catalog - Embedded fallback catalog
// Used until the remote prices resource loads, and as the terminal fallback
// when that single load attempt fails.
package catalog

// defaultMaxMonths is the standard billing-duration ceiling
const defaultMaxMonths = 3

// fallbackEntries mirrors the last known good snapshot of the remote prices
// resource. Keep this table in sync as one unit; do not drift individual rows.
var fallbackEntries = []Entry{
	{Key: "netflix", DisplayName: "Netflix", PricePerMonth: 20000, Unit: UnitProfile},
	{Key: "disney_premium", DisplayName: "Disney+ Premium", PricePerMonth: 16000, Unit: UnitProfile},
	{Key: "disney_standard", DisplayName: "Disney+ Estándar", PricePerMonth: 12000, Unit: UnitProfile},
	{Key: "hbo_max", DisplayName: "HBO Max", PricePerMonth: 12000, Unit: UnitProfile},
	{Key: "prime_video", DisplayName: "Prime Video", PricePerMonth: 10000, Unit: UnitProfile},
	{Key: "paramount", DisplayName: "Paramount+", PricePerMonth: 8000, Unit: UnitProfile},
	{Key: "crunchyroll", DisplayName: "Crunchyroll MegaFan", PricePerMonth: 10000, Unit: UnitProfile},
	{Key: "vix_premium", DisplayName: "VIX Premium", PricePerMonth: 8000, Unit: UnitProfile},
	{Key: "spotify", DisplayName: "Spotify Premium", PricePerMonth: 12000, Unit: UnitProfile},
	{Key: "youtube_premium", DisplayName: "YouTube Premium", Unit: UnitAccount,
		Tiers: map[int]int64{1: 10000, 2: 19000, 3: 27000}},
	{Key: "canva_pro", DisplayName: "Canva Pro", PricePerMonth: 10000, Unit: UnitAccount},
	{Key: "gemini_ai", DisplayName: "Gemini AI Pro", PricePerMonth: 15000, Unit: UnitAccount},
	{Key: "chatgpt_go", DisplayName: "ChatGPT Go", Unit: UnitAccount, MaxMonths: 6,
		Tiers: map[int]int64{1: 7000, 2: 12000, 3: 16000, 6: 30000}},
	{Key: "chatgpt_plus", DisplayName: "ChatGPT Plus", PricePerMonth: 65000, Unit: UnitAccount},
	{Key: "apple_tv", DisplayName: "Apple TV+", PricePerMonth: 12000, Unit: UnitProfile},
	{Key: "iptv_premium", DisplayName: "IPTV Premium", PricePerMonth: 15000, Unit: UnitProfile},
	{Key: "plex", DisplayName: "Plex", PricePerMonth: 10000, Unit: UnitProfile},
	{Key: "capcut_pro", DisplayName: "CapCut Pro", PricePerMonth: 15000, Unit: UnitAccount},
}

// Fallback builds a catalog from the embedded snapshot, all platforms enabled.
func Fallback() *Catalog {
	c := New()
	for _, entry := range fallbackEntries {
		if entry.MaxMonths == 0 {
			entry.MaxMonths = defaultMaxMonths
		}
		entry.Enabled = true
		c.Register(entry)
	}
	return c
}
