// Package catalog - Platform name normalization
package catalog

import "strings"

// nameMap maps storefront display names to canonical keys. The keys do not
// always follow simple lowercase rules, so known names are mapped explicitly.
var nameMap = map[string]string{
	"Netflix":              "netflix",
	"Disney+ Premium":      "disney_premium",
	"Disney+ Estándar":     "disney_standard",
	"HBO Max":              "hbo_max",
	"Prime Video":          "prime_video",
	"Paramount+":           "paramount",
	"Crunchyroll MegaFan":  "crunchyroll",
	"VIX Premium":          "vix_premium",
	"Spotify Premium":      "spotify",
	"YouTube Premium":      "youtube_premium",
	"Canva Pro":            "canva_pro",
	"Gemini AI Pro":        "gemini_ai",
	"ChatGPT Go":           "chatgpt_go",
	"ChatGPT Plus":         "chatgpt_plus",
	"Apple TV+":            "apple_tv",
	"IPTV Premium":         "iptv_premium",
	"Plex":                 "plex",
	"CapCut Pro":           "capcut_pro",
}

// Normalize maps a display name to its canonical catalog key.
// Unknown names fall back to a derived slug: lowercase, with every run of
// non-[a-z0-9] characters collapsed to a single underscore. The fallback is
// idempotent, so already-canonical keys pass through unchanged.
func Normalize(name string) string {
	if key, ok := nameMap[name]; ok {
		return key
	}
	return slug(name)
}

func slug(name string) string {
	lower := strings.ToLower(name)
	var b strings.Builder
	b.Grow(len(lower))
	inRun := false
	for _, r := range lower {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
			inRun = false
			continue
		}
		if !inRun {
			b.WriteByte('_')
			inRun = true
		}
	}
	return b.String()
}
