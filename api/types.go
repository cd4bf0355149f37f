// Package api - Request and response types
package api

import "streamdeals/core/pricing"

// CardQuoteRequest prices one platform card selection
type CardQuoteRequest struct {
	// Platform is the display name or canonical key
	Platform string `json:"platform"`

	// Profiles defaults to 1 when omitted
	Profiles int `json:"profiles,omitempty"`

	// Months defaults to 1 when omitted
	Months int `json:"months,omitempty"`
}

// ComboQuoteRequest prices a multi-platform bundle. Preset, when set,
// replaces the platform list with the named preset's members.
type ComboQuoteRequest struct {
	Platforms []string `json:"platforms,omitempty"`
	Preset    string   `json:"preset,omitempty"`
}

// ComboQuoteResponse is a combo quote plus any rejected selections
type ComboQuoteResponse struct {
	pricing.ComboQuote

	// Rejected lists requested platforms that could not join the bundle
	// (currently disabled). They stay unchecked, matching the widget.
	Rejected []string `json:"rejected,omitempty"`
}

// CatalogPlatform is one row of the gated platform listing
type CatalogPlatform struct {
	Key         string `json:"key"`
	DisplayName string `json:"display_name"`
	Unit        string `json:"unit"`
	MaxMonths   int    `json:"max_months"`
	Price       int64  `json:"price"`
	Tiered      bool   `json:"tiered"`
	Enabled     bool   `json:"enabled"`
}

// CatalogResponse is the platform listing in display order
type CatalogResponse struct {
	Platforms []CatalogPlatform `json:"platforms"`

	// Live is true when remote pricing data is in effect
	Live bool `json:"live"`
}

// ErrorResponse is the error envelope
type ErrorResponse struct {
	Error     string `json:"error"`
	Message   string `json:"message"`
	RequestID string `json:"request_id,omitempty"`
}
