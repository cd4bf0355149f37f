// Package hclcatalog provides operator-authored catalog overrides.
// A local HCL file can adjust prices, tier tables, billing units, and
// duration ceilings on top of the active catalog snapshot, without touching
// the remote resources.
package hclcatalog

import (
	"fmt"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"streamdeals/core/catalog"
	"streamdeals/internal/errors"
)

// File is the root of an override file
type File struct {
	Platforms []PlatformBlock `hcl:"platform,block"`
}

// PlatformBlock overrides one catalog entry, addressed by canonical key.
// Unset attributes leave the existing entry untouched.
type PlatformBlock struct {
	// Key is the canonical platform key (block label)
	Key string `hcl:"key,label"`

	// DisplayName overrides the human-readable name
	DisplayName string `hcl:"display_name,optional"`

	// PricePerMonth overrides the flat monthly rate
	PricePerMonth int64 `hcl:"price_per_month,optional"`

	// BillingUnit is "profile" or "account"
	BillingUnit string `hcl:"billing_unit,optional"`

	// MaxMonths overrides the duration ceiling
	MaxMonths int `hcl:"max_months,optional"`

	// Enabled overrides availability
	Enabled *bool `hcl:"enabled,optional"`

	// Pricing replaces the tier table entirely when present
	Pricing *PricingBlock `hcl:"pricing,block"`
}

// PricingBlock is a duration tier table. The 1-month tier is mandatory
// since it backs every unmapped duration.
type PricingBlock struct {
	Month1 int64 `hcl:"month_1"`
	Month2 int64 `hcl:"month_2,optional"`
	Month3 int64 `hcl:"month_3,optional"`
	Month6 int64 `hcl:"month_6,optional"`
}

// Load parses an override file
func Load(path string) (*File, error) {
	parser := hclparse.NewParser()
	hclFile, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, errors.Config("parsing catalog overrides: "+path, diags)
	}

	var file File
	if diags := gohcl.DecodeBody(hclFile.Body, nil, &file); diags.HasErrors() {
		return nil, errors.Config("decoding catalog overrides: "+path, diags)
	}
	return &file, nil
}

// Apply merges the overrides into a catalog. Blocks for unknown keys create
// new entries so operators can list platforms ahead of the remote resource.
func (f *File) Apply(cat *catalog.Catalog) error {
	for _, block := range f.Platforms {
		entry, ok := cat.Get(block.Key)
		isNew := false
		if !ok {
			if block.DisplayName == "" {
				return errors.Newf(errors.TypeConfig,
					"override for unknown platform %q needs display_name", block.Key)
			}
			entry = &catalog.Entry{
				Key:       block.Key,
				MaxMonths: 3,
				Enabled:   true,
			}
			isNew = true
		}

		if block.DisplayName != "" {
			entry.DisplayName = block.DisplayName
		}
		if block.PricePerMonth > 0 {
			entry.PricePerMonth = block.PricePerMonth
		}
		if block.MaxMonths > 0 {
			entry.MaxMonths = block.MaxMonths
		}
		if block.Enabled != nil {
			entry.Enabled = *block.Enabled
		}
		if block.BillingUnit != "" {
			switch block.BillingUnit {
			case "profile":
				entry.Unit = catalog.UnitProfile
			case "account":
				entry.Unit = catalog.UnitAccount
			default:
				return errors.Newf(errors.TypeConfig,
					"invalid billing_unit %q for platform %q", block.BillingUnit, block.Key)
			}
		}
		if block.Pricing != nil {
			entry.Tiers = block.Pricing.tiers()
		}

		if err := entry.Validate(); err != nil {
			return errors.Config(fmt.Sprintf("override for %q leaves entry unpriceable", block.Key), err)
		}
		if isNew {
			cat.Register(*entry)
		}
	}
	return nil
}

func (p *PricingBlock) tiers() map[int]int64 {
	tiers := map[int]int64{1: p.Month1}
	if p.Month2 > 0 {
		tiers[2] = p.Month2
	}
	if p.Month3 > 0 {
		tiers[3] = p.Month3
	}
	if p.Month6 > 0 {
		tiers[6] = p.Month6
	}
	return tiers
}
