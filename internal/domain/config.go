package domain

import "fmt"

// MenuConfig holds menu overrides loaded from .brewkraft.yaml. Every field
// is optional; anything left out keeps its default from DefaultMenu.
// Entries in the catalog maps extend or overwrite the default tables.
// Pointer types distinguish "not specified" from zero values.
type MenuConfig struct {
	Bases map[string]float64 `yaml:"bases"  json:"bases,omitempty"`
	Sizes map[string]float64 `yaml:"sizes"  json:"sizes,omitempty"`
	Milks map[string]float64 `yaml:"milks"  json:"milks,omitempty"`

	SyrupPrice *float64 `yaml:"syrup_price,omitempty" json:"syrup_price,omitempty"`
	ShotPrice  *float64 `yaml:"shot_price,omitempty"  json:"shot_price,omitempty"`
	IcedRate   *float64 `yaml:"iced_rate,omitempty"   json:"iced_rate,omitempty"`
}

// Validate catches bad values before they reach a menu — typos in the
// user's raw input surface here, not at pricing time.
func (c MenuConfig) Validate() error {
	for name, price := range c.Bases {
		if price <= 0 {
			return fmt.Errorf("base %q: price must be positive, got %v", name, price)
		}
	}
	for name, mult := range c.Sizes {
		if mult <= 0 {
			return fmt.Errorf("size %q: multiplier must be positive, got %v", name, mult)
		}
	}
	for name, surcharge := range c.Milks {
		if surcharge < 0 {
			return fmt.Errorf("milk %q: surcharge cannot be negative, got %v", name, surcharge)
		}
	}
	if c.SyrupPrice != nil && *c.SyrupPrice < 0 {
		return fmt.Errorf("syrup_price cannot be negative, got %v", *c.SyrupPrice)
	}
	if c.ShotPrice != nil && *c.ShotPrice < 0 {
		return fmt.Errorf("shot_price cannot be negative, got %v", *c.ShotPrice)
	}
	if c.IcedRate != nil && (*c.IcedRate < 0 || *c.IcedRate > 1) {
		return fmt.Errorf("iced_rate must be between 0 and 1, got %v", *c.IcedRate)
	}
	return nil
}

// ApplyTo overlays the overrides on a menu and returns the result. The
// input menu's tables are never touched; overridden catalogs are copied
// first so the package defaults stay immutable.
func (c MenuConfig) ApplyTo(menu Menu) Menu {
	result := menu

	if len(c.Bases) > 0 {
		result.BasePrices = overlay(menu.BasePrices, c.Bases)
	}
	if len(c.Sizes) > 0 {
		result.SizeMultipliers = overlay(menu.SizeMultipliers, c.Sizes)
	}
	if len(c.Milks) > 0 {
		result.MilkSurcharges = overlay(menu.MilkSurcharges, c.Milks)
	}

	if c.SyrupPrice != nil {
		result.SyrupPrice = *c.SyrupPrice
	}
	if c.ShotPrice != nil {
		result.ShotPrice = *c.ShotPrice
	}
	if c.IcedRate != nil {
		result.IcedRate = *c.IcedRate
	}

	return result
}

func overlay(base, override map[string]float64) map[string]float64 {
	merged := make(map[string]float64, len(base)+len(override))
	for k, v := range base {
		merged[k] = v
	}
	for k, v := range override {
		merged[k] = v
	}
	return merged
}
