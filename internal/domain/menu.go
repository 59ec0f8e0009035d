package domain

import "sort"

// Menu holds the price catalogs and limits an OrderBuilder validates against.
// The maps are lookup tables shared across builders; treat them as read-only.
type Menu struct {
	BasePrices      map[string]float64 `json:"base_prices"`
	SizeMultipliers map[string]float64 `json:"size_multipliers"`
	MilkSurcharges  map[string]float64 `json:"milk_surcharges"`

	SyrupPrice float64 `json:"syrup_price"`
	ShotPrice  float64 `json:"shot_price"`
	IcedRate   float64 `json:"iced_rate"`

	MaxSyrups int `json:"max_syrups"`
	MaxSugar  int `json:"max_sugar"`
	MaxShots  int `json:"max_shots"`
}

// DefaultMilk is the milk choice every builder starts with.
const DefaultMilk = "none"

// Default catalogs, initialized once at package load and never mutated.
var (
	defaultBasePrices = map[string]float64{
		"espresso":   200.0,
		"americano":  250.0,
		"latte":      300.0,
		"cappuccino": 320.0,
	}

	defaultSizeMultipliers = map[string]float64{
		"small":  1.0,
		"medium": 1.2,
		"large":  1.4,
	}

	defaultMilkSurcharges = map[string]float64{
		DefaultMilk: 0.0,
		"whole":     30.0,
		"skim":      30.0,
		"oat":       60.0,
		"soy":       50.0,
	}
)

// Menu display order. Maps don't keep one, the receipt and menu views need one.
var (
	baseOrder = []string{"espresso", "americano", "latte", "cappuccino"}
	sizeOrder = []string{"small", "medium", "large"}
	milkOrder = []string{DefaultMilk, "whole", "skim", "oat", "soy"}
)

// DefaultMenu returns the standard menu. The returned Menu shares the
// package-level tables; callers must not modify them.
func DefaultMenu() Menu {
	return Menu{
		BasePrices:      defaultBasePrices,
		SizeMultipliers: defaultSizeMultipliers,
		MilkSurcharges:  defaultMilkSurcharges,
		SyrupPrice:      40.0,
		ShotPrice:       70.0,
		IcedRate:        0.20,
		MaxSyrups:       4,
		MaxSugar:        5,
		MaxShots:        3,
	}
}

// Bases lists the base catalog in menu order, followed by any custom
// entries added through configuration.
func (m Menu) Bases() []string {
	return orderedKeys(m.BasePrices, baseOrder)
}

// Sizes lists the size catalog in menu order.
func (m Menu) Sizes() []string {
	return orderedKeys(m.SizeMultipliers, sizeOrder)
}

// Milks lists the milk catalog in menu order.
func (m Menu) Milks() []string {
	return orderedKeys(m.MilkSurcharges, milkOrder)
}

func orderedKeys(table map[string]float64, known []string) []string {
	names := make([]string, 0, len(table))
	seen := make(map[string]bool, len(known))
	for _, n := range known {
		if _, ok := table[n]; ok {
			names = append(names, n)
			seen[n] = true
		}
	}

	// Custom entries from config come after the standard ones, sorted.
	var extras []string
	for n := range table {
		if !seen[n] {
			extras = append(extras, n)
		}
	}
	sort.Strings(extras)
	return append(names, extras...)
}
