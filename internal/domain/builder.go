package domain

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// OrderBuilder accumulates beverage choices step by step, validating each
// one against the menu. Mutating methods return an error instead of
// panicking; on error the builder keeps its prior state. Build snapshots an
// Order without consuming the builder, so one builder can produce any
// number of orders incrementally.
//
// A builder is not safe for concurrent use; give each order its own.
type OrderBuilder struct {
	menu Menu

	base   string
	size   string
	milk   string
	syrups []string
	sugar  int
	iced   bool
	shots  int
}

// NewOrderBuilder creates an empty builder against the default menu.
// Milk starts at "none", everything else at zero.
func NewOrderBuilder() *OrderBuilder {
	return NewOrderBuilderWithMenu(DefaultMenu())
}

// NewOrderBuilderWithMenu creates an empty builder validating against a
// custom menu, e.g. one loaded from .brewkraft.yaml.
func NewOrderBuilderWithMenu(menu Menu) *OrderBuilder {
	return &OrderBuilder{menu: menu, milk: DefaultMilk}
}

// SetBase records the drink base. Unknown names fail with ErrInvalidChoice.
func (b *OrderBuilder) SetBase(name string) error {
	if _, ok := b.menu.BasePrices[name]; !ok {
		return fmt.Errorf("%w: unknown base %q", ErrInvalidChoice, name)
	}
	b.base = name
	return nil
}

// SetSize records the serving size. Unknown names fail with ErrInvalidChoice.
func (b *OrderBuilder) SetSize(name string) error {
	if _, ok := b.menu.SizeMultipliers[name]; !ok {
		return fmt.Errorf("%w: unknown size %q", ErrInvalidChoice, name)
	}
	b.size = name
	return nil
}

// SetMilk records the milk choice, overwriting any prior one.
func (b *OrderBuilder) SetMilk(name string) error {
	if _, ok := b.menu.MilkSurcharges[name]; !ok {
		return fmt.Errorf("%w: unknown milk %q", ErrInvalidChoice, name)
	}
	b.milk = name
	return nil
}

// AddSyrup appends a syrup, preserving insertion order. Adding a syrup that
// is already present is a silent no-op, not an error. A fifth distinct
// syrup fails with ErrLimitExceeded.
func (b *OrderBuilder) AddSyrup(name string) error {
	for _, s := range b.syrups {
		if s == name {
			return nil
		}
	}
	if len(b.syrups) >= b.menu.MaxSyrups {
		return fmt.Errorf("%w: at most %d syrups", ErrLimitExceeded, b.menu.MaxSyrups)
	}
	b.syrups = append(b.syrups, name)
	return nil
}

// SetSugar overwrites the sugar count, in teaspoons.
func (b *OrderBuilder) SetSugar(teaspoons int) error {
	if teaspoons < 0 || teaspoons > b.menu.MaxSugar {
		return fmt.Errorf("%w: sugar must be between 0 and %d", ErrOutOfRange, b.menu.MaxSugar)
	}
	b.sugar = teaspoons
	return nil
}

// AddShot adds count extra espresso shots to the running total. The total
// may never exceed the menu's shot limit; a failed call leaves the total
// unchanged.
func (b *OrderBuilder) AddShot(count int) error {
	if count < 0 {
		return fmt.Errorf("%w: shot count cannot be negative", ErrInvalidArgument)
	}
	if b.shots+count > b.menu.MaxShots {
		return fmt.Errorf("%w: at most %d extra shots", ErrLimitExceeded, b.menu.MaxShots)
	}
	b.shots += count
	return nil
}

// SetIced overwrites the iced flag. The boolean domain is total, so this
// cannot fail.
func (b *OrderBuilder) SetIced(iced bool) {
	b.iced = iced
}

// ResetExtras restores milk, syrups, sugar, shots and iced to their
// defaults. Base and size are intentionally kept.
func (b *OrderBuilder) ResetExtras() {
	b.milk = DefaultMilk
	b.syrups = nil
	b.sugar = 0
	b.shots = 0
	b.iced = false
}

// Base returns the recorded base, or "" if unset.
func (b *OrderBuilder) Base() string { return b.base }

// Size returns the recorded size, or "" if unset.
func (b *OrderBuilder) Size() string { return b.size }

// Milk returns the current milk choice.
func (b *OrderBuilder) Milk() string { return b.milk }

// Sugar returns the current sugar count in teaspoons.
func (b *OrderBuilder) Sugar() int { return b.sugar }

// ExtraShots returns the accumulated shot total.
func (b *OrderBuilder) ExtraShots() int { return b.shots }

// Iced reports whether the order is iced.
func (b *OrderBuilder) Iced() bool { return b.iced }

// Syrups returns a copy of the syrups in insertion order.
func (b *OrderBuilder) Syrups() []string {
	return append([]string(nil), b.syrups...)
}

// Build validates the mandatory fields and returns an immutable Order
// snapshot. The builder itself is unchanged: building twice without
// intervening mutation yields distinct, value-identical orders.
func (b *OrderBuilder) Build() (Order, error) {
	if b.base == "" {
		return Order{}, ErrMissingBase
	}
	if b.size == "" {
		return Order{}, ErrMissingSize
	}

	return Order{
		Base:        b.base,
		Size:        b.size,
		Milk:        b.milk,
		Syrups:      b.Syrups(),
		Sugar:       b.sugar,
		Iced:        b.iced,
		ExtraShots:  b.shots,
		Price:       b.price(),
		Description: b.describe(),
	}, nil
}

// price computes the order total:
// base price × size multiplier, plus milk surcharge, syrups and shots,
// plus the iced rate applied to the base cost. Rounded half-up to two
// decimals exactly once, on the final subtotal.
func (b *OrderBuilder) price() float64 {
	baseCost := b.menu.BasePrices[b.base] * b.menu.SizeMultipliers[b.size]
	milkCost := b.menu.MilkSurcharges[b.milk]
	syrupCost := float64(len(b.syrups)) * b.menu.SyrupPrice
	shotCost := float64(b.shots) * b.menu.ShotPrice

	subtotal := baseCost + milkCost + syrupCost + shotCost
	if b.iced {
		subtotal += baseCost * b.menu.IcedRate
	}
	return math.Round(subtotal*100) / 100
}

// describe synthesizes the human-readable summary. Clause order is fixed;
// a clause is omitted when its field is at its default.
func (b *OrderBuilder) describe() string {
	parts := []string{b.size + " " + b.base}
	if b.milk != DefaultMilk {
		parts = append(parts, "with "+b.milk+" milk")
	}
	if len(b.syrups) > 0 {
		parts = append(parts, "+"+strings.Join(b.syrups, ",")+" syrup")
	}
	if b.iced {
		parts = append(parts, "(iced)")
	}
	if b.sugar > 0 {
		parts = append(parts, strconv.Itoa(b.sugar)+" tsp sugar")
	}
	if b.shots > 0 {
		parts = append(parts, "+"+strconv.Itoa(b.shots)+" extra shot(s)")
	}
	return strings.Join(parts, " ")
}
