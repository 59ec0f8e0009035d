package domain

import "fmt"

// Order is an immutable snapshot of a fully built beverage order.
// Price and Description are derived by OrderBuilder.Build and never set
// directly.
type Order struct {
	Base        string   `json:"base"`
	Size        string   `json:"size"`
	Milk        string   `json:"milk"`
	Syrups      []string `json:"syrups,omitempty"`
	Sugar       int      `json:"sugar"`
	Iced        bool     `json:"iced"`
	ExtraShots  int      `json:"extra_shots"`
	Price       float64  `json:"price"`
	Description string   `json:"description"`
}

func (o Order) String() string {
	if o.Description != "" {
		return o.Description
	}
	return fmt.Sprintf("%s %s (%.2f)", o.Size, o.Base, o.Price)
}
