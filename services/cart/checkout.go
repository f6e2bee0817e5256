// Package cart prices the marketplace checkout. It is intentionally a
// separate calculator from the trip booking engine: flat tax, free shipping,
// no shared state.
package cart

import "tripatlas/models"

// DefaultTaxRatePercent is the flat checkout tax.
const DefaultTaxRatePercent = 18

// Calculator totals a marketplace cart.
type Calculator struct {
	TaxRatePercent int64
}

func NewCalculator() *Calculator {
	return &Calculator{TaxRatePercent: DefaultTaxRatePercent}
}

// CheckoutTotal sums the cart, adds the flat tax and free shipping. Lines
// with non-positive quantities contribute nothing.
func (c *Calculator) CheckoutTotal(items []models.CartItem) models.CartTotal {
	var subtotal int64
	for _, item := range items {
		if item.Quantity <= 0 {
			continue
		}
		subtotal += item.UnitPrice * int64(item.Quantity)
	}

	tax := subtotal * c.TaxRatePercent / 100
	return models.CartTotal{
		Subtotal: subtotal,
		Tax:      tax,
		Shipping: 0,
		Total:    subtotal + tax,
	}
}
