// Package fixed centralizes the decimal scales used across the kitchen
// domain: recipe and purchase quantities carry 4 places, money carries 2.
// Rounding is half up (decimal.Round is half away from zero, which is the
// same thing for the non-negative amounts handled here).
package fixed

import (
	"github.com/shopspring/decimal"
)

const (
	QuantityPlaces = 4
	MoneyPlaces    = 2
)

func Quantity(d decimal.Decimal) decimal.Decimal {
	return d.Round(QuantityPlaces)
}

func Money(d decimal.Decimal) decimal.Decimal {
	return d.Round(MoneyPlaces)
}

// Cost is quantity × unit cost at money scale.
func Cost(quantity, unitCost decimal.Decimal) decimal.Decimal {
	return Money(quantity.Mul(unitCost))
}
