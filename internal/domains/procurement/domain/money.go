package domain

import "github.com/shopspring/decimal"

// LineTotal multiplies a quantity by a unit price. The product is computed
// exactly and then converted back to float64; no currency rounding is applied.
func LineTotal(quantity int64, unitPrice float64) float64 {
	return decimal.NewFromInt(quantity).Mul(decimal.NewFromFloat(unitPrice)).InexactFloat64()
}
