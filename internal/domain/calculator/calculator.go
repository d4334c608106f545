// Package calculator computes estimate totals from line items.
//
// All functions are pure. Sums are accumulated in decimal and converted back
// to float64 once, so adding many currency values does not drift.
package calculator

import (
	"estimate_app/internal/domain/entities"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// Totals groups the figures shown under the item table.
type Totals struct {
	SubTotal float64 `json:"subTotal"`
	Tax      float64 `json:"tax"`
	Discount float64 `json:"discount"`
	Total    float64 `json:"total"`
}

// LineAmount is the single authoritative quantity*rate computation.
func LineAmount(item entities.EstimateItem) float64 {
	return lineAmount(item).InexactFloat64()
}

// Subtotal sums quantity*rate over items. Empty input yields 0.
func Subtotal(items []entities.EstimateItem) float64 {
	sum := decimal.Zero
	for _, it := range items {
		sum = sum.Add(lineAmount(it))
	}
	return sum.InexactFloat64()
}

// TaxAmount applies each item's own percentage to its own amount.
func TaxAmount(items []entities.EstimateItem) float64 {
	sum := decimal.Zero
	for _, it := range items {
		sum = sum.Add(lineAmount(it).Mul(decimal.NewFromFloat(it.Tax)).Div(hundred))
	}
	return sum.InexactFloat64()
}

// Total is subtotal + tax - discount. A discount larger than subtotal+tax
// gives a negative total.
func Total(subtotal, taxAmount, discount float64) float64 {
	return decimal.NewFromFloat(subtotal).
		Add(decimal.NewFromFloat(taxAmount)).
		Sub(decimal.NewFromFloat(discount)).
		InexactFloat64()
}

// Calculate returns every figure at once.
func Calculate(items []entities.EstimateItem, discount float64) Totals {
	sub := Subtotal(items)
	tax := TaxAmount(items)
	return Totals{
		SubTotal: sub,
		Tax:      tax,
		Discount: discount,
		Total:    Total(sub, tax, discount),
	}
}

// WithAmounts returns a copy of items with Amount recomputed.
func WithAmounts(items []entities.EstimateItem) []entities.EstimateItem {
	out := make([]entities.EstimateItem, len(items))
	for i, it := range items {
		it.Amount = LineAmount(it)
		out[i] = it
	}
	return out
}

func lineAmount(it entities.EstimateItem) decimal.Decimal {
	return decimal.NewFromFloat(it.Quantity).Mul(decimal.NewFromFloat(it.Rate))
}
