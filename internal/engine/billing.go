package engine

import (
	"math"

	"github.com/emeraldbistro/table-service/internal/model"
)

// Totals carries the monetary breakdown of an order as derived from its
// line items and rate inputs.
type Totals struct {
	Subtotal  float64
	Discount  float64
	TaxAmount float64
	Total     float64
}

// ComputeTotals derives the bill for a set of line items.  The subtotal
// is the sum of price*quantity; the discount is clamped to [0, subtotal]
// so tax can never go negative; tax is applied to the discounted
// subtotal.  TaxAmount and Total are rounded to two decimal places,
// half away from zero.
func ComputeTotals(items []model.OrderItem, discount, taxRatePercent float64) Totals {
	subtotal := 0.0
	for _, it := range items {
		subtotal += it.Price * float64(it.Quantity)
	}
	subtotal = round2(subtotal)
	if discount < 0 {
		discount = 0
	}
	if discount > subtotal {
		discount = subtotal
	}
	taxable := subtotal - discount
	taxAmount := round2(taxable * taxRatePercent / 100)
	return Totals{
		Subtotal:  subtotal,
		Discount:  discount,
		TaxAmount: taxAmount,
		Total:     round2(taxable + taxAmount),
	}
}

// round2 rounds to two decimal places, half away from zero.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
