package trade

import (
	"github.com/shopspring/decimal"
)

// OrderTotals holds the denormalized monetary aggregates of an order header.
// Invariant: GrandTotal = Subtotal + TaxAmount, with TaxAmount rounded
// half-up to 2 decimal places.
type OrderTotals struct {
	Subtotal   decimal.Decimal
	TaxAmount  decimal.Decimal
	GrandTotal decimal.Decimal
}

// ZeroTotals returns the totals of an order with no items
func ZeroTotals() OrderTotals {
	return OrderTotals{
		Subtotal:   decimal.Zero,
		TaxAmount:  decimal.Zero,
		GrandTotal: decimal.Zero,
	}
}

// ComputeTotals derives order totals from line amounts and a percentage
// tax rate. Line amounts are already unit price times quantity; the
// caller resolves the rate (zero when the order has no tax reference).
func ComputeTotals(lineAmounts []decimal.Decimal, taxRate decimal.Decimal) OrderTotals {
	subtotal := decimal.Zero
	for _, amount := range lineAmounts {
		subtotal = subtotal.Add(amount)
	}

	taxAmount := subtotal.Mul(taxRate).Div(decimal.NewFromInt(100)).Round(2)
	return OrderTotals{
		Subtotal:   subtotal,
		TaxAmount:  taxAmount,
		GrandTotal: subtotal.Add(taxAmount),
	}
}

// Equals reports whether two totals are numerically identical
func (t OrderTotals) Equals(other OrderTotals) bool {
	return t.Subtotal.Equal(other.Subtotal) &&
		t.TaxAmount.Equal(other.TaxAmount) &&
		t.GrandTotal.Equal(other.GrandTotal)
}
