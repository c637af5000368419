package trade

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestComputeTotals(t *testing.T) {
	t.Run("sums line amounts and applies percentage tax", func(t *testing.T) {
		amounts := []decimal.Decimal{d("100"), d("150")}

		totals := ComputeTotals(amounts, d("10"))

		assert.True(t, totals.Subtotal.Equal(d("250")))
		assert.True(t, totals.TaxAmount.Equal(d("25.00")))
		assert.True(t, totals.GrandTotal.Equal(d("275.00")))
	})

	t.Run("no items yields zero totals", func(t *testing.T) {
		totals := ComputeTotals(nil, d("10"))

		assert.True(t, totals.Equals(ZeroTotals()))
	})

	t.Run("zero rate yields zero tax", func(t *testing.T) {
		totals := ComputeTotals([]decimal.Decimal{d("99.99")}, decimal.Zero)

		assert.True(t, totals.TaxAmount.IsZero())
		assert.True(t, totals.GrandTotal.Equal(d("99.99")))
	})

	t.Run("tax amount rounds half-up to two decimals", func(t *testing.T) {
		// 33.33 * 7.5% = 2.49975 -> 2.50
		totals := ComputeTotals([]decimal.Decimal{d("33.33")}, d("7.5"))

		assert.True(t, totals.TaxAmount.Equal(d("2.50")), "got %s", totals.TaxAmount)
		assert.True(t, totals.GrandTotal.Equal(d("35.83")))
	})

	t.Run("grand total is always subtotal plus tax", func(t *testing.T) {
		cases := []struct {
			amounts []decimal.Decimal
			rate    decimal.Decimal
		}{
			{[]decimal.Decimal{d("0.01"), d("0.02")}, d("19")},
			{[]decimal.Decimal{d("1234567.89")}, d("5.5")},
			{[]decimal.Decimal{d("10"), d("20"), d("30")}, decimal.Zero},
		}
		for _, tc := range cases {
			totals := ComputeTotals(tc.amounts, tc.rate)
			assert.True(t, totals.GrandTotal.Equal(totals.Subtotal.Add(totals.TaxAmount)))
		}
	})

	t.Run("recomputation is idempotent", func(t *testing.T) {
		amounts := []decimal.Decimal{d("12.34"), d("56.78")}

		first := ComputeTotals(amounts, d("8.25"))
		second := ComputeTotals(amounts, d("8.25"))

		assert.True(t, first.Equals(second))
	})
}
