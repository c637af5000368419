// Package sequence defines the contract for issuing human-readable
// document numbers (order, delivery and return numbers).
package sequence

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Generator issues document numbers unique within an entity class.
//
// Uniqueness across concurrent callers depends on the implementation:
// counter-backed generators are safe, scan-based generators are only
// safe for non-concurrent creation.
type Generator interface {
	Next(ctx context.Context, class Class) (string, error)
}

// Class identifies one independently numbered family of documents.
// The prefix and pad width must stay stable within a deployment so
// that previously issued numbers keep sorting correctly.
type Class struct {
	Name   string // counter key, e.g. "sales_order"
	Prefix string // e.g. "SO-"
	Pad    int    // zero-pad width for sequential strategies
}

// Predefined document classes
var (
	SalesOrders    = Class{Name: "sales_order", Prefix: "SO-", Pad: 5}
	PurchaseOrders = Class{Name: "purchase_order", Prefix: "PO-", Pad: 3}
	DeliveryOrders = Class{Name: "delivery_order", Prefix: "DO-", Pad: 5}
	SalesReturns   = Class{Name: "sales_return", Prefix: "SR-", Pad: 5}
)

// Format renders the n-th number of the class, e.g. Format(7) -> "PO-007"
func (c Class) Format(n int64) string {
	return fmt.Sprintf("%s%0*d", c.Prefix, c.Pad, n)
}

// FormatTimestamp renders a date-stamped number, e.g. "SO-20260831093045"
func (c Class) FormatTimestamp(t time.Time) string {
	return c.Prefix + t.Format("20060102150405")
}

// Parse extracts the sequential part of a previously issued number.
// Returns false for numbers that do not carry the class prefix or a
// numeric suffix (e.g. date-stamped numbers of a different width are
// still parseable; garbage is not).
func (c Class) Parse(number string) (int64, bool) {
	rest, ok := strings.CutPrefix(number, c.Prefix)
	if !ok {
		return 0, false
	}
	n, err := strconv.ParseInt(rest, 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}
