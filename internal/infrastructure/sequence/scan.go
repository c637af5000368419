// Package sequence implements the document number generators.
package sequence

import (
	"context"
	"fmt"

	domainseq "github.com/ims/backend/internal/domain/shared/sequence"
	"gorm.io/gorm"
)

// tableFor maps a document class to the table holding its numbers
var tableFor = map[string]string{
	"sales_order":    "sales_orders",
	"purchase_order": "purchase_orders",
	"delivery_order": "delivery_orders",
	"sales_return":   "sales_returns",
}

// ScanGenerator issues the next sequential number by scanning the
// highest number already stored for the class.
//
// The scan orders numbers as strings, which misorders once a counter
// outgrows its pad width ("PO-999" sorts above "PO-1000"), so every
// candidate is verified against the stored numbers and incremented
// until a free one is found.
//
// Two concurrent creations of the same class can still scan the same
// maximum and collide on the unique number index; the insert then fails
// and the caller retries. Use the redis generator when concurrent
// creation is expected.
type ScanGenerator struct {
	db *gorm.DB
}

// probeLimit bounds the free-number search after a stale scan
const probeLimit = 100

// NewScanGenerator creates a scan-based generator
func NewScanGenerator(db *gorm.DB) *ScanGenerator {
	return &ScanGenerator{db: db}
}

// Next implements sequence.Generator
func (g *ScanGenerator) Next(ctx context.Context, class domainseq.Class) (string, error) {
	table, ok := tableFor[class.Name]
	if !ok {
		return "", fmt.Errorf("unknown document class %q", class.Name)
	}

	var latest string
	err := g.db.WithContext(ctx).
		Table(table).
		Where("number LIKE ?", class.Prefix+"%").
		Order("number DESC").
		Limit(1).
		Pluck("number", &latest).Error
	if err != nil {
		return "", fmt.Errorf("scan last %s number: %w", class.Name, err)
	}

	var next int64 = 1
	if latest != "" {
		if n, ok := class.Parse(latest); ok {
			next = n + 1
		}
	}

	for attempt := 0; attempt < probeLimit; attempt++ {
		number := class.Format(next)

		var count int64
		err := g.db.WithContext(ctx).
			Table(table).
			Where("number = ?", number).
			Count(&count).Error
		if err != nil {
			return "", fmt.Errorf("verify %s number %s: %w", class.Name, number, err)
		}
		if count == 0 {
			return number, nil
		}
		next++
	}
	return "", fmt.Errorf("no free %s number within %d of the scanned maximum", class.Name, probeLimit)
}
