package sequence

import (
	"context"
	"time"

	domainseq "github.com/ims/backend/internal/domain/shared/sequence"
)

// TimestampGenerator issues date-stamped numbers without any shared
// state. Two creations within the same second collide on the unique
// number index, so this is a fallback for deployments without redis
// where creation volume is low.
type TimestampGenerator struct {
	now func() time.Time
}

// NewTimestampGenerator creates a timestamp-based generator
func NewTimestampGenerator() *TimestampGenerator {
	return &TimestampGenerator{now: time.Now}
}

// Next implements sequence.Generator
func (g *TimestampGenerator) Next(_ context.Context, class domainseq.Class) (string, error) {
	return class.FormatTimestamp(g.now()), nil
}
