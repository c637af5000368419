package trade

import (
	"sync"

	"github.com/google/uuid"
)

// orderLocks serializes mutations per order id. The record store only
// guarantees per-document atomicity, so without this an interleaved
// recalculation could be lost to a concurrent item edit (last replace
// wins). Mutex entries are kept for the life of the process.
type orderLocks struct {
	mus sync.Map // uuid.UUID -> *sync.Mutex
}

// Lock acquires the mutex for the given order id and returns its
// unlock function
func (l *orderLocks) Lock(orderID uuid.UUID) func() {
	v, _ := l.mus.LoadOrStore(orderID, &sync.Mutex{})
	mu := v.(*sync.Mutex)
	mu.Lock()
	return mu.Unlock
}
