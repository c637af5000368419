package trade

import (
	"fmt"
	"time"
)

// FulfillmentStatus represents the fulfillment status of a purchase order
type FulfillmentStatus string

const (
	FulfillmentPending   FulfillmentStatus = "PENDING"
	FulfillmentShipping  FulfillmentStatus = "SHIPPING"
	FulfillmentReceived  FulfillmentStatus = "RECEIVED"
	FulfillmentReturned  FulfillmentStatus = "RETURNED"
	FulfillmentCancelled FulfillmentStatus = "CANCELLED"
)

// IsValid checks if the status is a valid FulfillmentStatus
func (s FulfillmentStatus) IsValid() bool {
	switch s {
	case FulfillmentPending, FulfillmentShipping, FulfillmentReceived,
		FulfillmentReturned, FulfillmentCancelled:
		return true
	}
	return false
}

// String returns the string representation of FulfillmentStatus
func (s FulfillmentStatus) String() string {
	return string(s)
}

// InvalidTransitionError reports a disallowed fulfillment transition.
// It is returned before any mutation is applied.
type InvalidTransitionError struct {
	From FulfillmentStatus
	To   FulfillmentStatus
}

// Error implements the error interface
func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("invalid fulfillment transition from %s to %s", e.From, e.To)
}

// NewInvalidTransitionError creates a new InvalidTransitionError
func NewInvalidTransitionError(from, to FulfillmentStatus) *InvalidTransitionError {
	return &InvalidTransitionError{From: from, To: to}
}

// TransitionTo moves the purchase order to the target fulfillment status,
// stamping and clearing milestone dates as the transition demands.
//
// Entering RECEIVED is only legal from SHIPPING (or as a revert from
// RETURNED, which clears the returned date); entering RETURNED is only
// legal from RECEIVED. The remaining targets are reachable from any
// status. At most one of the shipping/cancelled dates stays set outside
// the RECEIVED/RETURNED states.
func (o *PurchaseOrder) TransitionTo(target FulfillmentStatus) error {
	now := time.Now()

	switch target {
	case FulfillmentShipping:
		switch o.Status {
		case FulfillmentReceived:
			// Revert of a receipt: the goods are back in transit,
			// the original shipping date stands
			o.ReceivedDate = nil
		case FulfillmentShipping:
			// already shipping, dates stand
		default:
			shipped := now
			o.ShippingDate = &shipped
		}
		o.CancelledDate = nil

	case FulfillmentReceived:
		switch o.Status {
		case FulfillmentShipping:
			received := now
			o.ReceivedDate = &received
		case FulfillmentReturned:
			// Revert of a return; the original received date stands
			o.ReturnedDate = nil
		default:
			return NewInvalidTransitionError(o.Status, target)
		}

	case FulfillmentReturned:
		if o.Status != FulfillmentReceived {
			return NewInvalidTransitionError(o.Status, target)
		}
		returned := now
		o.ReturnedDate = &returned

	case FulfillmentPending:
		if o.Status == FulfillmentShipping {
			o.ShippingDate = nil
		}
		o.CancelledDate = nil

	case FulfillmentCancelled:
		if o.Status != FulfillmentCancelled {
			cancelled := now
			o.CancelledDate = &cancelled
		}
		o.ShippingDate = nil

	default:
		return NewInvalidTransitionError(o.Status, target)
	}

	from := o.Status
	o.Status = target
	o.UpdatedAt = now

	if from != target {
		o.AddDomainEvent(NewPurchaseOrderStatusChangedEvent(o, from))
	}

	return nil
}
