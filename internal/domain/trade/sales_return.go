package trade

import (
	"time"

	"github.com/google/uuid"
	"github.com/ims/backend/internal/domain/shared"
)

// SalesReturnStatus represents the status of a sales return
type SalesReturnStatus string

const (
	SalesReturnPending   SalesReturnStatus = "PENDING"
	SalesReturnCompleted SalesReturnStatus = "COMPLETED"
	SalesReturnCancelled SalesReturnStatus = "CANCELLED"
)

// IsValid checks if the status is a valid SalesReturnStatus
func (s SalesReturnStatus) IsValid() bool {
	switch s {
	case SalesReturnPending, SalesReturnCompleted, SalesReturnCancelled:
		return true
	}
	return false
}

// SalesReturn records goods coming back against a delivery order.
// A delivery order cannot be deleted while sales returns reference it.
type SalesReturn struct {
	shared.BaseAggregateRoot
	Number          string    `gorm:"size:50;not null;uniqueIndex"`
	DeliveryOrderID uuid.UUID `gorm:"type:uuid;not null;index"`
	ReturnDate      time.Time `gorm:"type:date;not null"`
	Status          SalesReturnStatus `gorm:"size:20;not null;default:'PENDING'"`
	Reason          string            `gorm:"size:500"`

	CompletedDate *time.Time `gorm:"type:date"`
}

// NewSalesReturn creates a new sales return in PENDING status
func NewSalesReturn(number string, returnDate time.Time, deliveryOrderID uuid.UUID) (*SalesReturn, error) {
	if number == "" {
		return nil, shared.NewDomainError("INVALID_ORDER_NUMBER", "Return number cannot be empty")
	}
	if deliveryOrderID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_DELIVERY_ORDER", "Delivery order ID cannot be empty")
	}

	return &SalesReturn{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Number:            number,
		DeliveryOrderID:   deliveryOrderID,
		ReturnDate:        returnDate,
		Status:            SalesReturnPending,
	}, nil
}

// SetReason records why the goods came back
func (r *SalesReturn) SetReason(reason string) {
	r.Reason = reason
	r.Touch()
}

// Complete marks the return as completed
func (r *SalesReturn) Complete() error {
	if r.Status != SalesReturnPending {
		return shared.NewDomainErrorf("INVALID_STATE", "Cannot complete return in %s status", r.Status)
	}
	now := time.Now()
	r.Status = SalesReturnCompleted
	r.CompletedDate = &now
	r.UpdatedAt = now
	return nil
}

// Cancel cancels the return
func (r *SalesReturn) Cancel() error {
	if r.Status == SalesReturnCompleted {
		return shared.NewDomainError("INVALID_STATE", "Cannot cancel a completed return")
	}
	r.Status = SalesReturnCancelled
	r.Touch()
	return nil
}
