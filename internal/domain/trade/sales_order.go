package trade

import (
	"time"

	"github.com/google/uuid"
	"github.com/ims/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// SalesOrderStatus represents the status of a sales order
type SalesOrderStatus string

const (
	SalesOrderOpen      SalesOrderStatus = "OPEN"
	SalesOrderCompleted SalesOrderStatus = "COMPLETED"
	SalesOrderCancelled SalesOrderStatus = "CANCELLED"
)

// IsValid checks if the status is a valid SalesOrderStatus
func (s SalesOrderStatus) IsValid() bool {
	switch s {
	case SalesOrderOpen, SalesOrderCompleted, SalesOrderCancelled:
		return true
	}
	return false
}

// SalesOrder represents a sales order header.
//
// Line items are stored separately and referenced by order id; the
// Subtotal/TaxAmount/GrandTotal fields are denormalized from them and
// owned exclusively by the recalculator. Every persisted header whose
// items have been recalculated satisfies
// GrandTotal = Subtotal + TaxAmount.
type SalesOrder struct {
	shared.BaseAggregateRoot
	Number      string    `gorm:"size:50;not null;uniqueIndex"`
	OrderDate   time.Time `gorm:"type:date;not null"`
	CustomerID  uuid.UUID `gorm:"type:uuid;not null;index"`
	TaxID       *uuid.UUID
	Status      SalesOrderStatus `gorm:"size:20;not null;default:'OPEN'"`
	Description string           `gorm:"size:500"`
	Subtotal    decimal.Decimal  `gorm:"type:decimal(20,2)"`
	TaxAmount   decimal.Decimal  `gorm:"type:decimal(20,2)"`
	GrandTotal  decimal.Decimal  `gorm:"type:decimal(20,2)"`
}

// NewSalesOrder creates a new sales order header
func NewSalesOrder(number string, orderDate time.Time, customerID uuid.UUID) (*SalesOrder, error) {
	if number == "" {
		return nil, shared.NewDomainError("INVALID_ORDER_NUMBER", "Order number cannot be empty")
	}
	if customerID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_CUSTOMER", "Customer ID cannot be empty")
	}

	order := &SalesOrder{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Number:            number,
		OrderDate:         orderDate,
		CustomerID:        customerID,
		Status:            SalesOrderOpen,
		Subtotal:          decimal.Zero,
		TaxAmount:         decimal.Zero,
		GrandTotal:        decimal.Zero,
	}

	order.AddDomainEvent(NewSalesOrderCreatedEvent(order))

	return order, nil
}

// SetTax changes the tax reference.
// Returns true if the reference actually changed, so callers know a
// recalculation is due.
func (o *SalesOrder) SetTax(taxID *uuid.UUID) bool {
	switch {
	case o.TaxID == nil && taxID == nil:
		return false
	case o.TaxID != nil && taxID != nil && *o.TaxID == *taxID:
		return false
	}
	o.TaxID = taxID
	o.Touch()
	return true
}

// SetDescription sets the free-text description
func (o *SalesOrder) SetDescription(description string) {
	o.Description = description
	o.Touch()
}

// ApplyTotals replaces the denormalized monetary aggregates.
// Only the recalculator calls this.
func (o *SalesOrder) ApplyTotals(totals OrderTotals) {
	o.Subtotal = totals.Subtotal
	o.TaxAmount = totals.TaxAmount
	o.GrandTotal = totals.GrandTotal
	o.Touch()
}

// Totals returns the current denormalized aggregates
func (o *SalesOrder) Totals() OrderTotals {
	return OrderTotals{
		Subtotal:   o.Subtotal,
		TaxAmount:  o.TaxAmount,
		GrandTotal: o.GrandTotal,
	}
}

// Complete marks the order as completed
func (o *SalesOrder) Complete() error {
	if o.Status != SalesOrderOpen {
		return shared.NewDomainErrorf("INVALID_STATE", "Cannot complete order in %s status", o.Status)
	}
	o.Status = SalesOrderCompleted
	o.Touch()
	return nil
}

// Cancel marks the order as cancelled
func (o *SalesOrder) Cancel() error {
	if o.Status == SalesOrderCompleted {
		return shared.NewDomainError("INVALID_STATE", "Cannot cancel a completed order")
	}
	o.Status = SalesOrderCancelled
	o.Touch()
	return nil
}
