package trade

import (
	"time"

	"github.com/google/uuid"
	"github.com/ims/backend/internal/domain/shared"
)

// DeliveryStatus represents the status of a delivery order
type DeliveryStatus string

const (
	DeliveryPending   DeliveryStatus = "PENDING"
	DeliveryShipped   DeliveryStatus = "SHIPPED"
	DeliveryDelivered DeliveryStatus = "DELIVERED"
	DeliveryCancelled DeliveryStatus = "CANCELLED"
)

// IsValid checks if the status is a valid DeliveryStatus
func (s DeliveryStatus) IsValid() bool {
	switch s {
	case DeliveryPending, DeliveryShipped, DeliveryDelivered, DeliveryCancelled:
		return true
	}
	return false
}

// DeliveryOrder ships goods for a sales order.
// A sales order cannot be deleted while delivery orders reference it.
type DeliveryOrder struct {
	shared.BaseAggregateRoot
	Number       string     `gorm:"size:50;not null;uniqueIndex"`
	SalesOrderID uuid.UUID  `gorm:"type:uuid;not null;index"`
	WarehouseID  *uuid.UUID `gorm:"type:uuid"`
	DeliveryDate time.Time  `gorm:"type:date;not null"`
	Status       DeliveryStatus `gorm:"size:20;not null;default:'PENDING'"`
	Description  string         `gorm:"size:500"`

	ShippedDate   *time.Time `gorm:"type:date"`
	DeliveredDate *time.Time `gorm:"type:date"`
}

// NewDeliveryOrder creates a new delivery order in PENDING status
func NewDeliveryOrder(number string, deliveryDate time.Time, salesOrderID uuid.UUID) (*DeliveryOrder, error) {
	if number == "" {
		return nil, shared.NewDomainError("INVALID_ORDER_NUMBER", "Delivery number cannot be empty")
	}
	if salesOrderID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_SALES_ORDER", "Sales order ID cannot be empty")
	}

	return &DeliveryOrder{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Number:            number,
		SalesOrderID:      salesOrderID,
		DeliveryDate:      deliveryDate,
		Status:            DeliveryPending,
	}, nil
}

// SetWarehouse sets the warehouse goods ship from
func (d *DeliveryOrder) SetWarehouse(warehouseID uuid.UUID) error {
	if warehouseID == uuid.Nil {
		return shared.NewDomainError("INVALID_WAREHOUSE", "Warehouse ID cannot be empty")
	}
	d.WarehouseID = &warehouseID
	d.Touch()
	return nil
}

// Ship marks the delivery as shipped
func (d *DeliveryOrder) Ship() error {
	if d.Status != DeliveryPending {
		return shared.NewDomainErrorf("INVALID_STATE", "Cannot ship delivery in %s status", d.Status)
	}
	now := time.Now()
	d.Status = DeliveryShipped
	d.ShippedDate = &now
	d.UpdatedAt = now
	return nil
}

// Deliver marks the delivery as completed
func (d *DeliveryOrder) Deliver() error {
	if d.Status != DeliveryShipped {
		return shared.NewDomainErrorf("INVALID_STATE", "Cannot deliver in %s status", d.Status)
	}
	now := time.Now()
	d.Status = DeliveryDelivered
	d.DeliveredDate = &now
	d.UpdatedAt = now
	return nil
}

// Cancel cancels the delivery.
// A completed delivery cannot be cancelled.
func (d *DeliveryOrder) Cancel() error {
	if d.Status == DeliveryDelivered {
		return shared.NewDomainError("INVALID_STATE", "Cannot cancel a completed delivery")
	}
	d.Status = DeliveryCancelled
	d.ShippedDate = nil
	d.Touch()
	return nil
}
