package trade

import (
	"github.com/google/uuid"
	"github.com/ims/backend/internal/domain/shared"
)

// Event types for purchase orders
const (
	EventPurchaseOrderCreated       = "trade.purchase_order.created"
	EventPurchaseOrderStatusChanged = "trade.purchase_order.status_changed"
	EventPurchaseOrderDeleted       = "trade.purchase_order.deleted"
)

// PurchaseOrderCreatedEvent is raised when a purchase order is created
type PurchaseOrderCreatedEvent struct {
	shared.BaseDomainEvent
	Number   string    `json:"number"`
	VendorID uuid.UUID `json:"vendor_id"`
}

// NewPurchaseOrderCreatedEvent creates a new PurchaseOrderCreatedEvent
func NewPurchaseOrderCreatedEvent(order *PurchaseOrder) *PurchaseOrderCreatedEvent {
	return &PurchaseOrderCreatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventPurchaseOrderCreated, "PurchaseOrder", order.ID),
		Number:          order.Number,
		VendorID:        order.VendorID,
	}
}

// PurchaseOrderStatusChangedEvent is raised on every fulfillment
// transition that lands in a different status
type PurchaseOrderStatusChangedEvent struct {
	shared.BaseDomainEvent
	Number string            `json:"number"`
	From   FulfillmentStatus `json:"from"`
	To     FulfillmentStatus `json:"to"`
}

// NewPurchaseOrderStatusChangedEvent creates a new PurchaseOrderStatusChangedEvent
func NewPurchaseOrderStatusChangedEvent(order *PurchaseOrder, from FulfillmentStatus) *PurchaseOrderStatusChangedEvent {
	return &PurchaseOrderStatusChangedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventPurchaseOrderStatusChanged, "PurchaseOrder", order.ID),
		Number:          order.Number,
		From:            from,
		To:              order.Status,
	}
}

// PurchaseOrderDeletedEvent is raised after a purchase order and its
// items have been removed
type PurchaseOrderDeletedEvent struct {
	shared.BaseDomainEvent
	Number string `json:"number"`
}

// NewPurchaseOrderDeletedEvent creates a new PurchaseOrderDeletedEvent
func NewPurchaseOrderDeletedEvent(order *PurchaseOrder) *PurchaseOrderDeletedEvent {
	return &PurchaseOrderDeletedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventPurchaseOrderDeleted, "PurchaseOrder", order.ID),
		Number:          order.Number,
	}
}
