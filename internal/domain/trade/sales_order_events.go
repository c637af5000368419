package trade

import (
	"github.com/google/uuid"
	"github.com/ims/backend/internal/domain/shared"
)

// Event types for sales orders
const (
	EventSalesOrderCreated      = "trade.sales_order.created"
	EventSalesOrderRecalculated = "trade.sales_order.recalculated"
	EventSalesOrderDeleted      = "trade.sales_order.deleted"
)

// SalesOrderCreatedEvent is raised when a sales order is created
type SalesOrderCreatedEvent struct {
	shared.BaseDomainEvent
	Number     string    `json:"number"`
	CustomerID uuid.UUID `json:"customer_id"`
}

// NewSalesOrderCreatedEvent creates a new SalesOrderCreatedEvent
func NewSalesOrderCreatedEvent(order *SalesOrder) *SalesOrderCreatedEvent {
	return &SalesOrderCreatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventSalesOrderCreated, "SalesOrder", order.ID),
		Number:          order.Number,
		CustomerID:      order.CustomerID,
	}
}

// SalesOrderRecalculatedEvent is raised after the denormalized totals
// of a sales order have been recomputed and persisted
type SalesOrderRecalculatedEvent struct {
	shared.BaseDomainEvent
	Number     string `json:"number"`
	Subtotal   string `json:"subtotal"`
	TaxAmount  string `json:"tax_amount"`
	GrandTotal string `json:"grand_total"`
}

// NewSalesOrderRecalculatedEvent creates a new SalesOrderRecalculatedEvent
func NewSalesOrderRecalculatedEvent(order *SalesOrder) *SalesOrderRecalculatedEvent {
	return &SalesOrderRecalculatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventSalesOrderRecalculated, "SalesOrder", order.ID),
		Number:          order.Number,
		Subtotal:        order.Subtotal.StringFixed(2),
		TaxAmount:       order.TaxAmount.StringFixed(2),
		GrandTotal:      order.GrandTotal.StringFixed(2),
	}
}

// SalesOrderDeletedEvent is raised after a sales order and its items
// have been removed
type SalesOrderDeletedEvent struct {
	shared.BaseDomainEvent
	Number string `json:"number"`
}

// NewSalesOrderDeletedEvent creates a new SalesOrderDeletedEvent
func NewSalesOrderDeletedEvent(order *SalesOrder) *SalesOrderDeletedEvent {
	return &SalesOrderDeletedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventSalesOrderDeleted, "SalesOrder", order.ID),
		Number:          order.Number,
	}
}
