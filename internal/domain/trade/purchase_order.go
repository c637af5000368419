package trade

import (
	"time"

	"github.com/google/uuid"
	"github.com/ims/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// PurchaseOrder represents a purchase order header.
//
// Status moves exclusively through TransitionTo (see fulfillment.go),
// which also maintains the milestone dates. Totals follow the same
// recalculation rules as sales orders.
type PurchaseOrder struct {
	shared.BaseAggregateRoot
	Number      string    `gorm:"size:50;not null;uniqueIndex"`
	OrderDate   time.Time `gorm:"type:date;not null"`
	VendorID    uuid.UUID `gorm:"type:uuid;not null;index"`
	TaxID       *uuid.UUID
	Status      FulfillmentStatus `gorm:"size:20;not null;default:'PENDING'"`
	Description string            `gorm:"size:500"`
	Subtotal    decimal.Decimal   `gorm:"type:decimal(20,2)"`
	TaxAmount   decimal.Decimal   `gorm:"type:decimal(20,2)"`
	GrandTotal  decimal.Decimal   `gorm:"type:decimal(20,2)"`

	// Milestone dates, stamped and cleared by the fulfillment transitions
	ShippingDate  *time.Time `gorm:"type:date"`
	ReceivedDate  *time.Time `gorm:"type:date"`
	ReturnedDate  *time.Time `gorm:"type:date"`
	CancelledDate *time.Time `gorm:"type:date"`
}

// NewPurchaseOrder creates a new purchase order header in PENDING status
func NewPurchaseOrder(number string, orderDate time.Time, vendorID uuid.UUID) (*PurchaseOrder, error) {
	if number == "" {
		return nil, shared.NewDomainError("INVALID_ORDER_NUMBER", "Order number cannot be empty")
	}
	if vendorID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_VENDOR", "Vendor ID cannot be empty")
	}

	order := &PurchaseOrder{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Number:            number,
		OrderDate:         orderDate,
		VendorID:          vendorID,
		Status:            FulfillmentPending,
		Subtotal:          decimal.Zero,
		TaxAmount:         decimal.Zero,
		GrandTotal:        decimal.Zero,
	}

	order.AddDomainEvent(NewPurchaseOrderCreatedEvent(order))

	return order, nil
}

// SetTax changes the tax reference.
// Returns true if the reference actually changed.
func (o *PurchaseOrder) SetTax(taxID *uuid.UUID) bool {
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
func (o *PurchaseOrder) SetDescription(description string) {
	o.Description = description
	o.Touch()
}

// ApplyTotals replaces the denormalized monetary aggregates.
// Only the recalculator calls this.
func (o *PurchaseOrder) ApplyTotals(totals OrderTotals) {
	o.Subtotal = totals.Subtotal
	o.TaxAmount = totals.TaxAmount
	o.GrandTotal = totals.GrandTotal
	o.Touch()
}

// Totals returns the current denormalized aggregates
func (o *PurchaseOrder) Totals() OrderTotals {
	return OrderTotals{
		Subtotal:   o.Subtotal,
		TaxAmount:  o.TaxAmount,
		GrandTotal: o.GrandTotal,
	}
}

// PurchaseOrderItem is a line item exclusively owned by one purchase order
type PurchaseOrderItem struct {
	shared.BaseEntity
	OrderID   uuid.UUID       `gorm:"type:uuid;not null;index"`
	ProductID uuid.UUID       `gorm:"type:uuid;not null"`
	UnitPrice decimal.Decimal `gorm:"type:decimal(20,2);not null"`
	Quantity  int64           `gorm:"not null"`
	Amount    decimal.Decimal `gorm:"type:decimal(20,2);not null"`
}

// NewPurchaseOrderItem creates a new purchase order line item
func NewPurchaseOrderItem(orderID, productID uuid.UUID, unitPrice decimal.Decimal, quantity int64) (*PurchaseOrderItem, error) {
	if orderID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_ORDER", "Order ID cannot be empty")
	}
	if productID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_PRODUCT", "Product ID cannot be empty")
	}
	if quantity <= 0 {
		return nil, shared.NewDomainError("INVALID_QUANTITY", "Quantity must be positive")
	}
	if unitPrice.IsNegative() {
		return nil, shared.NewDomainError("INVALID_PRICE", "Unit price cannot be negative")
	}

	return &PurchaseOrderItem{
		BaseEntity: shared.NewBaseEntity(),
		OrderID:    orderID,
		ProductID:  productID,
		UnitPrice:  unitPrice,
		Quantity:   quantity,
		Amount:     unitPrice.Mul(decimal.NewFromInt(quantity)),
	}, nil
}

// UpdateQuantity updates the quantity and recalculates the line amount
func (i *PurchaseOrderItem) UpdateQuantity(quantity int64) error {
	if quantity <= 0 {
		return shared.NewDomainError("INVALID_QUANTITY", "Quantity must be positive")
	}
	i.Quantity = quantity
	i.Amount = i.UnitPrice.Mul(decimal.NewFromInt(quantity))
	i.Touch()
	return nil
}

// UpdateUnitPrice updates the unit price and recalculates the line amount
func (i *PurchaseOrderItem) UpdateUnitPrice(unitPrice decimal.Decimal) error {
	if unitPrice.IsNegative() {
		return shared.NewDomainError("INVALID_PRICE", "Unit price cannot be negative")
	}
	i.UnitPrice = unitPrice
	i.Amount = unitPrice.Mul(decimal.NewFromInt(i.Quantity))
	i.Touch()
	return nil
}
