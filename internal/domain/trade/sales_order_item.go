package trade

import (
	"github.com/google/uuid"
	"github.com/ims/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// SalesOrderItem is a line item exclusively owned by one sales order.
// Amount is denormalized as UnitPrice * Quantity and kept in step by
// the item's own mutators.
type SalesOrderItem struct {
	shared.BaseEntity
	OrderID   uuid.UUID       `gorm:"type:uuid;not null;index"`
	ProductID uuid.UUID       `gorm:"type:uuid;not null"`
	UnitPrice decimal.Decimal `gorm:"type:decimal(20,2);not null"`
	Quantity  int64           `gorm:"not null"`
	Amount    decimal.Decimal `gorm:"type:decimal(20,2);not null"`
}

// NewSalesOrderItem creates a new sales order line item
func NewSalesOrderItem(orderID, productID uuid.UUID, unitPrice decimal.Decimal, quantity int64) (*SalesOrderItem, error) {
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

	return &SalesOrderItem{
		BaseEntity: shared.NewBaseEntity(),
		OrderID:    orderID,
		ProductID:  productID,
		UnitPrice:  unitPrice,
		Quantity:   quantity,
		Amount:     unitPrice.Mul(decimal.NewFromInt(quantity)),
	}, nil
}

// UpdateQuantity updates the quantity and recalculates the line amount
func (i *SalesOrderItem) UpdateQuantity(quantity int64) error {
	if quantity <= 0 {
		return shared.NewDomainError("INVALID_QUANTITY", "Quantity must be positive")
	}
	i.Quantity = quantity
	i.Amount = i.UnitPrice.Mul(decimal.NewFromInt(quantity))
	i.Touch()
	return nil
}

// UpdateUnitPrice updates the unit price and recalculates the line amount
func (i *SalesOrderItem) UpdateUnitPrice(unitPrice decimal.Decimal) error {
	if unitPrice.IsNegative() {
		return shared.NewDomainError("INVALID_PRICE", "Unit price cannot be negative")
	}
	i.UnitPrice = unitPrice
	i.Amount = unitPrice.Mul(decimal.NewFromInt(i.Quantity))
	i.Touch()
	return nil
}
