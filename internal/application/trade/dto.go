package trade

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/ims/backend/internal/domain/shared"
	"github.com/ims/backend/internal/domain/trade"
	"github.com/shopspring/decimal"
)

var validate = validator.New()

// validateRequest checks a request DTO against its validation tags.
// Malformed input is rejected here and never reaches the guard or
// recalculation layers.
func validateRequest(req any) error {
	if err := validate.Struct(req); err != nil {
		return shared.NewDomainErrorf("VALIDATION_ERROR", "Invalid request: %v", err)
	}
	return nil
}

// OrderItemInput describes one line item on order creation
type OrderItemInput struct {
	ProductID uuid.UUID       `json:"product_id" validate:"required"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Quantity  int64           `json:"quantity" validate:"gt=0"`
}

// CreateSalesOrderRequest is the request to create a sales order
type CreateSalesOrderRequest struct {
	CustomerID  uuid.UUID        `json:"customer_id" validate:"required"`
	OrderDate   time.Time        `json:"order_date" validate:"required"`
	TaxID       *uuid.UUID       `json:"tax_id,omitempty"`
	Description string           `json:"description,omitempty" validate:"max=500"`
	Items       []OrderItemInput `json:"items" validate:"dive"`
}

// UpdateSalesOrderRequest is the request to update a sales order header
type UpdateSalesOrderRequest struct {
	TaxID       *uuid.UUID `json:"tax_id,omitempty"`
	RemoveTax   bool       `json:"remove_tax,omitempty"`
	Description *string    `json:"description,omitempty" validate:"omitempty,max=500"`
}

// AddOrderItemRequest is the request to add a line item to an order
type AddOrderItemRequest struct {
	ProductID uuid.UUID       `json:"product_id" validate:"required"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Quantity  int64           `json:"quantity" validate:"gt=0"`
}

// UpdateOrderItemRequest is the request to change a line item
type UpdateOrderItemRequest struct {
	UnitPrice *decimal.Decimal `json:"unit_price,omitempty"`
	Quantity  *int64           `json:"quantity,omitempty" validate:"omitempty,gt=0"`
}

// CreatePurchaseOrderRequest is the request to create a purchase order
type CreatePurchaseOrderRequest struct {
	VendorID    uuid.UUID        `json:"vendor_id" validate:"required"`
	OrderDate   time.Time        `json:"order_date" validate:"required"`
	TaxID       *uuid.UUID       `json:"tax_id,omitempty"`
	Description string           `json:"description,omitempty" validate:"max=500"`
	Items       []OrderItemInput `json:"items" validate:"dive"`
}

// UpdatePurchaseOrderRequest is the request to update a purchase order header
type UpdatePurchaseOrderRequest struct {
	TaxID       *uuid.UUID `json:"tax_id,omitempty"`
	RemoveTax   bool       `json:"remove_tax,omitempty"`
	Description *string    `json:"description,omitempty" validate:"omitempty,max=500"`
}

// CreateDeliveryOrderRequest is the request to create a delivery order
type CreateDeliveryOrderRequest struct {
	SalesOrderID uuid.UUID  `json:"sales_order_id" validate:"required"`
	DeliveryDate time.Time  `json:"delivery_date" validate:"required"`
	WarehouseID  *uuid.UUID `json:"warehouse_id,omitempty"`
	Description  string     `json:"description,omitempty" validate:"max=500"`
}

// CreateSalesReturnRequest is the request to create a sales return
type CreateSalesReturnRequest struct {
	DeliveryOrderID uuid.UUID `json:"delivery_order_id" validate:"required"`
	ReturnDate      time.Time `json:"return_date" validate:"required"`
	Reason          string    `json:"reason,omitempty" validate:"max=500"`
}

// OrderItemResponse is the outward representation of a line item
type OrderItemResponse struct {
	ID        uuid.UUID       `json:"id"`
	ProductID uuid.UUID       `json:"product_id"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Quantity  int64           `json:"quantity"`
	Amount    decimal.Decimal `json:"amount"`
}

// SalesOrderResponse is the outward representation of a sales order
type SalesOrderResponse struct {
	ID          uuid.UUID               `json:"id"`
	Number      string                  `json:"number"`
	OrderDate   time.Time               `json:"order_date"`
	CustomerID  uuid.UUID               `json:"customer_id"`
	TaxID       *uuid.UUID              `json:"tax_id,omitempty"`
	Status      trade.SalesOrderStatus  `json:"status"`
	Description string                  `json:"description,omitempty"`
	Subtotal    decimal.Decimal         `json:"subtotal"`
	TaxAmount   decimal.Decimal         `json:"tax_amount"`
	GrandTotal  decimal.Decimal         `json:"grand_total"`
	Items       []OrderItemResponse     `json:"items,omitempty"`
	CreatedAt   time.Time               `json:"created_at"`
	UpdatedAt   time.Time               `json:"updated_at"`
}

// PurchaseOrderResponse is the outward representation of a purchase order
type PurchaseOrderResponse struct {
	ID            uuid.UUID               `json:"id"`
	Number        string                  `json:"number"`
	OrderDate     time.Time               `json:"order_date"`
	VendorID      uuid.UUID               `json:"vendor_id"`
	TaxID         *uuid.UUID              `json:"tax_id,omitempty"`
	Status        trade.FulfillmentStatus `json:"status"`
	Description   string                  `json:"description,omitempty"`
	Subtotal      decimal.Decimal         `json:"subtotal"`
	TaxAmount     decimal.Decimal         `json:"tax_amount"`
	GrandTotal    decimal.Decimal         `json:"grand_total"`
	ShippingDate  *time.Time              `json:"shipping_date,omitempty"`
	ReceivedDate  *time.Time              `json:"received_date,omitempty"`
	ReturnedDate  *time.Time              `json:"returned_date,omitempty"`
	CancelledDate *time.Time              `json:"cancelled_date,omitempty"`
	Items         []OrderItemResponse     `json:"items,omitempty"`
	CreatedAt     time.Time               `json:"created_at"`
	UpdatedAt     time.Time               `json:"updated_at"`
}

// DeliveryOrderResponse is the outward representation of a delivery order
type DeliveryOrderResponse struct {
	ID           uuid.UUID            `json:"id"`
	Number       string               `json:"number"`
	SalesOrderID uuid.UUID            `json:"sales_order_id"`
	WarehouseID  *uuid.UUID           `json:"warehouse_id,omitempty"`
	DeliveryDate time.Time            `json:"delivery_date"`
	Status       trade.DeliveryStatus `json:"status"`
	Description  string               `json:"description,omitempty"`
	CreatedAt    time.Time            `json:"created_at"`
	UpdatedAt    time.Time            `json:"updated_at"`
}

// SalesReturnResponse is the outward representation of a sales return
type SalesReturnResponse struct {
	ID              uuid.UUID               `json:"id"`
	Number          string                  `json:"number"`
	DeliveryOrderID uuid.UUID               `json:"delivery_order_id"`
	ReturnDate      time.Time               `json:"return_date"`
	Status          trade.SalesReturnStatus `json:"status"`
	Reason          string                  `json:"reason,omitempty"`
	CreatedAt       time.Time               `json:"created_at"`
	UpdatedAt       time.Time               `json:"updated_at"`
}

// ToSalesOrderResponse maps a sales order and its items to a response
func ToSalesOrderResponse(order *trade.SalesOrder, items []trade.SalesOrderItem) SalesOrderResponse {
	resp := SalesOrderResponse{
		ID:          order.ID,
		Number:      order.Number,
		OrderDate:   order.OrderDate,
		CustomerID:  order.CustomerID,
		TaxID:       order.TaxID,
		Status:      order.Status,
		Description: order.Description,
		Subtotal:    order.Subtotal,
		TaxAmount:   order.TaxAmount,
		GrandTotal:  order.GrandTotal,
		CreatedAt:   order.CreatedAt,
		UpdatedAt:   order.UpdatedAt,
	}
	for _, item := range items {
		resp.Items = append(resp.Items, OrderItemResponse{
			ID:        item.ID,
			ProductID: item.ProductID,
			UnitPrice: item.UnitPrice,
			Quantity:  item.Quantity,
			Amount:    item.Amount,
		})
	}
	return resp
}

// ToPurchaseOrderResponse maps a purchase order and its items to a response
func ToPurchaseOrderResponse(order *trade.PurchaseOrder, items []trade.PurchaseOrderItem) PurchaseOrderResponse {
	resp := PurchaseOrderResponse{
		ID:            order.ID,
		Number:        order.Number,
		OrderDate:     order.OrderDate,
		VendorID:      order.VendorID,
		TaxID:         order.TaxID,
		Status:        order.Status,
		Description:   order.Description,
		Subtotal:      order.Subtotal,
		TaxAmount:     order.TaxAmount,
		GrandTotal:    order.GrandTotal,
		ShippingDate:  order.ShippingDate,
		ReceivedDate:  order.ReceivedDate,
		ReturnedDate:  order.ReturnedDate,
		CancelledDate: order.CancelledDate,
		CreatedAt:     order.CreatedAt,
		UpdatedAt:     order.UpdatedAt,
	}
	for _, item := range items {
		resp.Items = append(resp.Items, OrderItemResponse{
			ID:        item.ID,
			ProductID: item.ProductID,
			UnitPrice: item.UnitPrice,
			Quantity:  item.Quantity,
			Amount:    item.Amount,
		})
	}
	return resp
}

// ToDeliveryOrderResponse maps a delivery order to a response
func ToDeliveryOrderResponse(order *trade.DeliveryOrder) DeliveryOrderResponse {
	return DeliveryOrderResponse{
		ID:           order.ID,
		Number:       order.Number,
		SalesOrderID: order.SalesOrderID,
		WarehouseID:  order.WarehouseID,
		DeliveryDate: order.DeliveryDate,
		Status:       order.Status,
		Description:  order.Description,
		CreatedAt:    order.CreatedAt,
		UpdatedAt:    order.UpdatedAt,
	}
}

// ToSalesReturnResponse maps a sales return to a response
func ToSalesReturnResponse(ret *trade.SalesReturn) SalesReturnResponse {
	return SalesReturnResponse{
		ID:              ret.ID,
		Number:          ret.Number,
		DeliveryOrderID: ret.DeliveryOrderID,
		ReturnDate:      ret.ReturnDate,
		Status:          ret.Status,
		Reason:          ret.Reason,
		CreatedAt:       ret.CreatedAt,
		UpdatedAt:       ret.UpdatedAt,
	}
}
