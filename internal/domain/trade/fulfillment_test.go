package trade

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestPurchaseOrder(t *testing.T) *PurchaseOrder {
	t.Helper()
	order, err := NewPurchaseOrder("PO-001", time.Now(), uuid.New())
	require.NoError(t, err)
	order.ClearDomainEvents()
	return order
}

func TestTransitionTo_Shipping(t *testing.T) {
	order := newTestPurchaseOrder(t)

	require.NoError(t, order.TransitionTo(FulfillmentShipping))

	assert.Equal(t, FulfillmentShipping, order.Status)
	assert.NotNil(t, order.ShippingDate)
	assert.Nil(t, order.CancelledDate)
}

func TestTransitionTo_ReceivedOnlyFromShipping(t *testing.T) {
	order := newTestPurchaseOrder(t)

	err := order.TransitionTo(FulfillmentReceived)

	var invalid *InvalidTransitionError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, FulfillmentPending, invalid.From)
	assert.Equal(t, FulfillmentReceived, invalid.To)
	assert.Equal(t, FulfillmentPending, order.Status, "failed transition must not mutate")
	assert.Nil(t, order.ReceivedDate)
}

func TestTransitionTo_FullLifecycle(t *testing.T) {
	order := newTestPurchaseOrder(t)

	require.NoError(t, order.TransitionTo(FulfillmentShipping))
	require.NoError(t, order.TransitionTo(FulfillmentReceived))
	assert.NotNil(t, order.ReceivedDate)

	require.NoError(t, order.TransitionTo(FulfillmentReturned))
	assert.Equal(t, FulfillmentReturned, order.Status)
	assert.NotNil(t, order.ReturnedDate)
	assert.NotNil(t, order.ReceivedDate, "return keeps the received date")
}

func TestTransitionTo_ReturnedOnlyFromReceived(t *testing.T) {
	order := newTestPurchaseOrder(t)
	require.NoError(t, order.TransitionTo(FulfillmentShipping))

	err := order.TransitionTo(FulfillmentReturned)

	var invalid *InvalidTransitionError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, FulfillmentShipping, order.Status)
	assert.Nil(t, order.ReturnedDate)
}

func TestTransitionTo_RevertReceiptToShipping(t *testing.T) {
	order := newTestPurchaseOrder(t)
	require.NoError(t, order.TransitionTo(FulfillmentShipping))
	shipped := order.ShippingDate
	require.NoError(t, order.TransitionTo(FulfillmentReceived))

	require.NoError(t, order.TransitionTo(FulfillmentShipping))

	assert.Equal(t, FulfillmentShipping, order.Status)
	assert.Nil(t, order.ReceivedDate, "reverted receipt clears the received date")
	assert.Equal(t, shipped, order.ShippingDate, "original shipping date stands")
}

func TestTransitionTo_RevertReturnToReceived(t *testing.T) {
	order := newTestPurchaseOrder(t)
	require.NoError(t, order.TransitionTo(FulfillmentShipping))
	require.NoError(t, order.TransitionTo(FulfillmentReceived))
	received := order.ReceivedDate
	require.NoError(t, order.TransitionTo(FulfillmentReturned))

	require.NoError(t, order.TransitionTo(FulfillmentReceived))

	assert.Equal(t, FulfillmentReceived, order.Status)
	assert.Nil(t, order.ReturnedDate, "reverted return clears the returned date")
	assert.Equal(t, received, order.ReceivedDate, "original received date stands")
}

func TestTransitionTo_Cancelled(t *testing.T) {
	order := newTestPurchaseOrder(t)
	require.NoError(t, order.TransitionTo(FulfillmentShipping))

	require.NoError(t, order.TransitionTo(FulfillmentCancelled))

	assert.Equal(t, FulfillmentCancelled, order.Status)
	assert.NotNil(t, order.CancelledDate)
	assert.Nil(t, order.ShippingDate, "cancellation clears the shipping date")
}

func TestTransitionTo_PendingClearsShipping(t *testing.T) {
	order := newTestPurchaseOrder(t)
	require.NoError(t, order.TransitionTo(FulfillmentShipping))

	require.NoError(t, order.TransitionTo(FulfillmentPending))

	assert.Equal(t, FulfillmentPending, order.Status)
	assert.Nil(t, order.ShippingDate)
	assert.Nil(t, order.CancelledDate)
}

func TestTransitionTo_ReinstateCancelled(t *testing.T) {
	order := newTestPurchaseOrder(t)
	require.NoError(t, order.TransitionTo(FulfillmentCancelled))

	require.NoError(t, order.TransitionTo(FulfillmentShipping))

	assert.Equal(t, FulfillmentShipping, order.Status)
	assert.Nil(t, order.CancelledDate, "reinstating clears the cancelled date")
	assert.NotNil(t, order.ShippingDate)
}

func TestTransitionTo_UnknownTarget(t *testing.T) {
	order := newTestPurchaseOrder(t)

	err := order.TransitionTo(FulfillmentStatus("BOGUS"))

	var invalid *InvalidTransitionError
	require.ErrorAs(t, err, &invalid)
}

func TestTransitionTo_EmitsStatusChangedEvent(t *testing.T) {
	order := newTestPurchaseOrder(t)

	require.NoError(t, order.TransitionTo(FulfillmentShipping))

	events := order.GetDomainEvents()
	require.Len(t, events, 1)
	assert.Equal(t, EventPurchaseOrderStatusChanged, events[0].EventType())
}

func TestTransitionTo_SameStatusEmitsNoEvent(t *testing.T) {
	order := newTestPurchaseOrder(t)
	require.NoError(t, order.TransitionTo(FulfillmentShipping))
	order.ClearDomainEvents()

	require.NoError(t, order.TransitionTo(FulfillmentShipping))

	assert.Empty(t, order.GetDomainEvents())
}
