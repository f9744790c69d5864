package handlers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"namestrings/internal/models"
)

func strPtr(s string) *string { return &s }

func TestBuildOrderUpdateRequiresAtLeastOneField(t *testing.T) {
	_, _, err := buildOrderUpdate(OrderUpdateRequest{}, time.Now())
	require.Error(t, err)
	assert.Equal(t, "no update fields provided", err.Error())
}

func TestBuildOrderUpdateRejectsUnknownStatuses(t *testing.T) {
	_, _, err := buildOrderUpdate(OrderUpdateRequest{OrderStatus: strPtr("teleported")}, time.Now())
	require.Error(t, err)
	assert.Equal(t, "invalid order_status value", err.Error())

	_, _, err = buildOrderUpdate(OrderUpdateRequest{PaymentStatus: strPtr("maybe")}, time.Now())
	require.Error(t, err)
	assert.Equal(t, "invalid payment_status value", err.Error())
}

func TestBuildOrderUpdateDetectsShippedTransition(t *testing.T) {
	now := time.Now()

	update, shipped, err := buildOrderUpdate(OrderUpdateRequest{
		OrderStatus:    strPtr(models.OrderStatusShipped),
		TrackingNumber: strPtr(" TRK-42 "),
	}, now)
	require.NoError(t, err)

	assert.True(t, shipped)
	assert.Equal(t, models.OrderStatusShipped, update["order_status"])
	assert.Equal(t, "TRK-42", update["tracking_number"])
	assert.Equal(t, now, update["updated_at"])

	_, shipped, err = buildOrderUpdate(OrderUpdateRequest{
		OrderStatus: strPtr(models.OrderStatusDelivered),
	}, now)
	require.NoError(t, err)
	assert.False(t, shipped, "only the move to shipped triggers the notification")
}

func TestBuildOrderUpdateOnlyTouchesProvidedFields(t *testing.T) {
	update, _, err := buildOrderUpdate(OrderUpdateRequest{
		AdminNotes: strPtr("engraving double-checked"),
	}, time.Now())
	require.NoError(t, err)

	assert.Equal(t, "engraving double-checked", update["admin_notes"])
	assert.NotContains(t, update, "order_status")
	assert.NotContains(t, update, "payment_status")
	assert.NotContains(t, update, "tracking_number")
}

func TestStatusValidators(t *testing.T) {
	for _, status := range []string{
		models.OrderStatusPending, models.OrderStatusConfirmed, models.OrderStatusProcessing,
		models.OrderStatusShipped, models.OrderStatusDelivered, models.OrderStatusCancelled,
	} {
		assert.True(t, models.IsValidOrderStatus(status), status)
	}
	assert.False(t, models.IsValidOrderStatus(""))
	assert.False(t, models.IsValidOrderStatus("Shipped"), "statuses are case sensitive")

	for _, status := range []string{
		models.PaymentStatusPending, models.PaymentStatusPendingVerification,
		models.PaymentStatusPaid, models.PaymentStatusRejected, models.PaymentStatusRefunded,
	} {
		assert.True(t, models.IsValidPaymentStatus(status), status)
	}
	assert.False(t, models.IsValidPaymentStatus("failed"))
}
