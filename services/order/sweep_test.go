package order

import (
	"context"
	"testing"

	"bakehouse/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedOrder(t *testing.T, orders *fakeOrderRepo, payments *fakePaymentRepo, id, date, orderStatus, paymentStatus string) {
	t.Helper()
	require.NoError(t, orders.Create(context.Background(), &models.Order{
		ID:            id,
		CustomerID:    "cust-1",
		ScheduledDate: date,
		Status:        orderStatus,
	}))
	require.NoError(t, payments.Create(context.Background(), &models.Payment{
		ID:      "pay-" + id,
		OrderID: id,
		Method:  "cash",
		Status:  paymentStatus,
	}))
}

func orderStatus(t *testing.T, orders *fakeOrderRepo, id string) string {
	t.Helper()
	ord, err := orders.GetByID(context.Background(), id)
	require.NoError(t, err)
	return ord.Status
}

func TestSweepCancelsUnpaidInsideCutoff(t *testing.T) {
	svc, orders, payments, notifier := newTestService(nil)

	// Today is 2025-01-01. Six days out is inside the cutoff, eight is not.
	seedOrder(t, orders, payments, "near", "2025-01-07", models.OrderStatusPending, models.PaymentStatusUnpaid)
	seedOrder(t, orders, payments, "far", "2025-01-09", models.OrderStatusPending, models.PaymentStatusUnpaid)

	cancelled, err := svc.SweepUnpaid(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, cancelled)

	assert.Equal(t, models.OrderStatusCancelled, orderStatus(t, orders, "near"))
	assert.Equal(t, models.OrderStatusPending, orderStatus(t, orders, "far"))
	assert.Len(t, notifier.operatorCalls, 1)
}

func TestSweepSkipsPaidAndNonPendingOrders(t *testing.T) {
	svc, orders, payments, _ := newTestService(nil)

	seedOrder(t, orders, payments, "paid", "2025-01-07", models.OrderStatusPending, models.PaymentStatusPaid)
	seedOrder(t, orders, payments, "approved", "2025-01-07", models.OrderStatusApproved, models.PaymentStatusUnpaid)

	cancelled, err := svc.SweepUnpaid(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, cancelled)

	assert.Equal(t, models.OrderStatusPending, orderStatus(t, orders, "paid"))
	assert.Equal(t, models.OrderStatusApproved, orderStatus(t, orders, "approved"))
}

func TestSweepIsIdempotent(t *testing.T) {
	svc, orders, payments, notifier := newTestService(nil)

	seedOrder(t, orders, payments, "near", "2025-01-07", models.OrderStatusPending, models.PaymentStatusUnpaid)
	seedOrder(t, orders, payments, "far", "2025-01-09", models.OrderStatusPending, models.PaymentStatusUnpaid)

	first, err := svc.SweepUnpaid(context.Background())
	require.NoError(t, err)
	second, err := svc.SweepUnpaid(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1, first)
	assert.Equal(t, 0, second)
	assert.Equal(t, models.OrderStatusCancelled, orderStatus(t, orders, "near"))
	assert.Equal(t, models.OrderStatusPending, orderStatus(t, orders, "far"))
	// Only the first pass notified the operator.
	assert.Len(t, notifier.operatorCalls, 1)
}
