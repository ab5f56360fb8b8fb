package domain_test

import (
	"testing"
	"time"

	"github.com/rwooga/paycore/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestOrder(total string) *domain.Order {
	return &domain.Order{
		TotalAmount:    domain.MustMoney(total, "RWF"),
		RefundedAmount: domain.ZeroMoney("RWF"),
		Status:         domain.OrderStatusPending,
	}
}

func TestOrder_MarkPaid(t *testing.T) {
	now := time.Now()

	order := newTestOrder("10000")
	require.NoError(t, order.MarkPaid(now))
	assert.Equal(t, domain.OrderStatusPaid, order.Status)
	require.NotNil(t, order.PaidAt)
	firstPaidAt := *order.PaidAt

	// Replayed settlement leaves paid_at untouched.
	require.NoError(t, order.MarkPaid(now.Add(time.Hour)))
	assert.Equal(t, firstPaidAt, *order.PaidAt)

	cancelled := newTestOrder("10000")
	require.NoError(t, cancelled.Cancel())
	assert.ErrorIs(t, cancelled.MarkPaid(now), domain.ErrInvalidStateTransition)
}

func TestOrder_CancelOnlyPending(t *testing.T) {
	order := newTestOrder("10000")
	require.NoError(t, order.MarkPaid(time.Now()))
	assert.ErrorIs(t, order.Cancel(), domain.ErrInvalidStateTransition)
}

func TestOrder_ShipDeliver(t *testing.T) {
	now := time.Now()

	order := newTestOrder("10000")
	assert.ErrorIs(t, order.Ship(now), domain.ErrInvalidStateTransition)
	assert.ErrorIs(t, order.Deliver(now), domain.ErrInvalidStateTransition)

	require.NoError(t, order.MarkPaid(now))
	require.NoError(t, order.Ship(now))
	assert.Equal(t, domain.OrderStatusShipped, order.Status)

	require.NoError(t, order.Deliver(now))
	assert.Equal(t, domain.OrderStatusDelivered, order.Status)
}

func TestOrder_ApplyRefund(t *testing.T) {
	order := newTestOrder("10000")
	order.Status = domain.OrderStatusDelivered

	require.NoError(t, order.ApplyRefund(domain.MustMoney("7000", "RWF")))
	assert.Equal(t, "7000 RWF", order.RefundedAmount.String())
	assert.Equal(t, domain.OrderStatusDelivered, order.Status)

	// 7000 already refunded: 4000 more would exceed the 10000 total.
	err := order.ApplyRefund(domain.MustMoney("4000", "RWF"))
	assert.ErrorIs(t, err, domain.ErrRefundExceedsOrderTotal)
	assert.Equal(t, "7000 RWF", order.RefundedAmount.String())

	require.NoError(t, order.ApplyRefund(domain.MustMoney("3000", "RWF")))
	assert.Equal(t, domain.OrderStatusRefunded, order.Status)

	final, err := order.FinalAmount()
	require.NoError(t, err)
	assert.True(t, final.IsZero())
}

func TestOrder_ApplyRefundRejectsNonPositive(t *testing.T) {
	order := newTestOrder("10000")
	assert.ErrorIs(t, order.ApplyRefund(domain.ZeroMoney("RWF")), domain.ErrInvalidAmount)
	assert.ErrorIs(t, order.ApplyRefund(domain.MustMoney("-100", "RWF")), domain.ErrInvalidAmount)
}

func TestOrder_CanBeReturned(t *testing.T) {
	now := time.Now()
	window := 30 * 24 * time.Hour

	order := newTestOrder("10000")
	assert.False(t, order.CanBeReturned(now, window))

	deliveredAt := now.Add(-29 * 24 * time.Hour)
	order.Status = domain.OrderStatusDelivered
	order.DeliveredAt = &deliveredAt
	assert.True(t, order.CanBeReturned(now, window))

	late := now.Add(-31 * 24 * time.Hour)
	order.DeliveredAt = &late
	assert.False(t, order.CanBeReturned(now, window))
}

func TestOrderItem_Subtotal(t *testing.T) {
	item := domain.OrderItem{
		Quantity:        3,
		PriceAtPurchase: domain.MustMoney("2500", "RWF"),
	}
	subtotal, err := item.Subtotal()
	require.NoError(t, err)
	assert.Equal(t, "7500 RWF", subtotal.String())

	item.QuantityReturned = 1
	assert.Equal(t, int32(2), item.QuantityAvailableForReturn())
}
