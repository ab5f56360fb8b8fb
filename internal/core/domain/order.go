package domain

import (
	"time"

	"github.com/google/uuid"
)

type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "PENDING"
	OrderStatusPaid       OrderStatus = "PAID"
	OrderStatusProcessing OrderStatus = "PROCESSING"
	OrderStatusShipped    OrderStatus = "SHIPPED"
	OrderStatusDelivered  OrderStatus = "DELIVERED"
	OrderStatusCancelled  OrderStatus = "CANCELLED"
	OrderStatusRefunded   OrderStatus = "REFUNDED"
	OrderStatusRejected   OrderStatus = "REJECTED"
)

// MaxOrderLines bounds the number of items accepted on a single order.
const MaxOrderLines = 50

type OrderItem struct {
	ID               uuid.UUID
	OrderID          uuid.UUID
	ProductRef       string
	Quantity         int32
	QuantityReturned int32
	PriceAtPurchase  Money
	RefundedAmount   Money
}

func (i *OrderItem) Subtotal() (Money, error) {
	return i.PriceAtPurchase.MulInt(i.Quantity)
}

func (i *OrderItem) QuantityAvailableForReturn() int32 {
	return i.Quantity - i.QuantityReturned
}

type Order struct {
	ID              uuid.UUID
	OrderNumber     string
	UserID          uint64
	Items           []OrderItem
	TotalAmount     Money
	ShippingFee     Money
	DiscountAmount  Money
	TaxAmount       Money
	RefundedAmount  Money
	Status          OrderStatus
	ShippingAddress string
	ShippingPhone   string
	CreatedAt       time.Time
	UpdatedAt       time.Time
	PaidAt          *time.Time
	ShippedAt       *time.Time
	DeliveredAt     *time.Time
}

// FinalAmount is total_amount - refunded_amount; never negative while the
// ApplyRefund invariant holds.
func (o *Order) FinalAmount() (Money, error) {
	return o.TotalAmount.Sub(o.RefundedAmount)
}

// MarkPaid moves a PENDING order to PAID. Calling it on an order that is
// already PAID is a no-op, so a replayed settlement leaves paid_at untouched.
func (o *Order) MarkPaid(paidAt time.Time) error {
	if o.Status == OrderStatusPaid {
		return nil
	}
	if o.Status != OrderStatusPending {
		return ErrInvalidStateTransition
	}
	o.Status = OrderStatusPaid
	o.PaidAt = &paidAt
	return nil
}

func (o *Order) Cancel() error {
	if o.Status != OrderStatusPending {
		return ErrInvalidStateTransition
	}
	o.Status = OrderStatusCancelled
	return nil
}

func (o *Order) Ship(shippedAt time.Time) error {
	if o.Status != OrderStatusPaid && o.Status != OrderStatusProcessing {
		return ErrInvalidStateTransition
	}
	o.Status = OrderStatusShipped
	o.ShippedAt = &shippedAt
	return nil
}

func (o *Order) Deliver(deliveredAt time.Time) error {
	if o.Status != OrderStatusShipped {
		return ErrInvalidStateTransition
	}
	o.Status = OrderStatusDelivered
	o.DeliveredAt = &deliveredAt
	return nil
}

// ApplyRefund increments refunded_amount, keeping refunded_amount <= total_amount.
// Once the full total is refunded the order flips to REFUNDED. This is the only
// mutation path for refunded_amount; the refund workflow reaches it through a
// row-locked repository update.
func (o *Order) ApplyRefund(amount Money) error {
	if !amount.IsPositive() {
		return ErrInvalidAmount
	}
	refunded, err := o.RefundedAmount.Add(amount)
	if err != nil {
		return err
	}
	cmp, err := refunded.Cmp(o.TotalAmount)
	if err != nil {
		return err
	}
	if cmp > 0 {
		return ErrRefundExceedsOrderTotal
	}
	o.RefundedAmount = refunded
	if cmp == 0 {
		o.Status = OrderStatusRefunded
	}
	return nil
}

// CanBeReturned reports whether the order is DELIVERED and still inside the
// return window.
func (o *Order) CanBeReturned(now time.Time, window time.Duration) bool {
	if o.Status != OrderStatusDelivered || o.DeliveredAt == nil {
		return false
	}
	return now.Sub(*o.DeliveredAt) <= window
}
