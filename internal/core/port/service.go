package port

import (
	"context"

	"github.com/google/uuid"
	"github.com/govalues/decimal"
	"github.com/rwooga/paycore/internal/core/domain"
)

type CreateOrderItemInput struct {
	ProductRef string
	Quantity   int32
}

type CreateOrderInput struct {
	Items           []CreateOrderItemInput
	ShippingAddress string
	ShippingPhone   string
	ShippingFee     decimal.Decimal
	TaxAmount       decimal.Decimal
	DiscountCode    string
}

type InitiatePaymentInput struct {
	OrderID    uuid.UUID
	Method     domain.PaymentMethod
	Phone      string
	CardNumber string
	CardType   string
}

type RequestReturnInput struct {
	OrderID        uuid.UUID
	Reason         string
	DetailedReason string
	Amount         decimal.Decimal
}

type IssueRefundInput struct {
	OrderID uuid.UUID
	Amount  decimal.Decimal
	Reason  string
}

type OrderService interface {
	CreateOrder(ctx context.Context, actor domain.Actor, input CreateOrderInput) (*domain.Order, error)
	GetOrder(ctx context.Context, actor domain.Actor, orderID uuid.UUID) (*domain.Order, error)
	ListOrders(ctx context.Context, actor domain.Actor) ([]*domain.Order, error)
	CancelOrder(ctx context.Context, actor domain.Actor, orderID uuid.UUID) (*domain.Order, error)
	ShipOrder(ctx context.Context, actor domain.Actor, orderID uuid.UUID) (*domain.Order, error)
	DeliverOrder(ctx context.Context, actor domain.Actor, orderID uuid.UUID) (*domain.Order, error)
}

type PaymentService interface {
	InitiatePayment(ctx context.Context, actor domain.Actor, input InitiatePaymentInput) (*domain.Payment, error)
	GetPaymentStatus(ctx context.Context, actor domain.Actor, transactionID string) (*domain.Payment, error)
	CancelPayment(ctx context.Context, actor domain.Actor, transactionID string) (*domain.Payment, error)
	HandleWebhook(ctx context.Context, providerRef string, providerStatus string) (*domain.Payment, error)

	PaymentReconciler
}

type ReturnService interface {
	RequestReturn(ctx context.Context, actor domain.Actor, input RequestReturnInput) (*domain.Return, error)
	GetReturn(ctx context.Context, actor domain.Actor, returnID uuid.UUID) (*domain.Return, error)
	ApproveReturn(ctx context.Context, actor domain.Actor, returnID uuid.UUID, amount *decimal.Decimal) (*domain.Return, error)
	RejectReturn(ctx context.Context, actor domain.Actor, returnID uuid.UUID, reason string) (*domain.Return, error)
	CompleteReturn(ctx context.Context, actor domain.Actor, returnID uuid.UUID) (*domain.Return, error)

	IssueRefund(ctx context.Context, actor domain.Actor, input IssueRefundInput) (*domain.Refund, error)
	GetRefund(ctx context.Context, actor domain.Actor, refundID uuid.UUID) (*domain.Refund, error)
	CompleteRefund(ctx context.Context, actor domain.Actor, refundID uuid.UUID, providerTransactionID string) (*domain.Refund, error)
	FailRefund(ctx context.Context, actor domain.Actor, refundID uuid.UUID) (*domain.Refund, error)
}
