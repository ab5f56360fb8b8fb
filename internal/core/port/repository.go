package port

import (
	"context"

	"github.com/google/uuid"
	"github.com/rwooga/paycore/internal/core/domain"
)

type (
	UpdateOrderFn   func(*domain.Order) error
	UpdatePaymentFn func(*domain.Payment) error
	UpdateReturnFn  func(*domain.Return) error
	UpdateRefundFn  func(*domain.Refund) error

	// UpdatePaymentOrderFn mutates a payment and its order inside one
	// transaction, both rows locked.
	UpdatePaymentOrderFn func(*domain.Payment, *domain.Order) error

	// UpdateRefundOrderFn mutates a refund and its order inside one
	// transaction, both rows locked.
	UpdateRefundOrderFn func(*domain.Refund, *domain.Order) error
)

//go:generate mockgen -source=repository.go -destination=mock/repository.go -package=mock
type Repository interface {
	// Order
	CreateOrder(ctx context.Context, order *domain.Order) (*domain.Order, error)
	ReadOrder(ctx context.Context, orderID uuid.UUID) (*domain.Order, error)
	ListOrdersByUser(ctx context.Context, userID uint64) ([]*domain.Order, error)
	ListOrders(ctx context.Context) ([]*domain.Order, error)
	UpdateOrder(ctx context.Context, orderID uuid.UUID, fn UpdateOrderFn) (*domain.Order, error)

	// Payment
	CreatePayment(ctx context.Context, payment *domain.Payment) (*domain.Payment, error)
	ReadPayment(ctx context.Context, transactionID string) (*domain.Payment, error)
	ReadPaymentByProviderRef(ctx context.Context, providerRef string) (*domain.Payment, error)
	ReadPaymentByIdempotencyKey(ctx context.Context, key string) (*domain.Payment, error)
	ListPaymentsByOrder(ctx context.Context, orderID uuid.UUID) ([]*domain.Payment, error)
	UpdatePayment(ctx context.Context, transactionID string, fn UpdatePaymentFn) (*domain.Payment, error)
	UpdatePaymentByOrder(ctx context.Context, transactionID string, fn UpdatePaymentOrderFn) (*domain.Payment, error)

	// Return
	CreateReturn(ctx context.Context, r *domain.Return) (*domain.Return, error)
	ReadReturn(ctx context.Context, returnID uuid.UUID) (*domain.Return, error)
	ListReturnsByOrder(ctx context.Context, orderID uuid.UUID) ([]*domain.Return, error)
	UpdateReturn(ctx context.Context, returnID uuid.UUID, fn UpdateReturnFn) (*domain.Return, error)

	// Refund
	CreateRefund(ctx context.Context, refund *domain.Refund) (*domain.Refund, error)
	ReadRefund(ctx context.Context, refundID uuid.UUID) (*domain.Refund, error)
	UpdateRefund(ctx context.Context, refundID uuid.UUID, fn UpdateRefundFn) (*domain.Refund, error)
	UpdateRefundByOrder(ctx context.Context, refundID uuid.UUID, fn UpdateRefundOrderFn) (*domain.Refund, error)
}
