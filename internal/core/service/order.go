package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/rwooga/paycore/internal/adapter/config"
	"github.com/rwooga/paycore/internal/core/domain"
	"github.com/rwooga/paycore/internal/core/port"
	"github.com/rwooga/paycore/internal/core/utils"
	"go.uber.org/zap"
)

// OrderService owns order totals and the order-level mutation points. Totals
// are computed and frozen at creation; later catalog changes never touch an
// existing order.
type OrderService struct {
	repo     port.Repository
	pricing  port.PricingService
	notifier port.Notifier
	business *config.Business
	logger   *zap.Logger
}

func NewOrderService(repo port.Repository, pricing port.PricingService,
	notifier port.Notifier, business *config.Business, logger *zap.Logger) (*OrderService, error) {
	return &OrderService{
		repo:     repo,
		pricing:  pricing,
		notifier: notifier,
		business: business,
		logger:   logger,
	}, nil
}

func (s *OrderService) CreateOrder(ctx context.Context, actor domain.Actor,
	input port.CreateOrderInput) (*domain.Order, error) {
	if len(input.Items) == 0 || len(input.Items) > domain.MaxOrderLines {
		return nil, domain.ErrInvalidOrderRequest
	}

	currency := s.business.Currency
	now := time.Now()

	orderID := uuid.New()
	subtotal := domain.ZeroMoney(currency)
	items := make([]domain.OrderItem, 0, len(input.Items))
	for _, line := range input.Items {
		if line.Quantity <= 0 {
			return nil, domain.ErrInvalidOrderRequest
		}
		quote, err := s.pricing.Quote(ctx, line.ProductRef, line.Quantity)
		if err != nil {
			if errors.Is(err, domain.ErrDataNotFound) {
				return nil, domain.ErrInvalidOrderRequest
			}
			s.logger.Error("Quote item", zap.String("product", line.ProductRef), zap.Error(err))
			return nil, domain.ErrInternal
		}

		item := domain.OrderItem{
			ID:              uuid.New(),
			OrderID:         orderID,
			ProductRef:      line.ProductRef,
			Quantity:        line.Quantity,
			PriceAtPurchase: quote.UnitPrice,
			RefundedAmount:  domain.ZeroMoney(currency),
		}
		lineTotal, err := item.Subtotal()
		if err != nil {
			return nil, domain.ErrInternal
		}
		subtotal, err = subtotal.Add(lineTotal)
		if err != nil {
			return nil, domain.ErrInternal
		}
		items = append(items, item)
	}

	discountAmount := domain.ZeroMoney(currency)
	if input.DiscountCode != "" {
		discount, err := s.pricing.ResolveDiscountCode(ctx, input.DiscountCode)
		if err != nil {
			if errors.Is(err, domain.ErrDataNotFound) {
				return nil, domain.ErrInvalidDiscountCode
			}
			s.logger.Error("Resolve discount code", zap.String("code", input.DiscountCode), zap.Error(err))
			return nil, domain.ErrInternal
		}
		if !discount.IsValid(now) {
			return nil, domain.ErrInvalidDiscountCode
		}
		discountAmount, err = discount.AmountFor(subtotal)
		if err != nil {
			return nil, domain.ErrInternal
		}
	}

	shippingFee := domain.NewMoney(input.ShippingFee, currency)
	taxAmount := domain.NewMoney(input.TaxAmount, currency)
	if shippingFee.IsNegative() || taxAmount.IsNegative() {
		return nil, domain.ErrInvalidOrderRequest
	}

	total, err := subtotal.Add(shippingFee)
	if err == nil {
		total, err = total.Add(taxAmount)
	}
	if err == nil {
		total, err = total.Sub(discountAmount)
	}
	if err != nil {
		return nil, domain.ErrInternal
	}
	if total.IsNegative() {
		return nil, domain.ErrInvalidOrderRequest
	}

	order := &domain.Order{
		ID:              orderID,
		OrderNumber:     utils.NewReferenceNumber(utils.OrderPrefix, now),
		UserID:          actor.UserID,
		Items:           items,
		TotalAmount:     total,
		ShippingFee:     shippingFee,
		DiscountAmount:  discountAmount,
		TaxAmount:       taxAmount,
		RefundedAmount:  domain.ZeroMoney(currency),
		Status:          domain.OrderStatusPending,
		ShippingAddress: input.ShippingAddress,
		ShippingPhone:   input.ShippingPhone,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	created, err := s.repo.CreateOrder(ctx, order)
	if err != nil {
		s.logger.Error("Create order", zap.Error(err))
		return nil, err
	}

	s.notifier.Notify(ctx, port.EventOrderCreated, created.OrderNumber)

	return created, nil
}

func (s *OrderService) GetOrder(ctx context.Context, actor domain.Actor,
	orderID uuid.UUID) (*domain.Order, error) {
	order, err := s.repo.ReadOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if canActOnOrder(actor, order) == accessDenied {
		return nil, domain.ErrForbidden
	}
	return order, nil
}

func (s *OrderService) ListOrders(ctx context.Context, actor domain.Actor) ([]*domain.Order, error) {
	if actor.IsAdmin() {
		return s.repo.ListOrders(ctx)
	}
	return s.repo.ListOrdersByUser(ctx, actor.UserID)
}

func (s *OrderService) CancelOrder(ctx context.Context, actor domain.Actor,
	orderID uuid.UUID) (*domain.Order, error) {
	order, err := s.repo.ReadOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if canActOnOrder(actor, order) == accessDenied {
		return nil, domain.ErrForbidden
	}

	return s.repo.UpdateOrder(ctx, orderID, func(o *domain.Order) error {
		return o.Cancel()
	})
}

func (s *OrderService) ShipOrder(ctx context.Context, actor domain.Actor,
	orderID uuid.UUID) (*domain.Order, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}
	return s.repo.UpdateOrder(ctx, orderID, func(o *domain.Order) error {
		return o.Ship(time.Now())
	})
}

func (s *OrderService) DeliverOrder(ctx context.Context, actor domain.Actor,
	orderID uuid.UUID) (*domain.Order, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}
	return s.repo.UpdateOrder(ctx, orderID, func(o *domain.Order) error {
		return o.Deliver(time.Now())
	})
}
