package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/govalues/decimal"
	"github.com/rwooga/paycore/internal/adapter/config"
	"github.com/rwooga/paycore/internal/core/domain"
	"github.com/rwooga/paycore/internal/core/port"
	"github.com/rwooga/paycore/internal/core/utils"
	"go.uber.org/zap"
)

// ReturnService gates return eligibility and owns the refund lifecycle.
// Completing a refund is the only path that touches Order.refunded_amount,
// and it does so inside one repository transaction with the order row locked.
type ReturnService struct {
	repo     port.Repository
	notifier port.Notifier
	business *config.Business
	logger   *zap.Logger
}

func NewReturnService(repo port.Repository, notifier port.Notifier,
	business *config.Business, logger *zap.Logger) (*ReturnService, error) {
	return &ReturnService{
		repo:     repo,
		notifier: notifier,
		business: business,
		logger:   logger,
	}, nil
}

func (s *ReturnService) RequestReturn(ctx context.Context, actor domain.Actor,
	input port.RequestReturnInput) (*domain.Return, error) {
	amount := domain.NewMoney(input.Amount, s.business.Currency)
	if !amount.IsPositive() {
		return nil, domain.ErrInvalidAmount
	}

	order, err := s.repo.ReadOrder(ctx, input.OrderID)
	if err != nil {
		return nil, err
	}
	if canActOnOrder(actor, order) == accessDenied {
		return nil, domain.ErrNotOwner
	}
	if !order.CanBeReturned(time.Now(), s.business.ReturnWindow()) {
		return nil, domain.ErrReturnWindowClosed
	}

	existing, err := s.repo.ListReturnsByOrder(ctx, order.ID)
	if err != nil {
		s.logger.Error("List returns for order", zap.Error(err))
		return nil, domain.ErrInternal
	}
	for _, r := range existing {
		if r.Status.IsActive() {
			return nil, domain.ErrDuplicateActiveReturn
		}
	}

	now := time.Now()
	ret := &domain.Return{
		ID:                    uuid.New(),
		ReturnNumber:          utils.NewReferenceNumber(utils.ReturnPrefix, now),
		OrderID:               order.ID,
		UserID:                actor.UserID,
		Reason:                input.Reason,
		DetailedReason:        input.DetailedReason,
		Status:                domain.ReturnStatusRequested,
		RequestedRefundAmount: amount,
		CreatedAt:             now,
		UpdatedAt:             now,
	}

	created, err := s.repo.CreateReturn(ctx, ret)
	if err != nil {
		s.logger.Error("Create return", zap.Error(err))
		return nil, err
	}

	s.notifier.Notify(ctx, port.EventReturnRequested, created.ReturnNumber)

	return created, nil
}

func (s *ReturnService) GetReturn(ctx context.Context, actor domain.Actor,
	returnID uuid.UUID) (*domain.Return, error) {
	ret, err := s.repo.ReadReturn(ctx, returnID)
	if err != nil {
		return nil, err
	}
	if !actor.IsAdmin() && ret.UserID != actor.UserID {
		return nil, domain.ErrForbidden
	}
	return ret, nil
}

func (s *ReturnService) ApproveReturn(ctx context.Context, actor domain.Actor,
	returnID uuid.UUID, amount *decimal.Decimal) (*domain.Return, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}

	updated, err := s.repo.UpdateReturn(ctx, returnID, func(r *domain.Return) error {
		approved := r.RequestedRefundAmount
		if amount != nil {
			approved = domain.NewMoney(*amount, r.RequestedRefundAmount.Currency)
			if !approved.IsPositive() {
				return domain.ErrInvalidAmount
			}
		}
		return r.Approve(approved, time.Now())
	})
	if err != nil {
		return nil, err
	}

	s.notifier.Notify(ctx, port.EventReturnApproved, updated.ReturnNumber)

	return updated, nil
}

func (s *ReturnService) RejectReturn(ctx context.Context, actor domain.Actor,
	returnID uuid.UUID, reason string) (*domain.Return, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}

	updated, err := s.repo.UpdateReturn(ctx, returnID, func(r *domain.Return) error {
		return r.Reject(reason)
	})
	if err != nil {
		return nil, err
	}

	s.notifier.Notify(ctx, port.EventReturnRejected, updated.ReturnNumber)

	return updated, nil
}

func (s *ReturnService) CompleteReturn(ctx context.Context, actor domain.Actor,
	returnID uuid.UUID) (*domain.Return, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}

	return s.repo.UpdateReturn(ctx, returnID, func(r *domain.Return) error {
		return r.Complete()
	})
}

func (s *ReturnService) IssueRefund(ctx context.Context, actor domain.Actor,
	input port.IssueRefundInput) (*domain.Refund, error) {
	amount := domain.NewMoney(input.Amount, s.business.Currency)
	if !amount.IsPositive() {
		return nil, domain.ErrInvalidAmount
	}

	order, err := s.repo.ReadOrder(ctx, input.OrderID)
	if err != nil {
		return nil, err
	}
	if canActOnOrder(actor, order) == accessDenied {
		return nil, domain.ErrNotOwner
	}

	now := time.Now()
	refund := &domain.Refund{
		ID:           uuid.New(),
		RefundNumber: utils.NewReferenceNumber(utils.RefundPrefix, now),
		OrderID:      order.ID,
		UserID:       order.UserID,
		Amount:       amount,
		Status:       domain.RefundStatusPending,
		Reason:       input.Reason,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.repo.CreateRefund(ctx, refund)
	if err != nil {
		s.logger.Error("Create refund", zap.Error(err))
		return nil, err
	}

	return created, nil
}

func (s *ReturnService) GetRefund(ctx context.Context, actor domain.Actor,
	refundID uuid.UUID) (*domain.Refund, error) {
	refund, err := s.repo.ReadRefund(ctx, refundID)
	if err != nil {
		return nil, err
	}
	if !actor.IsAdmin() && refund.UserID != actor.UserID {
		return nil, domain.ErrForbidden
	}
	return refund, nil
}

// CompleteRefund transitions the refund and applies the amount to the order
// in a single transaction, so the refunded_amount <= total_amount check is
// made exactly once per completed refund, against a locked order row.
func (s *ReturnService) CompleteRefund(ctx context.Context, actor domain.Actor,
	refundID uuid.UUID, providerTransactionID string) (*domain.Refund, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}

	updated, err := s.repo.UpdateRefundByOrder(ctx, refundID,
		func(r *domain.Refund, o *domain.Order) error {
			if err := r.Complete(providerTransactionID, time.Now()); err != nil {
				return err
			}
			return o.ApplyRefund(r.Amount)
		})
	if err != nil {
		return nil, err
	}

	s.notifier.Notify(ctx, port.EventRefundCompleted, updated.RefundNumber)

	return updated, nil
}

func (s *ReturnService) FailRefund(ctx context.Context, actor domain.Actor,
	refundID uuid.UUID) (*domain.Refund, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}

	return s.repo.UpdateRefund(ctx, refundID, func(r *domain.Refund) error {
		return r.Fail()
	})
}
