package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/govalues/decimal"
	"github.com/rwooga/paycore/internal/adapter/config"
	"github.com/rwooga/paycore/internal/core/domain"
	"github.com/rwooga/paycore/internal/core/port"
	"go.uber.org/zap"
)

const (
	providerPaypack   = "paypack"
	providerSimulated = "simulated"
)

// providerStatusMap is the only place provider vocabulary is translated into
// local payment states. Unknown provider statuses are a reconcile no-op.
var providerStatusMap = map[string]domain.PaymentStatus{
	"completed":  domain.PaymentStatusSuccessful,
	"successful": domain.PaymentStatusSuccessful,
	"failed":     domain.PaymentStatusFailed,
	"pending":    domain.PaymentStatusProcessing,
	"processing": domain.PaymentStatusProcessing,
}

// simulatedCardFailureAmount makes card simulation deterministic in tests and
// demos: this exact amount fails, everything else settles.
var simulatedCardFailureAmount = decimal.MustParse("12345")

// PaymentService owns every payment transition and is the single place where
// "did this order get paid" is decided. Webhooks, client polling and the
// queued card simulation all converge on reconcile.
type PaymentService struct {
	repo      port.Repository
	gateway   port.PaymentGateway
	scheduler port.ReconcileScheduler
	notifier  port.Notifier
	business  *config.Business
	logger    *zap.Logger
}

func NewPaymentService(repo port.Repository, gateway port.PaymentGateway,
	scheduler port.ReconcileScheduler, notifier port.Notifier,
	business *config.Business, logger *zap.Logger) (*PaymentService, error) {
	return &PaymentService{
		repo:      repo,
		gateway:   gateway,
		scheduler: scheduler,
		notifier:  notifier,
		business:  business,
		logger:    logger,
	}, nil
}

func (s *PaymentService) InitiatePayment(ctx context.Context, actor domain.Actor,
	input port.InitiatePaymentInput) (*domain.Payment, error) {
	order, err := s.repo.ReadOrder(ctx, input.OrderID)
	if err != nil {
		return nil, err
	}
	if canActOnOrder(actor, order) == accessDenied {
		return nil, domain.ErrForbidden
	}
	if order.Status != domain.OrderStatusPending {
		return nil, domain.ErrOrderNotPayable
	}

	existing, err := s.repo.ListPaymentsByOrder(ctx, order.ID)
	if err != nil {
		s.logger.Error("List payments for order", zap.Error(err))
		return nil, domain.ErrInternal
	}
	now := time.Now()
	for _, p := range existing {
		if p.Status == domain.PaymentStatusSuccessful {
			return nil, domain.ErrAlreadyPaid
		}
		if (p.Status == domain.PaymentStatusPending || p.Status == domain.PaymentStatusProcessing) &&
			now.Sub(p.CreatedAt) < s.business.DuplicateInitWindow() {
			return nil, domain.ErrDuplicatePendingPayment
		}
	}

	payment := &domain.Payment{
		ID:             uuid.New(),
		TransactionID:  uuid.NewString(),
		OrderID:        order.ID,
		UserID:         order.UserID,
		Amount:         order.TotalAmount,
		Method:         input.Method,
		Status:         domain.PaymentStatusPending,
		IdempotencyKey: fmt.Sprintf("%s-%d", order.ID, now.Unix()),
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	switch input.Method {
	case domain.PaymentMethodMomo:
		if input.Phone == "" {
			return nil, domain.ErrBadRequest
		}
		payment.Provider = providerPaypack
		payment.PhoneNumber = input.Phone
		payment.ExpiresAt = now.Add(s.business.MomoExpiry())
	case domain.PaymentMethodCard:
		if len(input.CardNumber) < 4 {
			return nil, domain.ErrBadRequest
		}
		payment.Provider = providerSimulated
		payment.CardNumberMasked = "**** **** **** " + input.CardNumber[len(input.CardNumber)-4:]
		payment.CardType = input.CardType
		payment.ExpiresAt = now.Add(s.business.CardExpiry())
	default:
		return nil, domain.ErrBadRequest
	}

	created, err := s.repo.CreatePayment(ctx, payment)
	if err != nil {
		if errors.Is(err, domain.ErrConflictingData) {
			// A concurrent initiation carrying the same idempotency key won
			// the insert; hand its payment back instead of creating a second row.
			return s.repo.ReadPaymentByIdempotencyKey(ctx, payment.IdempotencyKey)
		}
		s.logger.Error("Create payment", zap.Error(err))
		return nil, err
	}

	switch input.Method {
	case domain.PaymentMethodMomo:
		return s.initiateMomo(ctx, created)
	default:
		// Card settlement is simulated until a card provider is wired: queue a
		// deferred check through the same reconcile path real webhooks use.
		s.scheduler.SchedulePaymentCheck(created.TransactionID, s.business.CardSettlementDelay())
		return created, nil
	}
}

func (s *PaymentService) initiateMomo(ctx context.Context, payment *domain.Payment) (*domain.Payment, error) {
	result := s.gateway.InitiateTransfer(ctx, payment.Amount, payment.PhoneNumber)
	if !result.OK {
		s.logger.Error("Payment initiation failed",
			zap.String("transaction", payment.TransactionID),
			zap.String("reason", result.Error))
		failed, err := s.repo.UpdatePayment(ctx, payment.TransactionID, func(p *domain.Payment) error {
			if err := p.Transition(domain.PaymentStatusFailed, time.Now()); err != nil {
				return err
			}
			p.FailureReason = result.Error
			return nil
		})
		if err != nil {
			return nil, err
		}
		s.notifier.Notify(ctx, port.EventPaymentFailed, failed.TransactionID)
		return failed, domain.ErrPaymentInitiationFailed
	}

	status, known := providerStatusMap[strings.ToLower(result.ProviderStatus)]
	if !known {
		status = domain.PaymentStatusProcessing
	}
	return s.repo.UpdatePayment(ctx, payment.TransactionID, func(p *domain.Payment) error {
		p.ProviderReference = result.ProviderRef
		return p.Transition(status, time.Now())
	})
}

// reconcile maps a provider-reported status onto the local machine and, on
// settlement, marks the owning order paid in the same transaction. Replaying
// the current terminal status is a no-op; a different terminal status against
// an already-terminal payment is rejected with ErrInvalidStateTransition.
func (s *PaymentService) reconcile(ctx context.Context, transactionID string,
	providerStatus string) (*domain.Payment, error) {
	local, known := providerStatusMap[strings.ToLower(providerStatus)]
	if !known {
		s.logger.Warn("Unknown provider status, skipping",
			zap.String("transaction", transactionID),
			zap.String("provider_status", providerStatus))
		return s.repo.ReadPayment(ctx, transactionID)
	}

	var settled, failed bool
	updated, err := s.repo.UpdatePaymentByOrder(ctx, transactionID,
		func(p *domain.Payment, o *domain.Order) error {
			if p.Status == local {
				return nil
			}
			now := time.Now()
			if err := p.Transition(local, now); err != nil {
				return err
			}
			switch local {
			case domain.PaymentStatusSuccessful:
				settled = true
				return o.MarkPaid(now)
			case domain.PaymentStatusFailed:
				failed = true
				if p.FailureReason == "" {
					p.FailureReason = "provider reported failure"
				}
			}
			return nil
		})
	if err != nil {
		if errors.Is(err, domain.ErrInvalidStateTransition) {
			s.logger.Warn("Conflicting terminal status from provider",
				zap.String("transaction", transactionID),
				zap.String("provider_status", providerStatus))
		}
		return nil, err
	}

	if settled {
		s.notifier.Notify(ctx, port.EventPaymentSucceeded, updated.TransactionID)
	} else if failed {
		s.notifier.Notify(ctx, port.EventPaymentFailed, updated.TransactionID)
	}

	return updated, nil
}

// checkExpiry lazily times out a payment past its deadline. Invoked on every
// read path instead of by a background sweeper.
func (s *PaymentService) checkExpiry(ctx context.Context, payment *domain.Payment) (*domain.Payment, error) {
	if payment.Status.IsTerminal() || !time.Now().After(payment.ExpiresAt) {
		return payment, nil
	}
	return s.repo.UpdatePayment(ctx, payment.TransactionID, func(p *domain.Payment) error {
		p.Expire(time.Now())
		return nil
	})
}

func (s *PaymentService) GetPaymentStatus(ctx context.Context, actor domain.Actor,
	transactionID string) (*domain.Payment, error) {
	payment, err := s.repo.ReadPayment(ctx, transactionID)
	if err != nil {
		return nil, err
	}
	if !actor.IsAdmin() && payment.UserID != actor.UserID {
		return nil, domain.ErrForbidden
	}

	payment, err = s.checkExpiry(ctx, payment)
	if err != nil {
		return nil, err
	}
	if payment.Status.IsTerminal() || payment.ProviderReference == "" {
		return payment, nil
	}

	providerStatus, err := s.gateway.QueryStatus(ctx, payment.ProviderReference)
	if err != nil {
		// Provider flakiness must not break a status read.
		s.logger.Error("Query provider status",
			zap.String("transaction", transactionID), zap.Error(err))
		return payment, nil
	}
	if providerStatus == "" {
		return payment, nil
	}

	reconciled, err := s.reconcile(ctx, transactionID, providerStatus)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidStateTransition) {
			return s.repo.ReadPayment(ctx, transactionID)
		}
		return nil, err
	}
	return reconciled, nil
}

func (s *PaymentService) CancelPayment(ctx context.Context, actor domain.Actor,
	transactionID string) (*domain.Payment, error) {
	payment, err := s.repo.ReadPayment(ctx, transactionID)
	if err != nil {
		return nil, err
	}
	if !actor.IsAdmin() && payment.UserID != actor.UserID {
		return nil, domain.ErrForbidden
	}

	// A payment past its deadline expires on this read like any other; the
	// cancel is then refused because EXPIRED is terminal.
	payment, err = s.checkExpiry(ctx, payment)
	if err != nil {
		return nil, err
	}
	if payment.Status.IsTerminal() {
		return nil, domain.ErrInvalidStateTransition
	}

	return s.repo.UpdatePayment(ctx, transactionID, func(p *domain.Payment) error {
		return p.Cancel()
	})
}

// HandleWebhook reconciles an asynchronous provider callback. Unknown
// references return domain.ErrDataNotFound so the HTTP layer can answer 404;
// recognized references are always acknowledged, even when reconciliation is
// a no-op or a logged anomaly.
func (s *PaymentService) HandleWebhook(ctx context.Context, providerRef string,
	providerStatus string) (*domain.Payment, error) {
	payment, err := s.repo.ReadPaymentByProviderRef(ctx, providerRef)
	if err != nil {
		return nil, err
	}
	return s.reconcile(ctx, payment.TransactionID, providerStatus)
}

// ReconcileByTransactionID is the queued-task entry point used by the
// reconcile scheduler.
func (s *PaymentService) ReconcileByTransactionID(ctx context.Context, transactionID string) error {
	payment, err := s.repo.ReadPayment(ctx, transactionID)
	if err != nil {
		return err
	}
	payment, err = s.checkExpiry(ctx, payment)
	if err != nil {
		return err
	}
	if payment.Status.IsTerminal() {
		return nil
	}

	var providerStatus string
	if payment.ProviderReference != "" {
		providerStatus, err = s.gateway.QueryStatus(ctx, payment.ProviderReference)
		if err != nil {
			return err
		}
		if providerStatus == "" {
			return nil
		}
	} else if payment.Provider == providerSimulated {
		providerStatus = "completed"
		if payment.Amount.Amount.Cmp(simulatedCardFailureAmount) == 0 {
			providerStatus = "failed"
		}
	} else {
		return nil
	}

	_, err = s.reconcile(ctx, transactionID, providerStatus)
	if errors.Is(err, domain.ErrInvalidStateTransition) {
		return nil
	}
	return err
}
