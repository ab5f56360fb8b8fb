package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/rwooga/paycore/internal/core/domain"
	"github.com/rwooga/paycore/internal/core/port"
	"github.com/rwooga/paycore/internal/core/port/mock"
	"github.com/rwooga/paycore/internal/core/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type paymentMocks struct {
	repo      *mock.MockRepository
	gateway   *mock.MockPaymentGateway
	scheduler *mock.MockReconcileScheduler
	notifier  *mock.MockNotifier
}

func newPaymentService(t *testing.T, mockCtrl *gomock.Controller) (*service.PaymentService, paymentMocks) {
	t.Helper()

	logger, _ := zap.NewProduction()
	m := paymentMocks{
		repo:      mock.NewMockRepository(mockCtrl),
		gateway:   mock.NewMockPaymentGateway(mockCtrl),
		scheduler: mock.NewMockReconcileScheduler(mockCtrl),
		notifier:  mock.NewMockNotifier(mockCtrl),
	}
	s, err := service.NewPaymentService(m.repo, m.gateway, m.scheduler, m.notifier,
		testBusinessConfig(), logger)
	require.NoError(t, err)
	return s, m
}

func pendingOrder(userID uint64) *domain.Order {
	return &domain.Order{
		ID:             uuid.New(),
		UserID:         userID,
		TotalAmount:    domain.MustMoney("10000", "RWF"),
		RefundedAmount: domain.ZeroMoney("RWF"),
		Status:         domain.OrderStatusPending,
	}
}

// expectUpdatePayment replays the closure against the given payment and hands
// the mutated value back, the way the row-locked repository update does.
func expectUpdatePayment(repo *mock.MockRepository, p *domain.Payment) {
	repo.EXPECT().UpdatePayment(gomock.Any(), p.TransactionID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, fn port.UpdatePaymentFn) (*domain.Payment, error) {
			if err := fn(p); err != nil {
				return nil, err
			}
			return p, nil
		})
}

func expectUpdatePaymentByOrder(repo *mock.MockRepository, p *domain.Payment, o *domain.Order) {
	repo.EXPECT().UpdatePaymentByOrder(gomock.Any(), p.TransactionID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, fn port.UpdatePaymentOrderFn) (*domain.Payment, error) {
			if err := fn(p, o); err != nil {
				return nil, err
			}
			return p, nil
		})
}

func TestPaymentService_InitiateMomo(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	s, m := newPaymentService(t, mockCtrl)

	order := pendingOrder(customer.UserID)

	m.repo.EXPECT().ReadOrder(gomock.Any(), order.ID).Return(order, nil)
	m.repo.EXPECT().ListPaymentsByOrder(gomock.Any(), order.ID).Return(nil, nil)

	var created *domain.Payment
	m.repo.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, p *domain.Payment) (*domain.Payment, error) {
			created = p
			return p, nil
		})
	m.gateway.EXPECT().InitiateTransfer(gomock.Any(), order.TotalAmount, "0781234567").
		Return(port.TransferResult{OK: true, ProviderRef: "pp-ref-1", ProviderStatus: "pending"})
	m.repo.EXPECT().UpdatePayment(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, fn port.UpdatePaymentFn) (*domain.Payment, error) {
			if err := fn(created); err != nil {
				return nil, err
			}
			return created, nil
		})

	payment, err := s.InitiatePayment(context.Background(), customer, port.InitiatePaymentInput{
		OrderID: order.ID,
		Method:  domain.PaymentMethodMomo,
		Phone:   "0781234567",
	})
	require.NoError(t, err)
	assert.Equal(t, domain.PaymentStatusProcessing, payment.Status)
	assert.Equal(t, "pp-ref-1", payment.ProviderReference)
	assert.Equal(t, order.TotalAmount, payment.Amount)
	assert.NotEmpty(t, payment.IdempotencyKey)
}

func TestPaymentService_InitiateMomoProviderRefusal(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	s, m := newPaymentService(t, mockCtrl)

	order := pendingOrder(customer.UserID)

	m.repo.EXPECT().ReadOrder(gomock.Any(), order.ID).Return(order, nil)
	m.repo.EXPECT().ListPaymentsByOrder(gomock.Any(), order.ID).Return(nil, nil)

	var created *domain.Payment
	m.repo.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, p *domain.Payment) (*domain.Payment, error) {
			created = p
			return p, nil
		})
	m.gateway.EXPECT().InitiateTransfer(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(port.TransferResult{OK: false, Error: "insufficient funds"})
	m.repo.EXPECT().UpdatePayment(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, fn port.UpdatePaymentFn) (*domain.Payment, error) {
			if err := fn(created); err != nil {
				return nil, err
			}
			return created, nil
		})
	m.notifier.EXPECT().Notify(gomock.Any(), port.EventPaymentFailed, gomock.Any())

	payment, err := s.InitiatePayment(context.Background(), customer, port.InitiatePaymentInput{
		OrderID: order.ID,
		Method:  domain.PaymentMethodMomo,
		Phone:   "0781234567",
	})
	assert.ErrorIs(t, err, domain.ErrPaymentInitiationFailed)
	require.NotNil(t, payment)
	assert.Equal(t, domain.PaymentStatusFailed, payment.Status)
	assert.Equal(t, "insufficient funds", payment.FailureReason)
}

func TestPaymentService_InitiateGuards(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	logger, _ := zap.NewProduction()

	order := pendingOrder(customer.UserID)

	tests := []struct {
		name     string
		actor    domain.Actor
		mock     func(m paymentMocks)
		expError error
	}{
		{
			name:  "Order not payable",
			actor: customer,
			mock: func(m paymentMocks) {
				paid := pendingOrder(customer.UserID)
				paid.ID = order.ID
				paid.Status = domain.OrderStatusPaid
				m.repo.EXPECT().ReadOrder(gomock.Any(), order.ID).Return(paid, nil)
			},
			expError: domain.ErrOrderNotPayable,
		},
		{
			name:  "Already paid by earlier payment",
			actor: customer,
			mock: func(m paymentMocks) {
				m.repo.EXPECT().ReadOrder(gomock.Any(), order.ID).Return(order, nil)
				m.repo.EXPECT().ListPaymentsByOrder(gomock.Any(), order.ID).
					Return([]*domain.Payment{{Status: domain.PaymentStatusSuccessful}}, nil)
			},
			expError: domain.ErrAlreadyPaid,
		},
		{
			name:  "Recent pending payment",
			actor: customer,
			mock: func(m paymentMocks) {
				m.repo.EXPECT().ReadOrder(gomock.Any(), order.ID).Return(order, nil)
				m.repo.EXPECT().ListPaymentsByOrder(gomock.Any(), order.ID).
					Return([]*domain.Payment{{
						Status:    domain.PaymentStatusProcessing,
						CreatedAt: time.Now().Add(-time.Minute),
					}}, nil)
			},
			expError: domain.ErrDuplicatePendingPayment,
		},
		{
			name:  "Stale pending payment does not block",
			actor: customer,
			mock: func(m paymentMocks) {
				m.repo.EXPECT().ReadOrder(gomock.Any(), order.ID).Return(order, nil)
				m.repo.EXPECT().ListPaymentsByOrder(gomock.Any(), order.ID).
					Return([]*domain.Payment{{
						Status:    domain.PaymentStatusPending,
						CreatedAt: time.Now().Add(-time.Hour),
					}}, nil)
				m.repo.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, p *domain.Payment) (*domain.Payment, error) {
						return p, nil
					})
				m.scheduler.EXPECT().SchedulePaymentCheck(gomock.Any(), gomock.Any())
			},
		},
		{
			name:     "Stranger is refused",
			actor:    stranger,
			mock:     func(m paymentMocks) { m.repo.EXPECT().ReadOrder(gomock.Any(), order.ID).Return(order, nil) },
			expError: domain.ErrForbidden,
		},
		{
			name:  "Momo without phone",
			actor: customer,
			mock: func(m paymentMocks) {
				m.repo.EXPECT().ReadOrder(gomock.Any(), order.ID).Return(order, nil)
				m.repo.EXPECT().ListPaymentsByOrder(gomock.Any(), order.ID).Return(nil, nil)
			},
			expError: domain.ErrBadRequest,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			m := paymentMocks{
				repo:      mock.NewMockRepository(mockCtrl),
				gateway:   mock.NewMockPaymentGateway(mockCtrl),
				scheduler: mock.NewMockReconcileScheduler(mockCtrl),
				notifier:  mock.NewMockNotifier(mockCtrl),
			}
			test.mock(m)

			s, err := service.NewPaymentService(m.repo, m.gateway, m.scheduler, m.notifier,
				testBusinessConfig(), logger)
			require.NoError(t, err)

			input := port.InitiatePaymentInput{OrderID: order.ID, Method: domain.PaymentMethodMomo}
			if test.name == "Stale pending payment does not block" {
				input.Method = domain.PaymentMethodCard
				input.CardNumber = "4242424242424242"
			}

			_, err = s.InitiatePayment(context.Background(), test.actor, input)
			if test.expError != nil {
				assert.ErrorIs(t, err, test.expError)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestPaymentService_InitiateIdempotencyConflict(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	s, m := newPaymentService(t, mockCtrl)

	order := pendingOrder(customer.UserID)
	winner := &domain.Payment{TransactionID: "winner", Status: domain.PaymentStatusPending}

	m.repo.EXPECT().ReadOrder(gomock.Any(), order.ID).Return(order, nil)
	m.repo.EXPECT().ListPaymentsByOrder(gomock.Any(), order.ID).Return(nil, nil)
	m.repo.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).Return(nil, domain.ErrConflictingData)
	m.repo.EXPECT().ReadPaymentByIdempotencyKey(gomock.Any(), gomock.Any()).Return(winner, nil)

	payment, err := s.InitiatePayment(context.Background(), customer, port.InitiatePaymentInput{
		OrderID: order.ID,
		Method:  domain.PaymentMethodMomo,
		Phone:   "0781234567",
	})
	require.NoError(t, err)
	assert.Equal(t, winner, payment)
}

func TestPaymentService_InitiateCardSchedulesCheck(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	s, m := newPaymentService(t, mockCtrl)

	order := pendingOrder(customer.UserID)

	m.repo.EXPECT().ReadOrder(gomock.Any(), order.ID).Return(order, nil)
	m.repo.EXPECT().ListPaymentsByOrder(gomock.Any(), order.ID).Return(nil, nil)
	m.repo.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, p *domain.Payment) (*domain.Payment, error) {
			return p, nil
		})
	m.scheduler.EXPECT().SchedulePaymentCheck(gomock.Any(), 5*time.Second)

	payment, err := s.InitiatePayment(context.Background(), customer, port.InitiatePaymentInput{
		OrderID:    order.ID,
		Method:     domain.PaymentMethodCard,
		CardNumber: "4242424242424242",
		CardType:   "visa",
	})
	require.NoError(t, err)
	assert.Equal(t, domain.PaymentStatusPending, payment.Status)
	assert.Equal(t, "**** **** **** 4242", payment.CardNumberMasked)
}

func TestPaymentService_WebhookSettlesOrder(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	s, m := newPaymentService(t, mockCtrl)

	order := pendingOrder(customer.UserID)
	payment := &domain.Payment{
		TransactionID:     "txn-1",
		OrderID:           order.ID,
		UserID:            customer.UserID,
		Status:            domain.PaymentStatusProcessing,
		ProviderReference: "pp-ref-1",
	}

	m.repo.EXPECT().ReadPaymentByProviderRef(gomock.Any(), "pp-ref-1").Return(payment, nil)
	expectUpdatePaymentByOrder(m.repo, payment, order)
	m.notifier.EXPECT().Notify(gomock.Any(), port.EventPaymentSucceeded, "txn-1")

	updated, err := s.HandleWebhook(context.Background(), "pp-ref-1", "completed")
	require.NoError(t, err)
	assert.Equal(t, domain.PaymentStatusSuccessful, updated.Status)
	assert.NotNil(t, updated.CompletedAt)
	assert.Equal(t, domain.OrderStatusPaid, order.Status)
	assert.NotNil(t, order.PaidAt)
}

func TestPaymentService_WebhookUnknownReference(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	s, m := newPaymentService(t, mockCtrl)

	m.repo.EXPECT().ReadPaymentByProviderRef(gomock.Any(), "nope").
		Return(nil, domain.ErrDataNotFound)

	_, err := s.HandleWebhook(context.Background(), "nope", "completed")
	assert.ErrorIs(t, err, domain.ErrDataNotFound)
}

func TestPaymentService_WebhookReplayIsNoop(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	s, m := newPaymentService(t, mockCtrl)

	order := pendingOrder(customer.UserID)
	order.Status = domain.OrderStatusPaid
	payment := &domain.Payment{
		TransactionID:     "txn-1",
		OrderID:           order.ID,
		Status:            domain.PaymentStatusSuccessful,
		ProviderReference: "pp-ref-1",
	}

	m.repo.EXPECT().ReadPaymentByProviderRef(gomock.Any(), "pp-ref-1").Return(payment, nil)
	expectUpdatePaymentByOrder(m.repo, payment, order)

	updated, err := s.HandleWebhook(context.Background(), "pp-ref-1", "completed")
	require.NoError(t, err)
	assert.Equal(t, domain.PaymentStatusSuccessful, updated.Status)
}

func TestPaymentService_WebhookConflictingTerminal(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	s, m := newPaymentService(t, mockCtrl)

	order := pendingOrder(customer.UserID)
	payment := &domain.Payment{
		TransactionID:     "txn-1",
		OrderID:           order.ID,
		Status:            domain.PaymentStatusFailed,
		ProviderReference: "pp-ref-1",
	}

	m.repo.EXPECT().ReadPaymentByProviderRef(gomock.Any(), "pp-ref-1").Return(payment, nil)
	expectUpdatePaymentByOrder(m.repo, payment, order)

	_, err := s.HandleWebhook(context.Background(), "pp-ref-1", "completed")
	assert.ErrorIs(t, err, domain.ErrInvalidStateTransition)
	assert.Equal(t, domain.PaymentStatusFailed, payment.Status)
	assert.Equal(t, domain.OrderStatusPending, order.Status)
}

func TestPaymentService_WebhookUnknownStatusSkips(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	s, m := newPaymentService(t, mockCtrl)

	payment := &domain.Payment{
		TransactionID:     "txn-1",
		Status:            domain.PaymentStatusProcessing,
		ProviderReference: "pp-ref-1",
	}

	m.repo.EXPECT().ReadPaymentByProviderRef(gomock.Any(), "pp-ref-1").Return(payment, nil)
	m.repo.EXPECT().ReadPayment(gomock.Any(), "txn-1").Return(payment, nil)

	updated, err := s.HandleWebhook(context.Background(), "pp-ref-1", "weird-new-status")
	require.NoError(t, err)
	assert.Equal(t, domain.PaymentStatusProcessing, updated.Status)
}

func TestPaymentService_GetStatusExpiresStalePayment(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	s, m := newPaymentService(t, mockCtrl)

	payment := &domain.Payment{
		TransactionID: "txn-1",
		UserID:        customer.UserID,
		Status:        domain.PaymentStatusProcessing,
		ExpiresAt:     time.Now().Add(-time.Minute),
	}

	m.repo.EXPECT().ReadPayment(gomock.Any(), "txn-1").Return(payment, nil)
	expectUpdatePayment(m.repo, payment)

	got, err := s.GetPaymentStatus(context.Background(), customer, "txn-1")
	require.NoError(t, err)
	assert.Equal(t, domain.PaymentStatusExpired, got.Status)
}

func TestPaymentService_GetStatusPollsProvider(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	s, m := newPaymentService(t, mockCtrl)

	order := pendingOrder(customer.UserID)
	payment := &domain.Payment{
		TransactionID:     "txn-1",
		OrderID:           order.ID,
		UserID:            customer.UserID,
		Status:            domain.PaymentStatusProcessing,
		ProviderReference: "pp-ref-1",
		ExpiresAt:         time.Now().Add(time.Hour),
	}

	m.repo.EXPECT().ReadPayment(gomock.Any(), "txn-1").Return(payment, nil)
	m.gateway.EXPECT().QueryStatus(gomock.Any(), "pp-ref-1").Return("successful", nil)
	expectUpdatePaymentByOrder(m.repo, payment, order)
	m.notifier.EXPECT().Notify(gomock.Any(), port.EventPaymentSucceeded, "txn-1")

	got, err := s.GetPaymentStatus(context.Background(), customer, "txn-1")
	require.NoError(t, err)
	assert.Equal(t, domain.PaymentStatusSuccessful, got.Status)
	assert.Equal(t, domain.OrderStatusPaid, order.Status)
}

func TestPaymentService_GetStatusToleratesProviderError(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	s, m := newPaymentService(t, mockCtrl)

	payment := &domain.Payment{
		TransactionID:     "txn-1",
		UserID:            customer.UserID,
		Status:            domain.PaymentStatusProcessing,
		ProviderReference: "pp-ref-1",
		ExpiresAt:         time.Now().Add(time.Hour),
	}

	m.repo.EXPECT().ReadPayment(gomock.Any(), "txn-1").Return(payment, nil)
	m.gateway.EXPECT().QueryStatus(gomock.Any(), "pp-ref-1").Return("", assert.AnError)

	got, err := s.GetPaymentStatus(context.Background(), customer, "txn-1")
	require.NoError(t, err)
	assert.Equal(t, domain.PaymentStatusProcessing, got.Status)
}

func TestPaymentService_ReconcileSimulatedCard(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	tests := []struct {
		name      string
		amount    string
		expStatus domain.PaymentStatus
	}{
		{name: "Card settles", amount: "10000", expStatus: domain.PaymentStatusSuccessful},
		{name: "Magic amount fails", amount: "12345", expStatus: domain.PaymentStatusFailed},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			s, m := newPaymentService(t, mockCtrl)

			order := pendingOrder(customer.UserID)
			order.TotalAmount = domain.MustMoney(test.amount, "RWF")
			payment := &domain.Payment{
				TransactionID: "txn-1",
				OrderID:       order.ID,
				UserID:        customer.UserID,
				Amount:        order.TotalAmount,
				Method:        domain.PaymentMethodCard,
				Provider:      "simulated",
				Status:        domain.PaymentStatusPending,
				ExpiresAt:     time.Now().Add(time.Hour),
			}

			m.repo.EXPECT().ReadPayment(gomock.Any(), "txn-1").Return(payment, nil)
			expectUpdatePaymentByOrder(m.repo, payment, order)
			if test.expStatus == domain.PaymentStatusSuccessful {
				m.notifier.EXPECT().Notify(gomock.Any(), port.EventPaymentSucceeded, "txn-1")
			} else {
				m.notifier.EXPECT().Notify(gomock.Any(), port.EventPaymentFailed, "txn-1")
			}

			require.NoError(t, s.ReconcileByTransactionID(context.Background(), "txn-1"))
			assert.Equal(t, test.expStatus, payment.Status)
			if test.expStatus == domain.PaymentStatusSuccessful {
				assert.Equal(t, domain.OrderStatusPaid, order.Status)
			} else {
				assert.Equal(t, domain.OrderStatusPending, order.Status)
				assert.NotEmpty(t, payment.FailureReason)
			}
		})
	}
}

func TestPaymentService_ReconcileTerminalIsNoop(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	s, m := newPaymentService(t, mockCtrl)

	payment := &domain.Payment{
		TransactionID: "txn-1",
		Status:        domain.PaymentStatusSuccessful,
		ExpiresAt:     time.Now().Add(-time.Hour),
	}

	m.repo.EXPECT().ReadPayment(gomock.Any(), "txn-1").Return(payment, nil)

	assert.NoError(t, s.ReconcileByTransactionID(context.Background(), "txn-1"))
}

func TestPaymentService_CancelPayment(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	s, m := newPaymentService(t, mockCtrl)

	payment := &domain.Payment{
		TransactionID: "txn-1",
		UserID:        customer.UserID,
		Status:        domain.PaymentStatusPending,
		ExpiresAt:     time.Now().Add(time.Hour),
	}

	m.repo.EXPECT().ReadPayment(gomock.Any(), "txn-1").Return(payment, nil)
	expectUpdatePayment(m.repo, payment)

	got, err := s.CancelPayment(context.Background(), customer, "txn-1")
	require.NoError(t, err)
	assert.Equal(t, domain.PaymentStatusCancelled, got.Status)
}

func TestPaymentService_CancelPaymentPastDeadlineExpires(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	s, m := newPaymentService(t, mockCtrl)

	payment := &domain.Payment{
		TransactionID: "txn-1",
		UserID:        customer.UserID,
		Status:        domain.PaymentStatusPending,
		ExpiresAt:     time.Now().Add(-time.Minute),
	}

	m.repo.EXPECT().ReadPayment(gomock.Any(), "txn-1").Return(payment, nil)
	expectUpdatePayment(m.repo, payment)

	_, err := s.CancelPayment(context.Background(), customer, "txn-1")
	assert.ErrorIs(t, err, domain.ErrInvalidStateTransition)
	assert.Equal(t, domain.PaymentStatusExpired, payment.Status)
}
