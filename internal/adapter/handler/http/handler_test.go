package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rwooga/paycore/internal/core/domain"
	"github.com/rwooga/paycore/internal/core/port"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestHandleErrorStatusCodes(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h := NewHandler(zap.NewNop())

	testCases := []struct {
		name   string
		err    error
		status int
	}{
		{"not found", domain.ErrDataNotFound, http.StatusNotFound},
		{"invalid token", domain.ErrInvalidToken, http.StatusUnauthorized},
		{"forbidden", domain.ErrForbidden, http.StatusForbidden},
		{"not owner", domain.ErrNotOwner, http.StatusForbidden},
		{"already paid", domain.ErrAlreadyPaid, http.StatusBadRequest},
		{"duplicate pending payment", domain.ErrDuplicatePendingPayment, http.StatusBadRequest},
		{"duplicate active return", domain.ErrDuplicateActiveReturn, http.StatusBadRequest},
		{"order not payable", domain.ErrOrderNotPayable, http.StatusBadRequest},
		{"invalid state transition", domain.ErrInvalidStateTransition, http.StatusBadRequest},
		{"return window closed", domain.ErrReturnWindowClosed, http.StatusBadRequest},
		{"refund exceeds order total", domain.ErrRefundExceedsOrderTotal, http.StatusBadRequest},
		{"rejection reason required", domain.ErrRejectionReasonRequired, http.StatusBadRequest},
		{"invalid discount code", domain.ErrInvalidDiscountCode, http.StatusBadRequest},
		{"payment initiation failed", domain.ErrPaymentInitiationFailed, http.StatusBadRequest},
		{"unmapped error", assert.AnError, http.StatusInternalServerError},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			ctx, _ := gin.CreateTestContext(w)
			h.handleError(ctx, tc.err)
			assert.Equal(t, tc.status, w.Code)
		})
	}
}

type orderServiceStub struct {
	err error
}

func (s *orderServiceStub) CreateOrder(_ context.Context, _ domain.Actor, _ port.CreateOrderInput) (*domain.Order, error) {
	return nil, s.err
}

func (s *orderServiceStub) GetOrder(_ context.Context, _ domain.Actor, _ uuid.UUID) (*domain.Order, error) {
	return nil, s.err
}

func (s *orderServiceStub) ListOrders(_ context.Context, _ domain.Actor) ([]*domain.Order, error) {
	return nil, s.err
}

func (s *orderServiceStub) CancelOrder(_ context.Context, _ domain.Actor, _ uuid.UUID) (*domain.Order, error) {
	return nil, s.err
}

func (s *orderServiceStub) ShipOrder(_ context.Context, _ domain.Actor, _ uuid.UUID) (*domain.Order, error) {
	return nil, s.err
}

func (s *orderServiceStub) DeliverOrder(_ context.Context, _ domain.Actor, _ uuid.UUID) (*domain.Order, error) {
	return nil, s.err
}

// A cancel refused by the order state machine is a plain 400 on the wire.
func TestCancelOrderStateConflictIsBadRequest(t *testing.T) {
	gin.SetMode(gin.TestMode)

	handler, err := NewOrderHandler(&orderServiceStub{err: domain.ErrInvalidStateTransition}, zap.NewNop())
	require.NoError(t, err)

	orderID := uuid.NewString()
	w := httptest.NewRecorder()
	ctx, _ := gin.CreateTestContext(w)
	ctx.Request = httptest.NewRequest(http.MethodPost, "/api/orders/"+orderID+"/cancel", http.NoBody)
	ctx.Params = gin.Params{{Key: "id", Value: orderID}}
	ctx.Set(authPayloadKey, &port.TokenPayload{UserID: 7, Role: domain.RoleCustomer})

	handler.CancelOrder(ctx)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
