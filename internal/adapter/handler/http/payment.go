package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/govalues/decimal"
	"github.com/rwooga/paycore/internal/core/domain"
	"github.com/rwooga/paycore/internal/core/port"
	"go.uber.org/zap"
)

type PaymentHandler struct {
	Handler
	service port.PaymentService
}

func NewPaymentHandler(service port.PaymentService, logger *zap.Logger) (*PaymentHandler, error) {
	return &PaymentHandler{
		Handler: *NewHandler(logger),
		service: service,
	}, nil
}

type initiateMomoRequest struct {
	OrderID uuid.UUID `json:"order_id" binding:"required"`
	Phone   string    `json:"phone" binding:"required"`
}

type initiateCardRequest struct {
	OrderID    uuid.UUID `json:"order_id" binding:"required"`
	CardNumber string    `json:"card_number" binding:"required"`
	CardType   string    `json:"card_type"`
}

type paymentResponse struct {
	TransactionID    string          `json:"transaction_id"`
	OrderID          uuid.UUID       `json:"order_id"`
	Amount           decimal.Decimal `json:"amount"`
	Currency         string          `json:"currency"`
	Method           string          `json:"method"`
	Status           string          `json:"status"`
	FailureReason    string          `json:"failure_reason,omitempty"`
	CardNumberMasked string          `json:"card_number_masked,omitempty"`
	CreatedAt        time.Time       `json:"created_at"`
	CompletedAt      *time.Time      `json:"completed_at,omitempty"`
	ExpiresAt        time.Time       `json:"expires_at"`
}

func newPaymentResponse(payment *domain.Payment) paymentResponse {
	return paymentResponse{
		TransactionID:    payment.TransactionID,
		OrderID:          payment.OrderID,
		Amount:           payment.Amount.Amount,
		Currency:         payment.Amount.Currency,
		Method:           string(payment.Method),
		Status:           string(payment.Status),
		FailureReason:    payment.FailureReason,
		CardNumberMasked: payment.CardNumberMasked,
		CreatedAt:        payment.CreatedAt,
		CompletedAt:      payment.CompletedAt,
		ExpiresAt:        payment.ExpiresAt,
	}
}

// InitiateMomo godoc
//
//	@Summary	Start a mobile-money payment for an order
//	@Tags		payments
//	@Accept		json
//	@Produce	json
//	@Success	201	{object}	paymentResponse
//	@Router		/payments/initiate-momo [post]
func (ph *PaymentHandler) InitiateMomo(ctx *gin.Context) {
	req := initiateMomoRequest{}
	if err := ctx.ShouldBindBodyWithJSON(&req); err != nil {
		ph.handleValidationError(ctx, err)
		return
	}

	payment, err := ph.service.InitiatePayment(ctx, getActor(ctx), port.InitiatePaymentInput{
		OrderID: req.OrderID,
		Method:  domain.PaymentMethodMomo,
		Phone:   req.Phone,
	})
	if err != nil {
		// An immediate provider refusal still carries the failed payment.
		if errors.Is(err, domain.ErrPaymentInitiationFailed) && payment != nil {
			ctx.JSON(errorStatusMap[domain.ErrPaymentInitiationFailed], newPaymentResponse(payment))
			return
		}
		ph.handleError(ctx, err)
		return
	}

	ph.handleSuccessWithStatus(ctx, newPaymentResponse(payment), http.StatusCreated)
}

func (ph *PaymentHandler) InitiateCard(ctx *gin.Context) {
	req := initiateCardRequest{}
	if err := ctx.ShouldBindBodyWithJSON(&req); err != nil {
		ph.handleValidationError(ctx, err)
		return
	}

	payment, err := ph.service.InitiatePayment(ctx, getActor(ctx), port.InitiatePaymentInput{
		OrderID:    req.OrderID,
		Method:     domain.PaymentMethodCard,
		CardNumber: req.CardNumber,
		CardType:   req.CardType,
	})
	if err != nil {
		ph.handleError(ctx, err)
		return
	}

	ph.handleSuccessWithStatus(ctx, newPaymentResponse(payment), http.StatusCreated)
}

// PaymentStatus godoc
//
//	@Summary	Read payment status, reconciled against the provider
//	@Tags		payments
//	@Produce	json
//	@Success	200	{object}	paymentResponse
//	@Router		/payments/{transactionID}/status [get]
func (ph *PaymentHandler) PaymentStatus(ctx *gin.Context) {
	payment, err := ph.service.GetPaymentStatus(ctx, getActor(ctx), ctx.Param("transactionID"))
	if err != nil {
		ph.handleError(ctx, err)
		return
	}

	ph.handleSuccess(ctx, newPaymentResponse(payment))
}

func (ph *PaymentHandler) CancelPayment(ctx *gin.Context) {
	payment, err := ph.service.CancelPayment(ctx, getActor(ctx), ctx.Param("transactionID"))
	if err != nil {
		ph.handleError(ctx, err)
		return
	}

	ph.handleSuccess(ctx, newPaymentResponse(payment))
}

type webhookRequest struct {
	Ref       string `json:"ref"`
	Reference string `json:"reference"`
	Status    string `json:"status"`
}

// Webhook godoc
//
//	@Summary	Provider callback for asynchronous settlement
//	@Tags		payments
//	@Accept		json
//	@Produce	json
//	@Router		/payments/webhook [post]
func (ph *PaymentHandler) Webhook(ctx *gin.Context) {
	req := webhookRequest{}
	if err := ctx.ShouldBindBodyWithJSON(&req); err != nil {
		ph.handleValidationError(ctx, err)
		return
	}

	ref := req.Ref
	if ref == "" {
		ref = req.Reference
	}
	if ref == "" {
		ph.handleValidationError(ctx, domain.ErrBadRequest)
		return
	}

	_, err := ph.service.HandleWebhook(ctx, ref, req.Status)
	if err != nil {
		// A conflicting terminal status is a logged anomaly, not a delivery
		// failure: the provider must not keep retrying it.
		if !errors.Is(err, domain.ErrInvalidStateTransition) {
			ph.handleError(ctx, err)
			return
		}
	}

	ph.handleSuccess(ctx, gin.H{"status": "received"})
}
