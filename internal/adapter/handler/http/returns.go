package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/govalues/decimal"
	"github.com/rwooga/paycore/internal/core/domain"
	"github.com/rwooga/paycore/internal/core/port"
	"go.uber.org/zap"
)

type ReturnHandler struct {
	Handler
	service port.ReturnService
}

func NewReturnHandler(service port.ReturnService, logger *zap.Logger) (*ReturnHandler, error) {
	return &ReturnHandler{
		Handler: *NewHandler(logger),
		service: service,
	}, nil
}

type requestReturnRequest struct {
	OrderID        uuid.UUID `json:"order_id" binding:"required"`
	Reason         string    `json:"reason" binding:"required"`
	DetailedReason string    `json:"detailed_reason"`
	Amount         float64   `json:"amount" binding:"required"`
}

type returnResponse struct {
	ID                    uuid.UUID        `json:"id"`
	ReturnNumber          string           `json:"return_number"`
	OrderID               uuid.UUID        `json:"order_id"`
	Status                string           `json:"status"`
	Reason                string           `json:"reason"`
	RequestedRefundAmount decimal.Decimal  `json:"requested_refund_amount"`
	ApprovedRefundAmount  *decimal.Decimal `json:"approved_refund_amount,omitempty"`
	RejectionReason       string           `json:"rejection_reason,omitempty"`
	CreatedAt             time.Time        `json:"created_at"`
	ApprovedAt            *time.Time       `json:"approved_at,omitempty"`
}

func newReturnResponse(ret *domain.Return) returnResponse {
	resp := returnResponse{
		ID:                    ret.ID,
		ReturnNumber:          ret.ReturnNumber,
		OrderID:               ret.OrderID,
		Status:                string(ret.Status),
		Reason:                ret.Reason,
		RequestedRefundAmount: ret.RequestedRefundAmount.Amount,
		RejectionReason:       ret.RejectionReason,
		CreatedAt:             ret.CreatedAt,
		ApprovedAt:            ret.ApprovedAt,
	}
	if ret.ApprovedRefundAmount != nil {
		resp.ApprovedRefundAmount = &ret.ApprovedRefundAmount.Amount
	}
	return resp
}

type refundResponse struct {
	ID                    uuid.UUID       `json:"id"`
	RefundNumber          string          `json:"refund_number"`
	OrderID               uuid.UUID       `json:"order_id"`
	Amount                decimal.Decimal `json:"amount"`
	Currency              string          `json:"currency"`
	Status                string          `json:"status"`
	Reason                string          `json:"reason,omitempty"`
	ProviderTransactionID string          `json:"provider_transaction_id,omitempty"`
	CreatedAt             time.Time       `json:"created_at"`
	CompletedAt           *time.Time      `json:"completed_at,omitempty"`
}

func newRefundResponse(refund *domain.Refund) refundResponse {
	return refundResponse{
		ID:                    refund.ID,
		RefundNumber:          refund.RefundNumber,
		OrderID:               refund.OrderID,
		Amount:                refund.Amount.Amount,
		Currency:              refund.Amount.Currency,
		Status:                string(refund.Status),
		Reason:                refund.Reason,
		ProviderTransactionID: refund.ProviderTransactionID,
		CreatedAt:             refund.CreatedAt,
		CompletedAt:           refund.CompletedAt,
	}
}

// RequestReturn godoc
//
//	@Summary	Request a return for a delivered order
//	@Tags		returns
//	@Accept		json
//	@Produce	json
//	@Success	201	{object}	returnResponse
//	@Router		/returns [post]
func (rh *ReturnHandler) RequestReturn(ctx *gin.Context) {
	req := requestReturnRequest{}
	if err := ctx.ShouldBindBodyWithJSON(&req); err != nil {
		rh.handleValidationError(ctx, err)
		return
	}

	amount, err := decimal.NewFromFloat64(req.Amount)
	if err != nil {
		rh.handleValidationError(ctx, err)
		return
	}

	ret, err := rh.service.RequestReturn(ctx, getActor(ctx), port.RequestReturnInput{
		OrderID:        req.OrderID,
		Reason:         req.Reason,
		DetailedReason: req.DetailedReason,
		Amount:         amount,
	})
	if err != nil {
		rh.handleError(ctx, err)
		return
	}

	rh.handleSuccessWithStatus(ctx, newReturnResponse(ret), http.StatusCreated)
}

func (rh *ReturnHandler) GetReturn(ctx *gin.Context) {
	returnID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		rh.handleValidationError(ctx, err)
		return
	}

	ret, err := rh.service.GetReturn(ctx, getActor(ctx), returnID)
	if err != nil {
		rh.handleError(ctx, err)
		return
	}

	rh.handleSuccess(ctx, newReturnResponse(ret))
}

type approveReturnRequest struct {
	// Amount overrides the requested refund when set.
	Amount *float64 `json:"amount"`
}

func (rh *ReturnHandler) ApproveReturn(ctx *gin.Context) {
	returnID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		rh.handleValidationError(ctx, err)
		return
	}

	req := approveReturnRequest{}
	if err := ctx.ShouldBindBodyWithJSON(&req); err != nil && ctx.Request.ContentLength > 0 {
		rh.handleValidationError(ctx, err)
		return
	}

	var amount *decimal.Decimal
	if req.Amount != nil {
		value, err := decimal.NewFromFloat64(*req.Amount)
		if err != nil {
			rh.handleValidationError(ctx, err)
			return
		}
		amount = &value
	}

	ret, err := rh.service.ApproveReturn(ctx, getActor(ctx), returnID, amount)
	if err != nil {
		rh.handleError(ctx, err)
		return
	}

	rh.handleSuccess(ctx, newReturnResponse(ret))
}

type rejectReturnRequest struct {
	Reason string `json:"reason" binding:"required"`
}

func (rh *ReturnHandler) RejectReturn(ctx *gin.Context) {
	returnID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		rh.handleValidationError(ctx, err)
		return
	}

	req := rejectReturnRequest{}
	if err := ctx.ShouldBindBodyWithJSON(&req); err != nil {
		rh.handleValidationError(ctx, err)
		return
	}

	ret, err := rh.service.RejectReturn(ctx, getActor(ctx), returnID, req.Reason)
	if err != nil {
		rh.handleError(ctx, err)
		return
	}

	rh.handleSuccess(ctx, newReturnResponse(ret))
}

func (rh *ReturnHandler) CompleteReturn(ctx *gin.Context) {
	returnID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		rh.handleValidationError(ctx, err)
		return
	}

	ret, err := rh.service.CompleteReturn(ctx, getActor(ctx), returnID)
	if err != nil {
		rh.handleError(ctx, err)
		return
	}

	rh.handleSuccess(ctx, newReturnResponse(ret))
}

type issueRefundRequest struct {
	OrderID uuid.UUID `json:"order_id" binding:"required"`
	Amount  float64   `json:"amount" binding:"required"`
	Reason  string    `json:"reason"`
}

// IssueRefund godoc
//
//	@Summary	Issue a pending refund against an order
//	@Tags		refunds
//	@Accept		json
//	@Produce	json
//	@Success	201	{object}	refundResponse
//	@Router		/refunds [post]
func (rh *ReturnHandler) IssueRefund(ctx *gin.Context) {
	req := issueRefundRequest{}
	if err := ctx.ShouldBindBodyWithJSON(&req); err != nil {
		rh.handleValidationError(ctx, err)
		return
	}

	amount, err := decimal.NewFromFloat64(req.Amount)
	if err != nil {
		rh.handleValidationError(ctx, err)
		return
	}

	refund, err := rh.service.IssueRefund(ctx, getActor(ctx), port.IssueRefundInput{
		OrderID: req.OrderID,
		Amount:  amount,
		Reason:  req.Reason,
	})
	if err != nil {
		rh.handleError(ctx, err)
		return
	}

	rh.handleSuccessWithStatus(ctx, newRefundResponse(refund), http.StatusCreated)
}

func (rh *ReturnHandler) GetRefund(ctx *gin.Context) {
	refundID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		rh.handleValidationError(ctx, err)
		return
	}

	refund, err := rh.service.GetRefund(ctx, getActor(ctx), refundID)
	if err != nil {
		rh.handleError(ctx, err)
		return
	}

	rh.handleSuccess(ctx, newRefundResponse(refund))
}

type completeRefundRequest struct {
	ProviderTransactionID string `json:"provider_transaction_id"`
}

func (rh *ReturnHandler) CompleteRefund(ctx *gin.Context) {
	refundID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		rh.handleValidationError(ctx, err)
		return
	}

	req := completeRefundRequest{}
	if err := ctx.ShouldBindBodyWithJSON(&req); err != nil && ctx.Request.ContentLength > 0 {
		rh.handleValidationError(ctx, err)
		return
	}

	refund, err := rh.service.CompleteRefund(ctx, getActor(ctx), refundID, req.ProviderTransactionID)
	if err != nil {
		rh.handleError(ctx, err)
		return
	}

	rh.handleSuccess(ctx, newRefundResponse(refund))
}

func (rh *ReturnHandler) FailRefund(ctx *gin.Context) {
	refundID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		rh.handleValidationError(ctx, err)
		return
	}

	refund, err := rh.service.FailRefund(ctx, getActor(ctx), refundID)
	if err != nil {
		rh.handleError(ctx, err)
		return
	}

	rh.handleSuccess(ctx, newRefundResponse(refund))
}
