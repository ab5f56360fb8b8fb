package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rwooga/paycore/internal/core/domain"
	"go.uber.org/zap"
)

var errorStatusMap = map[error]int{
	domain.ErrInternal:        http.StatusInternalServerError,
	domain.ErrDataNotFound:    http.StatusNotFound,
	domain.ErrConflictingData: http.StatusConflict,

	domain.ErrUnauthorized:               http.StatusUnauthorized,
	domain.ErrEmptyAuthorizationHeader:   http.StatusUnauthorized,
	domain.ErrInvalidAuthorizationHeader: http.StatusUnauthorized,
	domain.ErrInvalidAuthorizationType:   http.StatusUnauthorized,
	domain.ErrInvalidToken:               http.StatusUnauthorized,
	domain.ErrExpiredToken:               http.StatusUnauthorized,
	domain.ErrForbidden:                  http.StatusForbidden,
	domain.ErrNotOwner:                   http.StatusForbidden,

	// Business-rule failures are all 400: clients distinguish them by the
	// error body, not the code.
	domain.ErrBadRequest:              http.StatusBadRequest,
	domain.ErrInvalidAmount:           http.StatusBadRequest,
	domain.ErrAlreadyPaid:             http.StatusBadRequest,
	domain.ErrDuplicatePendingPayment: http.StatusBadRequest,
	domain.ErrDuplicateActiveReturn:   http.StatusBadRequest,
	domain.ErrInvalidOrderRequest:     http.StatusBadRequest,
	domain.ErrInvalidDiscountCode:     http.StatusBadRequest,
	domain.ErrOrderNotPayable:         http.StatusBadRequest,
	domain.ErrInvalidStateTransition:  http.StatusBadRequest,
	domain.ErrReturnWindowClosed:      http.StatusBadRequest,
	domain.ErrRefundExceedsOrderTotal: http.StatusBadRequest,
	domain.ErrRejectionReasonRequired: http.StatusBadRequest,
	domain.ErrCurrencyMismatch:        http.StatusBadRequest,
	domain.ErrPaymentInitiationFailed: http.StatusBadRequest,
}

type errorResponse struct {
	Error string `json:"error"`
}

type Handler struct {
	logger *zap.Logger
}

func NewHandler(logger *zap.Logger) *Handler {
	return &Handler{logger: logger}
}

// handleValidationError sends an error response for a request binding error
func (h *Handler) handleValidationError(ctx *gin.Context, err error) {
	ctx.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
}

func (h *Handler) handleError(ctx *gin.Context, err error) {
	statusCode, ok := errorStatusMap[err]
	if !ok {
		statusCode = http.StatusInternalServerError
		h.logger.Error("error processing request", zap.Error(err))
		ctx.JSON(statusCode, errorResponse{Error: domain.ErrInternal.Error()})
		return
	}
	ctx.JSON(statusCode, errorResponse{Error: err.Error()})
}

func (h *Handler) handleSuccessWithStatus(ctx *gin.Context, data any, status int) {
	if data != nil {
		ctx.JSON(status, data)
	} else {
		ctx.Status(status)
	}
}

func (h *Handler) handleSuccess(ctx *gin.Context, data any) {
	h.handleSuccessWithStatus(ctx, data, http.StatusOK)
}

// handleAbort aborts the request from middleware with the mapped status code.
func handleAbort(ctx *gin.Context, err error) {
	statusCode, ok := errorStatusMap[err]
	if !ok {
		statusCode = http.StatusInternalServerError
	}
	ctx.AbortWithStatusJSON(statusCode, errorResponse{Error: err.Error()})
}
