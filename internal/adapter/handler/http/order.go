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

type OrderHandler struct {
	Handler
	service port.OrderService
}

func NewOrderHandler(service port.OrderService, logger *zap.Logger) (*OrderHandler, error) {
	return &OrderHandler{
		Handler: *NewHandler(logger),
		service: service,
	}, nil
}

type orderItemRequest struct {
	ProductRef string `json:"product_ref" binding:"required"`
	Quantity   int32  `json:"quantity" binding:"required"`
}

type createOrderRequest struct {
	Items           []orderItemRequest `json:"items" binding:"required"`
	ShippingAddress string             `json:"shipping_address"`
	ShippingPhone   string             `json:"shipping_phone"`
	ShippingFee     float64            `json:"shipping_fee"`
	TaxAmount       float64            `json:"tax_amount"`
	DiscountCode    string             `json:"discount_code"`
}

type orderItemResponse struct {
	ProductRef      string          `json:"product_ref"`
	Quantity        int32           `json:"quantity"`
	PriceAtPurchase decimal.Decimal `json:"price_at_purchase"`
}

type orderResponse struct {
	ID             uuid.UUID           `json:"id"`
	OrderNumber    string              `json:"order_number"`
	Status         string              `json:"status"`
	Items          []orderItemResponse `json:"items"`
	TotalAmount    decimal.Decimal     `json:"total_amount"`
	ShippingFee    decimal.Decimal     `json:"shipping_fee"`
	DiscountAmount decimal.Decimal     `json:"discount_amount"`
	TaxAmount      decimal.Decimal     `json:"tax_amount"`
	RefundedAmount decimal.Decimal     `json:"refunded_amount"`
	Currency       string              `json:"currency"`
	CreatedAt      time.Time           `json:"created_at"`
	PaidAt         *time.Time          `json:"paid_at,omitempty"`
	ShippedAt      *time.Time          `json:"shipped_at,omitempty"`
	DeliveredAt    *time.Time          `json:"delivered_at,omitempty"`
}

func newOrderResponse(order *domain.Order) orderResponse {
	items := make([]orderItemResponse, 0, len(order.Items))
	for _, item := range order.Items {
		items = append(items, orderItemResponse{
			ProductRef:      item.ProductRef,
			Quantity:        item.Quantity,
			PriceAtPurchase: item.PriceAtPurchase.Amount,
		})
	}
	return orderResponse{
		ID:             order.ID,
		OrderNumber:    order.OrderNumber,
		Status:         string(order.Status),
		Items:          items,
		TotalAmount:    order.TotalAmount.Amount,
		ShippingFee:    order.ShippingFee.Amount,
		DiscountAmount: order.DiscountAmount.Amount,
		TaxAmount:      order.TaxAmount.Amount,
		RefundedAmount: order.RefundedAmount.Amount,
		Currency:       order.TotalAmount.Currency,
		CreatedAt:      order.CreatedAt,
		PaidAt:         order.PaidAt,
		ShippedAt:      order.ShippedAt,
		DeliveredAt:    order.DeliveredAt,
	}
}

// CreateOrder godoc
//
//	@Summary	Create an order with frozen totals
//	@Tags		orders
//	@Accept		json
//	@Produce	json
//	@Success	201	{object}	orderResponse
//	@Router		/orders [post]
func (oh *OrderHandler) CreateOrder(ctx *gin.Context) {
	req := createOrderRequest{}
	if err := ctx.ShouldBindBodyWithJSON(&req); err != nil {
		oh.handleValidationError(ctx, err)
		return
	}

	shippingFee, err := decimal.NewFromFloat64(req.ShippingFee)
	if err != nil {
		oh.handleValidationError(ctx, err)
		return
	}
	taxAmount, err := decimal.NewFromFloat64(req.TaxAmount)
	if err != nil {
		oh.handleValidationError(ctx, err)
		return
	}

	items := make([]port.CreateOrderItemInput, 0, len(req.Items))
	for _, item := range req.Items {
		items = append(items, port.CreateOrderItemInput{
			ProductRef: item.ProductRef,
			Quantity:   item.Quantity,
		})
	}

	order, err := oh.service.CreateOrder(ctx, getActor(ctx), port.CreateOrderInput{
		Items:           items,
		ShippingAddress: req.ShippingAddress,
		ShippingPhone:   req.ShippingPhone,
		ShippingFee:     shippingFee,
		TaxAmount:       taxAmount,
		DiscountCode:    req.DiscountCode,
	})
	if err != nil {
		oh.handleError(ctx, err)
		return
	}

	oh.handleSuccessWithStatus(ctx, newOrderResponse(order), http.StatusCreated)
}

// GetOrder godoc
//
//	@Summary	Read one order
//	@Tags		orders
//	@Produce	json
//	@Success	200	{object}	orderResponse
//	@Router		/orders/{id} [get]
func (oh *OrderHandler) GetOrder(ctx *gin.Context) {
	orderID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		oh.handleValidationError(ctx, err)
		return
	}

	order, err := oh.service.GetOrder(ctx, getActor(ctx), orderID)
	if err != nil {
		oh.handleError(ctx, err)
		return
	}

	oh.handleSuccess(ctx, newOrderResponse(order))
}

func (oh *OrderHandler) ListOrders(ctx *gin.Context) {
	list, err := oh.service.ListOrders(ctx, getActor(ctx))
	if err != nil {
		oh.handleError(ctx, err)
		return
	}

	result := make([]orderResponse, 0, len(list))
	for _, order := range list {
		result = append(result, newOrderResponse(order))
	}

	oh.handleSuccess(ctx, result)
}

func (oh *OrderHandler) CancelOrder(ctx *gin.Context) {
	orderID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		oh.handleValidationError(ctx, err)
		return
	}

	order, err := oh.service.CancelOrder(ctx, getActor(ctx), orderID)
	if err != nil {
		oh.handleError(ctx, err)
		return
	}

	oh.handleSuccess(ctx, newOrderResponse(order))
}

func (oh *OrderHandler) ShipOrder(ctx *gin.Context) {
	orderID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		oh.handleValidationError(ctx, err)
		return
	}

	order, err := oh.service.ShipOrder(ctx, getActor(ctx), orderID)
	if err != nil {
		oh.handleError(ctx, err)
		return
	}

	oh.handleSuccess(ctx, newOrderResponse(order))
}

func (oh *OrderHandler) DeliverOrder(ctx *gin.Context) {
	orderID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		oh.handleValidationError(ctx, err)
		return
	}

	order, err := oh.service.DeliverOrder(ctx, getActor(ctx), orderID)
	if err != nil {
		oh.handleError(ctx, err)
		return
	}

	oh.handleSuccess(ctx, newOrderResponse(order))
}
