package http

import (
	"github.com/gin-gonic/gin"
	"github.com/rwooga/paycore/internal/adapter/config"
	"github.com/rwooga/paycore/internal/core/port"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type Router struct {
	*gin.Engine
}

func NewRouter(
	conf *config.HTTP,
	tokenService port.TokenService,
	orderHandler *OrderHandler,
	paymentHandler *PaymentHandler,
	returnHandler *ReturnHandler) (*Router, error) {

	router := gin.New()

	// Swagger
	router.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := router.Group("/api")
	{
		// The provider callback carries no user token.
		api.POST("/payments/webhook", paymentHandler.Webhook)

		orders := api.Group("/orders")
		{
			orders.Use(authCheck(tokenService))
			orders.POST("", orderHandler.CreateOrder)
			orders.GET("", orderHandler.ListOrders)
			orders.GET("/:id", orderHandler.GetOrder)
			orders.POST("/:id/cancel", orderHandler.CancelOrder)
			orders.POST("/:id/ship", adminCheck(), orderHandler.ShipOrder)
			orders.POST("/:id/deliver", adminCheck(), orderHandler.DeliverOrder)
		}

		payments := api.Group("/payments")
		{
			payments.Use(authCheck(tokenService))
			payments.POST("/initiate-momo", paymentHandler.InitiateMomo)
			payments.POST("/initiate-card", paymentHandler.InitiateCard)
			payments.GET("/:transactionID/status", paymentHandler.PaymentStatus)
			payments.POST("/:transactionID/cancel", paymentHandler.CancelPayment)
		}

		returns := api.Group("/returns")
		{
			returns.Use(authCheck(tokenService))
			returns.POST("", returnHandler.RequestReturn)
			returns.GET("/:id", returnHandler.GetReturn)
			returns.POST("/:id/approve", adminCheck(), returnHandler.ApproveReturn)
			returns.POST("/:id/reject", adminCheck(), returnHandler.RejectReturn)
			returns.POST("/:id/complete", adminCheck(), returnHandler.CompleteReturn)
		}

		refunds := api.Group("/refunds")
		{
			refunds.Use(authCheck(tokenService))
			refunds.POST("", returnHandler.IssueRefund)
			refunds.GET("/:id", returnHandler.GetRefund)
			refunds.POST("/:id/complete", adminCheck(), returnHandler.CompleteRefund)
			refunds.POST("/:id/fail", adminCheck(), returnHandler.FailRefund)
		}
	}

	return &Router{router}, nil
}

// Serve starts the HTTP server
func (r *Router) Serve(listenAddr string) error {
	return r.Run(listenAddr)
}
