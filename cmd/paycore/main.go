package main

import (
	"context"
	"fmt"

	"github.com/rwooga/paycore/internal/adapter/auth"
	"github.com/rwooga/paycore/internal/adapter/client/paypack"
	"github.com/rwooga/paycore/internal/adapter/client/pricing"
	"github.com/rwooga/paycore/internal/adapter/client/reconciler"
	"github.com/rwooga/paycore/internal/adapter/config"
	"github.com/rwooga/paycore/internal/adapter/handler/http"
	"github.com/rwooga/paycore/internal/adapter/logger"
	"github.com/rwooga/paycore/internal/adapter/notifier"
	"github.com/rwooga/paycore/internal/adapter/storage"
	"github.com/rwooga/paycore/internal/adapter/storage/repository"
	"github.com/rwooga/paycore/internal/core/service"
	"go.uber.org/zap"
)

const reconcileWorkers = 5

func main() {
	conf, err := config.NewConfig()
	if err != nil {
		fmt.Printf("config error:%s", err)
		return
	}

	log := logger.NewLogger(conf.App)
	if log == nil {
		fmt.Printf("error creating log")
		return
	}
	defer func() {
		err := log.Sync()
		if err != nil {
			fmt.Printf("log error: %s", err)
		}
	}()

	ctx := context.Background()

	db, err := storage.NewDBStorage(ctx, conf.Database)
	if err != nil {
		log.Error("database error", zap.Error(err))
		return
	}
	err = db.RunMigrations()
	if err != nil {
		log.Error("database migration error", zap.Error(err))
		return
	}

	repo, err := repository.NewRepository(db)
	if err != nil {
		log.Error("repository creating error", zap.Error(err))
		return
	}
	tokenService, err := auth.New()
	if err != nil {
		log.Error("token service creating error", zap.Error(err))
		return
	}

	gateway, err := paypack.NewClient(conf.Paypack, log.Named("Paypack"))
	if err != nil {
		log.Error("paypack client creating error", zap.Error(err))
		return
	}
	catalog, err := pricing.NewCatalogClient(conf.Catalog, conf.Business, log.Named("Catalog"))
	if err != nil {
		log.Error("catalog client creating error", zap.Error(err))
		return
	}
	mailer, err := notifier.NewEmailNotifier(conf.SMTP, log.Named("Notifier"))
	if err != nil {
		log.Error("notifier creating error", zap.Error(err))
		return
	}
	scheduler, err := reconciler.NewScheduler(log.Named("Reconciler"))
	if err != nil {
		log.Error("reconcile scheduler creating error", zap.Error(err))
		return
	}

	orderService, err := service.NewOrderService(repo, catalog, mailer, conf.Business, log.Named("OrderService"))
	if err != nil {
		log.Error("order service creating error", zap.Error(err))
		return
	}
	paymentService, err := service.NewPaymentService(repo, gateway, scheduler, mailer, conf.Business, log.Named("PaymentService"))
	if err != nil {
		log.Error("payment service creating error", zap.Error(err))
		return
	}
	returnService, err := service.NewReturnService(repo, mailer, conf.Business, log.Named("ReturnService"))
	if err != nil {
		log.Error("return service creating error", zap.Error(err))
		return
	}

	scheduler.Run(ctx, paymentService, reconcileWorkers)

	orderHandler, err := http.NewOrderHandler(orderService, log.Named("Order handler"))
	if err != nil {
		log.Error("order handler creating error", zap.Error(err))
		return
	}
	paymentHandler, err := http.NewPaymentHandler(paymentService, log.Named("Payment handler"))
	if err != nil {
		log.Error("payment handler creating error", zap.Error(err))
		return
	}
	returnHandler, err := http.NewReturnHandler(returnService, log.Named("Return handler"))
	if err != nil {
		log.Error("return handler creating error", zap.Error(err))
		return
	}

	r, err := http.NewRouter(conf.HTTP, tokenService, orderHandler, paymentHandler, returnHandler)
	if err != nil {
		log.Error("router creating error", zap.Error(err))
		return
	}

	err = r.Serve(conf.HTTP.HostString)
	if err != nil {
		log.Error("router serve error", zap.Error(err))
		return
	}
}
