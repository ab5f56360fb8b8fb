package port

import (
	"context"
	"time"
)

//go:generate mockgen -source=reconciler.go -destination=mock/reconciler.go -package=mock

// ReconcileScheduler queues a deferred status check for a payment. Simulated
// card settlements and delayed provider checks both go through it, so every
// asynchronous path converges on the same reconcile entry point as webhooks.
type ReconcileScheduler interface {
	SchedulePaymentCheck(transactionID string, delay time.Duration)
}

// PaymentReconciler is the consumer side of the queue.
type PaymentReconciler interface {
	ReconcileByTransactionID(ctx context.Context, transactionID string) error
}
