package reconciler

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/rwooga/paycore/internal/core/domain"
	"github.com/rwooga/paycore/internal/core/port"
	"go.uber.org/zap"
)

const retryDelay = 3 * time.Second

// Scheduler queues deferred payment status checks and drains them with a
// worker pool. Card settlements and delayed provider polls go through the
// same queue, so they reach the payment state machine the way a webhook does.
type Scheduler struct {
	logger *zap.Logger
	queue  chan string
	done   chan struct{}
	stop   sync.Once
}

func NewScheduler(logger *zap.Logger) (*Scheduler, error) {
	return &Scheduler{
		logger: logger,
		queue:  make(chan string, 64),
		done:   make(chan struct{}),
	}, nil
}

// SchedulePaymentCheck enqueues a check after the given delay. The caller does
// not wait for the result.
func (s *Scheduler) SchedulePaymentCheck(transactionID string, delay time.Duration) {
	s.logger.Debug("Schedule payment check",
		zap.String("transaction", transactionID), zap.Duration("delay", delay))
	go func() {
		timer := time.NewTimer(delay)
		defer timer.Stop()
		select {
		case <-timer.C:
		case <-s.done:
			return
		}
		s.enqueue(transactionID)
	}()
}

// enqueue hands a check to a worker. Once Run's context is gone the workers
// never drain the queue again, so the send is abandoned instead of stranding
// the timer goroutine.
func (s *Scheduler) enqueue(transactionID string) {
	select {
	case <-s.done:
		return
	default:
	}
	select {
	case s.queue <- transactionID:
	case <-s.done:
	}
}

// Run starts the worker pool and blocks queue consumption on ctx.
func (s *Scheduler) Run(ctx context.Context, reconciler port.PaymentReconciler, workers int) {
	go func() {
		<-ctx.Done()
		s.stop.Do(func() { close(s.done) })
	}()
	for i := 0; i < workers; i++ {
		go func() {
			for {
				select {
				case transactionID := <-s.queue:
					s.logger.Debug("Start payment check",
						zap.String("transaction", transactionID))

					err := reconciler.ReconcileByTransactionID(ctx, transactionID)
					if err != nil {
						if errors.Is(err, domain.ErrDataNotFound) {
							s.logger.Warn("Payment gone, dropping check",
								zap.String("transaction", transactionID))
							continue
						}
						s.logger.Error("Payment check failed, retrying",
							zap.String("transaction", transactionID), zap.Error(err))
						s.SchedulePaymentCheck(transactionID, retryDelay)
						continue
					}

					s.logger.Debug("Finished payment check",
						zap.String("transaction", transactionID))
				case <-ctx.Done():
					s.logger.Debug("Finished payment check worker")
					return
				}
			}
		}()
	}
}
