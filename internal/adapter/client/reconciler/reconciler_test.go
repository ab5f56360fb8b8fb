package reconciler_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/rwooga/paycore/internal/adapter/client/reconciler"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type recordingReconciler struct {
	mu    sync.Mutex
	seen  []string
	errs  map[string]int
	fired chan struct{}
}

func (r *recordingReconciler) ReconcileByTransactionID(_ context.Context, transactionID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seen = append(r.seen, transactionID)
	if r.errs[transactionID] > 0 {
		r.errs[transactionID]--
		return assert.AnError
	}
	select {
	case r.fired <- struct{}{}:
	default:
	}
	return nil
}

func TestScheduler_DeliversCheck(t *testing.T) {
	logger, _ := zap.NewProduction()
	s, err := reconciler.NewScheduler(logger)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	rec := &recordingReconciler{errs: map[string]int{}, fired: make(chan struct{}, 1)}
	s.Run(ctx, rec, 2)

	s.SchedulePaymentCheck("txn-1", 10*time.Millisecond)

	select {
	case <-rec.fired:
	case <-time.After(2 * time.Second):
		t.Fatal("check never delivered")
	}

	rec.mu.Lock()
	defer rec.mu.Unlock()
	assert.Contains(t, rec.seen, "txn-1")
}

func TestScheduler_RetriesOnError(t *testing.T) {
	logger, _ := zap.NewProduction()
	s, err := reconciler.NewScheduler(logger)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// First attempt fails, the retry succeeds.
	rec := &recordingReconciler{errs: map[string]int{"txn-2": 1}, fired: make(chan struct{}, 1)}
	s.Run(ctx, rec, 1)

	s.SchedulePaymentCheck("txn-2", time.Millisecond)

	select {
	case <-rec.fired:
	case <-time.After(10 * time.Second):
		t.Fatal("retry never delivered")
	}

	rec.mu.Lock()
	defer rec.mu.Unlock()
	assert.GreaterOrEqual(t, len(rec.seen), 2)
}
