package domain_test

import (
	"testing"
	"time"

	"github.com/rwooga/paycore/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPayment_Transition(t *testing.T) {
	now := time.Now()

	p := &domain.Payment{Status: domain.PaymentStatusPending}
	require.NoError(t, p.Transition(domain.PaymentStatusProcessing, now))
	require.NoError(t, p.Transition(domain.PaymentStatusSuccessful, now))
	assert.NotNil(t, p.CompletedAt)

	// Replaying the current terminal status is a no-op.
	assert.NoError(t, p.Transition(domain.PaymentStatusSuccessful, now))

	// A different terminal status is a conflict.
	assert.ErrorIs(t, p.Transition(domain.PaymentStatusFailed, now), domain.ErrInvalidStateTransition)
	assert.Equal(t, domain.PaymentStatusSuccessful, p.Status)
}

func TestPayment_FailedIsSticky(t *testing.T) {
	p := &domain.Payment{Status: domain.PaymentStatusFailed}
	err := p.Transition(domain.PaymentStatusSuccessful, time.Now())
	assert.ErrorIs(t, err, domain.ErrInvalidStateTransition)
}

func TestPayment_Expire(t *testing.T) {
	now := time.Now()

	p := &domain.Payment{
		Status:    domain.PaymentStatusProcessing,
		ExpiresAt: now.Add(-time.Minute),
	}
	assert.True(t, p.Expire(now))
	assert.Equal(t, domain.PaymentStatusExpired, p.Status)

	// Already terminal: no change.
	assert.False(t, p.Expire(now))

	fresh := &domain.Payment{
		Status:    domain.PaymentStatusPending,
		ExpiresAt: now.Add(time.Minute),
	}
	assert.False(t, fresh.Expire(now))
	assert.Equal(t, domain.PaymentStatusPending, fresh.Status)
}

func TestPayment_Cancel(t *testing.T) {
	p := &domain.Payment{Status: domain.PaymentStatusPending}
	require.NoError(t, p.Cancel())
	assert.Equal(t, domain.PaymentStatusCancelled, p.Status)

	assert.ErrorIs(t, p.Cancel(), domain.ErrInvalidStateTransition)
}

func TestPaymentStatus_IsTerminal(t *testing.T) {
	assert.False(t, domain.PaymentStatusPending.IsTerminal())
	assert.False(t, domain.PaymentStatusProcessing.IsTerminal())
	assert.True(t, domain.PaymentStatusSuccessful.IsTerminal())
	assert.True(t, domain.PaymentStatusFailed.IsTerminal())
	assert.True(t, domain.PaymentStatusCancelled.IsTerminal())
	assert.True(t, domain.PaymentStatusExpired.IsTerminal())
}
