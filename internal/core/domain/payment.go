package domain

import (
	"time"

	"github.com/google/uuid"
)

type PaymentStatus string

const (
	PaymentStatusPending    PaymentStatus = "PENDING"
	PaymentStatusProcessing PaymentStatus = "PROCESSING"
	PaymentStatusSuccessful PaymentStatus = "SUCCESSFUL"
	PaymentStatusFailed     PaymentStatus = "FAILED"
	PaymentStatusCancelled  PaymentStatus = "CANCELLED"
	PaymentStatusExpired    PaymentStatus = "EXPIRED"
)

func (s PaymentStatus) IsTerminal() bool {
	switch s {
	case PaymentStatusSuccessful, PaymentStatusFailed, PaymentStatusCancelled, PaymentStatusExpired:
		return true
	}
	return false
}

type PaymentMethod string

const (
	PaymentMethodMomo PaymentMethod = "momo"
	PaymentMethodCard PaymentMethod = "card"
)

type Payment struct {
	ID                uuid.UUID
	TransactionID     string
	OrderID           uuid.UUID
	UserID            uint64
	Amount            Money
	Method            PaymentMethod
	Provider          string
	PhoneNumber       string
	CardNumberMasked  string
	CardType          string
	Status            PaymentStatus
	FailureReason     string
	ProviderReference string
	IdempotencyKey    string
	CreatedAt         time.Time
	UpdatedAt         time.Time
	CompletedAt       *time.Time
	ExpiresAt         time.Time
}

// Transition applies a status change under the machine's rules: re-applying
// the current status is a no-op, any other transition out of a terminal status
// is rejected. completed_at is stamped on settlement.
func (p *Payment) Transition(next PaymentStatus, now time.Time) error {
	if p.Status == next {
		return nil
	}
	if p.Status.IsTerminal() {
		return ErrInvalidStateTransition
	}
	p.Status = next
	if next == PaymentStatusSuccessful {
		p.CompletedAt = &now
	}
	return nil
}

// Expire lazily times out a non-terminal payment past its deadline. Returns
// true when the status actually changed.
func (p *Payment) Expire(now time.Time) bool {
	if p.Status.IsTerminal() || !now.After(p.ExpiresAt) {
		return false
	}
	p.Status = PaymentStatusExpired
	return true
}

func (p *Payment) Cancel() error {
	if p.Status.IsTerminal() {
		return ErrInvalidStateTransition
	}
	p.Status = PaymentStatusCancelled
	return nil
}
