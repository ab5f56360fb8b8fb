package domain

import (
	"time"

	"github.com/google/uuid"
)

type ReturnStatus string

const (
	ReturnStatusRequested ReturnStatus = "REQUESTED"
	ReturnStatusApproved  ReturnStatus = "APPROVED"
	ReturnStatusRejected  ReturnStatus = "REJECTED"
	ReturnStatusCancelled ReturnStatus = "CANCELLED"
	ReturnStatusCompleted ReturnStatus = "COMPLETED"
)

func (s ReturnStatus) IsActive() bool {
	return s == ReturnStatusRequested || s == ReturnStatusApproved
}

type Return struct {
	ID                    uuid.UUID
	ReturnNumber          string
	OrderID               uuid.UUID
	UserID                uint64
	Reason                string
	DetailedReason        string
	Status                ReturnStatus
	RequestedRefundAmount Money
	ApprovedRefundAmount  *Money
	RejectionReason       string
	CreatedAt             time.Time
	UpdatedAt             time.Time
	ApprovedAt            *time.Time
}

func (r *Return) Approve(amount Money, approvedAt time.Time) error {
	if r.Status != ReturnStatusRequested {
		return ErrInvalidStateTransition
	}
	r.Status = ReturnStatusApproved
	r.ApprovedRefundAmount = &amount
	r.ApprovedAt = &approvedAt
	return nil
}

func (r *Return) Reject(reason string) error {
	if r.Status != ReturnStatusRequested {
		return ErrInvalidStateTransition
	}
	if reason == "" {
		return ErrRejectionReasonRequired
	}
	r.Status = ReturnStatusRejected
	r.RejectionReason = reason
	return nil
}

// Complete marks an approved return fulfilled. It moves no money; refund
// issuance is a separate explicit step.
func (r *Return) Complete() error {
	if r.Status != ReturnStatusApproved {
		return ErrInvalidStateTransition
	}
	r.Status = ReturnStatusCompleted
	return nil
}

func (r *Return) Cancel() error {
	if r.Status != ReturnStatusRequested {
		return ErrInvalidStateTransition
	}
	r.Status = ReturnStatusCancelled
	return nil
}

type RefundStatus string

const (
	RefundStatusPending   RefundStatus = "PENDING"
	RefundStatusCompleted RefundStatus = "COMPLETED"
	RefundStatusFailed    RefundStatus = "FAILED"
)

type Refund struct {
	ID                    uuid.UUID
	RefundNumber          string
	OrderID               uuid.UUID
	UserID                uint64
	Amount                Money
	Status                RefundStatus
	Reason                string
	ProviderTransactionID string
	CreatedAt             time.Time
	UpdatedAt             time.Time
	CompletedAt           *time.Time
}

func (r *Refund) Complete(providerTransactionID string, completedAt time.Time) error {
	if r.Status != RefundStatusPending {
		return ErrInvalidStateTransition
	}
	r.Status = RefundStatusCompleted
	r.ProviderTransactionID = providerTransactionID
	r.CompletedAt = &completedAt
	return nil
}

func (r *Refund) Fail() error {
	if r.Status != RefundStatusPending {
		return ErrInvalidStateTransition
	}
	r.Status = RefundStatusFailed
	return nil
}
