package port

import "context"

type NotificationEvent string

const (
	EventOrderCreated     NotificationEvent = "order_created"
	EventPaymentSucceeded NotificationEvent = "payment_succeeded"
	EventPaymentFailed    NotificationEvent = "payment_failed"
	EventReturnRequested  NotificationEvent = "return_requested"
	EventReturnApproved   NotificationEvent = "return_approved"
	EventReturnRejected   NotificationEvent = "return_rejected"
	EventRefundCompleted  NotificationEvent = "refund_completed"
)

//go:generate mockgen -source=notifier.go -destination=mock/notifier.go -package=mock
type Notifier interface {
	// Notify is fire-and-forget: delivery failures are the adapter's problem
	// and must never abort the mutation that triggered them.
	Notify(ctx context.Context, event NotificationEvent, reference string)
}
