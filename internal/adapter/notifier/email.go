package notifier

import (
	"context"
	"fmt"

	"github.com/rwooga/paycore/internal/adapter/config"
	"github.com/rwooga/paycore/internal/core/port"
	"go.uber.org/zap"
	gomail "gopkg.in/gomail.v2"
)

var eventSubjects = map[port.NotificationEvent]string{
	port.EventOrderCreated:     "Your order %s has been received",
	port.EventPaymentSucceeded: "Payment %s confirmed",
	port.EventPaymentFailed:    "Payment %s failed",
	port.EventReturnRequested:  "Return request %s received",
	port.EventReturnApproved:   "Return %s approved",
	port.EventReturnRejected:   "Return %s rejected",
	port.EventRefundCompleted:  "Refund %s completed",
}

// EmailNotifier sends operational emails over SMTP. Delivery runs on its own
// goroutine and failures are logged, never returned: a lost email must not
// roll back a payment.
type EmailNotifier struct {
	cfg    *config.SMTP
	dialer *gomail.Dialer
	logger *zap.Logger
}

func NewEmailNotifier(cfg *config.SMTP, logger *zap.Logger) (*EmailNotifier, error) {
	return &EmailNotifier{
		cfg:    cfg,
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password),
		logger: logger,
	}, nil
}

func (n *EmailNotifier) Notify(_ context.Context, event port.NotificationEvent, reference string) {
	subject, known := eventSubjects[event]
	if !known {
		n.logger.Warn("Unknown notification event", zap.String("event", string(event)))
		return
	}

	if n.cfg.Host == "" {
		// No SMTP configured (local runs, tests): log and move on.
		n.logger.Info("Notification",
			zap.String("event", string(event)), zap.String("reference", reference))
		return
	}

	message := gomail.NewMessage()
	message.SetHeader("From", n.cfg.From)
	message.SetHeader("To", n.cfg.NotifyTo)
	message.SetHeader("Subject", fmt.Sprintf(subject, reference))
	message.SetBody("text/plain", fmt.Sprintf("Reference: %s", reference))

	go func() {
		if err := n.dialer.DialAndSend(message); err != nil {
			n.logger.Error("Send notification email",
				zap.String("event", string(event)),
				zap.String("reference", reference),
				zap.Error(err))
		}
	}()
}
