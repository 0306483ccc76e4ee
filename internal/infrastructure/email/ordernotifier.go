package email

import (
	"context"
	"fmt"

	"gopkg.in/gomail.v2"

	"campushub/internal/shared/config"
	"campushub/internal/shared/logger"
)

// OrderNotifier emails the order confirmation to the cafeteria counter
// mailbox. Students have no registered address, so the recipient username is
// carried in the subject instead.
type OrderNotifier struct {
	cfg    *config.NotifierConfig
	logger logger.Interface
}

func NewOrderNotifier(cfg *config.NotifierConfig, logger logger.Interface) *OrderNotifier {
	return &OrderNotifier{
		cfg:    cfg,
		logger: logger,
	}
}

func (n *OrderNotifier) SendOrderConfirmation(ctx context.Context, recipient, message string) error {
	if !n.cfg.Enabled {
		n.logger.Debugw("notifier disabled, confirmation logged only", "recipient", recipient)
		return nil
	}

	m := gomail.NewMessage()
	m.SetAddressHeader("From", n.cfg.FromAddress, n.cfg.FromName)
	m.SetHeader("To", n.cfg.ToAddress)
	m.SetHeader("Subject", fmt.Sprintf("Food order confirmation for %s", recipient))
	m.SetBody("text/plain", message)

	dialer := gomail.NewDialer(n.cfg.SMTPHost, n.cfg.SMTPPort, n.cfg.SMTPUser, n.cfg.SMTPPass)
	if err := dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send order confirmation: %w", err)
	}
	return nil
}
