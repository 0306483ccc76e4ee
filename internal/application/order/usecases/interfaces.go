package usecases

import (
	"context"
)

// UPIIntentBuilder renders the upi://pay deep link a student scans or taps to
// pay for an order.
type UPIIntentBuilder interface {
	Intent(orderNumber string, amount float64) string
}

// ConfirmationNotifier delivers the order-ready confirmation. Delivery is
// best effort; payment completion never fails on a notifier error.
type ConfirmationNotifier interface {
	SendOrderConfirmation(ctx context.Context, recipient, message string) error
}

type CheckoutExecutor interface {
	Execute(ctx context.Context, cmd CheckoutCommand) (*CheckoutResult, error)
}

type CompletePaymentExecutor interface {
	Execute(ctx context.Context, cmd CompletePaymentCommand) (*CompletePaymentResult, error)
}

type GetPendingOrderExecutor interface {
	Execute(ctx context.Context, query GetPendingOrderQuery) (*PendingOrderResult, error)
}

type ListOrdersExecutor interface {
	Execute(ctx context.Context, query ListOrdersQuery) (*ListOrdersResult, error)
}
