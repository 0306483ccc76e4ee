package order

import "context"

// OrderRepository persists cafeteria orders. A student has a single pending
// slot: SavePending replaces any existing pending order for that student.
// Completed orders accumulate newest-first in ListCompleted.
type OrderRepository interface {
	SavePending(ctx context.Context, o *Order) error
	FindPending(ctx context.Context, studentUsername string) (*Order, error)
	DeletePending(ctx context.Context, studentUsername string) error
	AppendCompleted(ctx context.Context, o *Order) error
	ListCompleted(ctx context.Context, studentUsername string) ([]*Order, error)
}
