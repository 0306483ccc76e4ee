package order

import (
	"time"

	"campushub/internal/shared/calendar"
	"campushub/internal/shared/errors"
	"campushub/internal/shared/id"
)

type Status string

const (
	StatusPending Status = "pending"
	StatusPaid    Status = "paid"
)

func (s Status) String() string {
	return string(s)
}

// Order is a cafeteria food order. It snapshots the item's name and price at
// checkout time so later menu edits do not change what the student owes.
// Each student holds at most one pending order; starting a new checkout
// replaces it.
type Order struct {
	number          string
	studentUsername string
	itemID          uint
	itemName        string
	unitPrice       float64
	quantity        int
	total           float64
	status          Status
	orderedAt       time.Time
	paidAt          *time.Time
}

// NewOrder creates a pending order for the given item snapshot. Quantities
// below one are clamped to one.
func NewOrder(studentUsername string, itemID uint, itemName string, unitPrice float64, quantity int) (*Order, error) {
	if studentUsername == "" {
		return nil, errors.NewValidationError("Student username is required")
	}
	if itemName == "" {
		return nil, errors.NewValidationError("Item name is required")
	}
	if unitPrice < 0 {
		return nil, errors.NewValidationError("Unit price must be zero or greater")
	}
	if quantity < 1 {
		quantity = 1
	}

	number, err := id.NewOrderNumber()
	if err != nil {
		return nil, errors.NewInternalError("failed to generate order number", err.Error())
	}

	return &Order{
		number:          number,
		studentUsername: studentUsername,
		itemID:          itemID,
		itemName:        itemName,
		unitPrice:       unitPrice,
		quantity:        quantity,
		total:           unitPrice * float64(quantity),
		status:          StatusPending,
		orderedAt:       calendar.NowUTC(),
	}, nil
}

// ReconstructOrder recreates an order from persistent storage.
func ReconstructOrder(
	number string,
	studentUsername string,
	itemID uint,
	itemName string,
	unitPrice float64,
	quantity int,
	total float64,
	status Status,
	orderedAt time.Time,
	paidAt *time.Time,
) *Order {
	return &Order{
		number:          number,
		studentUsername: studentUsername,
		itemID:          itemID,
		itemName:        itemName,
		unitPrice:       unitPrice,
		quantity:        quantity,
		total:           total,
		status:          status,
		orderedAt:       orderedAt,
		paidAt:          paidAt,
	}
}

func (o *Order) Number() string          { return o.number }
func (o *Order) StudentUsername() string { return o.studentUsername }
func (o *Order) ItemID() uint            { return o.itemID }
func (o *Order) ItemName() string        { return o.itemName }
func (o *Order) UnitPrice() float64      { return o.unitPrice }
func (o *Order) Quantity() int           { return o.quantity }
func (o *Order) Total() float64          { return o.total }
func (o *Order) Status() Status          { return o.status }
func (o *Order) OrderedAt() time.Time    { return o.orderedAt }
func (o *Order) PaidAt() *time.Time      { return o.paidAt }

func (o *Order) IsPending() bool {
	return o.status == StatusPending
}

// MarkPaid records a completed payment. Paying an already-paid order is
// rejected.
func (o *Order) MarkPaid() error {
	if o.status == StatusPaid {
		return errors.NewConflictError("Order is already paid")
	}
	now := calendar.NowUTC()
	o.status = StatusPaid
	o.paidAt = &now
	return nil
}
