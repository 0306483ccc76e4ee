package dto

import (
	"time"

	"campushub/internal/domain/order"
)

type OrderDTO struct {
	Number          string     `json:"number"`
	StudentUsername string     `json:"student_username"`
	ItemID          uint       `json:"item_id"`
	ItemName        string     `json:"item_name"`
	UnitPrice       float64    `json:"unit_price"`
	Quantity        int        `json:"quantity"`
	Total           float64    `json:"total"`
	Status          string     `json:"status"`
	OrderedAt       time.Time  `json:"ordered_at"`
	PaidAt          *time.Time `json:"paid_at,omitempty"`
}

func ToOrderDTO(o *order.Order) *OrderDTO {
	if o == nil {
		return nil
	}
	return &OrderDTO{
		Number:          o.Number(),
		StudentUsername: o.StudentUsername(),
		ItemID:          o.ItemID(),
		ItemName:        o.ItemName(),
		UnitPrice:       o.UnitPrice(),
		Quantity:        o.Quantity(),
		Total:           o.Total(),
		Status:          o.Status().String(),
		OrderedAt:       o.OrderedAt(),
		PaidAt:          o.PaidAt(),
	}
}
