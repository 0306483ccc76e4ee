package order

import (
	"campushub/internal/application/order/usecases"
)

type CheckoutRequest struct {
	ItemID   uint `json:"item_id" binding:"required"`
	Quantity int  `json:"quantity"`
}

func (r *CheckoutRequest) ToCommand(username string) usecases.CheckoutCommand {
	return usecases.CheckoutCommand{
		StudentUsername: username,
		ItemID:          r.ItemID,
		Quantity:        r.Quantity,
	}
}
