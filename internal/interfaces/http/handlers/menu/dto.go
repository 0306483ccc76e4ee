package menu

import (
	"campushub/internal/application/menu/usecases"
)

type AddItemRequest struct {
	Name        string  `json:"name" validate:"required"`
	Category    string  `json:"category" validate:"required"`
	Price       float64 `json:"price" validate:"required"`
	Description string  `json:"description"`
	AvailableOn string  `json:"available_on" validate:"required"`
	ImageData   string  `json:"image_data"`
}

func (r *AddItemRequest) ToCommand(createdBy string) usecases.AddItemCommand {
	return usecases.AddItemCommand{
		Name:        r.Name,
		Category:    r.Category,
		Price:       r.Price,
		Description: r.Description,
		AvailableOn: r.AvailableOn,
		ImageData:   r.ImageData,
		CreatedBy:   createdBy,
	}
}
