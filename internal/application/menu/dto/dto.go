package dto

import (
	"time"

	"campushub/internal/domain/menu"
	"campushub/internal/shared/calendar"
)

type MenuItemDTO struct {
	ID            uint      `json:"id"`
	Name          string    `json:"name"`
	Category      string    `json:"category"`
	CategoryLabel string    `json:"category_label"`
	Price         float64   `json:"price"`
	Description   string    `json:"description"`
	AvailableOn   string    `json:"available_on"`
	IsToday       bool      `json:"is_today"`
	IsTomorrow    bool      `json:"is_tomorrow"`
	ImageData     string    `json:"image_data,omitempty"`
	CreatedBy     string    `json:"created_by"`
	CreatedAt     time.Time `json:"created_at"`
}

func ToMenuItemDTO(item *menu.Item) MenuItemDTO {
	return MenuItemDTO{
		ID:            item.ID(),
		Name:          item.Name(),
		Category:      item.Category().String(),
		CategoryLabel: item.Category().DisplayName(),
		Price:         item.Price(),
		Description:   item.Description(),
		AvailableOn:   calendar.FormatDate(item.AvailableOn()),
		IsToday:       item.IsAvailableToday(),
		IsTomorrow:    item.IsAvailableTomorrow(),
		ImageData:     item.ImageData(),
		CreatedBy:     item.CreatedBy(),
		CreatedAt:     item.CreatedAt(),
	}
}
