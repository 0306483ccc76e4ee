package mappers

import (
	"time"

	"gorm.io/datatypes"

	"campushub/internal/domain/menu"
	vo "campushub/internal/domain/menu/valueobjects"
	"campushub/internal/infrastructure/persistence/models"
)

type MenuItemMapper interface {
	ToModel(item *menu.Item) *models.MenuItemModel
	ToDomain(model *models.MenuItemModel) (*menu.Item, error)
}

type MenuItemMapperImpl struct{}

func NewMenuItemMapper() MenuItemMapper {
	return &MenuItemMapperImpl{}
}

func (m *MenuItemMapperImpl) ToModel(item *menu.Item) *models.MenuItemModel {
	return &models.MenuItemModel{
		ID:          item.ID(),
		Name:        item.Name(),
		Category:    item.Category().String(),
		Price:       item.Price(),
		Description: item.Description(),
		AvailableOn: datatypes.Date(item.AvailableOn()),
		ImageData:   item.ImageData(),
		CreatedBy:   item.CreatedBy(),
		CreatedAt:   item.CreatedAt().UnixMilli(),
	}
}

func (m *MenuItemMapperImpl) ToDomain(model *models.MenuItemModel) (*menu.Item, error) {
	category, err := vo.NewCategory(model.Category)
	if err != nil {
		return nil, err
	}

	return menu.ReconstructItem(
		model.ID,
		model.Name,
		category,
		model.Price,
		model.Description,
		time.Time(model.AvailableOn),
		model.ImageData,
		model.CreatedBy,
		time.UnixMilli(model.CreatedAt).UTC(),
	), nil
}
