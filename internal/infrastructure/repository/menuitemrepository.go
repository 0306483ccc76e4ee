package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"campushub/internal/domain/menu"
	"campushub/internal/infrastructure/persistence/mappers"
	"campushub/internal/infrastructure/persistence/models"
	"campushub/internal/shared/db"
	"campushub/internal/shared/errors"
)

type MenuItemRepository struct {
	db     *gorm.DB
	mapper mappers.MenuItemMapper
}

func NewMenuItemRepository(database *gorm.DB) *MenuItemRepository {
	return &MenuItemRepository{
		db:     database,
		mapper: mappers.NewMenuItemMapper(),
	}
}

func (r *MenuItemRepository) Save(ctx context.Context, item *menu.Item) error {
	model := r.mapper.ToModel(item)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save menu item: %w", err)
	}

	item.SetID(model.ID)
	return nil
}

func (r *MenuItemRepository) FindByID(ctx context.Context, id uint) (*menu.Item, error) {
	var model models.MenuItemModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("menu item not found")
		}
		return nil, fmt.Errorf("failed to find menu item: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

// List returns menu items newest first.
func (r *MenuItemRepository) List(ctx context.Context, filter menu.ItemFilter) ([]*menu.Item, error) {
	tx := db.GetTxFromContext(ctx, r.db).Model(&models.MenuItemModel{})

	if filter.Category != nil {
		tx = tx.Where("category = ?", filter.Category.String())
	}

	var rows []models.MenuItemModel
	if err := tx.Order("created_at DESC, id DESC").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list menu items: %w", err)
	}

	items := make([]*menu.Item, 0, len(rows))
	for i := range rows {
		item, err := r.mapper.ToDomain(&rows[i])
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	return items, nil
}

// Delete removes a menu item. Unknown IDs are a no-op.
func (r *MenuItemRepository) Delete(ctx context.Context, id uint) error {
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Delete(&models.MenuItemModel{}, id).Error; err != nil {
		return fmt.Errorf("failed to delete menu item: %w", err)
	}
	return nil
}

func (r *MenuItemRepository) Count(ctx context.Context) (int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var count int64
	if err := tx.Model(&models.MenuItemModel{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count menu items: %w", err)
	}
	return count, nil
}
