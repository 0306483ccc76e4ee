package usecases

import (
	"context"

	"campushub/internal/application/menu/dto"
	"campushub/internal/domain/menu"
	"campushub/internal/shared/calendar"
	"campushub/internal/shared/errors"
	"campushub/internal/shared/logger"
	"campushub/internal/shared/sanitize"
)

type AddItemCommand struct {
	Name        string
	Category    string
	Price       float64
	Description string
	// AvailableOn is a YYYY-MM-DD calendar date.
	AvailableOn string
	ImageData   string
	CreatedBy   string
}

type AddItemUseCase struct {
	itemRepo menu.ItemRepository
	logger   logger.Interface
}

func NewAddItemUseCase(itemRepo menu.ItemRepository, logger logger.Interface) *AddItemUseCase {
	return &AddItemUseCase{
		itemRepo: itemRepo,
		logger:   logger,
	}
}

func (uc *AddItemUseCase) Execute(ctx context.Context, cmd AddItemCommand) (*dto.MenuItemDTO, error) {
	uc.logger.Infow("executing add menu item use case", "name", cmd.Name, "category", cmd.Category)

	availableOn, err := calendar.ParseDate(cmd.AvailableOn)
	if err != nil {
		return nil, errors.NewValidationError("Availability date must be in YYYY-MM-DD format")
	}

	item, err := menu.NewItem(
		sanitize.Text(cmd.Name),
		cmd.Category,
		cmd.Price,
		sanitize.Text(cmd.Description),
		availableOn,
		cmd.ImageData,
		cmd.CreatedBy,
	)
	if err != nil {
		uc.logger.Warnw("invalid menu item", "name", cmd.Name, "error", err)
		return nil, err
	}

	if err := uc.itemRepo.Save(ctx, item); err != nil {
		uc.logger.Errorw("failed to save menu item", "name", cmd.Name, "error", err)
		return nil, errors.NewInternalError("failed to save menu item")
	}

	uc.logger.Infow("menu item added", "item_id", item.ID(), "name", item.Name())

	result := dto.ToMenuItemDTO(item)
	return &result, nil
}
