package usecases

import (
	"context"

	"campushub/internal/domain/menu"
	"campushub/internal/shared/errors"
	"campushub/internal/shared/logger"
)

type DeleteItemCommand struct {
	ItemID uint
}

type DeleteItemResult struct {
	ItemID uint
}

// DeleteItemUseCase removes a menu item. Deleting an ID that does not exist
// succeeds without effect, so retried deletes stay safe.
type DeleteItemUseCase struct {
	itemRepo menu.ItemRepository
	logger   logger.Interface
}

func NewDeleteItemUseCase(itemRepo menu.ItemRepository, logger logger.Interface) *DeleteItemUseCase {
	return &DeleteItemUseCase{
		itemRepo: itemRepo,
		logger:   logger,
	}
}

func (uc *DeleteItemUseCase) Execute(ctx context.Context, cmd DeleteItemCommand) (*DeleteItemResult, error) {
	if cmd.ItemID == 0 {
		return nil, errors.NewValidationError("item ID is required")
	}

	if err := uc.itemRepo.Delete(ctx, cmd.ItemID); err != nil {
		uc.logger.Errorw("failed to delete menu item", "item_id", cmd.ItemID, "error", err)
		return nil, errors.NewInternalError("failed to delete menu item")
	}

	uc.logger.Infow("menu item deleted", "item_id", cmd.ItemID)
	return &DeleteItemResult{ItemID: cmd.ItemID}, nil
}
