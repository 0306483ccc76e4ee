package usecases

import (
	"context"
	"fmt"

	"campushub/internal/application/order/dto"
	"campushub/internal/domain/menu"
	"campushub/internal/domain/order"
	"campushub/internal/shared/errors"
	"campushub/internal/shared/logger"
)

type CheckoutCommand struct {
	StudentUsername string
	ItemID          uint
	Quantity        int
}

type CheckoutResult struct {
	Order *dto.OrderDTO
	// UPIIntent is the upi://pay link for the order total.
	UPIIntent string
}

// CheckoutUseCase creates a pending order for a menu item. A student holds at
// most one pending order: checking out again replaces the previous one.
type CheckoutUseCase struct {
	itemRepo   menu.ItemRepository
	orderRepo  order.OrderRepository
	upiBuilder UPIIntentBuilder
	logger     logger.Interface
}

func NewCheckoutUseCase(
	itemRepo menu.ItemRepository,
	orderRepo order.OrderRepository,
	upiBuilder UPIIntentBuilder,
	logger logger.Interface,
) *CheckoutUseCase {
	return &CheckoutUseCase{
		itemRepo:   itemRepo,
		orderRepo:  orderRepo,
		upiBuilder: upiBuilder,
		logger:     logger,
	}
}

func (uc *CheckoutUseCase) Execute(ctx context.Context, cmd CheckoutCommand) (*CheckoutResult, error) {
	uc.logger.Infow("executing checkout use case",
		"student", cmd.StudentUsername, "item_id", cmd.ItemID, "quantity", cmd.Quantity)

	if cmd.StudentUsername == "" {
		return nil, errors.NewValidationError("student username is required")
	}
	if cmd.ItemID == 0 {
		return nil, errors.NewValidationError("item ID is required")
	}

	item, err := uc.itemRepo.FindByID(ctx, cmd.ItemID)
	if err != nil {
		uc.logger.Warnw("menu item not found at checkout", "item_id", cmd.ItemID, "error", err)
		return nil, errors.NewNotFoundError(fmt.Sprintf("menu item %d not found", cmd.ItemID))
	}

	o, err := order.NewOrder(cmd.StudentUsername, item.ID(), item.Name(), item.Price(), cmd.Quantity)
	if err != nil {
		return nil, err
	}

	if err := uc.orderRepo.SavePending(ctx, o); err != nil {
		uc.logger.Errorw("failed to save pending order", "student", cmd.StudentUsername, "error", err)
		return nil, errors.NewInternalError("failed to save order")
	}

	uc.logger.Infow("pending order created",
		"order_number", o.Number(), "student", cmd.StudentUsername, "total", o.Total())

	return &CheckoutResult{
		Order:     dto.ToOrderDTO(o),
		UPIIntent: uc.upiBuilder.Intent(o.Number(), o.Total()),
	}, nil
}
