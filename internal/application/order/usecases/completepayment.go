package usecases

import (
	"context"
	"fmt"

	"campushub/internal/application/order/dto"
	"campushub/internal/domain/order"
	"campushub/internal/shared/db"
	"campushub/internal/shared/errors"
	"campushub/internal/shared/logger"
)

type CompletePaymentCommand struct {
	StudentUsername string
}

type CompletePaymentResult struct {
	Order *dto.OrderDTO
	// ConfirmationMessage is the counter-ready text also sent through the
	// notifier.
	ConfirmationMessage string
}

// CompletePaymentUseCase marks the student's pending order as paid, moves it
// to the completed list and clears the pending slot.
type CompletePaymentUseCase struct {
	orderRepo order.OrderRepository
	notifier  ConfirmationNotifier
	txManager db.Transactor
	logger    logger.Interface
}

func NewCompletePaymentUseCase(
	orderRepo order.OrderRepository,
	notifier ConfirmationNotifier,
	txManager db.Transactor,
	logger logger.Interface,
) *CompletePaymentUseCase {
	return &CompletePaymentUseCase{
		orderRepo: orderRepo,
		notifier:  notifier,
		txManager: txManager,
		logger:    logger,
	}
}

func (uc *CompletePaymentUseCase) Execute(ctx context.Context, cmd CompletePaymentCommand) (*CompletePaymentResult, error) {
	if cmd.StudentUsername == "" {
		return nil, errors.NewValidationError("student username is required")
	}

	o, err := uc.orderRepo.FindPending(ctx, cmd.StudentUsername)
	if err != nil {
		uc.logger.Warnw("no pending order to pay", "student", cmd.StudentUsername, "error", err)
		return nil, errors.NewNotFoundError("no pending order found")
	}

	if err := o.MarkPaid(); err != nil {
		return nil, err
	}

	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.orderRepo.AppendCompleted(txCtx, o); err != nil {
			return err
		}
		return uc.orderRepo.DeletePending(txCtx, cmd.StudentUsername)
	})
	if err != nil {
		uc.logger.Errorw("failed to complete payment", "order_number", o.Number(), "error", err)
		return nil, errors.NewInternalError("failed to complete payment")
	}

	message := ConfirmationMessage(o)

	if uc.notifier != nil {
		if err := uc.notifier.SendOrderConfirmation(ctx, cmd.StudentUsername, message); err != nil {
			uc.logger.Warnw("order confirmation delivery failed",
				"order_number", o.Number(), "error", err)
		}
	}

	uc.logger.Infow("payment completed", "order_number", o.Number(), "student", cmd.StudentUsername)

	return &CompletePaymentResult{
		Order:               dto.ToOrderDTO(o),
		ConfirmationMessage: message,
	}, nil
}

// ConfirmationMessage renders the counter-ready confirmation text for a paid
// order.
func ConfirmationMessage(o *order.Order) string {
	return fmt.Sprintf(
		"FOOD ORDER CONFIRMED\n\nOrder: %s\nItem: %s\nQuantity: %d\nAmount: ₹%.2f\n\nYour order will be ready in 15-20 minutes.\n\nThank you!",
		o.Number(), o.ItemName(), o.Quantity(), o.Total())
}
