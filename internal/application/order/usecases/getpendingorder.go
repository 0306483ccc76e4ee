package usecases

import (
	"context"

	"campushub/internal/application/order/dto"
	"campushub/internal/domain/order"
	"campushub/internal/shared/errors"
	"campushub/internal/shared/logger"
)

type GetPendingOrderQuery struct {
	StudentUsername string
}

type PendingOrderResult struct {
	// Order is nil when the student has no pending order.
	Order     *dto.OrderDTO
	UPIIntent string
}

type GetPendingOrderUseCase struct {
	orderRepo  order.OrderRepository
	upiBuilder UPIIntentBuilder
	logger     logger.Interface
}

func NewGetPendingOrderUseCase(
	orderRepo order.OrderRepository,
	upiBuilder UPIIntentBuilder,
	logger logger.Interface,
) *GetPendingOrderUseCase {
	return &GetPendingOrderUseCase{
		orderRepo:  orderRepo,
		upiBuilder: upiBuilder,
		logger:     logger,
	}
}

func (uc *GetPendingOrderUseCase) Execute(ctx context.Context, query GetPendingOrderQuery) (*PendingOrderResult, error) {
	if query.StudentUsername == "" {
		return nil, errors.NewValidationError("student username is required")
	}

	o, err := uc.orderRepo.FindPending(ctx, query.StudentUsername)
	if err != nil {
		if errors.IsNotFoundError(err) {
			return &PendingOrderResult{}, nil
		}
		uc.logger.Errorw("failed to load pending order", "student", query.StudentUsername, "error", err)
		return nil, errors.NewInternalError("failed to load pending order")
	}

	return &PendingOrderResult{
		Order:     dto.ToOrderDTO(o),
		UPIIntent: uc.upiBuilder.Intent(o.Number(), o.Total()),
	}, nil
}
