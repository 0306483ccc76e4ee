package usecases

import (
	"context"
	"sort"

	"campushub/internal/application/order/dto"
	"campushub/internal/domain/order"
	"campushub/internal/shared/errors"
	"campushub/internal/shared/logger"
)

type ListOrdersQuery struct {
	StudentUsername string
}

type ListOrdersResult struct {
	Orders []dto.OrderDTO
	Total  int64
}

// ListOrdersUseCase returns the student's completed orders, newest first.
type ListOrdersUseCase struct {
	orderRepo order.OrderRepository
	logger    logger.Interface
}

func NewListOrdersUseCase(orderRepo order.OrderRepository, logger logger.Interface) *ListOrdersUseCase {
	return &ListOrdersUseCase{
		orderRepo: orderRepo,
		logger:    logger,
	}
}

func (uc *ListOrdersUseCase) Execute(ctx context.Context, query ListOrdersQuery) (*ListOrdersResult, error) {
	if query.StudentUsername == "" {
		return nil, errors.NewValidationError("student username is required")
	}

	orders, err := uc.orderRepo.ListCompleted(ctx, query.StudentUsername)
	if err != nil {
		uc.logger.Errorw("failed to list orders", "student", query.StudentUsername, "error", err)
		return nil, errors.NewInternalError("failed to list orders")
	}

	sort.SliceStable(orders, func(i, j int) bool {
		return orders[i].OrderedAt().After(orders[j].OrderedAt())
	})

	items := make([]dto.OrderDTO, 0, len(orders))
	for _, o := range orders {
		items = append(items, *dto.ToOrderDTO(o))
	}

	return &ListOrdersResult{
		Orders: items,
		Total:  int64(len(items)),
	}, nil
}
