package usecases

import (
	"context"

	"campushub/internal/application/menu/dto"
	"campushub/internal/domain/menu"
	"campushub/internal/domain/menu/valueobjects"
	"campushub/internal/shared/errors"
	"campushub/internal/shared/logger"
)

// Day buckets for the menu listing.
const (
	DayAll      = "all"
	DayToday    = "today"
	DayTomorrow = "tomorrow"
)

type ListMenuQuery struct {
	// Category narrows to one menu category; empty means all.
	Category string
	// Day is one of the Day* buckets; empty defaults to all.
	Day string
	// Search is a case-insensitive substring matched against name and
	// description.
	Search string
}

type ListMenuResult struct {
	Items []dto.MenuItemDTO
	Total int64
}

type ListMenuUseCase struct {
	itemRepo menu.ItemRepository
	logger   logger.Interface
}

func NewListMenuUseCase(itemRepo menu.ItemRepository, logger logger.Interface) *ListMenuUseCase {
	return &ListMenuUseCase{
		itemRepo: itemRepo,
		logger:   logger,
	}
}

func (uc *ListMenuUseCase) Execute(ctx context.Context, query ListMenuQuery) (*ListMenuResult, error) {
	filter := menu.ItemFilter{}
	if query.Category != "" {
		category, err := valueobjects.NewCategory(query.Category)
		if err != nil {
			return nil, errors.NewValidationError("invalid category filter")
		}
		filter.Category = &category
	}

	day := query.Day
	if day == "" {
		day = DayAll
	}
	switch day {
	case DayAll, DayToday, DayTomorrow:
	default:
		return nil, errors.NewValidationError("invalid day filter")
	}

	items, err := uc.itemRepo.List(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to list menu items", "error", err)
		return nil, errors.NewInternalError("failed to list menu items")
	}

	results := make([]dto.MenuItemDTO, 0, len(items))
	for _, item := range items {
		if day == DayToday && !item.IsAvailableToday() {
			continue
		}
		if day == DayTomorrow && !item.IsAvailableTomorrow() {
			continue
		}
		if !item.MatchesSearch(query.Search) {
			continue
		}
		results = append(results, dto.ToMenuItemDTO(item))
	}

	return &ListMenuResult{
		Items: results,
		Total: int64(len(results)),
	}, nil
}
