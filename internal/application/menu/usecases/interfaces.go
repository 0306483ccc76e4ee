package usecases

import (
	"context"

	"campushub/internal/application/menu/dto"
)

type AddItemExecutor interface {
	Execute(ctx context.Context, cmd AddItemCommand) (*dto.MenuItemDTO, error)
}

type DeleteItemExecutor interface {
	Execute(ctx context.Context, cmd DeleteItemCommand) (*DeleteItemResult, error)
}

type ListMenuExecutor interface {
	Execute(ctx context.Context, query ListMenuQuery) (*ListMenuResult, error)
}

type SeedMenuExecutor interface {
	Execute(ctx context.Context) error
}
