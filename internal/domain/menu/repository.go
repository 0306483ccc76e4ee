package menu

import (
	"context"

	"campushub/internal/domain/menu/valueobjects"
)

// ItemFilter narrows menu listings. Nil fields match everything.
type ItemFilter struct {
	Category *valueobjects.Category
}

// ItemRepository persists menu items. List returns newest-first (descending
// creation order). Delete of a missing ID is a no-op, not an error.
type ItemRepository interface {
	Save(ctx context.Context, item *Item) error
	FindByID(ctx context.Context, id uint) (*Item, error)
	List(ctx context.Context, filter ItemFilter) ([]*Item, error)
	Delete(ctx context.Context, id uint) error
	Count(ctx context.Context) (int64, error)
}
