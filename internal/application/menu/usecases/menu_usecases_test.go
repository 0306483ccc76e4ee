package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"campushub/internal/domain/menu"
	vo "campushub/internal/domain/menu/valueobjects"
)

func reconstructItem(id uint, name string, category vo.Category, price float64, description string, availableOn time.Time) *menu.Item {
	return menu.ReconstructItem(id, name, category, price, description, availableOn, "", "admin", availableOn)
}

func TestAddItemUseCase_Execute(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		var saved *menu.Item
		mockRepo := &mockItemRepository{
			SaveFunc: func(ctx context.Context, item *menu.Item) error {
				item.SetID(9)
				saved = item
				return nil
			},
		}

		useCase := NewAddItemUseCase(mockRepo, &mockLogger{})
		result, err := useCase.Execute(context.Background(), AddItemCommand{
			Name:        "Veg Thali",
			Category:    "lunch",
			Price:       80,
			Description: "Full plate with dal, rice and two sabzis",
			AvailableOn: "2026-09-01",
			CreatedBy:   "admin",
		})

		require.NoError(t, err)
		assert.Equal(t, uint(9), result.ID)
		assert.Equal(t, "2026-09-01", result.AvailableOn)
		require.NotNil(t, saved)
		assert.Equal(t, "Veg Thali", saved.Name())
	})

	t.Run("bad date format", func(t *testing.T) {
		useCase := NewAddItemUseCase(&mockItemRepository{}, &mockLogger{})
		_, err := useCase.Execute(context.Background(), AddItemCommand{
			Name:        "Veg Thali",
			Category:    "lunch",
			Price:       80,
			AvailableOn: "01/09/2026",
		})
		assert.Error(t, err)
	})

	t.Run("domain validation propagates", func(t *testing.T) {
		useCase := NewAddItemUseCase(&mockItemRepository{}, &mockLogger{})
		_, err := useCase.Execute(context.Background(), AddItemCommand{
			Name:        "Veg Thali",
			Category:    "dinner",
			Price:       80,
			AvailableOn: "2026-09-01",
		})
		assert.Error(t, err)
	})
}

func TestDeleteItemUseCase_Execute(t *testing.T) {
	t.Run("missing item is still a success", func(t *testing.T) {
		mockRepo := &mockItemRepository{
			DeleteFunc: func(ctx context.Context, id uint) error {
				// repositories treat unknown IDs as a no-op
				return nil
			},
		}

		useCase := NewDeleteItemUseCase(mockRepo, &mockLogger{})
		result, err := useCase.Execute(context.Background(), DeleteItemCommand{ItemID: 404})

		require.NoError(t, err)
		assert.Equal(t, uint(404), result.ItemID)
	})

	t.Run("zero ID is rejected", func(t *testing.T) {
		useCase := NewDeleteItemUseCase(&mockItemRepository{}, &mockLogger{})
		_, err := useCase.Execute(context.Background(), DeleteItemCommand{})
		assert.Error(t, err)
	})
}

func TestListMenuUseCase_Execute(t *testing.T) {
	today := time.Now()
	tomorrow := today.AddDate(0, 0, 1)

	fixtures := []*menu.Item{
		reconstructItem(3, "Masala Chai", vo.CategoryBeverages, 10, "Hot spiced tea", tomorrow),
		reconstructItem(2, "Chicken Biryani", vo.CategoryLunch, 120, "With raita", today),
		reconstructItem(1, "Masala Dosa", vo.CategoryBreakfast, 45, "With chutney", today),
	}

	mockRepo := &mockItemRepository{
		ListFunc: func(ctx context.Context, filter menu.ItemFilter) ([]*menu.Item, error) {
			out := []*menu.Item{}
			for _, item := range fixtures {
				if filter.Category != nil && item.Category() != *filter.Category {
					continue
				}
				out = append(out, item)
			}
			return out, nil
		},
	}

	useCase := NewListMenuUseCase(mockRepo, &mockLogger{})

	t.Run("no filters returns everything newest first", func(t *testing.T) {
		result, err := useCase.Execute(context.Background(), ListMenuQuery{})
		require.NoError(t, err)
		require.Len(t, result.Items, 3)
		assert.Equal(t, uint(3), result.Items[0].ID)
	})

	t.Run("today bucket excludes tomorrow's items", func(t *testing.T) {
		result, err := useCase.Execute(context.Background(), ListMenuQuery{Day: DayToday})
		require.NoError(t, err)
		require.Len(t, result.Items, 2)
		for _, item := range result.Items {
			assert.True(t, item.IsToday)
		}
	})

	t.Run("tomorrow bucket", func(t *testing.T) {
		result, err := useCase.Execute(context.Background(), ListMenuQuery{Day: DayTomorrow})
		require.NoError(t, err)
		require.Len(t, result.Items, 1)
		assert.Equal(t, "Masala Chai", result.Items[0].Name)
	})

	t.Run("search matches name and description case-insensitively", func(t *testing.T) {
		result, err := useCase.Execute(context.Background(), ListMenuQuery{Search: "MASALA"})
		require.NoError(t, err)
		assert.Len(t, result.Items, 2)

		result, err = useCase.Execute(context.Background(), ListMenuQuery{Search: "raita"})
		require.NoError(t, err)
		require.Len(t, result.Items, 1)
		assert.Equal(t, "Chicken Biryani", result.Items[0].Name)
	})

	t.Run("category filter", func(t *testing.T) {
		result, err := useCase.Execute(context.Background(), ListMenuQuery{Category: "lunch"})
		require.NoError(t, err)
		require.Len(t, result.Items, 1)
		assert.Equal(t, uint(2), result.Items[0].ID)
	})

	t.Run("invalid filters", func(t *testing.T) {
		_, err := useCase.Execute(context.Background(), ListMenuQuery{Category: "dinner"})
		assert.Error(t, err)

		_, err = useCase.Execute(context.Background(), ListMenuQuery{Day: "yesterday"})
		assert.Error(t, err)
	})
}

func TestSeedMenuUseCase_Execute(t *testing.T) {
	t.Run("seeds four items into an empty catalog", func(t *testing.T) {
		var saved []*menu.Item
		mockRepo := &mockItemRepository{
			CountFunc: func(ctx context.Context) (int64, error) { return 0, nil },
			SaveFunc: func(ctx context.Context, item *menu.Item) error {
				saved = append(saved, item)
				return nil
			},
		}

		useCase := NewSeedMenuUseCase(mockRepo, &mockLogger{})
		require.NoError(t, useCase.Execute(context.Background()))

		require.Len(t, saved, 4)
		assert.Equal(t, "Masala Dosa", saved[0].Name())
		assert.Equal(t, 45.0, saved[0].Price())
		assert.Equal(t, "Chicken Biryani", saved[1].Name())
		assert.Equal(t, 120.0, saved[1].Price())
		assert.Equal(t, "Samosa", saved[2].Name())
		assert.Equal(t, 15.0, saved[2].Price())
		assert.Equal(t, "Masala Chai", saved[3].Name())
		assert.Equal(t, 10.0, saved[3].Price())
	})

	t.Run("does nothing when items exist", func(t *testing.T) {
		saveCalled := false
		mockRepo := &mockItemRepository{
			CountFunc: func(ctx context.Context) (int64, error) { return 7, nil },
			SaveFunc: func(ctx context.Context, item *menu.Item) error {
				saveCalled = true
				return nil
			},
		}

		useCase := NewSeedMenuUseCase(mockRepo, &mockLogger{})
		require.NoError(t, useCase.Execute(context.Background()))
		assert.False(t, saveCalled)
	})
}
