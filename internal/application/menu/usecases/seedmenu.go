package usecases

import (
	"context"
	"time"

	"campushub/internal/domain/menu"
	"campushub/internal/shared/logger"
)

// defaultItems is the starter menu written the first time the portal runs
// with an empty catalog.
var defaultItems = []struct {
	name        string
	category    string
	price       float64
	description string
}{
	{"Masala Dosa", "breakfast", 45, "Crispy dosa served with sambar and chutney"},
	{"Chicken Biryani", "lunch", 120, "Fragrant basmati rice with chicken and raita"},
	{"Samosa", "snacks", 15, "Golden fried samosa with mint chutney"},
	{"Masala Chai", "beverages", 10, "Hot spiced tea with milk"},
}

// SeedMenuUseCase populates the starter menu on first run. It does nothing
// when any item already exists, so repeated boots never duplicate the seeds.
type SeedMenuUseCase struct {
	itemRepo menu.ItemRepository
	logger   logger.Interface
}

func NewSeedMenuUseCase(itemRepo menu.ItemRepository, logger logger.Interface) *SeedMenuUseCase {
	return &SeedMenuUseCase{
		itemRepo: itemRepo,
		logger:   logger,
	}
}

func (uc *SeedMenuUseCase) Execute(ctx context.Context) error {
	count, err := uc.itemRepo.Count(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	today := time.Now()
	for _, seed := range defaultItems {
		item, err := menu.NewItem(seed.name, seed.category, seed.price, seed.description, today, "", "system")
		if err != nil {
			return err
		}
		if err := uc.itemRepo.Save(ctx, item); err != nil {
			return err
		}
	}

	uc.logger.Infow("seeded default menu", "items", len(defaultItems))
	return nil
}
