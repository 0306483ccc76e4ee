package migration

import (
	"fmt"

	"gorm.io/gorm"

	"campushub/internal/infrastructure/persistence/models"
)

// AutoMigrate creates or updates the portal's tables.
func AutoMigrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&models.ComplaintModel{},
		&models.ComplaintCommentModel{},
		&models.MenuItemModel{},
		&models.PendingOrderModel{},
		&models.CompletedOrderModel{},
		&models.RememberedLoginModel{},
	)
	if err != nil {
		return fmt.Errorf("auto migration failed: %w", err)
	}
	return nil
}
