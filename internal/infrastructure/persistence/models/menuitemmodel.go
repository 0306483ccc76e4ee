package models

import "gorm.io/datatypes"

type MenuItemModel struct {
	ID          uint           `gorm:"primaryKey"`
	Name        string         `gorm:"size:100;not null;index"`
	Category    string         `gorm:"size:20;not null;index"`
	Price       float64        `gorm:"not null"`
	Description string         `gorm:"type:text"`
	AvailableOn datatypes.Date `gorm:"not null;index"`
	ImageData   string         `gorm:"type:text"`
	CreatedBy   string         `gorm:"size:20;not null"`
	CreatedAt   int64          `gorm:"not null;index"`
}

func (MenuItemModel) TableName() string {
	return "menu_items"
}
