package models

// PendingOrderModel holds the single in-flight order per student. The unique
// index on StudentUsername enforces the one-pending-slot rule at the storage
// level.
type PendingOrderModel struct {
	ID              uint    `gorm:"primaryKey"`
	Number          string  `gorm:"uniqueIndex;size:30;not null"`
	StudentUsername string  `gorm:"uniqueIndex;size:20;not null"`
	ItemID          uint    `gorm:"not null"`
	ItemName        string  `gorm:"size:100;not null"`
	UnitPrice       float64 `gorm:"not null"`
	Quantity        int     `gorm:"not null"`
	Total           float64 `gorm:"not null"`
	OrderedAt       int64   `gorm:"not null"`
}

func (PendingOrderModel) TableName() string {
	return "pending_orders"
}

type CompletedOrderModel struct {
	ID              uint    `gorm:"primaryKey"`
	Number          string  `gorm:"uniqueIndex;size:30;not null"`
	StudentUsername string  `gorm:"size:20;not null;index"`
	ItemID          uint    `gorm:"not null"`
	ItemName        string  `gorm:"size:100;not null"`
	UnitPrice       float64 `gorm:"not null"`
	Quantity        int     `gorm:"not null"`
	Total           float64 `gorm:"not null"`
	OrderedAt       int64   `gorm:"not null;index"`
	PaidAt          int64   `gorm:"not null"`
}

func (CompletedOrderModel) TableName() string {
	return "completed_orders"
}
