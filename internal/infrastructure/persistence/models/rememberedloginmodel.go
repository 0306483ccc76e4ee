package models

// RememberedLoginModel stores the opt-in login pre-fill hint, one row per
// device key.
type RememberedLoginModel struct {
	ID           uint   `gorm:"primaryKey"`
	DeviceKey    string `gorm:"uniqueIndex;size:64;not null"`
	Username     string `gorm:"size:20;not null"`
	Role         string `gorm:"size:10;not null"`
	RememberedAt int64  `gorm:"not null"`
}

func (RememberedLoginModel) TableName() string {
	return "remembered_logins"
}
