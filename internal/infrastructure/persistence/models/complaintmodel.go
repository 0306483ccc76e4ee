package models

type ComplaintModel struct {
	ID              uint   `gorm:"primaryKey"`
	Title           string `gorm:"size:100;not null"`
	Category        string `gorm:"size:20;not null;index"`
	RoomNumber      string `gorm:"size:10;not null"`
	Description     string `gorm:"type:text;not null"`
	Priority        string `gorm:"size:10;not null;index"`
	ContactNumber   string `gorm:"size:10;not null"`
	StudentUsername string `gorm:"size:20;not null;index"`
	Status          string `gorm:"size:15;not null;index"`
	SubmittedAt     int64  `gorm:"not null;index"`
	UpdatedAt       int64  `gorm:"not null"`

	// Note: no foreign key constraints or associations. Relationships are
	// managed by application business logic.
}

func (ComplaintModel) TableName() string {
	return "complaints"
}

type ComplaintCommentModel struct {
	ID          uint   `gorm:"primaryKey"`
	ComplaintID uint   `gorm:"not null;index"`
	Author      string `gorm:"size:20;not null"`
	AuthorRole  string `gorm:"size:10;not null"`
	Text        string `gorm:"type:text;not null"`
	CreatedAt   int64  `gorm:"autoCreateTime:milli;not null;index"`
}

func (ComplaintCommentModel) TableName() string {
	return "complaint_comments"
}
