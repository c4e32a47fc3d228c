package models

import (
	"time"

	"gorm.io/datatypes"
)

// ActivityLogModel is append-only; rows are never updated or deleted by
// the application.
type ActivityLogModel struct {
	ID          uint    `gorm:"primarykey"`
	AccountID   *uint   `gorm:"index"`
	Type        string  `gorm:"not null;size:40;index"`
	Description string  `gorm:"size:255"`
	IPAddress   string  `gorm:"size:45"`
	UserAgent   string  `gorm:"size:512"`
	Metadata    datatypes.JSON
	CreatedAt   time.Time `gorm:"index"`
}

func (ActivityLogModel) TableName() string {
	return "activity_log"
}
