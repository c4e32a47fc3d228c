package models

import "time"

type SessionModel struct {
	ID               string `gorm:"primarykey;size:64"`
	AccountID        uint   `gorm:"not null;index"`
	IPAddress        string `gorm:"size:45"`
	UserAgent        string `gorm:"size:512"`
	LoginMethod      string `gorm:"size:20;default:password"`
	TokenHash        string `gorm:"size:64;index"`
	RefreshTokenHash string `gorm:"size:64;index"`
	Active           bool   `gorm:"default:true;index"`
	ExpiresAt        time.Time `gorm:"not null;index"`
	LastActivityAt   time.Time `gorm:"not null"`
	StartedAt        time.Time `gorm:"not null"`
	EndedAt          *time.Time
	EndReason        *string `gorm:"size:20"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

func (SessionModel) TableName() string {
	return "sessions"
}
