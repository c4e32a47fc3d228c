package models

import (
	"time"

	"gorm.io/gorm"
)

// AccountModel is the persistence shape of the account aggregate. Token
// columns hold SHA-256 digests, never raw token values.
type AccountModel struct {
	ID                         uint    `gorm:"primarykey"`
	Email                      string  `gorm:"uniqueIndex;not null;size:255"`
	Username                   string  `gorm:"uniqueIndex;not null;size:100"`
	FullName                   string  `gorm:"not null;size:100"`
	Phone                      string  `gorm:"size:20"`
	Role                       string  `gorm:"not null;size:20;index"`
	Status                     string  `gorm:"not null;default:pending_verification;size:30"`
	Provisioned                bool    `gorm:"default:true"`
	LockReason                 *string `gorm:"size:255"`
	LockedUntil                *time.Time
	FailedLoginAttempts        int  `gorm:"default:0"`
	MustChangePassword         bool `gorm:"default:false"`
	PasswordHash               *string `gorm:"size:255"`
	LastPasswordChangeAt       *time.Time
	EmailVerifiedAt            *time.Time
	EmailVerificationTokenHash *string `gorm:"size:64;index:idx_email_verification_token"`
	EmailVerificationExpiresAt *time.Time
	PasswordResetTokenHash     *string `gorm:"size:64;index:idx_password_reset_token"`
	PasswordResetExpiresAt     *time.Time
	LastLoginAt                *time.Time
	Version                    int `gorm:"not null;default:1"`
	CreatedAt                  time.Time
	UpdatedAt                  time.Time
	DeletedAt                  gorm.DeletedAt `gorm:"index"`
}

func (AccountModel) TableName() string {
	return "accounts"
}

func (a *AccountModel) BeforeCreate(tx *gorm.DB) error {
	if a.Status == "" {
		a.Status = "pending_verification"
	}
	if a.Version == 0 {
		a.Version = 1
	}
	return nil
}

func (a *AccountModel) BeforeUpdate(tx *gorm.DB) error {
	tx.Statement.SetColumn("version", a.Version+1)
	return nil
}
