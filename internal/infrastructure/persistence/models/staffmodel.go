package models

import (
	"time"

	"gorm.io/gorm"
)

type StaffModel struct {
	ID             uint   `gorm:"primarykey"`
	EmployeeNumber string `gorm:"uniqueIndex;not null;size:40"`
	Name           string `gorm:"not null;size:100"`
	Designation    string `gorm:"not null;size:100"`
	Department     string `gorm:"size:100;index"`
	Phone          string `gorm:"size:20"`
	Email          string `gorm:"size:255"`
	AccountID      *uint  `gorm:"index"`
	Status         string `gorm:"not null;default:active;size:20;index"`
	JoinedAt       time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time
	DeletedAt      gorm.DeletedAt `gorm:"index"`
}

func (StaffModel) TableName() string {
	return "staff"
}
