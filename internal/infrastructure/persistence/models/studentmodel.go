package models

import (
	"time"

	"gorm.io/gorm"
)

type StudentModel struct {
	ID              uint   `gorm:"primarykey"`
	AdmissionNumber string `gorm:"uniqueIndex;not null;size:40"`
	FirstName       string `gorm:"not null;size:100"`
	LastName        string `gorm:"size:100"`
	Class           string `gorm:"not null;size:20;index:idx_class_section"`
	Section         string `gorm:"size:10;index:idx_class_section"`
	RollNumber      int    `gorm:"not null"`
	DateOfBirth     *time.Time
	GuardianName    string `gorm:"size:100"`
	GuardianPhone   string `gorm:"size:20"`
	GuardianEmail   string `gorm:"size:255"`
	Address         string `gorm:"size:500"`
	AccountID       *uint  `gorm:"index"`
	ParentAccountID *uint  `gorm:"index"`
	Status          string `gorm:"not null;default:enrolled;size:20;index"`
	AdmittedAt      time.Time
	CreatedAt       time.Time
	UpdatedAt       time.Time
	DeletedAt       gorm.DeletedAt `gorm:"index"`
}

func (StudentModel) TableName() string {
	return "students"
}
