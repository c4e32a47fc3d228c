package models

import (
	"time"

	"gorm.io/gorm"
)

type BookModel struct {
	ID              uint   `gorm:"primarykey"`
	ISBN            string `gorm:"uniqueIndex;not null;size:20"`
	Title           string `gorm:"not null;size:255;index"`
	Author          string `gorm:"size:255"`
	TotalCopies     int    `gorm:"not null"`
	AvailableCopies int    `gorm:"not null"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
	DeletedAt       gorm.DeletedAt `gorm:"index"`
}

func (BookModel) TableName() string {
	return "library_books"
}

type LoanModel struct {
	ID         uint      `gorm:"primarykey"`
	BookID     uint      `gorm:"not null;index"`
	StudentID  uint      `gorm:"not null;index"`
	BorrowedAt time.Time `gorm:"not null"`
	DueDate    time.Time `gorm:"not null;index"`
	ReturnedAt *time.Time
	FineAmount int64 `gorm:"not null;default:0"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func (LoanModel) TableName() string {
	return "library_loans"
}
