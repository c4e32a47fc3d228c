package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type ExamModel struct {
	ID        uint   `gorm:"primarykey"`
	Name      string `gorm:"not null;size:100"`
	Term      string `gorm:"size:40"`
	Class     string `gorm:"not null;size:20;index"`
	StartDate time.Time `gorm:"not null"`
	EndDate   time.Time `gorm:"not null"`
	Subjects  datatypes.JSON
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

func (ExamModel) TableName() string {
	return "exams"
}

type AdmitCardModel struct {
	ID          uint   `gorm:"primarykey"`
	ExamID      uint   `gorm:"not null;uniqueIndex:idx_exam_student"`
	StudentID   uint   `gorm:"not null;uniqueIndex:idx_exam_student"`
	Serial      string `gorm:"uniqueIndex;not null;size:40"`
	FeeOverride bool   `gorm:"default:false"`
	IssuedAt    time.Time `gorm:"not null"`
	CreatedAt   time.Time
}

func (AdmitCardModel) TableName() string {
	return "admit_cards"
}
