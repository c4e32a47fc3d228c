package models

import "time"

// AttendanceModel keeps one row per student per calendar day; repeated
// marking updates the existing row.
type AttendanceModel struct {
	ID        uint      `gorm:"primarykey"`
	StudentID uint      `gorm:"not null;uniqueIndex:idx_student_date"`
	Date      time.Time `gorm:"not null;uniqueIndex:idx_student_date;index"`
	Class     string    `gorm:"not null;size:20;index:idx_att_class"`
	Section   string    `gorm:"size:10;index:idx_att_class"`
	Status    string    `gorm:"not null;size:10;index"`
	Remarks   string    `gorm:"size:255"`
	MarkedBy  uint      `gorm:"not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (AttendanceModel) TableName() string {
	return "attendance_records"
}
