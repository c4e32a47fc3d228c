package exam

import (
	"fmt"
	"time"
)

// AdmitCard admits one student to one exam. Serial is a UUID assigned at
// issue. FeeOverride marks cards issued despite overdue fees.
type AdmitCard struct {
	ID          uint
	ExamID      uint
	StudentID   uint
	Serial      string
	FeeOverride bool
	IssuedAt    time.Time
	CreatedAt   time.Time
}

func NewAdmitCard(examID, studentID uint, serial string, feeOverride bool) (*AdmitCard, error) {
	if examID == 0 {
		return nil, fmt.Errorf("exam ID is required")
	}
	if studentID == 0 {
		return nil, fmt.Errorf("student ID is required")
	}
	if serial == "" {
		return nil, fmt.Errorf("serial is required")
	}

	return &AdmitCard{
		ExamID:      examID,
		StudentID:   studentID,
		Serial:      serial,
		FeeOverride: feeOverride,
		IssuedAt:    time.Now(),
	}, nil
}
