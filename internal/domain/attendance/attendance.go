package attendance

import (
	"fmt"
	"time"
)

type Status string

const (
	StatusPresent Status = "present"
	StatusAbsent  Status = "absent"
	StatusLate    Status = "late"
	StatusExcused Status = "excused"
)

func (s Status) IsValid() bool {
	switch s {
	case StatusPresent, StatusAbsent, StatusLate, StatusExcused:
		return true
	}
	return false
}

// Record is one student's attendance for one calendar day. The storage
// layer enforces a single row per student+date; marking twice upserts.
type Record struct {
	ID        uint
	StudentID uint
	Class     string
	Section   string
	Date      time.Time
	Status    Status
	Remarks   string
	MarkedBy  uint
	CreatedAt time.Time
	UpdatedAt time.Time
}

func NewRecord(studentID uint, class, section string, date time.Time, status Status, remarks string, markedBy uint) (*Record, error) {
	if studentID == 0 {
		return nil, fmt.Errorf("student ID is required")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid attendance status: %s", status)
	}
	if markedBy == 0 {
		return nil, fmt.Errorf("marker account ID is required")
	}
	if date.IsZero() {
		return nil, fmt.Errorf("date is required")
	}

	return &Record{
		StudentID: studentID,
		Class:     class,
		Section:   section,
		Date:      NormalizeDate(date),
		Status:    status,
		Remarks:   remarks,
		MarkedBy:  markedBy,
	}, nil
}

// NormalizeDate strips the time-of-day component so one calendar day maps
// to exactly one key regardless of when the marking happened.
func NormalizeDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func (r *Record) IsAbsence() bool {
	return r.Status == StatusAbsent
}

// Summary aggregates per-student counts over a date range.
type Summary struct {
	Present int
	Absent  int
	Late    int
	Excused int
}

func (s Summary) Total() int {
	return s.Present + s.Absent + s.Late + s.Excused
}

// AttendedPercent counts late arrivals as attended; excused absences are
// excluded from the denominator.
func (s Summary) AttendedPercent() float64 {
	denominator := s.Present + s.Absent + s.Late
	if denominator == 0 {
		return 0
	}
	return float64(s.Present+s.Late) / float64(denominator) * 100
}
