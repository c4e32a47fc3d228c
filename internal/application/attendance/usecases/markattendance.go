package usecases

import (
	"context"
	"fmt"
	"time"

	"scholaris/internal/domain/attendance"
	"scholaris/internal/domain/student"
	"scholaris/internal/shared/errors"
	"scholaris/internal/shared/logger"
)

type MarkEntry struct {
	StudentID uint
	Status    string
	Remarks   string
}

type MarkAttendanceCommand struct {
	Class    string
	Section  string
	Date     time.Time
	MarkedBy uint
	Entries  []MarkEntry
}

type MarkAttendanceResult struct {
	Marked int
	Absent int
}

// MarkAttendanceUseCase records one class's attendance for one day in a
// single upsert, so re-marking corrects earlier statuses instead of
// duplicating rows.
type MarkAttendanceUseCase struct {
	attendanceRepo attendance.Repository
	studentRepo    student.Repository
	logger         logger.Interface
}

func NewMarkAttendanceUseCase(
	attendanceRepo attendance.Repository,
	studentRepo student.Repository,
	log logger.Interface,
) *MarkAttendanceUseCase {
	return &MarkAttendanceUseCase{
		attendanceRepo: attendanceRepo,
		studentRepo:    studentRepo,
		logger:         log,
	}
}

func (uc *MarkAttendanceUseCase) Execute(ctx context.Context, cmd MarkAttendanceCommand) (*MarkAttendanceResult, error) {
	if len(cmd.Entries) == 0 {
		return nil, errors.NewValidationError("no entries to mark")
	}
	if attendance.NormalizeDate(cmd.Date).After(attendance.NormalizeDate(time.Now())) {
		return nil, errors.NewValidationError("cannot mark attendance for a future date")
	}

	enrolled, err := uc.studentRepo.ListByClass(ctx, cmd.Class, cmd.Section)
	if err != nil {
		return nil, err
	}
	inClass := make(map[uint]bool, len(enrolled))
	for _, s := range enrolled {
		inClass[s.ID()] = true
	}

	records := make([]*attendance.Record, 0, len(cmd.Entries))
	absent := 0
	for _, entry := range cmd.Entries {
		if !inClass[entry.StudentID] {
			return nil, errors.NewValidationError(fmt.Sprintf("student %d is not enrolled in %s %s", entry.StudentID, cmd.Class, cmd.Section))
		}
		record, err := attendance.NewRecord(entry.StudentID, cmd.Class, cmd.Section, cmd.Date, attendance.Status(entry.Status), entry.Remarks, cmd.MarkedBy)
		if err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
		if record.IsAbsence() {
			absent++
		}
		records = append(records, record)
	}

	if err := uc.attendanceRepo.Upsert(ctx, records); err != nil {
		return nil, err
	}

	uc.logger.Infow("attendance marked",
		"class", cmd.Class,
		"section", cmd.Section,
		"date", attendance.NormalizeDate(cmd.Date).Format("2006-01-02"),
		"marked", len(records),
		"absent", absent)
	return &MarkAttendanceResult{Marked: len(records), Absent: absent}, nil
}
