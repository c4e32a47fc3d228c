package usecases

import (
	"context"
	"time"

	"scholaris/internal/domain/attendance"
	"scholaris/internal/shared/errors"
)

type ClassSheetQuery struct {
	Class   string
	Section string
	Date    time.Time
}

type GetClassSheetUseCase struct {
	attendanceRepo attendance.Repository
}

func NewGetClassSheetUseCase(attendanceRepo attendance.Repository) *GetClassSheetUseCase {
	return &GetClassSheetUseCase{attendanceRepo: attendanceRepo}
}

func (uc *GetClassSheetUseCase) Execute(ctx context.Context, query ClassSheetQuery) ([]*attendance.Record, error) {
	return uc.attendanceRepo.ListByClassDate(ctx, query.Class, query.Section, query.Date)
}

type StudentSummaryQuery struct {
	StudentID uint
	From      time.Time
	To        time.Time
}

type StudentSummaryResult struct {
	Records []*attendance.Record
	Summary attendance.Summary
}

// GetStudentSummaryUseCase serves both the student's own view and the
// parent-portal view of a child's attendance.
type GetStudentSummaryUseCase struct {
	attendanceRepo attendance.Repository
}

func NewGetStudentSummaryUseCase(attendanceRepo attendance.Repository) *GetStudentSummaryUseCase {
	return &GetStudentSummaryUseCase{attendanceRepo: attendanceRepo}
}

func (uc *GetStudentSummaryUseCase) Execute(ctx context.Context, query StudentSummaryQuery) (*StudentSummaryResult, error) {
	if query.To.Before(query.From) {
		return nil, errors.NewValidationError("range end precedes range start")
	}

	records, err := uc.attendanceRepo.ListByStudentRange(ctx, query.StudentID, query.From, query.To)
	if err != nil {
		return nil, err
	}
	summary, err := uc.attendanceRepo.SummaryByStudent(ctx, query.StudentID, query.From, query.To)
	if err != nil {
		return nil, err
	}
	return &StudentSummaryResult{Records: records, Summary: summary}, nil
}
