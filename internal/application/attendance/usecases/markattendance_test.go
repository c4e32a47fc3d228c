package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"scholaris/internal/domain/attendance"
	"scholaris/internal/domain/student"
	"scholaris/internal/shared/logger"
)

type mockAttendanceRepository struct {
	UpsertFunc             func(ctx context.Context, records []*attendance.Record) error
	ListByClassDateFunc    func(ctx context.Context, class, section string, date time.Time) ([]*attendance.Record, error)
	ListByStudentRangeFunc func(ctx context.Context, studentID uint, from, to time.Time) ([]*attendance.Record, error)
	SummaryByStudentFunc   func(ctx context.Context, studentID uint, from, to time.Time) (attendance.Summary, error)
	ListAbsenteesFunc      func(ctx context.Context, date time.Time) ([]*attendance.Record, error)
}

func (m *mockAttendanceRepository) Upsert(ctx context.Context, records []*attendance.Record) error {
	if m.UpsertFunc != nil {
		return m.UpsertFunc(ctx, records)
	}
	return nil
}

func (m *mockAttendanceRepository) ListByClassDate(ctx context.Context, class, section string, date time.Time) ([]*attendance.Record, error) {
	if m.ListByClassDateFunc != nil {
		return m.ListByClassDateFunc(ctx, class, section, date)
	}
	return nil, nil
}

func (m *mockAttendanceRepository) ListByStudentRange(ctx context.Context, studentID uint, from, to time.Time) ([]*attendance.Record, error) {
	if m.ListByStudentRangeFunc != nil {
		return m.ListByStudentRangeFunc(ctx, studentID, from, to)
	}
	return nil, nil
}

func (m *mockAttendanceRepository) SummaryByStudent(ctx context.Context, studentID uint, from, to time.Time) (attendance.Summary, error) {
	if m.SummaryByStudentFunc != nil {
		return m.SummaryByStudentFunc(ctx, studentID, from, to)
	}
	return attendance.Summary{}, nil
}

func (m *mockAttendanceRepository) ListAbsentees(ctx context.Context, date time.Time) ([]*attendance.Record, error) {
	if m.ListAbsenteesFunc != nil {
		return m.ListAbsenteesFunc(ctx, date)
	}
	return nil, nil
}

type mockStudentRepository struct {
	GetByIDFunc     func(ctx context.Context, id uint) (*student.Student, error)
	ListByClassFunc func(ctx context.Context, class, section string) ([]*student.Student, error)
}

func (m *mockStudentRepository) Create(ctx context.Context, s *student.Student) error { return nil }

func (m *mockStudentRepository) GetByID(ctx context.Context, id uint) (*student.Student, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockStudentRepository) GetByAdmissionNumber(ctx context.Context, admissionNumber string) (*student.Student, error) {
	return nil, nil
}

func (m *mockStudentRepository) Update(ctx context.Context, s *student.Student) error { return nil }

func (m *mockStudentRepository) List(ctx context.Context, filter student.ListFilter) ([]*student.Student, int64, error) {
	return nil, 0, nil
}

func (m *mockStudentRepository) ListByClass(ctx context.Context, class, section string) ([]*student.Student, error) {
	if m.ListByClassFunc != nil {
		return m.ListByClassFunc(ctx, class, section)
	}
	return nil, nil
}

func (m *mockStudentRepository) ListByParentAccountID(ctx context.Context, accountID uint) ([]*student.Student, error) {
	return nil, nil
}

func classRoster(t *testing.T, ids ...uint) []*student.Student {
	t.Helper()
	roster := make([]*student.Student, 0, len(ids))
	for i, id := range ids {
		s, err := student.NewStudent("ADM-"+string(rune('A'+i)), "Student", "X", "10", "A", i+1)
		require.NoError(t, err)
		require.NoError(t, s.SetID(id))
		roster = append(roster, s)
	}
	return roster
}

func TestMarkAttendanceUpsertsNormalizedRecords(t *testing.T) {
	roster := classRoster(t, 1, 2, 3)

	var upserted []*attendance.Record
	uc := NewMarkAttendanceUseCase(
		&mockAttendanceRepository{
			UpsertFunc: func(ctx context.Context, records []*attendance.Record) error {
				upserted = records
				return nil
			},
		},
		&mockStudentRepository{
			ListByClassFunc: func(ctx context.Context, class, section string) ([]*student.Student, error) {
				return roster, nil
			},
		},
		logger.NewLogger(),
	)

	marked := time.Date(2026, 9, 1, 10, 30, 0, 0, time.Local)
	result, err := uc.Execute(context.Background(), MarkAttendanceCommand{
		Class:    "10",
		Section:  "A",
		Date:     marked,
		MarkedBy: 42,
		Entries: []MarkEntry{
			{StudentID: 1, Status: "present"},
			{StudentID: 2, Status: "absent", Remarks: "no message from home"},
			{StudentID: 3, Status: "late"},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, 3, result.Marked)
	assert.Equal(t, 1, result.Absent)
	require.Len(t, upserted, 3)
	for _, record := range upserted {
		assert.Equal(t, attendance.NormalizeDate(marked), record.Date)
		assert.Equal(t, uint(42), record.MarkedBy)
	}
}

func TestMarkAttendanceRejectsStudentOutsideClass(t *testing.T) {
	roster := classRoster(t, 1, 2)

	uc := NewMarkAttendanceUseCase(
		&mockAttendanceRepository{},
		&mockStudentRepository{
			ListByClassFunc: func(ctx context.Context, class, section string) ([]*student.Student, error) {
				return roster, nil
			},
		},
		logger.NewLogger(),
	)

	_, err := uc.Execute(context.Background(), MarkAttendanceCommand{
		Class:    "10",
		Section:  "A",
		Date:     time.Now(),
		MarkedBy: 42,
		Entries:  []MarkEntry{{StudentID: 99, Status: "present"}},
	})
	require.Error(t, err)
}

func TestMarkAttendanceRejectsFutureDate(t *testing.T) {
	uc := NewMarkAttendanceUseCase(&mockAttendanceRepository{}, &mockStudentRepository{}, logger.NewLogger())

	_, err := uc.Execute(context.Background(), MarkAttendanceCommand{
		Class:    "10",
		Section:  "A",
		Date:     time.Now().Add(48 * time.Hour),
		MarkedBy: 42,
		Entries:  []MarkEntry{{StudentID: 1, Status: "present"}},
	})
	require.Error(t, err)
}

func TestMarkAttendanceRejectsUnknownStatus(t *testing.T) {
	roster := classRoster(t, 1)

	uc := NewMarkAttendanceUseCase(
		&mockAttendanceRepository{},
		&mockStudentRepository{
			ListByClassFunc: func(ctx context.Context, class, section string) ([]*student.Student, error) {
				return roster, nil
			},
		},
		logger.NewLogger(),
	)

	_, err := uc.Execute(context.Background(), MarkAttendanceCommand{
		Class:    "10",
		Section:  "A",
		Date:     time.Now(),
		MarkedBy: 42,
		Entries:  []MarkEntry{{StudentID: 1, Status: "sleeping"}},
	})
	require.Error(t, err)
}
