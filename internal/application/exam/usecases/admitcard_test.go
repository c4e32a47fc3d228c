package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"scholaris/internal/domain/exam"
	"scholaris/internal/domain/student"
	"scholaris/internal/shared/logger"
)

func testExam(t *testing.T, class string) *exam.Exam {
	t.Helper()
	start := time.Now().Add(7 * 24 * time.Hour)
	end := start.Add(5 * 24 * time.Hour)
	e, err := exam.NewExam("Half Yearly", "Term 1", class, start, end, []exam.Subject{
		{Name: "Mathematics", Date: start, StartsAt: "09:00", EndsAt: "12:00", MaxMarks: 100},
		{Name: "Science", Date: start.Add(48 * time.Hour), StartsAt: "09:00", EndsAt: "12:00", MaxMarks: 100},
	})
	require.NoError(t, err)
	require.NoError(t, e.SetID(2))
	return e
}

func classStudent(t *testing.T, class string) *student.Student {
	t.Helper()
	s, err := student.NewStudent("ADM-300", "Meera", "Nair", class, "A", 7)
	require.NoError(t, err)
	require.NoError(t, s.SetID(5))
	return s
}

func newIssueFixture(t *testing.T, e *exam.Exam, s *student.Student) (*IssueAdmitCardUseCase, *mockAdmitCardRepository, *mockFeeRepository) {
	t.Helper()
	cardRepo := &mockAdmitCardRepository{}
	feeRepo := &mockFeeRepository{}
	uc := NewIssueAdmitCardUseCase(
		&mockExamRepository{
			GetByIDFunc: func(ctx context.Context, id uint) (*exam.Exam, error) { return e, nil },
		},
		cardRepo,
		&mockStudentRepository{
			GetByIDFunc: func(ctx context.Context, id uint) (*student.Student, error) { return s, nil },
		},
		feeRepo,
		logger.NewLogger(),
	)
	return uc, cardRepo, feeRepo
}

func TestIssueAdmitCardAssignsSerial(t *testing.T) {
	e := testExam(t, "10")
	s := classStudent(t, "10")
	uc, cardRepo, _ := newIssueFixture(t, e, s)

	var created *exam.AdmitCard
	cardRepo.CreateFunc = func(ctx context.Context, card *exam.AdmitCard) error {
		created = card
		return nil
	}

	card, err := uc.Execute(context.Background(), IssueAdmitCardCommand{ExamID: 2, StudentID: 5})
	require.NoError(t, err)

	require.NotNil(t, created)
	assert.NotEmpty(t, card.Serial)
	assert.False(t, card.FeeOverride)
}

func TestIssueAdmitCardBlockedByOverdueFees(t *testing.T) {
	e := testExam(t, "10")
	s := classStudent(t, "10")
	uc, _, feeRepo := newIssueFixture(t, e, s)

	feeRepo.HasUnsettledOverdueFunc = func(ctx context.Context, studentID uint) (bool, error) {
		return true, nil
	}

	_, err := uc.Execute(context.Background(), IssueAdmitCardCommand{ExamID: 2, StudentID: 5})
	require.Error(t, err)
}

func TestIssueAdmitCardOverrideBypassesFeeCheck(t *testing.T) {
	e := testExam(t, "10")
	s := classStudent(t, "10")
	uc, _, feeRepo := newIssueFixture(t, e, s)

	feeChecks := 0
	feeRepo.HasUnsettledOverdueFunc = func(ctx context.Context, studentID uint) (bool, error) {
		feeChecks++
		return true, nil
	}

	card, err := uc.Execute(context.Background(), IssueAdmitCardCommand{ExamID: 2, StudentID: 5, FeeOverride: true})
	require.NoError(t, err)

	assert.True(t, card.FeeOverride)
	assert.Zero(t, feeChecks, "override must skip the fee lookup entirely")
}

func TestIssueAdmitCardOncePerExam(t *testing.T) {
	e := testExam(t, "10")
	s := classStudent(t, "10")
	uc, cardRepo, _ := newIssueFixture(t, e, s)

	existing, err := exam.NewAdmitCard(2, 5, "existing-serial", false)
	require.NoError(t, err)
	cardRepo.GetByExamAndStudentFunc = func(ctx context.Context, examID, studentID uint) (*exam.AdmitCard, error) {
		return existing, nil
	}

	_, err = uc.Execute(context.Background(), IssueAdmitCardCommand{ExamID: 2, StudentID: 5})
	require.Error(t, err)
}

func enrolledStudent(t *testing.T, class string, id uint, admission string, roll int) *student.Student {
	t.Helper()
	s, err := student.NewStudent(admission, "Meera", "Nair", class, "A", roll)
	require.NoError(t, err)
	require.NoError(t, s.SetID(id))
	return s
}

func TestGenerateClassAdmitCardsSkipsBlockedStudents(t *testing.T) {
	e := testExam(t, "10")
	clean := enrolledStudent(t, "10", 5, "ADM-300", 7)
	carded := enrolledStudent(t, "10", 6, "ADM-301", 8)
	blocked := enrolledStudent(t, "10", 8, "ADM-302", 9)

	cardRepo := &mockAdmitCardRepository{}
	feeRepo := &mockFeeRepository{}
	studentRepo := &mockStudentRepository{
		ListFunc: func(ctx context.Context, filter student.ListFilter) ([]*student.Student, int64, error) {
			assert.Equal(t, "10", filter.Class)
			assert.Equal(t, student.StatusEnrolled.String(), filter.Status)
			return []*student.Student{clean, carded, blocked}, 3, nil
		},
	}
	uc := NewIssueAdmitCardUseCase(
		&mockExamRepository{
			GetByIDFunc: func(ctx context.Context, id uint) (*exam.Exam, error) { return e, nil },
		},
		cardRepo, studentRepo, feeRepo, logger.NewLogger(),
	)

	existing, err := exam.NewAdmitCard(2, 6, "existing-serial", false)
	require.NoError(t, err)
	cardRepo.GetByExamAndStudentFunc = func(ctx context.Context, examID, studentID uint) (*exam.AdmitCard, error) {
		if studentID == 6 {
			return existing, nil
		}
		return nil, nil
	}
	feeRepo.HasUnsettledOverdueFunc = func(ctx context.Context, studentID uint) (bool, error) {
		return studentID == 8, nil
	}
	creates := 0
	cardRepo.CreateFunc = func(ctx context.Context, card *exam.AdmitCard) error {
		creates++
		return nil
	}

	result, err := uc.ExecuteForClass(context.Background(), GenerateClassAdmitCardsCommand{ExamID: 2})
	require.NoError(t, err)

	assert.Equal(t, 1, result.Issued)
	assert.Equal(t, 2, result.Skipped)
	assert.Equal(t, 1, creates)

	byStudent := map[uint]AdmitCardIssue{}
	for _, card := range result.Cards {
		byStudent[card.StudentID] = card
	}
	assert.Equal(t, IssueStatusIssued, byStudent[5].Status)
	assert.NotEmpty(t, byStudent[5].Serial)
	assert.Equal(t, IssueStatusAlreadyIssued, byStudent[6].Status)
	assert.Equal(t, "existing-serial", byStudent[6].Serial)
	assert.Equal(t, IssueStatusFeesNotCleared, byStudent[8].Status)
}

func TestGenerateClassAdmitCardsOverrideIssuesDespiteFees(t *testing.T) {
	e := testExam(t, "10")
	blocked := enrolledStudent(t, "10", 8, "ADM-302", 9)

	cardRepo := &mockAdmitCardRepository{}
	feeRepo := &mockFeeRepository{}
	studentRepo := &mockStudentRepository{
		ListFunc: func(ctx context.Context, filter student.ListFilter) ([]*student.Student, int64, error) {
			return []*student.Student{blocked}, 1, nil
		},
	}
	uc := NewIssueAdmitCardUseCase(
		&mockExamRepository{
			GetByIDFunc: func(ctx context.Context, id uint) (*exam.Exam, error) { return e, nil },
		},
		cardRepo, studentRepo, feeRepo, logger.NewLogger(),
	)

	feeChecks := 0
	feeRepo.HasUnsettledOverdueFunc = func(ctx context.Context, studentID uint) (bool, error) {
		feeChecks++
		return true, nil
	}

	result, err := uc.ExecuteForClass(context.Background(), GenerateClassAdmitCardsCommand{ExamID: 2, FeeOverride: true})
	require.NoError(t, err)

	assert.Equal(t, 1, result.Issued)
	assert.Zero(t, result.Skipped)
	assert.Zero(t, feeChecks, "override must skip the fee lookup entirely")
}

func TestIssueAdmitCardRejectsWrongClass(t *testing.T) {
	e := testExam(t, "10")
	s := classStudent(t, "9")
	uc, _, _ := newIssueFixture(t, e, s)

	_, err := uc.Execute(context.Background(), IssueAdmitCardCommand{ExamID: 2, StudentID: 5})
	require.Error(t, err)
}
