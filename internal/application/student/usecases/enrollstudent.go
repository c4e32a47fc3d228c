package usecases

import (
	"context"
	"time"

	"scholaris/internal/domain/student"
	"scholaris/internal/shared/errors"
	"scholaris/internal/shared/logger"
)

type EnrollStudentCommand struct {
	AdmissionNumber string
	FirstName       string
	LastName        string
	Class           string
	Section         string
	RollNumber      int
	DateOfBirth     *time.Time
	GuardianName    string
	GuardianPhone   string
	GuardianEmail   string
	Address         string
	ParentAccountID *uint
}

// EnrollStudentUseCase admits a new student. The admission number is the
// school's own identifier and must be unique.
type EnrollStudentUseCase struct {
	studentRepo student.Repository
	logger      logger.Interface
}

func NewEnrollStudentUseCase(studentRepo student.Repository, log logger.Interface) *EnrollStudentUseCase {
	return &EnrollStudentUseCase{
		studentRepo: studentRepo,
		logger:      log,
	}
}

func (uc *EnrollStudentUseCase) Execute(ctx context.Context, cmd EnrollStudentCommand) (*student.Student, error) {
	existing, err := uc.studentRepo.GetByAdmissionNumber(ctx, cmd.AdmissionNumber)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, errors.NewConflictError("admission number is already in use")
	}

	s, err := student.NewStudent(cmd.AdmissionNumber, cmd.FirstName, cmd.LastName, cmd.Class, cmd.Section, cmd.RollNumber)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	if err := s.UpdateProfile(cmd.FirstName, cmd.LastName, cmd.GuardianName, cmd.GuardianPhone, cmd.GuardianEmail, cmd.Address, cmd.DateOfBirth); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	if cmd.ParentAccountID != nil {
		if err := s.LinkParentAccount(*cmd.ParentAccountID); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}

	if err := uc.studentRepo.Create(ctx, s); err != nil {
		return nil, err
	}

	uc.logger.Infow("student enrolled",
		"student_id", s.ID(),
		"admission_number", s.AdmissionNumber(),
		"class", s.Class())
	return s, nil
}
