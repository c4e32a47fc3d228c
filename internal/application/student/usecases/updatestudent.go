package usecases

import (
	"context"
	"time"

	"scholaris/internal/domain/student"
	"scholaris/internal/shared/errors"
	"scholaris/internal/shared/logger"
)

type UpdateStudentCommand struct {
	StudentID     uint
	FirstName     string
	LastName      string
	GuardianName  string
	GuardianPhone string
	GuardianEmail string
	Address       string
	DateOfBirth   *time.Time
}

type UpdateStudentUseCase struct {
	studentRepo student.Repository
	logger      logger.Interface
}

func NewUpdateStudentUseCase(studentRepo student.Repository, log logger.Interface) *UpdateStudentUseCase {
	return &UpdateStudentUseCase{
		studentRepo: studentRepo,
		logger:      log,
	}
}

func (uc *UpdateStudentUseCase) Execute(ctx context.Context, cmd UpdateStudentCommand) (*student.Student, error) {
	s, err := uc.studentRepo.GetByID(ctx, cmd.StudentID)
	if err != nil {
		return nil, err
	}

	if err := s.UpdateProfile(cmd.FirstName, cmd.LastName, cmd.GuardianName, cmd.GuardianPhone, cmd.GuardianEmail, cmd.Address, cmd.DateOfBirth); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.studentRepo.Update(ctx, s); err != nil {
		return nil, err
	}

	uc.logger.Infow("student updated", "student_id", s.ID())
	return s, nil
}

type AssignClassCommand struct {
	StudentID  uint
	Class      string
	Section    string
	RollNumber int
}

// AssignClassUseCase moves a student to a new class, section and roll,
// e.g. at promotion time.
type AssignClassUseCase struct {
	studentRepo student.Repository
	logger      logger.Interface
}

func NewAssignClassUseCase(studentRepo student.Repository, log logger.Interface) *AssignClassUseCase {
	return &AssignClassUseCase{
		studentRepo: studentRepo,
		logger:      log,
	}
}

func (uc *AssignClassUseCase) Execute(ctx context.Context, cmd AssignClassCommand) (*student.Student, error) {
	s, err := uc.studentRepo.GetByID(ctx, cmd.StudentID)
	if err != nil {
		return nil, err
	}

	if err := s.AssignToClass(cmd.Class, cmd.Section, cmd.RollNumber); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.studentRepo.Update(ctx, s); err != nil {
		return nil, err
	}

	uc.logger.Infow("student reassigned",
		"student_id", s.ID(),
		"class", cmd.Class,
		"section", cmd.Section)
	return s, nil
}

type ChangeEnrollmentStatusCommand struct {
	StudentID uint
	Status    string
}

type ChangeEnrollmentStatusUseCase struct {
	studentRepo student.Repository
	logger      logger.Interface
}

func NewChangeEnrollmentStatusUseCase(studentRepo student.Repository, log logger.Interface) *ChangeEnrollmentStatusUseCase {
	return &ChangeEnrollmentStatusUseCase{
		studentRepo: studentRepo,
		logger:      log,
	}
}

func (uc *ChangeEnrollmentStatusUseCase) Execute(ctx context.Context, cmd ChangeEnrollmentStatusCommand) error {
	s, err := uc.studentRepo.GetByID(ctx, cmd.StudentID)
	if err != nil {
		return err
	}

	if err := s.ChangeStatus(student.EnrollmentStatus(cmd.Status)); err != nil {
		return errors.NewValidationError(err.Error())
	}

	if err := uc.studentRepo.Update(ctx, s); err != nil {
		return err
	}

	uc.logger.Infow("enrollment status changed", "student_id", s.ID(), "status", cmd.Status)
	return nil
}
