package usecases

import (
	"context"

	"github.com/google/uuid"

	"scholaris/internal/domain/exam"
	"scholaris/internal/domain/fees"
	"scholaris/internal/domain/student"
	"scholaris/internal/infrastructure/pdf"
	"scholaris/internal/shared/config"
	"scholaris/internal/shared/errors"
	"scholaris/internal/shared/logger"
)

type IssueAdmitCardCommand struct {
	ExamID    uint
	StudentID uint
	// FeeOverride lets an administrator issue despite overdue fees; the
	// override is recorded on the card.
	FeeOverride bool
}

// CardRenderer produces the printable admit card from assembled data.
type CardRenderer interface {
	Render(data pdf.AdmitCardData) ([]byte, error)
}

// IssueAdmitCardUseCase issues one card per student per exam. Students
// with overdue fees are refused unless the override flag is set.
type IssueAdmitCardUseCase struct {
	examRepo    exam.ExamRepository
	cardRepo    exam.AdmitCardRepository
	studentRepo student.Repository
	feeRepo     fees.Repository
	logger      logger.Interface
}

func NewIssueAdmitCardUseCase(
	examRepo exam.ExamRepository,
	cardRepo exam.AdmitCardRepository,
	studentRepo student.Repository,
	feeRepo fees.Repository,
	log logger.Interface,
) *IssueAdmitCardUseCase {
	return &IssueAdmitCardUseCase{
		examRepo:    examRepo,
		cardRepo:    cardRepo,
		studentRepo: studentRepo,
		feeRepo:     feeRepo,
		logger:      log,
	}
}

func (uc *IssueAdmitCardUseCase) Execute(ctx context.Context, cmd IssueAdmitCardCommand) (*exam.AdmitCard, error) {
	e, err := uc.examRepo.GetByID(ctx, cmd.ExamID)
	if err != nil {
		return nil, err
	}
	s, err := uc.studentRepo.GetByID(ctx, cmd.StudentID)
	if err != nil {
		return nil, err
	}
	if !s.IsEnrolled() {
		return nil, errors.NewValidationError("student is not enrolled")
	}
	if s.Class() != e.Class() {
		return nil, errors.NewValidationError("student is not in the exam's class")
	}

	existing, err := uc.cardRepo.GetByExamAndStudent(ctx, cmd.ExamID, cmd.StudentID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, errors.NewConflictError(exam.ErrAlreadyIssued.Error())
	}

	if !cmd.FeeOverride {
		blocked, err := uc.feeRepo.HasUnsettledOverdue(ctx, cmd.StudentID)
		if err != nil {
			return nil, err
		}
		if blocked {
			return nil, errors.NewConflictError(exam.ErrFeesNotCleared.Error())
		}
	}

	card, err := exam.NewAdmitCard(cmd.ExamID, cmd.StudentID, uuid.NewString(), cmd.FeeOverride)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.cardRepo.Create(ctx, card); err != nil {
		return nil, err
	}

	uc.logger.Infow("admit card issued",
		"exam_id", cmd.ExamID,
		"student_id", cmd.StudentID,
		"serial", card.Serial,
		"fee_override", cmd.FeeOverride)
	return card, nil
}

type GenerateClassAdmitCardsCommand struct {
	ExamID      uint
	FeeOverride bool
}

// Per-student outcomes of a class-wide generation run.
const (
	IssueStatusIssued         = "issued"
	IssueStatusAlreadyIssued  = "already_issued"
	IssueStatusFeesNotCleared = "fees_not_cleared"
)

type AdmitCardIssue struct {
	StudentID uint
	Name      string
	Status    string
	Serial    string
}

type GenerateClassAdmitCardsResult struct {
	Issued  int
	Skipped int
	Cards   []AdmitCardIssue
}

// ExecuteForClass issues cards for every enrolled student of the exam's
// class in one run. Students with a card already or with overdue fees are
// skipped, each reported with a per-student status.
func (uc *IssueAdmitCardUseCase) ExecuteForClass(ctx context.Context, cmd GenerateClassAdmitCardsCommand) (*GenerateClassAdmitCardsResult, error) {
	e, err := uc.examRepo.GetByID(ctx, cmd.ExamID)
	if err != nil {
		return nil, err
	}

	result := &GenerateClassAdmitCardsResult{}
	const pageSize = 200
	for offset := 0; ; offset += pageSize {
		students, total, err := uc.studentRepo.List(ctx, student.ListFilter{
			Class:  e.Class(),
			Status: student.StatusEnrolled.String(),
			Offset: offset,
			Limit:  pageSize,
		})
		if err != nil {
			return nil, err
		}
		for _, s := range students {
			issue, err := uc.issueOne(ctx, e, s, cmd.FeeOverride)
			if err != nil {
				return nil, err
			}
			result.Cards = append(result.Cards, issue)
			if issue.Status == IssueStatusIssued {
				result.Issued++
			} else {
				result.Skipped++
			}
		}
		if len(students) == 0 || int64(offset+len(students)) >= total {
			break
		}
	}

	uc.logger.Infow("class admit cards generated",
		"exam_id", cmd.ExamID,
		"class", e.Class(),
		"issued", result.Issued,
		"skipped", result.Skipped,
		"fee_override", cmd.FeeOverride)
	return result, nil
}

func (uc *IssueAdmitCardUseCase) issueOne(ctx context.Context, e *exam.Exam, s *student.Student, feeOverride bool) (AdmitCardIssue, error) {
	issue := AdmitCardIssue{StudentID: s.ID(), Name: s.FullName()}

	existing, err := uc.cardRepo.GetByExamAndStudent(ctx, e.ID(), s.ID())
	if err != nil {
		return issue, err
	}
	if existing != nil {
		issue.Status = IssueStatusAlreadyIssued
		issue.Serial = existing.Serial
		return issue, nil
	}

	if !feeOverride {
		blocked, err := uc.feeRepo.HasUnsettledOverdue(ctx, s.ID())
		if err != nil {
			return issue, err
		}
		if blocked {
			issue.Status = IssueStatusFeesNotCleared
			return issue, nil
		}
	}

	card, err := exam.NewAdmitCard(e.ID(), s.ID(), uuid.NewString(), feeOverride)
	if err != nil {
		return issue, errors.NewValidationError(err.Error())
	}
	if err := uc.cardRepo.Create(ctx, card); err != nil {
		return issue, err
	}

	issue.Status = IssueStatusIssued
	issue.Serial = card.Serial
	return issue, nil
}

// DownloadAdmitCardUseCase renders the PDF for an already issued card.
type DownloadAdmitCardUseCase struct {
	examRepo    exam.ExamRepository
	cardRepo    exam.AdmitCardRepository
	studentRepo student.Repository
	renderer    CardRenderer
	school      config.SchoolConfig
}

func NewDownloadAdmitCardUseCase(
	examRepo exam.ExamRepository,
	cardRepo exam.AdmitCardRepository,
	studentRepo student.Repository,
	renderer CardRenderer,
	school config.SchoolConfig,
) *DownloadAdmitCardUseCase {
	return &DownloadAdmitCardUseCase{
		examRepo:    examRepo,
		cardRepo:    cardRepo,
		studentRepo: studentRepo,
		renderer:    renderer,
		school:      school,
	}
}

func (uc *DownloadAdmitCardUseCase) Execute(ctx context.Context, serial string) ([]byte, error) {
	card, err := uc.cardRepo.GetBySerial(ctx, serial)
	if err != nil {
		return nil, err
	}
	e, err := uc.examRepo.GetByID(ctx, card.ExamID)
	if err != nil {
		return nil, err
	}
	s, err := uc.studentRepo.GetByID(ctx, card.StudentID)
	if err != nil {
		return nil, err
	}

	subjects := make([]pdf.AdmitCardSubject, 0, len(e.Subjects()))
	for _, subject := range e.Subjects() {
		subjects = append(subjects, pdf.AdmitCardSubject{
			Name:     subject.Name,
			Date:     subject.Date,
			StartsAt: subject.StartsAt,
			EndsAt:   subject.EndsAt,
			MaxMarks: subject.MaxMarks,
		})
	}

	return uc.renderer.Render(pdf.AdmitCardData{
		SchoolName:      uc.school.Name,
		SchoolAddress:   uc.school.Address,
		ExamName:        e.Name(),
		Term:            e.Term(),
		Serial:          card.Serial,
		StudentName:     s.FullName(),
		AdmissionNumber: s.AdmissionNumber(),
		Class:           s.Class(),
		Section:         s.Section(),
		RollNumber:      s.RollNumber(),
		Subjects:        subjects,
		IssuedAt:        card.IssuedAt,
	})
}
