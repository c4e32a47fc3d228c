package usecases

import (
	"context"
	"time"

	"scholaris/internal/domain/exam"
	"scholaris/internal/shared/errors"
	"scholaris/internal/shared/logger"
)

type SubjectInput struct {
	Name     string
	Date     time.Time
	StartsAt string
	EndsAt   string
	MaxMarks int
}

type ScheduleExamCommand struct {
	Name      string
	Term      string
	Class     string
	StartDate time.Time
	EndDate   time.Time
	Subjects  []SubjectInput
}

type ScheduleExamUseCase struct {
	examRepo exam.ExamRepository
	logger   logger.Interface
}

func NewScheduleExamUseCase(examRepo exam.ExamRepository, log logger.Interface) *ScheduleExamUseCase {
	return &ScheduleExamUseCase{
		examRepo: examRepo,
		logger:   log,
	}
}

func (uc *ScheduleExamUseCase) Execute(ctx context.Context, cmd ScheduleExamCommand) (*exam.Exam, error) {
	subjects := make([]exam.Subject, 0, len(cmd.Subjects))
	for _, s := range cmd.Subjects {
		subjects = append(subjects, exam.Subject{
			Name:     s.Name,
			Date:     s.Date,
			StartsAt: s.StartsAt,
			EndsAt:   s.EndsAt,
			MaxMarks: s.MaxMarks,
		})
	}

	e, err := exam.NewExam(cmd.Name, cmd.Term, cmd.Class, cmd.StartDate, cmd.EndDate, subjects)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.examRepo.Create(ctx, e); err != nil {
		return nil, err
	}

	uc.logger.Infow("exam scheduled",
		"exam_id", e.ID(),
		"name", e.Name(),
		"class", e.Class())
	return e, nil
}

type ListExamsResult struct {
	Exams []*exam.Exam
	Total int64
}

type ListExamsUseCase struct {
	examRepo exam.ExamRepository
}

func NewListExamsUseCase(examRepo exam.ExamRepository) *ListExamsUseCase {
	return &ListExamsUseCase{examRepo: examRepo}
}

func (uc *ListExamsUseCase) Execute(ctx context.Context, offset, limit int) (*ListExamsResult, error) {
	if limit <= 0 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}
	exams, total, err := uc.examRepo.List(ctx, offset, limit)
	if err != nil {
		return nil, err
	}
	return &ListExamsResult{Exams: exams, Total: total}, nil
}
