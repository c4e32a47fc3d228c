package usecases

import (
	"context"
	"time"

	"scholaris/internal/domain/fees"
	"scholaris/internal/domain/student"
	"scholaris/internal/infrastructure/pdf"
	"scholaris/internal/shared/logger"
)

// ReminderMailer sends the guardian-facing fee reminder.
type ReminderMailer interface {
	SendFeeReminder(to, studentName, invoiceTitle, amount, dueDate string) error
}

type OverdueSweepResult struct {
	Flagged   int
	Reminders int
}

// OverdueSweepUseCase flags pending and partial invoices past their due
// date and emails guardians a reminder. Runs on a schedule; re-running is
// safe because already-overdue invoices are not candidates.
type OverdueSweepUseCase struct {
	feeRepo     fees.Repository
	studentRepo student.Repository
	mailer      ReminderMailer
	logger      logger.Interface
}

func NewOverdueSweepUseCase(
	feeRepo fees.Repository,
	studentRepo student.Repository,
	mailer ReminderMailer,
	log logger.Interface,
) *OverdueSweepUseCase {
	return &OverdueSweepUseCase{
		feeRepo:     feeRepo,
		studentRepo: studentRepo,
		mailer:      mailer,
		logger:      log,
	}
}

func (uc *OverdueSweepUseCase) Execute(ctx context.Context, asOf time.Time) (*OverdueSweepResult, error) {
	candidates, err := uc.feeRepo.ListOverdueCandidates(ctx, asOf)
	if err != nil {
		return nil, err
	}

	result := &OverdueSweepResult{}
	for _, inv := range candidates {
		if !inv.MarkOverdue(asOf) {
			continue
		}
		if err := uc.feeRepo.Update(ctx, inv); err != nil {
			uc.logger.Errorw("failed to flag overdue invoice", "invoice_id", inv.ID(), "error", err)
			continue
		}
		result.Flagged++

		s, err := uc.studentRepo.GetByID(ctx, inv.StudentID())
		if err != nil {
			uc.logger.Warnw("student not found for overdue reminder", "invoice_id", inv.ID(), "error", err)
			continue
		}
		if s.GuardianEmail() == "" {
			continue
		}
		if err := uc.mailer.SendFeeReminder(s.GuardianEmail(), s.FullName(), inv.Title(),
			pdf.FormatAmount(inv.Balance()), inv.DueDate().Format("02 Jan 2006")); err != nil {
			uc.logger.Warnw("failed to send fee reminder", "invoice_id", inv.ID(), "error", err)
			continue
		}
		result.Reminders++
	}

	uc.logger.Infow("overdue sweep finished",
		"candidates", len(candidates),
		"flagged", result.Flagged,
		"reminders", result.Reminders)
	return result, nil
}
