package usecases

import (
	"context"
	"time"

	"scholaris/internal/domain/attendance"
	"scholaris/internal/domain/student"
	"scholaris/internal/shared/logger"
)

// AbsenceMailer sends the guardian-facing absence email.
type AbsenceMailer interface {
	SendAbsenceAlert(to, studentName, date string) error
}

// AbsenceTexter sends the guardian-facing absence SMS.
type AbsenceTexter interface {
	Send(ctx context.Context, phone, message string) error
}

type SendAbsenceAlertsResult struct {
	Absentees int
	Emailed   int
	Texted    int
}

// SendAbsenceAlertsUseCase notifies guardians of every student marked
// absent on a date. Individual delivery failures are logged and skipped;
// one unreachable guardian must not stop the rest of the run.
type SendAbsenceAlertsUseCase struct {
	attendanceRepo attendance.Repository
	studentRepo    student.Repository
	mailer         AbsenceMailer
	texter         AbsenceTexter
	logger         logger.Interface
}

func NewSendAbsenceAlertsUseCase(
	attendanceRepo attendance.Repository,
	studentRepo student.Repository,
	mailer AbsenceMailer,
	texter AbsenceTexter,
	log logger.Interface,
) *SendAbsenceAlertsUseCase {
	return &SendAbsenceAlertsUseCase{
		attendanceRepo: attendanceRepo,
		studentRepo:    studentRepo,
		mailer:         mailer,
		texter:         texter,
		logger:         log,
	}
}

func (uc *SendAbsenceAlertsUseCase) Execute(ctx context.Context, date time.Time) (*SendAbsenceAlertsResult, error) {
	absentees, err := uc.attendanceRepo.ListAbsentees(ctx, date)
	if err != nil {
		return nil, err
	}

	result := &SendAbsenceAlertsResult{Absentees: len(absentees)}
	day := attendance.NormalizeDate(date).Format("02 Jan 2006")

	for _, record := range absentees {
		s, err := uc.studentRepo.GetByID(ctx, record.StudentID)
		if err != nil {
			uc.logger.Warnw("absent student not found, skipping alert", "student_id", record.StudentID, "error", err)
			continue
		}

		if s.GuardianEmail() != "" {
			if err := uc.mailer.SendAbsenceAlert(s.GuardianEmail(), s.FullName(), day); err != nil {
				uc.logger.Warnw("failed to email absence alert", "student_id", s.ID(), "error", err)
			} else {
				result.Emailed++
			}
		}
		if s.GuardianPhone() != "" {
			message := s.FullName() + " was marked absent on " + day + "."
			if err := uc.texter.Send(ctx, s.GuardianPhone(), message); err != nil {
				uc.logger.Warnw("failed to text absence alert", "student_id", s.ID(), "error", err)
			} else {
				result.Texted++
			}
		}
	}

	uc.logger.Infow("absence alerts sent",
		"date", day,
		"absentees", result.Absentees,
		"emailed", result.Emailed,
		"texted", result.Texted)
	return result, nil
}
