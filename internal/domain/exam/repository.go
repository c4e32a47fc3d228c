package exam

import "context"

type ExamRepository interface {
	Create(ctx context.Context, e *Exam) error
	GetByID(ctx context.Context, id uint) (*Exam, error)
	Update(ctx context.Context, e *Exam) error
	List(ctx context.Context, offset, limit int) ([]*Exam, int64, error)
}

type AdmitCardRepository interface {
	Create(ctx context.Context, card *AdmitCard) error
	// GetByExamAndStudent returns (nil, nil) when no card exists yet.
	GetByExamAndStudent(ctx context.Context, examID, studentID uint) (*AdmitCard, error)
	GetBySerial(ctx context.Context, serial string) (*AdmitCard, error)
	ListByExam(ctx context.Context, examID uint) ([]*AdmitCard, error)
}
