package exam

import (
	"fmt"
	"strings"
	"time"
)

// Subject is one scheduled paper within an exam.
type Subject struct {
	Name     string
	Date     time.Time
	StartsAt string
	EndsAt   string
	MaxMarks int
}

// Exam is one examination for one class: a name, a window, and the
// scheduled subjects. Admit cards are generated against it.
type Exam struct {
	id        uint
	name      string
	term      string
	class     string
	startDate time.Time
	endDate   time.Time
	subjects  []Subject
	createdAt time.Time
	updatedAt time.Time
}

func NewExam(name, term, class string, startDate, endDate time.Time, subjects []Subject) (*Exam, error) {
	if strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("exam name is required")
	}
	if strings.TrimSpace(class) == "" {
		return nil, fmt.Errorf("class is required")
	}
	if startDate.IsZero() || endDate.IsZero() {
		return nil, fmt.Errorf("start and end dates are required")
	}
	if endDate.Before(startDate) {
		return nil, fmt.Errorf("end date precedes start date")
	}
	if len(subjects) == 0 {
		return nil, fmt.Errorf("at least one subject is required")
	}
	for _, s := range subjects {
		if strings.TrimSpace(s.Name) == "" {
			return nil, fmt.Errorf("subject name is required")
		}
		if s.Date.Before(startDate) || s.Date.After(endDate) {
			return nil, fmt.Errorf("subject %q is scheduled outside the exam window", s.Name)
		}
		if s.MaxMarks <= 0 {
			return nil, fmt.Errorf("subject %q needs positive max marks", s.Name)
		}
	}

	now := time.Now()
	return &Exam{
		name:      strings.TrimSpace(name),
		term:      strings.TrimSpace(term),
		class:     strings.TrimSpace(class),
		startDate: startDate,
		endDate:   endDate,
		subjects:  subjects,
		createdAt: now,
		updatedAt: now,
	}, nil
}

type ExamData struct {
	ID        uint
	Name      string
	Term      string
	Class     string
	StartDate time.Time
	EndDate   time.Time
	Subjects  []Subject
	CreatedAt time.Time
	UpdatedAt time.Time
}

func Reconstruct(data ExamData) (*Exam, error) {
	if data.ID == 0 {
		return nil, fmt.Errorf("exam ID cannot be zero")
	}
	return &Exam{
		id:        data.ID,
		name:      data.Name,
		term:      data.Term,
		class:     data.Class,
		startDate: data.StartDate,
		endDate:   data.EndDate,
		subjects:  data.Subjects,
		createdAt: data.CreatedAt,
		updatedAt: data.UpdatedAt,
	}, nil
}

func (e *Exam) ID() uint             { return e.id }
func (e *Exam) Name() string         { return e.name }
func (e *Exam) Term() string         { return e.term }
func (e *Exam) Class() string        { return e.class }
func (e *Exam) StartDate() time.Time { return e.startDate }
func (e *Exam) EndDate() time.Time   { return e.endDate }
func (e *Exam) CreatedAt() time.Time { return e.createdAt }
func (e *Exam) UpdatedAt() time.Time { return e.updatedAt }

func (e *Exam) Subjects() []Subject {
	out := make([]Subject, len(e.subjects))
	copy(out, e.subjects)
	return out
}

func (e *Exam) SetID(id uint) error {
	if e.id != 0 {
		return fmt.Errorf("exam ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("exam ID cannot be zero")
	}
	e.id = id
	return nil
}
