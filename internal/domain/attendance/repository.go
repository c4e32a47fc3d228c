package attendance

import (
	"context"
	"time"
)

type Repository interface {
	// Upsert writes the records for one class+date; a record for an
	// already marked student+date replaces the earlier status.
	Upsert(ctx context.Context, records []*Record) error
	ListByClassDate(ctx context.Context, class, section string, date time.Time) ([]*Record, error)
	ListByStudentRange(ctx context.Context, studentID uint, from, to time.Time) ([]*Record, error)
	SummaryByStudent(ctx context.Context, studentID uint, from, to time.Time) (Summary, error)
	// ListAbsentees returns all absent records for a date, feeding the
	// daily alert job.
	ListAbsentees(ctx context.Context, date time.Time) ([]*Record, error)
}
