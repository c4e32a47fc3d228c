package student

import "context"

// ListFilter narrows student listings; zero values mean no filter.
type ListFilter struct {
	Class   string
	Section string
	Status  string
	Search  string
	Offset  int
	Limit   int
}

type Repository interface {
	Create(ctx context.Context, s *Student) error
	GetByID(ctx context.Context, id uint) (*Student, error)
	// GetByAdmissionNumber returns (nil, nil) when no student matches.
	GetByAdmissionNumber(ctx context.Context, admissionNumber string) (*Student, error)
	Update(ctx context.Context, s *Student) error
	List(ctx context.Context, filter ListFilter) ([]*Student, int64, error)
	// ListByClass returns enrolled students of a class+section ordered by
	// roll number.
	ListByClass(ctx context.Context, class, section string) ([]*Student, error)
	// ListByParentAccountID powers the parent-portal "my children" view.
	ListByParentAccountID(ctx context.Context, accountID uint) ([]*Student, error)
}
