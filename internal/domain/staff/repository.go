package staff

import "context"

type ListFilter struct {
	Department string
	Status     string
	Search     string
	Offset     int
	Limit      int
}

type Repository interface {
	Create(ctx context.Context, s *Staff) error
	GetByID(ctx context.Context, id uint) (*Staff, error)
	// GetByEmployeeNumber returns (nil, nil) when no record matches.
	GetByEmployeeNumber(ctx context.Context, employeeNumber string) (*Staff, error)
	Update(ctx context.Context, s *Staff) error
	List(ctx context.Context, filter ListFilter) ([]*Staff, int64, error)
}
