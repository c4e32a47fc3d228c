package transport

import "context"

type RouteRepository interface {
	Create(ctx context.Context, r *Route) error
	GetByID(ctx context.Context, id uint) (*Route, error)
	Update(ctx context.Context, r *Route) error
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context, offset, limit int) ([]*Route, int64, error)
}

type AssignmentRepository interface {
	Create(ctx context.Context, a *Assignment) error
	GetByID(ctx context.Context, id uint) (*Assignment, error)
	// GetActiveByStudent returns (nil, nil) when the student has no
	// active assignment.
	GetActiveByStudent(ctx context.Context, studentID uint) (*Assignment, error)
	Update(ctx context.Context, a *Assignment) error
	ListActiveByRoute(ctx context.Context, routeID uint) ([]*Assignment, error)
	CountActiveByRoute(ctx context.Context, routeID uint) (int64, error)
}
