package notice

import (
	"context"
	"time"

	"scholaris/internal/shared/authorization"
)

type Repository interface {
	Create(ctx context.Context, a *Announcement) error
	GetByID(ctx context.Context, id uint) (*Announcement, error)
	Update(ctx context.Context, a *Announcement) error
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context, offset, limit int) ([]*Announcement, int64, error)
	// ListActiveFor returns announcements visible to the role at the
	// given instant, newest first.
	ListActiveFor(ctx context.Context, role authorization.UserRole, at time.Time) ([]*Announcement, error)
}
