package transport

import (
	"fmt"
	"strings"
	"time"
)

// Assignment links a student to a route at a pickup stop. An assignment
// with a nil EndedAt is active and counts against route capacity.
type Assignment struct {
	ID         uint
	RouteID    uint
	StudentID  uint
	PickupStop string
	StartedAt  time.Time
	EndedAt    *time.Time
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func NewAssignment(routeID, studentID uint, pickupStop string) (*Assignment, error) {
	if routeID == 0 {
		return nil, fmt.Errorf("route ID is required")
	}
	if studentID == 0 {
		return nil, fmt.Errorf("student ID is required")
	}
	if strings.TrimSpace(pickupStop) == "" {
		return nil, fmt.Errorf("pickup stop is required")
	}

	return &Assignment{
		RouteID:    routeID,
		StudentID:  studentID,
		PickupStop: strings.TrimSpace(pickupStop),
		StartedAt:  time.Now(),
	}, nil
}

func (a *Assignment) IsActive() bool {
	return a.EndedAt == nil
}

// End releases the seat. Ending twice is a no-op.
func (a *Assignment) End() {
	if a.EndedAt != nil {
		return
	}
	now := time.Now()
	a.EndedAt = &now
}
