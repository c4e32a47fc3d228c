package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"scholaris/internal/domain/student"
	"scholaris/internal/domain/transport"
	"scholaris/internal/shared/logger"
)

func testRoute(t *testing.T, capacity int) *transport.Route {
	t.Helper()
	route, err := transport.NewRoute("North Loop", "KA-01-F-2233", "R. Kumar", "+919800000001", capacity, 120000,
		[]string{"Market Square", "Mill Road", "Temple Gate"})
	require.NoError(t, err)
	require.NoError(t, route.SetID(4))
	return route
}

func testStudent(t *testing.T, id uint) *student.Student {
	t.Helper()
	s, err := student.NewStudent("ADM-200", "Vik", "Iyer", "8", "B", 21)
	require.NoError(t, err)
	require.NoError(t, s.SetID(id))
	return s
}

func newAssignFixture(t *testing.T, route *transport.Route, s *student.Student, activeCount int64) (*AssignStudentUseCase, *mockAssignmentRepository) {
	t.Helper()
	assignmentRepo := &mockAssignmentRepository{
		CountActiveByRouteFunc: func(ctx context.Context, routeID uint) (int64, error) {
			return activeCount, nil
		},
	}
	uc := NewAssignStudentUseCase(
		&mockRouteRepository{
			GetByIDFunc: func(ctx context.Context, id uint) (*transport.Route, error) { return route, nil },
		},
		assignmentRepo,
		&mockStudentRepository{
			GetByIDFunc: func(ctx context.Context, id uint) (*student.Student, error) { return s, nil },
		},
		logger.NewLogger(),
	)
	return uc, assignmentRepo
}

func TestAssignStudentSeatsAtKnownStop(t *testing.T) {
	route := testRoute(t, 40)
	s := testStudent(t, 11)
	uc, assignmentRepo := newAssignFixture(t, route, s, 12)

	var created *transport.Assignment
	assignmentRepo.CreateFunc = func(ctx context.Context, a *transport.Assignment) error {
		created = a
		return nil
	}

	assignment, err := uc.Execute(context.Background(), AssignStudentCommand{
		RouteID:    4,
		StudentID:  11,
		PickupStop: "Mill Road",
	})
	require.NoError(t, err)

	require.NotNil(t, created)
	assert.Equal(t, uint(4), assignment.RouteID)
	assert.Equal(t, "Mill Road", assignment.PickupStop)
	assert.True(t, assignment.IsActive())
}

func TestAssignStudentStopMatchIsCaseInsensitive(t *testing.T) {
	route := testRoute(t, 40)
	s := testStudent(t, 11)
	uc, _ := newAssignFixture(t, route, s, 0)

	_, err := uc.Execute(context.Background(), AssignStudentCommand{
		RouteID:    4,
		StudentID:  11,
		PickupStop: "mill road",
	})
	require.NoError(t, err)
}

func TestAssignStudentRejectsUnknownStop(t *testing.T) {
	route := testRoute(t, 40)
	s := testStudent(t, 11)
	uc, _ := newAssignFixture(t, route, s, 0)

	_, err := uc.Execute(context.Background(), AssignStudentCommand{
		RouteID:    4,
		StudentID:  11,
		PickupStop: "Airport",
	})
	require.Error(t, err)
}

func TestAssignStudentRejectsFullRoute(t *testing.T) {
	route := testRoute(t, 12)
	s := testStudent(t, 11)
	uc, _ := newAssignFixture(t, route, s, 12)

	_, err := uc.Execute(context.Background(), AssignStudentCommand{
		RouteID:    4,
		StudentID:  11,
		PickupStop: "Mill Road",
	})
	require.Error(t, err)
}

func TestAssignStudentRejectsSecondActiveAssignment(t *testing.T) {
	route := testRoute(t, 40)
	s := testStudent(t, 11)
	uc, assignmentRepo := newAssignFixture(t, route, s, 5)

	existing, err := transport.NewAssignment(2, 11, "Old Stop")
	require.NoError(t, err)
	assignmentRepo.GetActiveByStudentFunc = func(ctx context.Context, studentID uint) (*transport.Assignment, error) {
		return existing, nil
	}

	_, err = uc.Execute(context.Background(), AssignStudentCommand{
		RouteID:    4,
		StudentID:  11,
		PickupStop: "Mill Road",
	})
	require.Error(t, err)
}

func TestEndAssignmentReleasesSeat(t *testing.T) {
	assignment, err := transport.NewAssignment(4, 11, "Mill Road")
	require.NoError(t, err)
	assignment.ID = 77

	var updated *transport.Assignment
	uc := NewEndAssignmentUseCase(
		&mockAssignmentRepository{
			GetByIDFunc: func(ctx context.Context, id uint) (*transport.Assignment, error) { return assignment, nil },
			UpdateFunc:  func(ctx context.Context, a *transport.Assignment) error { updated = a; return nil },
		},
		logger.NewLogger(),
	)

	require.NoError(t, uc.Execute(context.Background(), 77))
	require.NotNil(t, updated)
	assert.False(t, updated.IsActive())

	err = uc.Execute(context.Background(), 77)
	require.Error(t, err, "ending twice must be rejected")
}

func TestUpdateRouteRejectsCapacityBelowActiveSeats(t *testing.T) {
	route := testRoute(t, 40)

	uc := NewUpdateRouteUseCase(
		&mockRouteRepository{
			GetByIDFunc: func(ctx context.Context, id uint) (*transport.Route, error) { return route, nil },
		},
		&mockAssignmentRepository{
			CountActiveByRouteFunc: func(ctx context.Context, routeID uint) (int64, error) { return 30, nil },
		},
		logger.NewLogger(),
	)

	_, err := uc.Execute(context.Background(), RouteCommand{
		RouteID:       4,
		Name:          "North Loop",
		VehicleNumber: "KA-01-F-2233",
		Capacity:      20,
		Stops:         []string{"Market Square"},
	})
	require.Error(t, err)
	assert.Equal(t, 40, route.Capacity())
}

func TestDeleteRouteBlockedWhileSeatsActive(t *testing.T) {
	uc := NewDeleteRouteUseCase(
		&mockRouteRepository{},
		&mockAssignmentRepository{
			CountActiveByRouteFunc: func(ctx context.Context, routeID uint) (int64, error) { return 1, nil },
		},
		logger.NewLogger(),
	)

	err := uc.Execute(context.Background(), 4)
	require.Error(t, err)
}
