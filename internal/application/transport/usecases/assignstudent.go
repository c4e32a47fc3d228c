package usecases

import (
	"context"

	"scholaris/internal/domain/student"
	"scholaris/internal/domain/transport"
	"scholaris/internal/shared/errors"
	"scholaris/internal/shared/logger"
)

type AssignStudentCommand struct {
	RouteID    uint
	StudentID  uint
	PickupStop string
}

// AssignStudentUseCase seats a student on a route. A student holds at most
// one active assignment; moving routes means ending the old one first.
type AssignStudentUseCase struct {
	routeRepo      transport.RouteRepository
	assignmentRepo transport.AssignmentRepository
	studentRepo    student.Repository
	logger         logger.Interface
}

func NewAssignStudentUseCase(
	routeRepo transport.RouteRepository,
	assignmentRepo transport.AssignmentRepository,
	studentRepo student.Repository,
	log logger.Interface,
) *AssignStudentUseCase {
	return &AssignStudentUseCase{
		routeRepo:      routeRepo,
		assignmentRepo: assignmentRepo,
		studentRepo:    studentRepo,
		logger:         log,
	}
}

func (uc *AssignStudentUseCase) Execute(ctx context.Context, cmd AssignStudentCommand) (*transport.Assignment, error) {
	s, err := uc.studentRepo.GetByID(ctx, cmd.StudentID)
	if err != nil {
		return nil, err
	}
	if !s.IsEnrolled() {
		return nil, errors.NewValidationError("only enrolled students may be assigned transport")
	}

	current, err := uc.assignmentRepo.GetActiveByStudent(ctx, cmd.StudentID)
	if err != nil {
		return nil, err
	}
	if current != nil {
		return nil, errors.NewConflictError(transport.ErrAlreadyAssigned.Error())
	}

	route, err := uc.routeRepo.GetByID(ctx, cmd.RouteID)
	if err != nil {
		return nil, err
	}
	if !route.HasStop(cmd.PickupStop) {
		return nil, errors.NewValidationError(transport.ErrUnknownStop.Error())
	}

	active, err := uc.assignmentRepo.CountActiveByRoute(ctx, cmd.RouteID)
	if err != nil {
		return nil, err
	}
	if !route.HasCapacity(active) {
		return nil, errors.NewConflictError(transport.ErrRouteFull.Error())
	}

	assignment, err := transport.NewAssignment(cmd.RouteID, cmd.StudentID, cmd.PickupStop)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.assignmentRepo.Create(ctx, assignment); err != nil {
		return nil, err
	}

	uc.logger.Infow("transport assigned",
		"route_id", cmd.RouteID,
		"student_id", cmd.StudentID,
		"pickup_stop", cmd.PickupStop)
	return assignment, nil
}

type EndAssignmentUseCase struct {
	assignmentRepo transport.AssignmentRepository
	logger         logger.Interface
}

func NewEndAssignmentUseCase(assignmentRepo transport.AssignmentRepository, log logger.Interface) *EndAssignmentUseCase {
	return &EndAssignmentUseCase{
		assignmentRepo: assignmentRepo,
		logger:         log,
	}
}

func (uc *EndAssignmentUseCase) Execute(ctx context.Context, assignmentID uint) error {
	assignment, err := uc.assignmentRepo.GetByID(ctx, assignmentID)
	if err != nil {
		return err
	}
	if !assignment.IsActive() {
		return errors.NewConflictError(transport.ErrAssignmentClosed.Error())
	}

	assignment.End()
	if err := uc.assignmentRepo.Update(ctx, assignment); err != nil {
		return err
	}

	uc.logger.Infow("transport assignment ended", "assignment_id", assignmentID)
	return nil
}

// GetRouteRosterUseCase lists the active assignments of a route for the
// driver sheet.
type GetRouteRosterUseCase struct {
	assignmentRepo transport.AssignmentRepository
}

func NewGetRouteRosterUseCase(assignmentRepo transport.AssignmentRepository) *GetRouteRosterUseCase {
	return &GetRouteRosterUseCase{assignmentRepo: assignmentRepo}
}

func (uc *GetRouteRosterUseCase) Execute(ctx context.Context, routeID uint) ([]*transport.Assignment, error) {
	return uc.assignmentRepo.ListActiveByRoute(ctx, routeID)
}
