package usecases

import (
	"context"

	"scholaris/internal/domain/transport"
	"scholaris/internal/shared/errors"
	"scholaris/internal/shared/logger"
)

type RouteCommand struct {
	RouteID       uint
	Name          string
	VehicleNumber string
	DriverName    string
	DriverPhone   string
	Capacity      int
	MonthlyFee    int64
	Stops         []string
}

type CreateRouteUseCase struct {
	routeRepo transport.RouteRepository
	logger    logger.Interface
}

func NewCreateRouteUseCase(routeRepo transport.RouteRepository, log logger.Interface) *CreateRouteUseCase {
	return &CreateRouteUseCase{
		routeRepo: routeRepo,
		logger:    log,
	}
}

func (uc *CreateRouteUseCase) Execute(ctx context.Context, cmd RouteCommand) (*transport.Route, error) {
	route, err := transport.NewRoute(cmd.Name, cmd.VehicleNumber, cmd.DriverName, cmd.DriverPhone, cmd.Capacity, cmd.MonthlyFee, cmd.Stops)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.routeRepo.Create(ctx, route); err != nil {
		return nil, err
	}

	uc.logger.Infow("route created", "route_id", route.ID(), "name", route.Name())
	return route, nil
}

type UpdateRouteUseCase struct {
	routeRepo      transport.RouteRepository
	assignmentRepo transport.AssignmentRepository
	logger         logger.Interface
}

func NewUpdateRouteUseCase(
	routeRepo transport.RouteRepository,
	assignmentRepo transport.AssignmentRepository,
	log logger.Interface,
) *UpdateRouteUseCase {
	return &UpdateRouteUseCase{
		routeRepo:      routeRepo,
		assignmentRepo: assignmentRepo,
		logger:         log,
	}
}

func (uc *UpdateRouteUseCase) Execute(ctx context.Context, cmd RouteCommand) (*transport.Route, error) {
	route, err := uc.routeRepo.GetByID(ctx, cmd.RouteID)
	if err != nil {
		return nil, err
	}

	// Capacity cannot drop below the seats already taken.
	active, err := uc.assignmentRepo.CountActiveByRoute(ctx, cmd.RouteID)
	if err != nil {
		return nil, err
	}
	if int64(cmd.Capacity) < active {
		return nil, errors.NewConflictError("capacity is below current active assignments")
	}

	if err := route.Update(cmd.Name, cmd.VehicleNumber, cmd.DriverName, cmd.DriverPhone, cmd.Capacity, cmd.MonthlyFee, cmd.Stops); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.routeRepo.Update(ctx, route); err != nil {
		return nil, err
	}

	uc.logger.Infow("route updated", "route_id", route.ID())
	return route, nil
}

type DeleteRouteUseCase struct {
	routeRepo      transport.RouteRepository
	assignmentRepo transport.AssignmentRepository
	logger         logger.Interface
}

func NewDeleteRouteUseCase(
	routeRepo transport.RouteRepository,
	assignmentRepo transport.AssignmentRepository,
	log logger.Interface,
) *DeleteRouteUseCase {
	return &DeleteRouteUseCase{
		routeRepo:      routeRepo,
		assignmentRepo: assignmentRepo,
		logger:         log,
	}
}

func (uc *DeleteRouteUseCase) Execute(ctx context.Context, routeID uint) error {
	active, err := uc.assignmentRepo.CountActiveByRoute(ctx, routeID)
	if err != nil {
		return err
	}
	if active > 0 {
		return errors.NewConflictError("route still has active assignments")
	}

	if err := uc.routeRepo.Delete(ctx, routeID); err != nil {
		return err
	}

	uc.logger.Infow("route deleted", "route_id", routeID)
	return nil
}

type ListRoutesResult struct {
	Routes []*transport.Route
	Total  int64
}

type ListRoutesUseCase struct {
	routeRepo transport.RouteRepository
}

func NewListRoutesUseCase(routeRepo transport.RouteRepository) *ListRoutesUseCase {
	return &ListRoutesUseCase{routeRepo: routeRepo}
}

func (uc *ListRoutesUseCase) Execute(ctx context.Context, offset, limit int) (*ListRoutesResult, error) {
	if limit <= 0 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}
	routes, total, err := uc.routeRepo.List(ctx, offset, limit)
	if err != nil {
		return nil, err
	}
	return &ListRoutesResult{Routes: routes, Total: total}, nil
}
