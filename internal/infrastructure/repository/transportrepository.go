package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"scholaris/internal/domain/transport"
	"scholaris/internal/infrastructure/persistence/mappers"
	"scholaris/internal/infrastructure/persistence/models"
	"scholaris/internal/shared/db"
	"scholaris/internal/shared/errors"
)

type RouteRepository struct {
	db     *gorm.DB
	mapper *mappers.TransportMapper
}

func NewRouteRepository(database *gorm.DB) transport.RouteRepository {
	return &RouteRepository{
		db:     database,
		mapper: mappers.NewTransportMapper(),
	}
}

func (r *RouteRepository) Create(ctx context.Context, route *transport.Route) error {
	model, err := r.mapper.RouteToModel(route)
	if err != nil {
		return err
	}
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to create route: %w", err)
	}
	return route.SetID(model.ID)
}

func (r *RouteRepository) GetByID(ctx context.Context, id uint) (*transport.Route, error) {
	var model models.RouteModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("route not found")
		}
		return nil, fmt.Errorf("failed to get route: %w", err)
	}
	return r.mapper.RouteToEntity(&model)
}

func (r *RouteRepository) Update(ctx context.Context, route *transport.Route) error {
	model, err := r.mapper.RouteToModel(route)
	if err != nil {
		return err
	}
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Save(model).Error; err != nil {
		return fmt.Errorf("failed to update route: %w", err)
	}
	return nil
}

func (r *RouteRepository) Delete(ctx context.Context, id uint) error {
	tx := db.GetTxFromContext(ctx, r.db)
	result := tx.Delete(&models.RouteModel{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete route: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("route not found")
	}
	return nil
}

func (r *RouteRepository) List(ctx context.Context, offset, limit int) ([]*transport.Route, int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var total int64
	if err := tx.Model(&models.RouteModel{}).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count routes: %w", err)
	}

	var routeModels []*models.RouteModel
	if err := tx.
		Order("name").
		Offset(offset).
		Limit(limit).
		Find(&routeModels).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list routes: %w", err)
	}

	entities, err := r.mapper.RoutesToEntities(routeModels)
	if err != nil {
		return nil, 0, err
	}
	return entities, total, nil
}

type AssignmentRepository struct {
	db     *gorm.DB
	mapper *mappers.TransportMapper
}

func NewAssignmentRepository(database *gorm.DB) transport.AssignmentRepository {
	return &AssignmentRepository{
		db:     database,
		mapper: mappers.NewTransportMapper(),
	}
}

func (r *AssignmentRepository) Create(ctx context.Context, a *transport.Assignment) error {
	model := r.mapper.AssignmentToModel(a)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to create assignment: %w", err)
	}
	a.ID = model.ID
	return nil
}

func (r *AssignmentRepository) GetByID(ctx context.Context, id uint) (*transport.Assignment, error) {
	var model models.TransportAssignmentModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("assignment not found")
		}
		return nil, fmt.Errorf("failed to get assignment: %w", err)
	}
	return r.mapper.AssignmentToEntity(&model), nil
}

func (r *AssignmentRepository) GetActiveByStudent(ctx context.Context, studentID uint) (*transport.Assignment, error) {
	var model models.TransportAssignmentModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Where("student_id = ? AND ended_at IS NULL", studentID).First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get active assignment: %w", err)
	}
	return r.mapper.AssignmentToEntity(&model), nil
}

func (r *AssignmentRepository) Update(ctx context.Context, a *transport.Assignment) error {
	model := r.mapper.AssignmentToModel(a)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Save(model).Error; err != nil {
		return fmt.Errorf("failed to update assignment: %w", err)
	}
	return nil
}

func (r *AssignmentRepository) ListActiveByRoute(ctx context.Context, routeID uint) ([]*transport.Assignment, error) {
	var assignmentModels []*models.TransportAssignmentModel
	tx := db.GetTxFromContext(ctx, r.db)

	err := tx.Where("route_id = ? AND ended_at IS NULL", routeID).
		Order("pickup_stop").
		Find(&assignmentModels).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list active assignments: %w", err)
	}
	return r.mapper.AssignmentsToEntities(assignmentModels), nil
}

func (r *AssignmentRepository) CountActiveByRoute(ctx context.Context, routeID uint) (int64, error) {
	var count int64
	tx := db.GetTxFromContext(ctx, r.db)

	err := tx.Model(&models.TransportAssignmentModel{}).
		Where("route_id = ? AND ended_at IS NULL", routeID).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count active assignments: %w", err)
	}
	return count, nil
}
