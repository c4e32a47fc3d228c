package mappers

import (
	"scholaris/internal/domain/attendance"
	"scholaris/internal/infrastructure/persistence/models"
)

type AttendanceMapper struct{}

func NewAttendanceMapper() *AttendanceMapper {
	return &AttendanceMapper{}
}

func (m *AttendanceMapper) ToEntity(model *models.AttendanceModel) *attendance.Record {
	if model == nil {
		return nil
	}

	return &attendance.Record{
		ID:        model.ID,
		StudentID: model.StudentID,
		Class:     model.Class,
		Section:   model.Section,
		Date:      model.Date,
		Status:    attendance.Status(model.Status),
		Remarks:   model.Remarks,
		MarkedBy:  model.MarkedBy,
		CreatedAt: model.CreatedAt,
		UpdatedAt: model.UpdatedAt,
	}
}

func (m *AttendanceMapper) ToModel(entity *attendance.Record) *models.AttendanceModel {
	if entity == nil {
		return nil
	}

	return &models.AttendanceModel{
		ID:        entity.ID,
		StudentID: entity.StudentID,
		Class:     entity.Class,
		Section:   entity.Section,
		Date:      entity.Date,
		Status:    string(entity.Status),
		Remarks:   entity.Remarks,
		MarkedBy:  entity.MarkedBy,
	}
}

func (m *AttendanceMapper) ToEntities(attendanceModels []*models.AttendanceModel) []*attendance.Record {
	entities := make([]*attendance.Record, 0, len(attendanceModels))
	for _, model := range attendanceModels {
		entities = append(entities, m.ToEntity(model))
	}
	return entities
}
