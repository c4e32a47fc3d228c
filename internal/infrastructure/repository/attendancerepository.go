package repository

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"scholaris/internal/domain/attendance"
	"scholaris/internal/infrastructure/persistence/mappers"
	"scholaris/internal/infrastructure/persistence/models"
	"scholaris/internal/shared/db"
)

type AttendanceRepository struct {
	db     *gorm.DB
	mapper *mappers.AttendanceMapper
}

func NewAttendanceRepository(database *gorm.DB) attendance.Repository {
	return &AttendanceRepository{
		db:     database,
		mapper: mappers.NewAttendanceMapper(),
	}
}

func (r *AttendanceRepository) Upsert(ctx context.Context, records []*attendance.Record) error {
	if len(records) == 0 {
		return nil
	}

	recordModels := make([]*models.AttendanceModel, 0, len(records))
	for _, rec := range records {
		recordModels = append(recordModels, r.mapper.ToModel(rec))
	}

	tx := db.GetTxFromContext(ctx, r.db)
	err := tx.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "student_id"}, {Name: "date"}},
		DoUpdates: clause.AssignmentColumns([]string{"status", "remarks", "marked_by", "updated_at"}),
	}).Create(recordModels).Error
	if err != nil {
		return fmt.Errorf("failed to upsert attendance records: %w", err)
	}
	return nil
}

func (r *AttendanceRepository) ListByClassDate(ctx context.Context, class, section string, date time.Time) ([]*attendance.Record, error) {
	var recordModels []*models.AttendanceModel
	tx := db.GetTxFromContext(ctx, r.db)

	err := tx.Where("class = ? AND section = ? AND date = ?", class, section, attendance.NormalizeDate(date)).
		Order("student_id").
		Find(&recordModels).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance by class and date: %w", err)
	}
	return r.mapper.ToEntities(recordModels), nil
}

func (r *AttendanceRepository) ListByStudentRange(ctx context.Context, studentID uint, from, to time.Time) ([]*attendance.Record, error) {
	var recordModels []*models.AttendanceModel
	tx := db.GetTxFromContext(ctx, r.db)

	err := tx.Where("student_id = ? AND date >= ? AND date <= ?",
		studentID, attendance.NormalizeDate(from), attendance.NormalizeDate(to)).
		Order("date").
		Find(&recordModels).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance by student: %w", err)
	}
	return r.mapper.ToEntities(recordModels), nil
}

func (r *AttendanceRepository) SummaryByStudent(ctx context.Context, studentID uint, from, to time.Time) (attendance.Summary, error) {
	var rows []struct {
		Status string
		Count  int
	}
	tx := db.GetTxFromContext(ctx, r.db)

	err := tx.Model(&models.AttendanceModel{}).
		Select("status, count(*) as count").
		Where("student_id = ? AND date >= ? AND date <= ?",
			studentID, attendance.NormalizeDate(from), attendance.NormalizeDate(to)).
		Group("status").
		Find(&rows).Error
	if err != nil {
		return attendance.Summary{}, fmt.Errorf("failed to summarize attendance: %w", err)
	}

	var summary attendance.Summary
	for _, row := range rows {
		switch attendance.Status(row.Status) {
		case attendance.StatusPresent:
			summary.Present = row.Count
		case attendance.StatusAbsent:
			summary.Absent = row.Count
		case attendance.StatusLate:
			summary.Late = row.Count
		case attendance.StatusExcused:
			summary.Excused = row.Count
		}
	}
	return summary, nil
}

func (r *AttendanceRepository) ListAbsentees(ctx context.Context, date time.Time) ([]*attendance.Record, error) {
	var recordModels []*models.AttendanceModel
	tx := db.GetTxFromContext(ctx, r.db)

	err := tx.Where("date = ? AND status = ?", attendance.NormalizeDate(date), string(attendance.StatusAbsent)).
		Find(&recordModels).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list absentees: %w", err)
	}
	return r.mapper.ToEntities(recordModels), nil
}
