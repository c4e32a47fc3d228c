package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type RouteModel struct {
	ID            uint   `gorm:"primarykey"`
	Name          string `gorm:"uniqueIndex;not null;size:100"`
	VehicleNumber string `gorm:"not null;size:20"`
	DriverName    string `gorm:"size:100"`
	DriverPhone   string `gorm:"size:20"`
	Capacity      int    `gorm:"not null"`
	MonthlyFee    int64  `gorm:"not null;default:0"`
	Stops         datatypes.JSON
	CreatedAt     time.Time
	UpdatedAt     time.Time
	DeletedAt     gorm.DeletedAt `gorm:"index"`
}

func (RouteModel) TableName() string {
	return "transport_routes"
}

type TransportAssignmentModel struct {
	ID         uint   `gorm:"primarykey"`
	RouteID    uint   `gorm:"not null;index"`
	StudentID  uint   `gorm:"not null;index"`
	PickupStop string `gorm:"not null;size:100"`
	StartedAt  time.Time `gorm:"not null"`
	EndedAt    *time.Time `gorm:"index"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func (TransportAssignmentModel) TableName() string {
	return "transport_assignments"
}
