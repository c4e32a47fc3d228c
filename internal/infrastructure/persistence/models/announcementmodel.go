package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type AnnouncementModel struct {
	ID           uint   `gorm:"primarykey"`
	Title        string `gorm:"not null;size:200"`
	BodyMarkdown string `gorm:"type:text;not null"`
	BodyHTML     string `gorm:"type:text"`
	Audience     datatypes.JSON
	AuthorID     uint      `gorm:"not null;index"`
	PublishedAt  time.Time `gorm:"not null;index"`
	ExpiresAt    *time.Time `gorm:"index"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
	DeletedAt    gorm.DeletedAt `gorm:"index"`
}

func (AnnouncementModel) TableName() string {
	return "announcements"
}
