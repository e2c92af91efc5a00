package model

import (
	"time"

	"github.com/google/uuid"
)

// Slot has no surrogate key; the five identity columns form the primary key.
type Slot struct {
	MentorId  uuid.UUID `gorm:"type:uuid;primaryKey"`
	PlanId    uuid.UUID `gorm:"type:uuid;primaryKey;index:idx_slots_plan_date,priority:1"`
	Date      time.Time `gorm:"type:date;primaryKey;index:idx_slots_plan_date,priority:2"`
	StartTime time.Time `gorm:"primaryKey"`
	EndTime   time.Time `gorm:"primaryKey"`
	Status    string    `gorm:"type:varchar(20);not null;default:'Available'"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

func (Slot) TableName() string {
	return "slots"
}
