package model

import (
	"time"

	"github.com/google/uuid"
)

type Plan struct {
	Id             uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	MentorId       uuid.UUID `gorm:"type:uuid;not null;index"`
	Title          string    `gorm:"type:varchar(255);not null"`
	Description    string    `gorm:"type:text"`
	PlanType       string    `gorm:"type:varchar(20);not null;default:'session'"`
	Charge         float64   `gorm:"type:numeric(12,2);not null"`
	MinutesPerCall int       `gorm:"not null;default:60"`
	CallsPerWeek   int       `gorm:"default:0"`
	IsActive       bool      `gorm:"default:true;index"`
	CreatedAt      time.Time `gorm:"autoCreateTime"`
	UpdatedAt      time.Time `gorm:"autoUpdateTime"`
}

func (Plan) TableName() string {
	return "plans"
}
