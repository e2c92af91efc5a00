package model

import (
	"time"

	"github.com/google/uuid"
)

type Discount struct {
	Id         uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	MentorId   uuid.UUID `gorm:"type:uuid;not null;index"`
	Code       string    `gorm:"type:varchar(50);uniqueIndex;not null"`
	Type       string    `gorm:"type:varchar(20);not null"`
	Value      float64   `gorm:"type:numeric(12,2);not null"`
	ValidFrom  time.Time `gorm:"not null"`
	ValidTo    time.Time `gorm:"not null"`
	UsageLimit int       `gorm:"not null"`
	UsedCount  int       `gorm:"not null;default:0"`
	IsActive   bool      `gorm:"default:true"`
	CreatedAt  time.Time `gorm:"autoCreateTime"`
	UpdatedAt  time.Time `gorm:"autoUpdateTime"`
}

func (Discount) TableName() string {
	return "discounts"
}
