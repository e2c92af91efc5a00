package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type WebhookEvent struct {
	Id              uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Provider        string         `gorm:"type:varchar(20);not null;default:'stripe'"`
	ProviderEventId string         `gorm:"type:varchar(255);uniqueIndex;not null"`
	SessionId       string         `gorm:"type:varchar(255);uniqueIndex;not null"`
	EventType       string         `gorm:"type:varchar(100);not null"`
	Payload         datatypes.JSON `gorm:"type:jsonb"`
	Status          string         `gorm:"type:varchar(20);not null;index"`
	Error           string         `gorm:"type:text"`
	ProcessedAt     *time.Time
	CreatedAt       time.Time `gorm:"autoCreateTime"`
}

func (WebhookEvent) TableName() string {
	return "webhook_events"
}
