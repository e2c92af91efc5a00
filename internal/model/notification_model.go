package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Notification stores the in-app notification history.
type Notification struct {
	ID         uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	UserID     uuid.UUID      `gorm:"type:uuid;not null;index:idx_notifications_user_created,priority:1;index:idx_notifications_user_unread,priority:1"`
	TypeCode   string         `gorm:"type:varchar(50);not null;index:idx_notifications_type"`
	EntityType string         `gorm:"type:varchar(50);index:idx_notifications_entity,priority:1"`
	EntityID   *uuid.UUID     `gorm:"type:uuid;index:idx_notifications_entity,priority:2"`
	Title      string         `gorm:"type:varchar(200);not null"`
	Message    string         `gorm:"type:text;not null"`
	Metadata   datatypes.JSON `gorm:"type:jsonb"`
	IsRead     bool           `gorm:"default:false;index:idx_notifications_user_unread,priority:2"`
	ReadAt     *time.Time
	CreatedAt  time.Time `gorm:"default:CURRENT_TIMESTAMP;index:idx_notifications_user_created,priority:2"`
}

func (Notification) TableName() string {
	return "notifications"
}
