package dto

import (
	"time"

	"github.com/google/uuid"
)

type NotificationResponse struct {
	Id         uuid.UUID              `json:"id"`
	TypeCode   string                 `json:"type_code"`
	EntityType string                 `json:"entity_type,omitempty"`
	EntityId   *uuid.UUID             `json:"entity_id,omitempty"`
	Title      string                 `json:"title"`
	Message    string                 `json:"message"`
	Metadata   map[string]interface{} `json:"metadata,omitempty"`
	IsRead     bool                   `json:"is_read"`
	CreatedAt  time.Time              `json:"created_at"`
}

type NotificationListResponse struct {
	Items  []*NotificationResponse `json:"items"`
	Total  int64                   `json:"total"`
	Unread int64                   `json:"unread"`
}
