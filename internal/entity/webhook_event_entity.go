package entity

import (
	"time"

	"github.com/google/uuid"
)

type WebhookEventStatus string

const (
	WebhookEventProcessed WebhookEventStatus = "processed"
	WebhookEventFailed    WebhookEventStatus = "failed"
)

// WebhookEvent records each provider event so redeliveries are not applied twice.
type WebhookEvent struct {
	Id              uuid.UUID
	Provider        string
	ProviderEventId string
	SessionId       string
	EventType       string
	Payload         []byte
	Status          WebhookEventStatus
	Error           string
	ProcessedAt     *time.Time
	CreatedAt       time.Time
}
