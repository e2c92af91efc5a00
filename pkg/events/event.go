package events

import (
	"context"
	"time"
)

// Domain event codes. The NATS subject is "events.<code>".
const (
	BookingConfirmed       = "BOOKING_CONFIRMED"
	MeetingStatusChanged   = "MEETING_STATUS_CHANGED"
	MeetingLocationUpdated = "MEETING_LOCATION_UPDATED"
	ComplaintFiled         = "COMPLAINT_FILED"
	ComplaintUpdated       = "COMPLAINT_UPDATED"
)

// Event defines the contract for all system events.
type Event interface {
	// EventType returns the unique code for this event (e.g., "BOOKING_CONFIRMED").
	EventType() string

	// Payload returns the data associated with the event.
	Payload() map[string]interface{}

	// Timestamp returns when the event occurred.
	Timestamp() time.Time
}

// Publisher is satisfied by the NATS publisher; services depend on this.
type Publisher interface {
	Publish(ctx context.Context, event Event) error
}

type BaseEvent struct {
	Type       string                 `json:"type"`
	Data       map[string]interface{} `json:"data"`
	OccurredAt time.Time              `json:"occurred_at"`
}

func New(eventType string, data map[string]interface{}) BaseEvent {
	return BaseEvent{Type: eventType, Data: data, OccurredAt: time.Now().UTC()}
}

func (e BaseEvent) EventType() string {
	return e.Type
}

func (e BaseEvent) Payload() map[string]interface{} {
	return e.Data
}

func (e BaseEvent) Timestamp() time.Time {
	return e.OccurredAt
}

// StringField reads a string entry from an event payload.
func StringField(e Event, key string) string {
	v, _ := e.Payload()[key].(string)
	return v
}

// NopPublisher drops events. Used when the bus is unavailable.
type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, Event) error { return nil }
