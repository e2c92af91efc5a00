package entity

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

type SlotStatus string

const (
	SlotStatusAvailable SlotStatus = "Available"
	SlotStatusBooked    SlotStatus = "Booked"
)

const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04"
)

// SlotKey is the natural identity of a slot; slots have no surrogate id.
type SlotKey struct {
	MentorId  uuid.UUID
	PlanId    uuid.UUID
	Date      time.Time
	StartTime time.Time
	EndTime   time.Time
}

// DisplayId is the opaque id handed to clients for list rendering.
func (k SlotKey) DisplayId() string {
	return fmt.Sprintf("%s_%s_%s_%s_%s",
		k.MentorId, k.PlanId,
		k.Date.Format(DateLayout),
		k.StartTime.Format(TimeLayout),
		k.EndTime.Format(TimeLayout),
	)
}

func (k SlotKey) Duration() time.Duration {
	return k.EndTime.Sub(k.StartTime)
}

// Overlaps reports whether two half-open intervals [start, end) intersect.
func (k SlotKey) Overlaps(other SlotKey) bool {
	return k.StartTime.Before(other.EndTime) && k.EndTime.After(other.StartTime)
}

func (k SlotKey) Equal(other SlotKey) bool {
	return k.MentorId == other.MentorId &&
		k.PlanId == other.PlanId &&
		k.Date.Equal(other.Date) &&
		k.StartTime.Equal(other.StartTime) &&
		k.EndTime.Equal(other.EndTime)
}

type Slot struct {
	SlotKey
	Status    SlotStatus
	CreatedAt time.Time
	UpdatedAt time.Time
}
