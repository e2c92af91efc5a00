package entity

import (
	"time"

	"github.com/google/uuid"
)

type MeetingStatus string

const (
	MeetingStatusPending   MeetingStatus = "Pending"
	MeetingStatusScheduled MeetingStatus = "Scheduled"
	MeetingStatusCompleted MeetingStatus = "Completed"
	MeetingStatusCancelled MeetingStatus = "Cancelled"
)

func (s MeetingStatus) IsValid() bool {
	switch s {
	case MeetingStatusPending, MeetingStatusScheduled, MeetingStatusCompleted, MeetingStatusCancelled:
		return true
	}
	return false
}

// CanTransitionTo enforces Pending -> Scheduled -> Completed, with any
// non-cancelled state allowed to move to Cancelled. Nothing goes backwards.
func (s MeetingStatus) CanTransitionTo(next MeetingStatus) bool {
	switch next {
	case MeetingStatusScheduled:
		return s == MeetingStatusPending
	case MeetingStatusCompleted:
		return s == MeetingStatusScheduled
	case MeetingStatusCancelled:
		return s != MeetingStatusCancelled
	}
	return false
}

type Meeting struct {
	Id         uuid.UUID
	BookingId  uuid.UUID
	MentorId   uuid.UUID
	MenteeId   uuid.UUID
	PlanId     uuid.UUID
	Slot       SlotKey
	Location   string
	ReviewLink string
	Status     MeetingStatus
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// MeetingDetail is a meeting joined with the people, plan and payment behind it.
type MeetingDetail struct {
	Meeting
	MentorName  string
	MentorEmail string
	MenteeName  string
	MenteeEmail string
	PlanTitle   string
	FinalAmount float64
	Currency    string
	PaidAt      *time.Time
}
