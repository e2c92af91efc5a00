package entity

import (
	"time"

	"github.com/google/uuid"
)

type PayoutStatus string

const PayoutStatusPaid PayoutStatus = "Paid"

type Payout struct {
	Id        uuid.UUID
	MentorId  uuid.UUID
	Amount    float64
	Status    PayoutStatus
	Reference string
	CreatedBy uuid.UUID
	CreatedAt time.Time
}

// MentorBalance aggregates what a mentor has earned and been paid.
type MentorBalance struct {
	MentorId   uuid.UUID
	MentorName string
	Earned     float64
	PaidOut    float64
}

func (b MentorBalance) Available() float64 {
	return b.Earned - b.PaidOut
}
