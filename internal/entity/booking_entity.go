package entity

import (
	"time"

	"github.com/google/uuid"
)

// PlanRegistration is created once per fulfilled checkout and parents the
// Booking and the Invoice.
type PlanRegistration struct {
	Id         uuid.UUID
	MenteeId   uuid.UUID
	PlanId     uuid.UUID
	Message    string
	DiscountId *uuid.UUID
	CreatedAt  time.Time
}

type Invoice struct {
	Id                   uuid.UUID
	RegistrationId       uuid.UUID
	MenteeId             uuid.UUID
	MentorId             uuid.UUID
	PlanId               uuid.UUID
	PlanCharge           float64
	DiscountAmount       float64
	FinalAmount          float64
	Currency             string
	StripeSessionId      string
	PaymentIntentId      string
	ChargeId             string
	BalanceTransactionId string
	ReceiptURL           string
	StripeFee            float64
	NetAmount            float64
	PaidAt               time.Time
	CreatedAt            time.Time
}

type Booking struct {
	Id             uuid.UUID
	RegistrationId uuid.UUID
	MenteeId       uuid.UUID
	PlanId         uuid.UUID
	Slot           SlotKey
	CreatedAt      time.Time
}
