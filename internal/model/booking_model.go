package model

import (
	"time"

	"github.com/google/uuid"
)

type PlanRegistration struct {
	Id         uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	MenteeId   uuid.UUID  `gorm:"type:uuid;not null;index"`
	PlanId     uuid.UUID  `gorm:"type:uuid;not null;index"`
	Message    string     `gorm:"type:text"`
	DiscountId *uuid.UUID `gorm:"type:uuid"`
	CreatedAt  time.Time  `gorm:"autoCreateTime"`
}

func (PlanRegistration) TableName() string {
	return "plan_registrations"
}

type Invoice struct {
	Id                   uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	RegistrationId       uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`
	MenteeId             uuid.UUID `gorm:"type:uuid;not null;index"`
	MentorId             uuid.UUID `gorm:"type:uuid;not null;index"`
	PlanId               uuid.UUID `gorm:"type:uuid;not null"`
	PlanCharge           float64   `gorm:"type:numeric(12,2);not null"`
	DiscountAmount       float64   `gorm:"type:numeric(12,2);not null;default:0"`
	FinalAmount          float64   `gorm:"type:numeric(12,2);not null"`
	Currency             string    `gorm:"type:varchar(10);not null"`
	StripeSessionId      string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	PaymentIntentId      string    `gorm:"type:varchar(255)"`
	ChargeId             string    `gorm:"type:varchar(255)"`
	BalanceTransactionId string    `gorm:"type:varchar(255)"`
	ReceiptURL           string    `gorm:"type:text"`
	StripeFee            float64   `gorm:"type:numeric(12,2);default:0"`
	NetAmount            float64   `gorm:"type:numeric(12,2);default:0"`
	PaidAt               time.Time `gorm:"not null"`
	CreatedAt            time.Time `gorm:"autoCreateTime"`
}

func (Invoice) TableName() string {
	return "invoices"
}

type Booking struct {
	Id             uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	RegistrationId uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`
	MenteeId       uuid.UUID `gorm:"type:uuid;not null;index"`
	MentorId       uuid.UUID `gorm:"type:uuid;not null"`
	PlanId         uuid.UUID `gorm:"type:uuid;not null"`
	SlotDate       time.Time `gorm:"type:date;not null"`
	SlotStartTime  time.Time `gorm:"not null"`
	SlotEndTime    time.Time `gorm:"not null"`
	CreatedAt      time.Time `gorm:"autoCreateTime"`
}

func (Booking) TableName() string {
	return "bookings"
}
