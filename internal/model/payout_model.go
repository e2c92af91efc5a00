package model

import (
	"time"

	"github.com/google/uuid"
)

type Payout struct {
	Id        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	MentorId  uuid.UUID `gorm:"type:uuid;not null;index"`
	Amount    float64   `gorm:"type:numeric(12,2);not null"`
	Status    string    `gorm:"type:varchar(20);not null;default:'Paid'"`
	Reference string    `gorm:"type:varchar(255)"`
	CreatedBy uuid.UUID `gorm:"type:uuid;not null"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

func (Payout) TableName() string {
	return "payouts"
}

type MentorBalanceRow struct {
	MentorId   uuid.UUID
	MentorName string
	Earned     float64
	PaidOut    float64
}
