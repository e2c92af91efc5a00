package model

import (
	"time"

	"github.com/google/uuid"
)

type Meeting struct {
	Id            uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	BookingId     uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`
	MentorId      uuid.UUID `gorm:"type:uuid;not null;index"`
	MenteeId      uuid.UUID `gorm:"type:uuid;not null;index"`
	PlanId        uuid.UUID `gorm:"type:uuid;not null"`
	SlotDate      time.Time `gorm:"type:date;not null"`
	SlotStartTime time.Time `gorm:"not null"`
	SlotEndTime   time.Time `gorm:"not null"`
	Location      string    `gorm:"type:text;not null;default:''"`
	ReviewLink    string    `gorm:"type:text;not null;default:''"`
	Status        string    `gorm:"type:varchar(20);not null;default:'Pending';index"`
	CreatedAt     time.Time `gorm:"autoCreateTime"`
	UpdatedAt     time.Time `gorm:"autoUpdateTime"`
}

func (Meeting) TableName() string {
	return "meetings"
}

// MeetingDetailRow is the scan target of the joined meeting query.
type MeetingDetailRow struct {
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
