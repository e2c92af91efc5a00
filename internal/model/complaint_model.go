package model

import (
	"time"

	"github.com/google/uuid"
)

type Complaint struct {
	Id            uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	MeetingId     uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_complaints_meeting_mentee,priority:1"`
	MenteeId      uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_complaints_meeting_mentee,priority:2"`
	MentorId      uuid.UUID `gorm:"type:uuid;not null;index"`
	Content       string    `gorm:"type:text;not null"`
	Status        string    `gorm:"type:varchar(20);not null;default:'Pending';index"`
	AdminResponse string    `gorm:"type:text"`
	CreatedAt     time.Time `gorm:"autoCreateTime"`
	UpdatedAt     time.Time `gorm:"autoUpdateTime"`
}

func (Complaint) TableName() string {
	return "complaints"
}

type Feedback struct {
	Id        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	MeetingId uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`
	MenteeId  uuid.UUID `gorm:"type:uuid;not null"`
	MentorId  uuid.UUID `gorm:"type:uuid;not null;index"`
	Rating    int       `gorm:"not null"`
	Comment   string    `gorm:"type:text"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

func (Feedback) TableName() string {
	return "feedbacks"
}
