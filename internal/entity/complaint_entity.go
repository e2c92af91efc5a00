package entity

import (
	"time"

	"github.com/google/uuid"
)

type ComplaintStatus string

const (
	ComplaintStatusPending  ComplaintStatus = "Pending"
	ComplaintStatusReviewed ComplaintStatus = "Reviewed"
	ComplaintStatusResolved ComplaintStatus = "Resolved"
	ComplaintStatusRejected ComplaintStatus = "Rejected"
)

// IsAdminTarget reports whether an admin may move a complaint into this status.
func (s ComplaintStatus) IsAdminTarget() bool {
	switch s {
	case ComplaintStatusReviewed, ComplaintStatusResolved, ComplaintStatusRejected:
		return true
	}
	return false
}

type Complaint struct {
	Id            uuid.UUID
	MeetingId     uuid.UUID
	MenteeId      uuid.UUID
	MentorId      uuid.UUID
	Content       string
	Status        ComplaintStatus
	AdminResponse string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

type Feedback struct {
	Id        uuid.UUID
	MeetingId uuid.UUID
	MenteeId  uuid.UUID
	MentorId  uuid.UUID
	Rating    int
	Comment   string
	CreatedAt time.Time
}
