package dto

import (
	"time"

	"github.com/google/uuid"
)

type FileComplaintRequest struct {
	MeetingId string `json:"meeting_id" validate:"required,uuid"`
	Content   string `json:"content" validate:"required,min=10,max=5000"`
}

type UpdateComplaintRequest struct {
	Status        string `json:"status" validate:"required,oneof=Reviewed Resolved Rejected"`
	AdminResponse string `json:"admin_response" validate:"max=5000"`
}

type ComplaintResponse struct {
	Id            uuid.UUID `json:"id"`
	MeetingId     uuid.UUID `json:"meeting_id"`
	MenteeId      uuid.UUID `json:"mentee_id"`
	MentorId      uuid.UUID `json:"mentor_id"`
	Content       string    `json:"content"`
	Status        string    `json:"status"`
	AdminResponse string    `json:"admin_response"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

type ListComplaintsQuery struct {
	Status string `query:"status" validate:"omitempty,oneof=Pending Reviewed Resolved Rejected"`
	Limit  int    `query:"limit" validate:"omitempty,min=1,max=100"`
	Offset int    `query:"offset" validate:"omitempty,min=0"`
}

type ExpiredPendingResponse struct {
	MeetingId uuid.UUID `json:"meeting_id"`
	Expired   bool      `json:"expired"`
}
