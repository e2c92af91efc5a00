package dto

import (
	"time"

	"github.com/google/uuid"
)

type UpdateLocationRequest struct {
	Location string `json:"location" validate:"required,max=500"`
}

type UpdateMeetingStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=Scheduled Completed Cancelled"`
}

type UpdateReviewLinkRequest struct {
	ReviewLink string `json:"review_link" validate:"required,url,max=500"`
}

type MeetingResponse struct {
	Id          uuid.UUID  `json:"id"`
	BookingId   uuid.UUID  `json:"booking_id"`
	MentorId    uuid.UUID  `json:"mentor_id"`
	MentorName  string     `json:"mentor_name"`
	MentorEmail string     `json:"mentor_email"`
	MenteeId    uuid.UUID  `json:"mentee_id"`
	MenteeName  string     `json:"mentee_name"`
	MenteeEmail string     `json:"mentee_email"`
	PlanId      uuid.UUID  `json:"plan_id"`
	PlanTitle   string     `json:"plan_title"`
	SlotId      string     `json:"slot_id"`
	Date        string     `json:"date"`
	StartTime   time.Time  `json:"start_time"`
	EndTime     time.Time  `json:"end_time"`
	Location    string     `json:"location"`
	ReviewLink  string     `json:"review_link"`
	Status      string     `json:"status"`
	FinalAmount float64    `json:"final_amount"`
	Currency    string     `json:"currency"`
	PaidAt      *time.Time `json:"paid_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

type ListMeetingsQuery struct {
	Status string `query:"status" validate:"omitempty,oneof=Pending Scheduled Completed Cancelled"`
	Limit  int    `query:"limit" validate:"omitempty,min=1,max=100"`
	Offset int    `query:"offset" validate:"omitempty,min=0"`
}
