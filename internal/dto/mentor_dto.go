package dto

import (
	"time"

	"github.com/google/uuid"
)

type MentorSearchQuery struct {
	Query    string   `query:"q" validate:"max=100"`
	Skill    string   `query:"skill" validate:"max=50"`
	MinPrice *float64 `query:"min_price" validate:"omitempty,min=0"`
	MaxPrice *float64 `query:"max_price" validate:"omitempty,min=0"`
	Limit    int      `query:"limit" validate:"omitempty,min=1,max=50"`
	Offset   int      `query:"offset" validate:"omitempty,min=0"`
}

type MentorSummaryResponse struct {
	Id              uuid.UUID `json:"id"`
	FullName        string    `json:"full_name"`
	AvatarURL       *string   `json:"avatar_url,omitempty"`
	Headline        string    `json:"headline"`
	Company         string    `json:"company"`
	Skills          []string  `json:"skills"`
	YearsExperience int       `json:"years_experience"`
	Rating          float64   `json:"rating"`
	RatingCount     int       `json:"rating_count"`
	StartingPrice   *float64  `json:"starting_price,omitempty"`
	PlanCount       int       `json:"plan_count"`
}

type MentorProfileResponse struct {
	MentorSummaryResponse
	Bio   string          `json:"bio"`
	Plans []*PlanResponse `json:"plans"`
}

type UpdateMentorProfileRequest struct {
	Headline        string   `json:"headline" validate:"max=255"`
	Bio             string   `json:"bio" validate:"max=5000"`
	Skills          []string `json:"skills" validate:"max=20,dive,min=1,max=50"`
	Company         string   `json:"company" validate:"max=255"`
	YearsExperience int      `json:"years_experience" validate:"min=0,max=80"`
}

type FeedbackRequest struct {
	MeetingId string `json:"meeting_id" validate:"required,uuid"`
	Rating    int    `json:"rating" validate:"required,min=1,max=5"`
	Comment   string `json:"comment" validate:"max=2000"`
}

type FeedbackResponse struct {
	Id        uuid.UUID `json:"id"`
	MeetingId uuid.UUID `json:"meeting_id"`
	MentorId  uuid.UUID `json:"mentor_id"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"created_at"`
}
