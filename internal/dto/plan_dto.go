package dto

import (
	"time"

	"github.com/google/uuid"
)

type PlanRequest struct {
	Title          string  `json:"title" validate:"required,max=255"`
	Description    string  `json:"description" validate:"max=5000"`
	PlanType       string  `json:"plan_type" validate:"required,oneof=session mentorship"`
	Charge         float64 `json:"charge" validate:"gt=0"`
	MinutesPerCall int     `json:"minutes_per_call" validate:"required,min=15,max=480"`
	CallsPerWeek   int     `json:"calls_per_week" validate:"min=0,max=14"`
}

type PlanResponse struct {
	Id             uuid.UUID `json:"id"`
	MentorId       uuid.UUID `json:"mentor_id"`
	Title          string    `json:"title"`
	Description    string    `json:"description"`
	PlanType       string    `json:"plan_type"`
	Charge         float64   `json:"charge"`
	MinutesPerCall int       `json:"minutes_per_call"`
	CallsPerWeek   int       `json:"calls_per_week"`
	IsActive       bool      `json:"is_active"`
	CreatedAt      time.Time `json:"created_at"`
}

type DiscountRequest struct {
	Code       string    `json:"code" validate:"required,alphanum,min=3,max=50"`
	Type       string    `json:"type" validate:"required,oneof=Percentage Fixed"`
	Value      float64   `json:"value" validate:"gt=0"`
	ValidFrom  time.Time `json:"valid_from" validate:"required"`
	ValidTo    time.Time `json:"valid_to" validate:"required,gtfield=ValidFrom"`
	UsageLimit int       `json:"usage_limit" validate:"required,min=1"`
	IsActive   *bool     `json:"is_active"`
}

type DiscountResponse struct {
	Id         uuid.UUID `json:"id"`
	MentorId   uuid.UUID `json:"mentor_id"`
	Code       string    `json:"code"`
	Type       string    `json:"type"`
	Value      float64   `json:"value"`
	ValidFrom  time.Time `json:"valid_from"`
	ValidTo    time.Time `json:"valid_to"`
	UsageLimit int       `json:"usage_limit"`
	UsedCount  int       `json:"used_count"`
	IsActive   bool      `json:"is_active"`
}

type ValidateDiscountResponse struct {
	DiscountId uuid.UUID `json:"discount_id"`
	Code       string    `json:"code"`
	Type       string    `json:"type"`
	Value      float64   `json:"value"`
}
