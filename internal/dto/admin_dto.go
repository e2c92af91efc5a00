package dto

import (
	"time"

	"github.com/google/uuid"
)

type ListUsersQuery struct {
	Query  string `query:"q" validate:"max=100"`
	Role   string `query:"role" validate:"omitempty,oneof=mentee mentor admin"`
	Status string `query:"status" validate:"omitempty,oneof=active banned"`
	Limit  int    `query:"limit" validate:"omitempty,min=1,max=100"`
	Offset int    `query:"offset" validate:"omitempty,min=0"`
}

type UserResponse struct {
	Id        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	FullName  string    `json:"full_name"`
	Role      string    `json:"role"`
	Status    string    `json:"status"`
	AvatarURL *string   `json:"avatar_url,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

type UpdateUserStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=active banned"`
}

type MentorBalanceResponse struct {
	MentorId   uuid.UUID `json:"mentor_id"`
	MentorName string    `json:"mentor_name"`
	Earned     float64   `json:"earned"`
	PaidOut    float64   `json:"paid_out"`
	Available  float64   `json:"available"`
}

type CreatePayoutRequest struct {
	MentorId  string  `json:"mentor_id" validate:"required,uuid"`
	Amount    float64 `json:"amount" validate:"gt=0"`
	Reference string  `json:"reference" validate:"max=255"`
}

type PayoutResponse struct {
	Id        uuid.UUID `json:"id"`
	MentorId  uuid.UUID `json:"mentor_id"`
	Amount    float64   `json:"amount"`
	Status    string    `json:"status"`
	Reference string    `json:"reference"`
	CreatedBy uuid.UUID `json:"created_by"`
	CreatedAt time.Time `json:"created_at"`
}

type ListPayoutsQuery struct {
	MentorId string `query:"mentor_id" validate:"omitempty,uuid"`
	Limit    int    `query:"limit" validate:"omitempty,min=1,max=100"`
	Offset   int    `query:"offset" validate:"omitempty,min=0"`
}

// LogListResponse uses string ids because log ids are content hashes.
type LogListResponse struct {
	Id        string                 `json:"id"`
	Level     string                 `json:"level"`
	Module    string                 `json:"module"`
	Message   string                 `json:"message"`
	Details   map[string]interface{} `json:"details,omitempty"`
	CreatedAt string                 `json:"created_at"`
}
