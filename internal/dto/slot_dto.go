package dto

import (
	"time"

	"github.com/google/uuid"
)

// SlotKeyRequest identifies an existing slot of the calling mentor.
type SlotKeyRequest struct {
	PlanId    string `json:"plan_id" validate:"required,uuid"`
	Date      string `json:"date" validate:"required"`
	StartTime string `json:"start_time" validate:"required"`
	EndTime   string `json:"end_time" validate:"required"`
}

type CreateSlotRequest struct {
	SlotKeyRequest
}

type UpdateSlotRequest struct {
	Original  SlotKeyRequest `json:"original" validate:"required"`
	Date      string         `json:"date" validate:"required"`
	StartTime string         `json:"start_time" validate:"required"`
	EndTime   string         `json:"end_time" validate:"required"`
}

type SlotResponse struct {
	SlotId    string    `json:"slot_id"`
	MentorId  uuid.UUID `json:"mentor_id"`
	PlanId    uuid.UUID `json:"plan_id"`
	Date      string    `json:"date"`
	StartTime time.Time `json:"start_time"`
	EndTime   time.Time `json:"end_time"`
	Status    string    `json:"status"`
}

type ListSlotsQuery struct {
	PlanId string `query:"plan_id" validate:"omitempty,uuid"`
	Status string `query:"status" validate:"omitempty,oneof=Available Booked"`
	From   string `query:"from"`
}
