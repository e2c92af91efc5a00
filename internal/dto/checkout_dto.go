package dto

import (
	"time"

	"github.com/google/uuid"
)

// CheckoutRequest accepts date as YYYY-MM-DD and times as HH:MM, or any of
// them as RFC3339.
type CheckoutRequest struct {
	MentorId   string  `json:"mentor_id" validate:"required,uuid"`
	PlanId     string  `json:"plan_id" validate:"required,uuid"`
	Date       string  `json:"date" validate:"required"`
	StartTime  string  `json:"start_time" validate:"required"`
	EndTime    string  `json:"end_time" validate:"required"`
	Message    string  `json:"message" validate:"max=2000"`
	DiscountId *string `json:"discount_id" validate:"omitempty,uuid"`
}

type PriceBreakdown struct {
	PlanCharge     float64 `json:"plan_charge"`
	DiscountAmount float64 `json:"discount_amount"`
	FinalAmount    float64 `json:"final_amount"`
	Currency       string  `json:"currency"`
}

type CheckoutResponse struct {
	SessionId string    `json:"session_id"`
	URL       string    `json:"url"`
	ExpiresAt time.Time `json:"expires_at"`
	PriceBreakdown
}

type InvoiceResponse struct {
	Id             uuid.UUID `json:"id"`
	PlanId         uuid.UUID `json:"plan_id"`
	MentorId       uuid.UUID `json:"mentor_id"`
	MenteeId       uuid.UUID `json:"mentee_id"`
	PlanCharge     float64   `json:"plan_charge"`
	DiscountAmount float64   `json:"discount_amount"`
	FinalAmount    float64   `json:"final_amount"`
	Currency       string    `json:"currency"`
	ReceiptURL     string    `json:"receipt_url,omitempty"`
	PaidAt         time.Time `json:"paid_at"`
}
