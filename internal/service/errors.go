package service

import (
	"errors"

	"mentoria-be/internal/pkg/serverutils"
)

var (
	ErrMeetingNotFound      = serverutils.NewNotFoundError("meeting not found")
	ErrComplaintNotFound    = serverutils.NewNotFoundError("complaint not found")
	ErrMentorNotFound       = serverutils.NewNotFoundError("mentor not found")
	ErrMenteeNotFound       = serverutils.NewNotFoundError("mentee not found")
	ErrPlanNotFound         = serverutils.NewNotFoundError("plan not found")
	ErrSlotNotFound         = serverutils.NewNotFoundError("slot not found")
	ErrDiscountNotFound     = serverutils.NewNotFoundError("discount not found")
	ErrUserNotFound         = serverutils.NewNotFoundError("user not found")
	ErrNotificationNotFound = serverutils.NewNotFoundError("notification not found")

	ErrForbidden = serverutils.NewForbiddenError("you do not have access to this resource")

	ErrSlotUnavailable     = serverutils.NewConflictError("slot is not available")
	ErrSlotHeld            = serverutils.NewConflictError("slot is being booked by someone else")
	ErrSlotOverlap         = serverutils.NewConflictError("slot overlaps an existing slot")
	ErrComplaintExists     = serverutils.NewConflictError("a complaint was already filed for this meeting")
	ErrFeedbackExists      = serverutils.NewConflictError("feedback was already left for this meeting")
	ErrDiscountCodeTaken   = serverutils.NewConflictError("discount code already exists")
	ErrConcurrentUpdate    = serverutils.NewConflictError("the resource was modified concurrently, please retry")
	ErrInsufficientBalance = serverutils.NewConflictError("payout exceeds the mentor's available balance")

	ErrInvalidTransition = serverutils.NewValidationError("invalid meeting status transition")
	ErrInvalidDiscount   = serverutils.NewValidationError("discount is not applicable")
	ErrInvalidSlotTime   = serverutils.NewValidationError("invalid slot date or time")
	ErrInvalidSignature  = serverutils.NewValidationError("invalid webhook signature")
	ErrPlanInactive      = serverutils.NewValidationError("plan is not active")
	ErrFreeCheckout      = serverutils.NewValidationError("final amount must be greater than zero")
)

// Fulfillment failures. These surface as 500 so Stripe retries delivery.
var (
	ErrSlotAlreadyBooked = errors.New("slot already booked")
	ErrDiscountExhausted = errors.New("discount usage limit reached")
	ErrMissingMetadata   = errors.New("checkout session metadata is incomplete")
)
