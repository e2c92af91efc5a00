package unitofwork

import (
	"context"

	"mentoria-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	UserRepository() contract.UserRepository
	MentorRepository() contract.MentorRepository
	MenteeRepository() contract.MenteeRepository

	PlanRepository() contract.PlanRepository
	SlotRepository() contract.SlotRepository
	DiscountRepository() contract.DiscountRepository

	BookingRepository() contract.BookingRepository
	MeetingRepository() contract.MeetingRepository
	ComplaintRepository() contract.ComplaintRepository
	FeedbackRepository() contract.FeedbackRepository

	PayoutRepository() contract.PayoutRepository
	WebhookEventRepository() contract.WebhookEventRepository
}
