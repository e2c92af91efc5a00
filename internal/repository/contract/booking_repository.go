package contract

import (
	"context"
	"time"

	"mentoria-be/internal/entity"
	"mentoria-be/internal/repository/specification"

	"github.com/google/uuid"
)

type BookingRepository interface {
	CreateRegistration(ctx context.Context, registration *entity.PlanRegistration) error
	CreateBooking(ctx context.Context, booking *entity.Booking) error
	CreateInvoice(ctx context.Context, invoice *entity.Invoice) error
	FindInvoice(ctx context.Context, specs ...specification.Specification) (*entity.Invoice, error)
	FindInvoices(ctx context.Context, specs ...specification.Specification) ([]*entity.Invoice, error)
}

// MeetingFilter selects joined meeting records. Zero values mean no constraint.
type MeetingFilter struct {
	MentorId uuid.UUID
	MenteeId uuid.UUID
	Status   entity.MeetingStatus
	Limit    int
	Offset   int
}

type MeetingRepository interface {
	Create(ctx context.Context, meeting *entity.Meeting) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Meeting, error)
	// SetLocation stores the location and schedules the meeting. It reports
	// false when the meeting is no longer Pending or Scheduled.
	SetLocation(ctx context.Context, id uuid.UUID, location string) (bool, error)
	// SetReviewLink reports false when the meeting is not Completed.
	SetReviewLink(ctx context.Context, id uuid.UUID, link string) (bool, error)
	// TransitionStatus moves a meeting from one status to another and
	// reports false when the meeting was not in the expected status.
	TransitionStatus(ctx context.Context, id uuid.UUID, from, to entity.MeetingStatus) (bool, error)
	FindDetail(ctx context.Context, id uuid.UUID) (*entity.MeetingDetail, error)
	FindDetails(ctx context.Context, filter MeetingFilter) ([]*entity.MeetingDetail, int64, error)
	// IsExpiredPending evaluates against the database clock whether the
	// mentee's meeting is still Pending longer than window after payment.
	IsExpiredPending(ctx context.Context, meetingID, menteeID uuid.UUID, window time.Duration) (bool, error)
}

type ComplaintFilter struct {
	MenteeId uuid.UUID
	Status   entity.ComplaintStatus
	Limit    int
	Offset   int
}

type ComplaintRepository interface {
	Create(ctx context.Context, complaint *entity.Complaint) error
	Update(ctx context.Context, complaint *entity.Complaint) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Complaint, error)
	FindAll(ctx context.Context, filter ComplaintFilter) ([]*entity.Complaint, int64, error)
}

type FeedbackRepository interface {
	Create(ctx context.Context, feedback *entity.Feedback) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Feedback, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Feedback, error)
}
