package service

import (
	"context"

	"mentoria-be/internal/dto"
	"mentoria-be/internal/entity"
	"mentoria-be/internal/pkg/logger"
	"mentoria-be/internal/pkg/mailer"
	"mentoria-be/internal/pkg/serverutils"
	"mentoria-be/internal/repository/contract"
	"mentoria-be/internal/repository/specification"
	"mentoria-be/internal/repository/unitofwork"
	"mentoria-be/pkg/events"

	"github.com/google/uuid"
)

const meetingModule = "MEETING"

type IMeetingService interface {
	UpdateLocation(ctx context.Context, mentorID, meetingID uuid.UUID, req *dto.UpdateLocationRequest) (*dto.MeetingResponse, error)
	UpdateStatus(ctx context.Context, mentorID, meetingID uuid.UUID, req *dto.UpdateMeetingStatusRequest) (*dto.MeetingResponse, error)
	UpdateReviewLink(ctx context.Context, mentorID, meetingID uuid.UUID, req *dto.UpdateReviewLinkRequest) (*dto.MeetingResponse, error)
	GetMeeting(ctx context.Context, userID uuid.UUID, role string, meetingID uuid.UUID) (*dto.MeetingResponse, error)
	ListMenteeMeetings(ctx context.Context, menteeID uuid.UUID, query *dto.ListMeetingsQuery) (*serverutils.PaginatedData[*dto.MeetingResponse], error)
	ListMentorMeetings(ctx context.Context, mentorID uuid.UUID, query *dto.ListMeetingsQuery) (*serverutils.PaginatedData[*dto.MeetingResponse], error)
}

type meetingService struct {
	uowFactory unitofwork.RepositoryFactory
	emails     EmailQueue
	publisher  events.Publisher
	logger     logger.ILogger
}

func NewMeetingService(uowFactory unitofwork.RepositoryFactory, emails EmailQueue, publisher events.Publisher, log logger.ILogger) IMeetingService {
	return &meetingService{
		uowFactory: uowFactory,
		emails:     emails,
		publisher:  publisher,
		logger:     log,
	}
}

// ownedMeeting distinguishes a missing meeting from one owned by another mentor.
// Extra specifications such as ForUpdate are applied to the lookup.
func ownedMeeting(ctx context.Context, uow unitofwork.UnitOfWork, mentorID, meetingID uuid.UUID, specs ...specification.Specification) (*entity.Meeting, error) {
	specs = append([]specification.Specification{specification.ByID{ID: meetingID}}, specs...)
	meeting, err := uow.MeetingRepository().FindOne(ctx, specs...)
	if err != nil {
		return nil, err
	}
	if meeting == nil {
		return nil, ErrMeetingNotFound
	}
	if meeting.MentorId != mentorID {
		return nil, ErrForbidden
	}
	return meeting, nil
}

func (s *meetingService) detail(ctx context.Context, meetingID uuid.UUID) (*entity.MeetingDetail, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	d, err := uow.MeetingRepository().FindDetail(ctx, meetingID)
	if err != nil {
		return nil, err
	}
	if d == nil {
		return nil, ErrMeetingNotFound
	}
	return d, nil
}

func (s *meetingService) UpdateLocation(ctx context.Context, mentorID, meetingID uuid.UUID, req *dto.UpdateLocationRequest) (*dto.MeetingResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	meeting, err := ownedMeeting(ctx, uow, mentorID, meetingID, specification.ForUpdate{})
	if err != nil {
		return nil, err
	}
	if meeting.Status != entity.MeetingStatusPending && meeting.Status != entity.MeetingStatusScheduled {
		return nil, serverutils.NewValidationError("location can only be set on pending or scheduled meetings")
	}

	updated, err := uow.MeetingRepository().SetLocation(ctx, meetingID, req.Location)
	if err != nil {
		return nil, err
	}
	if !updated {
		return nil, ErrConcurrentUpdate
	}
	if err := uow.Commit(); err != nil {
		return nil, err
	}

	d, err := s.detail(ctx, meetingID)
	if err != nil {
		return nil, err
	}

	enqueueEmail(ctx, s.emails, s.logger, meetingModule, mailer.LocationUpdatedEmail(d.MenteeEmail, meetingEmailDetails(d)))
	publishEvent(ctx, s.publisher, s.logger, meetingModule, events.MeetingLocationUpdated, map[string]interface{}{
		"meeting_id": meetingID.String(),
		"mentee_id":  d.MenteeId.String(),
		"mentor_id":  d.MentorId.String(),
		"location":   d.Location,
		"plan_title": d.PlanTitle,
	})

	return toMeetingResponse(d), nil
}

func (s *meetingService) UpdateStatus(ctx context.Context, mentorID, meetingID uuid.UUID, req *dto.UpdateMeetingStatusRequest) (*dto.MeetingResponse, error) {
	target := entity.MeetingStatus(req.Status)
	if !target.IsValid() || target == entity.MeetingStatusPending {
		return nil, ErrInvalidTransition
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	meeting, err := ownedMeeting(ctx, uow, mentorID, meetingID)
	if err != nil {
		return nil, err
	}

	if meeting.Status == target {
		d, err := s.detail(ctx, meetingID)
		if err != nil {
			return nil, err
		}
		return toMeetingResponse(d), nil
	}
	if !meeting.Status.CanTransitionTo(target) {
		return nil, ErrInvalidTransition
	}
	if target == entity.MeetingStatusScheduled && meeting.Location == "" {
		return nil, serverutils.NewValidationError("set a location before scheduling the meeting")
	}

	moved, err := uow.MeetingRepository().TransitionStatus(ctx, meetingID, meeting.Status, target)
	if err != nil {
		return nil, err
	}
	if !moved {
		return nil, ErrConcurrentUpdate
	}

	s.logger.Info(meetingModule, "Meeting status changed", map[string]interface{}{
		"meeting_id": meetingID,
		"from":       meeting.Status,
		"to":         target,
	})

	d, err := s.detail(ctx, meetingID)
	if err != nil {
		return nil, err
	}

	enqueueEmail(ctx, s.emails, s.logger, meetingModule, mailer.MeetingStatusEmail(d.MenteeEmail, meetingEmailDetails(d)))
	publishEvent(ctx, s.publisher, s.logger, meetingModule, events.MeetingStatusChanged, map[string]interface{}{
		"meeting_id": meetingID.String(),
		"mentee_id":  d.MenteeId.String(),
		"mentor_id":  d.MentorId.String(),
		"from":       string(meeting.Status),
		"status":     string(target),
		"plan_title": d.PlanTitle,
	})

	return toMeetingResponse(d), nil
}

func (s *meetingService) UpdateReviewLink(ctx context.Context, mentorID, meetingID uuid.UUID, req *dto.UpdateReviewLinkRequest) (*dto.MeetingResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	meeting, err := ownedMeeting(ctx, uow, mentorID, meetingID, specification.ForUpdate{})
	if err != nil {
		return nil, err
	}
	if meeting.Status != entity.MeetingStatusCompleted {
		return nil, serverutils.NewValidationError("review links can only be added to completed meetings")
	}

	updated, err := uow.MeetingRepository().SetReviewLink(ctx, meetingID, req.ReviewLink)
	if err != nil {
		return nil, err
	}
	if !updated {
		return nil, ErrConcurrentUpdate
	}
	if err := uow.Commit(); err != nil {
		return nil, err
	}

	d, err := s.detail(ctx, meetingID)
	if err != nil {
		return nil, err
	}
	return toMeetingResponse(d), nil
}

func (s *meetingService) GetMeeting(ctx context.Context, userID uuid.UUID, role string, meetingID uuid.UUID) (*dto.MeetingResponse, error) {
	d, err := s.detail(ctx, meetingID)
	if err != nil {
		return nil, err
	}
	if entity.UserRole(role) != entity.UserRoleAdmin && d.MentorId != userID && d.MenteeId != userID {
		return nil, ErrForbidden
	}
	return toMeetingResponse(d), nil
}

func (s *meetingService) ListMenteeMeetings(ctx context.Context, menteeID uuid.UUID, query *dto.ListMeetingsQuery) (*serverutils.PaginatedData[*dto.MeetingResponse], error) {
	return s.list(ctx, contract.MeetingFilter{MenteeId: menteeID}, query)
}

func (s *meetingService) ListMentorMeetings(ctx context.Context, mentorID uuid.UUID, query *dto.ListMeetingsQuery) (*serverutils.PaginatedData[*dto.MeetingResponse], error) {
	return s.list(ctx, contract.MeetingFilter{MentorId: mentorID}, query)
}

func (s *meetingService) list(ctx context.Context, filter contract.MeetingFilter, query *dto.ListMeetingsQuery) (*serverutils.PaginatedData[*dto.MeetingResponse], error) {
	filter.Status = entity.MeetingStatus(query.Status)
	filter.Limit, filter.Offset = pageBounds(query.Limit, query.Offset)

	uow := s.uowFactory.NewUnitOfWork(ctx)
	details, total, err := uow.MeetingRepository().FindDetails(ctx, filter)
	if err != nil {
		return nil, err
	}

	items := make([]*dto.MeetingResponse, 0, len(details))
	for _, d := range details {
		items = append(items, toMeetingResponse(d))
	}
	return &serverutils.PaginatedData[*dto.MeetingResponse]{
		Items:  items,
		Total:  total,
		Limit:  filter.Limit,
		Offset: filter.Offset,
	}, nil
}

const defaultPageSize = 20

func pageBounds(limit, offset int) (int, int) {
	if limit <= 0 {
		limit = defaultPageSize
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}

func toMeetingResponse(d *entity.MeetingDetail) *dto.MeetingResponse {
	return &dto.MeetingResponse{
		Id:          d.Id,
		BookingId:   d.BookingId,
		MentorId:    d.MentorId,
		MentorName:  d.MentorName,
		MentorEmail: d.MentorEmail,
		MenteeId:    d.MenteeId,
		MenteeName:  d.MenteeName,
		MenteeEmail: d.MenteeEmail,
		PlanId:      d.PlanId,
		PlanTitle:   d.PlanTitle,
		SlotId:      d.Slot.DisplayId(),
		Date:        d.Slot.Date.Format(entity.DateLayout),
		StartTime:   d.Slot.StartTime,
		EndTime:     d.Slot.EndTime,
		Location:    d.Location,
		ReviewLink:  d.ReviewLink,
		Status:      string(d.Status),
		FinalAmount: d.FinalAmount,
		Currency:    d.Currency,
		PaidAt:      d.PaidAt,
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}
}
