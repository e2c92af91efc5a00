package service

import (
	"context"
	"errors"
	"time"

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

const complaintModule = "COMPLAINT"

type IComplaintService interface {
	FileComplaint(ctx context.Context, menteeID uuid.UUID, req *dto.FileComplaintRequest) (*dto.ComplaintResponse, error)
	UpdateComplaintStatus(ctx context.Context, complaintID uuid.UUID, req *dto.UpdateComplaintRequest) (*dto.ComplaintResponse, error)
	CheckMeetingExpiredPending(ctx context.Context, menteeID, meetingID uuid.UUID) (*dto.ExpiredPendingResponse, error)
	GetComplaint(ctx context.Context, complaintID uuid.UUID) (*dto.ComplaintResponse, error)
	ListMenteeComplaints(ctx context.Context, menteeID uuid.UUID, query *dto.ListComplaintsQuery) (*serverutils.PaginatedData[*dto.ComplaintResponse], error)
	ListComplaints(ctx context.Context, query *dto.ListComplaintsQuery) (*serverutils.PaginatedData[*dto.ComplaintResponse], error)
}

type complaintService struct {
	uowFactory        unitofwork.RepositoryFactory
	emails            EmailQueue
	publisher         events.Publisher
	logger            logger.ILogger
	eligibilityWindow time.Duration
}

// NewComplaintService takes the time a paid meeting may stay Pending before
// the mentee is considered stranded.
func NewComplaintService(
	uowFactory unitofwork.RepositoryFactory,
	emails EmailQueue,
	publisher events.Publisher,
	log logger.ILogger,
	eligibilityWindow time.Duration,
) IComplaintService {
	return &complaintService{
		uowFactory:        uowFactory,
		emails:            emails,
		publisher:         publisher,
		logger:            log,
		eligibilityWindow: eligibilityWindow,
	}
}

func (s *complaintService) FileComplaint(ctx context.Context, menteeID uuid.UUID, req *dto.FileComplaintRequest) (*dto.ComplaintResponse, error) {
	meetingID, err := uuid.Parse(req.MeetingId)
	if err != nil {
		return nil, ErrMeetingNotFound
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	meeting, err := uow.MeetingRepository().FindOne(ctx, specification.ByID{ID: meetingID})
	if err != nil {
		return nil, err
	}
	if meeting == nil {
		return nil, ErrMeetingNotFound
	}
	if meeting.MenteeId != menteeID {
		return nil, ErrForbidden
	}

	existing, err := uow.ComplaintRepository().FindOne(ctx,
		specification.Filter("meeting_id", meetingID),
		specification.Filter("mentee_id", menteeID),
	)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrComplaintExists
	}

	now := time.Now()
	complaint := &entity.Complaint{
		Id:        uuid.New(),
		MeetingId: meetingID,
		MenteeId:  menteeID,
		MentorId:  meeting.MentorId,
		Content:   req.Content,
		Status:    entity.ComplaintStatusPending,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uow.ComplaintRepository().Create(ctx, complaint); err != nil {
		if errors.Is(err, contract.ErrDuplicate) {
			return nil, ErrComplaintExists
		}
		return nil, err
	}

	s.logger.Info(complaintModule, "Complaint filed", map[string]interface{}{
		"complaint_id": complaint.Id,
		"meeting_id":   meetingID,
	})
	publishEvent(ctx, s.publisher, s.logger, complaintModule, events.ComplaintFiled, map[string]interface{}{
		"complaint_id": complaint.Id.String(),
		"meeting_id":   meetingID.String(),
		"mentee_id":    menteeID.String(),
		"mentor_id":    meeting.MentorId.String(),
	})

	return toComplaintResponse(complaint), nil
}

func (s *complaintService) UpdateComplaintStatus(ctx context.Context, complaintID uuid.UUID, req *dto.UpdateComplaintRequest) (*dto.ComplaintResponse, error) {
	status := entity.ComplaintStatus(req.Status)
	if !status.IsAdminTarget() {
		return nil, serverutils.NewValidationError("status must be Reviewed, Resolved or Rejected")
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	complaint, err := uow.ComplaintRepository().FindOne(ctx, specification.ByID{ID: complaintID})
	if err != nil {
		return nil, err
	}
	if complaint == nil {
		return nil, ErrComplaintNotFound
	}

	complaint.Status = status
	complaint.AdminResponse = req.AdminResponse
	complaint.UpdatedAt = time.Now()
	if err := uow.ComplaintRepository().Update(ctx, complaint); err != nil {
		return nil, err
	}

	// Resolving cancels a meeting the mentor never scheduled. Later states are left alone.
	cancelled := false
	if status == entity.ComplaintStatusResolved {
		cancelled, err = uow.MeetingRepository().TransitionStatus(ctx, complaint.MeetingId, entity.MeetingStatusPending, entity.MeetingStatusCancelled)
		if err != nil {
			return nil, err
		}
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}

	s.logger.Info(complaintModule, "Complaint updated", map[string]interface{}{
		"complaint_id":      complaintID,
		"status":            status,
		"meeting_cancelled": cancelled,
	})

	s.notifyMentee(ctx, complaint)
	publishEvent(ctx, s.publisher, s.logger, complaintModule, events.ComplaintUpdated, map[string]interface{}{
		"complaint_id":      complaint.Id.String(),
		"meeting_id":        complaint.MeetingId.String(),
		"mentee_id":         complaint.MenteeId.String(),
		"mentor_id":         complaint.MentorId.String(),
		"status":            string(status),
		"meeting_cancelled": cancelled,
	})

	return toComplaintResponse(complaint), nil
}

func (s *complaintService) notifyMentee(ctx context.Context, complaint *entity.Complaint) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	d, err := uow.MeetingRepository().FindDetail(ctx, complaint.MeetingId)
	if err != nil || d == nil {
		s.logger.Warn(complaintModule, "Could not load meeting for complaint email", map[string]interface{}{"complaint_id": complaint.Id})
		return
	}
	enqueueEmail(ctx, s.emails, s.logger, complaintModule, mailer.ComplaintUpdateEmail(d.MenteeEmail, mailer.ComplaintDetails{
		RecipientName: d.MenteeName,
		MeetingDate:   d.Slot.Date.Format(entity.DateLayout),
		Status:        string(complaint.Status),
		Response:      complaint.AdminResponse,
	}))
}

func (s *complaintService) CheckMeetingExpiredPending(ctx context.Context, menteeID, meetingID uuid.UUID) (*dto.ExpiredPendingResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	meeting, err := uow.MeetingRepository().FindOne(ctx, specification.ByID{ID: meetingID})
	if err != nil {
		return nil, err
	}
	if meeting == nil {
		return nil, ErrMeetingNotFound
	}
	if meeting.MenteeId != menteeID {
		return nil, ErrForbidden
	}

	expired, err := uow.MeetingRepository().IsExpiredPending(ctx, meetingID, menteeID, s.eligibilityWindow)
	if err != nil {
		return nil, err
	}
	return &dto.ExpiredPendingResponse{MeetingId: meetingID, Expired: expired}, nil
}

func (s *complaintService) GetComplaint(ctx context.Context, complaintID uuid.UUID) (*dto.ComplaintResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	complaint, err := uow.ComplaintRepository().FindOne(ctx, specification.ByID{ID: complaintID})
	if err != nil {
		return nil, err
	}
	if complaint == nil {
		return nil, ErrComplaintNotFound
	}
	return toComplaintResponse(complaint), nil
}

func (s *complaintService) ListMenteeComplaints(ctx context.Context, menteeID uuid.UUID, query *dto.ListComplaintsQuery) (*serverutils.PaginatedData[*dto.ComplaintResponse], error) {
	return s.list(ctx, contract.ComplaintFilter{MenteeId: menteeID}, query)
}

func (s *complaintService) ListComplaints(ctx context.Context, query *dto.ListComplaintsQuery) (*serverutils.PaginatedData[*dto.ComplaintResponse], error) {
	return s.list(ctx, contract.ComplaintFilter{}, query)
}

func (s *complaintService) list(ctx context.Context, filter contract.ComplaintFilter, query *dto.ListComplaintsQuery) (*serverutils.PaginatedData[*dto.ComplaintResponse], error) {
	filter.Status = entity.ComplaintStatus(query.Status)
	filter.Limit, filter.Offset = pageBounds(query.Limit, query.Offset)

	uow := s.uowFactory.NewUnitOfWork(ctx)
	complaints, total, err := uow.ComplaintRepository().FindAll(ctx, filter)
	if err != nil {
		return nil, err
	}

	items := make([]*dto.ComplaintResponse, 0, len(complaints))
	for _, c := range complaints {
		items = append(items, toComplaintResponse(c))
	}
	return &serverutils.PaginatedData[*dto.ComplaintResponse]{
		Items:  items,
		Total:  total,
		Limit:  filter.Limit,
		Offset: filter.Offset,
	}, nil
}

func toComplaintResponse(c *entity.Complaint) *dto.ComplaintResponse {
	return &dto.ComplaintResponse{
		Id:            c.Id,
		MeetingId:     c.MeetingId,
		MenteeId:      c.MenteeId,
		MentorId:      c.MentorId,
		Content:       c.Content,
		Status:        string(c.Status),
		AdminResponse: c.AdminResponse,
		CreatedAt:     c.CreatedAt,
		UpdatedAt:     c.UpdatedAt,
	}
}
