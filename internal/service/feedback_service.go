package service

import (
	"context"
	"errors"
	"time"

	"mentoria-be/internal/dto"
	"mentoria-be/internal/entity"
	"mentoria-be/internal/pkg/logger"
	"mentoria-be/internal/pkg/serverutils"
	"mentoria-be/internal/repository/contract"
	"mentoria-be/internal/repository/specification"
	"mentoria-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

type IFeedbackService interface {
	Create(ctx context.Context, menteeID uuid.UUID, req *dto.FeedbackRequest) (*dto.FeedbackResponse, error)
	ListMentorFeedback(ctx context.Context, mentorID uuid.UUID) ([]*dto.FeedbackResponse, error)
}

type feedbackService struct {
	uowFactory unitofwork.RepositoryFactory
	logger     logger.ILogger
}

func NewFeedbackService(uowFactory unitofwork.RepositoryFactory, log logger.ILogger) IFeedbackService {
	return &feedbackService{
		uowFactory: uowFactory,
		logger:     log,
	}
}

func (s *feedbackService) Create(ctx context.Context, menteeID uuid.UUID, req *dto.FeedbackRequest) (*dto.FeedbackResponse, error) {
	meetingID, err := uuid.Parse(req.MeetingId)
	if err != nil {
		return nil, ErrMeetingNotFound
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

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
	if meeting.Status != entity.MeetingStatusCompleted {
		return nil, serverutils.NewValidationError("feedback can only be left for completed meetings")
	}

	existing, err := uow.FeedbackRepository().FindOne(ctx, specification.Filter("meeting_id", meetingID))
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrFeedbackExists
	}

	feedback := &entity.Feedback{
		Id:        uuid.New(),
		MeetingId: meetingID,
		MenteeId:  menteeID,
		MentorId:  meeting.MentorId,
		Rating:    req.Rating,
		Comment:   req.Comment,
		CreatedAt: time.Now(),
	}
	if err := uow.FeedbackRepository().Create(ctx, feedback); err != nil {
		if errors.Is(err, contract.ErrDuplicate) {
			return nil, ErrFeedbackExists
		}
		return nil, err
	}
	if err := uow.MentorRepository().RefreshRating(ctx, meeting.MentorId); err != nil {
		return nil, err
	}
	if err := uow.Commit(); err != nil {
		return nil, err
	}

	s.logger.Info("FEEDBACK", "Feedback recorded", map[string]interface{}{
		"meeting_id": meetingID,
		"rating":     req.Rating,
	})
	return toFeedbackResponse(feedback), nil
}

func (s *feedbackService) ListMentorFeedback(ctx context.Context, mentorID uuid.UUID) ([]*dto.FeedbackResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	list, err := uow.FeedbackRepository().FindAll(ctx,
		specification.Filter("mentor_id", mentorID),
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	res := make([]*dto.FeedbackResponse, 0, len(list))
	for _, f := range list {
		res = append(res, toFeedbackResponse(f))
	}
	return res, nil
}

func toFeedbackResponse(f *entity.Feedback) *dto.FeedbackResponse {
	return &dto.FeedbackResponse{
		Id:        f.Id,
		MeetingId: f.MeetingId,
		MentorId:  f.MentorId,
		Rating:    f.Rating,
		Comment:   f.Comment,
		CreatedAt: f.CreatedAt,
	}
}
