package service

import (
	"context"
	"strings"

	"mentoria-be/internal/dto"
	"mentoria-be/internal/entity"
	"mentoria-be/internal/pkg/logger"
	"mentoria-be/internal/pkg/serverutils"
	"mentoria-be/internal/repository/contract"
	"mentoria-be/internal/repository/specification"
	"mentoria-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

type IMentorService interface {
	SearchMentors(ctx context.Context, query *dto.MentorSearchQuery) (*serverutils.PaginatedData[*dto.MentorSummaryResponse], error)
	GetMentorProfile(ctx context.Context, mentorID uuid.UUID) (*dto.MentorProfileResponse, error)
	UpdateProfile(ctx context.Context, mentorID uuid.UUID, req *dto.UpdateMentorProfileRequest) (*dto.MentorProfileResponse, error)
}

type mentorService struct {
	uowFactory unitofwork.RepositoryFactory
	logger     logger.ILogger
}

func NewMentorService(uowFactory unitofwork.RepositoryFactory, log logger.ILogger) IMentorService {
	return &mentorService{
		uowFactory: uowFactory,
		logger:     log,
	}
}

func (s *mentorService) SearchMentors(ctx context.Context, query *dto.MentorSearchQuery) (*serverutils.PaginatedData[*dto.MentorSummaryResponse], error) {
	if query.MinPrice != nil && query.MaxPrice != nil && *query.MinPrice > *query.MaxPrice {
		return nil, serverutils.NewValidationError("min_price must not exceed max_price")
	}
	limit, offset := pageBounds(query.Limit, query.Offset)

	uow := s.uowFactory.NewUnitOfWork(ctx)
	mentors, total, err := uow.MentorRepository().Search(ctx, contract.MentorSearchFilter{
		Query:    strings.TrimSpace(query.Query),
		Skill:    strings.TrimSpace(query.Skill),
		MinPrice: query.MinPrice,
		MaxPrice: query.MaxPrice,
		Limit:    limit,
		Offset:   offset,
	})
	if err != nil {
		return nil, err
	}

	items := make([]*dto.MentorSummaryResponse, 0, len(mentors))
	for _, m := range mentors {
		items = append(items, toMentorSummary(m))
	}
	return &serverutils.PaginatedData[*dto.MentorSummaryResponse]{
		Items:  items,
		Total:  total,
		Limit:  limit,
		Offset: offset,
	}, nil
}

func (s *mentorService) GetMentorProfile(ctx context.Context, mentorID uuid.UUID) (*dto.MentorProfileResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	mentor, err := uow.MentorRepository().FindByUserId(ctx, mentorID)
	if err != nil {
		return nil, err
	}
	if mentor == nil || (mentor.User != nil && mentor.User.Status == entity.UserStatusBanned) {
		return nil, ErrMentorNotFound
	}

	plans, err := uow.PlanRepository().FindAll(ctx,
		specification.Filter("mentor_id", mentorID),
		specification.Filter("is_active", true),
		specification.OrderBy{Field: "charge"},
	)
	if err != nil {
		return nil, err
	}
	return toMentorProfile(mentor, plans), nil
}

func (s *mentorService) UpdateProfile(ctx context.Context, mentorID uuid.UUID, req *dto.UpdateMentorProfileRequest) (*dto.MentorProfileResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	mentor, err := uow.MentorRepository().FindByUserId(ctx, mentorID)
	if err != nil {
		return nil, err
	}
	if mentor == nil {
		return nil, ErrMentorNotFound
	}

	skills := make([]string, 0, len(req.Skills))
	seen := make(map[string]bool, len(req.Skills))
	for _, skill := range req.Skills {
		skill = strings.ToLower(strings.TrimSpace(skill))
		if skill == "" || seen[skill] {
			continue
		}
		seen[skill] = true
		skills = append(skills, skill)
	}

	mentor.Headline = req.Headline
	mentor.Bio = req.Bio
	mentor.Skills = skills
	mentor.Company = req.Company
	mentor.YearsExperience = req.YearsExperience
	if err := uow.MentorRepository().Update(ctx, mentor); err != nil {
		return nil, err
	}

	s.logger.Info("MENTOR", "Profile updated", map[string]interface{}{"mentor_id": mentorID})
	return s.GetMentorProfile(ctx, mentorID)
}

func toMentorSummary(m *entity.MentorSummary) *dto.MentorSummaryResponse {
	res := mentorSummaryBase(&m.Mentor)
	res.StartingPrice = m.StartingPrice
	res.PlanCount = m.PlanCount
	return res
}

func mentorSummaryBase(m *entity.Mentor) *dto.MentorSummaryResponse {
	res := &dto.MentorSummaryResponse{
		Id:              m.UserId,
		Headline:        m.Headline,
		Company:         m.Company,
		Skills:          m.Skills,
		YearsExperience: m.YearsExperience,
		Rating:          m.Rating,
		RatingCount:     m.RatingCount,
	}
	if res.Skills == nil {
		res.Skills = []string{}
	}
	if m.User != nil {
		res.FullName = m.User.FullName
		res.AvatarURL = m.User.AvatarURL
	}
	return res
}

func toMentorProfile(m *entity.Mentor, plans []*entity.Plan) *dto.MentorProfileResponse {
	summary := mentorSummaryBase(m)
	summary.PlanCount = len(plans)

	res := &dto.MentorProfileResponse{
		MentorSummaryResponse: *summary,
		Bio:                   m.Bio,
		Plans:                 make([]*dto.PlanResponse, 0, len(plans)),
	}
	for _, p := range plans {
		if res.StartingPrice == nil || p.Charge < *res.StartingPrice {
			charge := p.Charge
			res.StartingPrice = &charge
		}
		res.Plans = append(res.Plans, toPlanResponse(p))
	}
	return res
}
