package service

import (
	"context"
	"time"

	"mentoria-be/internal/dto"
	"mentoria-be/internal/entity"
	"mentoria-be/internal/pkg/logger"
	"mentoria-be/internal/pkg/serverutils"
	"mentoria-be/internal/repository/specification"
	"mentoria-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

type IPlanService interface {
	CreatePlan(ctx context.Context, mentorID uuid.UUID, req *dto.PlanRequest) (*dto.PlanResponse, error)
	UpdatePlan(ctx context.Context, mentorID, planID uuid.UUID, req *dto.PlanRequest) (*dto.PlanResponse, error)
	DeactivatePlan(ctx context.Context, mentorID, planID uuid.UUID) error
	ListMentorPlans(ctx context.Context, mentorID uuid.UUID) ([]*dto.PlanResponse, error)
}

type planService struct {
	uowFactory unitofwork.RepositoryFactory
	logger     logger.ILogger
}

func NewPlanService(uowFactory unitofwork.RepositoryFactory, log logger.ILogger) IPlanService {
	return &planService{
		uowFactory: uowFactory,
		logger:     log,
	}
}

func validatePlanRequest(req *dto.PlanRequest) error {
	planType := entity.PlanType(req.PlanType)
	if !planType.IsValid() {
		return serverutils.NewValidationError("plan_type must be session or mentorship")
	}
	if planType == entity.PlanTypeMentorship && req.CallsPerWeek < 1 {
		return serverutils.NewValidationError("mentorship plans need at least one call per week")
	}
	return nil
}

func (s *planService) ownedPlan(ctx context.Context, uow unitofwork.UnitOfWork, mentorID, planID uuid.UUID) (*entity.Plan, error) {
	plan, err := uow.PlanRepository().FindOne(ctx, specification.ByID{ID: planID})
	if err != nil {
		return nil, err
	}
	if plan == nil {
		return nil, ErrPlanNotFound
	}
	if plan.MentorId != mentorID {
		return nil, ErrForbidden
	}
	return plan, nil
}

func (s *planService) CreatePlan(ctx context.Context, mentorID uuid.UUID, req *dto.PlanRequest) (*dto.PlanResponse, error) {
	if err := validatePlanRequest(req); err != nil {
		return nil, err
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	mentor, err := uow.MentorRepository().FindByUserId(ctx, mentorID)
	if err != nil {
		return nil, err
	}
	if mentor == nil {
		return nil, ErrMentorNotFound
	}

	now := time.Now()
	plan := &entity.Plan{
		Id:             uuid.New(),
		MentorId:       mentorID,
		Title:          req.Title,
		Description:    req.Description,
		PlanType:       entity.PlanType(req.PlanType),
		Charge:         roundCents(req.Charge),
		MinutesPerCall: req.MinutesPerCall,
		CallsPerWeek:   req.CallsPerWeek,
		IsActive:       true,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if plan.PlanType == entity.PlanTypeSession {
		plan.CallsPerWeek = 0
	}
	if err := uow.PlanRepository().Create(ctx, plan); err != nil {
		return nil, err
	}

	s.logger.Info("PLAN", "Plan created", map[string]interface{}{"plan_id": plan.Id, "mentor_id": mentorID})
	return toPlanResponse(plan), nil
}

// UpdatePlan changes terms for future checkouts; paid invoices keep the
// amounts they were charged.
func (s *planService) UpdatePlan(ctx context.Context, mentorID, planID uuid.UUID, req *dto.PlanRequest) (*dto.PlanResponse, error) {
	if err := validatePlanRequest(req); err != nil {
		return nil, err
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	plan, err := s.ownedPlan(ctx, uow, mentorID, planID)
	if err != nil {
		return nil, err
	}

	plan.Title = req.Title
	plan.Description = req.Description
	plan.PlanType = entity.PlanType(req.PlanType)
	plan.Charge = roundCents(req.Charge)
	plan.MinutesPerCall = req.MinutesPerCall
	plan.CallsPerWeek = req.CallsPerWeek
	if plan.PlanType == entity.PlanTypeSession {
		plan.CallsPerWeek = 0
	}
	plan.UpdatedAt = time.Now()
	if err := uow.PlanRepository().Update(ctx, plan); err != nil {
		return nil, err
	}
	return toPlanResponse(plan), nil
}

func (s *planService) DeactivatePlan(ctx context.Context, mentorID, planID uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	plan, err := s.ownedPlan(ctx, uow, mentorID, planID)
	if err != nil {
		return err
	}
	if !plan.IsActive {
		return nil
	}
	plan.IsActive = false
	plan.UpdatedAt = time.Now()
	if err := uow.PlanRepository().Update(ctx, plan); err != nil {
		return err
	}

	s.logger.Info("PLAN", "Plan deactivated", map[string]interface{}{"plan_id": planID})
	return nil
}

func (s *planService) ListMentorPlans(ctx context.Context, mentorID uuid.UUID) ([]*dto.PlanResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	plans, err := uow.PlanRepository().FindAll(ctx,
		specification.Filter("mentor_id", mentorID),
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	res := make([]*dto.PlanResponse, 0, len(plans))
	for _, p := range plans {
		res = append(res, toPlanResponse(p))
	}
	return res, nil
}

func toPlanResponse(p *entity.Plan) *dto.PlanResponse {
	return &dto.PlanResponse{
		Id:             p.Id,
		MentorId:       p.MentorId,
		Title:          p.Title,
		Description:    p.Description,
		PlanType:       string(p.PlanType),
		Charge:         p.Charge,
		MinutesPerCall: p.MinutesPerCall,
		CallsPerWeek:   p.CallsPerWeek,
		IsActive:       p.IsActive,
		CreatedAt:      p.CreatedAt,
	}
}
