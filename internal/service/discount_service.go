package service

import (
	"context"
	"errors"
	"strings"
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

type IDiscountService interface {
	CreateDiscount(ctx context.Context, mentorID uuid.UUID, req *dto.DiscountRequest) (*dto.DiscountResponse, error)
	UpdateDiscount(ctx context.Context, mentorID, discountID uuid.UUID, req *dto.DiscountRequest) (*dto.DiscountResponse, error)
	DeleteDiscount(ctx context.Context, mentorID, discountID uuid.UUID) error
	ListDiscounts(ctx context.Context, mentorID uuid.UUID) ([]*dto.DiscountResponse, error)
	ValidateCode(ctx context.Context, code string, mentorID uuid.UUID) (*dto.ValidateDiscountResponse, error)
}

type discountService struct {
	uowFactory unitofwork.RepositoryFactory
	logger     logger.ILogger
	now        func() time.Time
}

func NewDiscountService(uowFactory unitofwork.RepositoryFactory, log logger.ILogger) IDiscountService {
	return &discountService{
		uowFactory: uowFactory,
		logger:     log,
		now:        time.Now,
	}
}

func validateDiscountRequest(req *dto.DiscountRequest) error {
	t := entity.DiscountType(req.Type)
	if !t.IsValid() {
		return serverutils.NewValidationError("type must be Percentage or Fixed")
	}
	if t == entity.DiscountTypePercentage && req.Value > 100 {
		return serverutils.NewValidationError("percentage discounts cannot exceed 100")
	}
	if !req.ValidTo.After(req.ValidFrom) {
		return serverutils.NewValidationError("valid_to must be after valid_from")
	}
	return nil
}

func (s *discountService) ownedDiscount(ctx context.Context, uow unitofwork.UnitOfWork, mentorID, discountID uuid.UUID) (*entity.Discount, error) {
	discount, err := uow.DiscountRepository().FindOne(ctx, specification.ByID{ID: discountID})
	if err != nil {
		return nil, err
	}
	if discount == nil {
		return nil, ErrDiscountNotFound
	}
	if discount.MentorId != mentorID {
		return nil, ErrForbidden
	}
	return discount, nil
}

func (s *discountService) codeTaken(ctx context.Context, uow unitofwork.UnitOfWork, code string, except uuid.UUID) (bool, error) {
	existing, err := uow.DiscountRepository().FindOne(ctx, specification.ByCode{Code: code})
	if err != nil {
		return false, err
	}
	return existing != nil && existing.Id != except, nil
}

func (s *discountService) CreateDiscount(ctx context.Context, mentorID uuid.UUID, req *dto.DiscountRequest) (*dto.DiscountResponse, error) {
	if err := validateDiscountRequest(req); err != nil {
		return nil, err
	}
	code := strings.ToUpper(strings.TrimSpace(req.Code))

	uow := s.uowFactory.NewUnitOfWork(ctx)
	taken, err := s.codeTaken(ctx, uow, code, uuid.Nil)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrDiscountCodeTaken
	}

	now := s.now()
	discount := &entity.Discount{
		Id:         uuid.New(),
		MentorId:   mentorID,
		Code:       code,
		Type:       entity.DiscountType(req.Type),
		Value:      req.Value,
		ValidFrom:  req.ValidFrom,
		ValidTo:    req.ValidTo,
		UsageLimit: req.UsageLimit,
		IsActive:   req.IsActive == nil || *req.IsActive,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := uow.DiscountRepository().Create(ctx, discount); err != nil {
		if errors.Is(err, contract.ErrDuplicate) {
			return nil, ErrDiscountCodeTaken
		}
		return nil, err
	}

	s.logger.Info("DISCOUNT", "Discount created", map[string]interface{}{"discount_id": discount.Id, "code": code})
	return toDiscountResponse(discount), nil
}

func (s *discountService) UpdateDiscount(ctx context.Context, mentorID, discountID uuid.UUID, req *dto.DiscountRequest) (*dto.DiscountResponse, error) {
	if err := validateDiscountRequest(req); err != nil {
		return nil, err
	}
	code := strings.ToUpper(strings.TrimSpace(req.Code))

	uow := s.uowFactory.NewUnitOfWork(ctx)
	discount, err := s.ownedDiscount(ctx, uow, mentorID, discountID)
	if err != nil {
		return nil, err
	}
	if req.UsageLimit < discount.UsedCount {
		return nil, serverutils.NewValidationError("usage_limit cannot be lower than the times the code was already used")
	}
	taken, err := s.codeTaken(ctx, uow, code, discount.Id)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrDiscountCodeTaken
	}

	discount.Code = code
	discount.Type = entity.DiscountType(req.Type)
	discount.Value = req.Value
	discount.ValidFrom = req.ValidFrom
	discount.ValidTo = req.ValidTo
	discount.UsageLimit = req.UsageLimit
	if req.IsActive != nil {
		discount.IsActive = *req.IsActive
	}
	discount.UpdatedAt = s.now()
	if err := uow.DiscountRepository().Update(ctx, discount); err != nil {
		if errors.Is(err, contract.ErrDuplicate) {
			return nil, ErrDiscountCodeTaken
		}
		return nil, err
	}
	return toDiscountResponse(discount), nil
}

// DeleteDiscount deactivates the code. Registrations keep referencing it.
func (s *discountService) DeleteDiscount(ctx context.Context, mentorID, discountID uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	discount, err := s.ownedDiscount(ctx, uow, mentorID, discountID)
	if err != nil {
		return err
	}
	discount.IsActive = false
	discount.UpdatedAt = s.now()
	return uow.DiscountRepository().Update(ctx, discount)
}

func (s *discountService) ListDiscounts(ctx context.Context, mentorID uuid.UUID) ([]*dto.DiscountResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	list, err := uow.DiscountRepository().FindAll(ctx,
		specification.Filter("mentor_id", mentorID),
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	res := make([]*dto.DiscountResponse, 0, len(list))
	for _, d := range list {
		res = append(res, toDiscountResponse(d))
	}
	return res, nil
}

func (s *discountService) ValidateCode(ctx context.Context, code string, mentorID uuid.UUID) (*dto.ValidateDiscountResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	discount, err := uow.DiscountRepository().FindOne(ctx, specification.ByCode{Code: strings.TrimSpace(code)})
	if err != nil {
		return nil, err
	}
	if discount == nil {
		return nil, ErrDiscountNotFound
	}
	if err := checkDiscountUsable(discount, mentorID, s.now()); err != nil {
		return nil, err
	}
	return &dto.ValidateDiscountResponse{
		DiscountId: discount.Id,
		Code:       discount.Code,
		Type:       string(discount.Type),
		Value:      discount.Value,
	}, nil
}

func toDiscountResponse(d *entity.Discount) *dto.DiscountResponse {
	return &dto.DiscountResponse{
		Id:         d.Id,
		MentorId:   d.MentorId,
		Code:       d.Code,
		Type:       string(d.Type),
		Value:      d.Value,
		ValidFrom:  d.ValidFrom,
		ValidTo:    d.ValidTo,
		UsageLimit: d.UsageLimit,
		UsedCount:  d.UsedCount,
		IsActive:   d.IsActive,
	}
}
