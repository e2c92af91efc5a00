package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"mentoria-be/internal/dto"
	"mentoria-be/internal/entity"
	"mentoria-be/internal/pkg/logger"
	"mentoria-be/internal/pkg/serverutils"
	"mentoria-be/internal/repository/contract"
	"mentoria-be/internal/repository/specification"
	"mentoria-be/internal/repository/unitofwork"
	"mentoria-be/pkg/lock"

	"github.com/google/uuid"
)

const slotModule = "SLOT"

type ISlotService interface {
	CreateSlot(ctx context.Context, mentorID uuid.UUID, req *dto.CreateSlotRequest) (*dto.SlotResponse, error)
	UpdateSlot(ctx context.Context, mentorID uuid.UUID, req *dto.UpdateSlotRequest) (*dto.SlotResponse, error)
	DeleteSlot(ctx context.Context, mentorID uuid.UUID, req *dto.SlotKeyRequest) error
	ListMentorSlots(ctx context.Context, mentorID uuid.UUID, query *dto.ListSlotsQuery) ([]*dto.SlotResponse, error)
	ListAvailableSlots(ctx context.Context, mentorID uuid.UUID, query *dto.ListSlotsQuery) ([]*dto.SlotResponse, error)
}

type slotService struct {
	uowFactory unitofwork.RepositoryFactory
	holder     lock.Holder
	logger     logger.ILogger
	now        func() time.Time
}

func NewSlotService(uowFactory unitofwork.RepositoryFactory, holder lock.Holder, log logger.ILogger) ISlotService {
	return &slotService{
		uowFactory: uowFactory,
		holder:     holder,
		logger:     log,
		now:        time.Now,
	}
}

// ensureNotHeld rejects changes to a slot while a mentee is paying for it.
func (s *slotService) ensureNotHeld(ctx context.Context, slot *entity.Slot) error {
	held, err := s.holder.IsHeld(ctx, slot.DisplayId())
	if err != nil {
		return fmt.Errorf("check slot hold: %w", err)
	}
	if held {
		return ErrSlotHeld
	}
	return nil
}

// lockOwnedPlan loads the mentor's plan and locks it so slot writes on one
// plan are serialized.
func lockOwnedPlan(ctx context.Context, uow unitofwork.UnitOfWork, mentorID uuid.UUID, rawPlanID string) (*entity.Plan, error) {
	planID, err := uuid.Parse(rawPlanID)
	if err != nil {
		return nil, ErrPlanNotFound
	}
	plan, err := uow.PlanRepository().FindOne(ctx, specification.ByID{ID: planID}, specification.ForUpdate{})
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

func (s *slotService) validateSlot(ctx context.Context, uow unitofwork.UnitOfWork, plan *entity.Plan, key entity.SlotKey, exclude *entity.SlotKey) error {
	if !key.StartTime.After(s.now()) {
		return serverutils.NewValidationError("slot must start in the future")
	}
	if plan.PlanType == entity.PlanTypeMentorship && key.Duration() > time.Duration(plan.MinutesPerCall)*time.Minute {
		return serverutils.NewValidationError(fmt.Sprintf("slot is longer than the plan's %d minutes per call", plan.MinutesPerCall))
	}

	sameDay, err := uow.SlotRepository().FindAll(ctx,
		specification.Filter("plan_id", plan.Id),
		specification.Filter("date", key.Date),
	)
	if err != nil {
		return err
	}
	for _, other := range sameDay {
		if exclude != nil && other.SlotKey.Equal(*exclude) {
			continue
		}
		if key.Overlaps(other.SlotKey) {
			return ErrSlotOverlap
		}
	}
	return nil
}

func (s *slotService) CreateSlot(ctx context.Context, mentorID uuid.UUID, req *dto.CreateSlotRequest) (*dto.SlotResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	plan, err := lockOwnedPlan(ctx, uow, mentorID, req.PlanId)
	if err != nil {
		return nil, err
	}
	key, err := parseSlotKey(mentorID, plan.Id, req.Date, req.StartTime, req.EndTime)
	if err != nil {
		return nil, err
	}
	if err := s.validateSlot(ctx, uow, plan, key, nil); err != nil {
		return nil, err
	}

	slot := &entity.Slot{SlotKey: key, Status: entity.SlotStatusAvailable}
	if err := uow.SlotRepository().Create(ctx, slot); err != nil {
		if errors.Is(err, contract.ErrDuplicate) {
			return nil, ErrSlotOverlap
		}
		return nil, err
	}
	if err := uow.Commit(); err != nil {
		return nil, err
	}

	s.logger.Info(slotModule, "Slot created", map[string]interface{}{"slot_id": key.DisplayId()})
	return toSlotResponse(slot), nil
}

func (s *slotService) UpdateSlot(ctx context.Context, mentorID uuid.UUID, req *dto.UpdateSlotRequest) (*dto.SlotResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	plan, err := lockOwnedPlan(ctx, uow, mentorID, req.Original.PlanId)
	if err != nil {
		return nil, err
	}
	oldKey, err := parseSlotKey(mentorID, plan.Id, req.Original.Date, req.Original.StartTime, req.Original.EndTime)
	if err != nil {
		return nil, err
	}
	existing, err := uow.SlotRepository().FindByKey(ctx, oldKey)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, ErrSlotNotFound
	}
	if existing.Status != entity.SlotStatusAvailable {
		return nil, ErrSlotUnavailable
	}
	if err := s.ensureNotHeld(ctx, existing); err != nil {
		return nil, err
	}

	newKey, err := parseSlotKey(mentorID, plan.Id, req.Date, req.StartTime, req.EndTime)
	if err != nil {
		return nil, err
	}
	if err := s.validateSlot(ctx, uow, plan, newKey, &oldKey); err != nil {
		return nil, err
	}

	slot := &entity.Slot{SlotKey: newKey, Status: entity.SlotStatusAvailable, CreatedAt: existing.CreatedAt}
	replaced, err := uow.SlotRepository().Replace(ctx, oldKey, slot)
	if err != nil {
		if errors.Is(err, contract.ErrDuplicate) {
			return nil, ErrSlotOverlap
		}
		return nil, err
	}
	if !replaced {
		return nil, ErrSlotUnavailable
	}
	if err := uow.Commit(); err != nil {
		return nil, err
	}

	s.logger.Info(slotModule, "Slot moved", map[string]interface{}{
		"from": oldKey.DisplayId(),
		"to":   newKey.DisplayId(),
	})
	return toSlotResponse(slot), nil
}

func (s *slotService) DeleteSlot(ctx context.Context, mentorID uuid.UUID, req *dto.SlotKeyRequest) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer uow.Rollback()

	plan, err := lockOwnedPlan(ctx, uow, mentorID, req.PlanId)
	if err != nil {
		return err
	}
	key, err := parseSlotKey(mentorID, plan.Id, req.Date, req.StartTime, req.EndTime)
	if err != nil {
		return err
	}
	existing, err := uow.SlotRepository().FindByKey(ctx, key)
	if err != nil {
		return err
	}
	if existing == nil {
		return ErrSlotNotFound
	}
	if err := s.ensureNotHeld(ctx, existing); err != nil {
		return err
	}

	deleted, err := uow.SlotRepository().Delete(ctx, key)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrSlotUnavailable
	}
	if err := uow.Commit(); err != nil {
		return err
	}

	s.logger.Info(slotModule, "Slot deleted", map[string]interface{}{"slot_id": key.DisplayId()})
	return nil
}

func (s *slotService) ListMentorSlots(ctx context.Context, mentorID uuid.UUID, query *dto.ListSlotsQuery) ([]*dto.SlotResponse, error) {
	specs := []specification.Specification{specification.Filter("mentor_id", mentorID)}
	if query.Status != "" {
		specs = append(specs, specification.Filter("status", query.Status))
	}
	return s.list(ctx, specs, query)
}

// ListAvailableSlots is the public view: bookable slots from today or query.From on.
func (s *slotService) ListAvailableSlots(ctx context.Context, mentorID uuid.UUID, query *dto.ListSlotsQuery) ([]*dto.SlotResponse, error) {
	if query.From == "" {
		query.From = s.now().UTC().Format(entity.DateLayout)
	}
	specs := []specification.Specification{
		specification.Filter("mentor_id", mentorID),
		specification.Filter("status", string(entity.SlotStatusAvailable)),
	}
	return s.list(ctx, specs, query)
}

func (s *slotService) list(ctx context.Context, specs []specification.Specification, query *dto.ListSlotsQuery) ([]*dto.SlotResponse, error) {
	if query.PlanId != "" {
		planID, err := uuid.Parse(query.PlanId)
		if err != nil {
			return nil, serverutils.NewValidationError("invalid plan_id")
		}
		specs = append(specs, specification.Filter("plan_id", planID))
	}
	if query.From != "" {
		from, err := parseDate(query.From)
		if err != nil {
			return nil, serverutils.NewValidationError("from must be YYYY-MM-DD")
		}
		specs = append(specs, specification.OnOrAfter{Field: "date", At: from})
	}
	specs = append(specs,
		specification.OrderBy{Field: "date"},
		specification.OrderBy{Field: "start_time"},
	)

	uow := s.uowFactory.NewUnitOfWork(ctx)
	slots, err := uow.SlotRepository().FindAll(ctx, specs...)
	if err != nil {
		return nil, err
	}

	res := make([]*dto.SlotResponse, 0, len(slots))
	for _, slot := range slots {
		res = append(res, toSlotResponse(slot))
	}
	return res, nil
}

func toSlotResponse(slot *entity.Slot) *dto.SlotResponse {
	return &dto.SlotResponse{
		SlotId:    slot.DisplayId(),
		MentorId:  slot.MentorId,
		PlanId:    slot.PlanId,
		Date:      slot.Date.Format(entity.DateLayout),
		StartTime: slot.StartTime,
		EndTime:   slot.EndTime,
		Status:    string(slot.Status),
	}
}
