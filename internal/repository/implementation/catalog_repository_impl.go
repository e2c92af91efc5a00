package implementation

import (
	"context"
	"errors"

	"mentoria-be/internal/entity"
	"mentoria-be/internal/mapper"
	"mentoria-be/internal/model"
	"mentoria-be/internal/repository/contract"
	"mentoria-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PlanRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.CatalogMapper
}

func NewPlanRepository(db *gorm.DB) contract.PlanRepository {
	return &PlanRepositoryImpl{
		db:     db,
		mapper: mapper.NewCatalogMapper(),
	}
}

func (r *PlanRepositoryImpl) Create(ctx context.Context, plan *entity.Plan) error {
	m := r.mapper.PlanToModel(plan)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*plan = *r.mapper.PlanToEntity(m)
	return nil
}

func (r *PlanRepositoryImpl) Update(ctx context.Context, plan *entity.Plan) error {
	m := r.mapper.PlanToModel(plan)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*plan = *r.mapper.PlanToEntity(m)
	return nil
}

func (r *PlanRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Plan, error) {
	var m model.Plan
	if err := applySpecifications(r.db.WithContext(ctx), specs...).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.PlanToEntity(&m), nil
}

func (r *PlanRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Plan, error) {
	var models []*model.Plan
	if err := applySpecifications(r.db.WithContext(ctx), specs...).Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.PlansToEntities(models), nil
}

type SlotRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.CatalogMapper
}

func NewSlotRepository(db *gorm.DB) contract.SlotRepository {
	return &SlotRepositoryImpl{
		db:     db,
		mapper: mapper.NewCatalogMapper(),
	}
}

func whereSlotKey(db *gorm.DB, key entity.SlotKey) *gorm.DB {
	return db.Where(
		"mentor_id = ? AND plan_id = ? AND date = ? AND start_time = ? AND end_time = ?",
		key.MentorId, key.PlanId, key.Date, key.StartTime, key.EndTime,
	)
}

func (r *SlotRepositoryImpl) Create(ctx context.Context, slot *entity.Slot) error {
	m := r.mapper.SlotToModel(slot)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return translateError(err)
	}
	*slot = *r.mapper.SlotToEntity(m)
	return nil
}

func (r *SlotRepositoryImpl) FindByKey(ctx context.Context, key entity.SlotKey) (*entity.Slot, error) {
	var m model.Slot
	if err := whereSlotKey(r.db.WithContext(ctx), key).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.SlotToEntity(&m), nil
}

func (r *SlotRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Slot, error) {
	var models []*model.Slot
	if err := applySpecifications(r.db.WithContext(ctx), specs...).Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.SlotsToEntities(models), nil
}

func (r *SlotRepositoryImpl) Replace(ctx context.Context, oldKey entity.SlotKey, slot *entity.Slot) (bool, error) {
	result := whereSlotKey(r.db.WithContext(ctx).Model(&model.Slot{}), oldKey).
		Where("status = ?", string(entity.SlotStatusAvailable)).
		Updates(map[string]interface{}{
			"date":       slot.Date,
			"start_time": slot.StartTime,
			"end_time":   slot.EndTime,
		})
	if result.Error != nil {
		return false, translateError(result.Error)
	}
	return result.RowsAffected == 1, nil
}

func (r *SlotRepositoryImpl) Delete(ctx context.Context, key entity.SlotKey) (bool, error) {
	result := whereSlotKey(r.db.WithContext(ctx), key).
		Where("status = ?", string(entity.SlotStatusAvailable)).
		Delete(&model.Slot{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected == 1, nil
}

func (r *SlotRepositoryImpl) MarkBooked(ctx context.Context, key entity.SlotKey) (bool, error) {
	result := whereSlotKey(r.db.WithContext(ctx).Model(&model.Slot{}), key).
		Where("status = ?", string(entity.SlotStatusAvailable)).
		Update("status", string(entity.SlotStatusBooked))
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected == 1, nil
}

type DiscountRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.CatalogMapper
}

func NewDiscountRepository(db *gorm.DB) contract.DiscountRepository {
	return &DiscountRepositoryImpl{
		db:     db,
		mapper: mapper.NewCatalogMapper(),
	}
}

func (r *DiscountRepositoryImpl) Create(ctx context.Context, discount *entity.Discount) error {
	m := r.mapper.DiscountToModel(discount)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return translateError(err)
	}
	*discount = *r.mapper.DiscountToEntity(m)
	return nil
}

func (r *DiscountRepositoryImpl) Update(ctx context.Context, discount *entity.Discount) error {
	m := r.mapper.DiscountToModel(discount)
	// used_count is owned by IncrementUsage.
	err := r.db.WithContext(ctx).Model(&model.Discount{}).Where("id = ?", m.Id).
		Updates(map[string]interface{}{
			"code":        m.Code,
			"type":        m.Type,
			"value":       m.Value,
			"valid_from":  m.ValidFrom,
			"valid_to":    m.ValidTo,
			"usage_limit": m.UsageLimit,
			"is_active":   m.IsActive,
		}).Error
	return translateError(err)
}

func (r *DiscountRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Discount, error) {
	var m model.Discount
	if err := applySpecifications(r.db.WithContext(ctx), specs...).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.DiscountToEntity(&m), nil
}

func (r *DiscountRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Discount, error) {
	var models []*model.Discount
	if err := applySpecifications(r.db.WithContext(ctx), specs...).Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.DiscountsToEntities(models), nil
}

func (r *DiscountRepositoryImpl) IncrementUsage(ctx context.Context, id uuid.UUID) (bool, error) {
	result := r.db.WithContext(ctx).Model(&model.Discount{}).
		Where("id = ? AND used_count < usage_limit", id).
		Update("used_count", gorm.Expr("used_count + 1"))
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected == 1, nil
}
