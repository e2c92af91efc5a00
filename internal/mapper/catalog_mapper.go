package mapper

import (
	"mentoria-be/internal/entity"
	"mentoria-be/internal/model"
)

// CatalogMapper converts what a mentor publishes: plans, slots and discounts.
type CatalogMapper struct{}

func NewCatalogMapper() *CatalogMapper {
	return &CatalogMapper{}
}

func (m *CatalogMapper) PlanToEntity(p *model.Plan) *entity.Plan {
	if p == nil {
		return nil
	}
	return &entity.Plan{
		Id:             p.Id,
		MentorId:       p.MentorId,
		Title:          p.Title,
		Description:    p.Description,
		PlanType:       entity.PlanType(p.PlanType),
		Charge:         p.Charge,
		MinutesPerCall: p.MinutesPerCall,
		CallsPerWeek:   p.CallsPerWeek,
		IsActive:       p.IsActive,
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
	}
}

func (m *CatalogMapper) PlanToModel(p *entity.Plan) *model.Plan {
	if p == nil {
		return nil
	}
	return &model.Plan{
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
		UpdatedAt:      p.UpdatedAt,
	}
}

func (m *CatalogMapper) PlansToEntities(plans []*model.Plan) []*entity.Plan {
	out := make([]*entity.Plan, len(plans))
	for i, p := range plans {
		out[i] = m.PlanToEntity(p)
	}
	return out
}

func (m *CatalogMapper) SlotToEntity(s *model.Slot) *entity.Slot {
	if s == nil {
		return nil
	}
	return &entity.Slot{
		SlotKey: entity.SlotKey{
			MentorId:  s.MentorId,
			PlanId:    s.PlanId,
			Date:      s.Date,
			StartTime: s.StartTime,
			EndTime:   s.EndTime,
		},
		Status:    entity.SlotStatus(s.Status),
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
}

func (m *CatalogMapper) SlotToModel(s *entity.Slot) *model.Slot {
	if s == nil {
		return nil
	}
	return &model.Slot{
		MentorId:  s.MentorId,
		PlanId:    s.PlanId,
		Date:      s.Date,
		StartTime: s.StartTime,
		EndTime:   s.EndTime,
		Status:    string(s.Status),
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
}

func (m *CatalogMapper) SlotsToEntities(slots []*model.Slot) []*entity.Slot {
	out := make([]*entity.Slot, len(slots))
	for i, s := range slots {
		out[i] = m.SlotToEntity(s)
	}
	return out
}

func (m *CatalogMapper) DiscountToEntity(d *model.Discount) *entity.Discount {
	if d == nil {
		return nil
	}
	return &entity.Discount{
		Id:         d.Id,
		MentorId:   d.MentorId,
		Code:       d.Code,
		Type:       entity.DiscountType(d.Type),
		Value:      d.Value,
		ValidFrom:  d.ValidFrom,
		ValidTo:    d.ValidTo,
		UsageLimit: d.UsageLimit,
		UsedCount:  d.UsedCount,
		IsActive:   d.IsActive,
		CreatedAt:  d.CreatedAt,
		UpdatedAt:  d.UpdatedAt,
	}
}

func (m *CatalogMapper) DiscountToModel(d *entity.Discount) *model.Discount {
	if d == nil {
		return nil
	}
	return &model.Discount{
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
		CreatedAt:  d.CreatedAt,
		UpdatedAt:  d.UpdatedAt,
	}
}

func (m *CatalogMapper) DiscountsToEntities(discounts []*model.Discount) []*entity.Discount {
	out := make([]*entity.Discount, len(discounts))
	for i, d := range discounts {
		out[i] = m.DiscountToEntity(d)
	}
	return out
}
