package mapper

import (
	"encoding/json"

	"mentoria-be/internal/entity"
	"mentoria-be/internal/model"

	"gorm.io/datatypes"
)

// LedgerMapper covers the money trail and bookkeeping records.
type LedgerMapper struct{}

func NewLedgerMapper() *LedgerMapper {
	return &LedgerMapper{}
}

func (m *LedgerMapper) PayoutToEntity(p *model.Payout) *entity.Payout {
	if p == nil {
		return nil
	}
	return &entity.Payout{
		Id:        p.Id,
		MentorId:  p.MentorId,
		Amount:    p.Amount,
		Status:    entity.PayoutStatus(p.Status),
		Reference: p.Reference,
		CreatedBy: p.CreatedBy,
		CreatedAt: p.CreatedAt,
	}
}

func (m *LedgerMapper) PayoutToModel(p *entity.Payout) *model.Payout {
	if p == nil {
		return nil
	}
	return &model.Payout{
		Id:        p.Id,
		MentorId:  p.MentorId,
		Amount:    p.Amount,
		Status:    string(p.Status),
		Reference: p.Reference,
		CreatedBy: p.CreatedBy,
		CreatedAt: p.CreatedAt,
	}
}

func (m *LedgerMapper) BalanceToEntity(b *model.MentorBalanceRow) entity.MentorBalance {
	return entity.MentorBalance{
		MentorId:   b.MentorId,
		MentorName: b.MentorName,
		Earned:     b.Earned,
		PaidOut:    b.PaidOut,
	}
}

func (m *LedgerMapper) WebhookEventToModel(e *entity.WebhookEvent) *model.WebhookEvent {
	if e == nil {
		return nil
	}
	return &model.WebhookEvent{
		Id:              e.Id,
		Provider:        e.Provider,
		ProviderEventId: e.ProviderEventId,
		SessionId:       e.SessionId,
		EventType:       e.EventType,
		Payload:         datatypes.JSON(e.Payload),
		Status:          string(e.Status),
		Error:           e.Error,
		ProcessedAt:     e.ProcessedAt,
		CreatedAt:       e.CreatedAt,
	}
}

func (m *LedgerMapper) WebhookEventToEntity(e *model.WebhookEvent) *entity.WebhookEvent {
	if e == nil {
		return nil
	}
	return &entity.WebhookEvent{
		Id:              e.Id,
		Provider:        e.Provider,
		ProviderEventId: e.ProviderEventId,
		SessionId:       e.SessionId,
		EventType:       e.EventType,
		Payload:         []byte(e.Payload),
		Status:          entity.WebhookEventStatus(e.Status),
		Error:           e.Error,
		ProcessedAt:     e.ProcessedAt,
		CreatedAt:       e.CreatedAt,
	}
}

func (m *LedgerMapper) NotificationToModel(n *entity.Notification) *model.Notification {
	if n == nil {
		return nil
	}
	var meta datatypes.JSON
	if n.Metadata != nil {
		if raw, err := json.Marshal(n.Metadata); err == nil {
			meta = datatypes.JSON(raw)
		}
	}
	return &model.Notification{
		ID:         n.Id,
		UserID:     n.UserId,
		TypeCode:   n.TypeCode,
		EntityType: n.EntityType,
		EntityID:   n.EntityId,
		Title:      n.Title,
		Message:    n.Message,
		Metadata:   meta,
		IsRead:     n.IsRead,
		ReadAt:     n.ReadAt,
		CreatedAt:  n.CreatedAt,
	}
}

func (m *LedgerMapper) NotificationToEntity(n *model.Notification) *entity.Notification {
	if n == nil {
		return nil
	}
	var meta map[string]interface{}
	if len(n.Metadata) > 0 {
		_ = json.Unmarshal(n.Metadata, &meta)
	}
	return &entity.Notification{
		Id:         n.ID,
		UserId:     n.UserID,
		TypeCode:   n.TypeCode,
		EntityType: n.EntityType,
		EntityId:   n.EntityID,
		Title:      n.Title,
		Message:    n.Message,
		Metadata:   meta,
		IsRead:     n.IsRead,
		ReadAt:     n.ReadAt,
		CreatedAt:  n.CreatedAt,
	}
}
