package implementation

import (
	"context"
	"errors"
	"time"

	"mentoria-be/internal/entity"
	"mentoria-be/internal/mapper"
	"mentoria-be/internal/model"
	"mentoria-be/internal/repository/contract"
	"mentoria-be/internal/repository/scope"
	"mentoria-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type PayoutRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.LedgerMapper
}

func NewPayoutRepository(db *gorm.DB) contract.PayoutRepository {
	return &PayoutRepositoryImpl{
		db:     db,
		mapper: mapper.NewLedgerMapper(),
	}
}

func (r *PayoutRepositoryImpl) Create(ctx context.Context, payout *entity.Payout) error {
	m := r.mapper.PayoutToModel(payout)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*payout = *r.mapper.PayoutToEntity(m)
	return nil
}

func (r *PayoutRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Payout, error) {
	var models []*model.Payout
	query := applySpecifications(r.db.WithContext(ctx).Scopes(scope.OrderByCreatedDesc), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	out := make([]*entity.Payout, len(models))
	for i, m := range models {
		out[i] = r.mapper.PayoutToEntity(m)
	}
	return out, nil
}

func (r *PayoutRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := applySpecifications(r.db.WithContext(ctx).Model(&model.Payout{}), withoutPaging(specs)...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

const balanceQuery = `
	SELECT users.id AS mentor_id, users.full_name AS mentor_name,
		COALESCE(earned.total, 0) AS earned,
		COALESCE(paid.total, 0) AS paid_out
	FROM mentors
	JOIN users ON users.id = mentors.user_id
	LEFT JOIN (SELECT mentor_id, SUM(net_amount) AS total FROM invoices GROUP BY mentor_id) earned
		ON earned.mentor_id = mentors.user_id
	LEFT JOIN (SELECT mentor_id, SUM(amount) AS total FROM payouts WHERE status = 'Paid' GROUP BY mentor_id) paid
		ON paid.mentor_id = mentors.user_id
`

func (r *PayoutRepositoryImpl) Balances(ctx context.Context) ([]entity.MentorBalance, error) {
	var rows []*model.MentorBalanceRow
	if err := r.db.WithContext(ctx).Raw(balanceQuery + " ORDER BY earned DESC").Scan(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]entity.MentorBalance, len(rows))
	for i, row := range rows {
		out[i] = r.mapper.BalanceToEntity(row)
	}
	return out, nil
}

// BalanceOf locks the mentor row so concurrent payouts see each other.
func (r *PayoutRepositoryImpl) BalanceOf(ctx context.Context, mentorID uuid.UUID) (entity.MentorBalance, error) {
	var locked model.Mentor
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("user_id = ?", mentorID).
		First(&locked).Error
	if err != nil {
		return entity.MentorBalance{}, err
	}

	var row model.MentorBalanceRow
	if err := r.db.WithContext(ctx).Raw(balanceQuery+" WHERE mentors.user_id = ?", mentorID).Scan(&row).Error; err != nil {
		return entity.MentorBalance{}, err
	}
	return r.mapper.BalanceToEntity(&row), nil
}

type WebhookEventRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.LedgerMapper
}

func NewWebhookEventRepository(db *gorm.DB) contract.WebhookEventRepository {
	return &WebhookEventRepositoryImpl{
		db:     db,
		mapper: mapper.NewLedgerMapper(),
	}
}

func (r *WebhookEventRepositoryImpl) FindBySessionId(ctx context.Context, sessionID string) (*entity.WebhookEvent, error) {
	var m model.WebhookEvent
	if err := r.db.WithContext(ctx).Where("session_id = ?", sessionID).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.WebhookEventToEntity(&m), nil
}

func (r *WebhookEventRepositoryImpl) MarkProcessed(ctx context.Context, event *entity.WebhookEvent) error {
	now := time.Now()
	event.Status = entity.WebhookEventProcessed
	event.ProcessedAt = &now
	event.Error = ""
	m := r.mapper.WebhookEventToModel(event)
	if m.Id == uuid.Nil {
		m.Id = uuid.New()
	}
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "session_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"provider_event_id", "event_type", "payload", "status", "error", "processed_at"}),
	}).Create(m).Error
}

func (r *WebhookEventRepositoryImpl) MarkFailed(ctx context.Context, event *entity.WebhookEvent) error {
	event.Status = entity.WebhookEventFailed
	m := r.mapper.WebhookEventToModel(event)
	if m.Id == uuid.Nil {
		m.Id = uuid.New()
	}
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "session_id"}},
		Where:     clause.Where{Exprs: []clause.Expression{clause.Neq{Column: "webhook_events.status", Value: string(entity.WebhookEventProcessed)}}},
		DoUpdates: clause.AssignmentColumns([]string{"provider_event_id", "event_type", "payload", "status", "error"}),
	}).Create(m).Error
}

type NotificationRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.LedgerMapper
}

func NewNotificationRepository(db *gorm.DB) contract.NotificationRepository {
	return &NotificationRepositoryImpl{
		db:     db,
		mapper: mapper.NewLedgerMapper(),
	}
}

func (r *NotificationRepositoryImpl) Create(ctx context.Context, notification *entity.Notification) error {
	m := r.mapper.NotificationToModel(notification)
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*notification = *r.mapper.NotificationToEntity(m)
	return nil
}

func (r *NotificationRepositoryImpl) FindByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.Notification, int64, error) {
	var models []*model.Notification
	var total int64

	db := r.db.WithContext(ctx).Model(&model.Notification{}).Where("user_id = ?", userID)

	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := db.Scopes(scope.OrderByCreatedDesc).
		Limit(limit).
		Offset(offset).
		Find(&models).Error
	if err != nil {
		return nil, 0, err
	}

	out := make([]*entity.Notification, len(models))
	for i, m := range models {
		out[i] = r.mapper.NotificationToEntity(m)
	}
	return out, total, nil
}

func (r *NotificationRepositoryImpl) CountUnread(ctx context.Context, userID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.Notification{}).
		Where("user_id = ? AND is_read = ?", userID, false).
		Count(&count).Error
	return count, err
}

func (r *NotificationRepositoryImpl) MarkAsRead(ctx context.Context, id, userID uuid.UUID) (bool, error) {
	now := time.Now()
	result := r.db.WithContext(ctx).
		Model(&model.Notification{}).
		Where("id = ? AND user_id = ?", id, userID).
		Updates(map[string]interface{}{
			"is_read": true,
			"read_at": now,
		})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected == 1, nil
}

func (r *NotificationRepositoryImpl) MarkAllAsRead(ctx context.Context, userID uuid.UUID) error {
	now := time.Now()
	return r.db.WithContext(ctx).
		Model(&model.Notification{}).
		Where("user_id = ? AND is_read = ?", userID, false).
		Updates(map[string]interface{}{
			"is_read": true,
			"read_at": now,
		}).Error
}
