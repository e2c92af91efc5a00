package contract

import (
	"context"

	"mentoria-be/internal/entity"
	"mentoria-be/internal/repository/specification"

	"github.com/google/uuid"
)

type PayoutRepository interface {
	Create(ctx context.Context, payout *entity.Payout) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Payout, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
	Balances(ctx context.Context) ([]entity.MentorBalance, error)
	BalanceOf(ctx context.Context, mentorID uuid.UUID) (entity.MentorBalance, error)
}

type WebhookEventRepository interface {
	FindBySessionId(ctx context.Context, sessionID string) (*entity.WebhookEvent, error)
	// MarkProcessed inserts or promotes the session's event to processed.
	MarkProcessed(ctx context.Context, event *entity.WebhookEvent) error
	// MarkFailed records a failure unless the session is already processed.
	MarkFailed(ctx context.Context, event *entity.WebhookEvent) error
}

type NotificationRepository interface {
	Create(ctx context.Context, notification *entity.Notification) error
	FindByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.Notification, int64, error)
	CountUnread(ctx context.Context, userID uuid.UUID) (int64, error)
	// MarkAsRead reports false when the notification does not belong to userID.
	MarkAsRead(ctx context.Context, id, userID uuid.UUID) (bool, error)
	MarkAllAsRead(ctx context.Context, userID uuid.UUID) error
}
