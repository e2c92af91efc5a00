package contract

import (
	"context"

	"mentoria-be/internal/entity"
	"mentoria-be/internal/repository/specification"

	"github.com/google/uuid"
)

type PlanRepository interface {
	Create(ctx context.Context, plan *entity.Plan) error
	Update(ctx context.Context, plan *entity.Plan) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Plan, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Plan, error)
}

type SlotRepository interface {
	Create(ctx context.Context, slot *entity.Slot) error
	FindByKey(ctx context.Context, key entity.SlotKey) (*entity.Slot, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Slot, error)
	// Replace rewrites the identity of an Available slot. It reports false
	// when no Available slot matched oldKey.
	Replace(ctx context.Context, oldKey entity.SlotKey, slot *entity.Slot) (bool, error)
	// Delete removes an Available slot and reports whether one matched.
	Delete(ctx context.Context, key entity.SlotKey) (bool, error)
	// MarkBooked flips Available to Booked and reports whether a row changed.
	MarkBooked(ctx context.Context, key entity.SlotKey) (bool, error)
}

type DiscountRepository interface {
	Create(ctx context.Context, discount *entity.Discount) error
	Update(ctx context.Context, discount *entity.Discount) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Discount, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Discount, error)
	// IncrementUsage bumps used_count only while it is below usage_limit.
	IncrementUsage(ctx context.Context, id uuid.UUID) (bool, error)
}
