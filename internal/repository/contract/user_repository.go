package contract

import (
	"context"

	"mentoria-be/internal/entity"
	"mentoria-be/internal/repository/specification"

	"github.com/google/uuid"
)

type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.User, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.User, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status entity.UserStatus) error
}

// MentorSearchFilter narrows the public mentor catalog. Price bounds apply
// to the cheapest active plan.
type MentorSearchFilter struct {
	Query    string
	Skill    string
	MinPrice *float64
	MaxPrice *float64
	Limit    int
	Offset   int
}

type MentorRepository interface {
	Create(ctx context.Context, mentor *entity.Mentor) error
	Update(ctx context.Context, mentor *entity.Mentor) error
	// FindByUserId returns the profile with its User loaded, or nil.
	FindByUserId(ctx context.Context, userID uuid.UUID) (*entity.Mentor, error)
	Search(ctx context.Context, filter MentorSearchFilter) ([]*entity.MentorSummary, int64, error)
	// RefreshRating recomputes the rating aggregate from feedback rows.
	RefreshRating(ctx context.Context, mentorID uuid.UUID) error
}

type MenteeRepository interface {
	Create(ctx context.Context, mentee *entity.Mentee) error
	FindByUserId(ctx context.Context, userID uuid.UUID) (*entity.Mentee, error)
}
