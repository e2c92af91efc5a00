package entity

import (
	"time"

	"github.com/google/uuid"
)

type PlanType string

const (
	// PlanTypeSession is a one-off call.
	PlanTypeSession PlanType = "session"
	// PlanTypeMentorship is a recurring engagement whose calls are capped at MinutesPerCall.
	PlanTypeMentorship PlanType = "mentorship"
)

func (t PlanType) IsValid() bool {
	return t == PlanTypeSession || t == PlanTypeMentorship
}

type Plan struct {
	Id             uuid.UUID
	MentorId       uuid.UUID
	Title          string
	Description    string
	PlanType       PlanType
	Charge         float64
	MinutesPerCall int
	CallsPerWeek   int
	IsActive       bool
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
