package entity

import (
	"time"

	"github.com/google/uuid"
)

type DiscountType string

const (
	DiscountTypePercentage DiscountType = "Percentage"
	DiscountTypeFixed      DiscountType = "Fixed"
)

func (t DiscountType) IsValid() bool {
	return t == DiscountTypePercentage || t == DiscountTypeFixed
}

type Discount struct {
	Id         uuid.UUID
	MentorId   uuid.UUID
	Code       string
	Type       DiscountType
	Value      float64
	ValidFrom  time.Time
	ValidTo    time.Time
	UsageLimit int
	UsedCount  int
	IsActive   bool
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
