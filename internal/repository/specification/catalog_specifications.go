package specification

import (
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// OnOrAfter keeps rows whose Field is not earlier than At.
type OnOrAfter struct {
	Field string
	At    time.Time
}

func (s OnOrAfter) Apply(db *gorm.DB) *gorm.DB {
	return db.Where(s.Field+" >= ?", s.At)
}

// ByCode matches discount codes case-insensitively.
type ByCode struct {
	Code string
}

func (s ByCode) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("UPPER(code) = UPPER(?)", s.Code)
}

// UserSearch matches email or full name.
type UserSearch struct {
	Query string
}

func (s UserSearch) Apply(db *gorm.DB) *gorm.DB {
	pattern := "%" + s.Query + "%"
	return db.Where("email ILIKE ? OR full_name ILIKE ?", pattern, pattern)
}

// ForUpdate locks the selected rows until the transaction ends.
type ForUpdate struct{}

func (ForUpdate) Apply(db *gorm.DB) *gorm.DB {
	return db.Clauses(clause.Locking{Strength: "UPDATE"})
}
