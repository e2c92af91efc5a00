// FILE: internal/entity/user_entity.go
package entity

import (
	"time"

	"github.com/google/uuid"
)

type UserRole string
type UserStatus string

const (
	UserRoleMentee UserRole = "mentee"
	UserRoleMentor UserRole = "mentor"
	UserRoleAdmin  UserRole = "admin"

	UserStatusActive UserStatus = "active"
	UserStatusBanned UserStatus = "banned"
)

func (r UserRole) IsValid() bool {
	switch r {
	case UserRoleMentee, UserRoleMentor, UserRoleAdmin:
		return true
	}
	return false
}

func (s UserStatus) IsValid() bool {
	return s == UserStatusActive || s == UserStatusBanned
}

type User struct {
	Id        uuid.UUID
	Email     string
	FullName  string
	Role      UserRole
	Status    UserStatus
	AvatarURL *string
	CreatedAt time.Time
	UpdatedAt time.Time
}

type Mentor struct {
	UserId          uuid.UUID
	Headline        string
	Bio             string
	Skills          []string
	Company         string
	YearsExperience int
	Rating          float64
	RatingCount     int

	User *User
}

type Mentee struct {
	UserId uuid.UUID
	Goals  string

	User *User
}

// MentorSummary is the search projection: profile plus the cheapest active plan.
type MentorSummary struct {
	Mentor
	StartingPrice *float64
	PlanCount     int
}
