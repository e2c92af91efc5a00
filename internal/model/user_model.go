package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type User struct {
	Id        uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Email     string         `gorm:"type:varchar(255);uniqueIndex;not null"`
	FullName  string         `gorm:"type:varchar(255);not null"`
	Role      string         `gorm:"type:varchar(20);not null;default:'mentee';index"`
	Status    string         `gorm:"type:varchar(20);not null;default:'active'"`
	AvatarURL *string        `gorm:"type:text"`
	CreatedAt time.Time      `gorm:"autoCreateTime"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime"`
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

func (User) TableName() string {
	return "users"
}

type Mentor struct {
	UserId          uuid.UUID                   `gorm:"type:uuid;primaryKey"`
	User            User                        `gorm:"foreignKey:UserId;references:Id;constraint:OnDelete:CASCADE"`
	Headline        string                      `gorm:"type:varchar(255)"`
	Bio             string                      `gorm:"type:text"`
	Skills          datatypes.JSONSlice[string] `gorm:"type:jsonb"`
	Company         string                      `gorm:"type:varchar(255)"`
	YearsExperience int                         `gorm:"default:0"`
	Rating          float64                     `gorm:"type:numeric(3,2);default:0"`
	RatingCount     int                         `gorm:"default:0"`
	CreatedAt       time.Time                   `gorm:"autoCreateTime"`
	UpdatedAt       time.Time                   `gorm:"autoUpdateTime"`
}

func (Mentor) TableName() string {
	return "mentors"
}

type Mentee struct {
	UserId    uuid.UUID `gorm:"type:uuid;primaryKey"`
	User      User      `gorm:"foreignKey:UserId;references:Id;constraint:OnDelete:CASCADE"`
	Goals     string    `gorm:"type:text"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

func (Mentee) TableName() string {
	return "mentees"
}
