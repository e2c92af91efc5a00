package mapper

import (
	"mentoria-be/internal/entity"
	"mentoria-be/internal/model"

	"github.com/google/uuid"
)

type UserMapper struct{}

func NewUserMapper() *UserMapper {
	return &UserMapper{}
}

func (m *UserMapper) ToEntity(u *model.User) *entity.User {
	if u == nil {
		return nil
	}
	return &entity.User{
		Id:        u.Id,
		Email:     u.Email,
		FullName:  u.FullName,
		Role:      entity.UserRole(u.Role),
		Status:    entity.UserStatus(u.Status),
		AvatarURL: u.AvatarURL,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

func (m *UserMapper) ToModel(u *entity.User) *model.User {
	if u == nil {
		return nil
	}
	return &model.User{
		Id:        u.Id,
		Email:     u.Email,
		FullName:  u.FullName,
		Role:      string(u.Role),
		Status:    string(u.Status),
		AvatarURL: u.AvatarURL,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

func (m *UserMapper) ToEntities(users []*model.User) []*entity.User {
	entities := make([]*entity.User, len(users))
	for i, u := range users {
		entities[i] = m.ToEntity(u)
	}
	return entities
}

// Mentor and mentee profiles

func (m *UserMapper) MentorToEntity(mt *model.Mentor) *entity.Mentor {
	if mt == nil {
		return nil
	}
	out := &entity.Mentor{
		UserId:          mt.UserId,
		Headline:        mt.Headline,
		Bio:             mt.Bio,
		Skills:          []string(mt.Skills),
		Company:         mt.Company,
		YearsExperience: mt.YearsExperience,
		Rating:          mt.Rating,
		RatingCount:     mt.RatingCount,
	}
	if mt.User.Id != uuid.Nil {
		out.User = m.ToEntity(&mt.User)
	}
	return out
}

func (m *UserMapper) MentorToModel(mt *entity.Mentor) *model.Mentor {
	if mt == nil {
		return nil
	}
	return &model.Mentor{
		UserId:          mt.UserId,
		Headline:        mt.Headline,
		Bio:             mt.Bio,
		Skills:          mt.Skills,
		Company:         mt.Company,
		YearsExperience: mt.YearsExperience,
		Rating:          mt.Rating,
		RatingCount:     mt.RatingCount,
	}
}

func (m *UserMapper) MenteeToEntity(mt *model.Mentee) *entity.Mentee {
	if mt == nil {
		return nil
	}
	out := &entity.Mentee{UserId: mt.UserId, Goals: mt.Goals}
	if mt.User.Id != uuid.Nil {
		out.User = m.ToEntity(&mt.User)
	}
	return out
}

func (m *UserMapper) MenteeToModel(mt *entity.Mentee) *model.Mentee {
	if mt == nil {
		return nil
	}
	return &model.Mentee{UserId: mt.UserId, Goals: mt.Goals}
}
