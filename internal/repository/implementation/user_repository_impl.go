package implementation

import (
	"context"
	"errors"
	"fmt"

	"mentoria-be/internal/entity"
	"mentoria-be/internal/mapper"
	"mentoria-be/internal/model"
	"mentoria-be/internal/repository/contract"
	"mentoria-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.UserMapper
}

func NewUserRepository(db *gorm.DB) contract.UserRepository {
	return &UserRepositoryImpl{
		db:     db,
		mapper: mapper.NewUserMapper(),
	}
}

func (r *UserRepositoryImpl) Create(ctx context.Context, user *entity.User) error {
	m := r.mapper.ToModel(user)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*user = *r.mapper.ToEntity(m)
	return nil
}

func (r *UserRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.User, error) {
	var m model.User
	query := applySpecifications(r.db.WithContext(ctx), specs...)

	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.mapper.ToEntity(&m), nil
}

func (r *UserRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.User, error) {
	var models []*model.User
	query := applySpecifications(r.db.WithContext(ctx), specs...)

	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}

	return r.mapper.ToEntities(models), nil
}

func (r *UserRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := applySpecifications(r.db.WithContext(ctx).Model(&model.User{}), withoutPaging(specs)...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *UserRepositoryImpl) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.UserStatus) error {
	result := r.db.WithContext(ctx).Model(&model.User{}).Where("id = ?", id).Update("status", string(status))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("user %s: %w", id, gorm.ErrRecordNotFound)
	}
	return nil
}

type MentorRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.UserMapper
}

func NewMentorRepository(db *gorm.DB) contract.MentorRepository {
	return &MentorRepositoryImpl{
		db:     db,
		mapper: mapper.NewUserMapper(),
	}
}

func (r *MentorRepositoryImpl) Create(ctx context.Context, mentor *entity.Mentor) error {
	return r.db.WithContext(ctx).Omit("User").Create(r.mapper.MentorToModel(mentor)).Error
}

func (r *MentorRepositoryImpl) Update(ctx context.Context, mentor *entity.Mentor) error {
	m := r.mapper.MentorToModel(mentor)
	return r.db.WithContext(ctx).Model(&model.Mentor{}).
		Where("user_id = ?", m.UserId).
		Updates(map[string]interface{}{
			"headline":         m.Headline,
			"bio":              m.Bio,
			"skills":           m.Skills,
			"company":          m.Company,
			"years_experience": m.YearsExperience,
		}).Error
}

func (r *MentorRepositoryImpl) FindByUserId(ctx context.Context, userID uuid.UUID) (*entity.Mentor, error) {
	var m model.Mentor
	err := r.db.WithContext(ctx).Preload("User").Where("user_id = ?", userID).First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.MentorToEntity(&m), nil
}

type mentorSearchRow struct {
	model.Mentor
	FullName      string
	Email         string
	AvatarURL     *string
	Status        string
	StartingPrice *float64
	PlanCount     int
}

func (r *MentorRepositoryImpl) Search(ctx context.Context, f contract.MentorSearchFilter) ([]*entity.MentorSummary, int64, error) {
	prices := r.db.Model(&model.Plan{}).
		Select("mentor_id, MIN(charge) AS starting_price, COUNT(*) AS plan_count").
		Where("is_active = ?", true).
		Group("mentor_id")

	query := r.db.WithContext(ctx).Table("mentors").
		Joins("JOIN users ON users.id = mentors.user_id AND users.deleted_at IS NULL").
		Joins("LEFT JOIN (?) AS p ON p.mentor_id = mentors.user_id", prices).
		Where("users.status = ?", string(entity.UserStatusActive))

	if f.Query != "" {
		pattern := "%" + f.Query + "%"
		query = query.Where("users.full_name ILIKE ? OR mentors.headline ILIKE ? OR mentors.company ILIKE ?", pattern, pattern, pattern)
	}
	if f.Skill != "" {
		query = query.Where("mentors.skills::text ILIKE ?", "%"+f.Skill+"%")
	}
	if f.MinPrice != nil {
		query = query.Where("p.starting_price >= ?", *f.MinPrice)
	}
	if f.MaxPrice != nil {
		query = query.Where("p.starting_price <= ?", *f.MaxPrice)
	}

	var total int64
	if err := query.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []*mentorSearchRow
	err := query.
		Select("mentors.*, users.full_name, users.email, users.avatar_url, users.status, p.starting_price, COALESCE(p.plan_count, 0) AS plan_count").
		Order("mentors.rating DESC, users.full_name ASC").
		Limit(f.Limit).
		Offset(f.Offset).
		Scan(&rows).Error
	if err != nil {
		return nil, 0, err
	}

	out := make([]*entity.MentorSummary, len(rows))
	for i, row := range rows {
		mentor := r.mapper.MentorToEntity(&row.Mentor)
		mentor.User = &entity.User{
			Id:        row.UserId,
			Email:     row.Email,
			FullName:  row.FullName,
			Role:      entity.UserRoleMentor,
			Status:    entity.UserStatus(row.Status),
			AvatarURL: row.AvatarURL,
		}
		out[i] = &entity.MentorSummary{
			Mentor:        *mentor,
			StartingPrice: row.StartingPrice,
			PlanCount:     row.PlanCount,
		}
	}
	return out, total, nil
}

func (r *MentorRepositoryImpl) RefreshRating(ctx context.Context, mentorID uuid.UUID) error {
	return r.db.WithContext(ctx).Exec(`
		UPDATE mentors SET
			rating = COALESCE((SELECT ROUND(AVG(rating)::numeric, 2) FROM feedbacks WHERE mentor_id = ?), 0),
			rating_count = (SELECT COUNT(*) FROM feedbacks WHERE mentor_id = ?),
			updated_at = NOW()
		WHERE user_id = ?
	`, mentorID, mentorID, mentorID).Error
}

type MenteeRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.UserMapper
}

func NewMenteeRepository(db *gorm.DB) contract.MenteeRepository {
	return &MenteeRepositoryImpl{
		db:     db,
		mapper: mapper.NewUserMapper(),
	}
}

func (r *MenteeRepositoryImpl) Create(ctx context.Context, mentee *entity.Mentee) error {
	return r.db.WithContext(ctx).Omit("User").Create(r.mapper.MenteeToModel(mentee)).Error
}

func (r *MenteeRepositoryImpl) FindByUserId(ctx context.Context, userID uuid.UUID) (*entity.Mentee, error) {
	var m model.Mentee
	err := r.db.WithContext(ctx).Preload("User").Where("user_id = ?", userID).First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.MenteeToEntity(&m), nil
}
