package main

import (
	"log"
	"strings"
	"time"

	"mentoria-be/internal/entity"
	"mentoria-be/internal/model"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type seedUser struct {
	model.User
	Headline string
	Skills   []string
}

var demoUsers = []seedUser{
	{User: model.User{Email: "admin@mentoria.app", FullName: "Mentoria Admin", Role: string(entity.UserRoleAdmin)}},
	{
		User:     model.User{Email: "grace@mentoria.app", FullName: "Grace Hopper", Role: string(entity.UserRoleMentor)},
		Headline: "Compiler engineer",
		Skills:   []string{"go", "compilers", "career"},
	},
	{
		User:     model.User{Email: "linus@mentoria.app", FullName: "Linus Park", Role: string(entity.UserRoleMentor)},
		Headline: "Staff backend engineer",
		Skills:   []string{"go", "postgres", "system design"},
	},
	{User: model.User{Email: "mia@mentoria.app", FullName: "Mia Mentee", Role: string(entity.UserRoleMentee)}},
}

// SeedUsers creates the demo accounts, skipping emails that already exist.
func SeedUsers(db *gorm.DB) []model.User {
	seeded := make([]model.User, 0, len(demoUsers))
	for _, su := range demoUsers {
		var existing model.User
		if err := db.Where("email = ?", su.Email).First(&existing).Error; err == nil {
			log.Printf("User '%s' already exists, skipping...", su.Email)
			seeded = append(seeded, existing)
			continue
		}

		u := su.User
		u.Id = uuid.New()
		u.Status = string(entity.UserStatusActive)
		if err := db.Create(&u).Error; err != nil {
			log.Printf("Error creating user '%s': %v", u.Email, err)
			continue
		}

		switch entity.UserRole(u.Role) {
		case entity.UserRoleMentor:
			err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&model.Mentor{
				UserId:          u.Id,
				Headline:        su.Headline,
				Bio:             "Happy to help with code reviews, interviews and growth plans.",
				Skills:          datatypes.JSONSlice[string](su.Skills),
				YearsExperience: 10,
			}).Error
			if err != nil {
				log.Printf("Error creating mentor profile for '%s': %v", u.Email, err)
			}
		case entity.UserRoleMentee:
			err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&model.Mentee{
				UserId: u.Id,
				Goals:  "Land a backend role",
			}).Error
			if err != nil {
				log.Printf("Error creating mentee profile for '%s': %v", u.Email, err)
			}
		}
		log.Printf("Created user: %s (%s)", u.FullName, u.Role)
		seeded = append(seeded, u)
	}
	return seeded
}

// SeedCatalog gives every mentor a session plan, a week of morning slots and
// a welcome discount code.
func SeedCatalog(db *gorm.DB, users []model.User) {
	today := time.Now().UTC().Truncate(24 * time.Hour)

	for _, u := range users {
		if u.Role != string(entity.UserRoleMentor) {
			continue
		}

		var count int64
		db.Model(&model.Plan{}).Where("mentor_id = ?", u.Id).Count(&count)
		if count > 0 {
			log.Printf("Mentor '%s' already has plans, skipping...", u.Email)
			continue
		}

		plan := model.Plan{
			Id:             uuid.New(),
			MentorId:       u.Id,
			Title:          "1:1 career session",
			Description:    "One hour to review your goals, code or CV.",
			PlanType:       string(entity.PlanTypeSession),
			Charge:         50,
			MinutesPerCall: 60,
			IsActive:       true,
		}
		if err := db.Create(&plan).Error; err != nil {
			log.Printf("Error creating plan for '%s': %v", u.Email, err)
			continue
		}

		for day := 1; day <= 7; day++ {
			date := today.AddDate(0, 0, day)
			start := date.Add(9 * time.Hour)
			slot := model.Slot{
				MentorId:  u.Id,
				PlanId:    plan.Id,
				Date:      date,
				StartTime: start,
				EndTime:   start.Add(time.Hour),
				Status:    string(entity.SlotStatusAvailable),
			}
			if err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&slot).Error; err != nil {
				log.Printf("Error creating slot: %v", err)
			}
		}

		discount := model.Discount{
			Id:         uuid.New(),
			MentorId:   u.Id,
			Code:       "WELCOME-" + strings.ToUpper(u.Id.String()[:8]),
			Type:       string(entity.DiscountTypePercentage),
			Value:      10,
			ValidFrom:  today,
			ValidTo:    today.AddDate(0, 3, 0),
			UsageLimit: 100,
			IsActive:   true,
		}
		if err := db.Create(&discount).Error; err != nil {
			log.Printf("Error creating discount for '%s': %v", u.Email, err)
		}
		log.Printf("Seeded catalog for %s", u.FullName)
	}
}
