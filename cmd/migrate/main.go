package main

import (
	"log"
	"os"

	"mentoria-be/internal/model"
	"mentoria-be/pkg/database"

	"github.com/joho/godotenv"
)

func main() {
	// 1. Load Environment Variables
	if err := godotenv.Load(); err != nil {
		log.Println("Info: No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		log.Fatal("Error: DB_CONNECTION_STRING is not set")
	}

	// 2. Connect to Database using existing GORM helpers
	db, err := database.NewGormDBFromDSN(dsn, true)
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	log.Println("Starting GORM migration...")

	// 3. Pre-Migration: Extensions
	setupSQL := []string{
		`CREATE EXTENSION IF NOT EXISTS pgcrypto;`,
	}
	for _, sql := range setupSQL {
		if err := db.Exec(sql).Error; err != nil {
			log.Printf("Warn: Failed to execute setup SQL: %v. Continuing...", err)
		}
	}

	// 4. AutoMigrate All Models
	models := []interface{}{
		&model.User{},
		&model.Mentor{},
		&model.Mentee{},
		&model.Plan{},
		&model.Slot{},
		&model.Discount{},
		&model.PlanRegistration{},
		&model.Invoice{},
		&model.Booking{},
		&model.Meeting{},
		&model.Complaint{},
		&model.Feedback{},
		&model.Payout{},
		&model.Notification{},
		&model.WebhookEvent{},
	}
	log.Printf("Running AutoMigrate for %d tables...", len(models))

	if err := db.AutoMigrate(models...); err != nil {
		log.Fatalf("Error: AutoMigrate failed: %v", err)
	}

	// 5. Post-Migration: constraints AutoMigrate cannot express
	postMigrationSQL := []string{
		// A slot can back at most one booking.
		`CREATE UNIQUE INDEX IF NOT EXISTS uq_bookings_slot
		 ON bookings (mentor_id, plan_id, slot_date, slot_start_time, slot_end_time);`,
		`ALTER TABLE payouts DROP CONSTRAINT IF EXISTS chk_payouts_amount_positive;`,
		`ALTER TABLE payouts ADD CONSTRAINT chk_payouts_amount_positive CHECK (amount > 0);`,
	}
	for _, sql := range postMigrationSQL {
		if err := db.Exec(sql).Error; err != nil {
			log.Printf("Warn: Failed to execute post-migration SQL: %v", err)
		}
	}

	log.Println("Success: Database migration completed.")
}
