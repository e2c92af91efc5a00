package main

import (
	"log"
	"os"
	"time"

	"mentoria-be/internal/pkg/serverutils"
	"mentoria-be/pkg/database"

	"github.com/joho/godotenv"
)

func main() {
	// Load Environment Variables
	if err := godotenv.Load(); err != nil {
		log.Println("Info: No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		log.Fatal("Error: DB_CONNECTION_STRING is not set")
	}

	db, err := database.NewGormDBFromDSN(dsn, false)
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	log.Println("Seeding users...")
	users := SeedUsers(db)

	log.Println("Seeding mentor catalog...")
	SeedCatalog(db, users)

	// Login lives outside this service; print tokens for local testing.
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		log.Println("JWT_SECRET not set, skipping token output")
		return
	}
	for _, u := range users {
		token, err := serverutils.SignToken(secret, u.Id, u.Role, 30*24*time.Hour)
		if err != nil {
			log.Printf("Error signing token for %s: %v", u.Email, err)
			continue
		}
		log.Printf("%s (%s): %s", u.Email, u.Role, token)
	}

	log.Println("Seeding completed!")
}
