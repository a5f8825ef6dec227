package config

import (
	"fmt"
	"log"
	"os"

	"github.com/mikespe/calcalc2.0/models"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

// InitDB loads the environment, validates required secrets and opens the
// database. Startup fails hard when JWT_SECRET is missing: running with a
// known default secret would make every session forgeable.
func InitDB() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, using process environment")
	}

	if os.Getenv("JWT_SECRET") == "" {
		log.Fatalf("JWT_SECRET must be set")
	}

	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		os.Getenv("DB_HOST"),
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"),
		os.Getenv("DB_PORT"),
	)

	var err error
	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := Migrate(DB); err != nil {
		log.Fatalf("AutoMigrate failed: %v", err)
	}
}

// Migrate applies the schema for all models. Kept separate from InitDB so
// tests can run it against their own database handle.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.CalorieLog{},
		&models.WeightLog{},
		&models.ActivityLog{},
	)
}
