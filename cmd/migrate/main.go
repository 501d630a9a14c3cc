package main

import (
	"log"
	"os"

	"contractdesk-be/internal/constant"
	"contractdesk-be/internal/model"
	"contractdesk-be/pkg/database"

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
	db, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	log.Println("Starting Authoritative GORM Migration...")

	// 3. Pre-Migration: Extensions
	log.Println("Step 1: Setting up Extensions...")

	setupSQL := []string{
		`CREATE EXTENSION IF NOT EXISTS pgcrypto;`,
	}

	for _, sql := range setupSQL {
		if err := db.Exec(sql).Error; err != nil {
			log.Printf("Warn: Failed to execute setup SQL: %v. Continuing...", err)
		}
	}

	// 4. AutoMigrate All Models (The Core Task)
	log.Println("Step 2: Running AutoMigrate for 8 Tables...")

	models := []interface{}{
		&model.User{},
		&model.Vendor{},
		&model.Contract{},
		&model.ContractDocument{},
		&model.TerminationDocument{},
		&model.ContractUpdate{},
		&model.ContractEvent{},
		&model.Sequence{},
	}

	// Migrate strictly
	if err := db.AutoMigrate(models...); err != nil {
		log.Fatalf("Error: AutoMigrate failed: %v", err)
	}

	// 5. Post-Migration: Seed sequence rows so the first id allocation
	// finds a row to lock.
	log.Println("Step 3: Seeding sequence rows...")

	sequences := []string{
		constant.SequenceContract,
		constant.SequenceUser,
		constant.SequenceVendorAruba,
		constant.SequenceVendorOrco,
	}
	for _, name := range sequences {
		sql := `INSERT INTO sequences (name, value) VALUES (?, 0) ON CONFLICT (name) DO NOTHING;`
		if err := db.Exec(sql, name).Error; err != nil {
			log.Printf("Warn: Failed to seed sequence %s: %v", name, err)
		}
	}

	log.Println("✅ Success: Database migration completed successfully via GORM.")
}
