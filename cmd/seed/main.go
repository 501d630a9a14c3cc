package main

import (
	"fmt"
	"log"
	"os"

	"contractdesk-be/internal/constant"
	"contractdesk-be/internal/model"
	"contractdesk-be/pkg/database"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
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

	db, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	color.Cyan("🚀 Seeding ContractDesk baseline data\n")

	defaultPassword := os.Getenv("SEED_DEFAULT_PASSWORD")
	if defaultPassword == "" {
		defaultPassword = "changeme123"
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(defaultPassword), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal("Error: Failed to hash default password:", err)
	}
	hashStr := string(hash)

	users := []model.User{
		{
			UserID:     constant.UserIDPrefix + "1",
			FirstName:  "Alice",
			LastName:   "Croes",
			Email:      "alice.croes@example.com",
			Department: "Compliance",
			Position:   "Contract Administrator",
			Role:       constant.RoleContractAdmin,
			IsActive:   true,
		},
		{
			UserID:     constant.UserIDPrefix + "2",
			FirstName:  "Bruno",
			LastName:   "Kelly",
			Email:      "bruno.kelly@example.com",
			Department: "IT",
			Position:   "Department Head",
			Role:       constant.RoleContractManager,
			IsActive:   true,
		},
		{
			UserID:     constant.UserIDPrefix + "3",
			FirstName:  "Carla",
			LastName:   "Tromp",
			Email:      "carla.tromp@example.com",
			Department: "Finance",
			Position:   "Senior Officer",
			Role:       constant.RoleContractManagerBackup,
			IsActive:   true,
		},
	}

	color.Yellow("Seeding %d users...", len(users))
	seeded := 0
	for i := range users {
		users[i].PasswordHash = &hashStr

		var existing model.User
		if err := db.Where("email = ?", users[i].Email).First(&existing).Error; err == nil {
			color.White("User %s already exists, skipping...", users[i].Email)
			continue
		}
		if err := db.Create(&users[i]).Error; err != nil {
			color.Red("Failed to create user %s: %v", users[i].Email, err)
			continue
		}
		color.Green("Created user: %s (%s)", users[i].Email, users[i].Role)
		seeded++
	}

	// Bump the user sequence past the seeded ids so runtime allocation
	// never collides with them.
	if seeded > 0 {
		sql := `INSERT INTO sequences (name, value) VALUES (?, ?)
			ON CONFLICT (name) DO UPDATE SET value = GREATEST(sequences.value, EXCLUDED.value);`
		if err := db.Exec(sql, constant.SequenceUser, int64(len(users))).Error; err != nil {
			color.Red("Failed to advance user sequence: %v", err)
		}
	}

	fmt.Println()
	color.Cyan("✅ Seeding completed. Default password: %s", defaultPassword)
}
