package main

import (
	"log"
	"os"

	"notekeeper-be/internal/model"
	"notekeeper-be/pkg/database"

	"github.com/fatih/color"
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

	db, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	color.Cyan("Seeding development users and labels...")

	users := []model.User{
		{Username: "alice", Email: "alice@example.com"},
		{Username: "bob", Email: "bob@example.com"},
		{Username: "carol", Email: "carol@example.com"},
	}

	for i := range users {
		var existing model.User
		if err := db.Where("email = ?", users[i].Email).First(&existing).Error; err == nil {
			color.Yellow("User '%s' already exists, skipping...", users[i].Email)
			users[i] = existing
			continue
		}

		if err := db.Create(&users[i]).Error; err != nil {
			color.Red("Error creating user '%s': %v", users[i].Email, err)
		} else {
			color.Green("Created user: %s (%s)", users[i].Username, users[i].Email)
		}
	}

	labels := []model.Label{
		{Name: "Work", Color: "#1E88E5", UserId: users[0].Id},
		{Name: "Personal", Color: "#43A047", UserId: users[0].Id},
		{Name: "Ideas", Color: "#FDD835", UserId: users[1].Id},
	}

	for _, l := range labels {
		var existing model.Label
		if err := db.Where("name = ? AND user_id = ?", l.Name, l.UserId).First(&existing).Error; err == nil {
			color.Yellow("Label '%s' already exists, skipping...", l.Name)
			continue
		}

		if err := db.Create(&l).Error; err != nil {
			color.Red("Error creating label '%s': %v", l.Name, err)
		} else {
			color.Green("Created label: %s", l.Name)
		}
	}

	color.Cyan("Seeding completed!")
}
