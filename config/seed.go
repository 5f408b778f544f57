package config

import (
	"log"
	"os"
	"time"

	"urban-renewal-api/models"

	"golang.org/x/crypto/bcrypt"
)

// SeedAdminUser creates the initial administrator account when the users
// table is empty. Credentials come from ADMIN_USERNAME / ADMIN_EMAIL /
// ADMIN_PASSWORD, with development defaults.
func SeedAdminUser() {
	var count int64
	if err := DB.Model(&models.User{}).Count(&count).Error; err != nil {
		log.Printf("Warning: Failed to count users for seeding: %v", err)
		return
	}
	if count > 0 {
		return
	}

	username := os.Getenv("ADMIN_USERNAME")
	if username == "" {
		username = "admin"
	}
	email := os.Getenv("ADMIN_EMAIL")
	if email == "" {
		email = "admin@localhost"
	}
	password := os.Getenv("ADMIN_PASSWORD")
	if password == "" {
		password = "admin123"
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("Warning: Failed to hash seed admin password: %v", err)
		return
	}

	admin := models.User{
		Username:  username,
		Email:     email,
		Password:  string(hash),
		Role:      models.RoleAdministrator,
		CreatedAt: time.Now(),
	}

	if err := DB.Create(&admin).Error; err != nil {
		log.Printf("Warning: Failed to seed admin user: %v", err)
		return
	}

	log.Printf("Seeded initial administrator account %q", username)
}
