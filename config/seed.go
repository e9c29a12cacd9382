package config

import (
	"log"

	"hotel-management/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// SeedDatabase ensures a default admin and owner exist so a fresh install
// can log in. Passwords come from env and must be changed after first login.
func SeedDatabase(db *gorm.DB) error {
	defaults := []struct {
		name     string
		email    string
		passEnv  string
		passDef  string
		role     string
	}{
		{"Admin User", "admin@hotel.local", "SEED_ADMIN_PASSWORD", "admin123", models.RoleAdmin},
		{"Hotel Owner", "owner@hotel.local", "SEED_OWNER_PASSWORD", "owner123", models.RoleOwner},
	}

	for _, d := range defaults {
		var count int64
		if err := db.Model(&models.User{}).Where("role = ?", d.role).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			continue
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(envOrDefault(d.passEnv, d.passDef)), bcrypt.DefaultCost)
		if err != nil {
			log.Printf("warning: failed to hash default %s password: %v", d.role, err)
			continue
		}

		user := models.User{
			Name:     d.name,
			Email:    d.email,
			Password: string(hash),
			Role:     d.role,
			Active:   true,
		}
		if err := db.Create(&user).Error; err != nil {
			log.Printf("warning: failed to create default %s: %v", d.role, err)
			continue
		}
		log.Printf("Default %s seeded (%s)", d.role, d.email)
	}

	return nil
}
