package database

import (
	"travel_manager/config"
	"travel_manager/constants"
	"travel_manager/logger"
	"travel_manager/model"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// SeedData creates the default back-office operator if none exists yet.
func SeedData(db *gorm.DB) {
	password := config.ConfigDefault("ADMIN_PASSWORD", "changeme1")
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), 10)
	if err != nil {
		logger.Error("failed to hash seed password", err)
		return
	}

	accounts := []model.Account{
		{
			Username: config.ConfigDefault("ADMIN_USERNAME", "manager"),
			Email:    config.Config("ADMIN_EMAIL"),
			Password: string(bytes),
			Active:   true,
			Role:     constants.ROLE_ADMIN,
		},
	}

	for _, account := range accounts {
		if err := db.Where(model.Account{Username: account.Username}).FirstOrCreate(&account).Error; err != nil {
			logger.Error("failed to seed account "+account.Username, err)
		}
	}
}
