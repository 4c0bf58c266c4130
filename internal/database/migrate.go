package database

import (
	"vahub_backend/internal/models"

	"gorm.io/gorm"
)

// Migrate runs AutoMigrate for every model, in dependency order.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.VAProfile{},
		&models.VASkill{},
		&models.EmployerProfile{},
		&models.Job{},
		&models.JobSkill{},
		&models.Application{},
		&models.Plan{},
		&models.Subscription{},
		&models.Payment{},
		&models.AdminLog{},
		&models.Message{},
	)
}
