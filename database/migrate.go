package database

import (
	"repogenesis_backend/internal/models"

	"gorm.io/gorm"
)

// Migrate прогоняет автомиграции всех моделей
func Migrate(db *gorm.DB) error {
	// Генерация uuid на стороне базы
	if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS "uuid-ossp"`).Error; err != nil {
		return err
	}

	return db.AutoMigrate(
		&models.Principal{},
		&models.EmailVerificationToken{},
		&models.PasswordResetToken{},
		&models.Job{},
		&models.Internship{},
		&models.Application{},
	)
}
