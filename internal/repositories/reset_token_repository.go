package repositories

import (
	"errors"
	"time"

	"repogenesis_backend/internal/models"

	"gorm.io/gorm"
)

// ResetTokenRepository хранит токены сброса пароля
type ResetTokenRepository interface {
	// Replace атомарно удаляет старый токен принципала и создает новый
	Replace(db *gorm.DB, token *models.PasswordResetToken) error

	// FindValidByToken находит непросроченный и неиспользованный токен
	FindValidByToken(db *gorm.DB, token string, now time.Time) (*models.PasswordResetToken, error)

	// MarkUsed помечает токен использованным
	MarkUsed(db *gorm.DB, id string) error
}

type resetTokenRepository struct{}

// NewResetTokenRepository создает новый экземпляр ResetTokenRepository
func NewResetTokenRepository() ResetTokenRepository {
	return &resetTokenRepository{}
}

func (r *resetTokenRepository) Replace(db *gorm.DB, token *models.PasswordResetToken) error {
	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("principal_id = ?", token.PrincipalID).
			Delete(&models.PasswordResetToken{}).Error; err != nil {
			return err
		}
		return tx.Create(token).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrTokenCollision
		}
		return err
	}
	return nil
}

func (r *resetTokenRepository) FindValidByToken(db *gorm.DB, token string, now time.Time) (*models.PasswordResetToken, error) {
	var record models.PasswordResetToken
	err := db.Where("token = ? AND is_used = ? AND expire_at > ?", token, false, now).
		First(&record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTokenNotFound
		}
		return nil, err
	}
	return &record, nil
}

func (r *resetTokenRepository) MarkUsed(db *gorm.DB, id string) error {
	result := db.Model(&models.PasswordResetToken{}).Where("id = ?", id).Update("is_used", true)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrTokenNotFound
	}
	return nil
}
