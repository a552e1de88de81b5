package repositories

import (
	"errors"

	"repogenesis_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrTokenNotFound  = errors.New("token not found")
	ErrTokenCollision = errors.New("token already issued for principal")
)

// VerificationTokenRepository хранит токены подтверждения email
type VerificationTokenRepository interface {
	// Replace атомарно удаляет старый токен принципала и создает новый
	Replace(db *gorm.DB, token *models.EmailVerificationToken) error

	// FindByToken находит запись по значению токена
	FindByToken(db *gorm.DB, token string) (*models.EmailVerificationToken, error)
}

type verificationTokenRepository struct{}

// NewVerificationTokenRepository создает новый экземпляр VerificationTokenRepository
func NewVerificationTokenRepository() VerificationTokenRepository {
	return &verificationTokenRepository{}
}

func (r *verificationTokenRepository) Replace(db *gorm.DB, token *models.EmailVerificationToken) error {
	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("principal_id = ?", token.PrincipalID).
			Delete(&models.EmailVerificationToken{}).Error; err != nil {
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

func (r *verificationTokenRepository) FindByToken(db *gorm.DB, token string) (*models.EmailVerificationToken, error) {
	var record models.EmailVerificationToken
	if err := db.Where("token = ?", token).First(&record).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTokenNotFound
		}
		return nil, err
	}
	return &record, nil
}
