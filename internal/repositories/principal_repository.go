package repositories

import (
	"errors"
	"time"

	"repogenesis_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrPrincipalNotFound      = errors.New("principal not found")
	ErrPrincipalAlreadyExists = errors.New("principal already exists")
	ErrAlreadyVerified        = errors.New("principal already verified")
)

// PrincipalRepository определяет операции над принципалами обоих вариантов
type PrincipalRepository interface {
	// FindByID находит принципала по id
	FindByID(db *gorm.DB, id string) (*models.Principal, error)

	// FindByEmail находит принципала по email в рамках варианта
	FindByEmail(db *gorm.DB, variant models.PrincipalVariant, email string) (*models.Principal, error)

	// Create создает принципала; email уникален в рамках варианта
	Create(db *gorm.DB, principal *models.Principal) error

	// UpdateProfile обновляет изменяемые поля профиля
	UpdateProfile(db *gorm.DB, principal *models.Principal) error

	// UpdatePassword меняет хеш пароля
	UpdatePassword(db *gorm.DB, principalID, passwordHash string) error

	// MarkVerified выставляет email_verified_at ровно один раз
	MarkVerified(db *gorm.DB, principalID string, at time.Time) error
}

type principalRepository struct{}

// NewPrincipalRepository создает новый экземпляр PrincipalRepository
func NewPrincipalRepository() PrincipalRepository {
	return &principalRepository{}
}

func (r *principalRepository) FindByID(db *gorm.DB, id string) (*models.Principal, error) {
	var principal models.Principal
	if err := db.First(&principal, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPrincipalNotFound
		}
		return nil, err
	}
	return &principal, nil
}

func (r *principalRepository) FindByEmail(db *gorm.DB, variant models.PrincipalVariant, email string) (*models.Principal, error) {
	var principal models.Principal
	err := db.Where("variant = ? AND email = ?", variant, email).First(&principal).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPrincipalNotFound
		}
		return nil, err
	}
	return &principal, nil
}

func (r *principalRepository) Create(db *gorm.DB, principal *models.Principal) error {
	if err := db.Create(principal).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrPrincipalAlreadyExists
		}
		return err
	}
	return nil
}

func (r *principalRepository) UpdateProfile(db *gorm.DB, principal *models.Principal) error {
	result := db.Model(&models.Principal{}).Where("id = ?", principal.ID).Updates(map[string]interface{}{
		"first_name":   principal.FirstName,
		"last_name":    principal.LastName,
		"phone":        principal.Phone,
		"organization": principal.Organization,
		"updated_at":   time.Now(),
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrPrincipalNotFound
	}
	return nil
}

func (r *principalRepository) UpdatePassword(db *gorm.DB, principalID, passwordHash string) error {
	result := db.Model(&models.Principal{}).Where("id = ?", principalID).Updates(map[string]interface{}{
		"password_hash": passwordHash,
		"updated_at":    time.Now(),
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrPrincipalNotFound
	}
	return nil
}

func (r *principalRepository) MarkVerified(db *gorm.DB, principalID string, at time.Time) error {
	// Условие email_verified_at IS NULL гарантирует "ровно один раз"
	result := db.Model(&models.Principal{}).
		Where("id = ? AND email_verified_at IS NULL", principalID).
		Updates(map[string]interface{}{
			"email_verified_at": at,
			"updated_at":        time.Now(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrAlreadyVerified
	}
	return nil
}
