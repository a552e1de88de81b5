package repositories

import (
	"errors"

	"repogenesis_backend/internal/models"

	"gorm.io/gorm"
)

// InternshipRepository определяет операции над стажировками организации
type InternshipRepository interface {
	// Create создает стажировку
	Create(db *gorm.DB, internship *models.Internship) error

	// FindActiveOwned находит активную стажировку организации по id
	FindActiveOwned(db *gorm.DB, id, organisationID string) (*models.Internship, error)

	// FindOwned находит стажировку организации по id независимо от is_active
	FindOwned(db *gorm.DB, id, organisationID string) (*models.Internship, error)

	// ListActiveByOrganisation возвращает активные стажировки организации
	ListActiveByOrganisation(db *gorm.DB, organisationID string) ([]models.Internship, error)

	// Update перезаписывает изменяемые поля стажировки
	Update(db *gorm.DB, internship *models.Internship) error

	// Deactivate снимает стажировку с публикации (is_active = false)
	Deactivate(db *gorm.DB, id, organisationID string) error
}

type internshipRepository struct{}

// NewInternshipRepository создает новый экземпляр InternshipRepository
func NewInternshipRepository() InternshipRepository {
	return &internshipRepository{}
}

func (r *internshipRepository) Create(db *gorm.DB, internship *models.Internship) error {
	return db.Create(internship).Error
}

func (r *internshipRepository) FindActiveOwned(db *gorm.DB, id, organisationID string) (*models.Internship, error) {
	var internship models.Internship
	err := db.Where("id = ? AND organisation_id = ? AND is_active = ?", id, organisationID, true).
		First(&internship).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPostingNotFound
		}
		return nil, err
	}
	return &internship, nil
}

func (r *internshipRepository) FindOwned(db *gorm.DB, id, organisationID string) (*models.Internship, error) {
	var internship models.Internship
	err := db.Where("id = ? AND organisation_id = ?", id, organisationID).First(&internship).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPostingNotFound
		}
		return nil, err
	}
	return &internship, nil
}

func (r *internshipRepository) ListActiveByOrganisation(db *gorm.DB, organisationID string) ([]models.Internship, error) {
	var internships []models.Internship
	err := db.Where("organisation_id = ? AND is_active = ?", organisationID, true).
		Order("created_at DESC").
		Find(&internships).Error
	if err != nil {
		return nil, err
	}
	return internships, nil
}

func (r *internshipRepository) Update(db *gorm.DB, internship *models.Internship) error {
	result := db.Model(&models.Internship{}).
		Where("id = ? AND organisation_id = ?", internship.ID, internship.OrganisationID).
		Updates(map[string]interface{}{
			"title":       internship.Title,
			"job_type":    internship.JobType,
			"location":    internship.Location,
			"skills":      internship.Skills,
			"description": internship.Description,
			"stipend":     internship.Stipend,
			"duration":    internship.Duration,
			"openings":    internship.Openings,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrPostingNotFound
	}
	return nil
}

func (r *internshipRepository) Deactivate(db *gorm.DB, id, organisationID string) error {
	result := db.Model(&models.Internship{}).
		Where("id = ? AND organisation_id = ?", id, organisationID).
		Update("is_active", false)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrPostingNotFound
	}
	return nil
}
