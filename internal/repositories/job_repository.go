package repositories

import (
	"errors"

	"repogenesis_backend/internal/models"

	"gorm.io/gorm"
)

var ErrPostingNotFound = errors.New("posting not found")

// JobRepository определяет операции над вакансиями организации
type JobRepository interface {
	// Create создает вакансию
	Create(db *gorm.DB, job *models.Job) error

	// FindActiveOwned находит активную вакансию организации по id
	FindActiveOwned(db *gorm.DB, id, organisationID string) (*models.Job, error)

	// FindOwned находит вакансию организации по id независимо от is_active
	FindOwned(db *gorm.DB, id, organisationID string) (*models.Job, error)

	// ListActiveByOrganisation возвращает активные вакансии организации
	ListActiveByOrganisation(db *gorm.DB, organisationID string) ([]models.Job, error)

	// Update перезаписывает изменяемые поля вакансии
	Update(db *gorm.DB, job *models.Job) error

	// Deactivate снимает вакансию с публикации (is_active = false)
	Deactivate(db *gorm.DB, id, organisationID string) error
}

type jobRepository struct{}

// NewJobRepository создает новый экземпляр JobRepository
func NewJobRepository() JobRepository {
	return &jobRepository{}
}

func (r *jobRepository) Create(db *gorm.DB, job *models.Job) error {
	return db.Create(job).Error
}

func (r *jobRepository) FindActiveOwned(db *gorm.DB, id, organisationID string) (*models.Job, error) {
	var job models.Job
	err := db.Where("id = ? AND organisation_id = ? AND is_active = ?", id, organisationID, true).
		First(&job).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPostingNotFound
		}
		return nil, err
	}
	return &job, nil
}

func (r *jobRepository) FindOwned(db *gorm.DB, id, organisationID string) (*models.Job, error) {
	var job models.Job
	err := db.Where("id = ? AND organisation_id = ?", id, organisationID).First(&job).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPostingNotFound
		}
		return nil, err
	}
	return &job, nil
}

func (r *jobRepository) ListActiveByOrganisation(db *gorm.DB, organisationID string) ([]models.Job, error) {
	var jobs []models.Job
	err := db.Where("organisation_id = ? AND is_active = ?", organisationID, true).
		Order("created_at DESC").
		Find(&jobs).Error
	if err != nil {
		return nil, err
	}
	return jobs, nil
}

func (r *jobRepository) Update(db *gorm.DB, job *models.Job) error {
	result := db.Model(&models.Job{}).
		Where("id = ? AND organisation_id = ?", job.ID, job.OrganisationID).
		Updates(map[string]interface{}{
			"title":       job.Title,
			"job_type":    job.JobType,
			"location":    job.Location,
			"skills":      job.Skills,
			"description": job.Description,
			"ctc":         job.CTC,
			"openings":    job.Openings,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrPostingNotFound
	}
	return nil
}

func (r *jobRepository) Deactivate(db *gorm.DB, id, organisationID string) error {
	result := db.Model(&models.Job{}).
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
