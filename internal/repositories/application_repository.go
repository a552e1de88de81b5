package repositories

import (
	"repogenesis_backend/internal/models"

	"gorm.io/gorm"
)

// ApplicationCounts агрегированные счетчики откликов по позиции
type ApplicationCounts struct {
	Applicants  int64 `json:"applicants"`
	Shortlisted int64 `json:"shortlisted"`
}

type countsRow struct {
	PostingID   string
	Applicants  int64
	Shortlisted int64
}

// ApplicationRepository определяет операции над откликами кандидатов
type ApplicationRepository interface {
	// Create создает отклик
	Create(db *gorm.DB, application *models.Application) error

	// CountsForJobs возвращает счетчики откликов по вакансиям
	CountsForJobs(db *gorm.DB, jobIDs []string) (map[string]ApplicationCounts, error)

	// CountsForInternships возвращает счетчики откликов по стажировкам
	CountsForInternships(db *gorm.DB, internshipIDs []string) (map[string]ApplicationCounts, error)
}

type applicationRepository struct{}

// NewApplicationRepository создает новый экземпляр ApplicationRepository
func NewApplicationRepository() ApplicationRepository {
	return &applicationRepository{}
}

func (r *applicationRepository) Create(db *gorm.DB, application *models.Application) error {
	return db.Create(application).Error
}

func (r *applicationRepository) CountsForJobs(db *gorm.DB, jobIDs []string) (map[string]ApplicationCounts, error) {
	return r.counts(db, "job_id", jobIDs)
}

func (r *applicationRepository) CountsForInternships(db *gorm.DB, internshipIDs []string) (map[string]ApplicationCounts, error) {
	return r.counts(db, "internship_id", internshipIDs)
}

func (r *applicationRepository) counts(db *gorm.DB, column string, ids []string) (map[string]ApplicationCounts, error) {
	result := make(map[string]ApplicationCounts, len(ids))
	if len(ids) == 0 {
		return result, nil
	}

	var rows []countsRow
	err := db.Model(&models.Application{}).
		Select(column+" AS posting_id, COUNT(*) AS applicants, COUNT(*) FILTER (WHERE status = ?) AS shortlisted", models.ApplicationStatusShortlisted).
		Where(column+" IN ?", ids).
		Group(column).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	for _, row := range rows {
		result[row.PostingID] = ApplicationCounts{
			Applicants:  row.Applicants,
			Shortlisted: row.Shortlisted,
		}
	}
	return result, nil
}
