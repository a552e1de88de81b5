package services

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"repogenesis_backend/internal/models"
	"repogenesis_backend/internal/repositories"
	"repogenesis_backend/internal/services/dto"
	"repogenesis_backend/pkg/apperrors"

	"gorm.io/gorm"
)

// PostingService управляет вакансиями и стажировками организации
type PostingService interface {
	CreateJob(db *gorm.DB, organisationID string, req *dto.JobRequest) (*dto.JobResponse, error)
	GetJob(db *gorm.DB, organisationID, id string) (*dto.JobResponse, error)
	ListJobs(db *gorm.DB, organisationID string) ([]dto.JobResponse, error)
	UpdateJob(db *gorm.DB, organisationID, id string, req *dto.JobRequest) (*dto.JobResponse, error)
	DeleteJob(db *gorm.DB, organisationID, id string) error

	CreateInternship(db *gorm.DB, organisationID string, req *dto.InternshipRequest) (*dto.InternshipResponse, error)
	GetInternship(db *gorm.DB, organisationID, id string) (*dto.InternshipResponse, error)
	ListInternships(db *gorm.DB, organisationID string) ([]dto.InternshipResponse, error)
	UpdateInternship(db *gorm.DB, organisationID, id string, req *dto.InternshipRequest) (*dto.InternshipResponse, error)
	DeleteInternship(db *gorm.DB, organisationID, id string) error

	// ActivePositions возвращает активные вакансии и стажировки одним ответом
	ActivePositions(db *gorm.DB, organisationID string) (*dto.ActivePositionsResponse, error)
}

type postingService struct {
	jobRepo         repositories.JobRepository
	internshipRepo  repositories.InternshipRepository
	applicationRepo repositories.ApplicationRepository
	now             func() time.Time
}

// NewPostingService создает новый экземпляр PostingService
func NewPostingService(
	jobRepo repositories.JobRepository,
	internshipRepo repositories.InternshipRepository,
	applicationRepo repositories.ApplicationRepository,
) PostingService {
	return &postingService{
		jobRepo:         jobRepo,
		internshipRepo:  internshipRepo,
		applicationRepo: applicationRepo,
		now:             time.Now,
	}
}

func (s *postingService) CreateJob(db *gorm.DB, organisationID string, req *dto.JobRequest) (*dto.JobResponse, error) {
	skills, err := models.SetSkills(req.Skills)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	job := &models.Job{
		Title:          req.Title,
		JobType:        models.JobType(req.JobType),
		Location:       req.Location,
		Skills:         skills,
		Description:    req.Description,
		CTC:            req.CTC,
		Openings:       req.Openings,
		OrganisationID: organisationID,
		IsActive:       true,
	}
	if err := s.jobRepo.Create(db, job); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return s.jobResponse(job, repositories.ApplicationCounts{}), nil
}

func (s *postingService) GetJob(db *gorm.DB, organisationID, id string) (*dto.JobResponse, error) {
	job, err := s.jobRepo.FindActiveOwned(db, id, organisationID)
	if err != nil {
		return nil, postingError(err)
	}

	counts, err := s.applicationRepo.CountsForJobs(db, []string{job.ID})
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return s.jobResponse(job, counts[job.ID]), nil
}

func (s *postingService) ListJobs(db *gorm.DB, organisationID string) ([]dto.JobResponse, error) {
	jobs, err := s.jobRepo.ListActiveByOrganisation(db, organisationID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	ids := make([]string, 0, len(jobs))
	for _, job := range jobs {
		ids = append(ids, job.ID)
	}
	counts, err := s.applicationRepo.CountsForJobs(db, ids)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	responses := make([]dto.JobResponse, 0, len(jobs))
	for i := range jobs {
		responses = append(responses, *s.jobResponse(&jobs[i], counts[jobs[i].ID]))
	}
	return responses, nil
}

func (s *postingService) UpdateJob(db *gorm.DB, organisationID, id string, req *dto.JobRequest) (*dto.JobResponse, error) {
	existing, err := s.jobRepo.FindOwned(db, id, organisationID)
	if err != nil {
		return nil, postingError(err)
	}

	skills, err := models.SetSkills(req.Skills)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	existing.Title = req.Title
	existing.JobType = models.JobType(req.JobType)
	existing.Location = req.Location
	existing.Skills = skills
	existing.Description = req.Description
	existing.CTC = req.CTC
	existing.Openings = req.Openings

	if err := s.jobRepo.Update(db, existing); err != nil {
		return nil, postingError(err)
	}

	counts, err := s.applicationRepo.CountsForJobs(db, []string{existing.ID})
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return s.jobResponse(existing, counts[existing.ID]), nil
}

func (s *postingService) DeleteJob(db *gorm.DB, organisationID, id string) error {
	if err := s.jobRepo.Deactivate(db, id, organisationID); err != nil {
		return postingError(err)
	}
	return nil
}

func (s *postingService) CreateInternship(db *gorm.DB, organisationID string, req *dto.InternshipRequest) (*dto.InternshipResponse, error) {
	skills, err := models.SetSkills(req.Skills)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	internship := &models.Internship{
		Title:          req.Title,
		JobType:        models.JobType(req.JobType),
		Location:       req.Location,
		Skills:         skills,
		Description:    req.Description,
		Stipend:        req.Stipend,
		Duration:       models.InternshipDuration(req.Duration),
		Openings:       req.Openings,
		OrganisationID: organisationID,
		IsActive:       true,
	}
	if err := s.internshipRepo.Create(db, internship); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return s.internshipResponse(internship, repositories.ApplicationCounts{}), nil
}

func (s *postingService) GetInternship(db *gorm.DB, organisationID, id string) (*dto.InternshipResponse, error) {
	internship, err := s.internshipRepo.FindActiveOwned(db, id, organisationID)
	if err != nil {
		return nil, postingError(err)
	}

	counts, err := s.applicationRepo.CountsForInternships(db, []string{internship.ID})
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return s.internshipResponse(internship, counts[internship.ID]), nil
}

func (s *postingService) ListInternships(db *gorm.DB, organisationID string) ([]dto.InternshipResponse, error) {
	internships, err := s.internshipRepo.ListActiveByOrganisation(db, organisationID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	ids := make([]string, 0, len(internships))
	for _, internship := range internships {
		ids = append(ids, internship.ID)
	}
	counts, err := s.applicationRepo.CountsForInternships(db, ids)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	responses := make([]dto.InternshipResponse, 0, len(internships))
	for i := range internships {
		responses = append(responses, *s.internshipResponse(&internships[i], counts[internships[i].ID]))
	}
	return responses, nil
}

func (s *postingService) UpdateInternship(db *gorm.DB, organisationID, id string, req *dto.InternshipRequest) (*dto.InternshipResponse, error) {
	existing, err := s.internshipRepo.FindOwned(db, id, organisationID)
	if err != nil {
		return nil, postingError(err)
	}

	skills, err := models.SetSkills(req.Skills)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	existing.Title = req.Title
	existing.JobType = models.JobType(req.JobType)
	existing.Location = req.Location
	existing.Skills = skills
	existing.Description = req.Description
	existing.Stipend = req.Stipend
	existing.Duration = models.InternshipDuration(req.Duration)
	existing.Openings = req.Openings

	if err := s.internshipRepo.Update(db, existing); err != nil {
		return nil, postingError(err)
	}

	counts, err := s.applicationRepo.CountsForInternships(db, []string{existing.ID})
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return s.internshipResponse(existing, counts[existing.ID]), nil
}

func (s *postingService) DeleteInternship(db *gorm.DB, organisationID, id string) error {
	if err := s.internshipRepo.Deactivate(db, id, organisationID); err != nil {
		return postingError(err)
	}
	return nil
}

func (s *postingService) ActivePositions(db *gorm.DB, organisationID string) (*dto.ActivePositionsResponse, error) {
	jobs, err := s.ListJobs(db, organisationID)
	if err != nil {
		return nil, err
	}
	internships, err := s.ListInternships(db, organisationID)
	if err != nil {
		return nil, err
	}

	positions := make([]dto.ActivePosition, 0, len(jobs)+len(internships))
	for i := range jobs {
		positions = append(positions, jobPosition(&jobs[i]))
	}
	for i := range internships {
		positions = append(positions, internshipPosition(&internships[i]))
	}
	sort.SliceStable(positions, func(i, j int) bool {
		return positions[i].CreatedAt.After(positions[j].CreatedAt)
	})

	return &dto.ActivePositionsResponse{
		Positions:        positions,
		TotalJobs:        len(jobs),
		TotalInternships: len(internships),
		Total:            len(jobs) + len(internships),
	}, nil
}

func jobPosition(job *dto.JobResponse) dto.ActivePosition {
	return dto.ActivePosition{
		Type:        dto.PositionTypeJob,
		ID:          job.ID,
		Title:       job.Title,
		JobType:     job.JobType,
		Location:    job.Location,
		Skills:      job.Skills,
		Description: job.Description,
		CTC:         job.CTC,
		Openings:    job.Openings,
		Posted:      job.Posted,
		Applicants:  job.Applicants,
		Shortlisted: job.Shortlisted,
		CreatedAt:   job.CreatedAt,
	}
}

func internshipPosition(internship *dto.InternshipResponse) dto.ActivePosition {
	return dto.ActivePosition{
		Type:        dto.PositionTypeInternship,
		ID:          internship.ID,
		Title:       internship.Title,
		JobType:     internship.JobType,
		Location:    internship.Location,
		Skills:      internship.Skills,
		Description: internship.Description,
		Stipend:     internship.Stipend,
		Duration:    internship.Duration,
		Openings:    internship.Openings,
		Posted:      internship.Posted,
		Applicants:  internship.Applicants,
		Shortlisted: internship.Shortlisted,
		CreatedAt:   internship.CreatedAt,
	}
}

func (s *postingService) jobResponse(job *models.Job, counts repositories.ApplicationCounts) *dto.JobResponse {
	return &dto.JobResponse{
		ID:          job.ID,
		Title:       job.Title,
		JobType:     string(job.JobType),
		Location:    job.Location,
		Skills:      models.GetSkills(job.Skills),
		Description: job.Description,
		CTC:         job.CTC,
		Openings:    job.Openings,
		Posted:      FormatPostedDate(job.CreatedAt, s.now()),
		Applicants:  counts.Applicants,
		Shortlisted: counts.Shortlisted,
		CreatedAt:   job.CreatedAt,
	}
}

func (s *postingService) internshipResponse(internship *models.Internship, counts repositories.ApplicationCounts) *dto.InternshipResponse {
	return &dto.InternshipResponse{
		ID:          internship.ID,
		Title:       internship.Title,
		JobType:     string(internship.JobType),
		Location:    internship.Location,
		Skills:      models.GetSkills(internship.Skills),
		Description: internship.Description,
		Stipend:     internship.Stipend,
		Duration:    string(internship.Duration),
		Openings:    internship.Openings,
		Posted:      FormatPostedDate(internship.CreatedAt, s.now()),
		Applicants:  counts.Applicants,
		Shortlisted: counts.Shortlisted,
		CreatedAt:   internship.CreatedAt,
	}
}

func postingError(err error) error {
	if errors.Is(err, repositories.ErrPostingNotFound) {
		return apperrors.ErrPostingNotFound
	}
	return apperrors.InternalError(err)
}

// FormatPostedDate переводит дату публикации в человекочитаемую давность
func FormatPostedDate(createdAt, now time.Time) string {
	days := int(now.Sub(createdAt).Hours() / 24)
	switch {
	case days <= 0:
		return "Today"
	case days == 1:
		return "1 day ago"
	case days < 7:
		return fmt.Sprintf("%d days ago", days)
	case days < 14:
		return "1 week ago"
	case days < 30:
		return fmt.Sprintf("%d weeks ago", days/7)
	case days < 60:
		return "1 month ago"
	default:
		return fmt.Sprintf("%d months ago", days/30)
	}
}
