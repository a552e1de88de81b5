package dto

import "time"

// JobRequest тело запроса создания/обновления вакансии
type JobRequest struct {
	Title       string   `json:"title" validate:"required,min=3,max=100"`
	JobType     string   `json:"jobType" validate:"required,is-job-type"`
	Location    string   `json:"location" validate:"required,min=2,max=100"`
	Skills      []string `json:"skills" validate:"required,min=1,dive,required"`
	Description string   `json:"description" validate:"required,max=2500"`
	CTC         string   `json:"ctc" validate:"required"`
	Openings    int      `json:"openings" validate:"required,min=1"`
}

// InternshipRequest тело запроса создания/обновления стажировки
type InternshipRequest struct {
	Title       string   `json:"title" validate:"required,min=3,max=100"`
	JobType     string   `json:"jobType" validate:"required,is-job-type"`
	Location    string   `json:"location" validate:"required,min=2,max=100"`
	Skills      []string `json:"skills" validate:"required,min=1,dive,required"`
	Description string   `json:"description" validate:"required,max=2500"`
	Stipend     string   `json:"stipend" validate:"required"`
	Duration    string   `json:"duration" validate:"required,is-duration"`
	Openings    int      `json:"openings" validate:"required,min=1"`
}

// JobResponse вакансия в ответах API
type JobResponse struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	JobType     string    `json:"jobType"`
	Location    string    `json:"location"`
	Skills      []string  `json:"skills"`
	Description string    `json:"description"`
	CTC         string    `json:"ctc"`
	Openings    int       `json:"openings"`
	Posted      string    `json:"posted"`
	Applicants  int64     `json:"applicants"`
	Shortlisted int64     `json:"shortlisted"`
	CreatedAt   time.Time `json:"createdAt"`
}

// InternshipResponse стажировка в ответах API
type InternshipResponse struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	JobType     string    `json:"jobType"`
	Location    string    `json:"location"`
	Skills      []string  `json:"skills"`
	Description string    `json:"description"`
	Stipend     string    `json:"stipend"`
	Duration    string    `json:"duration"`
	Openings    int       `json:"openings"`
	Posted      string    `json:"posted"`
	Applicants  int64     `json:"applicants"`
	Shortlisted int64     `json:"shortlisted"`
	CreatedAt   time.Time `json:"createdAt"`
}

// ActivePosition активная позиция в сводном списке, Type различает вакансии и стажировки
type ActivePosition struct {
	Type        string    `json:"type"`
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	JobType     string    `json:"jobType"`
	Location    string    `json:"location"`
	Skills      []string  `json:"skills"`
	Description string    `json:"description"`
	CTC         string    `json:"ctc,omitempty"`
	Stipend     string    `json:"stipend,omitempty"`
	Duration    string    `json:"duration,omitempty"`
	Openings    int       `json:"openings"`
	Posted      string    `json:"posted"`
	Applicants  int64     `json:"applicants"`
	Shortlisted int64     `json:"shortlisted"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Значения поля Type в ActivePosition.
const (
	PositionTypeJob        = "Job"
	PositionTypeInternship = "Internship"
)

// ActivePositionsResponse агрегированный список активных позиций организации
type ActivePositionsResponse struct {
	Positions        []ActivePosition `json:"positions"`
	TotalJobs        int              `json:"totalJobs"`
	TotalInternships int              `json:"totalInternships"`
	Total            int              `json:"total"`
}
