package models

import (
	"encoding/json"

	"gorm.io/datatypes"
)

// Job - вакансия организации
type Job struct {
	BaseModel
	Title          string         `gorm:"not null" json:"title"`
	JobType        JobType        `gorm:"type:varchar(20);not null" json:"jobType"`
	Location       string         `gorm:"not null" json:"location"`
	Skills         datatypes.JSON `gorm:"type:jsonb" json:"skills"`
	Description    string         `gorm:"type:text;not null" json:"description"`
	CTC            string         `gorm:"not null" json:"ctc"`
	Openings       int            `gorm:"not null" json:"openings"`
	OrganisationID string         `gorm:"type:uuid;not null;index" json:"organisationId"`
	IsActive       bool           `gorm:"default:true" json:"isActive"`

	Applications []Application `gorm:"foreignKey:JobID" json:"applications,omitempty"`
}

// Internship - стажировка организации
type Internship struct {
	BaseModel
	Title          string             `gorm:"not null" json:"title"`
	JobType        JobType            `gorm:"type:varchar(20);not null" json:"jobType"`
	Location       string             `gorm:"not null" json:"location"`
	Skills         datatypes.JSON     `gorm:"type:jsonb" json:"skills"`
	Description    string             `gorm:"type:text;not null" json:"description"`
	Stipend        string             `gorm:"not null" json:"stipend"`
	Duration       InternshipDuration `gorm:"type:varchar(20);not null" json:"duration"`
	Openings       int                `gorm:"not null" json:"openings"`
	OrganisationID string             `gorm:"type:uuid;not null;index" json:"organisationId"`
	IsActive       bool               `gorm:"default:true" json:"isActive"`

	Applications []Application `gorm:"foreignKey:InternshipID" json:"applications,omitempty"`
}

// Application - отклик кандидата на вакансию или стажировку.
// Заполнено ровно одно из JobID / InternshipID.
type Application struct {
	BaseModel
	CandidateID  string            `gorm:"type:uuid;not null;index" json:"candidateId"`
	JobID        *string           `gorm:"type:uuid;index" json:"jobId,omitempty"`
	InternshipID *string           `gorm:"type:uuid;index" json:"internshipId,omitempty"`
	Status       ApplicationStatus `gorm:"type:varchar(20);default:'APPLIED'" json:"status"`
}

// SetSkills сериализует список скиллов в jsonb колонку
func SetSkills(skills []string) (datatypes.JSON, error) {
	data, err := json.Marshal(skills)
	if err != nil {
		return nil, err
	}
	return datatypes.JSON(data), nil
}

// GetSkills десериализует jsonb колонку в список скиллов
func GetSkills(raw datatypes.JSON) []string {
	if len(raw) == 0 {
		return nil
	}
	var skills []string
	if err := json.Unmarshal(raw, &skills); err != nil {
		return nil
	}
	return skills
}
