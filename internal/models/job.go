// internal/models/job.go
package models

import (
	"github.com/google/uuid"
	"github.com/lib/pq"
)

type Job struct {
	BaseModel
	Title         string         `json:"title" gorm:"size:200;not null"`
	Company       string         `json:"company" gorm:"size:200;not null;index"`
	Location      string         `json:"location" gorm:"size:100;not null;index"`
	Description   string         `json:"description" gorm:"type:text;not null"`
	Requirements  pq.StringArray `json:"requirements" gorm:"type:text[]"`
	Salary        string         `json:"salary,omitempty" gorm:"size:50"`
	MinExperience int            `json:"min_experience" gorm:"default:0"`
	PostedBy      uuid.UUID      `json:"posted_by" gorm:"type:uuid;not null;index"`

	// Relationships
	Recruiter  *User         `json:"recruiter,omitempty" gorm:"foreignKey:PostedBy"`
	Applicants []Application `json:"applicants,omitempty" gorm:"foreignKey:JobID"`
}
