// internal/models/application.go
package models

import (
	"time"

	"github.com/google/uuid"
)

// Interview is stored inline on the application row with an interview_ column prefix.
type Interview struct {
	Date   *time.Time      `json:"date,omitempty"`
	Link   string          `json:"link,omitempty" gorm:"size:500"`
	Status InterviewStatus `json:"status" gorm:"type:varchar(20);default:'none';index"`
}

// Application is one jobseeker's candidacy for one job. JobID and JobseekerID never change after insert.
type Application struct {
	BaseModel
	JobID       uuid.UUID         `json:"job_id" gorm:"type:uuid;not null;uniqueIndex:idx_applications_job_jobseeker"`
	JobseekerID uuid.UUID         `json:"jobseeker_id" gorm:"type:uuid;not null;uniqueIndex:idx_applications_job_jobseeker;index"`
	Status      ApplicationStatus `json:"status" gorm:"type:varchar(20);default:'applied';index"`
	Interview   Interview         `json:"interview" gorm:"embedded;embeddedPrefix:interview_"`

	// Relationships
	Job       *Job  `json:"job,omitempty" gorm:"foreignKey:JobID"`
	Jobseeker *User `json:"jobseeker,omitempty" gorm:"foreignKey:JobseekerID"`
}

// HasScheduledInterview reports whether the interview sub-record is scheduled with both date and link.
func (a *Application) HasScheduledInterview() bool {
	return a.Interview.Status == InterviewStatusScheduled && a.Interview.Date != nil && a.Interview.Link != ""
}

type SavedJob struct {
	BaseModel
	JobID       uuid.UUID `json:"job_id" gorm:"type:uuid;not null;uniqueIndex:idx_saved_jobs_job_jobseeker"`
	JobseekerID uuid.UUID `json:"jobseeker_id" gorm:"type:uuid;not null;uniqueIndex:idx_saved_jobs_job_jobseeker;index"`

	Job *Job `json:"job,omitempty" gorm:"foreignKey:JobID"`
}
