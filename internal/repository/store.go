// internal/repository/store.go
package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/javajoker/hireswipe-backend/internal/models"
	"github.com/javajoker/hireswipe-backend/internal/utils"
)

var (
	ErrNotFound  = errors.New("record not found")
	ErrDuplicate = errors.New("duplicate record")
)

type ApplicationOrder int

const (
	OrderNewestFirst ApplicationOrder = iota
	OrderInterviewDateAsc
)

// ApplicationFilter selects applications. Zero-valued fields do not filter.
type ApplicationFilter struct {
	JobseekerID     *uuid.UUID
	RecruiterID     *uuid.UUID
	JobID           *uuid.UUID
	Status          *models.ApplicationStatus
	InterviewStatus *models.InterviewStatus
	Order           ApplicationOrder

	WithJob       bool
	WithJobseeker bool
}

// ApplicationPatch lists the only fields a lifecycle transition may overwrite.
type ApplicationPatch struct {
	Status          *models.ApplicationStatus
	Interview       *models.Interview
	InterviewStatus *models.InterviewStatus
}

func (p ApplicationPatch) columns() map[string]interface{} {
	cols := make(map[string]interface{})
	if p.Status != nil {
		cols["status"] = *p.Status
	}
	if p.Interview != nil {
		cols["interview_date"] = p.Interview.Date
		cols["interview_link"] = p.Interview.Link
		cols["interview_status"] = p.Interview.Status
	}
	if p.InterviewStatus != nil {
		cols["interview_status"] = *p.InterviewStatus
	}
	return cols
}

// Apply copies the patch onto app in memory.
func (p ApplicationPatch) Apply(app *models.Application) {
	if p.Status != nil {
		app.Status = *p.Status
	}
	if p.Interview != nil {
		app.Interview = *p.Interview
	}
	if p.InterviewStatus != nil {
		app.Interview.Status = *p.InterviewStatus
	}
}

type JobFilter struct {
	utils.PaginationParams
	PostedBy       *uuid.UUID
	Location       string
	Company        string
	MaxExperience  *int
	WithApplicants bool
}

type ApplicationStore interface {
	FindApplicationByID(ctx context.Context, id uuid.UUID) (*models.Application, error)
	FindApplication(ctx context.Context, jobID, jobseekerID uuid.UUID) (*models.Application, error)
	InsertApplication(ctx context.Context, app *models.Application) error
	UpdateApplication(ctx context.Context, id uuid.UUID, patch ApplicationPatch) (*models.Application, error)
	DeleteApplication(ctx context.Context, id uuid.UUID) error
	ListApplications(ctx context.Context, filter ApplicationFilter) ([]models.Application, error)
	FindJobByID(ctx context.Context, id uuid.UUID) (*models.Job, error)
}

type JobStore interface {
	FindJobByID(ctx context.Context, id uuid.UUID) (*models.Job, error)
	CreateJob(ctx context.Context, job *models.Job) error
	ListJobs(ctx context.Context, filter JobFilter) ([]models.Job, int64, error)
}

type UserStore interface {
	CreateUser(ctx context.Context, user *models.User) error
	FindUserByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	FindUserByEmail(ctx context.Context, email string) (*models.User, error)
}

type SavedJobStore interface {
	FindJobByID(ctx context.Context, id uuid.UUID) (*models.Job, error)
	SaveJob(ctx context.Context, saved *models.SavedJob) error
	ListSavedJobs(ctx context.Context, jobseekerID uuid.UUID) ([]models.SavedJob, error)
	DeleteSavedJob(ctx context.Context, jobID, jobseekerID uuid.UUID) error
}

type AuditStore interface {
	CreateAuditLog(ctx context.Context, entry *models.AuditLog) error
}

// Store is everything the API needs from persistence.
type Store interface {
	ApplicationStore
	JobStore
	UserStore
	SavedJobStore
	AuditStore
}
