// internal/services/job_service.go
package services

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/sirupsen/logrus"

	"github.com/javajoker/hireswipe-backend/internal/models"
	"github.com/javajoker/hireswipe-backend/internal/repository"
	"github.com/javajoker/hireswipe-backend/internal/utils"
)

type JobService struct {
	jobs repository.JobStore
}

type CreateJobRequest struct {
	Title         string   `json:"title" validate:"required,max=200,single_line"`
	Company       string   `json:"company" validate:"required,max=200,single_line"`
	Location      string   `json:"location" validate:"required,max=100,single_line"`
	Description   string   `json:"description" validate:"required"`
	Requirements  []string `json:"requirements,omitempty"`
	Salary        string   `json:"salary,omitempty" validate:"max=50,single_line"`
	MinExperience int      `json:"min_experience" validate:"gte=0"`
}

type JobSearchParams struct {
	utils.PaginationParams
	Location      string
	Company       string
	MaxExperience *int
}

func NewJobService(jobs repository.JobStore) *JobService {
	return &JobService{
		jobs: jobs,
	}
}

func (s *JobService) CreateJob(ctx context.Context, actor Actor, req *CreateJobRequest) (*models.Job, error) {
	req.Title = strings.TrimSpace(req.Title)
	req.Company = strings.TrimSpace(req.Company)
	req.Location = strings.TrimSpace(req.Location)
	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(req)); len(validationErrors) > 0 {
		return nil, invalidArgument("validation failed", validationErrors)
	}
	if !actor.IsRecruiter() {
		return nil, forbidden("only recruiters can post jobs")
	}

	job := &models.Job{
		Title:         req.Title,
		Company:       req.Company,
		Location:      req.Location,
		Description:   req.Description,
		Requirements:  pq.StringArray(req.Requirements),
		Salary:        req.Salary,
		MinExperience: req.MinExperience,
		PostedBy:      actor.ID,
	}
	if err := s.jobs.CreateJob(ctx, job); err != nil {
		return nil, internal(err)
	}

	logrus.WithFields(logrus.Fields{
		"job_id":   job.ID,
		"actor_id": actor.ID,
	}).Info("Job posted")

	return job, nil
}

func (s *JobService) GetJob(ctx context.Context, jobID uuid.UUID) (*models.Job, error) {
	job, err := s.jobs.FindJobByID(ctx, jobID)
	if err != nil {
		return nil, fromStore(err, "job")
	}
	return job, nil
}

func (s *JobService) ListJobs(ctx context.Context, params JobSearchParams) ([]models.Job, int64, error) {
	if params.MaxExperience != nil && *params.MaxExperience < 0 {
		return nil, 0, invalidArgument("max_experience must be 0 or above", nil)
	}

	jobs, total, err := s.jobs.ListJobs(ctx, repository.JobFilter{
		PaginationParams: params.PaginationParams,
		Location:         strings.TrimSpace(params.Location),
		Company:          strings.TrimSpace(params.Company),
		MaxExperience:    params.MaxExperience,
	})
	if err != nil {
		return nil, 0, internal(err)
	}
	return jobs, total, nil
}

// ListMyJobs returns every job the recruiter posted, newest first, with applicants attached.
func (s *JobService) ListMyJobs(ctx context.Context, actor Actor) ([]models.Job, error) {
	if !actor.IsRecruiter() {
		return nil, forbidden("only recruiters can view posted jobs")
	}

	jobs, _, err := s.jobs.ListJobs(ctx, repository.JobFilter{
		PostedBy:       &actor.ID,
		WithApplicants: true,
	})
	if err != nil {
		return nil, internal(err)
	}
	return jobs, nil
}
