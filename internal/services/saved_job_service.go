// internal/services/saved_job_service.go
package services

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/javajoker/hireswipe-backend/internal/models"
	"github.com/javajoker/hireswipe-backend/internal/repository"
	"github.com/javajoker/hireswipe-backend/internal/utils"
)

type SavedJobService struct {
	store repository.SavedJobStore
}

type SaveJobRequest struct {
	JobID uuid.UUID `json:"job" validate:"required"`
}

func NewSavedJobService(store repository.SavedJobStore) *SavedJobService {
	return &SavedJobService{
		store: store,
	}
}

func (s *SavedJobService) Save(ctx context.Context, actor Actor, jobID uuid.UUID) (*models.SavedJob, error) {
	req := SaveJobRequest{JobID: jobID}
	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		return nil, invalidArgument("job id is required", validationErrors)
	}
	if !actor.IsJobseeker() {
		return nil, forbidden("only jobseekers can save jobs")
	}

	job, err := s.store.FindJobByID(ctx, jobID)
	if err != nil {
		return nil, fromStore(err, "job")
	}

	saved := &models.SavedJob{
		JobID:       jobID,
		JobseekerID: actor.ID,
	}
	if err := s.store.SaveJob(ctx, saved); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, conflict("job already saved")
		}
		return nil, internal(err)
	}
	saved.Job = job

	return saved, nil
}

func (s *SavedJobService) List(ctx context.Context, actor Actor) ([]models.SavedJob, error) {
	saved, err := s.store.ListSavedJobs(ctx, actor.ID)
	if err != nil {
		return nil, internal(err)
	}
	return saved, nil
}

func (s *SavedJobService) Remove(ctx context.Context, actor Actor, jobID uuid.UUID) error {
	if err := s.store.DeleteSavedJob(ctx, jobID, actor.ID); err != nil {
		return fromStore(err, "saved job")
	}
	return nil
}
