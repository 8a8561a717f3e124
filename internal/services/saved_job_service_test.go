// internal/services/saved_job_service_test.go
package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/javajoker/hireswipe-backend/internal/models"
	"github.com/javajoker/hireswipe-backend/internal/repository/repotest"
)

func TestSavedJobs(t *testing.T) {
	ctx := context.Background()
	store := repotest.NewMemoryStore()
	service := NewSavedJobService(store)
	seeker := Actor{ID: uuid.New(), Role: models.RoleJobseeker}

	job := &models.Job{Title: "T", Company: "C", Location: "L", Description: "D", PostedBy: uuid.New()}
	require.NoError(t, store.CreateJob(ctx, job))

	saved, err := service.Save(ctx, seeker, job.ID)
	require.NoError(t, err)
	assert.Equal(t, job.ID, saved.JobID)
	require.NotNil(t, saved.Job)

	_, err = service.Save(ctx, seeker, job.ID)
	assert.ErrorIs(t, err, &ServiceError{Kind: KindConflict, Message: "job already saved"})

	list, err := service.List(ctx, seeker)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "T", list[0].Job.Title)

	require.NoError(t, service.Remove(ctx, seeker, job.ID))
	assert.ErrorIs(t, service.Remove(ctx, seeker, job.ID), ErrNotFound)

	list, err = service.List(ctx, seeker)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestSaveJobGuards(t *testing.T) {
	ctx := context.Background()
	service := NewSavedJobService(repotest.NewMemoryStore())

	_, err := service.Save(ctx, Actor{ID: uuid.New(), Role: models.RoleJobseeker}, uuid.New())
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = service.Save(ctx, Actor{ID: uuid.New(), Role: models.RoleRecruiter}, uuid.New())
	assert.ErrorIs(t, err, ErrForbidden)

	_, err = service.Save(ctx, Actor{ID: uuid.New(), Role: models.RoleJobseeker}, uuid.Nil)
	assert.ErrorIs(t, err, ErrInvalidArgument)

	// Validation runs before the role check.
	_, err = service.Save(ctx, Actor{ID: uuid.New(), Role: models.RoleRecruiter}, uuid.Nil)
	assert.ErrorIs(t, err, ErrInvalidArgument)
}
